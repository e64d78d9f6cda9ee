package archive2

import "time"

// Message type codes (RDA/RPG ICD table II-A).
const (
	MessageTypeDigitalRadarDataLegacy = 1
	MessageTypeRDAStatus              = 2
	MessageTypePerformanceMaintenance = 3
	MessageTypeConsole                = 4
	MessageTypeVolumeCoveragePattern  = 5
	MessageTypeRDAControl             = 6
	MessageTypeRequestForData         = 9
	MessageTypeLoopback               = 10
	MessageTypeClutterCensorZones     = 12
	MessageTypeClutterFilterBypassMap = 13
	MessageTypeClutterFilterMap       = 15
	MessageTypeAdaptationData         = 18
	MessageTypeDigitalRadarData       = 31
	MessageTypePRFData                = 32
	MessageTypeLogData                = 33
)

// Radial status codes (User 3.2.4.17, Table XVII).
const (
	RadialStatusStartOfElevationScan   = 0
	RadialStatusIntermediateRadialData = 1
	RadialStatusEndOfElevation         = 2
	RadialStatusBeginningOfVolumeScan  = 3
	RadialStatusEndOfVolumeScan        = 4
	RadialStatusStartNewElevation      = 5
)

const (
	// LegacyCTMHeaderLength is the 12 ignorable RPG prefix bytes that precede
	// every message header (RDA/RPG 7.3.4).
	LegacyCTMHeaderLength = 12

	// FixedRecordLength is the size of every fixed-frame message segment
	// (header + body + padding), regardless of its logical content.
	FixedRecordLength = 2432

	// MessageHeaderLength is the nominal 16-byte message header excluding the
	// 12-byte RPG prefix.
	MessageHeaderLength = 16

	// volumeHeaderLength is the fixed Archive II tape header size.
	volumeHeaderLength = 24
)

// VolumeHeaderRecord is the 24-byte fixed header that begins every Archive II
// volume file (RDA/RPG 7.3.3).
type VolumeHeaderRecord struct {
	TapeFilename    [9]byte // e.g. "AR2V0006."
	ExtensionNumber [3]byte // e.g. "879" (cycles 000-999)
	ModifiedDate    int32   // modified Julian date (days since 1970-01-01, 1-based)
	ModifiedTime    int32   // milliseconds past midnight
	ICAO            [4]byte // radar site identifier
}

// Filename reconstructs the archive file's conventional name.
func (vh VolumeHeaderRecord) Filename() string {
	return string(vh.TapeFilename[:]) + string(vh.ExtensionNumber[:])
}

// DateTime returns the wall-clock instant this volume header describes.
func (vh VolumeHeaderRecord) DateTime() time.Time {
	return ModifiedJulianDateTime(uint16(vh.ModifiedDate), uint32(vh.ModifiedTime))
}

// ICAOString returns the radar site identifier as a plain string.
func (vh VolumeHeaderRecord) ICAOString() string {
	return string(vh.ICAO[:])
}

// decodeVolumeHeaderRecord parses the fixed 24-byte tape header.
func decodeVolumeHeaderRecord(cur *Cursor) (VolumeHeaderRecord, error) {
	var vh VolumeHeaderRecord
	b, err := cur.TakeBytes(volumeHeaderLength)
	if err != nil {
		return vh, err
	}
	copy(vh.TapeFilename[:], b[0:9])
	copy(vh.ExtensionNumber[:], b[9:12])
	vh.ModifiedDate = int32(U32(b4(b[12:16])).Get())
	vh.ModifiedTime = int32(U32(b4(b[16:20])).Get())
	copy(vh.ICAO[:], b[20:24])
	return vh, nil
}

// epoch is the base instant for modified Julian dates: n == 1 means
// 1970-01-01.
var epoch = time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC)

// ModifiedJulianDateTime converts a (modified Julian date, milliseconds past
// midnight) pair into a wall-clock time. date_time(n, m) = epoch + (n-1) days
// + m milliseconds.
func ModifiedJulianDateTime(date uint16, millisOfDay uint32) time.Time {
	days := time.Duration(int(date)-1) * 24 * time.Hour
	ms := time.Duration(millisOfDay) * time.Millisecond
	return epoch.Add(days).Add(ms)
}

// MessageHeader is the fixed 16-byte (nominal) header preceding every message
// body (User 3.2.4.1). The 12-byte ignorable RPG prefix that precedes this
// header on the wire is consumed separately by the caller.
type MessageHeader struct {
	SegmentSize         uint16 // size of this message/segment in halfwords
	RDARedundantChannel uint8
	MessageType         uint8
	SequenceNumber      uint16
	JulianDate          uint16 // modified Julian date
	MillisOfDay         uint32
	SegmentCount        uint16
	SegmentNumber       uint16
}

// DateTime returns the wall-clock instant this header's date/time fields
// describe.
func (h MessageHeader) DateTime() time.Time {
	return ModifiedJulianDateTime(h.JulianDate, h.MillisOfDay)
}

// SizeBytes converts the declared segment size (halfwords) to bytes.
func (h MessageHeader) SizeBytes() int {
	return int(h.SegmentSize) * 2
}

// decodeMessageHeader reads the 16-byte message header (not including the
// 12-byte RPG prefix) from the cursor.
func decodeMessageHeader(cur *Cursor) (MessageHeader, error) {
	var h MessageHeader
	var err error
	if h.SegmentSize, err = cur.ReadU16(); err != nil {
		return h, err
	}
	var rc uint8
	if rc, err = cur.ReadU8(); err != nil {
		return h, err
	}
	h.RDARedundantChannel = rc
	var mt uint8
	if mt, err = cur.ReadU8(); err != nil {
		return h, err
	}
	h.MessageType = mt
	if h.SequenceNumber, err = cur.ReadU16(); err != nil {
		return h, err
	}
	if h.JulianDate, err = cur.ReadU16(); err != nil {
		return h, err
	}
	if h.MillisOfDay, err = cur.ReadU32(); err != nil {
		return h, err
	}
	if h.SegmentCount, err = cur.ReadU16(); err != nil {
		return h, err
	}
	if h.SegmentNumber, err = cur.ReadU16(); err != nil {
		return h, err
	}
	return h, nil
}

package archive2

import "fmt"

// --- Clutter Filter Bypass Map (Message Type 13, User 3.2.4.13, Table IX) ---

const (
	bypassMapRadialsPerSegment  = 360
	bypassMapHalfwordsPerRadial = 32
	bypassMapRangeBinBytes      = bypassMapRadialsPerSegment * bypassMapHalfwordsPerRadial * 2
)

// ClutterFilterBypassMapElevation holds one elevation's range-bin bypass
// flags: 360 radials of 512 range bins each, packed 16 bits per halfword.
type ClutterFilterBypassMapElevation struct {
	SegmentNumber uint16
	RangeBins     []byte // 23040 bytes
}

// BypassFlag reports whether the clutter filter should be bypassed for the
// given radial (0-359) and range bin (0-511). It returns false and ok=false
// for an out-of-range index.
func (e ClutterFilterBypassMapElevation) BypassFlag(radial, rangeBin int) (bypass bool, ok bool) {
	if radial < 0 || radial >= bypassMapRadialsPerSegment || rangeBin < 0 || rangeBin >= bypassMapHalfwordsPerRadial*16 {
		return false, false
	}
	halfwordIndex := rangeBin / 16
	bitIndex := uint(rangeBin % 16)
	byteOffset := radial*bypassMapHalfwordsPerRadial*2 + halfwordIndex*2
	halfword := uint16(e.RangeBins[byteOffset])<<8 | uint16(e.RangeBins[byteOffset+1])
	return (halfword>>bitIndex)&1 == 1, true
}

// ClutterFilterBypassMap is the Message Type 13 body.
type ClutterFilterBypassMap struct {
	GenerationDate        uint16
	GenerationTime        uint16
	ElevationSegmentCount uint16
	Elevations            []ClutterFilterBypassMapElevation
}

func (ClutterFilterBypassMap) isMessageContents() {}

func decodeClutterFilterBypassMap(seg *SegmentedCursor) (*ClutterFilterBypassMap, error) {
	var m ClutterFilterBypassMap
	var err error
	if m.GenerationDate, err = seg.ReadU16(); err != nil {
		return nil, err
	}
	if m.GenerationTime, err = seg.ReadU16(); err != nil {
		return nil, err
	}
	if m.ElevationSegmentCount, err = seg.ReadU16(); err != nil {
		return nil, err
	}

	for i := uint16(0); i < m.ElevationSegmentCount; i++ {
		segNum, err := seg.ReadU16()
		if err != nil {
			return nil, err
		}
		bins, err := seg.ReadBytesOwned(bypassMapRangeBinBytes)
		if err != nil {
			return nil, errTooShort("bypass map range bins", bypassMapRangeBinBytes, seg.Remaining())
		}
		m.Elevations = append(m.Elevations, ClutterFilterBypassMapElevation{SegmentNumber: segNum, RangeBins: bins})
	}
	return &m, nil
}

// --- Clutter Filter Map (Message Type 15, User 3.2.4.8, Table X) ---

// ClutterFilterMapOpCode is a range zone's clutter filter behavior.
type ClutterFilterMapOpCode uint16

const (
	OpCodeBypassFilter     ClutterFilterMapOpCode = 0
	OpCodeBypassMapControl ClutterFilterMapOpCode = 1
	OpCodeForceFilter      ClutterFilterMapOpCode = 2
)

// ClutterFilterMapRangeZone is one range zone's filter operation within an
// azimuth segment.
type ClutterFilterMapRangeZone struct {
	OpCode   ClutterFilterMapOpCode
	EndRange uint16 // km
}

// ClutterFilterMapAzimuthSegment holds the range zones for a single
// 1-degree azimuth segment.
type ClutterFilterMapAzimuthSegment struct {
	AzimuthSegment uint16 // 0-359
	RangeZones     []ClutterFilterMapRangeZone
}

// ClutterFilterMapElevationSegment holds all 360 azimuth segments for one
// elevation.
type ClutterFilterMapElevationSegment struct {
	ElevationSegmentNumber uint8
	AzimuthSegments        []ClutterFilterMapAzimuthSegment
}

// ClutterFilterMap is the Message Type 15 body.
type ClutterFilterMap struct {
	GenerationDate        uint16
	GenerationTime        uint16
	ElevationSegmentCount uint16
	Elevations            []ClutterFilterMapElevationSegment
}

func (ClutterFilterMap) isMessageContents() {}

func decodeClutterFilterMap(seg *SegmentedCursor) (*ClutterFilterMap, error) {
	var m ClutterFilterMap
	var err error
	if m.GenerationDate, err = seg.ReadU16(); err != nil {
		return nil, err
	}
	if m.GenerationTime, err = seg.ReadU16(); err != nil {
		return nil, err
	}
	if m.ElevationSegmentCount, err = seg.ReadU16(); err != nil {
		return nil, err
	}

	for e := uint16(0); e < m.ElevationSegmentCount; e++ {
		elev := ClutterFilterMapElevationSegment{ElevationSegmentNumber: uint8(e)}
		for az := uint16(0); az < 360; az++ {
			rangeZoneCount, err := seg.ReadU16()
			if err != nil {
				return nil, err
			}
			azSeg := ClutterFilterMapAzimuthSegment{AzimuthSegment: az}
			for z := uint16(0); z < rangeZoneCount; z++ {
				opCode, err := seg.ReadU16()
				if err != nil {
					return nil, err
				}
				endRange, err := seg.ReadU16()
				if err != nil {
					return nil, err
				}
				azSeg.RangeZones = append(azSeg.RangeZones, ClutterFilterMapRangeZone{
					OpCode:   ClutterFilterMapOpCode(opCode),
					EndRange: endRange,
				})
			}
			elev.AzimuthSegments = append(elev.AzimuthSegments, azSeg)
		}
		m.Elevations = append(m.Elevations, elev)
	}
	return &m, nil
}

// --- Adaptation Data (Message Type 18, User 3.2.4.18) ---

// AdaptationData is the Message Type 18 body: a small identity header
// followed by the RDA's adaptation data file contents, which this package
// does not further interpret.
type AdaptationData struct {
	FileName string
	Format   string
	Revision string
	Date     string
	Time     string
	Data     []byte
}

func (AdaptationData) isMessageContents() {}

func decodeAdaptationData(seg *SegmentedCursor) (*AdaptationData, error) {
	var a AdaptationData

	read := func(n int) (string, error) {
		b, err := seg.ReadBytesOwned(n)
		if err != nil {
			return "", err
		}
		return trimNulString(b), nil
	}

	var err error
	if a.FileName, err = read(12); err != nil {
		return nil, err
	}
	if a.Format, err = read(4); err != nil {
		return nil, err
	}
	if a.Revision, err = read(4); err != nil {
		return nil, err
	}
	if a.Date, err = read(12); err != nil {
		return nil, err
	}
	if a.Time, err = read(12); err != nil {
		return nil, err
	}

	if seg.Remaining() > 0 {
		data, err := seg.ReadBytesOwned(seg.Remaining())
		if err != nil {
			return nil, err
		}
		a.Data = data
	}
	return &a, nil
}

func trimNulString(b []byte) string {
	end := len(b)
	for end > 0 && (b[end-1] == 0 || b[end-1] == ' ') {
		end--
	}
	return string(b[:end])
}

// --- RDA PRF Data (Message Type 32, User 3.2.4.32, Table XVIII) ---

// WaveformPRFData is the pulse repetition frequency values used for one
// waveform type.
type WaveformPRFData struct {
	WaveformType uint16
	// PRFValues are raw Integer4 values; scale by 0.001 to get Hz.
	PRFValues []uint32
}

// PRFData is the Message Type 32 body.
type PRFData struct {
	NumberOfWaveforms uint16
	Waveforms         []WaveformPRFData
}

func (PRFData) isMessageContents() {}

func decodePRFData(seg *SegmentedCursor) (*PRFData, error) {
	var p PRFData
	var err error
	if p.NumberOfWaveforms, err = seg.ReadU16(); err != nil {
		return nil, err
	}

	for i := uint16(0); i < p.NumberOfWaveforms; i++ {
		waveformType, err := seg.ReadU16()
		if err != nil {
			return nil, err
		}
		prfCount, err := seg.ReadU16()
		if err != nil {
			return nil, err
		}
		w := WaveformPRFData{WaveformType: waveformType}
		for j := uint16(0); j < prfCount; j++ {
			v, err := seg.ReadU32()
			if err != nil {
				return nil, err
			}
			w.PRFValues = append(w.PRFValues, v)
		}
		p.Waveforms = append(p.Waveforms, w)
	}
	return &p, nil
}

// --- RDA Log Data (Message Type 33, User 3.2.4.33, Table XIVV) ---

// LogDataCompressionType identifies how a log data message's payload is
// compressed.
type LogDataCompressionType uint32

const (
	LogDataUncompressed LogDataCompressionType = 0
	LogDataGZIP         LogDataCompressionType = 1
	LogDataBZIP2        LogDataCompressionType = 2
	LogDataZIP          LogDataCompressionType = 3
)

// LogData is the Message Type 33 body.
type LogData struct {
	Version          uint32
	Identifier       string
	DataVersion      uint32
	CompressionType  LogDataCompressionType
	CompressedSize   uint32
	DecompressedSize uint32
	Data             []byte
}

func (LogData) isMessageContents() {}

func decodeLogData(seg *SegmentedCursor) (*LogData, error) {
	var l LogData
	var err error
	if l.Version, err = seg.ReadU32(); err != nil {
		return nil, err
	}
	idBytes, err := seg.ReadBytesOwned(26)
	if err != nil {
		return nil, err
	}
	l.Identifier = trimNulString(idBytes)
	if l.DataVersion, err = seg.ReadU32(); err != nil {
		return nil, err
	}
	var compressionType uint32
	if compressionType, err = seg.ReadU32(); err != nil {
		return nil, err
	}
	l.CompressionType = LogDataCompressionType(compressionType)
	if l.CompressedSize, err = seg.ReadU32(); err != nil {
		return nil, err
	}
	if l.DecompressedSize, err = seg.ReadU32(); err != nil {
		return nil, err
	}
	if _, err = seg.ReadBytesOwned(22); err != nil { // spare
		return nil, err
	}

	data, err := seg.ReadBytesOwned(int(l.CompressedSize))
	if err != nil {
		return nil, errTooShort("log data payload", int(l.CompressedSize), seg.Remaining())
	}
	l.Data = data
	return &l, nil
}

// --- Clutter Censor Zones (Message Type 12, User 3.2.4.8, Table XII) ---

// ClutterCensorZonesOperatorSelect controls clutter filtering behavior
// within a censor zone region.
type ClutterCensorZonesOperatorSelect uint16

const (
	OperatorSelectBypassFilterForced  ClutterCensorZonesOperatorSelect = 0
	OperatorSelectBypassMapInControl  ClutterCensorZonesOperatorSelect = 1
	OperatorSelectClutterFilterForced ClutterCensorZonesOperatorSelect = 2
)

// ClutterCensorZoneRegion is a single override region.
type ClutterCensorZoneRegion struct {
	StartRange             uint16
	StopRange              uint16
	StartAzimuth           uint16
	StopAzimuth            uint16
	ElevationSegmentNumber uint16
	OperatorSelect         ClutterCensorZonesOperatorSelect
}

// ClutterCensorZones is the Message Type 12 body.
type ClutterCensorZones struct {
	OverrideRegionCount uint16
	Regions             []ClutterCensorZoneRegion
}

func (ClutterCensorZones) isMessageContents() {}

func decodeClutterCensorZones(seg *SegmentedCursor) (*ClutterCensorZones, error) {
	var c ClutterCensorZones
	var err error
	if c.OverrideRegionCount, err = seg.ReadU16(); err != nil {
		return nil, err
	}

	for i := uint16(0); i < c.OverrideRegionCount; i++ {
		var r ClutterCensorZoneRegion
		var operatorSelect uint16
		fields := []*uint16{&r.StartRange, &r.StopRange, &r.StartAzimuth, &r.StopAzimuth, &r.ElevationSegmentNumber, &operatorSelect}
		for _, f := range fields {
			if *f, err = seg.ReadU16(); err != nil {
				return nil, fmt.Errorf("decoding censor zone region %d: %w", i, err)
			}
		}
		r.OperatorSelect = ClutterCensorZonesOperatorSelect(operatorSelect)
		c.Regions = append(c.Regions, r)
	}
	return &c, nil
}

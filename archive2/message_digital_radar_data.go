package archive2

import (
	"fmt"
	"time"
)

// DigitalRadarDataHeader is the fixed 32-byte header preceding a Message
// Type 31 (Digital Radar Data Generic Format) body (User 3.2.4.17.1).
type DigitalRadarDataHeader struct {
	RadarIdentifier              [4]byte
	CollectionTime               uint32
	CollectionDate               uint16
	AzimuthNumber                uint16
	AzimuthAngle                 float32
	CompressionIndicator         uint8
	Spare                        uint8
	RadialLength                 uint16
	AzimuthResolutionSpacingCode uint8
	RadialStatus                 uint8
	ElevationNumber              uint8
	CutSectorNumber              uint8
	ElevationAngle               float32
	RadialSpotBlankingStatus     uint8
	AzimuthIndexingMode          uint8
	DataBlockCount               uint16
}

// DateTime returns the wall-clock instant this radial's data was collected.
func (h DigitalRadarDataHeader) DateTime() time.Time {
	return ModifiedJulianDateTime(h.CollectionDate, h.CollectionTime)
}

// AzimuthResolutionSpacing returns the spacing between adjacent radials in
// degrees.
func (h DigitalRadarDataHeader) AzimuthResolutionSpacing() float32 {
	if h.AzimuthResolutionSpacingCode == 1 {
		return 0.5
	}
	return 1
}

func (h DigitalRadarDataHeader) String() string {
	return fmt.Sprintf("%s radial %d az=%.2f el=%.2f", string(h.RadarIdentifier[:]), h.AzimuthNumber, h.AzimuthAngle, h.ElevationAngle)
}

// VolumeDataBlock carries site and calibration metadata that does not change
// radial-to-radial within a volume (User 3.2.4.17.3). Build 20.0 added
// ZDRBiasEstimateWeightedMean and six spare bytes; builds before that produce
// a block with those fields left zero.
type VolumeDataBlock struct {
	LRTUP                          uint16
	VersionMajor                   uint8
	VersionMinor                   uint8
	Lat                            float32
	Long                           float32
	SiteHeight                     int16
	TowerHeight                    uint16
	CalibrationConstant            float32
	HorizontalSHVTXPower           float32
	VerticalSHVTXPower             float32
	SystemDifferentialReflectivity float32
	InitialSystemDifferentialPhase float32
	VolumeCoveragePatternNumber    uint16
	ProcessingStatus               uint16
	ZDRBiasEstimateWeightedMean    uint16 // Build 20.0+ only
}

// ElevationDataBlock carries per-elevation calibration data (User 3.2.4.17.4).
type ElevationDataBlock struct {
	LRTUP            uint16
	ATMOS            int16
	CalibrationConst float32
}

// RadialDataBlock carries per-radial noise and calibration data
// (User 3.2.4.17.5). Build 12.0 added horizontal/vertical channel
// calibration constants for dual polarization; builds before that produce a
// block with those fields left zero.
type RadialDataBlock struct {
	LRTUP                       uint16
	UnambiguousRange            uint16
	HorizontalChannelNoiseLevel float32
	VerticalChannelNoiseLevel   float32
	NyquistVelocity             uint16
	RadialFlags                 uint16
	HorizontalCalibrationConst  float32 // Build 12.0+ only
	VerticalCalibrationConst    float32 // Build 12.0+ only
}

// DataMoment is a generic wrapper for a momentary data block (REF, VEL, SW,
// ZDR, PHI, RHO, or CFP), whose raw gate bytes are interpreted according to
// shared scale/offset/word-size rules (User 3.2.4.17.2, 17.6).
type DataMoment struct {
	GateCount      uint16
	FirstGateRange uint16
	GateInterval   uint16
	TOVER          uint16
	SNRThreshold   uint16
	ControlFlags   uint8
	DataWordSize   uint8
	Scale          float32
	Offset         float32
	Data           []byte
}

// DigitalRadarData is the fully decoded Message Type 31 body: a single
// radial's header plus whichever data blocks that radial carried.
type DigitalRadarData struct {
	Header        DigitalRadarDataHeader
	Volume        *VolumeDataBlock
	Elevation     *ElevationDataBlock
	Radial        *RadialDataBlock
	Reflectivity  *DataMoment
	Velocity      *DataMoment
	SpectrumWidth *DataMoment
	ZDR           *DataMoment
	PHI           *DataMoment
	RHO           *DataMoment
	CFP           *DataMoment
}

func (DigitalRadarData) isMessageContents() {}

// decodeDigitalRadarData decodes a Message Type 31 body. Rather than trusting
// a fixed block order, it follows the message's own data block pointer table
// (one uint32 offset per block, immediately following the header), so a
// build that reorders or omits blocks still decodes correctly.
func decodeDigitalRadarData(payload []byte, bc *buildContext) (*DigitalRadarData, error) {
	cur := NewCursor(payload)

	var h DigitalRadarDataHeader
	idBytes, err := cur.TakeBytes(4)
	if err != nil {
		return nil, errTooShort("radar identifier", 4, cur.Remaining())
	}
	copy(h.RadarIdentifier[:], idBytes)
	if h.CollectionTime, err = cur.ReadU32(); err != nil {
		return nil, err
	}
	if h.CollectionDate, err = cur.ReadU16(); err != nil {
		return nil, err
	}
	if h.AzimuthNumber, err = cur.ReadU16(); err != nil {
		return nil, err
	}
	if h.AzimuthAngle, err = cur.ReadF32(); err != nil {
		return nil, err
	}
	if h.CompressionIndicator, err = cur.ReadU8(); err != nil {
		return nil, err
	}
	if h.Spare, err = cur.ReadU8(); err != nil {
		return nil, err
	}
	if h.RadialLength, err = cur.ReadU16(); err != nil {
		return nil, err
	}
	if h.AzimuthResolutionSpacingCode, err = cur.ReadU8(); err != nil {
		return nil, err
	}
	if h.RadialStatus, err = cur.ReadU8(); err != nil {
		return nil, err
	}
	if h.ElevationNumber, err = cur.ReadU8(); err != nil {
		return nil, err
	}
	if h.CutSectorNumber, err = cur.ReadU8(); err != nil {
		return nil, err
	}
	if h.ElevationAngle, err = cur.ReadF32(); err != nil {
		return nil, err
	}
	if h.RadialSpotBlankingStatus, err = cur.ReadU8(); err != nil {
		return nil, err
	}
	if h.AzimuthIndexingMode, err = cur.ReadU8(); err != nil {
		return nil, err
	}
	if h.DataBlockCount, err = cur.ReadU16(); err != nil {
		return nil, err
	}

	pointers := make([]uint32, h.DataBlockCount)
	for i := range pointers {
		if pointers[i], err = cur.ReadU32(); err != nil {
			return nil, errTooShort("data block pointer", 4, cur.Remaining())
		}
	}
	headerSize := cur.Offset()

	result := &DigitalRadarData{Header: h}

	for _, ptr := range pointers {
		if int(ptr) < headerSize || int(ptr) >= len(payload) {
			return nil, &InvalidDataBlockPointer{Bytes: len(payload), Position: int(ptr)}
		}
		blockCur := NewCursor(payload[ptr:])
		blockID, err := blockCur.TakeBytes(4)
		if err != nil {
			return nil, errTooShort("data block id", 4, blockCur.Remaining())
		}
		name := string(blockID[1:4])

		switch name {
		case "VOL":
			vol, err := decodeVolumeDataBlock(blockCur, bc)
			if err != nil {
				return nil, fmt.Errorf("decoding VOL block: %w", err)
			}
			result.Volume = vol
		case "ELV":
			elv, err := decodeElevationDataBlock(blockCur)
			if err != nil {
				return nil, fmt.Errorf("decoding ELV block: %w", err)
			}
			result.Elevation = elv
		case "RAD":
			rad, err := decodeRadialDataBlock(blockCur, bc)
			if err != nil {
				return nil, fmt.Errorf("decoding RAD block: %w", err)
			}
			result.Radial = rad
		case "REF", "VEL", "SW ", "ZDR", "PHI", "RHO", "CFP":
			moment, err := decodeDataMoment(blockCur)
			if err != nil {
				return nil, fmt.Errorf("decoding %s block: %w", name, err)
			}
			switch name {
			case "REF":
				result.Reflectivity = moment
			case "VEL":
				result.Velocity = moment
			case "SW ":
				result.SpectrumWidth = moment
			case "ZDR":
				result.ZDR = moment
			case "PHI":
				result.PHI = moment
			case "RHO":
				result.RHO = moment
			case "CFP":
				result.CFP = moment
			}
		default:
			return nil, &UnknownDataBlockType{Name: name}
		}
	}

	return result, nil
}

func decodeVolumeDataBlock(cur *Cursor, bc *buildContext) (*VolumeDataBlock, error) {
	var v VolumeDataBlock
	var err error
	if v.LRTUP, err = cur.ReadU16(); err != nil {
		return nil, err
	}
	if v.VersionMajor, err = cur.ReadU8(); err != nil {
		return nil, err
	}
	if v.VersionMinor, err = cur.ReadU8(); err != nil {
		return nil, err
	}
	if v.Lat, err = cur.ReadF32(); err != nil {
		return nil, err
	}
	if v.Long, err = cur.ReadF32(); err != nil {
		return nil, err
	}
	if v.SiteHeight, err = cur.ReadI16(); err != nil {
		return nil, err
	}
	if v.TowerHeight, err = cur.ReadU16(); err != nil {
		return nil, err
	}
	if v.CalibrationConstant, err = cur.ReadF32(); err != nil {
		return nil, err
	}
	if v.HorizontalSHVTXPower, err = cur.ReadF32(); err != nil {
		return nil, err
	}
	if v.VerticalSHVTXPower, err = cur.ReadF32(); err != nil {
		return nil, err
	}
	if v.SystemDifferentialReflectivity, err = cur.ReadF32(); err != nil {
		return nil, err
	}
	if v.InitialSystemDifferentialPhase, err = cur.ReadF32(); err != nil {
		return nil, err
	}
	if v.VolumeCoveragePatternNumber, err = cur.ReadU16(); err != nil {
		return nil, err
	}
	if v.ProcessingStatus, err = cur.ReadU16(); err != nil {
		return nil, err
	}

	modern := v.LRTUP == 52
	if bc != nil && bc.known {
		modern = bc.build.AtLeast(20.0)
	}
	if modern {
		if v.ZDRBiasEstimateWeightedMean, err = cur.ReadU16(); err != nil {
			return nil, err
		}
		// 6 spare bytes follow; not surfaced.
		_ = cur.Advance(6)
	}
	return &v, nil
}

func decodeElevationDataBlock(cur *Cursor) (*ElevationDataBlock, error) {
	var e ElevationDataBlock
	var err error
	if e.LRTUP, err = cur.ReadU16(); err != nil {
		return nil, err
	}
	if e.ATMOS, err = cur.ReadI16(); err != nil {
		return nil, err
	}
	if e.CalibrationConst, err = cur.ReadF32(); err != nil {
		return nil, err
	}
	return &e, nil
}

func decodeRadialDataBlock(cur *Cursor, bc *buildContext) (*RadialDataBlock, error) {
	var r RadialDataBlock
	var err error
	if r.LRTUP, err = cur.ReadU16(); err != nil {
		return nil, err
	}
	if r.UnambiguousRange, err = cur.ReadU16(); err != nil {
		return nil, err
	}
	if r.HorizontalChannelNoiseLevel, err = cur.ReadF32(); err != nil {
		return nil, err
	}
	if r.VerticalChannelNoiseLevel, err = cur.ReadF32(); err != nil {
		return nil, err
	}
	if r.NyquistVelocity, err = cur.ReadU16(); err != nil {
		return nil, err
	}
	if r.RadialFlags, err = cur.ReadU16(); err != nil {
		return nil, err
	}

	modern := r.LRTUP == 28
	if bc != nil && bc.known {
		modern = bc.build.AtLeast(12.0)
	}
	if modern {
		if r.HorizontalCalibrationConst, err = cur.ReadF32(); err != nil {
			return nil, err
		}
		if r.VerticalCalibrationConst, err = cur.ReadF32(); err != nil {
			return nil, err
		}
	}
	return &r, nil
}

func decodeDataMoment(cur *Cursor) (*DataMoment, error) {
	var m DataMoment
	var err error
	if _, err = cur.ReadU32(); err != nil { // reserved
		return nil, err
	}
	if m.GateCount, err = cur.ReadU16(); err != nil {
		return nil, err
	}
	if m.FirstGateRange, err = cur.ReadU16(); err != nil {
		return nil, err
	}
	if m.GateInterval, err = cur.ReadU16(); err != nil {
		return nil, err
	}
	if m.TOVER, err = cur.ReadU16(); err != nil {
		return nil, err
	}
	if m.SNRThreshold, err = cur.ReadU16(); err != nil {
		return nil, err
	}
	if m.ControlFlags, err = cur.ReadU8(); err != nil {
		return nil, err
	}
	if m.DataWordSize, err = cur.ReadU8(); err != nil {
		return nil, err
	}
	if m.Scale, err = cur.ReadF32(); err != nil {
		return nil, err
	}
	if m.Offset, err = cur.ReadF32(); err != nil {
		return nil, err
	}

	size := int(m.GateCount) * int(m.DataWordSize) / 8
	data, err := cur.TakeBytes(size)
	if err != nil {
		return nil, errTooShort("data moment gates", size, cur.Remaining())
	}
	m.Data = data
	return &m, nil
}

// DigitalRadarDataLegacy is a decoded Message Type 1 (legacy Digital
// Radar Data) body (User 3.2.4.1, table II-A superseded by Message 31 from
// Build 10.0 onward, but still emitted by archives recorded before then).
type DigitalRadarDataLegacy struct {
	CollectionTime        uint32
	CollectionDate        uint16
	UnambiguousRange      uint16
	AzimuthAngle          uint16
	AzimuthNumber         uint16
	RadialStatus          uint16
	ElevationAngle        uint16
	ElevationNumber       uint16
	ReflectivityRange     uint16
	VelocityRange         uint16
	ReflectivityGateCount uint16
	VelocityGateCount     uint16
	SectorNumber          uint16
	CalibrationConstant   float32
	RadialDataStart       uint16
	VelocityDataStart     uint16
	VelocityResolution    uint16
	VolumeCoveragePattern uint16
	ReflectivityData      []byte
	VelocityData          []byte
}

func (DigitalRadarDataLegacy) isMessageContents() {}

func decodeDigitalRadarDataLegacy(payload []byte) (*DigitalRadarDataLegacy, error) {
	cur := NewCursor(payload)
	var d DigitalRadarDataLegacy
	var err error
	if d.CollectionTime, err = cur.ReadU32(); err != nil {
		return nil, err
	}
	if d.CollectionDate, err = cur.ReadU16(); err != nil {
		return nil, err
	}
	if d.UnambiguousRange, err = cur.ReadU16(); err != nil {
		return nil, err
	}
	if d.AzimuthAngle, err = cur.ReadU16(); err != nil {
		return nil, err
	}
	if d.AzimuthNumber, err = cur.ReadU16(); err != nil {
		return nil, err
	}
	if d.RadialStatus, err = cur.ReadU16(); err != nil {
		return nil, err
	}
	if d.ElevationAngle, err = cur.ReadU16(); err != nil {
		return nil, err
	}
	if d.ElevationNumber, err = cur.ReadU16(); err != nil {
		return nil, err
	}
	if d.ReflectivityRange, err = cur.ReadU16(); err != nil {
		return nil, err
	}
	if d.VelocityRange, err = cur.ReadU16(); err != nil {
		return nil, err
	}
	if d.ReflectivityGateCount, err = cur.ReadU16(); err != nil {
		return nil, err
	}
	if d.VelocityGateCount, err = cur.ReadU16(); err != nil {
		return nil, err
	}
	if d.SectorNumber, err = cur.ReadU16(); err != nil {
		return nil, err
	}
	if d.CalibrationConstant, err = cur.ReadF32(); err != nil {
		return nil, err
	}
	if d.RadialDataStart, err = cur.ReadU16(); err != nil {
		return nil, err
	}
	if d.VelocityDataStart, err = cur.ReadU16(); err != nil {
		return nil, err
	}
	if d.VelocityResolution, err = cur.ReadU16(); err != nil {
		return nil, err
	}
	if d.VolumeCoveragePattern, err = cur.ReadU16(); err != nil {
		return nil, err
	}
	// 14 spare halfwords precede the gate arrays.
	if err = cur.Advance(14 * 2); err != nil {
		return nil, err
	}
	if d.ReflectivityData, err = cur.TakeBytes(int(d.ReflectivityGateCount)); err != nil {
		return nil, errTooShort("legacy reflectivity gates", int(d.ReflectivityGateCount), cur.Remaining())
	}
	if d.VelocityData, err = cur.TakeBytes(int(d.VelocityGateCount)); err != nil {
		return nil, errTooShort("legacy velocity gates", int(d.VelocityGateCount), cur.Remaining())
	}
	return &d, nil
}

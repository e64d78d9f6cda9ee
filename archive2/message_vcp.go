package archive2

import "math"

// VolumeCoveragePatternHeader is the Message Type 5 fixed header
// (User 3.2.4.9, Table III-A).
type VolumeCoveragePatternHeader struct {
	MessageSize            uint16
	PatternTypeRaw         uint16
	PatternNumber          uint16
	NumberOfElevationCuts  uint16
	Version                uint8
	ClutterMapGroupNumber  uint8
	DopplerVelocityResRaw  uint8
	PulseWidthRaw          uint8
	VCPSequencing          uint16
	VCPSupplementalData    uint16
}

// DopplerVelocityResolution returns the doppler velocity resolution in m/s:
// code 2 -> 0.5, code 4 -> 1.0, anything else -> 0 (unknown).
func (h VolumeCoveragePatternHeader) DopplerVelocityResolution() float32 {
	switch h.DopplerVelocityResRaw {
	case 2:
		return 0.5
	case 4:
		return 1.0
	default:
		return 0
	}
}

// PulseWidth reports the pulse width category: code 2 -> "short", code 4 ->
// "long", anything else -> "unknown".
func (h VolumeCoveragePatternHeader) PulseWidth() string {
	switch h.PulseWidthRaw {
	case 2:
		return "short"
	case 4:
		return "long"
	default:
		return "unknown"
	}
}

// SequencingNumberOfElevations returns the number-of-elevations field packed
// into VCPSequencing bits 0-4.
func (h VolumeCoveragePatternHeader) SequencingNumberOfElevations() uint8 {
	return uint8(h.VCPSequencing & 0x1F)
}

// SequencingMaxSAILSCuts returns VCPSequencing bits 5-6.
func (h VolumeCoveragePatternHeader) SequencingMaxSAILSCuts() uint8 {
	return uint8((h.VCPSequencing >> 5) & 0x03)
}

// SequencingActive reports VCPSequencing bit 13.
func (h VolumeCoveragePatternHeader) SequencingActive() bool {
	return (h.VCPSequencing>>13)&1 == 1
}

// SequencingTruncated reports VCPSequencing bit 14.
func (h VolumeCoveragePatternHeader) SequencingTruncated() bool {
	return (h.VCPSequencing>>14)&1 == 1
}

// IsSAILSVCP reports whether this VCP performs Supplemental Adaptive
// Intra-Volume Low-Level Scans (VCPSupplementalData bit 0).
func (h VolumeCoveragePatternHeader) IsSAILSVCP() bool { return h.VCPSupplementalData&1 == 1 }

// NumberOfSAILSCuts returns VCPSupplementalData bits 1-3.
func (h VolumeCoveragePatternHeader) NumberOfSAILSCuts() uint8 {
	return uint8((h.VCPSupplementalData >> 1) & 0x07)
}

// IsMRLEVCP reports whether this VCP performs Mid-volume Rescan of Low-level
// Elevations (VCPSupplementalData bit 4).
func (h VolumeCoveragePatternHeader) IsMRLEVCP() bool {
	return (h.VCPSupplementalData>>4)&1 == 1
}

// NumberOfMRLECuts returns VCPSupplementalData bits 5-7.
func (h VolumeCoveragePatternHeader) NumberOfMRLECuts() uint8 {
	return uint8((h.VCPSupplementalData >> 5) & 0x07)
}

// IsMPDAVCP reports whether this VCP performs Multi-PRF Dealiasing Algorithm
// processing (VCPSupplementalData bit 11).
func (h VolumeCoveragePatternHeader) IsMPDAVCP() bool {
	return (h.VCPSupplementalData>>11)&1 == 1
}

// IsBaseTiltVCP reports VCPSupplementalData bit 12.
func (h VolumeCoveragePatternHeader) IsBaseTiltVCP() bool {
	return (h.VCPSupplementalData>>12)&1 == 1
}

// NumberOfBaseTilts returns VCPSupplementalData bits 13-15.
func (h VolumeCoveragePatternHeader) NumberOfBaseTilts() uint8 {
	return uint8((h.VCPSupplementalData >> 13) & 0x07)
}

// VCPElevationCut is one elevation cut's radar settings within a volume
// coverage pattern (User 3.2.4.9, Table III-B).
type VCPElevationCut struct {
	ElevationAngleRaw                  uint16
	ChannelConfiguration               uint8
	WaveformType                       uint8
	SuperResolutionControl             uint8
	SurveillancePRFNumber              uint8
	SurveillancePRFPulseCountRadial    uint16
	AzimuthRateRaw                     uint16
	ReflectivityThreshold              int16
	VelocityThreshold                  int16
	SpectrumWidthThreshold             int16
	DifferentialReflectivityThreshold  int16
	DifferentialPhaseThreshold         int16
	CorrelationCoefficientThreshold    int16
	Sector1EdgeAngleRaw                uint16
	Sector1DopplerPRFNumber            uint16
	Sector1DopplerPRFPulseCountRadial  uint16
	SupplementalData                   uint16
	Sector2EdgeAngleRaw                uint16
	Sector2DopplerPRFNumber            uint16
	Sector2DopplerPRFPulseCountRadial  uint16
	EBCAngleRaw                        uint16
	Sector3EdgeAngleRaw                uint16
	Sector3DopplerPRFNumber            uint16
	Sector3DopplerPRFPulseCountRadial  uint16
}

// ElevationAngle decodes the ICD's packed binary angle format (Table III-A
// angle encoding), returning degrees.
func (c VCPElevationCut) ElevationAngle() float64 { return decodeAngle(c.ElevationAngleRaw) }

// AzimuthRate decodes the packed angular-velocity format, returning
// degrees/second.
func (c VCPElevationCut) AzimuthRate() float64 { return decodeAngularVelocity(c.AzimuthRateRaw) }

// decodeAngle decodes a binary angle as defined in ICD Table III-A: each bit
// from position 3 to 15 contributes 180 * 2^(i-15) degrees.
func decodeAngle(raw uint16) float64 {
	var angle float64
	for i := 3; i < 16; i++ {
		if (raw>>uint(i))&1 == 1 {
			angle += 180.0 * math.Pow(2, float64(i-15))
		}
	}
	return angle
}

// decodeAngularVelocity decodes a binary angular velocity as defined in ICD
// Table XI-D: bits 3-14 contribute 22.5 * 2^(i-14) degrees/second, bit 15 is
// the sign.
func decodeAngularVelocity(raw uint16) float64 {
	var v float64
	for i := 3; i < 15; i++ {
		if (raw>>uint(i))&1 == 1 {
			v += 22.5 * math.Pow(2, float64(i-14))
		}
	}
	if (raw>>15)&1 == 1 {
		v = -v
	}
	return v
}

// VolumeCoveragePattern is the fully decoded Message Type 5 body.
type VolumeCoveragePattern struct {
	Header     VolumeCoveragePatternHeader
	Elevations []VCPElevationCut
}

func (VolumeCoveragePattern) isMessageContents() {}

func decodeVolumeCoveragePattern(payload []byte) (*VolumeCoveragePattern, error) {
	cur := NewCursor(payload)
	var h VolumeCoveragePatternHeader
	var err error

	if h.MessageSize, err = cur.ReadU16(); err != nil {
		return nil, err
	}
	if h.PatternTypeRaw, err = cur.ReadU16(); err != nil {
		return nil, err
	}
	if h.PatternNumber, err = cur.ReadU16(); err != nil {
		return nil, err
	}
	if h.NumberOfElevationCuts, err = cur.ReadU16(); err != nil {
		return nil, err
	}
	if h.Version, err = cur.ReadU8(); err != nil {
		return nil, err
	}
	if h.ClutterMapGroupNumber, err = cur.ReadU8(); err != nil {
		return nil, err
	}
	if h.DopplerVelocityResRaw, err = cur.ReadU8(); err != nil {
		return nil, err
	}
	if h.PulseWidthRaw, err = cur.ReadU8(); err != nil {
		return nil, err
	}
	if err = cur.Advance(4); err != nil { // reserved_1
		return nil, err
	}
	if h.VCPSequencing, err = cur.ReadU16(); err != nil {
		return nil, err
	}
	if h.VCPSupplementalData, err = cur.ReadU16(); err != nil {
		return nil, err
	}
	if err = cur.Advance(2); err != nil { // reserved_2
		return nil, err
	}

	vcp := &VolumeCoveragePattern{Header: h}
	for i := uint16(0); i < h.NumberOfElevationCuts; i++ {
		cut, err := decodeVCPElevationCut(cur)
		if err != nil {
			return nil, err
		}
		vcp.Elevations = append(vcp.Elevations, cut)
	}
	return vcp, nil
}

func decodeVCPElevationCut(cur *Cursor) (VCPElevationCut, error) {
	var c VCPElevationCut
	var err error

	u16 := func(dst *uint16) {
		if err != nil {
			return
		}
		*dst, err = cur.ReadU16()
	}
	i16 := func(dst *int16) {
		if err != nil {
			return
		}
		*dst, err = cur.ReadI16()
	}
	u8 := func(dst *uint8) {
		if err != nil {
			return
		}
		*dst, err = cur.ReadU8()
	}

	u16(&c.ElevationAngleRaw)
	u8(&c.ChannelConfiguration)
	u8(&c.WaveformType)
	u8(&c.SuperResolutionControl)
	u8(&c.SurveillancePRFNumber)
	u16(&c.SurveillancePRFPulseCountRadial)
	u16(&c.AzimuthRateRaw)
	i16(&c.ReflectivityThreshold)
	i16(&c.VelocityThreshold)
	i16(&c.SpectrumWidthThreshold)
	i16(&c.DifferentialReflectivityThreshold)
	i16(&c.DifferentialPhaseThreshold)
	i16(&c.CorrelationCoefficientThreshold)
	u16(&c.Sector1EdgeAngleRaw)
	u16(&c.Sector1DopplerPRFNumber)
	u16(&c.Sector1DopplerPRFPulseCountRadial)
	u16(&c.SupplementalData)
	u16(&c.Sector2EdgeAngleRaw)
	u16(&c.Sector2DopplerPRFNumber)
	u16(&c.Sector2DopplerPRFPulseCountRadial)
	u16(&c.EBCAngleRaw)
	u16(&c.Sector3EdgeAngleRaw)
	u16(&c.Sector3DopplerPRFNumber)
	u16(&c.Sector3DopplerPRFPulseCountRadial)
	if err == nil {
		err = cur.Advance(2) // reserved
	}

	return c, err
}

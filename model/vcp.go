package model

import "github.com/jddeal/nexrad/archive2"

// ElevationCut is one elevation's scan strategy within a Volume Coverage
// Pattern: beam angle, waveform, PRF, and the SNR thresholds the RDA applies
// to decide whether a gate's signal is usable.
type ElevationCut struct {
	ElevationAngleDeg      float64
	ChannelConfiguration   uint8
	WaveformType           uint8
	SuperResolutionControl uint8
	SurveillancePRFNumber  uint8
	SurveillancePRFCount   uint16
	AzimuthRateDegPerSec   float64

	// Threshold* fields are the raw signed 16-bit SNR threshold codes as
	// transmitted; the ICD does not document a public scaling constant for
	// them, so they are exposed unconverted (see DESIGN.md).
	ReflectivityThresholdRaw             int16
	VelocityThresholdRaw                 int16
	SpectrumWidthThresholdRaw            int16
	DifferentialReflectivityThresholdRaw int16
	DifferentialPhaseThresholdRaw        int16
	CorrelationCoefficientThresholdRaw   int16
}

// IsSuperResolution reports whether this cut uses half-degree azimuth
// sampling (bit 0 of SuperResolutionControl).
func (c ElevationCut) IsSuperResolution() bool {
	return c.SuperResolutionControl&0x01 != 0
}

// VolumeCoveragePattern is the consumer-facing projection of a decoded
// Message Type 5 body: scan strategy metadata plus the ordered elevation
// cuts that make up one full volume.
type VolumeCoveragePattern struct {
	PatternNumber         uint16
	Version               uint8
	ClutterMapGroupNumber uint8
	DopplerVelocityResMps float32
	PulseWidth            string

	SequenceActive    bool
	SequenceTruncated bool

	SAILSActive   bool
	SAILSCutCount uint8
	MRLEActive    bool
	MRLECutCount  uint8
	MPDAActive    bool

	BaseTiltActive   bool
	BaseTiltCutCount uint8

	Elevations []ElevationCut
}

// NewVolumeCoveragePattern projects a decoded wire-format VCP into the
// domain representation, resolving packed angle/velocity encodings and
// sequencing bitfields into plain fields.
func NewVolumeCoveragePattern(raw *archive2.VolumeCoveragePattern) *VolumeCoveragePattern {
	h := raw.Header
	vcp := &VolumeCoveragePattern{
		PatternNumber:         h.PatternNumber,
		Version:               h.Version,
		ClutterMapGroupNumber: h.ClutterMapGroupNumber,
		DopplerVelocityResMps: h.DopplerVelocityResolution(),
		PulseWidth:            h.PulseWidth(),
		SequenceActive:        h.SequencingActive(),
		SequenceTruncated:     h.SequencingTruncated(),
		SAILSActive:           h.IsSAILSVCP(),
		SAILSCutCount:         h.NumberOfSAILSCuts(),
		MRLEActive:            h.IsMRLEVCP(),
		MRLECutCount:          h.NumberOfMRLECuts(),
		MPDAActive:            h.IsMPDAVCP(),
		BaseTiltActive:        h.IsBaseTiltVCP(),
		BaseTiltCutCount:      h.NumberOfBaseTilts(),
	}
	for _, cut := range raw.Elevations {
		vcp.Elevations = append(vcp.Elevations, ElevationCut{
			ElevationAngleDeg:                     cut.ElevationAngle(),
			ChannelConfiguration:                  cut.ChannelConfiguration,
			WaveformType:                          cut.WaveformType,
			SuperResolutionControl:                cut.SuperResolutionControl,
			SurveillancePRFNumber:                 cut.SurveillancePRFNumber,
			SurveillancePRFCount:                  cut.SurveillancePRFPulseCountRadial,
			AzimuthRateDegPerSec:                  cut.AzimuthRate(),
			ReflectivityThresholdRaw:              cut.ReflectivityThreshold,
			VelocityThresholdRaw:                  cut.VelocityThreshold,
			SpectrumWidthThresholdRaw:             cut.SpectrumWidthThreshold,
			DifferentialReflectivityThresholdRaw:  cut.DifferentialReflectivityThreshold,
			DifferentialPhaseThresholdRaw:         cut.DifferentialPhaseThreshold,
			CorrelationCoefficientThresholdRaw:    cut.CorrelationCoefficientThreshold,
		})
	}
	return vcp
}

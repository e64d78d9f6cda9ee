package model

import (
	"time"

	"github.com/jddeal/nexrad/archive2"
)

// Radial is one beam direction's worth of decoded moment data within a
// sweep.
type Radial struct {
	CollectionTime    time.Time
	AzimuthNumber     uint16
	AzimuthAngleDeg   float32
	AzimuthSpacingDeg float32
	Status            uint8
	ElevationNumber   uint8
	ElevationAngleDeg float32

	Reflectivity             *MomentData
	Velocity                 *MomentData
	SpectrumWidth            *MomentData
	DifferentialReflectivity *MomentData
	DifferentialPhase        *MomentData
	CorrelationCoefficient   *MomentData
	ClutterFilterPower       *MomentData
}

func momentFrom(m *archive2.DataMoment) *MomentData {
	if m == nil {
		return nil
	}
	return &MomentData{
		GateCount:      int(m.GateCount),
		FirstGateRange: int(m.FirstGateRange),
		GateInterval:   int(m.GateInterval),
		Scale:          m.Scale,
		Offset:         m.Offset,
		WordSize:       int(m.DataWordSize),
		Raw:            m.Data,
	}
}

// NewRadial projects a decoded Message Type 31 body into a domain Radial,
// populating only the moment products that were actually present.
func NewRadial(dr *archive2.DigitalRadarData) *Radial {
	h := dr.Header
	return &Radial{
		CollectionTime:           h.DateTime(),
		AzimuthNumber:            h.AzimuthNumber,
		AzimuthAngleDeg:          h.AzimuthAngle,
		AzimuthSpacingDeg:        h.AzimuthResolutionSpacing(),
		Status:                   h.RadialStatus,
		ElevationNumber:          h.ElevationNumber,
		ElevationAngleDeg:        h.ElevationAngle,
		Reflectivity:             momentFrom(dr.Reflectivity),
		Velocity:                 momentFrom(dr.Velocity),
		SpectrumWidth:            momentFrom(dr.SpectrumWidth),
		DifferentialReflectivity: momentFrom(dr.ZDR),
		DifferentialPhase:        momentFrom(dr.PHI),
		CorrelationCoefficient:   momentFrom(dr.RHO),
		ClutterFilterPower:       momentFrom(dr.CFP),
	}
}

// Legacy Message Type 1 gate data is 8-bit and uses fixed, ICD-documented
// scale/offset pairs rather than the self-describing ones Type 31 carries.
const (
	legacyReflectivityScale  = 2.0
	legacyReflectivityOffset = 66.0
	legacyVelocityOffset     = 129.0
)

// NewRadialFromLegacy projects a decoded Message Type 1 (legacy Digital
// Radar Data) body into a domain Radial, using the fixed gate geometry and
// scale/offset pairs the legacy format does not self-describe (§4.10).
func NewRadialFromLegacy(dr *archive2.DigitalRadarDataLegacy) *Radial {
	r := &Radial{
		CollectionTime:    archive2.ModifiedJulianDateTime(dr.CollectionDate, dr.CollectionTime),
		AzimuthAngleDeg:   float32(dr.AzimuthAngle) / 8 * (180.0 / 4096.0),
		AzimuthSpacingDeg: 1,
		ElevationNumber:   uint8(dr.ElevationNumber),
		ElevationAngleDeg: float32(dr.ElevationAngle) / 8 * (180.0 / 4096.0),
		Status:            uint8(dr.RadialStatus),
	}

	if len(dr.ReflectivityData) > 0 {
		r.Reflectivity = &MomentData{
			GateCount:      int(dr.ReflectivityGateCount),
			FirstGateRange: int(dr.ReflectivityRange),
			GateInterval:   1000,
			Scale:          legacyReflectivityScale,
			Offset:         legacyReflectivityOffset,
			WordSize:       8,
			Raw:            dr.ReflectivityData,
		}
	}

	if len(dr.VelocityData) > 0 {
		velocityScale := float32(1.0)
		if dr.VelocityResolution == 2 {
			velocityScale = 2.0
		}
		r.Velocity = &MomentData{
			GateCount:      int(dr.VelocityGateCount),
			FirstGateRange: int(dr.VelocityRange),
			GateInterval:   250,
			Scale:          velocityScale,
			Offset:         legacyVelocityOffset,
			WordSize:       8,
			Raw:            dr.VelocityData,
		}
	}

	return r
}

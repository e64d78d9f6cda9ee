package model

import (
	"testing"

	"github.com/jddeal/nexrad/archive2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVolumeCoveragePatternProjection(t *testing.T) {
	raw := &archive2.VolumeCoveragePattern{
		Header: archive2.VolumeCoveragePatternHeader{
			PatternNumber:         212,
			Version:               1,
			ClutterMapGroupNumber: 3,
			DopplerVelocityResRaw: 2,
			PulseWidthRaw:         4,
			VCPSupplementalData:   0b1, // SAILS active
		},
		Elevations: []archive2.VCPElevationCut{
			{ChannelConfiguration: 1, WaveformType: 2},
		},
	}

	vcp := NewVolumeCoveragePattern(raw)
	assert.Equal(t, uint16(212), vcp.PatternNumber)
	assert.InDelta(t, float32(0.5), vcp.DopplerVelocityResMps, 0.001)
	assert.Equal(t, "long", vcp.PulseWidth)
	assert.True(t, vcp.SAILSActive)
	require.Len(t, vcp.Elevations, 1)
	assert.Equal(t, uint8(1), vcp.Elevations[0].ChannelConfiguration)
}

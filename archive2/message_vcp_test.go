package archive2

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeAngleZero(t *testing.T) {
	assert.Equal(t, 0.0, decodeAngle(0))
}

func TestDecodeAngleKnownValues(t *testing.T) {
	// Bit 15 alone contributes 180 * 2^0 = 180 degrees.
	assert.InDelta(t, 180.0, decodeAngle(1<<15), 0.0001)
	// Bit 14 contributes 180 * 2^-1 = 90 degrees.
	assert.InDelta(t, 90.0, decodeAngle(1<<14), 0.0001)
	// Bits 15+14 together -> 270 degrees.
	assert.InDelta(t, 270.0, decodeAngle(1<<15|1<<14), 0.0001)
}

func TestDecodeAngularVelocitySign(t *testing.T) {
	positive := decodeAngularVelocity(1 << 14) // bit 14 -> 22.5 * 2^0 = 22.5
	assert.InDelta(t, 22.5, positive, 0.0001)

	negative := decodeAngularVelocity(1<<14 | 1<<15) // same magnitude, sign bit set
	assert.InDelta(t, -22.5, negative, 0.0001)
}

func TestDecodeVolumeCoveragePattern(t *testing.T) {
	header := make([]byte, 22) // fixed fields + 4-byte reserved_1 + sequencing fields + 2-byte reserved_2
	putU16(header, 0, 20) // message size
	putU16(header, 2, 0)  // pattern type
	putU16(header, 4, 212)
	putU16(header, 6, 1) // number of elevation cuts
	header[8] = 1         // version
	header[9] = 0         // clutter map group number
	header[10] = 2        // doppler velocity res code -> 0.5
	header[11] = 2        // pulse width code -> short
	// 4 reserved bytes at [12:16]
	putU16(header, 16, 1) // vcp sequencing
	putU16(header, 18, 0) // vcp supplemental data

	cut := make([]byte, 46)
	putU16(cut, 0, 1<<15) // elevation angle raw -> 180 degrees
	cut[2] = 1            // channel configuration
	cut[3] = 1            // waveform type
	cut[4] = 0            // super res control
	cut[5] = 0            // surveillance prf number

	payload := append(header, cut...)

	vcp, err := decodeVolumeCoveragePattern(payload)
	require.NoError(t, err)
	assert.Equal(t, uint16(212), vcp.Header.PatternNumber)
	assert.InDelta(t, float32(0.5), vcp.Header.DopplerVelocityResolution(), 0.001)
	assert.Equal(t, "short", vcp.Header.PulseWidth())
	require.Len(t, vcp.Elevations, 1)
	assert.InDelta(t, 180.0, vcp.Elevations[0].ElevationAngle(), 0.0001)
}

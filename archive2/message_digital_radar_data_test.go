package archive2

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func putU16(b []byte, off int, v uint16) { binary.BigEndian.PutUint16(b[off:], v) }
func putU32(b []byte, off int, v uint32) { binary.BigEndian.PutUint32(b[off:], v) }
func putF32(b []byte, off int, v float32) {
	binary.BigEndian.PutUint32(b[off:], math.Float32bits(v))
}

// buildRadarHeader writes the fixed 32-byte Type 31 header with the given
// data block count, returning the full byte slice.
func buildRadarHeader(dataBlockCount uint16) []byte {
	h := make([]byte, 32)
	copy(h[0:4], "KDMX")
	putU32(h, 4, 0)               // collection time
	putU16(h, 8, 7000)            // collection date
	putU16(h, 10, 1)              // azimuth number
	putF32(h, 12, 90.5)           // azimuth angle
	h[16] = 0                     // compression indicator
	h[17] = 0                     // spare
	putU16(h, 18, 0)              // radial length
	h[20] = 0                     // azimuth resolution spacing code
	h[21] = RadialStatusStartOfElevationScan
	h[22] = 1 // elevation number
	h[23] = 0 // cut sector number
	putF32(h, 24, 0.5)            // elevation angle
	h[28] = 0                     // spot blanking status
	h[29] = 0                     // azimuth indexing mode
	putU16(h, 30, dataBlockCount)
	return h
}

func TestDecodeDigitalRadarDataVolumeBlockLegacy(t *testing.T) {
	header := buildRadarHeader(1)

	vol := make([]byte, 44)
	copy(vol[0:4], "RVOL")
	putU16(vol, 4, 44) // LRTUP: legacy
	vol[6] = 1         // version major
	vol[7] = 25        // version minor
	putF32(vol, 8, 41.7)
	putF32(vol, 12, -93.7)
	binary.BigEndian.PutUint16(vol[16:], uint16(int16(300)))
	putU16(vol, 18, 10)
	putF32(vol, 20, 1.0)
	putF32(vol, 24, 90.0)
	putF32(vol, 28, 90.0)
	putF32(vol, 32, 0.0)
	putF32(vol, 36, 0.0)
	putU16(vol, 40, 12)
	putU16(vol, 42, 0)

	volOffset := len(header) + 4 // header + 1 pointer
	payload := make([]byte, volOffset+len(vol))
	copy(payload, header)
	putU32(payload, len(header), uint32(volOffset))
	copy(payload[volOffset:], vol)

	dr, err := decodeDigitalRadarData(payload, &buildContext{})
	require.NoError(t, err)
	require.NotNil(t, dr.Volume)
	assert.Equal(t, uint16(44), dr.Volume.LRTUP)
	assert.InDelta(t, 41.7, dr.Volume.Lat, 0.01)
	assert.Equal(t, uint16(0), dr.Volume.ZDRBiasEstimateWeightedMean)
}

func TestDecodeDigitalRadarDataInvalidPointer(t *testing.T) {
	header := buildRadarHeader(1)
	payload := make([]byte, len(header)+4)
	copy(payload, header)
	// Pointer far beyond the payload's length.
	putU32(payload, len(header), uint32(len(payload)+100))

	_, err := decodeDigitalRadarData(payload, &buildContext{})
	require.Error(t, err)
	var bad *InvalidDataBlockPointer
	require.ErrorAs(t, err, &bad)
}

func TestDecodeDigitalRadarDataUnknownBlockType(t *testing.T) {
	header := buildRadarHeader(1)
	blockOffset := len(header) + 4
	payload := make([]byte, blockOffset+4)
	copy(payload, header)
	putU32(payload, len(header), uint32(blockOffset))
	copy(payload[blockOffset:], "RXXX")

	_, err := decodeDigitalRadarData(payload, &buildContext{})
	require.Error(t, err)
	var unknown *UnknownDataBlockType
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "XXX", unknown.Name)
}

func TestDecodeDataMomentGateSizing(t *testing.T) {
	body := make([]byte, 24) // moment header after the 4-byte block id
	putU16(body, 4, 10) // gate count
	putU16(body, 6, 0)  // first gate range
	putU16(body, 8, 250)
	putU16(body, 10, 0)
	putU16(body, 12, 0)
	body[14] = 0  // control flags
	body[15] = 8  // data word size (1 byte per gate)
	putF32(body, 16, 2.0)
	putF32(body, 20, 66.0)
	gates := make([]byte, 10)
	for i := range gates {
		gates[i] = byte(i + 1)
	}
	body = append(body, gates...)

	cur := NewCursor(body)
	m, err := decodeDataMoment(cur)
	require.NoError(t, err)
	assert.Equal(t, uint16(10), m.GateCount)
	assert.Len(t, m.Data, 10)
	assert.Equal(t, gates, m.Data)
}

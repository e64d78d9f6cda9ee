package archive2

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModifiedJulianDateTimeLaw(t *testing.T) {
	base := ModifiedJulianDateTime(1, 0)

	cases := []struct {
		n uint16
		m uint32
	}{
		{1, 0},
		{2, 0},
		{1, 86_399_999},
		{366, 43_200_000},
		{40000, 12_345_678},
	}

	for _, c := range cases {
		got := ModifiedJulianDateTime(c.n, c.m)
		want := base.Add(time.Duration(int(c.n)-1) * 24 * time.Hour).Add(time.Duration(c.m) * time.Millisecond)
		assert.True(t, got.Equal(want), "date_time(%d, %d) = %v, want %v", c.n, c.m, got, want)
	}
}

func TestDecodeVolumeHeaderRecord(t *testing.T) {
	data := make([]byte, 24)
	copy(data[0:9], "AR2V0006.")
	copy(data[9:12], "879")
	data[12], data[13], data[14], data[15] = 0x00, 0x00, 0x1B, 0x58 // 7000
	data[16], data[17], data[18], data[19] = 0x00, 0x00, 0x00, 0x00 // 0 ms
	copy(data[20:24], "KDMX")

	cur := NewCursor(data)
	vh, err := decodeVolumeHeaderRecord(cur)
	require.NoError(t, err)

	assert.Equal(t, "AR2V0006.879", vh.Filename())
	assert.Equal(t, "KDMX", vh.ICAOString())
	assert.Equal(t, int32(7000), vh.ModifiedDate)
	assert.True(t, vh.DateTime().Equal(ModifiedJulianDateTime(7000, 0)))
}

func TestDecodeMessageHeader(t *testing.T) {
	data := []byte{
		0x04, 0xB2, // segment size 1202 halfwords
		0x00,       // redundant channel
		31,         // message type
		0x00, 0x01, // sequence number
		0x1B, 0x58, // julian date 7000
		0x00, 0x00, 0x00, 0x00, // millis of day
		0x00, 0x01, // segment count
		0x00, 0x01, // segment number
	}

	cur := NewCursor(data)
	h, err := decodeMessageHeader(cur)
	require.NoError(t, err)

	assert.Equal(t, uint8(31), h.MessageType)
	assert.Equal(t, uint16(1), h.SequenceNumber)
	assert.Equal(t, 2404, h.SizeBytes())
	assert.Equal(t, uint16(1), h.SegmentCount)
}

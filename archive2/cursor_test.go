package archive2

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorSequentialReads(t *testing.T) {
	data := []byte{0x00, 0x2A, 0xFF, 0xFF, 0x00, 0x00, 0x01, 0x02, 0x03, 0x04}
	cur := NewCursor(data)

	u16, err := cur.ReadU16()
	require.NoError(t, err)
	assert.Equal(t, uint16(42), u16)

	i16, err := cur.ReadI16()
	require.NoError(t, err)
	assert.Equal(t, int16(-1), i16)

	u32, err := cur.ReadU32()
	require.NoError(t, err)
	assert.Equal(t, uint32(0x00000102), u32)

	assert.Equal(t, 2, cur.Remaining())
}

func TestCursorTakeBytesEOF(t *testing.T) {
	cur := NewCursor([]byte{1, 2, 3})
	_, err := cur.TakeBytes(4)
	require.Error(t, err)
	var eof *ErrUnexpectedEOF
	require.ErrorAs(t, err, &eof)
	assert.Equal(t, 4, eof.Requested)
	assert.Equal(t, 3, eof.Remaining)
}

func TestCursorSeekAndPeek(t *testing.T) {
	cur := NewCursor([]byte{10, 20, 30, 40, 50})
	require.NoError(t, cur.SeekTo(3))
	peeked, err := cur.PeekBytes(2)
	require.NoError(t, err)
	assert.Equal(t, []byte{40, 50}, peeked)
	assert.Equal(t, 3, cur.Offset(), "PeekBytes must not advance the position")
}

func TestSegmentedCursorReadsWithinSingleSegment(t *testing.T) {
	segs := [][]byte{
		{0x00, 0x01, 0x02, 0x03},
		{0x04, 0x05, 0x06, 0x07},
	}
	seg := NewSegmentedCursor(segs)

	b, err := seg.TakeBytes(2)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0x01}, b)

	// Confirm zero-copy: mutating the returned slice mutates the backing
	// segment.
	b[0] = 0xAA
	assert.Equal(t, byte(0xAA), segs[0][0])
}

func TestSegmentedCursorReadSpanningBoundary(t *testing.T) {
	segs := [][]byte{
		{0x01, 0x02, 0x03},
		{0x04, 0x05, 0x06},
	}
	seg := NewSegmentedCursor(segs)

	require.NoError(t, seg.Advance(2))
	b, err := seg.TakeBytes(3)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x03, 0x04, 0x05}, b)
	assert.Equal(t, 1, seg.Remaining())
}

func TestSegmentedCursorReadU32SpanningBoundary(t *testing.T) {
	segs := [][]byte{
		{0xDE, 0xAD},
		{0xBE, 0xEF},
	}
	seg := NewSegmentedCursor(segs)

	v, err := seg.ReadU32()
	require.NoError(t, err)
	assert.Equal(t, uint32(0xDEADBEEF), v)
}

func TestSegmentedCursorEOF(t *testing.T) {
	seg := NewSegmentedCursor([][]byte{{1, 2}})
	_, err := seg.TakeBytes(5)
	require.Error(t, err)
	var eof *ErrUnexpectedEOF
	require.ErrorAs(t, err, &eof)
}

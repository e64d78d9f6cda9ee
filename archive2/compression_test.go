package archive2

import (
	"bytes"
	"testing"

	"github.com/dsnet/compress/bzip2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bzip2Compress(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w, err := bzip2.NewWriter(&buf, nil)
	require.NoError(t, err)
	_, err = w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func TestDecompressRoundTrip(t *testing.T) {
	payload := bytes.Repeat([]byte("NEXRAD clutter filter bypass map test payload "), 64)
	compressed := bzip2Compress(t, payload)

	prefixed := make([]byte, 4+len(compressed))
	copy(prefixed[4:], compressed)

	rec := Record{data: prefixed}
	require.True(t, IsCompressed(rec.Data()))

	out, err := Decompress(rec)
	require.NoError(t, err)
	assert.Equal(t, payload, out)
	assert.Greater(t, len(out), 0)
}

func TestDecompressBareRecord(t *testing.T) {
	payload := []byte("short payload")
	compressed := bzip2Compress(t, payload)

	rec := Record{data: compressed}
	out, err := Decompress(rec)
	require.NoError(t, err)
	assert.Equal(t, payload, out)
}

func TestDecompressUncompressedRejected(t *testing.T) {
	rec := Record{data: []byte{1, 2, 3, 4, 5, 6}}
	_, err := Decompress(rec)
	assert.ErrorIs(t, err, ErrUncompressedData)
}

package archive2

import (
	"bytes"
	"fmt"
	"io"

	"github.com/dsnet/compress/bzip2"
)

// ErrUncompressedData is returned by Decompress when asked to decompress a
// record that is not bzip2-compressed.
var ErrUncompressedData = fmt.Errorf("attempted to decompress uncompressed data")

// Decompress inflates a compressed LDM record's bzip2 payload, skipping the
// leading 4-byte size prefix when present (i.e. for any record that isn't
// from the legacy CTM framing path). The teacher package used the standard
// library's compress/bzip2 directly on an io.Reader; this uses
// github.com/dsnet/compress/bzip2 instead, which trades a small amount of
// extra dependency surface for materially lower per-call allocation — a
// trade worth taking now that bzip2 decode runs many times a minute against
// live chunk data rather than once per archival file.
func Decompress(record Record) ([]byte, error) {
	data := record.Data()
	if !IsCompressed(data) {
		return nil, ErrUncompressedData
	}

	payload := data
	if len(data) >= 4 && data[4] == 'B' && data[5] == 'Z' {
		payload = data[4:]
	}

	r, err := bzip2.NewReader(bytes.NewReader(payload), nil)
	if err != nil {
		return nil, fmt.Errorf("opening bzip2 stream: %w", err)
	}
	defer r.Close()

	out, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("decompressing bzip2 stream: %w", err)
	}
	return out, nil
}

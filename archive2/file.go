package archive2

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// File is a fully decoded Archive II volume file: its tape header plus every
// message recovered from its LDM records, in file order.
type File struct {
	VolumeHeader VolumeHeaderRecord
	Messages     []Message
}

// Open reads and decodes an Archive II file from disk.
func Open(filename string) (*File, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening archive file: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Decode reads and decodes an Archive II volume from r: a 24-byte tape
// header followed by a sequence of LDM records (RDA/RPG 7.3.6).
func Decode(r io.Reader) (*File, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading archive data: %w", err)
	}
	return DecodeBytes(raw)
}

// DecodeBytes decodes an already-buffered Archive II volume.
func DecodeBytes(raw []byte) (*File, error) {
	cur := NewCursor(raw)
	vh, err := decodeVolumeHeaderRecord(cur)
	if err != nil {
		return nil, fmt.Errorf("decoding volume header: %w", err)
	}

	remaining, err := cur.TakeBytes(cur.Remaining())
	if err != nil {
		return nil, err
	}

	records, err := SplitRecords(remaining)
	if err != nil {
		return nil, fmt.Errorf("splitting LDM records: %w", err)
	}

	file := &File{VolumeHeader: vh}
	bc := &buildContext{}

	for i, rec := range records {
		var body []byte
		if rec.Legacy() {
			body = rec.Data()
		} else if IsCompressed(rec.Data()) {
			body, err = Decompress(rec)
			if err != nil {
				logrus.Warnf("archive2: skipping record %d: %v", i, err)
				continue
			}
		} else {
			body = rec.Data()
		}

		msgs := DecodeMessages(body, bc)
		file.Messages = append(file.Messages, msgs...)
	}

	return file, nil
}

// DecodeChunkRecord decodes a real-time Intermediate/End chunk body: a bare
// LDM record (4-byte size prefix, then a bzip2 stream) with no leading
// volume header, unlike a full archive file or a Start chunk.
func DecodeChunkRecord(raw []byte) ([]Message, error) {
	rec := NewBareRecord(raw)
	body := raw
	if IsCompressed(raw) {
		var err error
		body, err = Decompress(rec)
		if err != nil {
			return nil, fmt.Errorf("decompressing chunk record: %w", err)
		}
	}
	bc := &buildContext{}
	return DecodeMessages(body, bc), nil
}

// DigitalRadarDataByElevation groups every decoded Message Type 31 body by
// its elevation number, preserving within-elevation radial order.
func (f *File) DigitalRadarDataByElevation() map[uint8][]*DigitalRadarData {
	out := make(map[uint8][]*DigitalRadarData)
	for _, m := range f.Messages {
		d, ok := m.Contents.(*DigitalRadarData)
		if !ok {
			continue
		}
		out[d.Header.ElevationNumber] = append(out[d.Header.ElevationNumber], d)
	}
	return out
}

// StatusMessages returns every decoded Message Type 2 (RDA Status) body, in
// file order.
func (f *File) StatusMessages() []*RDAStatusData {
	var out []*RDAStatusData
	for _, m := range f.Messages {
		if d, ok := m.Contents.(*RDAStatusData); ok {
			out = append(out, d)
		}
	}
	return out
}

// VolumeCoveragePatterns returns every decoded Message Type 5 body, in file
// order.
func (f *File) VolumeCoveragePatterns() []*VolumeCoveragePattern {
	var out []*VolumeCoveragePattern
	for _, m := range f.Messages {
		if v, ok := m.Contents.(*VolumeCoveragePattern); ok {
			out = append(out, v)
		}
	}
	return out
}

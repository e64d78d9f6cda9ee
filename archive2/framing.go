package archive2

import "fmt"

// Record is a view over one LDM record's bytes, including its 4-byte size
// prefix when framed in the modern style. A record synthesized from the
// legacy CTM framing (see SplitRecords) has no size prefix and spans the
// remainder of the buffer.
type Record struct {
	data       []byte
	compressed bool
	legacy     bool
}

// Data returns the record's raw bytes, including the size prefix if present.
func (r Record) Data() []byte { return r.data }

// Legacy reports whether this record came from the legacy CTM framing path,
// in which case it is an uncompressed concatenation of fixed 2432-byte
// frames rather than a single bzip2 stream.
func (r Record) Legacy() bool { return r.legacy }

// NewBareRecord wraps data (with or without a leading 4-byte size prefix;
// Decompress detects either) as a Record outside of SplitRecords, for
// callers that already have an isolated record payload in hand
// — notably real-time chunk bodies, which arrive as one bare LDM record
// per chunk rather than as part of a split volume buffer.
func NewBareRecord(data []byte) Record {
	return Record{data: data}
}

// IsCompressed reports whether the record's payload is bzip2-compressed,
// detected by the "BZ" magic at the expected offset: byte 4 for a
// size-prefixed modern record, byte 0 for a bare record with no prefix.
func IsCompressed(record []byte) bool {
	if len(record) >= 6 && record[4] == 'B' && record[5] == 'Z' {
		return true
	}
	if len(record) >= 2 && record[0] == 'B' && record[1] == 'Z' {
		return true
	}
	return false
}

// SplitRecords partitions an Archive II byte stream (the bytes following the
// 24-byte volume header) into its constituent LDM records.
//
// Detection: if the first four bytes are all zero, the entire buffer is
// legacy CTM framing — an uncompressed concatenation of fixed 2432-byte
// frames with no leading size — and is returned as a single record, since
// legacy Type 1 radials may pack contiguously across what would otherwise
// look like frame boundaries. Otherwise the buffer is modern LDM framing:
// each record begins with a 4-byte big-endian signed length (negative values
// are a wire quirk; the absolute value is the true size), followed by that
// many bytes, typically bzip2-compressed.
func SplitRecords(data []byte) ([]Record, error) {
	if len(data) >= 4 && data[0] == 0 && data[1] == 0 && data[2] == 0 && data[3] == 0 {
		return []Record{{data: data, legacy: true}}, nil
	}

	var records []Record
	offset := 0
	for offset < len(data) {
		if len(data)-offset < 4 {
			break
		}
		cur := NewCursor(data[offset:])
		rawSize, err := cur.ReadI32()
		if err != nil {
			return nil, err
		}
		size := int(rawSize)
		if size < 0 {
			size = -size
		}
		if size == 0 {
			return nil, &InvalidRecordSize{Size: 0, Offset: offset}
		}
		total := size + 4
		if len(data)-offset < total {
			return nil, &TruncatedRecord{Expected: total, Actual: len(data) - offset}
		}
		rec := data[offset : offset+total]
		records = append(records, Record{data: rec, compressed: IsCompressed(rec)})
		offset += total
	}
	return records, nil
}

// InvalidRecordSize is returned by SplitRecords when a record declares a
// size of zero.
type InvalidRecordSize struct {
	Size   int
	Offset int
}

func (e *InvalidRecordSize) Error() string {
	return fmt.Sprintf("invalid record size 0 at offset %d", e.Offset)
}

// TruncatedRecord is returned by SplitRecords when fewer bytes remain in the
// buffer than the declared record size requires.
type TruncatedRecord struct {
	Expected int
	Actual   int
}

func (e *TruncatedRecord) Error() string {
	return fmt.Sprintf("truncated record: expected %d bytes, got %d", e.Expected, e.Actual)
}

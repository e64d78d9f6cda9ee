package archive2

import "fmt"

// ErrUnexpectedEOF is returned by a Cursor when a read would run past the end
// of its backing bytes.
type ErrUnexpectedEOF struct {
	// Offset is the position at which the short read was attempted.
	Offset int
	// Requested is the number of bytes that were asked for.
	Requested int
	// Remaining is the number of bytes actually left.
	Remaining int
}

func (e *ErrUnexpectedEOF) Error() string {
	return fmt.Sprintf("unexpected EOF at offset %d: requested %d bytes, %d remaining", e.Offset, e.Requested, e.Remaining)
}

// Cursor tracks a read position within a single contiguous byte slice and
// provides bounds-checked, zero-copy access to it. All decoded structures
// view into the slice passed to NewCursor; they remain valid only as long as
// that slice is retained by the caller.
type Cursor struct {
	data []byte
	pos  int
}

// NewCursor wraps bytes for sequential, position-tracked reading.
func NewCursor(data []byte) *Cursor {
	return &Cursor{data: data}
}

// Offset returns the current read position.
func (c *Cursor) Offset() int { return c.pos }

// Len returns the total number of bytes in the underlying buffer.
func (c *Cursor) Len() int { return len(c.data) }

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int { return len(c.data) - c.pos }

// Advance moves the read position forward by n bytes without returning them.
// It fails if fewer than n bytes remain.
func (c *Cursor) Advance(n int) error {
	if c.Remaining() < n {
		return &ErrUnexpectedEOF{Offset: c.pos, Requested: n, Remaining: c.Remaining()}
	}
	c.pos += n
	return nil
}

// TakeBytes returns the next n bytes as a zero-copy view and advances past
// them.
func (c *Cursor) TakeBytes(n int) ([]byte, error) {
	if c.Remaining() < n {
		return nil, &ErrUnexpectedEOF{Offset: c.pos, Requested: n, Remaining: c.Remaining()}
	}
	b := c.data[c.pos : c.pos+n]
	c.pos += n
	return b, nil
}

// PeekBytes returns the next n bytes without advancing the read position.
func (c *Cursor) PeekBytes(n int) ([]byte, error) {
	if c.Remaining() < n {
		return nil, &ErrUnexpectedEOF{Offset: c.pos, Requested: n, Remaining: c.Remaining()}
	}
	return c.data[c.pos : c.pos+n], nil
}

// SeekTo moves the read position to an absolute offset from the start of the
// buffer.
func (c *Cursor) SeekTo(offset int) error {
	if offset < 0 || offset > len(c.data) {
		return &ErrUnexpectedEOF{Offset: offset, Requested: 0, Remaining: len(c.data) - offset}
	}
	c.pos = offset
	return nil
}

// ReadU8 reads a single byte.
func (c *Cursor) ReadU8() (uint8, error) {
	b, err := c.TakeBytes(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadU16 reads a big-endian uint16.
func (c *Cursor) ReadU16() (uint16, error) {
	b, err := c.TakeBytes(2)
	if err != nil {
		return 0, err
	}
	return U16(b2(b)).Get(), nil
}

// ReadI16 reads a big-endian int16.
func (c *Cursor) ReadI16() (int16, error) {
	b, err := c.TakeBytes(2)
	if err != nil {
		return 0, err
	}
	return I16(b2(b)).Get(), nil
}

// ReadU32 reads a big-endian uint32.
func (c *Cursor) ReadU32() (uint32, error) {
	b, err := c.TakeBytes(4)
	if err != nil {
		return 0, err
	}
	return U32(b4(b)).Get(), nil
}

// ReadI32 reads a big-endian int32.
func (c *Cursor) ReadI32() (int32, error) {
	b, err := c.TakeBytes(4)
	if err != nil {
		return 0, err
	}
	return I32(b4(b)).Get(), nil
}

// ReadF32 reads a big-endian IEEE 754 float32.
func (c *Cursor) ReadF32() (float32, error) {
	b, err := c.TakeBytes(4)
	if err != nil {
		return 0, err
	}
	return F32(b4(b)).Get(), nil
}

func b2(b []byte) [2]byte { return [2]byte{b[0], b[1]} }
func b4(b []byte) [4]byte { return [4]byte{b[0], b[1], b[2], b[3]} }

// SegmentedCursor provides the same read operations as Cursor but over an
// ordered list of payload slices, presenting their logical concatenation
// without copying unless a read is known to span a segment boundary.
//
// This backs multi-segment messages (Clutter Filter Map, Clutter Filter
// Bypass Map, Adaptation Data, PRF Data, Log Data): each segment restates the
// message header, and only the payload slices are accumulated here.
type SegmentedCursor struct {
	segments [][]byte
	// segIndex/segOffset together form the logical read position.
	segIndex  int
	segOffset int
}

// NewSegmentedCursor builds a cursor over the logical concatenation of segs.
func NewSegmentedCursor(segs [][]byte) *SegmentedCursor {
	return &SegmentedCursor{segments: segs}
}

// totalLen returns the sum of all segment lengths.
func (s *SegmentedCursor) totalLen() int {
	n := 0
	for _, seg := range s.segments {
		n += len(seg)
	}
	return n
}

// Offset returns the logical offset from the start of the concatenation.
func (s *SegmentedCursor) Offset() int {
	n := 0
	for i := 0; i < s.segIndex; i++ {
		n += len(s.segments[i])
	}
	return n + s.segOffset
}

// Remaining returns the number of logical bytes left to read.
func (s *SegmentedCursor) Remaining() int {
	return s.totalLen() - s.Offset()
}

// normalize advances segIndex past any exhausted (zero-length or fully-read)
// segments, so that segIndex/segOffset address the segment backing the
// current read position.
func (s *SegmentedCursor) normalize() {
	for s.segIndex < len(s.segments) && s.segOffset >= len(s.segments[s.segIndex]) {
		s.segOffset -= len(s.segments[s.segIndex])
		s.segIndex++
	}
}

// Advance moves the logical read position forward by n bytes without
// returning them.
func (s *SegmentedCursor) Advance(n int) error {
	_, err := s.TakeBytes(n)
	return err
}

// TakeBytes returns the next n logical bytes. If they lie entirely within a
// single segment, the result is a zero-copy slice of that segment; if they
// span a segment boundary, an owned copy is allocated and returned instead
// (see ReadBytesOwned for the explicit form of this operation).
func (s *SegmentedCursor) TakeBytes(n int) ([]byte, error) {
	if s.Remaining() < n {
		return nil, &ErrUnexpectedEOF{Offset: s.Offset(), Requested: n, Remaining: s.Remaining()}
	}
	s.normalize()
	seg := s.segments[s.segIndex]
	if s.segOffset+n <= len(seg) {
		b := seg[s.segOffset : s.segOffset+n]
		s.segOffset += n
		return b, nil
	}
	return s.ReadBytesOwned(n)
}

// ReadBytesOwned reads n logical bytes into a freshly allocated slice,
// copying across segment boundaries as needed. Used for payloads known in
// advance to cross segment boundaries, such as the 23,040-byte bypass-map
// rows in Clutter Filter Bypass Map messages.
func (s *SegmentedCursor) ReadBytesOwned(n int) ([]byte, error) {
	if s.Remaining() < n {
		return nil, &ErrUnexpectedEOF{Offset: s.Offset(), Requested: n, Remaining: s.Remaining()}
	}
	out := make([]byte, 0, n)
	for n > 0 {
		s.normalize()
		seg := s.segments[s.segIndex]
		avail := len(seg) - s.segOffset
		take := avail
		if take > n {
			take = n
		}
		out = append(out, seg[s.segOffset:s.segOffset+take]...)
		s.segOffset += take
		n -= take
	}
	return out, nil
}

// ReadU8 reads a single byte.
func (s *SegmentedCursor) ReadU8() (uint8, error) {
	b, err := s.TakeBytes(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadU16 reads a big-endian uint16, transparently spanning segments.
func (s *SegmentedCursor) ReadU16() (uint16, error) {
	b, err := s.TakeBytes(2)
	if err != nil {
		return 0, err
	}
	return U16(b2(b)).Get(), nil
}

// ReadU32 reads a big-endian uint32, transparently spanning segments.
func (s *SegmentedCursor) ReadU32() (uint32, error) {
	b, err := s.TakeBytes(4)
	if err != nil {
		return 0, err
	}
	return U32(b4(b)).Get(), nil
}

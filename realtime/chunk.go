package realtime

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ChunkType distinguishes the three roles a chunk can play within a volume.
type ChunkType int

const (
	ChunkStart ChunkType = iota
	ChunkIntermediate
	ChunkEnd
)

func (t ChunkType) String() string {
	switch t {
	case ChunkStart:
		return "S"
	case ChunkIntermediate:
		return "I"
	case ChunkEnd:
		return "E"
	default:
		return "?"
	}
}

func parseChunkType(letter string) (ChunkType, error) {
	switch letter {
	case "S":
		return ChunkStart, nil
	case "I":
		return ChunkIntermediate, nil
	case "E":
		return ChunkEnd, nil
	default:
		return 0, fmt.Errorf("unrecognized chunk type letter %q", letter)
	}
}

// validateSite checks that site is a 4-letter ICAO radar site identifier,
// the form the bucket's object keys are prefixed with.
func validateSite(site string) error {
	if len(site) != 4 {
		return &InvalidSiteIdentifier{Site: site}
	}
	for _, r := range site {
		if r < 'A' || r > 'Z' {
			return &InvalidSiteIdentifier{Site: site}
		}
	}
	return nil
}

const chunkNameDateTimeLayout = "20060102-150405"

// ChunkName is the decoded form of a real-time chunk's filename, of shape
// `YYYYMMDD-HHMMSS-NNN-X`.
type ChunkName struct {
	Name           string
	DateTimePrefix time.Time
	Sequence       int
	Type           ChunkType
}

// ParseChunkName parses a bare chunk filename (no bucket prefix) into its
// constituent fields.
func ParseChunkName(name string) (*ChunkName, error) {
	parts := strings.Split(name, "-")
	if len(parts) != 4 || len(parts[0]) != 8 || len(parts[1]) != 6 || len(parts[2]) != 3 || len(parts[3]) != 1 {
		return nil, &UnrecognizedChunkFormat{Name: name}
	}

	dt, err := time.Parse(chunkNameDateTimeLayout, parts[0]+"-"+parts[1])
	if err != nil {
		return nil, &UnrecognizedChunkDateTime{Name: name, Err: err}
	}
	dt = dt.UTC()

	seq, err := strconv.Atoi(parts[2])
	if err != nil || seq < 1 {
		return nil, &UnrecognizedChunkSequence{Name: name}
	}

	typ, err := parseChunkType(parts[3])
	if err != nil {
		return nil, &UnrecognizedChunkType{Name: name}
	}

	return &ChunkName{
		Name:           name,
		DateTimePrefix: dt,
		Sequence:       seq,
		Type:           typ,
	}, nil
}

// FormatChunkName reconstructs the filename for a date/time prefix,
// sequence, and chunk type.
func FormatChunkName(dt time.Time, sequence int, typ ChunkType) string {
	return fmt.Sprintf("%s-%03d-%s", dt.UTC().Format(chunkNameDateTimeLayout), sequence, typ)
}

// Chunk is a fully located chunk: its site, the volume it belongs to, its
// parsed name, and an optional upload timestamp recovered from LIST
// metadata (distinct from the filename's own date/time prefix).
type Chunk struct {
	Site   string
	Volume VolumeIndex
	ChunkName
	UploadedAt *time.Time
}

// Key returns the object-store key for this chunk: `SITE/<volume>/<name>`.
func (c Chunk) Key() string {
	return fmt.Sprintf("%s/%d/%s", c.Site, int(c.Volume), c.Name)
}

// NextChunkKind distinguishes whether the derived next chunk stays within
// the current volume or requires crossing into the next one.
type NextChunkKind int

const (
	NextChunkSameVolume NextChunkKind = iota
	NextChunkNewVolume
)

// NextChunkResult is the outcome of deriving the chunk that should follow a
// given one: either a concrete chunk identifier within the same volume, or
// a signal that the next volume's Start chunk must be discovered.
type NextChunkResult struct {
	Kind   NextChunkKind
	Chunk  Chunk
	Volume VolumeIndex
}

// NextChunk derives the chunk identifier expected to follow c, given the
// elevation-chunk mapper's final sequence for the active VCP.
func NextChunk(finalSequence int, c Chunk) NextChunkResult {
	if c.Sequence >= finalSequence {
		return NextChunkResult{Kind: NextChunkNewVolume, Volume: c.Volume.Next()}
	}

	nextSeq := c.Sequence + 1
	nextType := ChunkIntermediate
	if nextSeq == 1 {
		nextType = ChunkStart
	} else if nextSeq == finalSequence {
		nextType = ChunkEnd
	}

	return NextChunkResult{
		Kind: NextChunkSameVolume,
		Chunk: Chunk{
			Site:   c.Site,
			Volume: c.Volume,
			ChunkName: ChunkName{
				Name:           FormatChunkName(c.DateTimePrefix, nextSeq, nextType),
				DateTimePrefix: c.DateTimePrefix,
				Sequence:       nextSeq,
				Type:           nextType,
			},
		},
	}
}

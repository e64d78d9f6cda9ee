package realtime

import "github.com/jddeal/nexrad/model"

const (
	chunksPerElevation     = 3
	chunksPerElevationHalf = 6
)

// ElevationChunkMapper translates a chunk sequence number within a volume
// to the VCP elevation cut it belongs to, and reports the final sequence
// number of the volume (its End chunk).
//
// Sequence 1 is always the Start chunk carrying VCP metadata, not assigned
// to any elevation. Each elevation then consumes 3 data chunks (one per
// 120 radials across 360) or 6 in half-degree super-resolution. The volume
// closes with one additional End chunk, attributed to the final elevation.
type ElevationChunkMapper struct {
	finalSequence int
	bounds        []int // bounds[i] = last data-chunk sequence belonging to elevation i+1
}

// NewElevationChunkMapper builds a mapper from a decoded Volume Coverage
// Pattern's elevation cuts.
func NewElevationChunkMapper(vcp *model.VolumeCoveragePattern) *ElevationChunkMapper {
	bounds := make([]int, len(vcp.Elevations))
	cumulative := 1 // sequence 1 reserved for the Start/metadata chunk
	for i, cut := range vcp.Elevations {
		count := chunksPerElevation
		if cut.IsSuperResolution() {
			count = chunksPerElevationHalf
		}
		cumulative += count
		bounds[i] = cumulative
	}

	return &ElevationChunkMapper{
		finalSequence: cumulative + 1,
		bounds:        bounds,
	}
}

// FinalSequence returns the sequence number of the volume's End chunk.
func (m *ElevationChunkMapper) FinalSequence() int { return m.finalSequence }

// ElevationOf returns the 1-based elevation index (into the VCP's
// Elevations slice) that sequence belongs to. The End chunk is attributed
// to the final elevation. Returns 0 for the metadata chunk (sequence 1) or
// an out-of-range sequence.
func (m *ElevationChunkMapper) ElevationOf(sequence int) int {
	if len(m.bounds) == 0 || sequence < 2 {
		return 0
	}
	if sequence == m.finalSequence {
		return len(m.bounds)
	}
	for i, b := range m.bounds {
		if sequence <= b {
			return i + 1
		}
	}
	return 0
}

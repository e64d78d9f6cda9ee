package realtime

import "fmt"

// VolumeIndex identifies one of the 999 round-robin slots the real-time
// bucket cycles volumes through. Valid values are [1, 999].
type VolumeIndex int

const (
	minVolumeIndex VolumeIndex = 1
	maxVolumeIndex VolumeIndex = 999
)

// NewVolumeIndex validates v and returns it as a VolumeIndex.
func NewVolumeIndex(v int) (VolumeIndex, error) {
	if v < int(minVolumeIndex) || v > int(maxVolumeIndex) {
		return 0, fmt.Errorf("volume index %d out of range [%d, %d]", v, minVolumeIndex, maxVolumeIndex)
	}
	return VolumeIndex(v), nil
}

// Next returns the next volume index, wrapping 999 back to 1.
func (v VolumeIndex) Next() VolumeIndex {
	if v >= maxVolumeIndex {
		return minVolumeIndex
	}
	return v + 1
}

// Prev returns the previous volume index, wrapping 1 back to 999.
func (v VolumeIndex) Prev() VolumeIndex {
	if v <= minVolumeIndex {
		return maxVolumeIndex
	}
	return v - 1
}

func (v VolumeIndex) String() string { return fmt.Sprintf("%d", int(v)) }

package realtime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscoverLatestVolumeFindsPopulatedPrefix(t *testing.T) {
	base := time.Date(2024, 8, 13, 0, 0, 0, 0, time.UTC)
	populated := map[int]time.Time{}
	for v := 1; v <= 40; v++ {
		populated[v] = base.Add(time.Duration(v) * time.Minute)
	}

	probe := func(v VolumeIndex) (*time.Time, error) {
		ts, ok := populated[int(v)]
		if !ok {
			return nil, nil
		}
		return &ts, nil
	}

	cutoff := base.Add(time.Hour)
	volume, probes, err := DiscoverLatestVolume("KTLX", probe, cutoff)
	require.NoError(t, err)
	assert.Equal(t, VolumeIndex(40), volume)
	assert.Greater(t, probes, 0)
	assert.Less(t, probes, 999)
}

func TestDiscoverLatestVolumeRespectsCutoff(t *testing.T) {
	base := time.Date(2024, 8, 13, 0, 0, 0, 0, time.UTC)
	populated := map[int]time.Time{}
	for v := 1; v <= 30; v++ {
		populated[v] = base.Add(time.Duration(v) * time.Minute)
	}

	probe := func(v VolumeIndex) (*time.Time, error) {
		ts, ok := populated[int(v)]
		if !ok {
			return nil, nil
		}
		return &ts, nil
	}

	cutoff := base.Add(20 * time.Minute)
	volume, _, err := DiscoverLatestVolume("KTLX", probe, cutoff)
	require.NoError(t, err)
	assert.Equal(t, VolumeIndex(20), volume)
}

func TestDiscoverLatestVolumeNoneFound(t *testing.T) {
	probe := func(v VolumeIndex) (*time.Time, error) { return nil, nil }
	_, _, err := DiscoverLatestVolume("KTLX", probe, time.Now())
	require.Error(t, err)
	var notFound *LatestVolumeNotFound
	require.ErrorAs(t, err, &notFound)
}

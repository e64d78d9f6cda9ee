package realtime

import "time"

const timingWindowSize = 10

// Standard VCP waveform-type and channel-configuration codes relevant to
// default timing fallbacks.
const (
	WaveformContiguousSurveillance uint8 = 1
	ChannelConstantPhase           uint8 = 0
)

const (
	defaultIntervalCS            = 11 * time.Second
	defaultIntervalConstantPhase = 7 * time.Second
	defaultIntervalOther         = 4 * time.Second
	finalChunkHeadroom           = 10 * time.Second
)

// TimingKey identifies a class of chunk whose inter-arrival time is
// tracked independently: the chunk's role within the volume crossed with
// the VCP elevation cut's waveform and channel configuration.
type TimingKey struct {
	ChunkType            ChunkType
	WaveformType         uint8
	ChannelConfiguration uint8
}

// ChunkTimingStats maintains a bounded rolling history of observed
// inter-chunk durations, keyed by TimingKey, and predicts the next
// expected arrival when history is insufficient.
type ChunkTimingStats struct {
	samples map[TimingKey][]time.Duration
}

// NewChunkTimingStats returns an empty timing history.
func NewChunkTimingStats() *ChunkTimingStats {
	return &ChunkTimingStats{samples: make(map[TimingKey][]time.Duration)}
}

// Record appends an observed duration to key's rolling window, evicting
// the oldest sample once the window exceeds 10 entries.
func (t *ChunkTimingStats) Record(key TimingKey, d time.Duration) {
	window := append(t.samples[key], d)
	if len(window) > timingWindowSize {
		window = window[len(window)-timingWindowSize:]
	}
	t.samples[key] = window
}

// Average returns the mean of key's recorded samples and whether any exist.
func (t *ChunkTimingStats) Average(key TimingKey) (time.Duration, bool) {
	window := t.samples[key]
	if len(window) == 0 {
		return 0, false
	}
	var total time.Duration
	for _, d := range window {
		total += d
	}
	return total / time.Duration(len(window)), true
}

// EstimateNext predicts the wall-clock time the next chunk identified by
// key should arrive, relative to previous. isFinalChunk overrides the
// estimate with a fixed headroom, since the last chunk of a volume
// typically lags the regular cadence.
func (t *ChunkTimingStats) EstimateNext(key TimingKey, previous time.Time, isFinalChunk bool) time.Time {
	if isFinalChunk {
		return previous.Add(finalChunkHeadroom)
	}
	if avg, ok := t.Average(key); ok {
		return previous.Add(avg)
	}
	return previous.Add(defaultInterval(key))
}

func defaultInterval(key TimingKey) time.Duration {
	switch {
	case key.WaveformType == WaveformContiguousSurveillance:
		return defaultIntervalCS
	case key.ChannelConfiguration == ChannelConstantPhase:
		return defaultIntervalConstantPhase
	default:
		return defaultIntervalOther
	}
}

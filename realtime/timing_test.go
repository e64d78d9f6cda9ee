package realtime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEstimateNextDefaultCS(t *testing.T) {
	stats := NewChunkTimingStats()
	previous := time.Date(2024, 8, 13, 12, 0, 0, 0, time.UTC)
	key := TimingKey{ChunkType: ChunkIntermediate, WaveformType: WaveformContiguousSurveillance, ChannelConfiguration: 1}

	got := stats.EstimateNext(key, previous, false)
	assert.Equal(t, previous.Add(11*time.Second), got)
}

func TestEstimateNextDefaultConstantPhase(t *testing.T) {
	stats := NewChunkTimingStats()
	previous := time.Date(2024, 8, 13, 12, 0, 0, 0, time.UTC)
	key := TimingKey{ChunkType: ChunkIntermediate, WaveformType: 4, ChannelConfiguration: ChannelConstantPhase}

	got := stats.EstimateNext(key, previous, false)
	assert.Equal(t, previous.Add(7*time.Second), got)
}

func TestEstimateNextDefaultOther(t *testing.T) {
	stats := NewChunkTimingStats()
	previous := time.Date(2024, 8, 13, 12, 0, 0, 0, time.UTC)
	key := TimingKey{ChunkType: ChunkIntermediate, WaveformType: 4, ChannelConfiguration: 1}

	got := stats.EstimateNext(key, previous, false)
	assert.Equal(t, previous.Add(4*time.Second), got)
}

func TestEstimateNextFinalChunkHeadroom(t *testing.T) {
	stats := NewChunkTimingStats()
	previous := time.Date(2024, 8, 13, 12, 0, 0, 0, time.UTC)
	key := TimingKey{ChunkType: ChunkEnd}

	got := stats.EstimateNext(key, previous, true)
	assert.Equal(t, previous.Add(10*time.Second), got)
}

func TestEstimateNextUsesRecordedAverage(t *testing.T) {
	stats := NewChunkTimingStats()
	key := TimingKey{ChunkType: ChunkIntermediate, WaveformType: 4, ChannelConfiguration: 1}
	stats.Record(key, 2*time.Second)
	stats.Record(key, 4*time.Second)

	avg, ok := stats.Average(key)
	assert.True(t, ok)
	assert.Equal(t, 3*time.Second, avg)

	previous := time.Date(2024, 8, 13, 12, 0, 0, 0, time.UTC)
	got := stats.EstimateNext(key, previous, false)
	assert.Equal(t, previous.Add(3*time.Second), got)
}

func TestChunkTimingStatsWindowEviction(t *testing.T) {
	stats := NewChunkTimingStats()
	key := TimingKey{ChunkType: ChunkIntermediate}
	for i := 0; i < 15; i++ {
		stats.Record(key, time.Duration(i+1)*time.Second)
	}
	window := stats.samples[key]
	assert.Len(t, window, 10)
	assert.Equal(t, 6*time.Second, window[0])
	assert.Equal(t, 15*time.Second, window[9])
}

package realtime

import (
	"context"
	"fmt"
	"time"

	"github.com/jddeal/nexrad/archive2"
	"github.com/jddeal/nexrad/model"
	"github.com/sirupsen/logrus"
)

// objectStore is the subset of S3Client's behavior the iterator depends on,
// accepted as an interface so tests can substitute a fake bucket.
type objectStore interface {
	List(ctx context.Context, prefix string, maxKeys int64) ([]BucketObject, bool, error)
	Get(ctx context.Context, key string) ([]byte, error)
}

type iteratorPhase int

const (
	phaseInit iteratorPhase = iota
	phaseAwaiting
	phaseBoundary
)

// StartResult is returned by ChunkIterator.Start: the chunks recovered
// during Init and the VCP metadata resolved from them.
type StartResult struct {
	StartChunk  *Chunk
	LatestChunk Chunk
	VCP         *model.VolumeCoveragePattern
}

// ChunkIterator is a pull-based, caller-scheduled state machine over a
// site's real-time chunk stream. It never sleeps: callers drive it by
// checking NextExpectedTime/TimeUntilNext and calling TryNext when ready.
type ChunkIterator struct {
	site   string
	client objectStore

	downloadPolicy  RetryPolicy
	discoveryPolicy RetryPolicy

	phase          iteratorPhase
	mapper         *ElevationChunkMapper
	vcp            *model.VolumeCoveragePattern
	previous       Chunk
	expected       time.Time
	boundaryVolume VolumeIndex

	timing *ChunkTimingStats
	now    func() time.Time
}

// NewChunkIterator constructs an iterator for site against client, using
// the standard download/discovery retry policies.
func NewChunkIterator(site string, client objectStore) *ChunkIterator {
	return &ChunkIterator{
		site:            site,
		client:          client,
		downloadPolicy:  DownloadRetryPolicy(),
		discoveryPolicy: DiscoveryRetryPolicy(),
		timing:          NewChunkTimingStats(),
		now:             time.Now,
	}
}

// Start performs volume discovery and lists the discovered volume, taking
// its latest available chunk as the "join" chunk. VCP metadata comes from
// the volume's Start chunk: if the join chunk is itself the Start chunk it
// is downloaded and decoded; otherwise the volume's Start chunk is
// downloaded instead, and the join chunk's own body is not fetched. It
// builds the elevation-chunk mapper from that VCP metadata and transitions
// the iterator into Awaiting.
func (it *ChunkIterator) Start(ctx context.Context) (*StartResult, error) {
	if err := validateSite(it.site); err != nil {
		return nil, err
	}

	volume, _, err := DiscoverLatestVolume(it.site, it.probeVolume(ctx), it.now())
	if err != nil {
		return nil, err
	}

	objects, _, err := it.client.List(ctx, fmt.Sprintf("%s/%d/", it.site, int(volume)), 0)
	if err != nil {
		return nil, err
	}
	if len(objects) == 0 {
		return nil, &LatestVolumeNotFound{Site: it.site}
	}

	latestKey := objects[len(objects)-1].Key
	name := chunkNameFromKey(latestKey)
	parsed, err := ParseChunkName(name)
	if err != nil {
		return nil, err
	}
	latest := Chunk{Site: it.site, Volume: volume, ChunkName: *parsed}

	var startChunk *Chunk
	var vcp *model.VolumeCoveragePattern

	if latest.Type == ChunkStart {
		body, err := it.downloadWithRetry(ctx, latest)
		if err != nil {
			return nil, err
		}
		vcp, err = vcpFromStartChunk(body)
		if err != nil {
			return nil, err
		}
		startChunk = &latest
	} else {
		startKey := fmt.Sprintf("%s/%d/%s", it.site, int(volume), FormatChunkName(parsed.DateTimePrefix, 1, ChunkStart))
		startName := chunkNameFromKey(startKey)
		startParsed, err := ParseChunkName(startName)
		if err != nil {
			return nil, err
		}
		sc := Chunk{Site: it.site, Volume: volume, ChunkName: *startParsed}
		body, err := it.downloadWithRetry(ctx, sc)
		if err != nil {
			return nil, &ExpectedChunkNotFound{Key: sc.Key()}
		}
		vcp, err = vcpFromStartChunk(body)
		if err != nil {
			return nil, err
		}
		startChunk = &sc
	}

	it.vcp = vcp
	it.mapper = NewElevationChunkMapper(vcp)
	it.previous = latest
	it.phase = phaseAwaiting
	it.expected = it.computeExpectedTime(latest, it.now())

	return &StartResult{StartChunk: startChunk, LatestChunk: latest, VCP: vcp}, nil
}

// NextExpectedTime returns the wall-clock moment at which the next chunk is
// predicted to exist.
func (it *ChunkIterator) NextExpectedTime() time.Time { return it.expected }

// TimeUntilNext returns the signed duration between NextExpectedTime and
// now; negative once the prediction has already elapsed.
func (it *ChunkIterator) TimeUntilNext() time.Duration {
	return it.expected.Sub(it.now())
}

// TimingStats exposes the iterator's per-characteristic rolling timing
// history.
func (it *ChunkIterator) TimingStats() *ChunkTimingStats { return it.timing }

// VCP exposes the cached VCP metadata, once known.
func (it *ChunkIterator) VCP() *model.VolumeCoveragePattern { return it.vcp }

// TryNext makes one non-blocking attempt (internally applying the download
// retry policy) to fetch the next chunk. It returns (nil, nil) if the
// chunk is not yet available (404), and advances the iterator's state on
// success, including crossing a volume boundary when the previous chunk
// was the End chunk.
func (it *ChunkIterator) TryNext(ctx context.Context) (*Chunk, error) {
	if it.phase == phaseBoundary {
		if err := it.crossBoundary(ctx); err != nil {
			return nil, err
		}
	}

	result := NextChunk(it.mapper.FinalSequence(), it.previous)

	if result.Kind == NextChunkNewVolume {
		it.boundaryVolume = result.Volume
		it.phase = phaseBoundary
		if err := it.crossBoundary(ctx); err != nil {
			return nil, err
		}
		result = NextChunk(it.mapper.FinalSequence(), it.previous)
	}

	candidate := result.Chunk
	start := it.now()
	body, err := it.downloadWithRetry(ctx, candidate)
	if err != nil {
		if _, ok := err.(*S3ObjectNotFoundError); ok {
			return nil, nil
		}
		return nil, err
	}
	elapsed := it.now().Sub(start)

	key := TimingKey{ChunkType: candidate.Type}
	if it.vcp != nil {
		if idx := it.mapper.ElevationOf(candidate.Sequence); idx >= 1 && idx <= len(it.vcp.Elevations) {
			cut := it.vcp.Elevations[idx-1]
			key.WaveformType = cut.WaveformType
			key.ChannelConfiguration = cut.ChannelConfiguration
		}
	}
	it.timing.Record(key, elapsed)

	if _, err := archive2.DecodeChunkRecord(body); err != nil {
		logrus.Warnf("realtime: failed to decode chunk %s: %v", candidate.Key(), err)
	}

	it.previous = candidate
	it.expected = it.computeExpectedTime(candidate, it.now())
	return &candidate, nil
}

func (it *ChunkIterator) crossBoundary(ctx context.Context) error {
	prefix := fmt.Sprintf("%s/%d/", it.site, int(it.boundaryVolume))
	state := NewRetryState(it.discoveryPolicy)
	for {
		if err := ctx.Err(); err != nil {
			return &PollingAsyncError{Err: err}
		}
		objects, _, err := it.client.List(ctx, prefix, 0)
		if err == nil && len(objects) > 0 {
			name := chunkNameFromKey(objects[0].Key)
			parsed, err := ParseChunkName(name)
			if err != nil {
				return err
			}
			it.previous = Chunk{
				Site:   it.site,
				Volume: it.boundaryVolume,
				ChunkName: ChunkName{
					Name:           parsed.Name,
					DateTimePrefix: parsed.DateTimePrefix,
					Sequence:       0, // sequence 0 has no concrete chunk; NextChunk derives sequence 1
					Type:           ChunkStart,
				},
			}
			it.phase = phaseAwaiting
			return nil
		}
		if _, ok := state.NextDelay(); !ok {
			return &FailedToDetermineNextChunk{Reason: fmt.Sprintf("volume %d never populated", it.boundaryVolume)}
		}
	}
}

func (it *ChunkIterator) computeExpectedTime(previous Chunk, from time.Time) time.Time {
	key := TimingKey{ChunkType: previous.Type}
	isFinal := false
	if it.mapper != nil {
		isFinal = previous.Sequence == it.mapper.FinalSequence()
		if it.vcp != nil {
			if idx := it.mapper.ElevationOf(previous.Sequence); idx >= 1 && idx <= len(it.vcp.Elevations) {
				cut := it.vcp.Elevations[idx-1]
				key.WaveformType = cut.WaveformType
				key.ChannelConfiguration = cut.ChannelConfiguration
			}
		}
	}
	return it.timing.EstimateNext(key, from, isFinal)
}

// downloadWithRetry attempts the GET up to the download policy's
// MaxAttempts times, including the first try, for transient failures. A 404
// (S3ObjectNotFoundError) returns immediately instead of consuming the
// retry budget: the iterator is pull-based and never sleeps between
// attempts, so retrying a not-yet-landed chunk in a tight loop would only
// fire redundant back-to-back requests — TryNext's caller already controls
// the polling cadence via NextExpectedTime/TimeUntilNext.
func (it *ChunkIterator) downloadWithRetry(ctx context.Context, c Chunk) ([]byte, error) {
	state := NewRetryState(it.downloadPolicy)
	attempt := 0
	for {
		attempt++
		body, err := it.client.Get(ctx, c.Key())
		if err == nil {
			return body, nil
		}
		if _, ok := err.(*S3ObjectNotFoundError); ok {
			return nil, err
		}
		if attempt >= it.downloadPolicy.MaxAttempts {
			return nil, err
		}
		state.NextDelay()
	}
}

func (it *ChunkIterator) probeVolume(ctx context.Context) VolumeProbe {
	return func(v VolumeIndex) (*time.Time, error) {
		objects, _, err := it.client.List(ctx, fmt.Sprintf("%s/%d/", it.site, int(v)), 1)
		if err != nil {
			return nil, err
		}
		if len(objects) == 0 {
			return nil, nil
		}
		ts := objects[0].LastModified
		return &ts, nil
	}
}

func chunkNameFromKey(key string) string {
	for i := len(key) - 1; i >= 0; i-- {
		if key[i] == '/' {
			return key[i+1:]
		}
	}
	return key
}

func vcpFromStartChunk(body []byte) (*model.VolumeCoveragePattern, error) {
	file, err := archive2.DecodeBytes(body)
	if err != nil {
		return nil, err
	}
	patterns := file.VolumeCoveragePatterns()
	if len(patterns) == 0 {
		return nil, &model.MissingCoveragePatternError{}
	}
	return model.NewVolumeCoveragePattern(patterns[0]), nil
}

package realtime

import "time"

// VolumeProbe returns the upload timestamp of the first chunk of volume v,
// or nil if that volume is not currently populated. It is the only side
// effect discovery performs; the search itself is pure.
type VolumeProbe func(v VolumeIndex) (*time.Time, error)

// DiscoverLatestVolume finds the largest populated volume whose first
// chunk's timestamp is no later than cutoff, via binary search over the
// 999-wide rotating ring. It returns the volume found, the total number of
// probes issued, and an error from either the probe itself or from
// exhausting the search without finding a populated volume.
//
// The ring can contain gaps (volumes not yet written, or not yet
// overwritten since the last wrap); an unpopulated or too-recent midpoint
// carries no information about which half holds the answer, so the search
// narrows toward lower indices on a miss. This favors typical
// monotonically-filling rings over worst-case adversarial gap patterns.
func DiscoverLatestVolume(site string, probe VolumeProbe, cutoff time.Time) (VolumeIndex, int, error) {
	lo, hi := 0, int(maxVolumeIndex)-1
	probes := 0

	var bestVol VolumeIndex
	var bestTime time.Time
	found := false

	for lo <= hi {
		mid := (lo + hi) / 2
		v := VolumeIndex(mid + 1)
		probes++

		ts, err := probe(v)
		if err != nil {
			return 0, probes, err
		}

		if ts != nil && !ts.After(cutoff) && (!found || ts.After(bestTime)) {
			found = true
			bestTime = *ts
			bestVol = v
			lo = mid + 1
			continue
		}
		hi = mid - 1
	}

	if !found {
		return 0, probes, &LatestVolumeNotFound{Site: site}
	}
	return bestVol, probes, nil
}

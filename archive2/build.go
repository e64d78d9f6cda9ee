package archive2

import "fmt"

// BuildNumber is the RDA software build number, used to disambiguate
// legacy/modern struct layouts in later decoders (§4.4). The raw field scales
// differently depending on its own magnitude: builds before 21 are scaled by
// 10, builds from 21 onward by 100 — detected by whether raw/100 > 2, per the
// teacher's and the original Rust decoder's shared heuristic.
type BuildNumber float32

// DecodeBuildNumber converts a raw RDA Status Data build number field into
// its scaled floating-point form.
func DecodeBuildNumber(raw uint16) BuildNumber {
	if float32(raw)/100 > 2 {
		return BuildNumber(float32(raw) / 100)
	}
	return BuildNumber(float32(raw) / 10)
}

// String renders the build number the way NOAA documentation does, e.g.
// "19.00".
func (b BuildNumber) String() string {
	return fmt.Sprintf("%.2f", float32(b))
}

// AtLeast reports whether this build number is greater than or equal to
// other.
func (b BuildNumber) AtLeast(other float32) bool {
	return float32(b) >= other
}

// buildContext is propagated through a decode pass once a Type 2 (RDA Status)
// message has been observed, so that later Type 31 data-block decoders can
// select the correct legacy/modern struct variant. It is best-effort: a file
// may have no Type 2 message, or the first Type 31 message may precede the
// first Type 2 message, in which case decoders fall back to each block's
// self-describing lrtup field (§4.4).
type buildContext struct {
	known bool
	build BuildNumber
}

func (b *buildContext) observe(build BuildNumber) {
	b.known = true
	b.build = build
}

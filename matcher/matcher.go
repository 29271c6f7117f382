package matcher

import (
	"github.com/mrtajniak/AvidDNxRecommender/catalog"
)

// Query carries the five raw criteria for one recommendation request.
// All fields are compared as exact strings; no validation happens here,
// a value that matches nothing simply yields an empty result.
//
// Callers must normalize chroma "4:2:0" to "4:2:2" before building a
// Query (see NormalizeChroma).
type Query struct {
	FrameRate  string
	Resolution string
	Chroma     string
	BitDepth   string
	Preference string
}

// PreferenceSkip widens matching: a query carrying it accepts every
// preference class in both passes.
const PreferenceSkip = "Skip"

// Defaults substituted by the relaxed pass when a criterion fails on its
// own. They encode the most common broadcast delivery spec; the relaxed
// pass is a "closest standard" heuristic, not a distance metric.
const (
	DefaultResolution = "1920x1080"
	DefaultChroma     = "4:2:2"
	DefaultBitDepth   = "8-bit"
	DefaultFrameRate  = "30000"
)

// Match returns the profiles satisfying q, in catalog order. It runs the
// exact pass first and returns its result when non-empty; otherwise it
// returns the relaxed pass result, which may be empty. An empty result
// is a normal outcome, not an error.
func Match(c catalog.Catalog, q Query) []catalog.Profile {
	if out := MatchPass(c, q, false); len(out) > 0 {
		return out
	}
	return MatchPass(c, q, true)
}

// MatchPass runs a single filter pass over the catalog. With relaxed set,
// the resolution, chroma, bit-depth and frame-rate predicates each also
// accept their default; the preference predicate is never relaxed.
//
// The relaxation sides differ: resolution and frame rate relax on the
// profile (its set also counts as matching when it includes the default),
// chroma and bit depth relax on the query (asking for the default always
// passes; an off-catalog value like "1:1:1" fails both passes).
func MatchPass(c catalog.Catalog, q Query, relaxed bool) []catalog.Profile {
	var out []catalog.Profile
	for _, p := range c {
		if accepts(p, q, relaxed) {
			out = append(out, p)
		}
	}
	return out
}

func accepts(p catalog.Profile, q Query, relaxed bool) bool {
	if !p.SupportsResolution(q.Resolution) &&
		!(relaxed && p.SupportsResolution(DefaultResolution)) {
		return false
	}
	if q.Chroma != string(p.Chroma) &&
		!(relaxed && q.Chroma == DefaultChroma) {
		return false
	}
	if q.BitDepth != string(p.ColorDepth) &&
		!(relaxed && q.BitDepth == DefaultBitDepth) {
		return false
	}
	if !p.SupportsFrameRate(q.FrameRate) &&
		!(relaxed && p.SupportsFrameRate(DefaultFrameRate)) {
		return false
	}
	return acceptsPreference(p, q)
}

// acceptsPreference applies the same rule in both passes: a profile is
// acceptable when its class equals the requested preference, when its
// class is Balanced, or when the query skips preference entirely. The
// preference string is evaluated structurally; unknown values just fail
// the equality check.
func acceptsPreference(p catalog.Profile, q Query) bool {
	return string(p.Preference) == q.Preference ||
		p.Preference == catalog.PreferenceBalanced ||
		q.Preference == PreferenceSkip
}

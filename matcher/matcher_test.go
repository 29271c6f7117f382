package matcher

import (
	"reflect"
	"testing"
	"testing/quick"

	"github.com/mrtajniak/AvidDNxRecommender/catalog"
)

func ids(profiles []catalog.Profile) []string {
	var out []string
	for _, p := range profiles {
		out = append(out, p.ID())
	}
	return out
}

// A 24p broadcast-quality query must resolve in the exact pass to the
// three profiles that support the film rate at 1080p in 8-bit 4:2:2.
func TestMatchExactFilmRateQuality(t *testing.T) {
	q := Query{
		FrameRate:  "24000",
		Resolution: "1920x1080",
		Chroma:     "4:2:2",
		BitDepth:   "8-bit",
		Preference: "Quality",
	}

	got := ids(Match(catalog.Default(), q))
	want := []string{"DNxHD 175", "DNxHD 220", "DNxHR HQ"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Match() = %v, want %v", got, want)
	}

	// Must come from the exact pass, not the relaxed one
	exact := ids(MatchPass(catalog.Default(), q, false))
	if !reflect.DeepEqual(exact, want) {
		t.Errorf("MatchPass(exact) = %v, want %v", exact, want)
	}
}

// An unsupported resolution empties the exact pass; the relaxed pass
// substitutes 1920x1080 and 30000 and returns the Balanced profiles.
func TestMatchFallbackSubstitutesDefaults(t *testing.T) {
	q := Query{
		FrameRate:  "29970",
		Resolution: "640x480",
		Chroma:     "4:2:2",
		BitDepth:   "8-bit",
		Preference: "Balanced",
	}
	cat := catalog.Default()

	if exact := MatchPass(cat, q, false); len(exact) != 0 {
		t.Fatalf("exact pass = %v, want empty (no profile supports 640x480)", ids(exact))
	}

	got := ids(Match(cat, q))
	want := []string{"DNxHD 145", "DNxHR SQ"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Match() = %v, want %v", got, want)
	}
}

// A non-empty exact pass must be returned as-is even when the relaxed
// pass would admit more profiles.
func TestMatchExactPassShortCircuits(t *testing.T) {
	q := Query{
		FrameRate:  "29970",
		Resolution: "1920x1080",
		Chroma:     "4:2:2",
		BitDepth:   "8-bit",
		Preference: "Quality",
	}
	cat := catalog.Default()

	got := ids(Match(cat, q))
	want := []string{"DNxHD 145", "DNxHD 220", "DNxHR SQ", "DNxHR HQ"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Match() = %v, want %v", got, want)
	}

	relaxed := ids(MatchPass(cat, q, true))
	if len(relaxed) <= len(got) {
		t.Fatalf("test premise broken: relaxed pass %v should be wider than exact %v", relaxed, got)
	}
}

// Skip accepts every preference class, in both passes.
func TestMatchSkipWidensPreference(t *testing.T) {
	cat := catalog.Default()

	exact := Query{
		FrameRate:  "24000",
		Resolution: "1920x1080",
		Chroma:     "4:2:2",
		BitDepth:   "8-bit",
		Preference: "Skip",
	}
	got := ids(Match(cat, exact))
	want := []string{"DNxHD 36", "DNxHD 175", "DNxHD 220", "DNxHR LB", "DNxHR HQ"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Match(Skip, exact) = %v, want %v", got, want)
	}

	// Same query at an unknown resolution runs relaxed; Space-class
	// profiles must still be admitted.
	relaxed := exact
	relaxed.Resolution = "640x480"
	for _, p := range Match(cat, relaxed) {
		if p.Preference == catalog.PreferenceSpace {
			return
		}
	}
	t.Error("relaxed pass with Skip admitted no Space-class profile")
}

// The preference predicate never relaxes: an unknown non-Skip preference
// restricts even the fallback pass to Balanced-class profiles.
func TestMatchPreferenceNotRelaxed(t *testing.T) {
	q := Query{
		FrameRate:  "999",
		Resolution: "1x1",
		Chroma:     "4:2:2",
		BitDepth:   "8-bit",
		Preference: "Archive",
	}

	got := ids(Match(catalog.Default(), q))
	want := []string{"DNxHD 145", "DNxHR SQ"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Match() = %v, want %v", got, want)
	}
}

// The relaxed pass substitutes defaults per criterion: an unsupported
// frame rate or resolution falls back to the profile's broadcast
// defaults, while an off-catalog chroma or bit depth fails both passes.
func TestMatchPassRelaxedPerCriterion(t *testing.T) {
	cat := catalog.Default()
	base := Query{
		FrameRate:  "29970",
		Resolution: "1920x1080",
		Chroma:     "4:2:2",
		BitDepth:   "8-bit",
		Preference: "Balanced",
	}

	tests := []struct {
		name   string
		mutate func(*Query)
		want   []string
	}{
		{"framerate", func(q *Query) { q.FrameRate = "48000" }, []string{"DNxHD 145", "DNxHR SQ"}},
		{"resolution", func(q *Query) { q.Resolution = "720x576" }, []string{"DNxHD 145", "DNxHR SQ"}},
		{"chroma", func(q *Query) { q.Chroma = "4:1:1" }, nil},
		{"bitdepth", func(q *Query) { q.BitDepth = "16-bit" }, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			q := base
			tc.mutate(&q)
			if got := MatchPass(cat, q, false); len(got) != 0 {
				t.Fatalf("exact pass = %v, want empty", ids(got))
			}
			got := ids(MatchPass(cat, q, true))
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("relaxed pass = %v, want %v", got, tc.want)
			}
		})
	}
}

// A query that matches nothing in either pass returns empty, never a
// fault.
func TestMatchUnmatchableReturnsEmpty(t *testing.T) {
	q := Query{
		FrameRate:  "999",
		Resolution: "1x1",
		Chroma:     "1:1:1",
		BitDepth:   "16-bit",
		Preference: "Quality",
	}

	if got := Match(catalog.Default(), q); len(got) != 0 {
		t.Errorf("Match() = %v, want empty", ids(got))
	}
}

// Property: matching is pure; two calls with identical catalog and query
// return identical ordered results, and the catalog is left untouched.
func TestMatchIdempotent_Property(t *testing.T) {
	cat := catalog.Default()
	before := catalog.Default()

	f := func(fps, res, chroma, depth, pref string) bool {
		q := Query{
			FrameRate:  fps,
			Resolution: res,
			Chroma:     chroma,
			BitDepth:   depth,
			Preference: pref,
		}
		first := Match(cat, q)
		second := Match(cat, q)
		return reflect.DeepEqual(first, second)
	}
	if err := quick.Check(f, &quick.Config{MaxCount: 500}); err != nil {
		t.Error(err)
	}

	if !reflect.DeepEqual(cat, before) {
		t.Error("catalog mutated by matching")
	}
}

// Results preserve catalog order regardless of which pass produced them.
func TestMatchPreservesCatalogOrder(t *testing.T) {
	cat := catalog.Default()
	index := make(map[string]int, len(cat))
	for i, p := range cat {
		index[p.ID()] = i
	}

	queries := []Query{
		{FrameRate: "24000", Resolution: "1920x1080", Chroma: "4:2:2", BitDepth: "8-bit", Preference: "Skip"},
		{FrameRate: "29970", Resolution: "640x480", Chroma: "4:2:2", BitDepth: "8-bit", Preference: "Skip"},
	}
	for _, q := range queries {
		got := Match(cat, q)
		for i := 1; i < len(got); i++ {
			if index[got[i-1].ID()] >= index[got[i].ID()] {
				t.Errorf("result out of catalog order: %v", ids(got))
			}
		}
	}
}

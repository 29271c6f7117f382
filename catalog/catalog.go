package catalog

import (
	"fmt"
	"slices"
)

// Codec identifies a codec family
type Codec string

const (
	CodecDNxHD Codec = "DNxHD"
	CodecDNxHR Codec = "DNxHR"
)

// ColorDepth is the bit depth a profile encodes at
type ColorDepth string

const (
	Depth8  ColorDepth = "8-bit"
	Depth10 ColorDepth = "10-bit"
	Depth12 ColorDepth = "12-bit"
)

// Chroma is the chroma subsampling scheme a profile encodes with
type Chroma string

const (
	Chroma422 Chroma = "4:2:2"
	Chroma444 Chroma = "4:4:4"
)

// Preference classifies a profile's trade-off between file size and
// visual fidelity
type Preference string

const (
	PreferenceSpace    Preference = "Space"
	PreferenceBalanced Preference = "Balanced"
	PreferenceQuality  Preference = "Quality"
)

// Profile describes one codec profile and the capability matrix it
// supports. Resolutions and FrameRates are never empty; frame rates are
// encoded as thousandths of a frame per second ("23976", "29970",
// "30000").
type Profile struct {
	Codec       Codec
	Name        string
	Resolutions []string
	FrameRates  []string
	ColorDepth  ColorDepth
	Chroma      Chroma
	Preference  Preference
}

// ID returns the display identifier, e.g. "DNxHR HQX"
func (p Profile) ID() string {
	return string(p.Codec) + " " + p.Name
}

// SupportsResolution reports whether res is in the profile's resolution set
func (p Profile) SupportsResolution(res string) bool {
	return slices.Contains(p.Resolutions, res)
}

// SupportsFrameRate reports whether fps is in the profile's frame-rate set
func (p Profile) SupportsFrameRate(fps string) bool {
	return slices.Contains(p.FrameRates, fps)
}

// Catalog is an ordered, read-only set of profiles. It is built once at
// startup and shared across all matcher invocations; nothing mutates it
// afterwards, so no locking is needed.
type Catalog []Profile

// Frame-rate families of the Avid capability matrix.
var (
	filmRates      = []string{"23976", "24000"}
	broadcastRates = []string{"25000", "29970", "30000", "50000", "59940", "60000"}
	allRates       = append(append([]string{}, filmRates...), broadcastRates...)
)

// DNxHR operates resolution-independently; these are the sizes offered
// by the recommender.
var hrResolutions = []string{
	"1280x720", "1920x1080", "2048x1080", "3840x2160", "4096x2160",
}

var hdResolutions = []string{"1920x1080"}

// Default returns the built-in DNxHD/DNxHR catalog. DNxHD bandwidth
// families map to frame-rate sets: 145 is the broadcast family, 175 and
// 175x the film-rate family, 220/220x/444 span both.
func Default() Catalog {
	return Catalog{
		{
			Codec:       CodecDNxHD,
			Name:        "36",
			Resolutions: hdResolutions,
			FrameRates:  []string{"23976", "24000", "25000", "29970", "30000"},
			ColorDepth:  Depth8,
			Chroma:      Chroma422,
			Preference:  PreferenceSpace,
		},
		{
			Codec:       CodecDNxHD,
			Name:        "145",
			Resolutions: hdResolutions,
			FrameRates:  broadcastRates,
			ColorDepth:  Depth8,
			Chroma:      Chroma422,
			Preference:  PreferenceBalanced,
		},
		{
			Codec:       CodecDNxHD,
			Name:        "175",
			Resolutions: hdResolutions,
			FrameRates:  filmRates,
			ColorDepth:  Depth8,
			Chroma:      Chroma422,
			Preference:  PreferenceQuality,
		},
		{
			Codec:       CodecDNxHD,
			Name:        "220",
			Resolutions: hdResolutions,
			FrameRates:  []string{"23976", "24000", "25000", "29970", "30000"},
			ColorDepth:  Depth8,
			Chroma:      Chroma422,
			Preference:  PreferenceQuality,
		},
		{
			Codec:       CodecDNxHD,
			Name:        "175x",
			Resolutions: hdResolutions,
			FrameRates:  filmRates,
			ColorDepth:  Depth10,
			Chroma:      Chroma422,
			Preference:  PreferenceQuality,
		},
		{
			Codec:       CodecDNxHD,
			Name:        "220x",
			Resolutions: hdResolutions,
			FrameRates:  []string{"23976", "24000", "25000", "29970", "30000"},
			ColorDepth:  Depth10,
			Chroma:      Chroma422,
			Preference:  PreferenceQuality,
		},
		{
			Codec:       CodecDNxHD,
			Name:        "444",
			Resolutions: hdResolutions,
			FrameRates:  []string{"23976", "24000", "25000", "29970", "30000"},
			ColorDepth:  Depth10,
			Chroma:      Chroma444,
			Preference:  PreferenceQuality,
		},
		{
			Codec:       CodecDNxHR,
			Name:        "LB",
			Resolutions: hrResolutions,
			FrameRates:  allRates,
			ColorDepth:  Depth8,
			Chroma:      Chroma422,
			Preference:  PreferenceSpace,
		},
		{
			Codec:       CodecDNxHR,
			Name:        "SQ",
			Resolutions: hrResolutions,
			FrameRates:  broadcastRates,
			ColorDepth:  Depth8,
			Chroma:      Chroma422,
			Preference:  PreferenceBalanced,
		},
		{
			Codec:       CodecDNxHR,
			Name:        "HQ",
			Resolutions: hrResolutions,
			FrameRates:  allRates,
			ColorDepth:  Depth8,
			Chroma:      Chroma422,
			Preference:  PreferenceQuality,
		},
		{
			Codec:       CodecDNxHR,
			Name:        "HQX",
			Resolutions: hrResolutions,
			FrameRates:  allRates,
			ColorDepth:  Depth10,
			Chroma:      Chroma422,
			Preference:  PreferenceQuality,
		},
		{
			Codec:       CodecDNxHR,
			Name:        "444",
			Resolutions: hrResolutions,
			FrameRates:  allRates,
			ColorDepth:  Depth12,
			Chroma:      Chroma444,
			Preference:  PreferenceQuality,
		},
	}
}

// Validate checks catalog integrity: no two profiles share (codec, name)
// and every profile has non-empty resolution and frame-rate sets.
func (c Catalog) Validate() error {
	seen := make(map[string]bool, len(c))
	for _, p := range c {
		key := string(p.Codec) + "/" + p.Name
		if seen[key] {
			return fmt.Errorf("duplicate profile %s", p.ID())
		}
		seen[key] = true
		if len(p.Resolutions) == 0 {
			return fmt.Errorf("profile %s has no resolutions", p.ID())
		}
		if len(p.FrameRates) == 0 {
			return fmt.Errorf("profile %s has no frame rates", p.ID())
		}
	}
	return nil
}

// FrameRates returns the distinct frame rates across the catalog, in
// first-seen order.
func (c Catalog) FrameRates() []string {
	return c.distinct(func(p Profile) []string { return p.FrameRates })
}

// Resolutions returns the distinct resolutions across the catalog, in
// first-seen order.
func (c Catalog) Resolutions() []string {
	return c.distinct(func(p Profile) []string { return p.Resolutions })
}

func (c Catalog) distinct(field func(Profile) []string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, p := range c {
		for _, v := range field(p) {
			if !seen[v] {
				seen[v] = true
				out = append(out, v)
			}
		}
	}
	return out
}

package catalog

import (
	"reflect"
	"testing"
)

func TestDefaultIntegrity(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
}

func TestDefaultUniqueIdentity(t *testing.T) {
	seen := make(map[string]bool)
	for _, p := range Default() {
		key := string(p.Codec) + "/" + p.Name
		if seen[key] {
			t.Errorf("duplicate (codec, name): %s", p.ID())
		}
		seen[key] = true
	}
}

func TestDefaultCapabilitySets(t *testing.T) {
	for _, p := range Default() {
		if len(p.Resolutions) == 0 {
			t.Errorf("%s: empty resolution set", p.ID())
		}
		if len(p.FrameRates) == 0 {
			t.Errorf("%s: empty frame-rate set", p.ID())
		}
	}
}

func TestValidateRejectsDuplicates(t *testing.T) {
	p := Profile{
		Codec:       CodecDNxHR,
		Name:        "HQ",
		Resolutions: []string{"1920x1080"},
		FrameRates:  []string{"30000"},
		ColorDepth:  Depth8,
		Chroma:      Chroma422,
		Preference:  PreferenceQuality,
	}
	c := Catalog{p, p}
	if err := c.Validate(); err == nil {
		t.Error("Validate() = nil, want duplicate error")
	}
}

func TestValidateRejectsEmptySets(t *testing.T) {
	tests := []struct {
		name    string
		profile Profile
	}{
		{"no resolutions", Profile{Codec: CodecDNxHD, Name: "36", FrameRates: []string{"30000"}}},
		{"no frame rates", Profile{Codec: CodecDNxHD, Name: "36", Resolutions: []string{"1920x1080"}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := (Catalog{tc.profile}).Validate(); err == nil {
				t.Error("Validate() = nil, want error")
			}
		})
	}
}

func TestProfileMembership(t *testing.T) {
	p := Profile{
		Codec:       CodecDNxHD,
		Name:        "220x",
		Resolutions: []string{"1920x1080"},
		FrameRates:  []string{"23976", "24000"},
		ColorDepth:  Depth10,
		Chroma:      Chroma422,
		Preference:  PreferenceQuality,
	}

	if !p.SupportsResolution("1920x1080") {
		t.Error("SupportsResolution(1920x1080) = false, want true")
	}
	if p.SupportsResolution("1280x720") {
		t.Error("SupportsResolution(1280x720) = true, want false")
	}
	if !p.SupportsFrameRate("23976") {
		t.Error("SupportsFrameRate(23976) = false, want true")
	}
	if p.SupportsFrameRate("30000") {
		t.Error("SupportsFrameRate(30000) = true, want false")
	}
	if p.ID() != "DNxHD 220x" {
		t.Errorf("ID() = %q, want %q", p.ID(), "DNxHD 220x")
	}
}

func TestDistinctValuesPreserveOrder(t *testing.T) {
	c := Catalog{
		{Codec: CodecDNxHD, Name: "a", Resolutions: []string{"1920x1080"}, FrameRates: []string{"24000", "25000"}},
		{Codec: CodecDNxHD, Name: "b", Resolutions: []string{"1280x720", "1920x1080"}, FrameRates: []string{"25000", "30000"}},
	}

	if got, want := c.FrameRates(), []string{"24000", "25000", "30000"}; !reflect.DeepEqual(got, want) {
		t.Errorf("FrameRates() = %v, want %v", got, want)
	}
	if got, want := c.Resolutions(), []string{"1920x1080", "1280x720"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Resolutions() = %v, want %v", got, want)
	}
}

package main

import (
	"strings"
	"testing"

	"github.com/mrtajniak/AvidDNxRecommender/catalog"
)

func TestRenderProfileTable(t *testing.T) {
	out := renderProfileTable(catalog.Default()[:2])

	for _, want := range []string{"Profile", "DNxHD 36", "DNxHD 145", "1920x1080", "8-bit", "4:2:2", "Space", "Balanced"} {
		if !strings.Contains(out, want) {
			t.Errorf("renderProfileTable missing %q:\n%s", want, out)
		}
	}
}

func TestRenderCatalogTableListsEveryProfile(t *testing.T) {
	cat := catalog.Default()
	out := renderCatalogTable(cat)

	for _, p := range cat {
		if !strings.Contains(out, p.ID()) {
			t.Errorf("catalog table missing %s", p.ID())
		}
	}
}

func TestFrameRateCell(t *testing.T) {
	got := frameRateCell([]string{"23976", "24000"})
	if got != "23.976, 24" {
		t.Errorf("frameRateCell = %q", got)
	}
}

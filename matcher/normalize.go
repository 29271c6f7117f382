package matcher

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Caller-side input normalization. The matcher itself compares exact
// strings only; these helpers let the CLI and the wizard map common user
// spellings onto the catalog's encoding before a Query is built. Input
// that cannot be normalized passes through unchanged and simply fails
// every membership test downstream.

// NormalizeChroma maps "4:2:0" to "4:2:2". The catalog carries no 4:2:0
// profiles, so callers substitute the nearest supported scheme before
// matching; every other value passes through untouched.
func NormalizeChroma(chroma string) string {
	if strings.TrimSpace(chroma) == "4:2:0" {
		return "4:2:2"
	}
	return chroma
}

// NormalizeFrameRate converts a frame rate to the catalog's
// thousandths-of-fps form: "23.976" and "24000/1001" become "23976",
// "30" becomes "30000". A value that is already all digits, or that
// cannot be parsed, is returned as-is.
func NormalizeFrameRate(fps string) string {
	s := strings.TrimSpace(fps)
	if s == "" {
		return fps
	}

	if isDigits(s) {
		return s
	}

	// Fractional form, e.g. "24000/1001" or "30000/1001"
	if num, den, ok := strings.Cut(s, "/"); ok {
		n, err1 := strconv.ParseFloat(strings.TrimSpace(num), 64)
		d, err2 := strconv.ParseFloat(strings.TrimSpace(den), 64)
		if err1 != nil || err2 != nil || d <= 0 {
			return fps
		}
		return formatThousandths(n / d)
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f <= 0 {
		return fps
	}
	return formatThousandths(f)
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func formatThousandths(fps float64) string {
	return strconv.FormatInt(int64(math.Round(fps*1000)), 10)
}

// Resolution shorthand accepted alongside explicit "WxH" strings.
var resolutionAliases = map[string]string{
	"720p":  "1280x720",
	"1080p": "1920x1080",
	"2k":    "2048x1080",
	"uhd":   "3840x2160",
	"2160p": "3840x2160",
	"4k":    "4096x2160",
}

// NormalizeResolution expands common shorthand ("1080p", "4K") to the
// catalog's "WxH" form; anything unrecognized passes through unchanged.
func NormalizeResolution(res string) string {
	if full, ok := resolutionAliases[strings.ToLower(strings.TrimSpace(res))]; ok {
		return full
	}
	return res
}

// NormalizePreference case-folds a preference onto the catalog's casing
// ("space" -> "Space"). Empty input means no preference and maps to
// Skip; an unrecognized value passes through unchanged and is evaluated
// structurally by the matcher.
func NormalizePreference(pref string) string {
	switch strings.ToLower(strings.TrimSpace(pref)) {
	case "space":
		return "Space"
	case "balanced", "balance":
		return "Balanced"
	case "quality":
		return "Quality"
	case "skip", "":
		return PreferenceSkip
	}
	return pref
}

// DescribeQuery renders a query for display, e.g. in the results header.
func DescribeQuery(q Query) string {
	return fmt.Sprintf("%s @ %s, %s %s, preference %s",
		q.Resolution, DisplayFrameRate(q.FrameRate), q.Chroma, q.BitDepth, q.Preference)
}

// DisplayFrameRate renders a thousandths-of-fps string as fps, e.g.
// "29970" -> "29.97 fps". Non-numeric values render unchanged.
func DisplayFrameRate(fps string) string {
	n, err := strconv.ParseInt(fps, 10, 64)
	if err != nil || n <= 0 {
		return fps
	}
	if n%1000 == 0 {
		return fmt.Sprintf("%d fps", n/1000)
	}
	return strings.TrimRight(fmt.Sprintf("%.3f", float64(n)/1000), "0") + " fps"
}

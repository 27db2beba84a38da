package usecase

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Compiled grammars for quantity text, tried in priority order:
// range, mixed number, simple fraction, plain decimal.
var (
	// Matches ranges like "2-3", "1.5 - 2.5"
	rangePattern = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s*-\s*(\d+(?:\.\d+)?)$`)

	// Matches mixed numbers like "1 1/2"
	mixedNumberPattern = regexp.MustCompile(`^(\d+)\s+(\d+)/(\d+)$`)

	// Matches simple fractions like "3/4"
	fractionPattern = regexp.MustCompile(`^(\d+)/(\d+)$`)

	// Matches plain integers and decimals like "2", "0.75"
	decimalPattern = regexp.MustCompile(`^\d+(?:\.\d+)?$`)
)

// ParseQuantity parses free-text quantity notation into a number.
// Ranges collapse to their midpoint, so "2-3 cloves" scales as a
// single point estimate. The second return value is false when no
// grammar matches; that is the normal outcome for non-numeric text,
// not an error.
func ParseQuantity(text string) (float64, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, false
	}

	if m := rangePattern.FindStringSubmatch(text); m != nil {
		lo, err1 := strconv.ParseFloat(m[1], 64)
		hi, err2 := strconv.ParseFloat(m[2], 64)
		if err1 != nil || err2 != nil {
			return 0, false
		}
		return (lo + hi) / 2, true
	}

	if m := mixedNumberPattern.FindStringSubmatch(text); m != nil {
		return parseMixed(m[1], m[2], m[3])
	}

	if m := fractionPattern.FindStringSubmatch(text); m != nil {
		return parseFraction(m[1], m[2])
	}

	if decimalPattern.MatchString(text) {
		n, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return 0, false
		}
		return n, true
	}

	return 0, false
}

func parseMixed(whole, num, den string) (float64, bool) {
	w, err := strconv.ParseFloat(whole, 64)
	if err != nil {
		return 0, false
	}
	f, ok := parseFraction(num, den)
	if !ok {
		return 0, false
	}
	return w + f, true
}

func parseFraction(num, den string) (float64, bool) {
	n, err1 := strconv.ParseFloat(num, 64)
	d, err2 := strconv.ParseFloat(den, 64)
	if err1 != nil || err2 != nil || d == 0 {
		return 0, false
	}
	return n / d, true
}

// referenceFraction pairs a fractional value with its display glyph.
// The zero entry renders the whole part alone.
type referenceFraction struct {
	value float64
	glyph string
}

// Ordered reference table for fraction display. First entry within
// tolerance wins, so ordering matters on exact ties.
var referenceFractions = []referenceFraction{
	{0, ""},
	{1.0 / 4, "¼"},
	{1.0 / 3, "⅓"},
	{1.0 / 2, "½"},
	{2.0 / 3, "⅔"},
	{3.0 / 4, "¾"},
}

// fractionTolerance is the absolute distance within which a fractional
// remainder snaps to a reference fraction glyph.
const fractionTolerance = 0.04

// FormatQuantity renders a number as a natural-language quantity,
// snapping the fractional part to a common cooking fraction when one
// is close enough. This is a lossy display transform, not an inverse
// of ParseQuantity. Non-positive input renders as "0".
func FormatQuantity(n float64) string {
	if n <= 0 {
		return "0"
	}

	whole := math.Floor(n)
	frac := n - whole

	// A remainder within tolerance of the next integer rounds up, so
	// 1.97 renders as "2" rather than "2.0".
	if 1-frac <= fractionTolerance {
		return strconv.FormatFloat(whole+1, 'f', -1, 64)
	}

	for _, ref := range referenceFractions {
		if math.Abs(frac-ref.value) <= fractionTolerance {
			if ref.glyph == "" {
				return strconv.FormatFloat(whole, 'f', -1, 64)
			}
			if whole == 0 {
				return ref.glyph
			}
			return strconv.FormatFloat(whole, 'f', -1, 64) + ref.glyph
		}
	}

	// No reference fraction is close enough; fall back to plain
	// numeric display.
	if n == math.Trunc(n) {
		return strconv.FormatFloat(n, 'f', -1, 64)
	}
	return fmt.Sprintf("%.1f", n)
}

package usecase

import (
	"regexp"
	"strings"

	"github.com/ladle-app/backend/internal/domain"
)

// Leading-token grammars for the start of an ingredient line. Same
// priority order as ParseQuantity, but anchored only at the front and
// bounded by whitespace or end-of-line so the rest of the text
// survives.
var (
	leadingRangePattern    = regexp.MustCompile(`^\d+(?:\.\d+)?\s*-\s*\d+(?:\.\d+)?(?:\s|$)`)
	leadingMixedPattern    = regexp.MustCompile(`^\d+\s+\d+/\d+(?:\s|$)`)
	leadingFractionPattern = regexp.MustCompile(`^\d+/\d+(?:\s|$)`)
	leadingDecimalPattern  = regexp.MustCompile(`^\d+(?:\.\d+)?(?:\s|$)`)
)

var leadingQuantityPatterns = []*regexp.Regexp{
	leadingRangePattern,
	leadingMixedPattern,
	leadingFractionPattern,
	leadingDecimalPattern,
}

// ParseIngredientLine decomposes one raw recipe line into quantity,
// unit and ingredient name. A line with no leading quantity and no
// unit token becomes pure name with the whole tag, which is the policy
// for count-only and free-text lines ("a pinch of salt to taste").
func ParseIngredientLine(line string) domain.ParsedIngredient {
	trimmed := strings.TrimSpace(line)

	parsed := domain.ParsedIngredient{
		Raw:  line,
		Unit: domain.UnitWhole,
	}

	rest := trimmed

	// Leading quantity token.
	for _, pattern := range leadingQuantityPatterns {
		match := pattern.FindString(rest)
		if match == "" {
			continue
		}
		token := strings.TrimSpace(match)
		if quantity, ok := ParseQuantity(token); ok {
			parsed.Quantity = &quantity
			parsed.QuantityRaw = token
			rest = strings.TrimSpace(rest[len(match):])
		}
		break
	}

	// Leading unit token, longest alias first. The alias must end at
	// whitespace, end-of-line, or a single trailing period.
	if alias, matched := matchLeadingUnit(rest); matched != "" {
		parsed.Unit = unitAliases[alias]
		parsed.UnitRaw = strings.TrimSuffix(matched, ".")
		rest = strings.TrimSpace(rest[len(matched):])
	}

	parsed.Name = rest

	if parsed.Name != "" {
		parsed.Category = CategorizeIngredient(parsed.Name)
	} else {
		parsed.Category = CategorizeIngredient(trimmed)
	}

	return parsed
}

// matchLeadingUnit finds a recognized unit alias at the start of text.
// Returns the lowercase alias key and the exact consumed substring
// (including a trailing period when present), or empty strings when no
// alias matches.
func matchLeadingUnit(text string) (string, string) {
	for _, alias := range aliasesByLength {
		if len(text) < len(alias) {
			continue
		}
		if !strings.EqualFold(text[:len(alias)], alias) {
			continue
		}

		consumed := text[:len(alias)]
		tail := text[len(alias):]

		// A single trailing period is part of the token ("tbsp.").
		if strings.HasPrefix(tail, ".") {
			consumed = text[:len(alias)+1]
			tail = tail[1:]
		}

		if tail == "" || tail[0] == ' ' || tail[0] == '\t' {
			return alias, consumed
		}
	}
	return "", ""
}

// ScaleIngredient multiplies the quantity of one ingredient line and
// re-renders it. Lines without a parseable quantity come back
// unchanged; scaling free text is a no-op, not an error. When target
// is non-empty, the scaled ingredient is converted to that system if
// density data allows, otherwise default formatting applies.
func ScaleIngredient(line string, multiplier float64, target domain.System) string {
	parsed := ParseIngredientLine(line)
	if parsed.Quantity == nil {
		return line
	}

	scaled := *parsed.Quantity * multiplier

	if target != "" {
		converted := parsed
		converted.Quantity = &scaled
		if result := ConvertIngredient(converted, target); result != nil {
			return joinLineParts(result.Display, parsed.Name)
		}
	}

	label := UnitLabel(parsed.Unit, scaled)
	if label == "" {
		// No recognized unit: keep whatever unit text the line had so
		// tokens like "heaping tbsp" are not dropped.
		label = parsed.UnitRaw
	}

	return joinLineParts(FormatQuantity(scaled), label, parsed.Name)
}

// ScaleAllIngredients scales every line of an ingredient list,
// preserving order and length. A unitMode of "original" (or empty)
// keeps each line's measurement system; "weight" or "volume" converts
// lines where density data allows.
func ScaleAllIngredients(lines []string, multiplier float64, unitMode string) []string {
	var target domain.System
	if unitMode != "" && unitMode != "original" {
		target = domain.System(unitMode)
	}

	scaled := make([]string, len(lines))
	for i, line := range lines {
		scaled[i] = ScaleIngredient(line, multiplier, target)
	}
	return scaled
}

// joinLineParts joins non-empty parts with single spaces.
func joinLineParts(parts ...string) string {
	kept := parts[:0]
	for _, part := range parts {
		if part != "" {
			kept = append(kept, part)
		}
	}
	return strings.Join(kept, " ")
}

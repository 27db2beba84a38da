package usecase

import (
	"strings"

	"github.com/ladle-app/backend/internal/domain"
)

// millilitersPerUnit converts each volume tag to milliliters.
var millilitersPerUnit = map[domain.Unit]float64{
	domain.UnitTeaspoon:   4.92892,
	domain.UnitTablespoon: 14.7868,
	domain.UnitCup:        236.588,
	domain.UnitMilliliter: 1,
	domain.UnitLiter:      1000,
	domain.UnitFluidOunce: 29.5735,
}

// gramsPerUnit converts each weight tag to grams.
var gramsPerUnit = map[domain.Unit]float64{
	domain.UnitGram:     1,
	domain.UnitKilogram: 1000,
	domain.UnitOunce:    28.3495,
	domain.UnitPound:    453.592,
}

// densityEntry maps a canonical ingredient key to its density in
// grams per milliliter.
type densityEntry struct {
	key     string
	density float64
}

// densityTable is the reference dataset for volume/weight conversion.
//
// Fallback lookup is a substring scan in declaration order and the
// first hit wins, so multi-word keys must appear before any key they
// contain ("brown sugar" before "sugar", "olive oil" before "oil").
// Keep that ordering in mind when adding entries.
var densityTable = []densityEntry{
	{"all-purpose flour", 0.593},
	{"bread flour", 0.55},
	{"whole wheat flour", 0.48},
	{"flour", 0.593},
	{"powdered sugar", 0.56},
	{"brown sugar", 0.93},
	{"granulated sugar", 0.845},
	{"sugar", 0.845},
	{"baking powder", 0.9},
	{"baking soda", 0.9},
	{"cocoa powder", 0.53},
	{"cocoa", 0.53},
	{"cornstarch", 0.64},
	{"rolled oats", 0.41},
	{"oats", 0.41},
	{"rice", 0.85},
	{"melted butter", 0.911},
	{"butter", 0.911},
	{"vegetable oil", 0.92},
	{"olive oil", 0.918},
	{"coconut oil", 0.924},
	{"oil", 0.92},
	{"heavy cream", 0.994},
	{"cream", 0.994},
	{"buttermilk", 1.03},
	{"milk", 1.03},
	{"yogurt", 1.03},
	{"sour cream", 0.96},
	{"maple syrup", 1.32},
	{"honey", 1.42},
	{"molasses", 1.4},
	{"peanut butter", 1.09},
	{"salt", 1.2},
	{"water", 1.0},
}

// lookupDensity finds the density for an ingredient name. An exact
// case-insensitive key match is preferred; otherwise the table is
// scanned in order for the first entry where either string contains
// the other. Returns ok=false when the ingredient is not covered.
func lookupDensity(name string) (float64, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return 0, false
	}

	for _, entry := range densityTable {
		if entry.key == name {
			return entry.density, true
		}
	}

	for _, entry := range densityTable {
		if strings.Contains(name, entry.key) || strings.Contains(entry.key, name) {
			return entry.density, true
		}
	}

	return 0, false
}

// ConvertIngredient re-expresses a parsed ingredient in the target
// measurement system using the ingredient's density. Returns nil when
// conversion is impossible: no parsed quantity, a unitless or
// unrecognized unit, or no density data for the ingredient. An
// ingredient already measured in the target system comes back
// unchanged with WasConverted false.
func ConvertIngredient(parsed domain.ParsedIngredient, target domain.System) *domain.ConvertedIngredient {
	if parsed.Quantity == nil {
		return nil
	}
	quantity := *parsed.Quantity

	inTarget := (target == domain.SystemWeight && parsed.Unit.IsWeight()) ||
		(target == domain.SystemVolume && parsed.Unit.IsVolume())
	if inTarget {
		return &domain.ConvertedIngredient{
			Display:      FormatQuantity(quantity) + " " + UnitLabel(parsed.Unit, quantity),
			Quantity:     quantity,
			Unit:         parsed.Unit,
			WasConverted: false,
		}
	}

	// Pinch, whole and unknown have no conversion path.
	if !parsed.Unit.IsVolume() && !parsed.Unit.IsWeight() {
		return nil
	}

	density, ok := lookupDensity(parsed.Name)
	if !ok {
		return nil
	}

	var newQuantity float64
	var newUnit domain.Unit
	switch target {
	case domain.SystemWeight:
		grams := quantity * millilitersPerUnit[parsed.Unit] * density
		newQuantity, newUnit = bestWeightUnit(grams)
	case domain.SystemVolume:
		milliliters := quantity * gramsPerUnit[parsed.Unit] / density
		newQuantity, newUnit = bestVolumeUnit(milliliters)
	default:
		return nil
	}

	return &domain.ConvertedIngredient{
		Display:      FormatQuantity(newQuantity) + " " + UnitLabel(newUnit, newQuantity),
		Quantity:     newQuantity,
		Unit:         newUnit,
		WasConverted: true,
	}
}

// bestWeightUnit rescales raw grams into the most readable weight unit.
func bestWeightUnit(grams float64) (float64, domain.Unit) {
	if grams >= 1000 {
		return grams / 1000, domain.UnitKilogram
	}
	return grams, domain.UnitGram
}

// bestVolumeUnit rescales raw milliliters into the most readable
// volume unit, avoiding displays like "150 tbsp".
func bestVolumeUnit(milliliters float64) (float64, domain.Unit) {
	switch {
	case milliliters >= 1000:
		return milliliters / 1000, domain.UnitLiter
	case milliliters >= 200:
		return milliliters / millilitersPerUnit[domain.UnitCup], domain.UnitCup
	case milliliters >= 15:
		return milliliters / millilitersPerUnit[domain.UnitTablespoon], domain.UnitTablespoon
	default:
		return milliliters / millilitersPerUnit[domain.UnitTeaspoon], domain.UnitTeaspoon
	}
}

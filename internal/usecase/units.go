package usecase

import (
	"sort"
	"strings"

	"github.com/ladle-app/backend/internal/domain"
)

// unitAliases maps every recognized spelling (singular, plural,
// abbreviated) to its canonical unit tag.
var unitAliases = map[string]domain.Unit{
	// Teaspoon
	"teaspoon": domain.UnitTeaspoon, "teaspoons": domain.UnitTeaspoon,
	"tsp": domain.UnitTeaspoon, "tsps": domain.UnitTeaspoon,

	// Tablespoon
	"tablespoon": domain.UnitTablespoon, "tablespoons": domain.UnitTablespoon,
	"tbsp": domain.UnitTablespoon, "tbsps": domain.UnitTablespoon,
	"tbs": domain.UnitTablespoon, "tb": domain.UnitTablespoon,

	// Cup
	"cup": domain.UnitCup, "cups": domain.UnitCup, "c": domain.UnitCup,

	// Milliliter
	"milliliter": domain.UnitMilliliter, "milliliters": domain.UnitMilliliter,
	"millilitre": domain.UnitMilliliter, "millilitres": domain.UnitMilliliter,
	"ml": domain.UnitMilliliter, "mls": domain.UnitMilliliter,

	// Liter
	"liter": domain.UnitLiter, "liters": domain.UnitLiter,
	"litre": domain.UnitLiter, "litres": domain.UnitLiter,
	"l": domain.UnitLiter,

	// Fluid ounce
	"fluid ounce": domain.UnitFluidOunce, "fluid ounces": domain.UnitFluidOunce,
	"fl oz": domain.UnitFluidOunce, "fl. oz": domain.UnitFluidOunce,
	"floz": domain.UnitFluidOunce,

	// Gram
	"gram": domain.UnitGram, "grams": domain.UnitGram,
	"g": domain.UnitGram, "gr": domain.UnitGram,

	// Kilogram
	"kilogram": domain.UnitKilogram, "kilograms": domain.UnitKilogram,
	"kg": domain.UnitKilogram, "kgs": domain.UnitKilogram,

	// Ounce
	"ounce": domain.UnitOunce, "ounces": domain.UnitOunce, "oz": domain.UnitOunce,

	// Pound
	"pound": domain.UnitPound, "pounds": domain.UnitPound,
	"lb": domain.UnitPound, "lbs": domain.UnitPound,

	// Pinch
	"pinch": domain.UnitPinch, "pinches": domain.UnitPinch,
}

// aliasesByLength holds every alias sorted longest-first, so prefix
// matching in the line parser prefers "tablespoon" over a shorter
// coincidental match. Plain map iteration cannot guarantee this
// ordering, so it is fixed once here.
var aliasesByLength []string

func init() {
	aliasesByLength = make([]string, 0, len(unitAliases))
	for alias := range unitAliases {
		aliasesByLength = append(aliasesByLength, alias)
	}
	sort.Slice(aliasesByLength, func(i, j int) bool {
		if len(aliasesByLength[i]) != len(aliasesByLength[j]) {
			return len(aliasesByLength[i]) > len(aliasesByLength[j])
		}
		return aliasesByLength[i] < aliasesByLength[j]
	})
}

// NormalizeUnit resolves free-text unit notation to a canonical tag.
// Unrecognized text yields UnitUnknown.
func NormalizeUnit(text string) domain.Unit {
	if unit, ok := unitAliases[strings.ToLower(strings.TrimSpace(text))]; ok {
		return unit
	}
	return domain.UnitUnknown
}

// unitLabels are the display spellings for canonical tags. Whole and
// unknown render without a label; the original token text (if any) is
// preserved by the scaler instead.
var unitLabels = map[domain.Unit]string{
	domain.UnitTeaspoon:   "tsp",
	domain.UnitTablespoon: "tbsp",
	domain.UnitCup:        "cup",
	domain.UnitMilliliter: "ml",
	domain.UnitLiter:      "l",
	domain.UnitFluidOunce: "fl oz",
	domain.UnitGram:       "g",
	domain.UnitKilogram:   "kg",
	domain.UnitOunce:      "oz",
	domain.UnitPound:      "lb",
	domain.UnitPinch:      "pinch",
}

// UnitLabel returns the display label for a unit at a given quantity.
// Only cups and pinches take a conventional plural form.
func UnitLabel(unit domain.Unit, quantity float64) string {
	label := unitLabels[unit]
	if quantity > 1 {
		switch unit {
		case domain.UnitCup:
			label = "cups"
		case domain.UnitPinch:
			label = "pinches"
		}
	}
	return label
}

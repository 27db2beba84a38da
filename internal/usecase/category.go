package usecase

import (
	"strings"

	"github.com/ladle-app/backend/internal/domain"
)

// Curated keyword lists for ingredient categorization. Matching is
// case-insensitive substring, checked in priority order baking >
// spice > liquid; first list with a hit wins. Produce and protein are
// reserved categories with no keyword list yet.
var (
	bakingKeywords = []string{
		"flour", "sugar", "baking powder", "baking soda", "yeast",
		"cocoa", "cornstarch", "cornmeal", "vanilla extract", "vanilla",
		"chocolate chip", "shortening", "molasses", "powdered",
	}

	spiceKeywords = []string{
		"salt", "pepper", "cinnamon", "nutmeg", "cumin", "paprika",
		"oregano", "basil", "thyme", "rosemary", "chili powder",
		"cayenne", "turmeric", "ginger", "ground cloves", "allspice",
		"coriander", "cardamom", "curry powder", "garlic powder",
		"onion powder", "bay leaf", "bay leaves",
	}

	liquidKeywords = []string{
		"water", "milk", "cream", "buttermilk", "juice", "broth",
		"stock", "oil", "vinegar", "wine", "beer", "honey", "syrup",
		"sauce", "extract", "coffee", "tea",
	}
)

// CategorizeIngredient derives the semantic category of an ingredient
// from its name. No keyword hit yields CategoryOther.
func CategorizeIngredient(name string) domain.Category {
	name = strings.ToLower(name)

	for _, keyword := range bakingKeywords {
		if strings.Contains(name, keyword) {
			return domain.CategoryBaking
		}
	}
	for _, keyword := range spiceKeywords {
		if strings.Contains(name, keyword) {
			return domain.CategorySpice
		}
	}
	for _, keyword := range liquidKeywords {
		if strings.Contains(name, keyword) {
			return domain.CategoryLiquid
		}
	}

	return domain.CategoryOther
}

// DefaultUnitPreference recommends a measurement system for an
// ingredient based on its category and how it is currently measured:
// small spice amounts stay as written (weighing half a teaspoon of
// cinnamon is pointless), baking ingredients in volume convert better
// to weight, liquids in weight convert better to volume.
func DefaultUnitPreference(name string, unit domain.Unit, quantity float64) domain.Preference {
	category := CategorizeIngredient(name)

	switch category {
	case domain.CategorySpice:
		if unit == domain.UnitTeaspoon && quantity <= 2 {
			return domain.PreferOriginal
		}
	case domain.CategoryBaking:
		if unit.IsVolume() {
			return domain.PreferWeight
		}
	case domain.CategoryLiquid:
		if unit.IsWeight() {
			return domain.PreferVolume
		}
	}

	return domain.PreferOriginal
}

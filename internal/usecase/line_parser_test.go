package usecase

import (
	"math"
	"testing"

	"github.com/ladle-app/backend/internal/domain"
)

func TestParseIngredientLine(t *testing.T) {
	tests := []struct {
		name         string
		line         string
		wantQuantity float64
		hasQuantity  bool
		wantUnit     domain.Unit
		wantName     string
		wantCategory domain.Category
	}{
		{
			name:         "fraction with unit",
			line:         "1/2 tsp salt",
			wantQuantity: 0.5,
			hasQuantity:  true,
			wantUnit:     domain.UnitTeaspoon,
			wantName:     "salt",
			wantCategory: domain.CategorySpice,
		},
		{
			name:         "mixed number with full unit",
			line:         "1 1/2 cups flour",
			wantQuantity: 1.5,
			hasQuantity:  true,
			wantUnit:     domain.UnitCup,
			wantName:     "flour",
			wantCategory: domain.CategoryBaking,
		},
		{
			name:         "range collapses to midpoint",
			line:         "2-3 cloves garlic",
			wantQuantity: 2.5,
			hasQuantity:  true,
			wantUnit:     domain.UnitWhole,
			wantName:     "cloves garlic",
			wantCategory: domain.CategoryOther,
		},
		{
			name:         "abbreviated unit with period",
			line:         "2 tbsp. olive oil",
			wantQuantity: 2,
			hasQuantity:  true,
			wantUnit:     domain.UnitTablespoon,
			wantName:     "olive oil",
			wantCategory: domain.CategoryLiquid,
		},
		{
			name:         "count only line",
			line:         "2 eggs",
			wantQuantity: 2,
			hasQuantity:  true,
			wantUnit:     domain.UnitWhole,
			wantName:     "eggs",
			wantCategory: domain.CategoryOther,
		},
		{
			name:         "free text line",
			line:         "a pinch of salt to taste",
			hasQuantity:  false,
			wantUnit:     domain.UnitWhole,
			wantName:     "a pinch of salt to taste",
			wantCategory: domain.CategorySpice,
		},
		{
			name:         "longest alias preferred",
			line:         "1 tablespoon honey",
			wantQuantity: 1,
			hasQuantity:  true,
			wantUnit:     domain.UnitTablespoon,
			wantName:     "honey",
			wantCategory: domain.CategoryLiquid,
		},
		{
			name:         "multi-word alias",
			line:         "8 fl oz water",
			wantQuantity: 8,
			hasQuantity:  true,
			wantUnit:     domain.UnitFluidOunce,
			wantName:     "water",
			wantCategory: domain.CategoryLiquid,
		},
		{
			name:         "alias needs a boundary",
			line:         "3 cloves garlic",
			wantQuantity: 3,
			hasQuantity:  true,
			wantUnit:     domain.UnitWhole,
			wantName:     "cloves garlic",
			wantCategory: domain.CategoryOther,
		},
		{
			name:         "unrecognized unit text flows into name",
			line:         "2 heaping tbsp cocoa",
			wantQuantity: 2,
			hasQuantity:  true,
			wantUnit:     domain.UnitWhole,
			wantName:     "heaping tbsp cocoa",
			wantCategory: domain.CategoryBaking,
		},
		{
			name:         "decimal quantity",
			line:         "0.5 l milk",
			wantQuantity: 0.5,
			hasQuantity:  true,
			wantUnit:     domain.UnitLiter,
			wantName:     "milk",
			wantCategory: domain.CategoryLiquid,
		},
		{
			name:         "surrounding whitespace trimmed",
			line:         "   2 cups sugar   ",
			wantQuantity: 2,
			hasQuantity:  true,
			wantUnit:     domain.UnitCup,
			wantName:     "sugar",
			wantCategory: domain.CategoryBaking,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseIngredientLine(tt.line)

			if got.Raw != tt.line {
				t.Errorf("Raw = %q, want %q", got.Raw, tt.line)
			}
			if tt.hasQuantity {
				if got.Quantity == nil {
					t.Fatalf("Quantity = nil, want %v", tt.wantQuantity)
				}
				if math.Abs(*got.Quantity-tt.wantQuantity) > 1e-9 {
					t.Errorf("Quantity = %v, want %v", *got.Quantity, tt.wantQuantity)
				}
			} else if got.Quantity != nil {
				t.Errorf("Quantity = %v, want nil", *got.Quantity)
			}
			if got.Unit != tt.wantUnit {
				t.Errorf("Unit = %v, want %v", got.Unit, tt.wantUnit)
			}
			if got.Name != tt.wantName {
				t.Errorf("Name = %q, want %q", got.Name, tt.wantName)
			}
			if got.Category != tt.wantCategory {
				t.Errorf("Category = %v, want %v", got.Category, tt.wantCategory)
			}
		})
	}
}

func TestParseIngredientLineRawTokens(t *testing.T) {
	got := ParseIngredientLine("1 1/2 cups flour")

	if got.QuantityRaw != "1 1/2" {
		t.Errorf("QuantityRaw = %q, want %q", got.QuantityRaw, "1 1/2")
	}
	if got.UnitRaw != "cups" {
		t.Errorf("UnitRaw = %q, want %q", got.UnitRaw, "cups")
	}

	got = ParseIngredientLine("chopped parsley")
	if got.QuantityRaw != "" || got.UnitRaw != "" {
		t.Errorf("raw tokens = %q/%q, want empty", got.QuantityRaw, got.UnitRaw)
	}
}

func TestScaleIngredient(t *testing.T) {
	tests := []struct {
		name       string
		line       string
		multiplier float64
		target     domain.System
		want       string
	}{
		{
			name:       "doubles a simple line",
			line:       "2 cups flour",
			multiplier: 2,
			want:       "4 cups flour",
		},
		{
			name:       "halves to a fraction glyph",
			line:       "1 cup sugar",
			multiplier: 0.5,
			want:       "½ cup sugar",
		},
		{
			name:       "scales a mixed number",
			line:       "1 1/2 tsp vanilla extract",
			multiplier: 2,
			want:       "3 tsp vanilla extract",
		},
		{
			name:       "unparseable line unchanged",
			line:       "a pinch of salt",
			multiplier: 3,
			want:       "a pinch of salt",
		},
		{
			name:       "count only line keeps name",
			line:       "2 eggs",
			multiplier: 3,
			want:       "6 eggs",
		},
		{
			name:       "unrecognized unit text preserved",
			line:       "1 heaping tbsp cocoa",
			multiplier: 2,
			want:       "2 heaping tbsp cocoa",
		},
		{
			name:       "conversion applied when density known",
			line:       "1 cup water",
			multiplier: 1,
			target:     domain.SystemWeight,
			want:       "236.6 g water",
		},
		{
			name:       "conversion falls back when density unknown",
			line:       "2 cups chopped walnuts",
			multiplier: 2,
			target:     domain.SystemWeight,
			want:       "4 cups chopped walnuts",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScaleIngredient(tt.line, tt.multiplier, tt.target)
			if got != tt.want {
				t.Errorf("ScaleIngredient(%q, %v, %q) = %q, want %q",
					tt.line, tt.multiplier, tt.target, got, tt.want)
			}
		})
	}
}

func TestScaleIngredientReparse(t *testing.T) {
	scaled := ScaleIngredient("2 cups flour", 2, "")

	parsed := ParseIngredientLine(scaled)
	if parsed.Quantity == nil || *parsed.Quantity != 4 {
		t.Fatalf("reparsed quantity = %v, want 4", parsed.Quantity)
	}
	if parsed.Name != "flour" {
		t.Errorf("reparsed name = %q, want flour", parsed.Name)
	}
}

func TestScaleAllIngredients(t *testing.T) {
	lines := []string{
		"2 cups flour",
		"1 tsp salt",
		"a pinch of nutmeg",
		"3 eggs",
	}

	scaled := ScaleAllIngredients(lines, 2, UnitModeOriginal)

	if len(scaled) != len(lines) {
		t.Fatalf("len = %d, want %d", len(scaled), len(lines))
	}

	want := []string{
		"4 cups flour",
		"2 tsp salt",
		"a pinch of nutmeg",
		"6 eggs",
	}
	for i := range want {
		if scaled[i] != want[i] {
			t.Errorf("scaled[%d] = %q, want %q", i, scaled[i], want[i])
		}
	}
}

func TestScaleAllIngredientsEmpty(t *testing.T) {
	scaled := ScaleAllIngredients(nil, 2, UnitModeOriginal)
	if len(scaled) != 0 {
		t.Errorf("len = %d, want 0", len(scaled))
	}
}

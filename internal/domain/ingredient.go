package domain

// Unit is a canonical measurement unit tag, assigned after alias
// resolution. The set is closed: six volume tags, four weight tags,
// plus pinch, whole (unitless counts) and unknown.
type Unit string

const (
	// Volume units
	UnitTeaspoon   Unit = "tsp"
	UnitTablespoon Unit = "tbsp"
	UnitCup        Unit = "cup"
	UnitMilliliter Unit = "ml"
	UnitLiter      Unit = "l"
	UnitFluidOunce Unit = "fl_oz"

	// Weight units
	UnitGram     Unit = "g"
	UnitKilogram Unit = "kg"
	UnitOunce    Unit = "oz"
	UnitPound    Unit = "lb"

	// Neither volume nor weight
	UnitPinch   Unit = "pinch"
	UnitWhole   Unit = "whole"
	UnitUnknown Unit = "unknown"
)

// IsVolume reports whether the unit belongs to the volume system.
func (u Unit) IsVolume() bool {
	switch u {
	case UnitTeaspoon, UnitTablespoon, UnitCup, UnitMilliliter, UnitLiter, UnitFluidOunce:
		return true
	}
	return false
}

// IsWeight reports whether the unit belongs to the weight system.
func (u Unit) IsWeight() bool {
	switch u {
	case UnitGram, UnitKilogram, UnitOunce, UnitPound:
		return true
	}
	return false
}

// System identifies a target measurement system for conversion.
type System string

const (
	SystemWeight System = "weight"
	SystemVolume System = "volume"
)

// Category is the semantic category of an ingredient, derived from its
// name. Produce and protein are reserved values with no keyword list
// behind them yet.
type Category string

const (
	CategoryBaking  Category = "baking"
	CategorySpice   Category = "spice"
	CategoryLiquid  Category = "liquid"
	CategoryProduce Category = "produce"
	CategoryProtein Category = "protein"
	CategoryOther   Category = "other"
)

// Preference is a recommendation for how an ingredient should be
// measured relative to how it was written.
type Preference string

const (
	PreferWeight   Preference = "weight"
	PreferVolume   Preference = "volume"
	PreferOriginal Preference = "original"
)

// ParsedIngredient is the structured decomposition of one raw
// ingredient line. A nil Quantity always means "no leading numeric
// amount could be parsed", never zero. Values are constructed fresh on
// every parse and never mutated afterwards.
type ParsedIngredient struct {
	Raw         string   `json:"raw"`
	Quantity    *float64 `json:"quantity"`
	QuantityRaw string   `json:"quantityRaw,omitempty"`
	Unit        Unit     `json:"unit"`
	UnitRaw     string   `json:"unitRaw,omitempty"`
	Name        string   `json:"name"`
	Category    Category `json:"category"`
}

// ConvertedIngredient is the rendered result of a unit conversion.
// WasConverted distinguishes "already in the target system" from
// "density-based conversion applied".
type ConvertedIngredient struct {
	Display      string  `json:"display"`
	Quantity     float64 `json:"quantity"`
	Unit         Unit    `json:"unit"`
	WasConverted bool    `json:"wasConverted"`
}

// ParseRequest asks for structured decomposition of ingredient lines.
type ParseRequest struct {
	Lines []string `json:"lines" binding:"required"`
}

// ScaleRequest asks for a whole ingredient list to be scaled, and
// optionally re-expressed in a preferred measurement system.
// Unit is "original", "weight" or "volume"; empty means "original".
type ScaleRequest struct {
	Lines      []string `json:"lines" binding:"required"`
	Multiplier float64  `json:"multiplier" binding:"required"`
	Unit       string   `json:"unit,omitempty"`
}

// ConvertRequest asks for a single line to be converted to a target
// measurement system.
type ConvertRequest struct {
	Line   string `json:"line" binding:"required"`
	Target System `json:"target" binding:"required"`
}

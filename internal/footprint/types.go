// Package footprint estimates a personal annual carbon footprint.
//
// It maps yearly car and bus/train distances, household electricity use, and a
// diet choice to a per-category breakdown in kg CO2e, then names the category
// with the largest share together with a reduction tip. Everything here is pure:
// no I/O, no shared state.
package footprint

import "fmt"

// DietChoice identifies a diet by its 1-based menu code.
type DietChoice int

const (
	// DietMeatHeavy is a meat-heavy diet.
	DietMeatHeavy DietChoice = iota + 1

	// DietAverage is a mixed diet.
	DietAverage

	// DietVegetarian is a vegetarian diet.
	DietVegetarian

	// DietVegan is a vegan diet.
	DietVegan
)

// Diets returns the valid diet choices in menu order.
func Diets() []DietChoice {
	return []DietChoice{DietMeatHeavy, DietAverage, DietVegetarian, DietVegan}
}

// Valid reports whether d is one of the four defined diets.
func (d DietChoice) Valid() bool {
	return d >= DietMeatHeavy && d <= DietVegan
}

// String returns the menu label for the diet.
func (d DietChoice) String() string {
	switch d {
	case DietMeatHeavy:
		return "Meat-heavy"
	case DietAverage:
		return "Average"
	case DietVegetarian:
		return "Vegetarian"
	case DietVegan:
		return "Vegan"
	default:
		return fmt.Sprintf("DietChoice(%d)", int(d))
	}
}

// Category is a footprint category. The zero value is CategoryUnknown,
// used only when no category has a positive impact.
type Category int

const (
	// CategoryUnknown means no category could be singled out.
	CategoryUnknown Category = iota

	// CategoryTransport covers car and bus/train travel.
	CategoryTransport

	// CategoryHomeEnergy covers household electricity.
	CategoryHomeEnergy

	// CategoryDiet covers food.
	CategoryDiet
)

// Categories returns the real categories in declaration order.
// Suggest breaks ties in this order.
func Categories() []Category {
	return []Category{CategoryTransport, CategoryHomeEnergy, CategoryDiet}
}

// String returns the display name of the category.
func (c Category) String() string {
	switch c {
	case CategoryTransport:
		return "Transport"
	case CategoryHomeEnergy:
		return "Home Energy"
	case CategoryDiet:
		return "Diet"
	default:
		return "Unknown"
	}
}

// MarshalText encodes the category by its display name.
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// Factors holds the emission factors a Calculator multiplies by.
// Values are kg CO2e per km, per kWh, or per year for diets.
type Factors struct {
	CarPerKm          float64 `json:"car_per_km"`
	BusPerKm          float64 `json:"bus_per_km"`
	ElectricityPerKwh float64 `json:"electricity_per_kwh"`
	MeatHeavy         float64 `json:"meat_heavy"`
	Average           float64 `json:"average"`
	Vegetarian        float64 `json:"vegetarian"`
	Vegan             float64 `json:"vegan"`
}

// DefaultFactors returns the fixed factor set used by the CLI.
func DefaultFactors() Factors {
	return Factors{
		CarPerKm:          CarPerKm,
		BusPerKm:          BusPerKm,
		ElectricityPerKwh: ElectricityPerKwh,
		MeatHeavy:         MeatHeavyDietKg,
		Average:           AverageDietKg,
		Vegetarian:        VegetarianDietKg,
		Vegan:             VeganDietKg,
	}
}

// DietKg returns the yearly footprint for d, or 0 when d is not a defined diet.
func (f Factors) DietKg(d DietChoice) float64 {
	switch d {
	case DietMeatHeavy:
		return f.MeatHeavy
	case DietAverage:
		return f.Average
	case DietVegetarian:
		return f.Vegetarian
	case DietVegan:
		return f.Vegan
	default:
		return 0
	}
}

// Inputs are the validated yearly quantities. The three quantities must be >= 0.
type Inputs struct {
	CarKm          float64    `json:"car_km"`
	BusKm          float64    `json:"bus_km"`
	ElectricityKwh float64    `json:"electricity_kwh"`
	Diet           DietChoice `json:"diet"`
}

// Breakdown is the per-category impact in kg CO2e per year.
// All three categories are always present.
type Breakdown struct {
	Transport  float64 `json:"transport"`
	HomeEnergy float64 `json:"home_energy"`
	Diet       float64 `json:"diet"`
}

// Impact pairs a category with its value.
type Impact struct {
	Category Category `json:"category"`
	Value    float64  `json:"value"`
}

// Value returns the impact of c, or 0 for CategoryUnknown.
func (b Breakdown) Value(c Category) float64 {
	switch c {
	case CategoryTransport:
		return b.Transport
	case CategoryHomeEnergy:
		return b.HomeEnergy
	case CategoryDiet:
		return b.Diet
	default:
		return 0
	}
}

// Total returns Transport + HomeEnergy + Diet.
func (b Breakdown) Total() float64 {
	return b.Transport + b.HomeEnergy + b.Diet
}

// Entries returns the impacts in declaration order.
func (b Breakdown) Entries() []Impact {
	cats := Categories()
	out := make([]Impact, 0, len(cats))
	for _, c := range cats {
		out = append(out, Impact{Category: c, Value: b.Value(c)})
	}
	return out
}

// Recommendation names the largest category and the matching tip.
type Recommendation struct {
	Category Category `json:"category"`
	Value    float64  `json:"value"`
	Tip      string   `json:"tip"`
}

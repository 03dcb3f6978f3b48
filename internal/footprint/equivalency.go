package footprint

import (
	"fmt"
	"math"
	"strings"
)

// EquivalencyType is a familiar activity a footprint can be restated as.
type EquivalencyType int

const (
	// EquivalencyKmDriven restates kg CO2e as km driven by car.
	EquivalencyKmDriven EquivalencyType = iota

	// EquivalencyTreeSeedlings restates kg CO2e as tree seedlings grown for 10 years.
	EquivalencyTreeSeedlings
)

// String returns a human-readable representation of the EquivalencyType.
func (e EquivalencyType) String() string {
	switch e {
	case EquivalencyKmDriven:
		return "KmDriven"
	case EquivalencyTreeSeedlings:
		return "TreeSeedlings"
	default:
		return fmt.Sprintf("EquivalencyType(%d)", int(e))
	}
}

// MarshalText encodes the type by name.
func (e EquivalencyType) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// EquivalencyResult is a single restated amount.
type EquivalencyResult struct {
	Type           EquivalencyType `json:"type"`
	Value          float64         `json:"value"`
	FormattedValue string          `json:"formatted_value"`
	Label          string          `json:"label"`
}

// EquivalencyOutput holds all equivalencies for a total.
type EquivalencyOutput struct {
	// InputKg is the total the equivalencies were computed from.
	InputKg float64 `json:"input_kg"`

	// Results are ordered km driven first, then tree seedlings.
	Results []EquivalencyResult `json:"results"`

	// DisplayText is the one-line prose form.
	// Example: "Equivalent to driving ~13,013 km or growing ~43 tree seedlings for 10 years"
	DisplayText string `json:"display_text"`

	// IsEmpty is true when nothing was computed.
	IsEmpty bool `json:"is_empty"`
}

// Equivalents restates totalKg as km driven (using f.CarPerKm) and as tree
// seedlings grown for ten years.
//
// Totals below MinEquivalencyThresholdKg, non-finite totals, and a factor set
// without a positive car factor all produce an empty output.
func Equivalents(totalKg float64, f Factors) EquivalencyOutput {
	if math.IsNaN(totalKg) || math.IsInf(totalKg, 0) || totalKg < MinEquivalencyThresholdKg {
		return EquivalencyOutput{InputKg: totalKg, IsEmpty: true}
	}
	if f.CarPerKm <= 0 {
		return EquivalencyOutput{InputKg: totalKg, IsEmpty: true}
	}

	km := totalKg / f.CarPerKm
	trees := totalKg / TreeSeedlingKg

	kmFormatted := FormatLarge(km)
	treesFormatted := FormatLarge(trees)

	return EquivalencyOutput{
		InputKg: totalKg,
		Results: []EquivalencyResult{
			{
				Type:           EquivalencyKmDriven,
				Value:          km,
				FormattedValue: kmFormatted,
				Label:          "km driven",
			},
			{
				Type:           EquivalencyTreeSeedlings,
				Value:          trees,
				FormattedValue: treesFormatted,
				Label:          "tree seedlings grown for 10 years",
			},
		},
		DisplayText: fmt.Sprintf("Equivalent to driving %s km or growing %s tree seedlings for 10 years",
			approx(kmFormatted), approx(treesFormatted)),
	}
}

// approx prefixes s with "~" unless FormatLarge already did.
func approx(s string) string {
	if strings.HasPrefix(s, "~") {
		return s
	}
	return "~" + s
}

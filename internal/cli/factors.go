package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/rshade/ecofootprint/internal/footprint"
)

// NewFactorsCmd creates the factors command, which lists the fixed emission
// factors the calculator uses.
func NewFactorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "factors",
		Short: "List the emission factors used in calculations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return renderFactors(cmd.OutOrStdout(), footprint.DefaultFactors())
		},
	}
}

type factorRow struct {
	name  string
	value float64
	unit  string
}

// renderFactors writes f as an aligned table.
func renderFactors(w io.Writer, f footprint.Factors) error {
	rows := []factorRow{
		{"Car", f.CarPerKm, "kg CO2e/km"},
		{"Bus/train", f.BusPerKm, "kg CO2e/km"},
		{"Electricity", f.ElectricityPerKwh, "kg CO2e/kWh"},
	}
	for _, d := range footprint.Diets() {
		rows = append(rows, factorRow{"Diet: " + d.String(), f.DietKg(d), "kg CO2e/year"})
	}

	for _, r := range rows {
		if _, err := fmt.Fprintf(w, "%-18s %10.2f %s\n", r.name, r.value, r.unit); err != nil {
			return err
		}
	}
	return nil
}

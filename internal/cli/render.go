package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rshade/ecofootprint/internal/config"
	"github.com/rshade/ecofootprint/internal/footprint"
	"github.com/rshade/ecofootprint/internal/tui"
)

// categoryNameWidth is the padded width of category names in the plain report.
const categoryNameWidth = 15

// RenderOptions selects the report format.
type RenderOptions struct {
	// Format is config.FormatText or config.FormatJSON.
	Format string
	// Color allows lipgloss styling; it only applies when w is a terminal.
	Color bool
}

// RenderReport writes r to w. Text output is styled when w is a terminal,
// color is allowed, and NO_COLOR is unset; otherwise it is the fixed plain
// format.
func RenderReport(w io.Writer, r tui.Report, opts RenderOptions) error {
	switch opts.Format {
	case config.FormatJSON:
		return renderJSONReport(w, r)
	case config.FormatText, "":
		if opts.Color && os.Getenv("NO_COLOR") == "" && isWriterTerminal(w) {
			_, err := fmt.Fprintln(w, tui.RenderReport(r))
			return err
		}
		return renderPlainReport(w, r)
	default:
		return fmt.Errorf("unsupported output format %q", opts.Format)
	}
}

// renderPlainReport writes the fixed-format text report.
func renderPlainReport(w io.Writer, r tui.Report) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Total Estimated Footprint: %.2f kg CO2e/year\n", r.Breakdown.Total())

	b.WriteString("\nBreakdown by Category:\n")
	for _, impact := range r.Breakdown.Entries() {
		fmt.Fprintf(&b, "%-*s: %.2f kg CO2e\n", categoryNameWidth, impact.Category, impact.Value)
	}

	b.WriteString("\n--- Personalized Tip ---\n")
	fmt.Fprintf(&b, "Highest footprint: %s (%.2f kg CO2e)\n", r.Recommendation.Category, r.Recommendation.Value)
	fmt.Fprintf(&b, "Tip: %s\n", r.Recommendation.Tip)

	if r.Equivalents != nil && !r.Equivalents.IsEmpty {
		fmt.Fprintf(&b, "\n%s\n", r.Equivalents.DisplayText)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// jsonInputs adds the diet label next to its code.
type jsonInputs struct {
	footprint.Inputs
	DietLabel string `json:"diet_label"`
}

// jsonReport is the JSON output document.
type jsonReport struct {
	Inputs         jsonInputs                   `json:"inputs"`
	Breakdown      footprint.Breakdown          `json:"breakdown"`
	Total          float64                      `json:"total"`
	Unit           string                       `json:"unit"`
	Recommendation footprint.Recommendation     `json:"recommendation"`
	Equivalents    *footprint.EquivalencyOutput `json:"equivalents,omitempty"`
}

// renderJSONReport writes r as an indented JSON document.
func renderJSONReport(w io.Writer, r tui.Report) error {
	doc := jsonReport{
		Inputs:         jsonInputs{Inputs: r.Inputs, DietLabel: r.Inputs.Diet.String()},
		Breakdown:      r.Breakdown,
		Total:          r.Breakdown.Total(),
		Unit:           "kg CO2e/year",
		Recommendation: r.Recommendation,
	}
	if r.Equivalents != nil && !r.Equivalents.IsEmpty {
		doc.Equivalents = r.Equivalents
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	return nil
}

// isWriterTerminal reports whether w is an *os.File attached to a terminal.
func isWriterTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return tui.IsTerminal(f)
	}
	return false
}

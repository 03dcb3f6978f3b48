package tui

import (
	"fmt"
	"strings"

	"github.com/rshade/ecofootprint/internal/footprint"
)

// categoryLabelWidth matches the padding of the plain report.
const categoryLabelWidth = 15

// Report is everything a rendered footprint report shows.
type Report struct {
	Inputs         footprint.Inputs
	Breakdown      footprint.Breakdown
	Recommendation footprint.Recommendation
	Equivalents    *footprint.EquivalencyOutput
}

// RenderReport renders r as a bordered, styled summary for terminals.
// The wording matches the plain report; only styling and thousand
// separators differ.
func RenderReport(r Report) string {
	var content strings.Builder

	content.WriteString(HeaderStyle.Render("CARBON FOOTPRINT"))
	content.WriteString("\n")

	content.WriteString(LabelStyle.Render("Total Estimated Footprint: "))
	content.WriteString(ValueStyle.Render(footprint.FormatFloat(r.Breakdown.Total(), 2)))
	content.WriteString(LabelStyle.Render(" kg CO2e/year"))
	content.WriteString("\n\n")

	content.WriteString(HeaderStyle.Render("Breakdown by Category:"))
	content.WriteString("\n")
	for _, impact := range r.Breakdown.Entries() {
		name := fmt.Sprintf("%-*s", categoryLabelWidth, impact.Category.String())
		style := LabelStyle
		if impact.Category == r.Recommendation.Category {
			style = HighlightStyle
		}
		content.WriteString(style.Render(name))
		content.WriteString(LabelStyle.Render(": "))
		content.WriteString(ValueStyle.Render(footprint.FormatFloat(impact.Value, 2)))
		content.WriteString(LabelStyle.Render(" kg CO2e"))
		content.WriteString("\n")
	}

	content.WriteString("\n")
	content.WriteString(HeaderStyle.Render("--- Personalized Tip ---"))
	content.WriteString("\n")
	content.WriteString(LabelStyle.Render("Highest footprint: "))
	content.WriteString(HighlightStyle.Render(r.Recommendation.Category.String()))
	content.WriteString(LabelStyle.Render(
		fmt.Sprintf(" (%s kg CO2e)", footprint.FormatFloat(r.Recommendation.Value, 2))))
	content.WriteString("\n")
	content.WriteString(ValueStyle.Render("Tip: " + r.Recommendation.Tip))

	if r.Equivalents != nil && !r.Equivalents.IsEmpty {
		content.WriteString("\n\n")
		content.WriteString(MutedStyle.Render(r.Equivalents.DisplayText))
	}

	return BoxStyle.Render(content.String())
}

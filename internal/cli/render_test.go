package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/ecofootprint/internal/config"
	"github.com/rshade/ecofootprint/internal/footprint"
	"github.com/rshade/ecofootprint/internal/tui"
)

func reportFor(in footprint.Inputs) tui.Report {
	b := footprint.NewCalculator(footprint.DefaultFactors()).Compute(in)
	return tui.Report{Inputs: in, Breakdown: b, Recommendation: footprint.Suggest(b)}
}

func TestRenderPlainReport(t *testing.T) {
	r := reportFor(footprint.Inputs{CarKm: 100, BusKm: 50, ElectricityKwh: 200, Diet: footprint.DietMeatHeavy})

	var buf bytes.Buffer
	require.NoError(t, renderPlainReport(&buf, r))

	want := "Total Estimated Footprint: 2602.50 kg CO2e/year\n" +
		"\n" +
		"Breakdown by Category:\n" +
		"Transport      : 22.50 kg CO2e\n" +
		"Home Energy    : 80.00 kg CO2e\n" +
		"Diet           : 2500.00 kg CO2e\n" +
		"\n" +
		"--- Personalized Tip ---\n" +
		"Highest footprint: Diet (2500.00 kg CO2e)\n" +
		"Tip: Include more plant-based meals and reduce meat consumption.\n"
	assert.Equal(t, want, buf.String())
}

func TestRenderPlainReport_Scenarios(t *testing.T) {
	tests := []struct {
		name      string
		input     footprint.Inputs
		wantLines []string
	}{
		{
			name:  "vegan only",
			input: footprint.Inputs{Diet: footprint.DietVegan},
			wantLines: []string{
				"Total Estimated Footprint: 700.00 kg CO2e/year",
				"Transport      : 0.00 kg CO2e",
				"Highest footprint: Diet (700.00 kg CO2e)",
			},
		},
		{
			name:  "driving dominates",
			input: footprint.Inputs{CarKm: 5000, Diet: footprint.DietVegan},
			wantLines: []string{
				"Total Estimated Footprint: 1700.00 kg CO2e/year",
				"Transport      : 1000.00 kg CO2e",
				"Highest footprint: Transport (1000.00 kg CO2e)",
				"Tip: Walk, bike, or use public transport more often.",
			},
		},
		{
			name:  "no data",
			input: footprint.Inputs{Diet: footprint.DietChoice(9)},
			wantLines: []string{
				"Total Estimated Footprint: 0.00 kg CO2e/year",
				"Diet           : 0.00 kg CO2e",
				"Highest footprint: Unknown (0.00 kg CO2e)",
				"Tip: Keep monitoring your consumption habits.",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, renderPlainReport(&buf, reportFor(tt.input)))
			for _, line := range tt.wantLines {
				assert.Contains(t, buf.String(), line+"\n")
			}
		})
	}
}

func TestRenderReport_Equivalents(t *testing.T) {
	r := reportFor(footprint.Inputs{CarKm: 5000, Diet: footprint.DietVegan})
	eq := footprint.Equivalents(r.Breakdown.Total(), footprint.DefaultFactors())
	r.Equivalents = &eq

	var buf bytes.Buffer
	require.NoError(t, RenderReport(&buf, r, RenderOptions{Format: config.FormatText, Color: true}))

	assert.Contains(t, buf.String(), "\nEquivalent to driving ~8,500 km or growing ~28 tree seedlings for 10 years\n")
}

func TestRenderReport_JSON(t *testing.T) {
	r := reportFor(footprint.Inputs{CarKm: 100, BusKm: 50, ElectricityKwh: 200, Diet: footprint.DietMeatHeavy})

	var buf bytes.Buffer
	require.NoError(t, RenderReport(&buf, r, RenderOptions{Format: config.FormatJSON}))

	var doc map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))

	assert.InDelta(t, 2602.5, doc["total"], 1e-9)
	assert.Equal(t, "kg CO2e/year", doc["unit"])
	assert.NotContains(t, doc, "equivalents")

	inputs, ok := doc["inputs"].(map[string]any)
	require.True(t, ok)
	assert.InDelta(t, 100.0, inputs["car_km"], 1e-9)
	assert.InDelta(t, 1.0, inputs["diet"], 1e-9)
	assert.Equal(t, "Meat-heavy", inputs["diet_label"])

	breakdown, ok := doc["breakdown"].(map[string]any)
	require.True(t, ok)
	assert.InDelta(t, 22.5, breakdown["transport"], 1e-9)
	assert.InDelta(t, 80.0, breakdown["home_energy"], 1e-9)
	assert.InDelta(t, 2500.0, breakdown["diet"], 1e-9)

	rec, ok := doc["recommendation"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Diet", rec["category"])
	assert.Equal(t, footprint.Tip(footprint.CategoryDiet), rec["tip"])
}

func TestRenderReport_UnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	err := RenderReport(&buf, reportFor(footprint.Inputs{}), RenderOptions{Format: "xml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "xml")
}

func TestIsWriterTerminal(t *testing.T) {
	var buf bytes.Buffer
	assert.False(t, isWriterTerminal(&buf))
}

func TestRenderFactors(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderFactors(&buf, footprint.DefaultFactors()))

	out := buf.String()
	assert.Contains(t, out, "Car")
	assert.Contains(t, out, "0.20 kg CO2e/km")
	assert.Contains(t, out, "0.05 kg CO2e/km")
	assert.Contains(t, out, "0.40 kg CO2e/kWh")
	assert.Contains(t, out, "Diet: Meat-heavy")
	assert.Contains(t, out, "2500.00 kg CO2e/year")
	assert.Contains(t, out, "700.00 kg CO2e/year")
}

package footprint

// tips maps every category, including the no-data sentinel, to its advice.
//
//nolint:gochecknoglobals // Read-only lookup table.
var tips = map[Category]string{
	CategoryTransport:  "Walk, bike, or use public transport more often.",
	CategoryHomeEnergy: "Use energy-efficient appliances and reduce waste.",
	CategoryDiet:       "Include more plant-based meals and reduce meat consumption.",
	CategoryUnknown:    "Keep monitoring your consumption habits.",
}

// Tip returns the reduction tip for c. Anything outside the four known
// categories gets the generic CategoryUnknown tip.
func Tip(c Category) string {
	if tip, ok := tips[c]; ok {
		return tip
	}
	return tips[CategoryUnknown]
}

// Suggest picks the category with the strictly greatest impact.
//
// Categories are compared in declaration order (Transport, Home Energy, Diet)
// and the running maximum only moves on a strictly larger value, so the first
// of several equal maxima wins. When no value is above zero the result is
// CategoryUnknown with value 0 and the generic tip.
func Suggest(b Breakdown) Recommendation {
	top := CategoryUnknown
	maxImpact := 0.0

	for _, c := range Categories() {
		if v := b.Value(c); v > maxImpact {
			maxImpact = v
			top = c
		}
	}

	return Recommendation{
		Category: top,
		Value:    maxImpact,
		Tip:      Tip(top),
	}
}

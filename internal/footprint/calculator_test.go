package footprint

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompute_Scenarios(t *testing.T) {
	tests := []struct {
		name           string
		input          Inputs
		wantTransport  float64
		wantHomeEnergy float64
		wantDiet       float64
		wantTotal      float64
		wantTop        Category
	}{
		{
			name:           "mixed inputs meat-heavy diet",
			input:          Inputs{CarKm: 100, BusKm: 50, ElectricityKwh: 200, Diet: DietMeatHeavy},
			wantTransport:  22.5,
			wantHomeEnergy: 80.0,
			wantDiet:       2500.0,
			wantTotal:      2602.5,
			wantTop:        CategoryDiet,
		},
		{
			name:      "vegan with no travel or electricity",
			input:     Inputs{Diet: DietVegan},
			wantDiet:  700.0,
			wantTotal: 700.0,
			wantTop:   CategoryDiet,
		},
		{
			name:          "heavy driving outweighs vegan diet",
			input:         Inputs{CarKm: 5000, Diet: DietVegan},
			wantTransport: 1000.0,
			wantDiet:      700.0,
			wantTotal:     1700.0,
			wantTop:       CategoryTransport,
		},
		{
			name:    "invalid diet code and zero quantities",
			input:   Inputs{Diet: DietChoice(9)},
			wantTop: CategoryUnknown,
		},
	}

	calc := NewCalculator(DefaultFactors())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calc.Compute(tt.input)

			assert.InDelta(t, tt.wantTransport, got.Transport, 1e-9)
			assert.InDelta(t, tt.wantHomeEnergy, got.HomeEnergy, 1e-9)
			assert.InDelta(t, tt.wantDiet, got.Diet, 1e-9)
			assert.InDelta(t, tt.wantTotal, got.Total(), 1e-9)
			assert.Equal(t, tt.wantTop, Suggest(got).Category)
		})
	}
}

func TestCompute_MatchesLinearFormulas(t *testing.T) {
	calc := NewCalculator(DefaultFactors())
	quantities := []float64{0, 0.5, 1, 12.34, 250, 9999.99, 1e6}

	for _, car := range quantities {
		for _, bus := range quantities {
			for _, kwh := range quantities {
				for _, diet := range Diets() {
					in := Inputs{CarKm: car, BusKm: bus, ElectricityKwh: kwh, Diet: diet}
					got := calc.Compute(in)

					assert.InDelta(t, car*0.20+bus*0.05, got.Transport, 1e-6)
					assert.InDelta(t, kwh*0.40, got.HomeEnergy, 1e-6)
					assert.Equal(t, DefaultFactors().DietKg(diet), got.Diet)
					assert.GreaterOrEqual(t, got.Transport, 0.0)
					assert.GreaterOrEqual(t, got.HomeEnergy, 0.0)
					assert.Greater(t, got.Diet, 0.0)
				}
			}
		}
	}
}

func TestCompute_DietValues(t *testing.T) {
	calc := NewCalculator(DefaultFactors())

	tests := []struct {
		diet DietChoice
		want float64
	}{
		{DietMeatHeavy, 2500.0},
		{DietAverage, 1500.0},
		{DietVegetarian, 1000.0},
		{DietVegan, 700.0},
		{DietChoice(0), 0},
		{DietChoice(-1), 0},
		{DietChoice(5), 0},
		{DietChoice(9), 0},
	}

	for _, tt := range tests {
		t.Run(tt.diet.String(), func(t *testing.T) {
			got := calc.Compute(Inputs{Diet: tt.diet})
			assert.Equal(t, tt.want, got.Diet)
		})
	}
}

func TestCompute_Deterministic(t *testing.T) {
	calc := NewCalculator(DefaultFactors())
	in := Inputs{CarKm: 1234.5, BusKm: 678.9, ElectricityKwh: 3210, Diet: DietAverage}

	first := calc.Compute(in)
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, calc.Compute(in))
	}
	assert.Equal(t, first, NewCalculator(DefaultFactors()).Compute(in))
}

func TestCompute_CustomFactors(t *testing.T) {
	factors := Factors{
		CarPerKm:          1,
		BusPerKm:          2,
		ElectricityPerKwh: 3,
		MeatHeavy:         10,
		Average:           20,
		Vegetarian:        30,
		Vegan:             40,
	}
	calc := NewCalculator(factors)

	got := calc.Compute(Inputs{CarKm: 1, BusKm: 1, ElectricityKwh: 1, Diet: DietVegetarian})

	assert.Equal(t, Breakdown{Transport: 3, HomeEnergy: 3, Diet: 30}, got)
	assert.Equal(t, factors, calc.Factors())
}

func TestBreakdown_TotalAndEntries(t *testing.T) {
	b := Breakdown{Transport: 22.5, HomeEnergy: 80, Diet: 2500}

	assert.Equal(t, b.Transport+b.HomeEnergy+b.Diet, b.Total())

	entries := b.Entries()
	assert.Equal(t, []Impact{
		{Category: CategoryTransport, Value: 22.5},
		{Category: CategoryHomeEnergy, Value: 80},
		{Category: CategoryDiet, Value: 2500},
	}, entries)

	sum := 0.0
	for _, e := range entries {
		sum += e.Value
	}
	assert.Equal(t, b.Total(), sum)
	assert.Zero(t, b.Value(CategoryUnknown))
}

func BenchmarkCompute(b *testing.B) {
	calc := NewCalculator(DefaultFactors())
	in := Inputs{CarKm: 100, BusKm: 50, ElectricityKwh: 200, Diet: DietMeatHeavy}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = calc.Compute(in)
	}
}

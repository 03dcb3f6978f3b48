package footprint

// Calculator turns Inputs into a Breakdown using a fixed set of Factors.
// The zero value computes everything as 0; use NewCalculator.
type Calculator struct {
	factors Factors
}

// NewCalculator returns a Calculator bound to f.
func NewCalculator(f Factors) *Calculator {
	return &Calculator{factors: f}
}

// Factors returns the factor set the calculator was built with.
func (c *Calculator) Factors() Factors {
	return c.factors
}

// Compute returns the yearly impact of in per category.
//
// Transport is CarKm*CarPerKm + BusKm*BusPerKm, HomeEnergy is
// ElectricityKwh*ElectricityPerKwh, and Diet is the diet's yearly figure.
// A diet code outside 1..4 contributes 0 rather than failing.
//
// Compute has no error path; callers validate quantities with ParseQuantity
// and ParseDiet first.
func (c *Calculator) Compute(in Inputs) Breakdown {
	f := c.factors
	return Breakdown{
		Transport:  in.CarKm*f.CarPerKm + in.BusKm*f.BusPerKm,
		HomeEnergy: in.ElectricityKwh * f.ElectricityPerKwh,
		Diet:       f.DietKg(in.Diet),
	}
}

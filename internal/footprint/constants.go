package footprint

// Emission factors in kg CO2e per unit of activity.
//
// These are the fixed coefficients the calculator is built with. They are not
// user-configurable; DefaultFactors exposes them as an immutable Factors value.
const (
	// CarPerKm is kg CO2e per km driven in an average passenger car.
	CarPerKm = 0.20

	// BusPerKm is kg CO2e per passenger-km by bus or train.
	BusPerKm = 0.05

	// ElectricityPerKwh is kg CO2e per kWh of household electricity.
	ElectricityPerKwh = 0.40
)

// Annual diet footprints in kg CO2e per year.
const (
	// MeatHeavyDietKg is the yearly footprint of a meat-heavy diet.
	MeatHeavyDietKg = 2500.0

	// AverageDietKg is the yearly footprint of a mixed diet.
	AverageDietKg = 1500.0

	// VegetarianDietKg is the yearly footprint of a vegetarian diet.
	VegetarianDietKg = 1000.0

	// VeganDietKg is the yearly footprint of a vegan diet.
	VeganDietKg = 700.0
)

// Equivalency constants.
const (
	// TreeSeedlingKg is kg CO2e absorbed per tree seedling grown for 10 years.
	// Source: EPA GHG Equivalencies Calculator.
	TreeSeedlingKg = 60.0

	// MinEquivalencyThresholdKg is the smallest total for which equivalencies are shown.
	// Below it the restated amounts round to nothing meaningful.
	MinEquivalencyThresholdKg = 1.0

	// LargeNumberThreshold switches equivalency display to "~X.X million".
	LargeNumberThreshold = 1_000_000

	// BillionThreshold switches equivalency display to "~X.X billion".
	BillionThreshold = 1_000_000_000
)

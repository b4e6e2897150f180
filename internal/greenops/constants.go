package greenops

// Emission factors in kg CO2e per unit of reported quantity.
const (
	// DrivingFactor is kg CO2e per km driven by car.
	DrivingFactor = 0.2

	// AIUsageFactor is kg CO2e per hour of AI tool usage.
	AIUsageFactor = 0.1

	// CommuteFactor is kg CO2e per km on public transport.
	CommuteFactor = 0.15

	// PhoneFactor is kg CO2e per hour of phone or device usage.
	PhoneFactor = 0.05

	// ElectricityFactor is kg CO2e per kWh consumed.
	ElectricityFactor = 0.5

	// FoodFactor is kg CO2e per kg of meat eaten.
	FoodFactor = 2.5
)

// Impact thresholds for a daily total in kg CO2e.
const (
	// ImpactMediumThresholdKg is the lowest total rated ImpactMedium.
	ImpactMediumThresholdKg = 10.0

	// ImpactHighThresholdKg is the lowest total rated ImpactHigh.
	ImpactHighThresholdKg = 20.0
)

// EPA Formula Constants (2024 Edition)
// Source: https://www.epa.gov/energy/greenhouse-gas-equivalencies-calculator
//
//	equivalency = kg_CO2e / factor
const (
	// EPAMilesDrivenFactor is kg CO2e per mile for average passenger vehicle.
	EPAMilesDrivenFactor = 0.192

	// EPASmartphoneChargeFactor is kg CO2e per smartphone charge.
	EPASmartphoneChargeFactor = 0.00822
)

// Unit Conversion Constants for normalizing carbon values to kilograms.
const (
	GramsToKg  = 0.001
	KgToKg     = 1.0
	TonsToKg   = 1000.0
	PoundsToKg = 0.453592
)

// Display Threshold Constants control when equivalencies are shown.
const (
	// MinEquivalencyThresholdKg is the minimum kg CO2e for showing equivalencies.
	// Below this threshold the equivalencies become meaninglessly small.
	MinEquivalencyThresholdKg = 1.0

	// LargeNumberThreshold is the threshold for using abbreviated display.
	// Values at or above this threshold use "~X.X million" format.
	LargeNumberThreshold = 1_000_000

	// BillionThreshold is the threshold for billion-scale display.
	BillionThreshold = 1_000_000_000
)

package stats

import "github.com/shopspring/decimal"

// Fixed analysis constants inherited from the dashboard. Deliberately not
// configurable.
const (
	seasonalityThreshold = 0.03
	outlierFenceFactor   = 1.5
	projectionSteps      = 3
	minBrandRecords      = 10
	minRegionRecords     = 2

	litersPerWeek = 40
	weeksPerMonth = 4

	fuelEthanol = "ETANOL"

	// brandUnknown mirrors the survey's unidentified reseller label.
	brandUnknown = "Não Identificada"
)

// monthlyImpact estimates the monthly cost delta for a driver filling 40
// liters a week, rounded to centavos.
func monthlyImpact(priceDelta float64) float64 {
	return decimal.NewFromFloat(priceDelta).
		Mul(decimal.NewFromInt(litersPerWeek)).
		Mul(decimal.NewFromInt(weeksPerMonth)).
		Round(2).
		InexactFloat64()
}

package stats

import (
	"github.com/gcouto/combustiveis-bh/internal/domain"
	"github.com/gcouto/combustiveis-bh/internal/domain/dto"
	"github.com/gcouto/combustiveis-bh/internal/pkg/constants"
)

const secondsPerMonth = 60 * 60 * 24 * 30

// Correlation relates sale price to collection time and computes the
// ethanol-to-gasoline parity. Parity stays nil unless both fuel subsets are
// non-empty.
func Correlation(records []*domain.FuelRecord) *dto.CorrelationView {
	v := &dto.CorrelationView{}
	if len(records) == 0 {
		return v
	}

	ps := prices(records)
	months := make([]float64, len(records))
	for i, r := range records {
		if r.SaleDate != nil {
			months[i] = float64(r.SaleDate.Unix()) / secondsPerMonth
		}
	}
	v.PriceTimeCorrelation = pearson(ps, months)

	var gasoline, ethanol []float64
	for _, r := range records {
		switch r.Product {
		case constants.TargetFuel:
			gasoline = append(gasoline, r.SaleValue)
		case fuelEthanol:
			ethanol = append(ethanol, r.SaleValue)
		}
	}

	if len(gasoline) > 0 {
		g := mean(gasoline)
		v.GasolineAvg = &g
	}
	if len(ethanol) > 0 {
		e := mean(ethanol)
		v.EthanolAvg = &e
	}
	if len(gasoline) > 0 && len(ethanol) > 0 {
		parity := 0.0
		if g := mean(gasoline); g != 0 {
			parity = mean(ethanol) / g * 100
		}
		v.EthanolGasolineParity = &parity
		v.EthanolFavorable = parity <= 70
	}
	return v
}

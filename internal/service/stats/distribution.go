package stats

import (
	"github.com/gcouto/combustiveis-bh/internal/domain"
	"github.com/gcouto/combustiveis-bh/internal/domain/dto"
)

// Distribution computes the descriptive statistics of the working subset's
// sale values.
func Distribution(records []*domain.FuelRecord) *dto.DistributionView {
	ps := prices(records)
	v := &dto.DistributionView{Count: len(ps), Outliers: []float64{}}
	if len(ps) == 0 {
		return v
	}

	sorted := sortedCopy(ps)
	v.Mean = mean(ps)
	v.Median = median(ps)
	if m, ok := modeFirst(ps); ok {
		mode := m
		v.Mode = &mode
	}
	v.Std = sampleStd(ps)
	v.Min = sorted[0]
	v.Max = sorted[len(sorted)-1]
	v.Q1 = quantileExc(sorted, 0.25)
	v.Q3 = quantileExc(sorted, 0.75)
	v.IQR = v.Q3 - v.Q1

	if v.Mean != 0 {
		v.CV = v.Std / v.Mean * 100
	}
	// outlier detection needs a strictly positive IQR
	if v.IQR > 0 {
		v.Outliers = fenceOutliers(ps, v.Q1, v.Q3)
	}
	v.OutlierPct = float64(len(v.Outliers)) / float64(len(ps)) * 100
	return v
}

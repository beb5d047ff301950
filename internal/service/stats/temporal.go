package stats

import (
	"math"
	"sort"
	"strings"

	"github.com/gcouto/combustiveis-bh/internal/domain"
	"github.com/gcouto/combustiveis-bh/internal/domain/dto"
)

// Temporal groups the subset by semester and derives trend, seasonality and
// the 3-step linear projection. Semester tags sort lexicographically, which
// is also chronological for the YYYY/SN format.
func Temporal(records []*domain.FuelRecord) *dto.TemporalView {
	v := &dto.TemporalView{Projections: []float64{}, Variations: []float64{}}
	if len(records) == 0 {
		return v
	}

	bySemester := groupBy(records, func(r *domain.FuelRecord) string { return r.Semester })
	semesters := sortedKeys(bySemester)
	v.Semesters = semesters

	means := make([]float64, len(semesters))
	for i, sem := range semesters {
		means[i] = mean(prices(bySemester[sem]))
	}
	v.Means = means

	byProduct := groupBy(records, func(r *domain.FuelRecord) string { return r.Product })
	for _, product := range sortedKeys(byProduct) {
		productBySem := groupBy(byProduct[product], func(r *domain.FuelRecord) string { return r.Semester })
		series := dto.ProductSeries{Product: product, Means: make([]*float64, len(semesters))}
		for i, sem := range semesters {
			if rs, ok := productBySem[sem]; ok {
				m := mean(prices(rs))
				series.Means[i] = &m
			}
		}
		v.ProductSeries = append(v.ProductSeries, series)
	}

	v.Seasonality = seasonality(semesters, means)

	// regression input: semesters with a positive mean; indices stay
	// consecutive even across gaps (inherited from the original analysis)
	pts := make([]float64, 0, len(means))
	for _, m := range means {
		if m > 0 {
			pts = append(pts, m)
		}
	}
	if len(pts) < 2 {
		return v
	}

	n := float64(len(pts))
	var sumX, sumY, sumXY, sumXX float64
	for i, y := range pts {
		x := float64(i)
		sumX += x
		sumY += y
		sumXY += x * y
		sumXX += x * x
	}
	slope := (n*sumXY - sumX*sumY) / (n*sumXX - sumX*sumX)
	intercept := (sumY - slope*sumX) / n

	first := pts[0]
	last := pts[len(pts)-1]
	v.Trend = dto.Trend{
		Slope:          slope,
		Intercept:      intercept,
		TotalVariation: (last - first) / first * 100,
		FirstPrice:     first,
		LastPrice:      last,
	}

	for i := 0; i < projectionSteps; i++ {
		v.Projections = append(v.Projections, slope*(n+float64(i))+intercept)
	}

	var absSum float64
	for i := 1; i < len(pts); i++ {
		variation := (pts[i] - pts[i-1]) / pts[i-1] * 100
		v.Variations = append(v.Variations, variation)
		absSum += math.Abs(variation)
	}
	v.AvgVariation = absSum / float64(len(v.Variations))
	v.MonthlyImpact = monthlyImpact(last - first)
	return v
}

// seasonality compares S1 and S2 semester means against the fixed 3%
// threshold.
func seasonality(semesters []string, means []float64) dto.Seasonality {
	var s1, s2 []float64
	for i, sem := range semesters {
		if strings.HasSuffix(sem, "S1") {
			s1 = append(s1, means[i])
		} else {
			s2 = append(s2, means[i])
		}
	}

	out := dto.Seasonality{}
	if len(s1) > 0 {
		out.FirstSemAvg = mean(s1)
	}
	if len(s2) > 0 {
		out.SecondSemAvg = mean(s2)
	}
	if len(s1) > 0 && len(s2) > 0 {
		diff := math.Abs(out.SecondSemAvg - out.FirstSemAvg)
		avg := (out.FirstSemAvg + out.SecondSemAvg) / 2
		out.HasSeason = avg != 0 && diff/avg > seasonalityThreshold
	}
	return out
}

func groupBy(records []*domain.FuelRecord, key func(*domain.FuelRecord) string) map[string][]*domain.FuelRecord {
	out := make(map[string][]*domain.FuelRecord)
	for _, r := range records {
		k := key(r)
		out[k] = append(out[k], r)
	}
	return out
}

func sortedKeys(groups map[string][]*domain.FuelRecord) []string {
	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

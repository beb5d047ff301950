package stats

import (
	"sort"

	"github.com/gcouto/combustiveis-bh/internal/domain"
	"github.com/gcouto/combustiveis-bh/internal/domain/dto"
)

const topCheapestCount = 15

// Brand ranks resellers by mean price, ascending. Unidentified brands and
// groups with fewer than 10 records are excluded. AverageOfMeans is the mean
// of the qualifying per-brand means, not the population mean.
func Brand(records []*domain.FuelRecord) *dto.BrandView {
	v := &dto.BrandView{Brands: []dto.BrandStats{}, Podium: []dto.BrandStats{}, TopCheapest: []dto.BrandStats{}}

	byBrand := groupBy(records, func(r *domain.FuelRecord) string { return r.Brand })
	for brand, rs := range byBrand {
		if brand == brandUnknown || len(rs) < minBrandRecords {
			continue
		}
		ps := prices(rs)
		sorted := sortedCopy(ps)
		v.Brands = append(v.Brands, dto.BrandStats{
			Brand:  brand,
			Count:  len(rs),
			Mean:   mean(ps),
			Median: median(ps),
			Min:    sorted[0],
		})
	}

	sort.Slice(v.Brands, func(i, j int) bool {
		if v.Brands[i].Mean != v.Brands[j].Mean {
			return v.Brands[i].Mean < v.Brands[j].Mean
		}
		return v.Brands[i].Brand < v.Brands[j].Brand
	})

	if len(v.Brands) > 0 {
		means := make([]float64, len(v.Brands))
		for i, b := range v.Brands {
			means[i] = b.Mean
		}
		v.AverageOfMeans = mean(means)
	}

	v.Podium = headOf(v.Brands, 3)
	v.TopCheapest = headOf(v.Brands, topCheapestCount)
	return v
}

func headOf(brands []dto.BrandStats, n int) []dto.BrandStats {
	if len(brands) < n {
		n = len(brands)
	}
	out := make([]dto.BrandStats, n)
	copy(out, brands[:n])
	return out
}

package stats

import (
	"sort"

	"github.com/gcouto/combustiveis-bh/internal/domain"
	"github.com/gcouto/combustiveis-bh/internal/domain/dto"
	"github.com/gcouto/combustiveis-bh/internal/pkg/geo"
)

const topBrandCount = 10

// Overview counts the dataset along its categorical axes.
func Overview(records []*domain.FuelRecord) *dto.OverviewView {
	v := &dto.OverviewView{
		TotalRecords:      len(records),
		RecordsBySemester: make(map[string]int),
		RecordsByProduct:  make(map[string]int),
		RecordsByRegion:   make(map[string]int),
		RecordsByBrand:    make(map[string]int),
	}

	stations := make(map[string]struct{})
	for _, r := range records {
		v.RecordsBySemester[r.Semester]++
		v.RecordsByProduct[r.Product]++
		v.RecordsByRegion[r.Region]++
		v.RecordsByBrand[r.Brand]++
		stations[r.StationID] = struct{}{}
	}
	v.UniqueStations = len(stations)

	for region := range v.RecordsByRegion {
		if region != geo.RegionUnknown {
			v.MappedRegions++
		}
	}

	v.TopBrands = topBrands(v.RecordsByBrand, topBrandCount)
	return v
}

// topBrands ranks brands by record count descending, name ascending on ties.
func topBrands(counts map[string]int, limit int) []dto.BrandCount {
	out := make([]dto.BrandCount, 0, len(counts))
	for brand, n := range counts {
		out = append(out, dto.BrandCount{Brand: brand, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Brand < out[j].Brand
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

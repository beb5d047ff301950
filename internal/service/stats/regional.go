package stats

import (
	"sort"

	"github.com/gcouto/combustiveis-bh/internal/domain"
	"github.com/gcouto/combustiveis-bh/internal/domain/dto"
	"github.com/gcouto/combustiveis-bh/internal/pkg/geo"
)

// Regional ranks the mapped regions by mean price, ascending. The unmapped
// sentinel and regions with fewer than 2 records are excluded.
func Regional(records []*domain.FuelRecord) *dto.RegionalView {
	v := &dto.RegionalView{Regions: []dto.RegionalStats{}}

	byRegion := groupBy(records, func(r *domain.FuelRecord) string { return r.Region })
	for region, rs := range byRegion {
		if region == geo.RegionUnknown || len(rs) < minRegionRecords {
			continue
		}
		ps := prices(rs)
		sorted := sortedCopy(ps)
		v.Regions = append(v.Regions, dto.RegionalStats{
			Region: region,
			Count:  len(rs),
			Mean:   mean(ps),
			Median: median(ps),
			Std:    sampleStd(ps),
			Min:    sorted[0],
			Max:    sorted[len(sorted)-1],
		})
	}

	sort.Slice(v.Regions, func(i, j int) bool {
		if v.Regions[i].Mean != v.Regions[j].Mean {
			return v.Regions[i].Mean < v.Regions[j].Mean
		}
		return v.Regions[i].Region < v.Regions[j].Region
	})
	return v
}

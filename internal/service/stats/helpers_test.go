package stats

import (
	"time"

	"github.com/gcouto/combustiveis-bh/internal/domain"
)

// rec builds a minimal gasoline record for the aggregation tests.
func rec(semester, region string, value float64) *domain.FuelRecord {
	return &domain.FuelRecord{
		Product:   "GASOLINA",
		Semester:  semester,
		Region:    region,
		SaleValue: value,
	}
}

func recBrand(brand string, value float64) *domain.FuelRecord {
	r := rec("2023/S1", "Centro-Sul", value)
	r.Brand = brand
	return r
}

func recDated(product string, value float64, day time.Time) *domain.FuelRecord {
	r := rec("2023/S1", "Centro-Sul", value)
	r.Product = product
	r.SaleDate = &day
	return r
}

func nRecords(n int, brand string, value float64) []*domain.FuelRecord {
	out := make([]*domain.FuelRecord, n)
	for i := range out {
		out[i] = recBrand(brand, value)
	}
	return out
}

package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gcouto/combustiveis-bh/internal/domain"
)

func TestBrand(t *testing.T) {
	var records []*domain.FuelRecord
	records = append(records, nRecords(10, "IPIRANGA", 5.4)...)
	records = append(records, nRecords(10, "SHELL", 5.8)...)
	records = append(records, nRecords(10, "PETROBRAS", 5.6)...)
	records = append(records, nRecords(10, "ALE", 5.2)...)
	records = append(records, nRecords(9, "RARA", 4.0)...)          // below minimum, excluded
	records = append(records, nRecords(10, brandUnknown, 3.0)...)   // sentinel, excluded

	v := Brand(records)
	require.Len(t, v.Brands, 4)

	// ascending mean
	assert.Equal(t, "ALE", v.Brands[0].Brand)
	assert.Equal(t, "IPIRANGA", v.Brands[1].Brand)
	assert.Equal(t, "PETROBRAS", v.Brands[2].Brand)
	assert.Equal(t, "SHELL", v.Brands[3].Brand)

	assert.InDelta(t, 5.5, v.AverageOfMeans, 1e-9)

	require.Len(t, v.Podium, 3)
	assert.Equal(t, "ALE", v.Podium[0].Brand)
	assert.Len(t, v.TopCheapest, 4)
}

func TestBrandMinimumCount(t *testing.T) {
	nine := Brand(nRecords(9, "IPIRANGA", 5.4))
	assert.Empty(t, nine.Brands)
	assert.Zero(t, nine.AverageOfMeans)

	ten := Brand(nRecords(10, "IPIRANGA", 5.4))
	require.Len(t, ten.Brands, 1)
	assert.Equal(t, 10, ten.Brands[0].Count)
	assert.Len(t, ten.Podium, 1)
}

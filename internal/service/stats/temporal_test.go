package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gcouto/combustiveis-bh/internal/domain"
)

func TestTemporal(t *testing.T) {
	records := []*domain.FuelRecord{
		rec("2023/S1", "Centro-Sul", 4.9),
		rec("2023/S1", "Centro-Sul", 5.1),
		rec("2023/S2", "Centro-Sul", 5.4),
		rec("2023/S2", "Centro-Sul", 5.6),
	}

	v := Temporal(records)
	assert.Equal(t, []string{"2023/S1", "2023/S2"}, v.Semesters)
	require.Len(t, v.Means, 2)
	assert.InDelta(t, 5.0, v.Means[0], 1e-9)
	assert.InDelta(t, 5.5, v.Means[1], 1e-9)

	assert.InDelta(t, 0.5, v.Trend.Slope, 1e-9)
	assert.InDelta(t, 5.0, v.Trend.Intercept, 1e-9)
	assert.InDelta(t, 10.0, v.Trend.TotalVariation, 1e-9)
	assert.InDelta(t, 5.0, v.Trend.FirstPrice, 1e-9)
	assert.InDelta(t, 5.5, v.Trend.LastPrice, 1e-9)

	require.Len(t, v.Projections, 3)
	assert.InDelta(t, 6.0, v.Projections[0], 1e-9)
	assert.InDelta(t, 6.5, v.Projections[1], 1e-9)
	assert.InDelta(t, 7.0, v.Projections[2], 1e-9)

	require.Len(t, v.Variations, 1)
	assert.InDelta(t, 10.0, v.Variations[0], 1e-9)
	assert.InDelta(t, 10.0, v.AvgVariation, 1e-9)

	// 0.50 per liter over 160 liters a month
	assert.InDelta(t, 80.0, v.MonthlyImpact, 1e-9)

	// 5.0 vs 5.5 is a 9.5% gap, above the 3% threshold
	assert.True(t, v.Seasonality.HasSeason)
	assert.InDelta(t, 5.0, v.Seasonality.FirstSemAvg, 1e-9)
	assert.InDelta(t, 5.5, v.Seasonality.SecondSemAvg, 1e-9)
}

func TestTemporalProductSeriesGaps(t *testing.T) {
	records := []*domain.FuelRecord{
		rec("2023/S1", "Centro-Sul", 5.0),
		rec("2023/S2", "Centro-Sul", 5.5),
	}
	records[1].Product = "GASOLINA ADITIVADA"

	v := Temporal(records)
	require.Len(t, v.ProductSeries, 2)
	assert.Equal(t, "GASOLINA", v.ProductSeries[0].Product)
	require.NotNil(t, v.ProductSeries[0].Means[0])
	assert.Nil(t, v.ProductSeries[0].Means[1])
	assert.Nil(t, v.ProductSeries[1].Means[0])
	require.NotNil(t, v.ProductSeries[1].Means[1])
}

func TestTemporalSingleSemester(t *testing.T) {
	v := Temporal([]*domain.FuelRecord{rec("2023/S1", "Centro-Sul", 5.0)})

	assert.Equal(t, []string{"2023/S1"}, v.Semesters)
	// one point is not enough for a regression
	assert.Empty(t, v.Projections)
	assert.Empty(t, v.Variations)
	assert.Zero(t, v.Trend.Slope)
}

func TestTemporalEmpty(t *testing.T) {
	v := Temporal(nil)

	assert.Empty(t, v.Semesters)
	assert.Empty(t, v.Projections)
	assert.False(t, v.Seasonality.HasSeason)
}

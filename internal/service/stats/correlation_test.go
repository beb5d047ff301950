package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gcouto/combustiveis-bh/internal/domain"
)

func TestCorrelationRisingPrices(t *testing.T) {
	base := time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC)
	records := []*domain.FuelRecord{
		recDated("GASOLINA", 5.0, base),
		recDated("GASOLINA", 5.3, base.AddDate(0, 2, 0)),
		recDated("GASOLINA", 5.6, base.AddDate(0, 4, 0)),
		recDated("GASOLINA", 5.9, base.AddDate(0, 6, 0)),
	}

	v := Correlation(records)
	assert.Greater(t, v.PriceTimeCorrelation, 0.95)
	require.NotNil(t, v.GasolineAvg)
	assert.Nil(t, v.EthanolAvg)
	assert.Nil(t, v.EthanolGasolineParity)
	assert.False(t, v.EthanolFavorable)
}

func TestCorrelationParity(t *testing.T) {
	base := time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC)
	records := []*domain.FuelRecord{
		recDated("GASOLINA", 6.0, base),
		recDated("GASOLINA", 6.0, base),
		recDated("ETANOL", 3.9, base),
		recDated("ETANOL", 4.1, base),
	}

	v := Correlation(records)
	require.NotNil(t, v.EthanolGasolineParity)
	assert.InDelta(t, 66.666, *v.EthanolGasolineParity, 1e-2)
	assert.True(t, v.EthanolFavorable)
	require.NotNil(t, v.EthanolAvg)
	assert.InDelta(t, 4.0, *v.EthanolAvg, 1e-9)
}

func TestCorrelationParityAboveThreshold(t *testing.T) {
	base := time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC)
	records := []*domain.FuelRecord{
		recDated("GASOLINA", 5.0, base),
		recDated("ETANOL", 4.5, base),
	}

	v := Correlation(records)
	require.NotNil(t, v.EthanolGasolineParity)
	assert.InDelta(t, 90.0, *v.EthanolGasolineParity, 1e-9)
	assert.False(t, v.EthanolFavorable)
}

func TestCorrelationEmpty(t *testing.T) {
	v := Correlation(nil)

	assert.Zero(t, v.PriceTimeCorrelation)
	assert.Nil(t, v.GasolineAvg)
	assert.Nil(t, v.EthanolGasolineParity)
}

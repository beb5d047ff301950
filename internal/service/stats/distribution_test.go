package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gcouto/combustiveis-bh/internal/domain"
)

func TestDistribution(t *testing.T) {
	records := []*domain.FuelRecord{}
	for _, v := range []float64{1, 2, 3, 4, 5, 6, 7, 8} {
		records = append(records, rec("2023/S1", "Centro-Sul", v))
	}

	d := Distribution(records)
	assert.Equal(t, 8, d.Count)
	assert.InDelta(t, 4.5, d.Mean, 1e-9)
	assert.InDelta(t, 4.5, d.Median, 1e-9)
	assert.InDelta(t, 2.25, d.Q1, 1e-9)
	assert.InDelta(t, 6.75, d.Q3, 1e-9)
	assert.InDelta(t, 4.5, d.IQR, 1e-9)
	assert.Equal(t, 1.0, d.Min)
	assert.Equal(t, 8.0, d.Max)
	require.NotNil(t, d.Mode)
	assert.Equal(t, 1.0, *d.Mode)
}

func TestDistributionConstantSeries(t *testing.T) {
	d := Distribution(nRecords(4, "IPIRANGA", 10))

	assert.Equal(t, 10.0, d.Mean)
	assert.Equal(t, 0.0, d.Std)
	assert.Equal(t, 0.0, d.CV)
	assert.Equal(t, 0.0, d.IQR)
	// a zero IQR suppresses outlier detection entirely
	assert.Empty(t, d.Outliers)
	assert.Equal(t, 0.0, d.OutlierPct)
}

func TestDistributionEmpty(t *testing.T) {
	d := Distribution(nil)

	assert.Equal(t, 0, d.Count)
	assert.Nil(t, d.Mode)
	assert.Empty(t, d.Outliers)
}

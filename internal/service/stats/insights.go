package stats

import (
	"fmt"
	"math"

	"github.com/gcouto/combustiveis-bh/internal/domain"
	"github.com/gcouto/combustiveis-bh/internal/domain/dto"
	"github.com/gcouto/combustiveis-bh/internal/pkg/geo"
)

const (
	insightTrend       = "trend"
	insightRegional    = "regional"
	insightVariability = "variability"
	insightOutliers    = "outliers"
)

// Insights derives the narrative findings shown on the closing chapter. It
// always runs over the complete dataset, ignoring the active filter.
func Insights(records []*domain.FuelRecord) *dto.InsightsView {
	v := &dto.InsightsView{Insights: []dto.Insight{}}
	if len(records) == 0 {
		return v
	}

	bySemester := groupBy(records, func(r *domain.FuelRecord) string { return r.Semester })
	semesters := sortedKeys(bySemester)
	first, last := semesters[0], semesters[len(semesters)-1]
	firstAvg := mean(prices(bySemester[first]))
	lastAvg := mean(prices(bySemester[last]))

	var totalVariation float64
	if firstAvg > 0 {
		totalVariation = (lastAvg - firstAvg) / firstAvg * 100
	}

	if firstAvg > 0 && lastAvg > 0 {
		v.Insights = append(v.Insights, trendInsight(first, last, firstAvg, lastAvg, totalVariation))
	}

	// sentinel region dropped, but no minimum record count here
	mapped := make([]*domain.FuelRecord, 0, len(records))
	for _, r := range records {
		if r.Region != geo.RegionUnknown {
			mapped = append(mapped, r)
		}
	}
	byRegion := groupBy(mapped, func(r *domain.FuelRecord) string { return r.Region })
	if len(byRegion) >= 2 {
		v.Insights = append(v.Insights, regionalInsight(byRegion))
	}

	dist := Distribution(records)
	v.Insights = append(v.Insights, variabilityInsight(dist))
	if dist.OutlierPct > 2 {
		v.Insights = append(v.Insights, outlierInsight(dist))
	}

	v.Summary = dto.InsightsSummary{
		TotalRecords:   len(records),
		Period:         fmt.Sprintf("%s a %s", first, last),
		AvgPrice:       mean(prices(records)),
		TotalVariation: totalVariation,
		RegionCount:    len(byRegion),
		FuelTypes:      len(groupBy(records, func(r *domain.FuelRecord) string { return r.Product })),
	}
	return v
}

func trendInsight(first, last string, firstAvg, lastAvg, totalVariation float64) dto.Insight {
	direction := "aumentaram"
	if totalVariation <= 0 {
		direction = "diminuíram"
	}
	impact := monthlyImpact(lastAvg - firstAvg)
	return dto.Insight{
		Type:  insightTrend,
		Title: "Evolução Temporal dos Preços",
		Summary: fmt.Sprintf("Os preços %s %.1f%% entre %s e %s.",
			direction, math.Abs(totalVariation), first, last),
		Values: map[string]float64{
			"totalVariation": totalVariation,
			"firstAvg":       firstAvg,
			"lastAvg":        lastAvg,
		},
		MonthlyImpact: &impact,
	}
}

func regionalInsight(byRegion map[string][]*domain.FuelRecord) dto.Insight {
	type regionMean struct {
		region string
		mean   float64
	}
	cheapest := regionMean{mean: math.Inf(1)}
	priciest := regionMean{mean: math.Inf(-1)}
	for _, region := range sortedKeys(byRegion) {
		m := mean(prices(byRegion[region]))
		if m < cheapest.mean {
			cheapest = regionMean{region, m}
		}
		if m > priciest.mean {
			priciest = regionMean{region, m}
		}
	}

	spread := (priciest.mean - cheapest.mean) / cheapest.mean * 100
	impact := monthlyImpact(priciest.mean - cheapest.mean)
	return dto.Insight{
		Type:    insightRegional,
		Title:   "Disparidades Regionais Significativas",
		Summary: fmt.Sprintf("Diferença de %.1f%% entre a regional mais cara e a mais barata.", spread),
		Values: map[string]float64{
			"spread":       spread,
			"cheapestMean": cheapest.mean,
			"priciestMean": priciest.mean,
		},
		MonthlyImpact: &impact,
	}
}

func variabilityInsight(d *dto.DistributionView) dto.Insight {
	level := "baixa"
	switch {
	case d.CV > 15:
		level = "alta"
	case d.CV > 8:
		level = "moderada"
	}
	return dto.Insight{
		Type:    insightVariability,
		Title:   "Variabilidade de Preços no Mercado",
		Summary: fmt.Sprintf("Coeficiente de variação de %.1f%% indica %s dispersão.", d.CV, level),
		Values: map[string]float64{
			"cv":  d.CV,
			"std": d.Std,
		},
	}
}

func outlierInsight(d *dto.DistributionView) dto.Insight {
	return dto.Insight{
		Type:    insightOutliers,
		Title:   "Presença de Valores Atípicos",
		Summary: fmt.Sprintf("%d outliers detectados (%.1f%% dos dados).", len(d.Outliers), d.OutlierPct),
		Values: map[string]float64{
			"outlierPct":   d.OutlierPct,
			"outlierCount": float64(len(d.Outliers)),
		},
	}
}

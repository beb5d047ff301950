// Package dto holds the aggregate-view payloads served to the dashboard
// frontend. Every field is fully computed; the presentation layer renders
// them without further math.
package dto

import "github.com/gcouto/combustiveis-bh/internal/domain"

// ChapterView wraps a chapter payload together with the cache generation it
// was computed under. Empty is set instead of Data when the working subset
// has no records.
type ChapterView struct {
	Chapter    domain.Chapter `json:"chapter"`
	Generation string         `json:"generation"`
	Empty      bool           `json:"empty"`
	Data       any            `json:"data,omitempty"`
}

type BrandCount struct {
	Brand string `json:"bandeira"`
	Count int    `json:"count"`
}

type OverviewView struct {
	TotalRecords      int            `json:"totalRecords"`
	UniqueStations    int            `json:"uniqueStations"`
	MappedRegions     int            `json:"mappedRegions"`
	RecordsBySemester map[string]int `json:"recordsBySemester"`
	RecordsByProduct  map[string]int `json:"recordsByProduct"`
	RecordsByRegion   map[string]int `json:"recordsByRegion"`
	RecordsByBrand    map[string]int `json:"recordsByBrand"`
	TopBrands         []BrandCount   `json:"topBrands"`
}

type DistributionView struct {
	Count      int       `json:"count"`
	Mean       float64   `json:"mean"`
	Median     float64   `json:"median"`
	Mode       *float64  `json:"mode"`
	Std        float64   `json:"std"`
	Min        float64   `json:"min"`
	Max        float64   `json:"max"`
	Q1         float64   `json:"q1"`
	Q3         float64   `json:"q3"`
	IQR        float64   `json:"iqr"`
	CV         float64   `json:"cv"`
	Outliers   []float64 `json:"outliers"`
	OutlierPct float64   `json:"outlierPct"`
}

type Seasonality struct {
	FirstSemAvg  float64 `json:"firstSemAvg"`
	SecondSemAvg float64 `json:"secondSemAvg"`
	HasSeason    bool    `json:"hasSeason"`
}

type Trend struct {
	Slope          float64 `json:"slope"`
	Intercept      float64 `json:"intercept"`
	TotalVariation float64 `json:"totalVariation"`
	FirstPrice     float64 `json:"firstPrice"`
	LastPrice      float64 `json:"lastPrice"`
}

// ProductSeries carries one per-semester mean line; a nil point means the
// product has no records in that semester.
type ProductSeries struct {
	Product string     `json:"produto"`
	Means   []*float64 `json:"means"`
}

type TemporalView struct {
	Semesters     []string        `json:"semesters"`
	Means         []float64       `json:"means"`
	ProductSeries []ProductSeries `json:"productSeries"`
	Seasonality   Seasonality     `json:"seasonality"`
	Trend         Trend           `json:"trend"`
	Projections   []float64       `json:"projections"`
	Variations    []float64       `json:"variations"`
	AvgVariation  float64         `json:"avgVariation"`
	MonthlyImpact float64         `json:"monthlyImpact"`
}

type RegionalStats struct {
	Region string  `json:"regional"`
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Std    float64 `json:"std"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

type RegionalView struct {
	Regions []RegionalStats `json:"regions"`
}

type BrandStats struct {
	Brand  string  `json:"bandeira"`
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Min    float64 `json:"min"`
}

type BrandView struct {
	Brands         []BrandStats `json:"brands"`
	AverageOfMeans float64      `json:"averageOfMeans"`
	Podium         []BrandStats `json:"podium"`
	TopCheapest    []BrandStats `json:"topCheapest"`
}

type CorrelationView struct {
	PriceTimeCorrelation  float64  `json:"priceTimeCorrelation"`
	EthanolGasolineParity *float64 `json:"etanolGasolinaParity"`
	EthanolFavorable      bool     `json:"etanolFavorable"`
	GasolineAvg           *float64 `json:"gasolinaAvg"`
	EthanolAvg            *float64 `json:"etanolAvg"`
}

type Insight struct {
	Type          string             `json:"type"`
	Title         string             `json:"title"`
	Summary       string             `json:"summary"`
	Values        map[string]float64 `json:"values"`
	MonthlyImpact *float64           `json:"monthlyImpact"`
}

type InsightsSummary struct {
	TotalRecords   int     `json:"totalRecords"`
	Period         string  `json:"period"`
	AvgPrice       float64 `json:"avgPrice"`
	TotalVariation float64 `json:"totalVariation"`
	RegionCount    int     `json:"regionCount"`
	FuelTypes      int     `json:"fuelTypes"`
}

type InsightsView struct {
	Insights []Insight       `json:"insights"`
	Summary  InsightsSummary `json:"summary"`
}

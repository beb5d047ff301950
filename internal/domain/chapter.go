package domain

// Chapter identifies one analytical view of the dashboard.
type Chapter string

const (
	ChapterOverview     Chapter = "overview"
	ChapterDistribution Chapter = "distribution"
	ChapterTemporal     Chapter = "temporal"
	ChapterRegional     Chapter = "regional"
	ChapterBandeiras    Chapter = "bandeiras"
	ChapterCorrelation  Chapter = "correlation"
	ChapterInsights     Chapter = "insights"
)

type ChapterInfo struct {
	ID   Chapter `json:"id"`
	Name string  `json:"name"`
	Icon string  `json:"icon"`
}

// Chapters lists the navigation entries in display order.
var Chapters = []ChapterInfo{
	{ChapterOverview, "Visão Geral", "layout-dashboard"},
	{ChapterDistribution, "Distribuições", "bar-chart-3"},
	{ChapterTemporal, "Evolução Temporal", "trending-up"},
	{ChapterRegional, "Análise Regional", "map"},
	{ChapterBandeiras, "Análise por Bandeira", "tags"},
	{ChapterCorrelation, "Correlações", "git-merge"},
	{ChapterInsights, "Insights", "lightbulb"},
}

func ValidChapter(id Chapter) bool {
	for _, c := range Chapters {
		if c.ID == id {
			return true
		}
	}
	return false
}

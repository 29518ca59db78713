package render

import (
	"sync"

	"citydash.app/internal/core/dashboard"
)

// ViewModel is a headless page that records every mutation made by the pipeline
type ViewModel struct {
	mu           sync.Mutex
	loading      bool
	fields       map[dashboard.FieldID]string
	forecast     []dashboard.ForecastCard
	chart        *dashboard.ChartData
	chartBuilds  int
	chartUpdates int
	news         []dashboard.NewsArticle
	background   dashboard.Theme
}

// FieldValue is one summary field in display order
type FieldValue struct {
	ID   dashboard.FieldID `yaml:"id"`
	Text string            `yaml:"text"`
}

// Snapshot is an immutable copy of the page
type Snapshot struct {
	Loading         bool                     `yaml:"loading"`
	Fields          []FieldValue             `yaml:"fields"`
	Forecast        []dashboard.ForecastCard `yaml:"forecast"`
	Chart           *dashboard.ChartData     `yaml:"chart,omitempty"`
	ChartBuilds     int                      `yaml:"chart_builds"`
	ChartUpdates    int                      `yaml:"chart_updates"`
	News            []dashboard.NewsArticle  `yaml:"news"`
	Background      dashboard.Theme          `yaml:"background"`
	BackgroundImage string                   `yaml:"background_image"`
}

// Field returns the text of id, or "" when it was never set
func (s Snapshot) Field(id dashboard.FieldID) string {
	for _, f := range s.Fields {
		if f.ID == id {
			return f.Text
		}
	}
	return ""
}

func NewViewModel() *ViewModel {
	return &ViewModel{
		fields:     make(map[dashboard.FieldID]string),
		forecast:   []dashboard.ForecastCard{},
		news:       []dashboard.NewsArticle{},
		background: dashboard.ThemeDefault,
	}
}

var _ dashboard.RenderSink = (*ViewModel)(nil)

func (v *ViewModel) SetLoading(visible bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.loading = visible
}

func (v *ViewModel) SetField(id dashboard.FieldID, text string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.fields[id] = text
}

func (v *ViewModel) ReplaceForecast(cards []dashboard.ForecastCard) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.forecast = append([]dashboard.ForecastCard{}, cards...)
}

// RebuildChart discards any existing chart and creates a new one
func (v *ViewModel) RebuildChart(data dashboard.ChartData) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.chart = copyChart(data)
	v.chartBuilds++
}

// UpdateChart swaps the series of the existing chart in place
func (v *ViewModel) UpdateChart(data dashboard.ChartData) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.chart == nil {
		v.chart = copyChart(data)
		v.chartBuilds++
		return
	}
	v.chart.Labels = append(v.chart.Labels[:0], data.Labels...)
	v.chart.Values = append(v.chart.Values[:0], data.Values...)
	v.chartUpdates++
}

func (v *ViewModel) ReplaceNewsList(articles []dashboard.NewsArticle) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.news = append([]dashboard.NewsArticle{}, articles...)
}

func (v *ViewModel) SetBackground(theme dashboard.Theme) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.background = theme
}

// Snapshot copies the current page
func (v *ViewModel) Snapshot() Snapshot {
	v.mu.Lock()
	defer v.mu.Unlock()

	snapshot := Snapshot{
		Loading:         v.loading,
		Fields:          make([]FieldValue, 0, len(dashboard.WeatherFields)),
		Forecast:        append([]dashboard.ForecastCard{}, v.forecast...),
		ChartBuilds:     v.chartBuilds,
		ChartUpdates:    v.chartUpdates,
		News:            append([]dashboard.NewsArticle{}, v.news...),
		Background:      v.background,
		BackgroundImage: v.background.Image(),
	}
	for _, id := range dashboard.WeatherFields {
		if text, ok := v.fields[id]; ok {
			snapshot.Fields = append(snapshot.Fields, FieldValue{ID: id, Text: text})
		}
	}
	if v.chart != nil {
		snapshot.Chart = copyChart(*v.chart)
	}
	return snapshot
}

func copyChart(data dashboard.ChartData) *dashboard.ChartData {
	return &dashboard.ChartData{
		Labels: append([]string{}, data.Labels...),
		Values: append([]float64{}, data.Values...),
	}
}

package dashboard

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"citydash.app/pkg/errors"
)

const (
	// ForecastStride picks one 3-hourly sample per day
	ForecastStride = 8
	// MaxNewsArticles bounds the rendered news list
	MaxNewsArticles = 5

	dateLayout = "1/2/2006"
	timeLayout = "3:04:05 PM"
)

// Theme is the background derived from the current weather description
type Theme string

const (
	ThemeRain    Theme = "rain"
	ThemeClear   Theme = "clear"
	ThemeCloud   Theme = "cloud"
	ThemeDefault Theme = "default"
)

// themePrecedence is matched in order; the first hit wins
var themePrecedence = []Theme{ThemeRain, ThemeClear, ThemeCloud}

// Image returns the background asset for the theme
func (t Theme) Image() string {
	switch t {
	case ThemeRain:
		return "rainy.gif"
	case ThemeClear:
		return "sunny.gif"
	case ThemeCloud:
		return "cloudy.gif"
	default:
		return "default.jpg"
	}
}

// SelectTheme matches description case-sensitively against rain, clear and cloud.
// Anything else falls through to ThemeDefault.
func SelectTheme(description string) Theme {
	for _, theme := range themePrecedence {
		if strings.Contains(description, string(theme)) {
			return theme
		}
	}
	return ThemeDefault
}

// ForecastPoint is one sampled moment of the upstream time series
type ForecastPoint struct {
	Time        time.Time
	Temp        float64
	MinTemp     float64
	MaxTemp     float64
	WindSpeed   float64
	Humidity    float64
	Description string
}

// WeatherReport is built once per fetch and replaced wholesale by the next one
type WeatherReport struct {
	City string
	// Current is nil when the upstream list was empty
	Current  *ForecastPoint
	Sunrise  time.Time
	Sunset   time.Time
	Forecast []ForecastPoint
}

// NewsArticle is one entry of the news list
type NewsArticle struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	URL         string `json:"url" yaml:"url"`
}

type forecastPayload struct {
	City *struct {
		Name    string `json:"name"`
		Sunrise int64  `json:"sunrise"`
		Sunset  int64  `json:"sunset"`
	} `json:"city"`
	List *[]forecastSample `json:"list"`
}

type forecastSample struct {
	Dt   int64 `json:"dt"`
	Main struct {
		Temp     float64 `json:"temp"`
		TempMin  float64 `json:"temp_min"`
		TempMax  float64 `json:"temp_max"`
		Humidity float64 `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}

// toPoint fails when the sample carries no weather condition to describe it
func (s forecastSample) toPoint(index int) (ForecastPoint, error) {
	if len(s.Weather) == 0 {
		return ForecastPoint{}, errors.NewDecodeError(fmt.Sprintf("forecast sample %d has no weather condition", index), nil)
	}
	return ForecastPoint{
		Time:        time.Unix(s.Dt, 0).UTC(),
		Temp:        s.Main.Temp,
		MinTemp:     s.Main.TempMin,
		MaxTemp:     s.Main.TempMax,
		WindSpeed:   s.Wind.Speed,
		Humidity:    s.Main.Humidity,
		Description: s.Weather[0].Description,
	}, nil
}

// ParseWeatherReport turns a forecast payload into a report.
// Samples that are never rendered are not checked.
// The first sample is "today"; the forecast takes every ForecastStride-th sample starting at index 1.
func ParseWeatherReport(payload json.RawMessage) (*WeatherReport, error) {
	var data forecastPayload
	if err := json.Unmarshal(payload, &data); err != nil {
		return nil, errors.NewDecodeError("invalid forecast payload", err)
	}
	if data.City == nil {
		return nil, errors.NewDecodeError("forecast payload has no city", nil)
	}
	if data.List == nil {
		return nil, errors.NewDecodeError("forecast payload has no list", nil)
	}

	samples := *data.List
	report := &WeatherReport{
		City:    data.City.Name,
		Sunrise: time.Unix(data.City.Sunrise, 0).UTC(),
		Sunset:  time.Unix(data.City.Sunset, 0).UTC(),
	}

	if len(samples) > 0 {
		current, err := samples[0].toPoint(0)
		if err != nil {
			return nil, err
		}
		report.Current = &current
	}

	report.Forecast = make([]ForecastPoint, 0, ForecastCount(len(samples)))
	for _, i := range ForecastIndices(len(samples)) {
		point, err := samples[i].toPoint(i)
		if err != nil {
			return nil, err
		}
		report.Forecast = append(report.Forecast, point)
	}

	return report, nil
}

// ForecastCount returns how many of n samples become forecast points: ceil((n-1)/8)
func ForecastCount(n int) int {
	if n <= 1 {
		return 0
	}
	return (n-2)/ForecastStride + 1
}

// ForecastIndices lists the sample indices rendered as forecast points
func ForecastIndices(n int) []int {
	indices := make([]int, 0, ForecastCount(n))
	for i := 1; i < n; i += ForecastStride {
		indices = append(indices, i)
	}
	return indices
}

type newsPayload struct {
	Articles *[]NewsArticle `json:"articles"`
}

// ParseNews returns the articles of a news payload in upstream order
func ParseNews(payload json.RawMessage) ([]NewsArticle, error) {
	var data newsPayload
	if err := json.Unmarshal(payload, &data); err != nil {
		return nil, errors.NewDecodeError("invalid news payload", err)
	}
	if data.Articles == nil {
		return nil, errors.NewDecodeError("news payload has no articles", nil)
	}
	return *data.Articles, nil
}

// TopArticles keeps the first limit articles, order preserved
func TopArticles(articles []NewsArticle, limit int) []NewsArticle {
	if len(articles) > limit {
		articles = articles[:limit]
	}
	top := make([]NewsArticle, len(articles))
	copy(top, articles)
	return top
}

// FormatNumber prints v in its shortest form: 12, 12.5, -0.25
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatDate renders t as a calendar date in loc
func FormatDate(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(dateLayout)
}

// FormatTime renders t as a time of day in loc
func FormatTime(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(timeLayout)
}

package dashboard

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"citydash.app/internal/ports"
	"citydash.app/pkg/errors"
	"citydash.app/pkg/validation"
)

// KeyEnter is the only key that triggers a search
const KeyEnter = "Enter"

// Pipeline turns a city name into rendered weather, forecast, chart, news and background.
// Overlapping cycles are allowed; only the most recently started one may touch the sink.
type Pipeline struct {
	gateway     ports.Gateway
	sink        RenderSink
	logger      ports.Logger
	location    *time.Location
	defaultCity string

	mu    sync.Mutex
	state DashboardState
}

type PipelineDependencies struct {
	Gateway ports.Gateway
	Sink    RenderSink
	Logger  ports.Logger
	// Location is used for dates and times; defaults to time.Local
	Location    *time.Location
	DefaultCity string
}

func NewPipeline(deps PipelineDependencies) (*Pipeline, error) {
	if deps.Gateway == nil {
		return nil, errors.NewValidationError("gateway is required")
	}
	if deps.Sink == nil {
		return nil, errors.NewValidationError("render sink is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}

	location := deps.Location
	if location == nil {
		location = time.Local
	}
	defaultCity := strings.TrimSpace(deps.DefaultCity)
	if defaultCity == "" {
		defaultCity = DefaultCity
	}

	return &Pipeline{
		gateway:     deps.Gateway,
		sink:        deps.Sink,
		logger:      deps.Logger,
		location:    location,
		defaultCity: defaultCity,
	}, nil
}

// Start runs the initial load for the default city
func (p *Pipeline) Start(ctx context.Context) CycleOutcome {
	return p.run(ctx, p.defaultCity)
}

// Search runs a cycle for input. Blank input changes nothing.
func (p *Pipeline) Search(ctx context.Context, input string) CycleOutcome {
	city, ok := validation.TrimAndValidate(input)
	if !ok {
		return CycleOutcome{Skipped: true}
	}
	return p.run(ctx, city)
}

// KeyPress treats Enter as a search and ignores every other key
func (p *Pipeline) KeyPress(ctx context.Context, key, input string) CycleOutcome {
	if key != KeyEnter {
		return CycleOutcome{Skipped: true}
	}
	return p.Search(ctx, input)
}

// Refresh re-runs the cycle for the current city
func (p *Pipeline) Refresh(ctx context.Context) CycleOutcome {
	city := p.State().City
	if city == "" {
		city = p.defaultCity
	}
	return p.run(ctx, city)
}

// State returns a copy of the dashboard state
func (p *Pipeline) State() DashboardState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

func (p *Pipeline) run(ctx context.Context, city string) CycleOutcome {
	outcome := CycleOutcome{CycleID: uuid.NewString(), City: city}

	p.mu.Lock()
	cycle := p.state.begin(city)
	p.sink.SetLoading(true)
	p.mu.Unlock()

	p.logger.Debug("Refresh cycle started",
		ports.F("cycle_id", outcome.CycleID),
		ports.F("city", city))

	report, err := p.fetchWeather(ctx, city)
	if err != nil {
		outcome.WeatherErr = err
		p.logger.Error("Weather stage failed",
			ports.F("cycle_id", outcome.CycleID),
			ports.F("city", city),
			ports.F("error", err.Error()))

		outcome.Stale = !p.whenLatest(cycle, func() {
			p.state.Loading = false
			p.sink.SetLoading(false)
		})
		p.logStale(outcome)
		return outcome
	}

	outcome.WeatherApplied = p.whenLatest(cycle, func() {
		p.renderWeather(report)
		p.state.Loading = false
		p.sink.SetLoading(false)
	})
	if !outcome.WeatherApplied {
		outcome.Stale = true
		p.logStale(outcome)
		return outcome
	}

	articles, err := p.fetchNews(ctx, city)
	if err != nil {
		outcome.NewsErr = err
		p.logger.Error("News stage failed",
			ports.F("cycle_id", outcome.CycleID),
			ports.F("city", city),
			ports.F("error", err.Error()))
		return outcome
	}

	outcome.NewsApplied = p.whenLatest(cycle, func() {
		p.sink.ReplaceNewsList(TopArticles(articles, MaxNewsArticles))
	})
	if !outcome.NewsApplied {
		outcome.Stale = true
		p.logStale(outcome)
		return outcome
	}

	p.logger.Info("Refresh cycle completed",
		ports.F("cycle_id", outcome.CycleID),
		ports.F("city", city),
		ports.F("articles", min(len(articles), MaxNewsArticles)))
	return outcome
}

func (p *Pipeline) fetchWeather(ctx context.Context, city string) (*WeatherReport, error) {
	payload, err := p.gateway.GetWeather(ctx, city)
	if err != nil {
		return nil, err
	}
	return ParseWeatherReport(payload)
}

func (p *Pipeline) fetchNews(ctx context.Context, city string) ([]NewsArticle, error) {
	payload, err := p.gateway.GetNews(ctx, city)
	if err != nil {
		return nil, err
	}
	return ParseNews(payload)
}

// whenLatest runs apply under the lock if cycle is still the latest one
func (p *Pipeline) whenLatest(cycle uint64, apply func()) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.state.isLatest(cycle) {
		return false
	}
	apply()
	return true
}

func (p *Pipeline) logStale(outcome CycleOutcome) {
	p.logger.Warn("Discarding result of superseded cycle",
		ports.F("cycle_id", outcome.CycleID),
		ports.F("city", outcome.City))
}

// renderWeather must be called with mu held
func (p *Pipeline) renderWeather(report *WeatherReport) {
	p.sink.SetField(FieldCityName, report.City)

	if current := report.Current; current != nil {
		p.sink.SetField(FieldDate, FormatDate(current.Time, p.location))
		p.sink.SetField(FieldTemperature, "Temperature: "+FormatNumber(current.Temp)+"°C")
		p.sink.SetField(FieldDescription, current.Description)
		p.sink.SetField(FieldMinTemp, "Min Temp: "+FormatNumber(current.MinTemp)+"°C")
		p.sink.SetField(FieldMaxTemp, "Max Temp: "+FormatNumber(current.MaxTemp)+"°C")
		p.sink.SetField(FieldWindSpeed, "Wind Speed: "+FormatNumber(current.WindSpeed)+" m/s")
		p.sink.SetField(FieldHumidity, "Humidity: "+FormatNumber(current.Humidity)+"%")
	} else {
		for _, id := range []FieldID{FieldDate, FieldTemperature, FieldDescription, FieldMinTemp, FieldMaxTemp, FieldWindSpeed, FieldHumidity} {
			p.sink.SetField(id, "")
		}
	}

	p.sink.SetField(FieldSunrise, "Sunrise: "+FormatTime(report.Sunrise, p.location))
	p.sink.SetField(FieldSunset, "Sunset: "+FormatTime(report.Sunset, p.location))

	cards := make([]ForecastCard, 0, len(report.Forecast))
	chart := ChartData{
		Labels: make([]string, 0, len(report.Forecast)),
		Values: make([]float64, 0, len(report.Forecast)),
	}
	for _, point := range report.Forecast {
		date := FormatDate(point.Time, p.location)
		cards = append(cards, ForecastCard{
			Date:        date,
			Temp:        FormatNumber(point.Temp) + "°C",
			Description: point.Description,
			MinTemp:     "Min Temp: " + FormatNumber(point.MinTemp) + "°C",
			MaxTemp:     "Max Temp: " + FormatNumber(point.MaxTemp) + "°C",
			WindSpeed:   "Wind Speed: " + FormatNumber(point.WindSpeed) + " m/s",
			Humidity:    "Humidity: " + FormatNumber(point.Humidity) + "%",
		})
		chart.Labels = append(chart.Labels, date)
		chart.Values = append(chart.Values, point.Temp)
	}
	p.sink.ReplaceForecast(cards)

	if p.state.ChartBuilt {
		p.sink.UpdateChart(chart)
	} else {
		p.sink.RebuildChart(chart)
		p.state.ChartBuilt = true
	}

	theme := ThemeDefault
	if report.Current != nil {
		theme = SelectTheme(report.Current.Description)
	}
	p.sink.SetBackground(theme)
}

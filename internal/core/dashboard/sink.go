package dashboard

// FieldID names one text field of the weather summary
type FieldID string

const (
	FieldCityName    FieldID = "city-name"
	FieldDate        FieldID = "date"
	FieldTemperature FieldID = "temperature"
	FieldDescription FieldID = "description"
	FieldMinTemp     FieldID = "min-temp"
	FieldMaxTemp     FieldID = "max-temp"
	FieldWindSpeed   FieldID = "wind-speed"
	FieldHumidity    FieldID = "humidity"
	FieldSunrise     FieldID = "sunrise"
	FieldSunset      FieldID = "sunset"
)

// WeatherFields lists the summary fields in display order
var WeatherFields = []FieldID{
	FieldCityName,
	FieldDate,
	FieldTemperature,
	FieldDescription,
	FieldMinTemp,
	FieldMaxTemp,
	FieldWindSpeed,
	FieldHumidity,
	FieldSunrise,
	FieldSunset,
}

// ForecastCard is the rendered text of one forecast point
type ForecastCard struct {
	Date        string `yaml:"date"`
	Temp        string `yaml:"temp"`
	Description string `yaml:"description"`
	MinTemp     string `yaml:"min_temp"`
	MaxTemp     string `yaml:"max_temp"`
	WindSpeed   string `yaml:"wind_speed"`
	Humidity    string `yaml:"humidity"`
}

// ChartData is the temperature series; Labels and Values have equal length
type ChartData struct {
	Labels []string  `yaml:"labels"`
	Values []float64 `yaml:"values"`
}

// RenderSink receives every display mutation the pipeline makes.
// The pipeline never calls a sink concurrently.
type RenderSink interface {
	SetLoading(visible bool)
	SetField(id FieldID, text string)
	ReplaceForecast(cards []ForecastCard)
	RebuildChart(data ChartData)
	UpdateChart(data ChartData)
	ReplaceNewsList(articles []NewsArticle)
	SetBackground(theme Theme)
}

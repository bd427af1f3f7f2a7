package weather

import "time"

// GeocodingResult is one candidate location returned by the city search.
// IDs are assigned by the geocoding provider and are not stable across providers.
type GeocodingResult struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Country     string  `json:"country"`
	CountryCode string  `json:"country_code,omitempty"`
	Admin1      string  `json:"admin1,omitempty"`
	Admin2      string  `json:"admin2,omitempty"`
	Population  int     `json:"population,omitempty"`
	Elevation   float64 `json:"elevation,omitempty"`
}

type geocodingResponse struct {
	Results []GeocodingResult `json:"results"`
}

// CurrentConditions is the raw current-weather block of a forecast response.
type CurrentConditions struct {
	Temperature2m float64 `json:"temperature_2m"`
	WeatherCode   int     `json:"weather_code"`
	Time          string  `json:"time"`
}

// DailyForecast is the raw daily block of a forecast response. The four
// arrays are index-aligned; their length is the forecast horizon.
type DailyForecast struct {
	Time             []string  `json:"time"`
	Temperature2mMax []float64 `json:"temperature_2m_max"`
	Temperature2mMin []float64 `json:"temperature_2m_min"`
	WeatherCode      []int     `json:"weather_code"`
}

// ForecastResponse is the raw upstream forecast payload. Current and Daily
// are pointers because the provider may omit either block; the normalizer
// is responsible for rejecting incomplete responses.
type ForecastResponse struct {
	Latitude  float64            `json:"latitude"`
	Longitude float64            `json:"longitude"`
	Timezone  string             `json:"timezone,omitempty"`
	Current   *CurrentConditions `json:"current"`
	Daily     *DailyForecast     `json:"daily"`
}

type Location struct {
	Name      string  `json:"name"`
	Country   string  `json:"country"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type CurrentWeather struct {
	Temperature        int       `json:"temperature"`
	WeatherCode        int       `json:"weatherCode"`
	WeatherDescription string    `json:"weatherDescription"`
	Time               time.Time `json:"time"`
}

type Forecast struct {
	Dates           []string `json:"dates"`
	MaxTemperatures []int    `json:"maxTemperatures"`
	MinTemperatures []int    `json:"minTemperatures"`
	WeatherCodes    []int    `json:"weatherCodes"`
}

// ProcessedWeatherData is the canonical widget payload. It is created once
// per successful fetch cycle and superseded, never mutated, by the next one.
type ProcessedWeatherData struct {
	Location  Location       `json:"location"`
	Current   CurrentWeather `json:"current"`
	Forecast  Forecast       `json:"forecast"`
	FetchedAt int64          `json:"fetchedAt"`
}

// WidgetData is the standard envelope for widget payloads. When Error is
// set, Data holds the type's zero value and must not be treated as valid.
type WidgetData[T any] struct {
	Data      T      `json:"data"`
	Timestamp int64  `json:"timestamp"`
	Error     string `json:"error,omitempty"`
}

// AISummaryData is a structured summary of widget data for downstream AI
// consumption. Metrics and Raw are present only when the input was complete.
type AISummaryData struct {
	Type    string         `json:"type"`
	Summary string         `json:"summary"`
	Metrics map[string]any `json:"metrics,omitempty"`
	Raw     any            `json:"raw,omitempty"`
}

// WidgetConfig describes a widget type for the dashboard's catalog.
type WidgetConfig struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon,omitempty"`
	Category    string `json:"category,omitempty"`
}

// Catalog lists the widget types this service knows how to back.
func Catalog() []WidgetConfig {
	return []WidgetConfig{
		{
			ID:          "weather",
			Name:        "Weather",
			Description: "Current conditions and a 7-day forecast for a searched city.",
			Icon:        "☀️",
			Category:    "weather",
		},
	}
}

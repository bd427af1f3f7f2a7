package weather

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func sampleWeatherData() ProcessedWeatherData {
	return ProcessedWeatherData{
		Location: Location{Name: "London", Country: "United Kingdom", Latitude: 51.5074, Longitude: -0.1278},
		Current: CurrentWeather{
			Temperature:        15,
			WeatherCode:        0,
			WeatherDescription: "Clear sky",
			Time:               time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		},
		Forecast: Forecast{
			Dates:           []string{"2025-06-01", "2025-06-02", "2025-06-03", "2025-06-04", "2025-06-05", "2025-06-06", "2025-06-07"},
			MaxTemperatures: []int{19, 19, 20, 18, 17, 18, 20},
			MinTemperatures: []int{10, 11, 12, 10, 9, 11, 11},
			WeatherCodes:    []int{0, 1, 2, 3, 61, 0, 1},
		},
		FetchedAt: 1748779200000,
	}
}

func TestSummarizeNoData(t *testing.T) {
	got := Summarize(ProcessedWeatherData{})

	if got.Type != "weather" {
		t.Errorf("type = %q, want weather", got.Type)
	}
	if got.Summary != "No weather data available" {
		t.Errorf("summary = %q, want no-data placeholder", got.Summary)
	}
	if got.Metrics != nil {
		t.Errorf("metrics should be absent for missing data, got %v", got.Metrics)
	}
	if got.Raw != nil {
		t.Errorf("raw should be absent for missing data, got %v", got.Raw)
	}
}

func TestSummarizeHappyPath(t *testing.T) {
	got := Summarize(sampleWeatherData())

	if got.Type != "weather" {
		t.Errorf("type = %q, want weather", got.Type)
	}
	if !strings.Contains(got.Summary, "Weather in London, United Kingdom:") {
		t.Errorf("summary missing location line: %q", got.Summary)
	}
	if !strings.Contains(got.Summary, "Current: 15°C, Clear sky") {
		t.Errorf("summary missing current line: %q", got.Summary)
	}
	if !strings.Contains(got.Summary, "7-day outlook: 9°C to 20°C (warming trend)") {
		t.Errorf("summary missing outlook line: %q", got.Summary)
	}

	if got.Metrics["forecastMaxTemp"] != 20 {
		t.Errorf("forecastMaxTemp = %v, want 20", got.Metrics["forecastMaxTemp"])
	}
	if got.Metrics["forecastMinTemp"] != 9 {
		t.Errorf("forecastMinTemp = %v, want 9", got.Metrics["forecastMinTemp"])
	}
	if got.Metrics["forecastDays"] != 7 {
		t.Errorf("forecastDays = %v, want 7", got.Metrics["forecastDays"])
	}
	if got.Metrics["trend"] != "warming" {
		t.Errorf("trend = %v, want warming", got.Metrics["trend"])
	}
	if got.Metrics["location"] != "London, United Kingdom" {
		t.Errorf("location metric = %v", got.Metrics["location"])
	}

	raw, ok := got.Raw.(summaryRaw)
	if !ok {
		t.Fatalf("raw has unexpected type %T", got.Raw)
	}
	if raw.Location != sampleWeatherData().Location {
		t.Errorf("raw location not echoed verbatim: %+v", raw.Location)
	}
}

func TestSummarizeTrendTieResolvesToCooling(t *testing.T) {
	data := sampleWeatherData()
	// Average of max temperatures exactly equals the current temperature.
	data.Current.Temperature = 18
	data.Forecast.MaxTemperatures = []int{18, 18, 18, 18, 18, 18, 18}

	got := Summarize(data)
	if got.Metrics["trend"] != "cooling" {
		t.Errorf("trend = %v, want cooling on exact tie", got.Metrics["trend"])
	}
}

func TestSummarizeCoolingWhenForecastBelowCurrent(t *testing.T) {
	data := sampleWeatherData()
	data.Current.Temperature = 30

	got := Summarize(data)
	if got.Metrics["trend"] != "cooling" {
		t.Errorf("trend = %v, want cooling", got.Metrics["trend"])
	}
}

func TestSummarizeIdempotent(t *testing.T) {
	data := sampleWeatherData()

	first, err := json.Marshal(Summarize(data))
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	second, err := json.Marshal(Summarize(data))
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(first) != string(second) {
		t.Errorf("summaries differ for identical input:\n%s\n%s", first, second)
	}
}

func TestSummarizeEmptyForecastShortCircuits(t *testing.T) {
	data := sampleWeatherData()
	data.Forecast = Forecast{}

	got := Summarize(data)
	if got.Summary != "No weather data available" {
		t.Errorf("summary = %q, want no-data placeholder", got.Summary)
	}
	if got.Metrics != nil {
		t.Errorf("metrics should be absent, got %v", got.Metrics)
	}
}

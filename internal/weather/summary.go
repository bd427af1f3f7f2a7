package weather

import "fmt"

// summaryRaw echoes the input sub-structs for consumers that want the
// unprocessed structure alongside the narrative.
type summaryRaw struct {
	Location Location       `json:"location"`
	Current  CurrentWeather `json:"current"`
	Forecast Forecast       `json:"forecast"`
}

// Summarize maps a weather payload to a structured natural-language
// summary. On missing or partial input it short-circuits to a fixed
// "no data" summary with no metrics or raw block; it never fails.
// The output is deterministic for identical input.
func Summarize(data ProcessedWeatherData) AISummaryData {
	if data.Location == (Location{}) || data.Current == (CurrentWeather{}) || len(data.Forecast.MaxTemperatures) == 0 {
		return AISummaryData{
			Type:    "weather",
			Summary: "No weather data available",
		}
	}

	info := Describe(data.Current.WeatherCode)

	var sum int
	for _, t := range data.Forecast.MaxTemperatures {
		sum += t
	}
	avg := float64(sum) / float64(len(data.Forecast.MaxTemperatures))

	// Ties resolve to cooling: the trend is warming only when the forecast
	// average is strictly above the current temperature.
	trend := "cooling"
	if avg > float64(data.Current.Temperature) {
		trend = "warming"
	}

	maxTemp := data.Forecast.MaxTemperatures[0]
	for _, t := range data.Forecast.MaxTemperatures[1:] {
		if t > maxTemp {
			maxTemp = t
		}
	}
	minTemp := maxTemp
	if len(data.Forecast.MinTemperatures) > 0 {
		minTemp = data.Forecast.MinTemperatures[0]
		for _, t := range data.Forecast.MinTemperatures[1:] {
			if t < minTemp {
				minTemp = t
			}
		}
	}

	summary := fmt.Sprintf(
		"Weather in %s, %s:\nCurrent: %d°C, %s\n7-day outlook: %d°C to %d°C (%s trend)",
		data.Location.Name, data.Location.Country,
		data.Current.Temperature, info.Description,
		minTemp, maxTemp, trend,
	)

	return AISummaryData{
		Type:    "weather",
		Summary: summary,
		Metrics: map[string]any{
			"location":           fmt.Sprintf("%s, %s", data.Location.Name, data.Location.Country),
			"currentTemperature": data.Current.Temperature,
			"currentCondition":   info.Description,
			"currentIcon":        info.Icon,
			"forecastMaxTemp":    maxTemp,
			"forecastMinTemp":    minTemp,
			"trend":              trend,
			"forecastDays":       len(data.Forecast.Dates),
		},
		Raw: summaryRaw{
			Location: data.Location,
			Current:  data.Current,
			Forecast: data.Forecast,
		},
	}
}

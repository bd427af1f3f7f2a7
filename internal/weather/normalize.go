package weather

import (
	"math"
	"time"
)

// Open-Meteo timestamps come back without a zone offset when timezone=auto.
const upstreamTimeLayout = "2006-01-02T15:04"

// Normalize converts a raw forecast response plus the chosen location into
// the canonical widget payload. Both the current and daily blocks must be
// present; temperatures are rounded to the nearest integer Celsius and
// FetchedAt is stamped with normalization wall-clock time.
func Normalize(location GeocodingResult, raw *ForecastResponse) (ProcessedWeatherData, error) {
	if raw == nil || raw.Current == nil || raw.Daily == nil {
		return ProcessedWeatherData{}, &InvalidDataError{Message: msgInvalidData}
	}

	info := Describe(raw.Current.WeatherCode)

	return ProcessedWeatherData{
		Location: Location{
			Name:      location.Name,
			Country:   location.Country,
			Latitude:  location.Latitude,
			Longitude: location.Longitude,
		},
		Current: CurrentWeather{
			Temperature:        roundTemp(raw.Current.Temperature2m),
			WeatherCode:        raw.Current.WeatherCode,
			WeatherDescription: info.Description,
			Time:               parseUpstreamTime(raw.Current.Time),
		},
		Forecast: Forecast{
			Dates:           raw.Daily.Time,
			MaxTemperatures: roundTemps(raw.Daily.Temperature2mMax),
			MinTemperatures: roundTemps(raw.Daily.Temperature2mMin),
			WeatherCodes:    raw.Daily.WeatherCode,
		},
		FetchedAt: time.Now().UnixMilli(),
	}, nil
}

// roundTemp rounds half-up, matching the reference behavior for negative
// values (-2.5 rounds to -2, not -3).
func roundTemp(v float64) int {
	return int(math.Floor(v + 0.5))
}

func roundTemps(vs []float64) []int {
	out := make([]int, len(vs))
	for i, v := range vs {
		out[i] = roundTemp(v)
	}
	return out
}

func parseUpstreamTime(s string) time.Time {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	t, err := time.Parse(upstreamTimeLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

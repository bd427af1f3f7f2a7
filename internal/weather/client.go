package weather

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	defaultGeocodingBase = "https://geocoding-api.open-meteo.com"
	defaultWeatherBase   = "https://api.open-meteo.com"

	defaultSearchResults = 5
	forecastDays         = 7
)

// Client talks to the Open-Meteo geocoding and forecast APIs. A single
// attempt per call, no retries, no caching.
type Client struct {
	geocodingBase string
	weatherBase   string
	httpClient    *http.Client
}

func NewClient(geocodingBase, weatherBase string) *Client {
	if geocodingBase == "" {
		geocodingBase = defaultGeocodingBase
	}
	if weatherBase == "" {
		weatherBase = defaultWeatherBase
	}
	return &Client{
		geocodingBase: strings.TrimRight(geocodingBase, "/"),
		weatherBase:   strings.TrimRight(weatherBase, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Search looks up candidate locations for a city name. Trimmed queries
// shorter than 2 characters return an empty slice without a network call,
// which keeps per-keystroke lookups from hammering the API.
func (c *Client) Search(ctx context.Context, query string, maxResults int) ([]GeocodingResult, error) {
	q := strings.TrimSpace(query)
	if utf8.RuneCountInString(q) < 2 {
		return []GeocodingResult{}, nil
	}
	if maxResults <= 0 {
		maxResults = defaultSearchResults
	}

	values := url.Values{}
	values.Set("name", q)
	values.Set("count", strconv.Itoa(maxResults))
	values.Set("language", "en")
	values.Set("format", "json")

	u := c.geocodingBase + "/v1/search?" + values.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, &UpstreamError{Message: msgSearchFailed, Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.Warn("city search request failed", "error", err)
		return nil, &UpstreamError{Message: msgSearchFailed, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		slog.Warn("geocoding API returned error status", "status", resp.StatusCode)
		return nil, &UpstreamError{Message: msgSearchFailed, Status: resp.StatusCode}
	}

	var payload geocodingResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		slog.Warn("geocoding response decode failed", "error", err)
		return nil, &UpstreamError{Message: msgSearchFailed, Err: err}
	}

	// A response without a results field means no matches, not a failure.
	if payload.Results == nil {
		return []GeocodingResult{}, nil
	}
	return payload.Results, nil
}

// GetForecast fetches current conditions plus the 7-day daily forecast for
// a coordinate pair. Array lengths are not validated here; that is the
// normalizer's job.
func (c *Client) GetForecast(ctx context.Context, latitude, longitude float64) (*ForecastResponse, error) {
	values := url.Values{}
	values.Set("latitude", strconv.FormatFloat(latitude, 'f', -1, 64))
	values.Set("longitude", strconv.FormatFloat(longitude, 'f', -1, 64))
	values.Set("current", "temperature_2m,weather_code")
	values.Set("daily", "temperature_2m_max,temperature_2m_min,weather_code")
	values.Set("timezone", "auto")
	values.Set("forecast_days", strconv.Itoa(forecastDays))

	u := c.weatherBase + "/v1/forecast?" + values.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, &UpstreamError{Message: msgFetchFailed, Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.Warn("forecast request failed", "error", err)
		return nil, &UpstreamError{Message: msgFetchFailed, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		slog.Warn("weather API returned error status", "status", resp.StatusCode)
		return nil, &UpstreamError{Message: msgFetchFailed, Status: resp.StatusCode}
	}

	var payload ForecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		slog.Warn("forecast response decode failed", "error", err)
		return nil, &UpstreamError{Message: msgFetchFailed, Err: err}
	}
	return &payload, nil
}

package weather

import (
	"context"
	"log/slog"
	"time"
)

// Pipeline composes the forecast fetch and normalization into the
// outward-facing widget operation.
type Pipeline struct {
	client *Client
}

func NewPipeline(client *Client) *Pipeline {
	return &Pipeline{client: client}
}

// FetchForLocation runs one full fetch cycle for a chosen location and
// never propagates a failure: any error from the fetch or the normalizer
// is captured into the envelope's Error field with zero-value data, so
// consumers only ever check Error. Calling it twice performs two
// independent fetch cycles.
func (p *Pipeline) FetchForLocation(ctx context.Context, location GeocodingResult) WidgetData[ProcessedWeatherData] {
	raw, err := p.client.GetForecast(ctx, location.Latitude, location.Longitude)
	if err != nil {
		slog.Warn("weather fetch failed", "city", location.Name, "error", err)
		return WidgetData[ProcessedWeatherData]{
			Timestamp: time.Now().UnixMilli(),
			Error:     err.Error(),
		}
	}

	data, err := Normalize(location, raw)
	if err != nil {
		slog.Warn("weather normalization failed", "city", location.Name, "error", err)
		return WidgetData[ProcessedWeatherData]{
			Timestamp: time.Now().UnixMilli(),
			Error:     err.Error(),
		}
	}

	return WidgetData[ProcessedWeatherData]{
		Data:      data,
		Timestamp: time.Now().UnixMilli(),
	}
}

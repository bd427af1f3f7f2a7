package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "3001" {
		t.Errorf("port = %q, want 3001", cfg.Port)
	}
	if cfg.FrontendURL != "http://localhost:3000" {
		t.Errorf("frontend url = %q", cfg.FrontendURL)
	}
	if cfg.StoreBackend != "memory" {
		t.Errorf("store backend = %q, want memory", cfg.StoreBackend)
	}
	if cfg.WeatherCacheTTL != 15*time.Minute {
		t.Errorf("cache ttl = %v, want 15m", cfg.WeatherCacheTTL)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("STORE_BACKEND", "postgres")
	t.Setenv("WEATHER_CACHE_TTL", "5m")
	t.Setenv("GEOCODING_API_BASE", "http://localhost:1234")

	cfg := Load()

	if cfg.Port != "9000" {
		t.Errorf("port = %q, want 9000", cfg.Port)
	}
	if cfg.StoreBackend != "postgres" {
		t.Errorf("store backend = %q, want postgres", cfg.StoreBackend)
	}
	if cfg.WeatherCacheTTL != 5*time.Minute {
		t.Errorf("cache ttl = %v, want 5m", cfg.WeatherCacheTTL)
	}
	if cfg.GeocodingAPIBase != "http://localhost:1234" {
		t.Errorf("geocoding base = %q", cfg.GeocodingAPIBase)
	}
}

func TestLoadInvalidCacheTTLFallsBack(t *testing.T) {
	t.Setenv("WEATHER_CACHE_TTL", "not-a-duration")

	cfg := Load()
	if cfg.WeatherCacheTTL != 15*time.Minute {
		t.Errorf("cache ttl = %v, want fallback 15m", cfg.WeatherCacheTTL)
	}
}

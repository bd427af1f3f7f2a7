package config

import (
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type PostgresConfig struct {
	User     string
	Password string
	DBName   string
	Host     string
	Port     string
	SSLMode  string
}

type Config struct {
	Port             string
	FrontendURL      string
	JWTPublicKeyPath string
	JWTIssuer        string
	JWTAudience      string
	GeocodingAPIBase string
	WeatherAPIBase   string
	WeatherCacheTTL  time.Duration
	StoreBackend     string
	Postgres         PostgresConfig
}

func getenv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func Load() Config {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "error", err)
	}

	ttl := 15 * time.Minute
	if v := os.Getenv("WEATHER_CACHE_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			ttl = d
		}
	}

	return Config{
		Port:             getenv("PORT", "3001"),
		FrontendURL:      getenv("FRONTEND_URL", "http://localhost:3000"),
		JWTPublicKeyPath: getenv("JWT_PUBLIC_KEY_PATH", ""),
		JWTIssuer:        getenv("JWT_ISSUER", ""),
		JWTAudience:      getenv("JWT_AUDIENCE", ""),
		GeocodingAPIBase: getenv("GEOCODING_API_BASE", ""),
		WeatherAPIBase:   getenv("WEATHER_API_BASE", ""),
		WeatherCacheTTL:  ttl,
		StoreBackend:     getenv("STORE_BACKEND", "memory"),
		Postgres: PostgresConfig{
			User:     getenv("POSTGRES_USER", "postgres"),
			Password: getenv("POSTGRES_PASSWORD", "postgres"),
			DBName:   getenv("POSTGRES_DB", "dashboardized"),
			Host:     getenv("POSTGRES_HOST", "localhost"),
			Port:     getenv("POSTGRES_PORT", "5432"),
			SSLMode:  getenv("POSTGRES_SSLMODE", "disable"),
		},
	}
}

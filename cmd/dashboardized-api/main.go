package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/snakeland/dashboardized/internal/cache"
	"github.com/snakeland/dashboardized/internal/config"
	"github.com/snakeland/dashboardized/internal/httpapi"
	"github.com/snakeland/dashboardized/internal/middleware"
	"github.com/snakeland/dashboardized/internal/store"
	"github.com/snakeland/dashboardized/internal/weather"
)

func main() {
	cfg := config.Load()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{}))
	slog.SetDefault(logger)

	if cfg.JWTPublicKeyPath == "" {
		slog.Error("JWT_PUBLIC_KEY_PATH not set")
		os.Exit(1)
	}
	pub, err := middleware.LoadRSAPublicKey(cfg.JWTPublicKeyPath)
	if err != nil {
		slog.Error("failed to load jwt public key", "error", err)
		os.Exit(1)
	}

	var prefs store.Store
	switch cfg.StoreBackend {
	case "postgres":
		db, err := store.OpenPostgres(
			cfg.Postgres.User,
			cfg.Postgres.Password,
			cfg.Postgres.DBName,
			cfg.Postgres.Host,
			cfg.Postgres.Port,
			cfg.Postgres.SSLMode,
		)
		if err != nil {
			slog.Error("db connect failed", "error", err)
			os.Exit(1)
		}
		repo, err := store.NewRepo(db)
		if err != nil {
			slog.Error("db init failed", "error", err)
			os.Exit(1)
		}
		prefs = repo
	default:
		slog.Info("using in-memory preferences store")
		prefs = store.NewMemory()
	}

	client := weather.NewClient(cfg.GeocodingAPIBase, cfg.WeatherAPIBase)
	pipeline := weather.NewPipeline(client)
	weatherCache := cache.New(cfg.WeatherCacheTTL)

	srv := httpapi.NewServer(client, pipeline, weatherCache, prefs)

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.FrontendURL},
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", httpapi.HandleHealth)

	r.Route("/api", func(api chi.Router) {
		api.Post("/auth/logout", srv.HandleLogout)

		api.Group(func(protected chi.Router) {
			protected.Use(middleware.JWTAuthMiddlewareRS256(pub, cfg.JWTIssuer, cfg.JWTAudience))
			srv.RegisterRoutes(protected)
		})
	})

	httpSrv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		slog.Info("dashboardized-api started", "port", cfg.Port, "store", cfg.StoreBackend)
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	slog.Info("shutting down")
	if err := httpSrv.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
}

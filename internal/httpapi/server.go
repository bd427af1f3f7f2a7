package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/snakeland/dashboardized/internal/cache"
	"github.com/snakeland/dashboardized/internal/middleware"
	"github.com/snakeland/dashboardized/internal/store"
	"github.com/snakeland/dashboardized/internal/weather"
)

// Server exposes the dashboard API: identity echo, per-user dashboard
// preferences, and the proxied weather widget pipeline.
type Server struct {
	client   *weather.Client
	pipeline *weather.Pipeline
	cache    *cache.Cache
	prefs    store.Store
	validate *validator.Validate
}

func NewServer(client *weather.Client, pipeline *weather.Pipeline, weatherCache *cache.Cache, prefs store.Store) *Server {
	return &Server{
		client:   client,
		pipeline: pipeline,
		cache:    weatherCache,
		prefs:    prefs,
		validate: validator.New(),
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type apiError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, apiError{Error: http.StatusText(status), Message: msg})
}

func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

// HandleHealth is unauthenticated and mounted outside /api.
func HandleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "service": "dashboardized-api"})
}

// HandleLogout requires no token: with an external identity provider,
// logout is primarily client-side token disposal.
func (s *Server) HandleLogout(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Logged out successfully"})
}

// RegisterRoutes mounts the token-protected endpoints under an
// already-authenticated router.
func (s *Server) RegisterRoutes(r chi.Router) {
	r.Get("/auth/me", s.handleMe)

	r.Route("/user", func(r chi.Router) {
		r.Get("/profile", s.handleProfile)
		r.Get("/dashboard", s.handleGetDashboard)
		r.Put("/dashboard", s.handlePutDashboard)
	})

	r.Route("/widgets", func(r chi.Router) {
		r.Get("/catalog", s.handleCatalog)
		r.Get("/weather/search", s.handleWeatherSearch)
		r.Get("/weather/summary", s.handleWeatherSummary)
		r.Get("/weather", s.handleWeather)
	})
}

type userResponse struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture,omitempty"`
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r)
	if claims == nil || strings.TrimSpace(claims.Subject) == "" {
		middleware.WriteUnauthorized(w, "User information not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]userResponse{"user": {
		ID:      claims.Subject,
		Email:   claims.Email,
		Name:    claims.Name,
		Picture: claims.Picture,
	}})
}

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)
	if userID == "" {
		middleware.WriteUnauthorized(w, "User ID not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"userId":  userID,
		"message": "Profile data is sourced from the identity provider",
	})
}

func (s *Server) handleGetDashboard(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)
	if userID == "" {
		middleware.WriteUnauthorized(w, "User ID not found")
		return
	}

	prefs, err := s.prefs.Get(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load dashboard preferences")
		return
	}
	writeJSON(w, http.StatusOK, prefs)
}

type putDashboardRequest struct {
	Widgets []string        `json:"widgets" validate:"omitempty,min=1,dive,required"`
	Layout  json.RawMessage `json:"layout"`
	Theme   string          `json:"theme" validate:"omitempty,oneof=light dark auto"`
}

func (s *Server) handlePutDashboard(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)
	if userID == "" {
		middleware.WriteUnauthorized(w, "User ID not found")
		return
	}

	var req putDashboardRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if err := s.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid dashboard preferences")
		return
	}

	now := time.Now().UTC()
	prefs := store.DashboardPreferences{
		UserID:    userID,
		Widgets:   req.Widgets,
		Layout:    req.Layout,
		Theme:     req.Theme,
		UpdatedAt: &now,
	}
	// Absent fields fall back to defaults, matching GET's defaulting.
	if len(prefs.Widgets) == 0 {
		prefs.Widgets = []string{"weather"}
	}
	if prefs.Theme == "" {
		prefs.Theme = "auto"
	}

	if err := s.prefs.Set(r.Context(), prefs); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save dashboard preferences")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message":     "Dashboard preferences updated",
		"preferences": prefs,
	})
}

func (s *Server) handleCatalog(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, weather.Catalog())
}

func (s *Server) handleWeatherSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	limit := 5
	if v := r.URL.Query().Get("limit"); v != "" {
		if l, err := strconv.Atoi(v); err == nil && l > 0 && l <= 10 {
			limit = l
		}
	}

	results, err := s.client.Search(r.Context(), query, limit)
	if err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, results)
}

func parseLocation(r *http.Request) (weather.GeocodingResult, bool) {
	lat, latErr := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
	lon, lonErr := strconv.ParseFloat(r.URL.Query().Get("lon"), 64)
	if latErr != nil || lonErr != nil {
		return weather.GeocodingResult{}, false
	}
	return weather.GeocodingResult{
		Name:      r.URL.Query().Get("name"),
		Country:   r.URL.Query().Get("country"),
		Latitude:  lat,
		Longitude: lon,
	}, true
}

func (s *Server) fetchWeather(r *http.Request, loc weather.GeocodingResult) weather.WidgetData[weather.ProcessedWeatherData] {
	cacheKey := fmt.Sprintf("%.2f,%.2f", loc.Latitude, loc.Longitude)
	if cached, ok := s.cache.Get(cacheKey); ok {
		return cached
	}

	envelope := s.pipeline.FetchForLocation(r.Context(), loc)
	if envelope.Error == "" {
		s.cache.Set(cacheKey, envelope)
	}
	return envelope
}

// handleWeather always answers 200: the pipeline's failure-absorption
// contract carries through to HTTP, and consumers check the envelope's
// error field.
func (s *Server) handleWeather(w http.ResponseWriter, r *http.Request) {
	loc, ok := parseLocation(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "lat and lon parameters are required")
		return
	}
	writeJSON(w, http.StatusOK, s.fetchWeather(r, loc))
}

func (s *Server) handleWeatherSummary(w http.ResponseWriter, r *http.Request) {
	loc, ok := parseLocation(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "lat and lon parameters are required")
		return
	}

	// A failed fetch leaves sentinel data, which Summarize degrades to its
	// fixed "no data" summary rather than failing.
	envelope := s.fetchWeather(r, loc)
	writeJSON(w, http.StatusOK, weather.Summarize(envelope.Data))
}

package store

import (
	"context"
	"encoding/json"
	"time"
)

// DashboardPreferences is one user's dashboard configuration, keyed by the
// identity provider's subject. Last-write-wins; there is no versioning.
type DashboardPreferences struct {
	UserID    string          `json:"userId"`
	Widgets   []string        `json:"widgets"`
	Layout    json.RawMessage `json:"layout"`
	Theme     string          `json:"theme"`
	UpdatedAt *time.Time      `json:"updatedAt,omitempty"`
}

// Default is what Get resolves to when a user has never saved preferences.
// Absence is not an error.
func Default(userID string) DashboardPreferences {
	return DashboardPreferences{
		UserID:  userID,
		Widgets: []string{"weather"},
		Layout:  nil,
		Theme:   "auto",
	}
}

// Store holds dashboard preferences per user. Implementations need only
// last-write-wins consistency for concurrent writers on the same key.
type Store interface {
	Get(ctx context.Context, userID string) (DashboardPreferences, error)
	Set(ctx context.Context, prefs DashboardPreferences) error
}

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type preferenceRow struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserID    string         `gorm:"type:varchar(128);uniqueIndex"`
	Widgets   datatypes.JSON `gorm:"type:jsonb"`
	Layout    datatypes.JSON `gorm:"type:jsonb"`
	Theme     string         `gorm:"type:varchar(16)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (preferenceRow) TableName() string { return "dashboard_preferences" }

// Repo is the durable Store backed by a relational database.
type Repo struct {
	db *gorm.DB
}

func OpenPostgres(user, pass, dbName, host, port, sslmode string) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, pass, dbName, sslmode,
	)
	return gorm.Open(postgres.New(postgres.Config{DSN: dsn, PreferSimpleProtocol: true}), &gorm.Config{})
}

func NewRepo(db *gorm.DB) (*Repo, error) {
	// GORM AutoMigrate has been observed to fail in containerized postgres
	// environments during schema probing; the schema here is small and
	// stable, so create it explicitly. Other dialects (sqlite in tests)
	// keep AutoMigrate.
	if db.Dialector.Name() == "postgres" {
		if err := ensureSchema(db); err != nil {
			return nil, err
		}
	} else if err := db.AutoMigrate(&preferenceRow{}); err != nil {
		return nil, err
	}
	return &Repo{db: db}, nil
}

func ensureSchema(db *gorm.DB) error {
	if err := db.Exec(`
CREATE TABLE IF NOT EXISTS dashboard_preferences (
  id uuid PRIMARY KEY,
  user_id varchar(128) NOT NULL UNIQUE,
  widgets jsonb NULL,
  layout jsonb NULL,
  theme varchar(16) NOT NULL,
  created_at timestamptz NOT NULL DEFAULT now(),
  updated_at timestamptz NOT NULL DEFAULT now()
);
`).Error; err != nil {
		return err
	}
	return db.Exec(`CREATE INDEX IF NOT EXISTS idx_dashboard_preferences_user_id ON dashboard_preferences(user_id);`).Error
}

func (r *Repo) Get(ctx context.Context, userID string) (DashboardPreferences, error) {
	var row preferenceRow
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Default(userID), nil
	}
	if err != nil {
		return DashboardPreferences{}, err
	}
	return rowToPreferences(row)
}

func (r *Repo) Set(ctx context.Context, prefs DashboardPreferences) error {
	widgets, err := json.Marshal(prefs.Widgets)
	if err != nil {
		return err
	}

	updates := map[string]any{
		"widgets": datatypes.JSON(widgets),
		"layout":  datatypes.JSON(prefs.Layout),
		"theme":   prefs.Theme,
	}
	if prefs.UpdatedAt != nil {
		updates["updated_at"] = *prefs.UpdatedAt
	}

	res := r.db.WithContext(ctx).
		Model(&preferenceRow{}).
		Where("user_id = ?", prefs.UserID).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		return nil
	}

	row := preferenceRow{
		ID:      uuid.New(),
		UserID:  prefs.UserID,
		Widgets: datatypes.JSON(widgets),
		Layout:  datatypes.JSON(prefs.Layout),
		Theme:   prefs.Theme,
	}
	if prefs.UpdatedAt != nil {
		row.UpdatedAt = *prefs.UpdatedAt
	}
	return r.db.WithContext(ctx).Create(&row).Error
}

func rowToPreferences(row preferenceRow) (DashboardPreferences, error) {
	var widgets []string
	if len(row.Widgets) > 0 {
		if err := json.Unmarshal(row.Widgets, &widgets); err != nil {
			return DashboardPreferences{}, err
		}
	}

	var layout json.RawMessage
	if len(row.Layout) > 0 {
		layout = json.RawMessage(row.Layout)
	}

	updatedAt := row.UpdatedAt
	return DashboardPreferences{
		UserID:    row.UserID,
		Widgets:   widgets,
		Layout:    layout,
		Theme:     row.Theme,
		UpdatedAt: &updatedAt,
	}, nil
}

package store

import (
	"context"
	"sync"
)

// Memory is the in-process Store used when no database is configured.
type Memory struct {
	mu    sync.RWMutex
	items map[string]DashboardPreferences
}

func NewMemory() *Memory {
	return &Memory{items: make(map[string]DashboardPreferences)}
}

func (m *Memory) Get(_ context.Context, userID string) (DashboardPreferences, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	prefs, ok := m.items[userID]
	if !ok {
		return Default(userID), nil
	}
	return prefs, nil
}

func (m *Memory) Set(_ context.Context, prefs DashboardPreferences) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[prefs.UserID] = prefs
	return nil
}

package cache

import (
	"sync"
	"time"

	"github.com/snakeland/dashboardized/internal/weather"
)

type entry struct {
	data      weather.WidgetData[weather.ProcessedWeatherData]
	expiresAt time.Time
}

// Cache holds successfully fetched weather envelopes per coordinate key so
// repeated widget refreshes don't hammer the upstream API. The pipeline
// itself stays cache-free; this sits at the HTTP layer.
type Cache struct {
	mu    sync.RWMutex
	items map[string]entry
	ttl   time.Duration
}

func New(ttl time.Duration) *Cache {
	return &Cache{items: make(map[string]entry), ttl: ttl}
}

func (c *Cache) Get(key string) (weather.WidgetData[weather.ProcessedWeatherData], bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.items[key]
	if !ok || time.Now().After(e.expiresAt) {
		return weather.WidgetData[weather.ProcessedWeatherData]{}, false
	}
	return e.data, true
}

func (c *Cache) Set(key string, data weather.WidgetData[weather.ProcessedWeatherData]) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = entry{data: data, expiresAt: time.Now().Add(c.ttl)}
}

package filter_cache

import (
	"sync"
	"time"

	"github.com/Shahadat99x/fullstack-game-search/models"
)

const TTL = 5 * time.Minute

// ── Filter metadata cache ────────────────────────────────────────────────────
// Platform/region counts and the price range change only when the catalog
// does, so the metadata endpoint serves from here between refreshes.

type entry struct {
	data      *models.FilterMetadata
	fetchedAt time.Time
}

var (
	mu    sync.RWMutex
	cache *entry
)

func Get() (*models.FilterMetadata, bool) {
	mu.RLock()
	defer mu.RUnlock()
	if cache != nil && time.Since(cache.fetchedAt) < TTL {
		return cache.data, true
	}
	return nil, false
}

func Set(data *models.FilterMetadata) {
	mu.Lock()
	defer mu.Unlock()
	cache = &entry{data: data, fetchedAt: time.Now()}
}

// Invalidate drops the cached metadata (call after reseeding the catalog).
func Invalidate() {
	mu.Lock()
	cache = nil
	mu.Unlock()
}

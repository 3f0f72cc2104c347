package filter_cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shahadat99x/fullstack-game-search/models"
)

func TestCacheRoundTrip(t *testing.T) {
	Invalidate()

	_, ok := Get()
	assert.False(t, ok)

	metadata := &models.FilterMetadata{
		Platforms:  []models.FilterOption{{Label: "Steam", Value: "Steam", Count: 12}},
		PriceRange: &models.PriceRangeData{Min: 4.99, Max: 79.99},
	}
	Set(metadata)

	cached, ok := Get()
	require.True(t, ok)
	assert.Equal(t, metadata, cached)
}

func TestInvalidateDropsEntry(t *testing.T) {
	Set(&models.FilterMetadata{})
	Invalidate()

	_, ok := Get()
	assert.False(t, ok)
}

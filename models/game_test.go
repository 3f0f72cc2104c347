package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapRowToGamePropagatesNulls(t *testing.T) {
	row := GameRow{
		ID:       "id-1",
		Title:    "Terraria",
		Platform: "GOG",
		Region:   "GLOBAL",
		PriceEur: 9.99,
		Likes:    300,
	}

	game := MapRowToGame(row)

	assert.Nil(t, game.OldPriceEur)
	assert.Nil(t, game.DiscountPercent)
	assert.Nil(t, game.CashbackEur)

	payload, err := json.Marshal(game)
	require.NoError(t, err)
	assert.Contains(t, string(payload), `"oldPriceEur":null`)
	assert.Contains(t, string(payload), `"priceEur":9.99`)
}

func TestMapRowToGameRenamesFields(t *testing.T) {
	oldPrice := 29.99
	discount := 67
	row := GameRow{
		ID:              "id-2",
		Title:           "The Witcher 3: Wild Hunt",
		Platform:        "GOG",
		Region:          "GLOBAL",
		ImageURL:        "https://img.example.com/w3.jpg",
		PriceEur:        9.99,
		OldPriceEur:     &oldPrice,
		DiscountPercent: &discount,
		Likes:           14220,
	}

	payload, err := json.Marshal(MapRowToGame(row))
	require.NoError(t, err)

	assert.Contains(t, string(payload), `"imageUrl":"https://img.example.com/w3.jpg"`)
	assert.Contains(t, string(payload), `"discountPercent":67`)
	assert.Contains(t, string(payload), `"oldPriceEur":29.99`)
}

func TestParseSortOption(t *testing.T) {
	assert.Equal(t, SortPriceAsc, ParseSortOption("price_asc"))
	assert.Equal(t, SortPriceDesc, ParseSortOption("price_desc"))
	assert.Equal(t, SortDiscount, ParseSortOption("discount"))
	assert.Equal(t, SortPopularity, ParseSortOption("popularity"))
	assert.Equal(t, SortPopularity, ParseSortOption("newest"))
	assert.Equal(t, SortPopularity, ParseSortOption(""))
}

package store

import (
	"context"

	"github.com/Shahadat99x/fullstack-game-search/catalog"
	"github.com/Shahadat99x/fullstack-game-search/models"
)

// SearchGames invokes the store's similarity-ranked search_games function
// with the normalized term plus all structured filters. The function applies
// trigram matching, blends relevance with the requested sort, caps the row
// set, and reports the pre-cap total through a window-count column.
func (c *Client) SearchGames(ctx context.Context, query catalog.Query) ([]models.GameRow, int, error) {
	const fuzzyQuery = `
		SELECT
			id, title, platform, region, country, product_type,
			operating_system, genre, image_url, price_eur, old_price_eur,
			discount_percent, cashback_eur, likes, total_count
		FROM search_games($1, $2, $3, $4, $5, $6, $7)
	`

	var platforms []string
	if len(query.Platforms) > 0 {
		platforms = query.Platforms
	}
	var region *string
	if query.Region != "" {
		region = &query.Region
	}

	rows, err := c.pool.Query(ctx, fuzzyQuery,
		query.Search,
		query.PriceMin,
		query.PriceMax,
		region,
		platforms,
		string(query.Sort),
		query.Limit,
	)
	if err != nil {
		return nil, 0, classifyFuzzyError(err)
	}
	defer rows.Close()

	games := make([]models.GameRow, 0, query.Limit)
	var totalCount int64

	for rows.Next() {
		var row models.GameRow
		if err := rows.Scan(
			&row.ID,
			&row.Title,
			&row.Platform,
			&row.Region,
			&row.Country,
			&row.ProductType,
			&row.OperatingSystem,
			&row.Genre,
			&row.ImageURL,
			&row.PriceEur,
			&row.OldPriceEur,
			&row.DiscountPercent,
			&row.CashbackEur,
			&row.Likes,
			&totalCount,
		); err != nil {
			return nil, 0, classifyFuzzyError(err)
		}
		games = append(games, row)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, classifyFuzzyError(err)
	}

	return games, int(totalCount), nil
}

package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/Shahadat99x/fullstack-game-search/catalog"
	"github.com/Shahadat99x/fullstack-game-search/models"
)

// gameColumns are the fields every catalog query selects, snake_case as
// stored.
const gameColumns = `
	g.id::text AS id,
	g.title,
	g.platform,
	g.region,
	g.country,
	g.product_type,
	g.operating_system,
	g.genre,
	g.image_url,
	g.price_eur,
	g.old_price_eur,
	g.discount_percent,
	g.cashback_eur,
	g.likes`

// ListGames runs the plain filtered query: case-insensitive substring match
// on title plus the structured predicates, ordered per the sort mode and
// capped at the query limit. The returned count is the total number of
// matches before capping.
func (c *Client) ListGames(ctx context.Context, query catalog.Query) ([]models.GameRow, int, error) {
	whereClause, args := buildWhereClause(query)
	orderClause := buildOrderClause(query.Sort)

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM games g WHERE %s`, whereClause)

	var totalCount int64
	if err := c.gorm.WithContext(ctx).Raw(countQuery, args...).Scan(&totalCount).Error; err != nil {
		return nil, 0, classifyQueryError("count games", err)
	}

	dataQuery := fmt.Sprintf(`
		SELECT %s
		FROM games g
		WHERE %s
		ORDER BY %s
		LIMIT ?
	`, gameColumns, whereClause, orderClause)

	dataArgs := append(args, query.Limit)

	rows := make([]models.GameRow, 0)
	if err := c.gorm.WithContext(ctx).Raw(dataQuery, dataArgs...).Scan(&rows).Error; err != nil {
		return nil, 0, classifyQueryError("list games", err)
	}

	return rows, int(totalCount), nil
}

// GetGame fetches a single catalog item by id. Returns (nil, nil) when the
// id matches nothing.
func (c *Client) GetGame(ctx context.Context, id string) (*models.Game, error) {
	query := fmt.Sprintf(`SELECT %s FROM games g WHERE g.id = ?`, gameColumns)

	rows := make([]models.GameRow, 0, 1)
	if err := c.gorm.WithContext(ctx).Raw(query, id).Scan(&rows).Error; err != nil {
		return nil, classifyQueryError("get game", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	game := models.MapRowToGame(rows[0])
	return &game, nil
}

func buildWhereClause(query catalog.Query) (string, []interface{}) {
	conditions := []string{}
	args := []interface{}{}

	if query.Search != "" {
		conditions = append(conditions, "g.title ILIKE ?")
		args = append(args, "%"+query.Search+"%")
	}
	if query.PriceMin != nil {
		conditions = append(conditions, "g.price_eur >= ?")
		args = append(args, *query.PriceMin)
	}
	if query.PriceMax != nil {
		conditions = append(conditions, "g.price_eur <= ?")
		args = append(args, *query.PriceMax)
	}
	if query.Region != "" {
		conditions = append(conditions, "g.region = ?")
		args = append(args, query.Region)
	}
	if len(query.Platforms) > 0 {
		placeholders := make([]string, len(query.Platforms))
		for i, platform := range query.Platforms {
			placeholders[i] = "?"
			args = append(args, platform)
		}
		conditions = append(conditions, fmt.Sprintf("g.platform IN (%s)", strings.Join(placeholders, ",")))
	}

	if len(conditions) == 0 {
		return "TRUE", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildOrderClause maps the sort mode onto a deterministic ORDER BY. Title is
// the tie-break so identical requests return identical orderings.
func buildOrderClause(sort models.SortOption) string {
	switch sort {
	case models.SortPriceAsc:
		return "g.price_eur ASC, g.title ASC"
	case models.SortPriceDesc:
		return "g.price_eur DESC, g.title ASC"
	case models.SortDiscount:
		return "g.discount_percent DESC NULLS LAST, g.title ASC"
	default:
		return "g.likes DESC, g.title ASC"
	}
}

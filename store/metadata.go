package store

import (
	"context"
	"sync"

	"github.com/Shahadat99x/fullstack-game-search/models"
)

// FilterMetadata computes the storefront filter sidebar data: option counts
// per platform and region plus the catalog price range. The three queries
// run concurrently.
func (c *Client) FilterMetadata(ctx context.Context) (*models.FilterMetadata, error) {
	var wg sync.WaitGroup
	var mu sync.Mutex

	metadata := &models.FilterMetadata{}
	var errs []error

	wg.Add(1)
	go func() {
		defer wg.Done()
		platforms, err := c.countByColumn(ctx, "platform")
		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			errs = append(errs, err)
		} else {
			metadata.Platforms = platforms
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		regions, err := c.countByColumn(ctx, "region")
		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			errs = append(errs, err)
		} else {
			metadata.Regions = regions
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		priceRange, err := c.priceRange(ctx)
		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			errs = append(errs, err)
		} else {
			metadata.PriceRange = priceRange
		}
	}()

	wg.Wait()

	if len(errs) > 0 {
		return nil, errs[0]
	}
	return metadata, nil
}

// countByColumn groups the catalog by one categorical column. The column
// name is fixed by the callers above, never caller input.
func (c *Client) countByColumn(ctx context.Context, column string) ([]models.FilterOption, error) {
	query := `
		SELECT ` + column + ` AS value, ` + column + ` AS label, COUNT(*)::int AS count
		FROM games
		GROUP BY ` + column + `
		ORDER BY count DESC, value ASC
	`

	options := make([]models.FilterOption, 0)
	if err := c.gorm.WithContext(ctx).Raw(query).Scan(&options).Error; err != nil {
		return nil, classifyQueryError("filter metadata", err)
	}
	return options, nil
}

func (c *Client) priceRange(ctx context.Context) (*models.PriceRangeData, error) {
	query := `
		SELECT COALESCE(MIN(price_eur), 0) AS min, COALESCE(MAX(price_eur), 0) AS max
		FROM games
	`

	var data models.PriceRangeData
	if err := c.gorm.WithContext(ctx).Raw(query).Scan(&data).Error; err != nil {
		return nil, classifyQueryError("price range", err)
	}
	return &data, nil
}

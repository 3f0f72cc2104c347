package store

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Shahadat99x/fullstack-game-search/catalog"
	"github.com/Shahadat99x/fullstack-game-search/models"
)

// ==========================
// Test Helper Functions
// ==========================

func newMockClient(t *testing.T) (*Client, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 db,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return NewClient(gdb, nil), mock
}

var gameColumnNames = []string{
	"id", "title", "platform", "region", "country", "product_type",
	"operating_system", "genre", "image_url", "price_eur", "old_price_eur",
	"discount_percent", "cashback_eur", "likes",
}

func mockGameRow(rows *sqlmock.Rows, id, title, platform, region string, price float64, likes int) *sqlmock.Rows {
	return rows.AddRow(id, title, platform, region, "Germany", "Game",
		"Windows", "Action", "https://img.example.com/"+id+".jpg",
		price, nil, nil, nil, likes)
}

func floatPtr(v float64) *float64 { return &v }

// ==========================
// ListGames
// ==========================

func TestListGamesAppliesFiltersAndSort(t *testing.T) {
	client, mock := newMockClient(t)

	query := catalog.Query{
		Search:    "fifa",
		PriceMin:  floatPtr(10),
		PriceMax:  floatPtr(30),
		Region:    "EUROPE",
		Platforms: []string{"Steam", "EA App"},
		Sort:      models.SortPriceAsc,
		Limit:     2,
	}

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM games g WHERE g\.title ILIKE .* AND g\.price_eur >= .* AND g\.price_eur <= .* AND g\.region = .* AND g\.platform IN`).
		WithArgs("%fifa%", 10.0, 30.0, "EUROPE", "Steam", "EA App").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))

	dataRows := sqlmock.NewRows(gameColumnNames)
	mockGameRow(dataRows, "id-1", "FIFA 22", "Steam", "EUROPE", 12.99, 300)
	mockGameRow(dataRows, "id-2", "FIFA 23", "EA App", "EUROPE", 19.99, 900)

	mock.ExpectQuery(`(?s)SELECT.*FROM games g.*WHERE g\.title ILIKE.*ORDER BY g\.price_eur ASC, g\.title ASC.*LIMIT`).
		WithArgs("%fifa%", 10.0, 30.0, "EUROPE", "Steam", "EA App", 2).
		WillReturnRows(dataRows)

	rows, total, err := client.ListGames(context.Background(), query)
	require.NoError(t, err)

	assert.Equal(t, 5, total)
	require.Len(t, rows, 2)
	assert.Equal(t, "FIFA 22", rows[0].Title)
	assert.Equal(t, 19.99, rows[1].PriceEur)
	assert.Nil(t, rows[0].DiscountPercent)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListGamesWithoutFiltersMatchesEverything(t *testing.T) {
	client, mock := newMockClient(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM games g WHERE TRUE`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	dataRows := sqlmock.NewRows(gameColumnNames)
	mockGameRow(dataRows, "id-1", "Hades", "Steam", "GLOBAL", 24.99, 700)

	mock.ExpectQuery(`(?s)SELECT.*FROM games g.*WHERE TRUE.*ORDER BY g\.likes DESC, g\.title ASC.*LIMIT`).
		WithArgs(50).
		WillReturnRows(dataRows)

	rows, total, err := client.ListGames(context.Background(), catalog.Query{
		Sort:  models.SortPopularity,
		Limit: 50,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, total)
	require.Len(t, rows, 1)
	assert.Equal(t, "Hades", rows[0].Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListGamesClassifiesUndefinedTable(t *testing.T) {
	client, mock := newMockClient(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM games g`).
		WillReturnError(&pgconn.PgError{Code: "42P01", Message: `relation "games" does not exist`})

	_, _, err := client.ListGames(context.Background(), catalog.Query{Limit: 50})

	var configErr *catalog.ConfigurationError
	require.ErrorAs(t, err, &configErr)
	assert.Contains(t, configErr.Hint, "cmd/seed")
}

func TestListGamesWrapsGenericFailure(t *testing.T) {
	client, mock := newMockClient(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM games g`).
		WillReturnError(errors.New("connection refused"))

	_, _, err := client.ListGames(context.Background(), catalog.Query{Limit: 50})

	var dataErr *catalog.DataAccessError
	require.ErrorAs(t, err, &dataErr)
}

// ==========================
// GetGame
// ==========================

func TestGetGameFound(t *testing.T) {
	client, mock := newMockClient(t)

	dataRows := sqlmock.NewRows(gameColumnNames)
	mockGameRow(dataRows, "id-9", "Celeste", "Steam", "EUROPE", 18.99, 600)

	mock.ExpectQuery(`(?s)SELECT.*FROM games g WHERE g\.id =`).
		WithArgs("id-9").
		WillReturnRows(dataRows)

	game, err := client.GetGame(context.Background(), "id-9")
	require.NoError(t, err)
	require.NotNil(t, game)
	assert.Equal(t, "Celeste", game.Title)
	assert.Equal(t, 18.99, game.PriceEur)
}

func TestGetGameNotFound(t *testing.T) {
	client, mock := newMockClient(t)

	mock.ExpectQuery(`(?s)SELECT.*FROM games g WHERE g\.id =`).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(gameColumnNames))

	game, err := client.GetGame(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, game)
}

// ==========================
// Clause builders & error classification
// ==========================

func TestBuildOrderClause(t *testing.T) {
	tests := []struct {
		sort models.SortOption
		want string
	}{
		{models.SortPriceAsc, "g.price_eur ASC, g.title ASC"},
		{models.SortPriceDesc, "g.price_eur DESC, g.title ASC"},
		{models.SortDiscount, "g.discount_percent DESC NULLS LAST, g.title ASC"},
		{models.SortPopularity, "g.likes DESC, g.title ASC"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, buildOrderClause(tt.sort))
	}
}

func TestBuildWhereClauseEmptyQuery(t *testing.T) {
	clause, args := buildWhereClause(catalog.Query{})
	assert.Equal(t, "TRUE", clause)
	assert.Empty(t, args)
}

func TestBuildWhereClauseAllFilters(t *testing.T) {
	clause, args := buildWhereClause(catalog.Query{
		Search:    "hades",
		PriceMin:  floatPtr(5),
		PriceMax:  floatPtr(60),
		Region:    "GLOBAL",
		Platforms: []string{"Steam", "GOG"},
	})

	assert.Equal(t,
		"g.title ILIKE ? AND g.price_eur >= ? AND g.price_eur <= ? AND g.region = ? AND g.platform IN (?,?)",
		clause)
	assert.Equal(t, []interface{}{"%hades%", 5.0, 60.0, "GLOBAL", "Steam", "GOG"}, args)
}

func TestClassifyFuzzyError(t *testing.T) {
	undefinedFunction := &pgconn.PgError{Code: "42883", Message: "function search_games does not exist"}
	var capErr *catalog.CapabilityUnavailableError
	require.ErrorAs(t, classifyFuzzyError(undefinedFunction), &capErr)
	assert.Equal(t, "search_games", capErr.Capability)

	undefinedTable := &pgconn.PgError{Code: "42P01", Message: "relation games does not exist"}
	var configErr *catalog.ConfigurationError
	assert.ErrorAs(t, classifyFuzzyError(undefinedTable), &configErr)

	var dataErr *catalog.DataAccessError
	assert.ErrorAs(t, classifyFuzzyError(errors.New("timeout")), &dataErr)
}

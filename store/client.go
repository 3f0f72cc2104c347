// Package store is the Postgres client for the games catalog. It pairs a
// GORM handle for plain filtered queries with a pgx pool for the
// similarity-ranked search_games function, and maps SQLSTATEs onto the
// catalog error taxonomy.
package store

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"gorm.io/gorm"

	"github.com/Shahadat99x/fullstack-game-search/catalog"
)

const (
	gamesTable    = "games"
	fuzzyFunction = "search_games"

	// Postgres SQLSTATEs the client distinguishes.
	sqlstateUndefinedTable    = "42P01"
	sqlstateUndefinedFunction = "42883"
)

// Client is the backing-store handle. Construct one at process start with
// NewClient and release it with Close; resolve calls share it freely.
type Client struct {
	gorm *gorm.DB
	pool *pgxpool.Pool
}

var _ catalog.Store = (*Client)(nil)

func NewClient(db *gorm.DB, pool *pgxpool.Pool) *Client {
	return &Client{gorm: db, pool: pool}
}

// Close releases both connection handles.
func (c *Client) Close() {
	if c.pool != nil {
		c.pool.Close()
	}
	if c.gorm != nil {
		if sqlDB, err := c.gorm.DB(); err == nil {
			sqlDB.Close()
		}
	}
}

// classifyQueryError maps store failures from the plain query path onto the
// catalog taxonomy. An undefined games relation means setup never ran.
func classifyQueryError(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == sqlstateUndefinedTable {
		return &catalog.ConfigurationError{
			Missing: "table " + gamesTable,
			Hint:    "run cmd/seed to create and populate the games table",
			Err:     err,
		}
	}
	return &catalog.DataAccessError{Op: op, Err: err}
}

// classifyFuzzyError maps fuzzy-path failures. A missing search_games
// function is the capability-unavailable case the resolver recovers from.
func classifyFuzzyError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case sqlstateUndefinedFunction:
			return &catalog.CapabilityUnavailableError{Capability: fuzzyFunction, Err: err}
		case sqlstateUndefinedTable:
			return &catalog.ConfigurationError{
				Missing: "table " + gamesTable,
				Hint:    "run cmd/seed to create and populate the games table",
				Err:     err,
			}
		}
	}
	return &catalog.DataAccessError{Op: "fuzzy search", Err: err}
}

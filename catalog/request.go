package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Shahadat99x/fullstack-game-search/models"
)

const (
	// MaxSearchLength bounds the free-text search term.
	MaxSearchLength = 80
	// MaxLimit is the hard cap on returned rows; larger limits are clamped.
	MaxLimit = 100
	// DefaultLimit applies when the caller sends no limit.
	DefaultLimit = 50

	// minFuzzyLength is the shortest search term worth a fuzzy attempt.
	minFuzzyLength = 2
)

// Request captures raw caller input for a single resolve call, exactly as it
// arrives at the HTTP boundary. It has no lifecycle beyond that call.
type Request struct {
	Search    string
	PriceMin  string
	PriceMax  string
	Region    string
	Platforms []string
	Sort      string
	Limit     string
}

// Query is the validated, normalized form of a Request, ready for the store.
type Query struct {
	Search    string
	PriceMin  *float64
	PriceMax  *float64
	Region    string
	Platforms []string
	Sort      models.SortOption
	Limit     int
}

// Result pairs the total match count with the capped, ordered item list.
// Count is the total number of matches before capping, so "Results found: N"
// stays honest when fewer than N items are displayed.
type Result struct {
	Count int
	Items []models.Game
}

// buildQuery validates the raw request and produces the normalized query.
// All validation happens here, before any store access.
func buildQuery(req Request) (Query, error) {
	if len(req.Search) > MaxSearchLength {
		return Query{}, &ValidationError{
			Reason:  ReasonInvalidSearchLength,
			Message: fmt.Sprintf("search term exceeds maximum length of %d characters", MaxSearchLength),
		}
	}

	priceMin, err := parsePriceBound(req.PriceMin, "priceMin")
	if err != nil {
		return Query{}, err
	}
	priceMax, err := parsePriceBound(req.PriceMax, "priceMax")
	if err != nil {
		return Query{}, err
	}

	limit, err := parseLimit(req.Limit)
	if err != nil {
		return Query{}, err
	}

	platforms := make([]string, 0, len(req.Platforms))
	for _, p := range req.Platforms {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			platforms = append(platforms, trimmed)
		}
	}

	return Query{
		Search:    normalizeSearch(req.Search),
		PriceMin:  priceMin,
		PriceMax:  priceMax,
		Region:    strings.TrimSpace(req.Region),
		Platforms: platforms,
		Sort:      models.ParseSortOption(req.Sort),
		Limit:     limit,
	}, nil
}

// normalizeSearch trims the term, collapses internal whitespace runs, and
// substitutes the canonical phrase on an exact alias hit.
func normalizeSearch(search string) string {
	normalized := strings.Join(strings.Fields(search), " ")
	if canonical, ok := CanonicalAlias(normalized); ok {
		return canonical
	}
	return normalized
}

func parsePriceBound(raw, name string) (*float64, error) {
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return nil, &ValidationError{
			Reason:  ReasonInvalidPrice,
			Message: fmt.Sprintf("%s must be a number, got %q", name, raw),
		}
	}
	return &value, nil
}

func parseLimit(raw string) (int, error) {
	if raw == "" {
		return DefaultLimit, nil
	}
	limit, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || limit < 1 {
		return 0, &ValidationError{
			Reason:  ReasonInvalidLimit,
			Message: fmt.Sprintf("limit must be a positive integer, got %q", raw),
		}
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return limit, nil
}

package catalog

import (
	"context"
	"log"

	"github.com/Shahadat99x/fullstack-game-search/models"
)

// Store is the narrow query interface the resolver needs from the backing
// store. SearchGames is the similarity-ranked fuzzy capability; ListGames is
// the plain filtered query. Both return the total match count before capping
// alongside the capped row set.
type Store interface {
	SearchGames(ctx context.Context, query Query) ([]models.GameRow, int, error)
	ListGames(ctx context.Context, query Query) ([]models.GameRow, int, error)
}

// Resolver turns a storefront request into a bounded result set. Each call is
// stateless and safe to run concurrently; the injected store handles its own
// connection lifecycle.
type Resolver struct {
	store Store
}

func NewResolver(store Store) *Resolver {
	return &Resolver{store: store}
}

// Resolve validates and normalizes the request, then runs the two-step
// strategy: a fuzzy attempt when the search term warrants one, falling back
// to the plain substring path when the fuzzy capability fails. Fallback on
// fuzzy failure is a resilience choice; the failure is logged, never
// surfaced.
func (r *Resolver) Resolve(ctx context.Context, req Request) (*Result, error) {
	query, err := buildQuery(req)
	if err != nil {
		return nil, err
	}

	if len(query.Search) >= minFuzzyLength {
		result, err := r.resolveFuzzy(ctx, query)
		if err == nil {
			return result, nil
		}
		log.Printf("fuzzy search failed, falling back to substring match: %v", err)
	}

	return r.resolveFallback(ctx, query)
}

// resolveFuzzy delegates to the store's similarity-ranked search capability.
func (r *Resolver) resolveFuzzy(ctx context.Context, query Query) (*Result, error) {
	rows, total, err := r.store.SearchGames(ctx, query)
	if err != nil {
		return nil, err
	}
	return &Result{Count: total, Items: models.MapRowsToGames(rows)}, nil
}

// resolveFallback runs the plain filtered query: substring title match plus
// the structured predicates and sort order.
func (r *Resolver) resolveFallback(ctx context.Context, query Query) (*Result, error) {
	rows, total, err := r.store.ListGames(ctx, query)
	if err != nil {
		return nil, err
	}
	return &Result{Count: total, Items: models.MapRowsToGames(rows)}, nil
}

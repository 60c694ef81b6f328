// Package query answers finalized candidate searches on behalf of the
// conversation surface.
package query

import (
	"context"
	"fmt"

	"github.com/Traverser25/GetCoditer/internal/database"
	"github.com/Traverser25/GetCoditer/internal/models"
)

// MaxResults caps what one answer hands to the presentation layer. It is a
// hard cut in store order, not a ranking.
const MaxResults = 10

type Engine struct {
	store database.Store
}

func NewEngine(store database.Store) *Engine {
	return &Engine{store: store}
}

// Answer runs one search against the store and bounds the result set. An
// empty result is a normal outcome the caller renders as "no matches",
// never an error.
func (e *Engine) Answer(ctx context.Context, q models.Query) ([]models.Candidate, error) {
	results, err := e.store.Filter(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to filter candidates: %w", err)
	}
	if len(results) > MaxResults {
		results = results[:MaxResults]
	}
	return results, nil
}

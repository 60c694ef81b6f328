package database

import (
	"context"
	"strings"

	"github.com/Traverser25/GetCoditer/internal/models"
)

// Store is everything the ingestion driver and the query engine need from
// the candidate collection: append and full-scan filtering. Records are
// immutable once inserted — no update, no delete.
//
// Filter semantics, shared by every implementation: experience_years >=
// MinYOE, every requested tech must appear as a substring of the stored
// comma-joined stack (AND), the stored location must contain at least one
// requested location as a substring (OR). Both matches are case-sensitive.
// Results come back in insertion order.
type Store interface {
	Insert(ctx context.Context, c *models.Candidate) (int64, error)
	Filter(ctx context.Context, q models.Query) ([]models.Candidate, error)
	SearchByAuthor(ctx context.Context, name string) ([]models.Candidate, error)
	GetAll(ctx context.Context) ([]models.Candidate, error)
}

// JoinStack serializes a tech stack for storage. Vocabulary tokens are
// guaranteed comma-free, so plain comma joining needs no escaping.
func JoinStack(stack []string) string {
	return strings.Join(stack, ",")
}

// SplitStack is the inverse of JoinStack. An empty stored value means an
// empty stack, not one empty token.
func SplitStack(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

package query

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Traverser25/GetCoditer/internal/database"
	"github.com/Traverser25/GetCoditer/internal/models"
)

func TestAnswerCapsAtTenInStoreOrder(t *testing.T) {
	store := database.NewMemStore()
	ctx := context.Background()

	for i := 0; i < 15; i++ {
		c := models.Candidate{
			Author:    fmt.Sprintf("dev_%02d", i),
			Blurb:     "python dev",
			TechStack: []string{"Python"},
		}
		_, err := store.Insert(ctx, &c)
		require.NoError(t, err)
	}

	engine := NewEngine(store)
	results, err := engine.Answer(ctx, models.Query{Techs: []string{"Python"}})
	require.NoError(t, err)

	// hard cap, first ten by insertion order — not a ranking
	require.Len(t, results, MaxResults)
	assert.Equal(t, "dev_00", results[0].Author)
	assert.Equal(t, "dev_09", results[9].Author)
}

func TestAnswerEmptyResultIsNormal(t *testing.T) {
	engine := NewEngine(database.NewMemStore())

	results, err := engine.Answer(context.Background(), models.Query{Techs: []string{"Rust"}})
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestAnswerAppliesMinYOEThreshold(t *testing.T) {
	store := database.NewMemStore()
	ctx := context.Background()

	junior := models.Candidate{Author: "junior", ExperienceYears: 1, TechStack: []string{"Python"}}
	senior := models.Candidate{Author: "senior", ExperienceYears: 3, TechStack: []string{"Python"}}
	_, err := store.Insert(ctx, &junior)
	require.NoError(t, err)
	_, err = store.Insert(ctx, &senior)
	require.NoError(t, err)

	engine := NewEngine(store)
	results, err := engine.Answer(ctx, models.Query{Techs: []string{"Python"}, MinYOE: 2})
	require.NoError(t, err)

	require.Len(t, results, 1)
	assert.Equal(t, "senior", results[0].Author)
}

package service_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/hatchr/hatchr/internal/database/service"
	"github.com/hatchr/hatchr/internal/database/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectScoreFormula(t *testing.T) {
	t.Parallel()

	// One post with 3 upvotes, 1 downvote, 4 comments:
	// 3 - 1 + 0.5*4 = 4, plus the 2-per-post bonus = 6
	engagement := &types.ProjectEngagement{
		PostCount: 1,
		Upvotes:   3,
		Downvotes: 1,
		Comments:  4,
	}

	assert.InEpsilon(t, 6.0, service.ProjectScore(engagement), 1e-9)
}

func TestProjectScoreEmptyProject(t *testing.T) {
	t.Parallel()

	assert.Zero(t, service.ProjectScore(&types.ProjectEngagement{}))
}

func TestProjectScoreNeverNegative(t *testing.T) {
	t.Parallel()

	engagement := &types.ProjectEngagement{
		PostCount: 1,
		Upvotes:   0,
		Downvotes: 10,
		Comments:  0,
	}

	assert.Zero(t, service.ProjectScore(engagement))
}

func TestRankOrdersByRawScore(t *testing.T) {
	t.Parallel()

	// Both round to 3, but the raw values must decide the order
	a := &types.ProjectEngagement{ProjectID: uuid.New(), Title: "a", PostCount: 1, Comments: 1} // 2.5
	b := &types.ProjectEngagement{ProjectID: uuid.New(), Title: "b", PostCount: 1, Upvotes: 1}  // 3.0

	ranked := service.Rank([]*types.ProjectEngagement{a, b}, 10)
	require.Len(t, ranked, 2)
	assert.Equal(t, "b", ranked[0].Title)
	assert.Equal(t, "a", ranked[1].Title)

	// Display scores are rounded from the raw values
	assert.Equal(t, 3, ranked[0].Score)
	assert.Equal(t, 3, ranked[1].Score) // 2.5 rounds to 3 for display only
}

func TestRankStableTies(t *testing.T) {
	t.Parallel()

	first := &types.ProjectEngagement{ProjectID: uuid.New(), Title: "first", PostCount: 1, Upvotes: 2}
	second := &types.ProjectEngagement{ProjectID: uuid.New(), Title: "second", PostCount: 1, Upvotes: 2}

	ranked := service.Rank([]*types.ProjectEngagement{first, second}, 10)
	require.Len(t, ranked, 2)

	// Equal scores keep enumeration order
	assert.Equal(t, "first", ranked[0].Title)
	assert.Equal(t, "second", ranked[1].Title)
}

func TestRankDefaultLimit(t *testing.T) {
	t.Parallel()

	rows := make([]*types.ProjectEngagement, 0, 6)
	for i := range 6 {
		rows = append(rows, &types.ProjectEngagement{
			ProjectID: uuid.New(),
			PostCount: 1,
			Upvotes:   i,
		})
	}

	ranked := service.Rank(rows, 0)
	assert.Len(t, ranked, service.DefaultTrendingLimit)

	// Top entry is the most upvoted one
	assert.Equal(t, rows[5].ProjectID, ranked[0].ID)
}

func TestRankEmpty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, service.Rank(nil, 4))
}

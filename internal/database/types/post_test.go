package types_test

import (
	"testing"

	"github.com/hatchr/hatchr/internal/database/types"
	"github.com/stretchr/testify/assert"
)

func TestNextVoteState(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		current      types.VoteDirection
		requested    types.VoteDirection
		wantNext     types.VoteDirection
		wantEntersUp bool
	}{
		{
			name:         "new upvote",
			current:      types.VoteNone,
			requested:    types.VoteUp,
			wantNext:     types.VoteUp,
			wantEntersUp: true,
		},
		{
			name:         "new downvote",
			current:      types.VoteNone,
			requested:    types.VoteDown,
			wantNext:     types.VoteDown,
			wantEntersUp: false,
		},
		{
			name:         "upvote toggles off",
			current:      types.VoteUp,
			requested:    types.VoteUp,
			wantNext:     types.VoteNone,
			wantEntersUp: false,
		},
		{
			name:         "downvote toggles off",
			current:      types.VoteDown,
			requested:    types.VoteDown,
			wantNext:     types.VoteNone,
			wantEntersUp: false,
		},
		{
			name:         "switch down to up awards",
			current:      types.VoteDown,
			requested:    types.VoteUp,
			wantNext:     types.VoteUp,
			wantEntersUp: true,
		},
		{
			name:         "switch up to down",
			current:      types.VoteUp,
			requested:    types.VoteDown,
			wantNext:     types.VoteDown,
			wantEntersUp: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			next, entersUp := types.NextVoteState(tt.current, tt.requested)
			assert.Equal(t, tt.wantNext, next)
			assert.Equal(t, tt.wantEntersUp, entersUp)
		})
	}
}

func TestNextVoteStateIdempotentToggle(t *testing.T) {
	t.Parallel()

	// Two identical requests in a row always return to the original state
	for _, direction := range []types.VoteDirection{types.VoteUp, types.VoteDown} {
		after, _ := types.NextVoteState(types.VoteNone, direction)
		final, entersUp := types.NextVoteState(after, direction)
		assert.Equal(t, types.VoteNone, final)
		assert.False(t, entersUp)
	}
}

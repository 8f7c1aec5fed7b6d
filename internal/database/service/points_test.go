package service_test

import (
	"testing"

	"github.com/hatchr/hatchr/internal/database/service"
	"github.com/hatchr/hatchr/internal/database/types"
	"github.com/hatchr/hatchr/internal/setup/config"
	"github.com/stretchr/testify/assert"
)

func TestPointTableDefaults(t *testing.T) {
	t.Parallel()

	table := service.PointTable(nil)

	assert.Equal(t, 50, table[types.ActionProjectCreated])
	assert.Equal(t, 20, table[types.ActionPostCreated])
	assert.Equal(t, 5, table[types.ActionReceivedUpvote])
	assert.Equal(t, 3, table[types.ActionCommentMade])
	assert.Len(t, table, 4)
}

func TestPointTableOverrides(t *testing.T) {
	t.Parallel()

	table := service.PointTable(&config.Points{
		ReceivedUpvote: 7,
		CommentMade:    1,
	})

	// Overridden values take effect, zero values keep the defaults
	assert.Equal(t, 50, table[types.ActionProjectCreated])
	assert.Equal(t, 20, table[types.ActionPostCreated])
	assert.Equal(t, 7, table[types.ActionReceivedUpvote])
	assert.Equal(t, 1, table[types.ActionCommentMade])
}

func TestPointTableUnknownAction(t *testing.T) {
	t.Parallel()

	table := service.PointTable(nil)

	_, ok := table[types.Action("not_a_real_action")]
	assert.False(t, ok)
}

package types_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/hatchr/hatchr/internal/database/types"
	"github.com/stretchr/testify/assert"
)

func TestPageCount(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, types.PageCount(0, 10))
	assert.Equal(t, 1, types.PageCount(1, 10))
	assert.Equal(t, 1, types.PageCount(10, 10))
	assert.Equal(t, 2, types.PageCount(11, 10))
	assert.Equal(t, 5, types.PageCount(50, 10))
	assert.Equal(t, 0, types.PageCount(10, 0))
}

func TestPageWindowCoversLedgerExactlyOnce(t *testing.T) {
	t.Parallel()

	// Concatenating the windows of pages 1..PageCount must reproduce the
	// full ledger in order, each entry exactly once
	for _, total := range []int{0, 1, 9, 10, 11, 23, 50} {
		const pageSize = 10

		ledger := make([]int, total)
		for i := range ledger {
			ledger[i] = i
		}

		collected := make([]int, 0, total)
		for page := 1; page <= types.PageCount(total, pageSize); page++ {
			limit, offset := types.PageWindow(page, pageSize)

			end := offset + limit
			if end > total {
				end = total
			}
			collected = append(collected, ledger[offset:end]...)
		}

		assert.Equal(t, ledger, collected, "total=%d", total)
	}
}

func TestReferenceConstructors(t *testing.T) {
	t.Parallel()

	id := uuid.New()

	assert.Equal(t, types.Reference{Kind: types.ReferenceKindProject, ID: id}, types.ProjectRef(id))
	assert.Equal(t, types.Reference{Kind: types.ReferenceKindPost, ID: id}, types.PostRef(id))
	assert.Equal(t, types.Reference{Kind: types.ReferenceKindComment, ID: id}, types.CommentRef(id))
}

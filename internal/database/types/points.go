package types

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidAction = errors.New("invalid scoring action")

// Action identifies a point-earning activity.
type Action string

const (
	ActionProjectCreated Action = "project_created"
	ActionPostCreated    Action = "post_created"
	ActionReceivedUpvote Action = "received_upvote"
	ActionCommentMade    Action = "comment_made"
)

// ReferenceKind identifies the entity type a point event is tied to.
type ReferenceKind string

const (
	ReferenceKindProject ReferenceKind = "Project"
	ReferenceKindPost    ReferenceKind = "Post"
	ReferenceKindComment ReferenceKind = "Comment"
)

// Reference is a weak, typed pointer to the entity that triggered a point
// event. It is kept for audit and display only; deleting the referenced
// entity never cascades to the event.
type Reference struct {
	Kind ReferenceKind `json:"kind"`
	ID   uuid.UUID     `json:"id"`
}

// ProjectRef creates a reference to a project.
func ProjectRef(id uuid.UUID) Reference {
	return Reference{Kind: ReferenceKindProject, ID: id}
}

// PostRef creates a reference to a post.
func PostRef(id uuid.UUID) Reference {
	return Reference{Kind: ReferenceKindPost, ID: id}
}

// CommentRef creates a reference to a comment.
func CommentRef(id uuid.UUID) Reference {
	return Reference{Kind: ReferenceKindComment, ID: id}
}

// PointEvent is a single entry in a user's point ledger.
// Events are append-only and never edited or removed.
type PointEvent struct {
	ID            uuid.UUID     `bun:",pk,type:uuid"     json:"id"`
	UserID        uuid.UUID     `bun:",notnull,type:uuid" json:"userId"`
	Action        Action        `bun:",notnull"           json:"action"`
	Points        int           `bun:",notnull"           json:"points"`
	ReferenceID   uuid.UUID     `bun:",type:uuid"         json:"referenceId"`
	ReferenceKind ReferenceKind `bun:",nullzero"          json:"referenceKind"`
	CreatedAt     time.Time     `bun:",notnull"           json:"createdAt"`
}

// AwardResult reports the outcome of a successful point award.
type AwardResult struct {
	PointsAwarded int   `json:"pointsAwarded"`
	NewTotal      int64 `json:"newTotal"`
}

// HistoryPage is one page of a user's point ledger, newest-first.
type HistoryPage struct {
	Events     []*PointEvent `json:"events"`
	TotalCount int           `json:"totalCount"`
	Page       int           `json:"page"`
	TotalPages int           `json:"totalPages"`
}

// PageWindow returns the limit and offset of one 1-based page. The windows
// of pages 1..PageCount tile the full range exactly once, with no overlap
// and no gap.
func PageWindow(page, pageSize int) (limit, offset int) {
	return pageSize, (page - 1) * pageSize
}

// PageCount returns the number of 1-based pages needed to hold total items.
func PageCount(total, pageSize int) int {
	if pageSize <= 0 || total <= 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}

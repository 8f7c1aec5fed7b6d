package types

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrPostNotFound         = errors.New("post not found")
	ErrInvalidVoteDirection = errors.New("invalid vote direction")
	ErrNotOwner             = errors.New("not the content owner")
)

// Post is a single update inside a project, carrying engagement state.
type Post struct {
	ID        uuid.UUID `bun:",pk,type:uuid"      json:"id"`
	ProjectID uuid.UUID `bun:",notnull,type:uuid" json:"projectId"`
	OwnerID   uuid.UUID `bun:",notnull,type:uuid" json:"ownerId"`
	Title     string    `bun:",notnull"           json:"title"`
	Caption   string    `bun:",nullzero"          json:"caption"`
	CreatedAt time.Time `bun:",notnull"           json:"createdAt"`
	UpdatedAt time.Time `bun:",notnull"           json:"updatedAt"`
}

// PostVote records a single user's vote on a post. The primary key makes
// at-most-one-vote-per-user-per-post structural; direction is a column, so
// up/down mutual exclusion can never be violated by concurrent writers.
type PostVote struct {
	PostID   uuid.UUID `bun:",pk,type:uuid" json:"postId"`
	UserID   uuid.UUID `bun:",pk,type:uuid" json:"userId"`
	IsUpvote bool      `bun:",notnull"      json:"isUpvote"`
	VotedAt  time.Time `bun:",notnull"      json:"votedAt"`
}

// PostLike records a like, independent of the vote axis.
type PostLike struct {
	PostID  uuid.UUID `bun:",pk,type:uuid" json:"postId"`
	UserID  uuid.UUID `bun:",pk,type:uuid" json:"userId"`
	LikedAt time.Time `bun:",notnull"      json:"likedAt"`
}

// VoteDirection is a user's vote membership on a post.
type VoteDirection string

const (
	VoteNone VoteDirection = "none"
	VoteUp   VoteDirection = "up"
	VoteDown VoteDirection = "down"
)

// NextVoteState computes the vote membership after a user requests the given
// direction, and whether the transition enters the upvoted state (which
// triggers a point award for the post owner). Requesting the current
// direction toggles the vote off; requesting the opposite switches it.
// Every transition into the upvoted state awards, including a switch from
// a downvote.
func NextVoteState(current, requested VoteDirection) (next VoteDirection, entersUpvote bool) {
	if current == requested {
		return VoteNone, false
	}
	return requested, requested == VoteUp
}

// VoteResult reports the post's vote counts and the caller's membership
// after a vote operation, so callers can render state without a second read.
type VoteResult struct {
	Upvotes   int           `json:"upvotes"`
	Downvotes int           `json:"downvotes"`
	Voted     VoteDirection `json:"voted"`
}

// LikeResult reports the post's like count and the caller's membership
// after a like toggle.
type LikeResult struct {
	Likes int  `json:"likes"`
	Liked bool `json:"liked"`
}

// VoteOutcome is the full result of a vote transaction, including the
// post owner so secondary effects can be dispatched after commit.
type VoteOutcome struct {
	Result        VoteResult
	OwnerID       uuid.UUID
	EnteredUpvote bool
}

// LikeOutcome is the full result of a like transaction.
type LikeOutcome struct {
	Result  LikeResult
	OwnerID uuid.UUID
}

package types

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrProjectNotFound = errors.New("project not found")

// Project groups a user's posts and is the unit of trending aggregation.
type Project struct {
	ID            uuid.UUID `bun:",pk,type:uuid"      json:"id"`
	OwnerID       uuid.UUID `bun:",notnull,type:uuid" json:"ownerId"`
	Title         string    `bun:",notnull"           json:"title"`
	Description   string    `bun:",nullzero"          json:"description"`
	Category      string    `bun:",nullzero"          json:"category"`
	CoverImageURL string    `bun:",nullzero"          json:"coverImageUrl"`
	CreatedAt     time.Time `bun:",notnull"           json:"createdAt"`
	UpdatedAt     time.Time `bun:",notnull"           json:"updatedAt"`
}

// ProjectEngagement is the aggregated engagement state of one project,
// scanned straight from the database for trending computation.
type ProjectEngagement struct {
	ProjectID     uuid.UUID `bun:"project_id"      json:"projectId"`
	Title         string    `bun:"title"           json:"title"`
	OwnerID       uuid.UUID `bun:"owner_id"        json:"ownerId"`
	OwnerUsername string    `bun:"owner_username"  json:"ownerUsername"`
	CoverImageURL string    `bun:"cover_image_url" json:"coverImageUrl"`
	PostCount     int       `bun:"post_count"      json:"postCount"`
	Upvotes       int       `bun:"upvotes"         json:"upvotes"`
	Downvotes     int       `bun:"downvotes"       json:"downvotes"`
	Comments      int       `bun:"comments"        json:"comments"`
}

// TrendingProject is one ranked entry of the trending computation.
// Score is the rounded display value; ranking uses the raw score.
type TrendingProject struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	OwnerID       uuid.UUID `json:"ownerId"`
	OwnerUsername string    `json:"ownerUsername"`
	Score         int       `json:"score"`
	CoverImageURL string    `json:"coverImageUrl"`
}

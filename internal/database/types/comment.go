package types

import (
	"time"

	"github.com/google/uuid"
)

// Comment is a user comment on a post.
type Comment struct {
	ID        uuid.UUID `bun:",pk,type:uuid"      json:"id"`
	PostID    uuid.UUID `bun:",notnull,type:uuid" json:"postId"`
	UserID    uuid.UUID `bun:",notnull,type:uuid" json:"userId"`
	Body      string    `bun:",notnull"           json:"body"`
	CreatedAt time.Time `bun:",notnull"           json:"createdAt"`
}

package types

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrUserNotFound = errors.New("user not found")

// User represents an account that can own projects, post updates,
// and accumulate points.
type User struct {
	ID          uuid.UUID `bun:",pk,type:uuid"      json:"id"`
	Username    string    `bun:",notnull,unique"    json:"username"`
	DisplayName string    `bun:",notnull"           json:"displayName"`
	AvatarURL   string    `bun:",nullzero"          json:"avatarUrl"`
	TotalPoints int64     `bun:",notnull,default:0" json:"totalPoints"`
	CreatedAt   time.Time `bun:",notnull"           json:"createdAt"`
	UpdatedAt   time.Time `bun:",notnull"           json:"updatedAt"`
}

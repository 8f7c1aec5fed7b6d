package service

import (
	"context"

	"github.com/google/uuid"
)

// Notifier pushes best-effort engagement events to content owners.
// Implementations must never block the caller on delivery and must swallow
// delivery failures; the services treat every call as fire-and-forget.
type Notifier interface {
	PostUpvoted(ctx context.Context, ownerID, postID, voterID uuid.UUID)
	PostLiked(ctx context.Context, ownerID, postID, likerID uuid.UUID)
	CommentAdded(ctx context.Context, ownerID, postID, commenterID uuid.UUID)
}

package notify

import (
	"context"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/redis/rueidis"
	"go.uber.org/zap"
)

// publishTimeout bounds how long a background publish may take.
const publishTimeout = 5 * time.Second

// Event kinds pushed to content owners.
const (
	EventPostUpvoted  = "post_upvoted"
	EventPostLiked    = "post_liked"
	EventCommentAdded = "comment_added"
)

// Event is one notification pushed to a content owner's channel.
type Event struct {
	Type    string    `json:"type"`
	PostID  uuid.UUID `json:"postId"`
	ActorID uuid.UUID `json:"actorId"`
	At      time.Time `json:"at"`
}

// Publisher pushes engagement events to per-user Redis pub/sub channels.
// Delivery is best-effort and fire-and-forget: publishing happens on a
// background goroutine and failures are only logged. Callers never block
// on Redis and never see a delivery error.
type Publisher struct {
	client rueidis.Client
	logger *zap.Logger
}

// NewPublisher creates a new notification publisher.
func NewPublisher(client rueidis.Client, logger *zap.Logger) *Publisher {
	return &Publisher{
		client: client,
		logger: logger.Named("notify"),
	}
}

// Channel returns the pub/sub channel name for a user's notifications.
func Channel(userID uuid.UUID) string {
	return "notify:user:" + userID.String()
}

// PostUpvoted notifies a post owner that their post received an upvote.
func (p *Publisher) PostUpvoted(_ context.Context, ownerID, postID, voterID uuid.UUID) {
	p.publish(ownerID, &Event{Type: EventPostUpvoted, PostID: postID, ActorID: voterID, At: time.Now()})
}

// PostLiked notifies a post owner that their post was liked.
func (p *Publisher) PostLiked(_ context.Context, ownerID, postID, likerID uuid.UUID) {
	p.publish(ownerID, &Event{Type: EventPostLiked, PostID: postID, ActorID: likerID, At: time.Now()})
}

// CommentAdded notifies a post owner about a new comment.
func (p *Publisher) CommentAdded(_ context.Context, ownerID, postID, commenterID uuid.UUID) {
	p.publish(ownerID, &Event{Type: EventCommentAdded, PostID: postID, ActorID: commenterID, At: time.Now()})
}

// publish serializes the event and sends it on a background goroutine.
// The caller's context is deliberately not used: the primary operation has
// already committed and its cancellation must not cancel the push.
func (p *Publisher) publish(ownerID uuid.UUID, event *Event) {
	payload, err := sonic.Marshal(event)
	if err != nil {
		p.logger.Warn("Failed to marshal notification", zap.Error(err), zap.String("type", event.Type))
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		defer cancel()

		cmd := p.client.B().Publish().
			Channel(Channel(ownerID)).
			Message(string(payload)).
			Build()

		if err := p.client.Do(ctx, cmd).Error(); err != nil {
			p.logger.Warn("Failed to publish notification",
				zap.Error(err),
				zap.String("type", event.Type),
				zap.String("ownerID", ownerID.String()))
		}
	}()
}

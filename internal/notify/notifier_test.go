package notify_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/hatchr/hatchr/internal/notify"
	"github.com/redis/rueidis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTest(t *testing.T) (*notify.Publisher, rueidis.Client, func()) {
	t.Helper()
	// Start miniredis server
	mr, err := miniredis.Run()
	require.NoError(t, err)

	// Create Redis clients for publishing and subscribing
	client, err := rueidis.NewClient(rueidis.ClientOption{
		InitAddress:  []string{mr.Addr()},
		DisableCache: true,
	})
	require.NoError(t, err)

	subClient, err := rueidis.NewClient(rueidis.ClientOption{
		InitAddress:  []string{mr.Addr()},
		DisableCache: true,
	})
	require.NoError(t, err)

	// Create test logger
	logger, err := zap.NewDevelopment()
	require.NoError(t, err)

	publisher := notify.NewPublisher(client, logger)

	cleanup := func() {
		subClient.Close()
		client.Close()
		mr.Close()
		logger.Sync()
	}

	return publisher, subClient, cleanup
}

// subscribe listens on a user's notification channel and forwards decoded
// events until the returned cancel function is called.
func subscribe(t *testing.T, client rueidis.Client, userID uuid.UUID) (<-chan *notify.Event, context.CancelFunc) {
	t.Helper()

	ctx, cancel := context.WithCancel(t.Context())
	events := make(chan *notify.Event, 4)

	ready := make(chan struct{})
	go func() {
		close(ready)
		_ = client.Receive(ctx, client.B().Subscribe().Channel(notify.Channel(userID)).Build(),
			func(msg rueidis.PubSubMessage) {
				var event notify.Event
				if err := sonic.Unmarshal([]byte(msg.Message), &event); err == nil {
					events <- &event
				}
			})
	}()
	<-ready

	// Give the subscription a moment to register before publishing
	time.Sleep(50 * time.Millisecond)

	return events, cancel
}

func TestPostUpvoted(t *testing.T) {
	t.Parallel()
	publisher, subClient, cleanup := setupTest(t)
	defer cleanup()

	ownerID := uuid.New()
	postID := uuid.New()
	voterID := uuid.New()

	events, cancel := subscribe(t, subClient, ownerID)
	defer cancel()

	publisher.PostUpvoted(t.Context(), ownerID, postID, voterID)

	select {
	case event := <-events:
		assert.Equal(t, notify.EventPostUpvoted, event.Type)
		assert.Equal(t, postID, event.PostID)
		assert.Equal(t, voterID, event.ActorID)
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for notification")
	}
}

func TestCommentAdded(t *testing.T) {
	t.Parallel()
	publisher, subClient, cleanup := setupTest(t)
	defer cleanup()

	ownerID := uuid.New()
	postID := uuid.New()
	commenterID := uuid.New()

	events, cancel := subscribe(t, subClient, ownerID)
	defer cancel()

	publisher.CommentAdded(t.Context(), ownerID, postID, commenterID)

	select {
	case event := <-events:
		assert.Equal(t, notify.EventCommentAdded, event.Type)
		assert.Equal(t, commenterID, event.ActorID)
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for notification")
	}
}

func TestPublishNeverBlocksCaller(t *testing.T) {
	t.Parallel()
	publisher, _, cleanup := setupTest(t)
	defer cleanup()

	// No subscriber exists; the publish must still return immediately
	done := make(chan struct{})
	go func() {
		publisher.PostLiked(t.Context(), uuid.New(), uuid.New(), uuid.New())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked the caller")
	}
}

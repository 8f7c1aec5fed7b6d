package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/hatchr/hatchr/internal/database/models"
	"github.com/hatchr/hatchr/internal/database/types"
	"go.uber.org/zap"
)

// CommentService handles comment-related business logic.
type CommentService struct {
	model    *models.CommentModel
	posts    *models.PostModel
	points   *PointsService
	notifier Notifier
	logger   *zap.Logger
}

// NewCommentSvc creates a new comment service. The notifier is optional.
func NewCommentSvc(
	model *models.CommentModel,
	posts *models.PostModel,
	points *PointsService,
	notifier Notifier,
	logger *zap.Logger,
) *CommentService {
	return &CommentService{
		model:    model,
		posts:    posts,
		points:   points,
		notifier: notifier,
		logger:   logger.Named("comment_service"),
	}
}

// Create appends a comment to a post, awards comment_made to the
// commenter, and notifies the post owner fire-and-forget.
func (s *CommentService) Create(
	ctx context.Context, postID, userID uuid.UUID, body string,
) (*types.Comment, *types.AwardResult, error) {
	post, err := s.posts.GetPost(ctx, postID)
	if err != nil {
		return nil, nil, err
	}

	comment := &types.Comment{
		ID:     uuid.New(),
		PostID: postID,
		UserID: userID,
		Body:   body,
	}

	if err := s.model.CreateComment(ctx, comment); err != nil {
		return nil, nil, err
	}

	award, err := s.points.Award(ctx, userID, types.ActionCommentMade, types.CommentRef(comment.ID))
	if err != nil {
		return nil, nil, fmt.Errorf("comment created but award failed: %w", err)
	}

	if s.notifier != nil {
		s.notifier.CommentAdded(ctx, post.OwnerID, postID, userID)
	}

	return comment, award, nil
}

// ListForPost retrieves the comments on a post, newest-first.
func (s *CommentService) ListForPost(ctx context.Context, postID uuid.UUID) ([]*types.Comment, error) {
	return s.model.GetPostComments(ctx, postID)
}

// Delete removes the caller's own comment. The comment_made ledger event
// stays; points are never reversed.
func (s *CommentService) Delete(ctx context.Context, commentID, userID uuid.UUID) error {
	return s.model.DeleteComment(ctx, commentID, userID)
}

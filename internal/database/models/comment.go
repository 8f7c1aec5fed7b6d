package models

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hatchr/hatchr/internal/database/types"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// CommentModel handles database operations for comments.
type CommentModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewComment creates a new comment model.
func NewComment(db *bun.DB, logger *zap.Logger) *CommentModel {
	return &CommentModel{
		db:     db,
		logger: logger.Named("db_comment"),
	}
}

// CreateComment inserts a new comment.
func (r *CommentModel) CreateComment(ctx context.Context, comment *types.Comment) error {
	comment.CreatedAt = time.Now()

	_, err := r.db.NewInsert().
		Model(comment).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}

	return nil
}

// GetPostComments retrieves the comments on a post, newest-first.
func (r *CommentModel) GetPostComments(ctx context.Context, postID uuid.UUID) ([]*types.Comment, error) {
	var comments []*types.Comment

	err := r.db.NewSelect().
		Model(&comments).
		Where("post_id = ?", postID).
		Order("created_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get comments: %w", err)
	}

	return comments, nil
}

// DeleteComment deletes a comment by its author.
func (r *CommentModel) DeleteComment(ctx context.Context, commentID, userID uuid.UUID) error {
	_, err := r.db.NewDelete().
		Model((*types.Comment)(nil)).
		Where("id = ?", commentID).
		Where("user_id = ?", userID). // Only allow deleting own comments
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}

	return nil
}

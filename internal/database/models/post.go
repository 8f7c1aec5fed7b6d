package models

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hatchr/hatchr/internal/database/types"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// PostModel handles database operations for posts.
type PostModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewPost creates a new post model.
func NewPost(db *bun.DB, logger *zap.Logger) *PostModel {
	return &PostModel{
		db:     db,
		logger: logger.Named("db_post"),
	}
}

// CreatePost inserts a new post. Its reaction sets start empty.
func (r *PostModel) CreatePost(ctx context.Context, post *types.Post) error {
	now := time.Now()
	post.CreatedAt = now
	post.UpdatedAt = now

	_, err := r.db.NewInsert().
		Model(post).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}

	return nil
}

// GetPost retrieves a post by ID.
func (r *PostModel) GetPost(ctx context.Context, postID uuid.UUID) (*types.Post, error) {
	var post types.Post

	err := r.db.NewSelect().
		Model(&post).
		Where("id = ?", postID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, types.ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	return &post, nil
}

// DeletePost removes a post. Its votes, likes, and comments are discarded
// by the cascade constraints; ledger events stay.
func (r *PostModel) DeletePost(ctx context.Context, postID uuid.UUID) error {
	_, err := r.db.NewDelete().
		Model((*types.Post)(nil)).
		Where("id = ?", postID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	return nil
}

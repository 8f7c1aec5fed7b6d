package models

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hatchr/hatchr/internal/database/dbretry"
	"github.com/hatchr/hatchr/internal/database/types"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// ProjectModel handles database operations for projects.
type ProjectModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewProject creates a new project model.
func NewProject(db *bun.DB, logger *zap.Logger) *ProjectModel {
	return &ProjectModel{
		db:     db,
		logger: logger.Named("db_project"),
	}
}

// CreateProject inserts a new project.
func (r *ProjectModel) CreateProject(ctx context.Context, project *types.Project) error {
	now := time.Now()
	project.CreatedAt = now
	project.UpdatedAt = now

	_, err := r.db.NewInsert().
		Model(project).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}

	return nil
}

// GetProject retrieves a project by ID.
func (r *ProjectModel) GetProject(ctx context.Context, projectID uuid.UUID) (*types.Project, error) {
	var project types.Project

	err := r.db.NewSelect().
		Model(&project).
		Where("id = ?", projectID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, types.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	return &project, nil
}

// DeleteProject removes a project and its posts. Ledger events that
// reference the project or its posts are left untouched.
func (r *ProjectModel) DeleteProject(ctx context.Context, projectID uuid.UUID) error {
	err := r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewDelete().
			Model((*types.Post)(nil)).
			Where("project_id = ?", projectID).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to delete project posts: %w", err)
		}

		_, err = tx.NewDelete().
			Model((*types.Project)(nil)).
			Where("id = ?", projectID).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to delete project: %w", err)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	return nil
}

// GetEngagement scans every project with its aggregated engagement counts,
// in creation order. This is the trending aggregator's read path; it is a
// plain read, so transient failures are retried.
func (r *ProjectModel) GetEngagement(ctx context.Context) ([]*types.ProjectEngagement, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) ([]*types.ProjectEngagement, error) {
		var rows []*types.ProjectEngagement

		err := r.db.NewSelect().
			TableExpr("projects AS pr").
			Join("JOIN users AS u ON u.id = pr.owner_id").
			ColumnExpr("pr.id AS project_id").
			ColumnExpr("pr.title AS title").
			ColumnExpr("pr.owner_id AS owner_id").
			ColumnExpr("u.username AS owner_username").
			ColumnExpr("pr.cover_image_url AS cover_image_url").
			ColumnExpr("(SELECT count(*) FROM posts p WHERE p.project_id = pr.id) AS post_count").
			ColumnExpr("(SELECT count(*) FROM post_votes v JOIN posts p ON p.id = v.post_id " +
				"WHERE p.project_id = pr.id AND v.is_upvote) AS upvotes").
			ColumnExpr("(SELECT count(*) FROM post_votes v JOIN posts p ON p.id = v.post_id " +
				"WHERE p.project_id = pr.id AND NOT v.is_upvote) AS downvotes").
			ColumnExpr("(SELECT count(*) FROM comments c JOIN posts p ON p.id = c.post_id " +
				"WHERE p.project_id = pr.id) AS comments").
			OrderExpr("pr.created_at").
			Scan(ctx, &rows)
		if err != nil {
			return nil, fmt.Errorf("failed to get project engagement: %w", err)
		}

		return rows, nil
	})
}

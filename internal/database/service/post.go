package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/hatchr/hatchr/internal/database/models"
	"github.com/hatchr/hatchr/internal/database/types"
	"go.uber.org/zap"
)

// PostService handles post-related business logic.
type PostService struct {
	model    *models.PostModel
	projects *models.ProjectModel
	points   *PointsService
	logger   *zap.Logger
}

// NewPostSvc creates a new post service.
func NewPostSvc(
	model *models.PostModel,
	projects *models.ProjectModel,
	points *PointsService,
	logger *zap.Logger,
) *PostService {
	return &PostService{
		model:    model,
		projects: projects,
		points:   points,
		logger:   logger.Named("post_service"),
	}
}

// Create inserts a new post into its project and awards post_created to
// the author. The post stays even if the award fails.
func (s *PostService) Create(ctx context.Context, post *types.Post) (*types.AwardResult, error) {
	if _, err := s.projects.GetProject(ctx, post.ProjectID); err != nil {
		return nil, err
	}

	if post.ID == uuid.Nil {
		post.ID = uuid.New()
	}

	if err := s.model.CreatePost(ctx, post); err != nil {
		return nil, err
	}

	award, err := s.points.Award(ctx, post.OwnerID, types.ActionPostCreated, types.PostRef(post.ID))
	if err != nil {
		return nil, fmt.Errorf("post created but award failed: %w", err)
	}

	return award, nil
}

// Get retrieves a post by ID.
func (s *PostService) Get(ctx context.Context, postID uuid.UUID) (*types.Post, error) {
	return s.model.GetPost(ctx, postID)
}

// Delete removes a post owned by the caller. Its reaction sets are
// discarded with it; the ledger keeps every event they ever produced.
func (s *PostService) Delete(ctx context.Context, postID, callerID uuid.UUID) error {
	post, err := s.model.GetPost(ctx, postID)
	if err != nil {
		return err
	}

	if post.OwnerID != callerID {
		return types.ErrNotOwner
	}

	return s.model.DeletePost(ctx, postID)
}

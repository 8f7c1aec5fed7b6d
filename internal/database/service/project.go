package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/hatchr/hatchr/internal/database/models"
	"github.com/hatchr/hatchr/internal/database/types"
	"go.uber.org/zap"
)

// ProjectService handles project-related business logic.
type ProjectService struct {
	model  *models.ProjectModel
	points *PointsService
	logger *zap.Logger
}

// NewProjectSvc creates a new project service.
func NewProjectSvc(model *models.ProjectModel, points *PointsService, logger *zap.Logger) *ProjectService {
	return &ProjectService{
		model:  model,
		points: points,
		logger: logger.Named("project_service"),
	}
}

// Create inserts a new project and awards project_created to its owner.
// The project stays even if the award fails; the award error surfaces so
// the caller can retry it.
func (s *ProjectService) Create(
	ctx context.Context, project *types.Project,
) (*types.AwardResult, error) {
	if project.ID == uuid.Nil {
		project.ID = uuid.New()
	}

	if err := s.model.CreateProject(ctx, project); err != nil {
		return nil, err
	}

	award, err := s.points.Award(
		ctx, project.OwnerID, types.ActionProjectCreated, types.ProjectRef(project.ID),
	)
	if err != nil {
		return nil, fmt.Errorf("project created but award failed: %w", err)
	}

	return award, nil
}

// Get retrieves a project by ID.
func (s *ProjectService) Get(ctx context.Context, projectID uuid.UUID) (*types.Project, error) {
	return s.model.GetProject(ctx, projectID)
}

// Delete removes a project owned by the caller, along with its posts.
// Ledger events referencing the project are never cleaned up.
func (s *ProjectService) Delete(ctx context.Context, projectID, callerID uuid.UUID) error {
	project, err := s.model.GetProject(ctx, projectID)
	if err != nil {
		return err
	}

	if project.OwnerID != callerID {
		return types.ErrNotOwner
	}

	return s.model.DeleteProject(ctx, projectID)
}

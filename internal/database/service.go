package database

import (
	"github.com/hatchr/hatchr/internal/database/service"
	"github.com/hatchr/hatchr/internal/setup/config"
	"go.uber.org/zap"
)

// Service provides access to all business logic services.
type Service struct {
	points     *service.PointsService
	engagement *service.EngagementService
	trending   *service.TrendingService
	project    *service.ProjectService
	post       *service.PostService
	comment    *service.CommentService
}

// NewService creates a new service instance with all services.
func NewService(
	repository *Repository, pointsCfg *config.Points, notifier service.Notifier, logger *zap.Logger,
) *Service {
	pointsService := service.NewPoints(repository.Points(), repository.User(), pointsCfg, logger)

	return &Service{
		points:     pointsService,
		engagement: service.NewEngagement(repository.Engagement(), pointsService, notifier, logger),
		trending:   service.NewTrending(repository.Project(), logger),
		project:    service.NewProjectSvc(repository.Project(), pointsService, logger),
		post:       service.NewPostSvc(repository.Post(), repository.Project(), pointsService, logger),
		comment:    service.NewCommentSvc(repository.Comment(), repository.Post(), pointsService, notifier, logger),
	}
}

// Points returns the points service.
func (s *Service) Points() *service.PointsService {
	return s.points
}

// Engagement returns the engagement service.
func (s *Service) Engagement() *service.EngagementService {
	return s.engagement
}

// Trending returns the trending service.
func (s *Service) Trending() *service.TrendingService {
	return s.trending
}

// Project returns the project service.
func (s *Service) Project() *service.ProjectService {
	return s.project
}

// Post returns the post service.
func (s *Service) Post() *service.PostService {
	return s.post
}

// Comment returns the comment service.
func (s *Service) Comment() *service.CommentService {
	return s.comment
}

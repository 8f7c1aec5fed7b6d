package database

import (
	"github.com/hatchr/hatchr/internal/database/models"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// Repository provides access to all database models.
type Repository struct {
	user       *models.UserModel
	points     *models.PointsModel
	engagement *models.EngagementModel
	project    *models.ProjectModel
	post       *models.PostModel
	comment    *models.CommentModel
}

// NewRepository creates a new repository instance with all models.
func NewRepository(db *bun.DB, logger *zap.Logger) *Repository {
	return &Repository{
		user:       models.NewUser(db, logger),
		points:     models.NewPoints(db, logger),
		engagement: models.NewEngagement(db, logger),
		project:    models.NewProject(db, logger),
		post:       models.NewPost(db, logger),
		comment:    models.NewComment(db, logger),
	}
}

// User returns the user model repository.
func (r *Repository) User() *models.UserModel {
	return r.user
}

// Points returns the point ledger model repository.
func (r *Repository) Points() *models.PointsModel {
	return r.points
}

// Engagement returns the engagement model repository.
func (r *Repository) Engagement() *models.EngagementModel {
	return r.engagement
}

// Project returns the project model repository.
func (r *Repository) Project() *models.ProjectModel {
	return r.project
}

// Post returns the post model repository.
func (r *Repository) Post() *models.PostModel {
	return r.post
}

// Comment returns the comment model repository.
func (r *Repository) Comment() *models.CommentModel {
	return r.comment
}

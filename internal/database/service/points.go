package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/hatchr/hatchr/internal/database/models"
	"github.com/hatchr/hatchr/internal/database/types"
	"github.com/hatchr/hatchr/internal/setup/config"
	"go.uber.org/zap"
)

// DefaultPageSize is the history page size when the caller passes none.
const DefaultPageSize = 10

// PointTable builds the action to point-value mapping from configuration.
// Zero or missing config values fall back to the defaults.
func PointTable(cfg *config.Points) map[types.Action]int {
	table := map[types.Action]int{
		types.ActionProjectCreated: 50,
		types.ActionPostCreated:    20,
		types.ActionReceivedUpvote: 5,
		types.ActionCommentMade:    3,
	}

	if cfg == nil {
		return table
	}

	if cfg.ProjectCreated > 0 {
		table[types.ActionProjectCreated] = cfg.ProjectCreated
	}
	if cfg.PostCreated > 0 {
		table[types.ActionPostCreated] = cfg.PostCreated
	}
	if cfg.ReceivedUpvote > 0 {
		table[types.ActionReceivedUpvote] = cfg.ReceivedUpvote
	}
	if cfg.CommentMade > 0 {
		table[types.ActionCommentMade] = cfg.CommentMade
	}

	return table
}

// PointsService handles the scoring engine: awarding points, the
// append-only ledger, and the leaderboard.
type PointsService struct {
	model  *models.PointsModel
	users  *models.UserModel
	table  map[types.Action]int
	logger *zap.Logger
}

// NewPoints creates a new points service.
func NewPoints(
	model *models.PointsModel,
	users *models.UserModel,
	cfg *config.Points,
	logger *zap.Logger,
) *PointsService {
	return &PointsService{
		model:  model,
		users:  users,
		table:  PointTable(cfg),
		logger: logger.Named("points_service"),
	}
}

// Award gives a user the configured points for an action and appends a
// ledger event. Unknown actions and missing users fail without mutation.
// Points are append-only; nothing in the system ever deducts them.
func (s *PointsService) Award(
	ctx context.Context, userID uuid.UUID, action types.Action, ref types.Reference,
) (*types.AwardResult, error) {
	points, ok := s.table[action]
	if !ok {
		return nil, fmt.Errorf("%w: %s", types.ErrInvalidAction, action)
	}

	result, err := s.model.Award(ctx, userID, action, points, ref)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("Awarded points",
		zap.String("userID", userID.String()),
		zap.String("action", string(action)),
		zap.Int("points", points),
		zap.Int64("newTotal", result.NewTotal))

	return result, nil
}

// History retrieves one page of a user's ledger, newest-first. Pages are
// 1-based; out-of-range pages yield an empty list with correct totals.
func (s *PointsService) History(
	ctx context.Context, userID uuid.UUID, page, pageSize int,
) (*types.HistoryPage, error) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	if _, err := s.users.GetUser(ctx, userID); err != nil {
		return nil, err
	}

	return s.model.GetHistoryPage(ctx, userID, page, pageSize)
}

// TopUsers retrieves the leaderboard of users by cumulative points.
func (s *PointsService) TopUsers(ctx context.Context, limit int) ([]*types.User, error) {
	if limit <= 0 {
		limit = DefaultPageSize
	}

	return s.users.GetTopUsers(ctx, limit)
}

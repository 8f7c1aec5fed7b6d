package service

import (
	"context"
	"math"
	"sort"

	"github.com/hatchr/hatchr/internal/database/models"
	"github.com/hatchr/hatchr/internal/database/types"
	"github.com/sourcegraph/conc/iter"
	"go.uber.org/zap"
)

// DefaultTrendingLimit is how many projects Compute returns by default.
const DefaultTrendingLimit = 4

// TrendingService derives a ranked list of projects from the live
// engagement state of their posts. There is no persisted cache: every
// call rescans all projects, so the result reflects the committed
// vote and comment state at the instant of computation.
type TrendingService struct {
	projects *models.ProjectModel
	logger   *zap.Logger
}

// NewTrending creates a new trending service.
func NewTrending(projects *models.ProjectModel, logger *zap.Logger) *TrendingService {
	return &TrendingService{
		projects: projects,
		logger:   logger.Named("trending_service"),
	}
}

// Compute scans all projects and returns the top entries by trending score.
func (s *TrendingService) Compute(ctx context.Context, limit int) ([]*types.TrendingProject, error) {
	rows, err := s.projects.GetEngagement(ctx)
	if err != nil {
		return nil, err
	}

	return Rank(rows, limit), nil
}

// ProjectScore computes the raw trending score of one project:
// the sum over its posts of upvotes - downvotes + 0.5 * comments, plus a
// bonus of 2 per post, floored at zero. Ranking uses this raw value; only
// the displayed score is rounded.
func ProjectScore(e *types.ProjectEngagement) float64 {
	if e.PostCount == 0 {
		return 0
	}

	score := float64(e.Upvotes) - float64(e.Downvotes) + 0.5*float64(e.Comments)
	score += 2 * float64(e.PostCount)

	return math.Max(0, score)
}

// Rank scores the given projects, orders them by raw score descending, and
// returns the top limit entries with rounded display scores. Ties keep the
// input enumeration order.
func Rank(rows []*types.ProjectEngagement, limit int) []*types.TrendingProject {
	if limit <= 0 {
		limit = DefaultTrendingLimit
	}

	scores := make([]float64, len(rows))
	iter.ForEachIdx(rows, func(i int, row **types.ProjectEngagement) {
		scores[i] = ProjectScore(*row)
	})

	order := make([]int, len(rows))
	for i := range order {
		order[i] = i
	}

	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})

	if len(order) > limit {
		order = order[:limit]
	}

	ranked := make([]*types.TrendingProject, 0, len(order))
	for _, i := range order {
		row := rows[i]
		ranked = append(ranked, &types.TrendingProject{
			ID:            row.ProjectID,
			Title:         row.Title,
			OwnerID:       row.OwnerID,
			OwnerUsername: row.OwnerUsername,
			Score:         int(math.Round(scores[i])),
			CoverImageURL: row.CoverImageURL,
		})
	}

	return ranked
}

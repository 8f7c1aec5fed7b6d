package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/hatchr/hatchr/internal/database/models"
	"github.com/hatchr/hatchr/internal/database/types"
	"go.uber.org/zap"
)

// EngagementService handles the vote and like toggle machines on posts.
type EngagementService struct {
	model    *models.EngagementModel
	points   *PointsService
	notifier Notifier
	logger   *zap.Logger
}

// NewEngagement creates a new engagement service. The notifier is optional.
func NewEngagement(
	model *models.EngagementModel,
	points *PointsService,
	notifier Notifier,
	logger *zap.Logger,
) *EngagementService {
	return &EngagementService{
		model:    model,
		points:   points,
		notifier: notifier,
		logger:   logger.Named("engagement_service"),
	}
}

// Vote applies a user's upvote or downvote to a post. Repeating the current
// direction toggles the vote off; the opposite direction switches it.
// Removing a vote never deducts points. Every transition into the upvoted
// state awards received_upvote to the post owner after the vote commits;
// the award is secondary and its failure never rolls the vote back.
// Voting on one's own content is permitted.
func (s *EngagementService) Vote(
	ctx context.Context, postID, userID uuid.UUID, direction types.VoteDirection,
) (*types.VoteResult, error) {
	if direction != types.VoteUp && direction != types.VoteDown {
		return nil, fmt.Errorf("%w: %s", types.ErrInvalidVoteDirection, direction)
	}

	outcome, err := s.model.ApplyVote(ctx, postID, userID, direction)
	if err != nil {
		return nil, err
	}

	if outcome.EnteredUpvote {
		_, err := s.points.Award(ctx, outcome.OwnerID, types.ActionReceivedUpvote, types.PostRef(postID))
		if err != nil {
			// The vote is primary; a lost award is accepted as lost analytics
			s.logger.Warn("Failed to award upvote points",
				zap.Error(err),
				zap.String("postID", postID.String()),
				zap.String("ownerID", outcome.OwnerID.String()))
		}

		if s.notifier != nil {
			s.notifier.PostUpvoted(ctx, outcome.OwnerID, postID, userID)
		}
	}

	return &outcome.Result, nil
}

// Like toggles a user's like on a post. Likes are independent of votes and
// never score points.
func (s *EngagementService) Like(
	ctx context.Context, postID, userID uuid.UUID,
) (*types.LikeResult, error) {
	outcome, err := s.model.ApplyLike(ctx, postID, userID)
	if err != nil {
		return nil, err
	}

	if outcome.Result.Liked && s.notifier != nil {
		s.notifier.PostLiked(ctx, outcome.OwnerID, postID, userID)
	}

	return &outcome.Result, nil
}

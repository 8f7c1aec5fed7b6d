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

// EngagementModel handles database operations for post votes and likes.
// Reactions are rows keyed by (post_id, user_id), so writes by distinct
// users are independently atomic; the transaction locks the caller's own
// row to serialize same-user races.
type EngagementModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewEngagement creates a new engagement model.
func NewEngagement(db *bun.DB, logger *zap.Logger) *EngagementModel {
	return &EngagementModel{
		db:     db,
		logger: logger.Named("db_engagement"),
	}
}

// ApplyVote toggles, switches, or casts a vote for a user on a post and
// returns the resulting counts, the caller's membership, and whether the
// transition entered the upvoted state.
func (r *EngagementModel) ApplyVote(
	ctx context.Context, postID, userID uuid.UUID, direction types.VoteDirection,
) (*types.VoteOutcome, error) {
	var outcome types.VoteOutcome

	err := r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		ownerID, err := postOwner(ctx, tx, postID)
		if err != nil {
			return err
		}
		outcome.OwnerID = ownerID

		// Lock the caller's vote row, if any
		current := types.VoteNone

		var vote types.PostVote
		err = tx.NewSelect().
			Model(&vote).
			Where("post_id = ?", postID).
			Where("user_id = ?", userID).
			For("UPDATE").
			Scan(ctx)
		switch {
		case err == nil:
			if vote.IsUpvote {
				current = types.VoteUp
			} else {
				current = types.VoteDown
			}
		case errors.Is(err, sql.ErrNoRows):
		default:
			return fmt.Errorf("failed to get vote: %w", err)
		}

		next, entersUpvote := types.NextVoteState(current, direction)
		outcome.EnteredUpvote = entersUpvote
		outcome.Result.Voted = next

		switch {
		case next == types.VoteNone:
			_, err = tx.NewDelete().
				Model((*types.PostVote)(nil)).
				Where("post_id = ?", postID).
				Where("user_id = ?", userID).
				Exec(ctx)
			if err != nil {
				return fmt.Errorf("failed to remove vote: %w", err)
			}
		case current == types.VoteNone:
			newVote := &types.PostVote{
				PostID:   postID,
				UserID:   userID,
				IsUpvote: next == types.VoteUp,
				VotedAt:  time.Now(),
			}

			_, err = tx.NewInsert().
				Model(newVote).
				Exec(ctx)
			if err != nil {
				return fmt.Errorf("failed to cast vote: %w", err)
			}
		default:
			// Switching direction updates the row in place, so there is
			// never a transient state with both directions set
			_, err = tx.NewUpdate().
				Model((*types.PostVote)(nil)).
				Set("is_upvote = ?", next == types.VoteUp).
				Set("voted_at = ?", time.Now()).
				Where("post_id = ?", postID).
				Where("user_id = ?", userID).
				Exec(ctx)
			if err != nil {
				return fmt.Errorf("failed to switch vote: %w", err)
			}
		}

		err = tx.NewSelect().
			Model((*types.PostVote)(nil)).
			ColumnExpr("count(*) FILTER (WHERE is_upvote) AS upvotes").
			ColumnExpr("count(*) FILTER (WHERE NOT is_upvote) AS downvotes").
			Where("post_id = ?", postID).
			Scan(ctx, &outcome.Result.Upvotes, &outcome.Result.Downvotes)
		if err != nil {
			return fmt.Errorf("failed to count votes: %w", err)
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, types.ErrPostNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to apply vote: %w", err)
	}

	return &outcome, nil
}

// ApplyLike toggles a user's like on a post. The like axis is fully
// independent of the vote axis and has no scoring side effect.
func (r *EngagementModel) ApplyLike(
	ctx context.Context, postID, userID uuid.UUID,
) (*types.LikeOutcome, error) {
	var outcome types.LikeOutcome

	err := r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		ownerID, err := postOwner(ctx, tx, postID)
		if err != nil {
			return err
		}
		outcome.OwnerID = ownerID

		// Delete-first toggle: one affected row means the like existed
		res, err := tx.NewDelete().
			Model((*types.PostLike)(nil)).
			Where("post_id = ?", postID).
			Where("user_id = ?", userID).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to remove like: %w", err)
		}

		removed, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to read affected rows: %w", err)
		}

		if removed == 0 {
			like := &types.PostLike{
				PostID:  postID,
				UserID:  userID,
				LikedAt: time.Now(),
			}

			_, err = tx.NewInsert().
				Model(like).
				Exec(ctx)
			if err != nil {
				return fmt.Errorf("failed to add like: %w", err)
			}

			outcome.Result.Liked = true
		}

		count, err := tx.NewSelect().
			Model((*types.PostLike)(nil)).
			Where("post_id = ?", postID).
			Count(ctx)
		if err != nil {
			return fmt.Errorf("failed to count likes: %w", err)
		}
		outcome.Result.Likes = count

		return nil
	})
	if err != nil {
		if errors.Is(err, types.ErrPostNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to apply like: %w", err)
	}

	return &outcome, nil
}

// postOwner resolves the owner of a post inside a transaction.
func postOwner(ctx context.Context, tx bun.Tx, postID uuid.UUID) (uuid.UUID, error) {
	var ownerID uuid.UUID

	err := tx.NewSelect().
		Model((*types.Post)(nil)).
		Column("owner_id").
		Where("id = ?", postID).
		Scan(ctx, &ownerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return uuid.Nil, types.ErrPostNotFound
		}
		return uuid.Nil, fmt.Errorf("failed to get post owner: %w", err)
	}

	return ownerID, nil
}

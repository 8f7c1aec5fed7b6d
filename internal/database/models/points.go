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

// PointsModel handles database operations for the point ledger.
type PointsModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewPoints creates a new points model.
func NewPoints(db *bun.DB, logger *zap.Logger) *PointsModel {
	return &PointsModel{
		db:     db,
		logger: logger.Named("db_points"),
	}
}

// Award increments a user's total and appends one ledger event in a single
// transaction. A torn state (total without event, or vice versa) is never
// persisted. The increment runs inside Postgres, so concurrent awards for
// the same user cannot lose an update. No retry is attempted; failures
// surface to the caller with no partial mutation.
func (r *PointsModel) Award(
	ctx context.Context, userID uuid.UUID, action types.Action, points int, ref types.Reference,
) (*types.AwardResult, error) {
	var newTotal int64

	err := r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		now := time.Now()

		err := tx.NewUpdate().
			Model((*types.User)(nil)).
			Set("total_points = total_points + ?", points).
			Set("updated_at = ?", now).
			Where("id = ?", userID).
			Returning("total_points").
			Scan(ctx, &newTotal)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return types.ErrUserNotFound
			}
			return fmt.Errorf("failed to increment total points: %w", err)
		}

		event := &types.PointEvent{
			ID:            uuid.New(),
			UserID:        userID,
			Action:        action,
			Points:        points,
			ReferenceID:   ref.ID,
			ReferenceKind: ref.Kind,
			CreatedAt:     now,
		}

		_, err = tx.NewInsert().
			Model(event).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to append point event: %w", err)
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, types.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to award points: %w", err)
	}

	return &types.AwardResult{PointsAwarded: points, NewTotal: newTotal}, nil
}

// GetHistoryPage retrieves one page of a user's ledger, newest-first.
// Pages are 1-based; a page past the end yields an empty event list with
// the correct totals.
func (r *PointsModel) GetHistoryPage(
	ctx context.Context, userID uuid.UUID, page, pageSize int,
) (*types.HistoryPage, error) {
	total, err := r.db.NewSelect().
		Model((*types.PointEvent)(nil)).
		Where("user_id = ?", userID).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count point events: %w", err)
	}

	limit, offset := types.PageWindow(page, pageSize)
	events := make([]*types.PointEvent, 0, pageSize)

	err = r.db.NewSelect().
		Model(&events).
		Where("user_id = ?", userID).
		Order("created_at DESC", "id").
		Limit(limit).
		Offset(offset).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get point events: %w", err)
	}

	return &types.HistoryPage{
		Events:     events,
		TotalCount: total,
		Page:       page,
		TotalPages: types.PageCount(total, pageSize),
	}, nil
}

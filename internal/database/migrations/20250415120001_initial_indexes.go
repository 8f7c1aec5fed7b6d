package migrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		indexes := []string{
			// Ledger pages are read newest-first per user
			`CREATE INDEX IF NOT EXISTS idx_point_events_user_created
				ON point_events (user_id, created_at DESC)`,
			// Leaderboard ordering
			`CREATE INDEX IF NOT EXISTS idx_users_total_points
				ON users (total_points DESC)`,
			// Engagement counts per post
			`CREATE INDEX IF NOT EXISTS idx_post_votes_post
				ON post_votes (post_id)`,
			`CREATE INDEX IF NOT EXISTS idx_post_likes_post
				ON post_likes (post_id)`,
			`CREATE INDEX IF NOT EXISTS idx_comments_post
				ON comments (post_id)`,
			// Trending scans posts by project
			`CREATE INDEX IF NOT EXISTS idx_posts_project
				ON posts (project_id)`,
			`CREATE INDEX IF NOT EXISTS idx_projects_owner
				ON projects (owner_id)`,
		}

		for _, index := range indexes {
			_, err := db.NewRaw(index).Exec(ctx)
			if err != nil {
				return fmt.Errorf("failed to create index: %w", err)
			}
		}

		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		indexes := []string{
			"idx_point_events_user_created",
			"idx_users_total_points",
			"idx_post_votes_post",
			"idx_post_likes_post",
			"idx_comments_post",
			"idx_posts_project",
			"idx_projects_owner",
		}

		for _, index := range indexes {
			_, err := db.NewRaw(fmt.Sprintf("DROP INDEX IF EXISTS %s", index)).Exec(ctx)
			if err != nil {
				return fmt.Errorf("failed to drop index: %w", err)
			}
		}

		return nil
	})
}

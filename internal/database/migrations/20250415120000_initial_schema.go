package migrations

import (
	"context"
	"fmt"

	"github.com/hatchr/hatchr/internal/database/types"
	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		models := []any{
			(*types.User)(nil),
			(*types.PointEvent)(nil),
			(*types.Project)(nil),
			(*types.Post)(nil),
			(*types.PostVote)(nil),
			(*types.PostLike)(nil),
			(*types.Comment)(nil),
		}

		for _, model := range models {
			_, err := db.NewCreateTable().
				Model(model).
				IfNotExists().
				Exec(ctx)
			if err != nil {
				return fmt.Errorf("failed to create table for %T: %w", model, err)
			}
		}

		// Reactions and comments die with their post; point events carry no
		// foreign keys at all, the ledger outlives everything it references
		constraints := []string{
			`ALTER TABLE post_votes ADD CONSTRAINT fk_post_votes_post
				FOREIGN KEY (post_id) REFERENCES posts (id) ON DELETE CASCADE`,
			`ALTER TABLE post_likes ADD CONSTRAINT fk_post_likes_post
				FOREIGN KEY (post_id) REFERENCES posts (id) ON DELETE CASCADE`,
			`ALTER TABLE comments ADD CONSTRAINT fk_comments_post
				FOREIGN KEY (post_id) REFERENCES posts (id) ON DELETE CASCADE`,
			`ALTER TABLE posts ADD CONSTRAINT fk_posts_project
				FOREIGN KEY (project_id) REFERENCES projects (id) ON DELETE CASCADE`,
		}

		for _, constraint := range constraints {
			_, err := db.NewRaw(constraint).Exec(ctx)
			if err != nil {
				return fmt.Errorf("failed to add constraint: %w", err)
			}
		}

		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		models := []any{
			(*types.Comment)(nil),
			(*types.PostLike)(nil),
			(*types.PostVote)(nil),
			(*types.Post)(nil),
			(*types.Project)(nil),
			(*types.PointEvent)(nil),
			(*types.User)(nil),
		}

		for _, model := range models {
			_, err := db.NewDropTable().
				Model(model).
				IfExists().
				Exec(ctx)
			if err != nil {
				return fmt.Errorf("failed to drop table for %T: %w", model, err)
			}
		}

		return nil
	})
}

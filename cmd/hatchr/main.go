package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/hatchr/hatchr/internal/setup"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

// CLILogDir specifies where CLI log files are stored.
const CLILogDir = "logs/cli_logs"

func main() {
	if err := run(); err != nil {
		log.Printf("Error: %v", err)
		os.Exit(1)
	}
}

func run() error {
	app := &cli.Command{
		Name:  "hatchr",
		Usage: "Hatchr engagement and scoring tool",
		Commands: []*cli.Command{
			{
				Name:  "trending",
				Usage: "Compute and print the current trending projects",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    "limit",
						Aliases: []string{"l"},
						Value:   0,
						Usage:   "Number of projects to return (0 uses the default)",
					},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					return withApp(ctx, func(ctx context.Context, a *setup.App) error {
						projects, err := a.DB.Service().Trending().Compute(ctx, limitValue(c))
						if err != nil {
							return fmt.Errorf("failed to compute trending projects: %w", err)
						}

						for i, p := range projects {
							a.Logger.Info("Trending project",
								zap.Int("rank", i+1),
								zap.String("projectID", p.ID.String()),
								zap.String("title", p.Title),
								zap.String("owner", p.OwnerUsername),
								zap.Int("score", p.Score),
							)
						}

						return nil
					})
				},
			},
			{
				Name:  "leaderboard",
				Usage: "Print the users with the highest point totals",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    "limit",
						Aliases: []string{"l"},
						Value:   10,
						Usage:   "Number of users to return",
					},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					return withApp(ctx, func(ctx context.Context, a *setup.App) error {
						users, err := a.DB.Service().Points().TopUsers(ctx, limitValue(c))
						if err != nil {
							return fmt.Errorf("failed to get leaderboard: %w", err)
						}

						for i, u := range users {
							a.Logger.Info("Leaderboard entry",
								zap.Int("rank", i+1),
								zap.String("userID", u.ID.String()),
								zap.String("username", u.Username),
								zap.Int64("points", u.TotalPoints),
							)
						}

						return nil
					})
				},
			},
		},
	}

	return app.Run(context.Background(), os.Args)
}

// limitValue reads the limit flag, narrowing the cli int64 to the int the
// services take.
func limitValue(c *cli.Command) int {
	return int(c.Int("limit"))
}

// withApp initializes the application, runs fn, and cleans up afterwards.
func withApp(ctx context.Context, fn func(ctx context.Context, a *setup.App) error) error {
	a, err := setup.InitializeApp(ctx, CLILogDir)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	defer a.Cleanup(ctx)

	return fn(ctx, a)
}

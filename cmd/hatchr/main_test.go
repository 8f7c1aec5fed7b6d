package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

func TestLimitValue(t *testing.T) {
	t.Parallel()

	var got int

	cmd := &cli.Command{
		Name: "t",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "limit",
				Value: 4,
			},
		},
		Action: func(_ context.Context, c *cli.Command) error {
			got = limitValue(c)
			return nil
		},
	}

	require.NoError(t, cmd.Run(t.Context(), []string{"t", "--limit", "7"}))
	assert.Equal(t, 7, got)
}

func TestLimitValueDefault(t *testing.T) {
	t.Parallel()

	var got int

	cmd := &cli.Command{
		Name: "t",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "limit",
				Value: 10,
			},
		},
		Action: func(_ context.Context, c *cli.Command) error {
			got = limitValue(c)
			return nil
		},
	}

	require.NoError(t, cmd.Run(t.Context(), []string{"t"}))
	assert.Equal(t, 10, got)
}

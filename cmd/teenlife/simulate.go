package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/appengine-ltd/teen-life/internal/game"
	"github.com/appengine-ltd/teen-life/internal/ui"
)

func newSimulateCmd(opts *cliOptions) *cobra.Command {
	var days int
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Play days unattended and print the story",
		Long: `Plays the given number of days with random choices and prints every
event, choice outcome and a final stats summary. The same seed always tells
the same story.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if days < 1 {
				return fmt.Errorf("--days must be at least 1, got %d", days)
			}
			return runSimulate(cmd, opts, days)
		},
	}
	cmd.Flags().IntVar(&days, "days", 30, "number of days to play")
	return cmd
}

func runSimulate(cmd *cobra.Command, opts *cliOptions, days int) error {
	out := cmd.OutOrStdout()
	presenter := ui.NewTextPresenter(out)
	session, err := game.NewSession(game.SessionConfig{Seed: opts.cfg.Seed, Logger: opts.logger}, presenter)
	if err != nil {
		return fmt.Errorf("new session: %w", err)
	}
	fmt.Fprintf(out, "Simulating %d days (seed %d)\n", days, session.Seed())

	played, err := session.Simulate(cmd.Context(), days, nil)
	if err != nil {
		return fmt.Errorf("simulate: %w", err)
	}
	opts.logger.Info("simulation finished", zap.String("session", session.ID().String()), zap.Int("days", played))

	if err := session.RequestOverlay(game.OverlayStats); err != nil {
		return fmt.Errorf("summary: %w", err)
	}
	return presenter.Err()
}

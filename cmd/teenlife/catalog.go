package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/appengine-ltd/teen-life/internal/game"
)

func newCatalogCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "Print the built-in events, activities and store as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog := game.DefaultCatalog()
			if err := catalog.Validate(); err != nil {
				return fmt.Errorf("catalog: %w", err)
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(catalog); err != nil {
				return fmt.Errorf("encode catalog: %w", err)
			}
			opts.logger.Debug("catalog printed", zap.Int("events", len(catalog.Events)))
			return enc.Close()
		},
	}
}

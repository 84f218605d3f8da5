package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/appengine-ltd/teen-life/internal/config"
	"github.com/appengine-ltd/teen-life/internal/ui"
)

// cliOptions holds the resolved settings shared by every subcommand.
type cliOptions struct {
	cfg         config.Config
	verbose     bool
	showVersion bool

	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	opts := &cliOptions{}

	root := &cobra.Command{
		Use:   "teenlife",
		Short: "Teen Life - a day-by-day high school life sim",
		Long: `Teen Life puts you in the shoes of a 15 year old. Every day brings an
event with three choices that move your mood, popularity, money, grades and
health. Between events you can do activities or go shopping.

Run without arguments to start the interactive terminal game.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.resolve(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.logger != nil {
				_ = opts.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.showVersion {
				printVersion(cmd.OutOrStdout())
				return nil
			}
			app := ui.NewApp(ui.AppConfig{
				Version:   version,
				Commit:    commit,
				BuildDate: date,
				Seed:      opts.cfg.Seed,
				NoColor:   opts.cfg.NoColor,
				Logger:    opts.logger,
			})
			return app.Run(cmd.Context())
		},
	}

	flags := root.PersistentFlags()
	flags.Int64Var(&opts.cfg.Seed, "seed", 0, "random seed (0 picks one from the clock; or set TEENLIFE_SEED)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	flags.StringVar(&opts.cfg.LogFile, "log-file", "", "write logs to this file (or set TEENLIFE_LOG_FILE)")
	flags.BoolVar(&opts.cfg.NoColor, "no-color", false, "disable colours (or set TEENLIFE_NO_COLOR)")
	root.Flags().BoolVar(&opts.showVersion, "version", false, "print version and exit")

	root.AddCommand(newSimulateCmd(opts))
	root.AddCommand(newCatalogCmd(opts))
	root.AddCommand(newVersionCmd())
	return root
}

// resolve layers environment config under explicitly set flags and builds
// the logger.
func (o *cliOptions) resolve(cmd *cobra.Command) error {
	env, err := config.Load()
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if !flags.Changed("seed") {
		o.cfg.Seed = env.Seed
	}
	if !flags.Changed("log-file") {
		o.cfg.LogFile = env.LogFile
	}
	if !flags.Changed("no-color") {
		o.cfg.NoColor = env.NoColor
	}
	o.cfg.LogLevel = env.LogLevel
	if o.verbose {
		o.cfg.LogLevel = "debug"
	}
	if err := o.cfg.Validate(); err != nil {
		return err
	}

	o.logger, err = buildLogger(o.cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	return nil
}

// buildLogger writes JSON logs to the configured file. The terminal belongs
// to the game, so without a file nothing is logged.
func buildLogger(cfg config.Config) (*zap.Logger, error) {
	if cfg.LogFile == "" {
		return zap.NewNop(), nil
	}
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(level)
	zcfg.OutputPaths = []string{cfg.LogFile}
	zcfg.ErrorOutputPaths = []string{cfg.LogFile}
	return zcfg.Build()
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printVersion(cmd.OutOrStdout())
			return nil
		},
	}
}

func printVersion(w io.Writer) {
	fmt.Fprintf(w, "Teen Life %s (%s) %s\n", version, commit, date)
}

package main

import (
	"github.com/spf13/cobra"

	"github.com/coolstat/coolstat/internal/app"
	"github.com/coolstat/coolstat/internal/config"
	"github.com/coolstat/coolstat/internal/platform/logging"
)

var (
	flagDB       string
	flagLogLevel string
	flagJSON     bool
	flagDemo     bool
)

var rootCmd = &cobra.Command{
	Use:   "coolstat",
	Short: "Football match-event analytics",
	Long: `Ingest per-competition CSV extracts of StatsBomb-style match events and
query them: competitions, matches, team sheets, pass breakdowns, shot
maps, pass networks, and pass-origin heatmaps.

Tables go to stdout and logs to stderr; --json switches the output to
JSON for machine consumers.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "path to the SQLite database (default $DB_PATH, else coolstat.db)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "emit JSON instead of tables")
	rootCmd.PersistentFlags().BoolVar(&flagDemo, "demo", false, "serve the built-in demo match instead of the database")

	rootCmd.AddCommand(
		ingestCmd,
		migrateCmd,
		competitionsCmd,
		matchesCmd,
		lineupCmd,
		passesCmd,
		shotsCmd,
		networkCmd,
		heatmapCmd,
		reportCmd,
	)
}

// newApp builds the container for one invocation. Flags win over the
// environment.
func newApp() (*app.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if flagDB != "" {
		cfg.DBPath = flagDB
	}
	if flagLogLevel != "" {
		cfg.LogLevel = logging.ParseLevel(flagLogLevel)
	}

	logger := newLogger(cfg).With(
		"service", cfg.ServiceName,
		"version", cfg.ServiceVersion,
	)
	logging.SetDefault(logger)

	return app.New(cfg, logger, app.Options{Demo: flagDemo})
}

// newLogger picks the encoder for the environment: JSON in prod for
// log collection, console otherwise. Both write to stderr.
func newLogger(cfg config.Config) *logging.Logger {
	if cfg.AppEnv == config.EnvProd {
		return logging.NewJSON(cfg.LogLevel)
	}
	return logging.NewConsole(cfg.LogLevel)
}

// boolOverride returns the flag's value when it was set on the command
// line, nil otherwise, so the configured policy default applies.
func boolOverride(cmd *cobra.Command, name string) *bool {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, err := cmd.Flags().GetBool(name)
	if err != nil {
		return nil
	}
	return &v
}

package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/yigit/examdesk/internal/app/repositories"
	"github.com/yigit/examdesk/internal/bootstrap"
	"github.com/yigit/examdesk/internal/config"
	"github.com/yigit/examdesk/internal/db"
)

// newRootCommand builds the command tree. Tests get a fresh tree per case.
func newRootCommand() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:   "examctl",
		Short: "Examdesk administration tool",
		Long: `examctl runs the examdesk API server and its maintenance tasks.

Examples:
  # Start the HTTP server
  examctl serve

  # Apply pending migrations
  examctl migrate up

  # Create the reference streams, subjects, rooms and default admin
  examctl seed

  # Create an additional admin account
  examctl create-admin --email boss@example.com --name "Exam Office" --password s3cret`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", bootstrap.DefaultConfigPath, "path to the YAML configuration file")

	root.AddCommand(newServeCommand(&configPath))
	root.AddCommand(newMigrateCommand(&configPath))
	root.AddCommand(newSeedCommand(&configPath))
	root.AddCommand(newCreateAdminCommand(&configPath))
	return root
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// session bundles what the database-backed subcommands share.
type session struct {
	cfg      *config.Config
	logger   zerolog.Logger
	database *db.PostgresDB
	repos    *repositories.Repositories
}

func openSession(ctx context.Context, configPath string) (*session, error) {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(configPath)
	if err != nil {
		return nil, err
	}

	database, err := bootstrap.SetupDatabase(ctx, cfg, lgr)
	if err != nil {
		return nil, err
	}

	return &session{
		cfg:      cfg,
		logger:   lgr,
		database: database,
		repos:    repositories.NewRepositories(database),
	}, nil
}

func (s *session) Close() {
	s.database.Close()
}

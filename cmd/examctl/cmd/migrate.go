package cmd

import (
	"github.com/spf13/cobra"

	"github.com/yigit/examdesk/internal/app/migrations"
	"github.com/yigit/examdesk/internal/bootstrap"
)

func newMigrateCommand(configPath *string) *cobra.Command {
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}

	upCmd := &cobra.Command{
		Use:   "up",
		Short: "Apply every pending migration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			migrator, err := newMigrator(*configPath)
			if err != nil {
				return err
			}
			return migrator.Up()
		},
	}

	var steps int
	downCmd := &cobra.Command{
		Use:   "down",
		Short: "Roll back migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			migrator, err := newMigrator(*configPath)
			if err != nil {
				return err
			}
			return migrator.Down(steps)
		},
	}
	downCmd.Flags().IntVar(&steps, "steps", 1, "number of migrations to roll back")

	migrateCmd.AddCommand(upCmd, downCmd)
	return migrateCmd
}

func newMigrator(configPath string) (*migrations.Migrator, error) {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(configPath)
	if err != nil {
		return nil, err
	}
	return migrations.NewMigrator(cfg.GetPostgresConnectionString(), lgr), nil
}

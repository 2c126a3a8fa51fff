package cmd

import (
	"github.com/spf13/cobra"

	"github.com/yigit/examdesk/internal/bootstrap"
	"github.com/yigit/examdesk/internal/pkg/auth"
)

func newSeedCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Create missing streams, subjects, rooms and the default admin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd.Context(), *configPath)
			if err != nil {
				return err
			}
			defer s.Close()

			return bootstrap.NewSeeder(s.cfg, s.repos, auth.NewBcryptHasher(), s.logger).Run(cmd.Context())
		},
	}
}

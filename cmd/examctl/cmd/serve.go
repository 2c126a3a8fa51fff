package cmd

import (
	"github.com/spf13/cobra"

	"github.com/yigit/examdesk/internal/server"
)

func newServeCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Long: `Start the HTTP server: migrate the schema, seed reference data when
enabled, then serve until SIGINT/SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			srv, err := server.NewServer(cmd.Context(), *configPath)
			if err != nil {
				return err
			}
			return srv.Run(cmd.Context())
		},
	}
}

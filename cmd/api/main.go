package main

import (
	"context"
	"os"

	"github.com/yigit/examdesk/internal/bootstrap"
	"github.com/yigit/examdesk/internal/pkg/logger"
	"github.com/yigit/examdesk/internal/server"
)

// @title Examdesk API
// @version 1.0
// @description Exam scheduling and convocation service.

// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the access token.

func main() {
	ctx := context.Background()
	srv, err := server.NewServer(ctx, bootstrap.DefaultConfigPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(ctx); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}

package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/lenslearn/backend/internal/pkg/logger"
	"github.com/lenslearn/backend/internal/server"
)

func main() {
	// A missing .env is fine; configuration then comes from the
	// environment and configs/config.yaml.
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg("No .env file found, using environment")
	}

	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}

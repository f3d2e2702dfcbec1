package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/emrekaya/folio-gateway/internal/pkg/logger"
	"github.com/emrekaya/folio-gateway/internal/server"
)

// @title Folio Gateway API
// @version 1.0
// @description Gateway for the student ePortfolio platform: organization management, portfolio editors, faculty review, dashboards and PDF export

// @contact.name API Support
// @contact.email support@folio-gateway.dev

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer token issued by the portfolio API

func main() {
	// Load .env if present; real environments set variables directly
	_ = godotenv.Load()

	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Run the server (this blocks until shutdown signal)
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
	os.Exit(0)
}

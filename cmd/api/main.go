package main

import (
	"os"

	"github.com/myurcick/profkomlviv-sub000/internal/pkg/logger"
	"github.com/myurcick/profkomlviv-sub000/internal/server"
)

// @title Profkom Lviv API
// @version 1.0
// @description Backend API for the student union website of Lviv Polytechnic: news, team directory, faculty unions and organizational units.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:5068
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for admin authorization

func main() {
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

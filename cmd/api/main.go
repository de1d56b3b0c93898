package main

import (
	"os"

	"github.com/campusbridge/campusbridge/internal/pkg/logger"
	"github.com/campusbridge/campusbridge/internal/server"
)

// @title CampusBridge API
// @version 1.0
// @description API for the CampusBridge campus social platform

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed")
		os.Exit(1)
	}
}

package main

import (
	"context"
	"flag"
	"os"

	"github.com/bigbinarytech/institute/internal/bootstrap"
	"github.com/bigbinarytech/institute/internal/pkg/logger"
	"github.com/bigbinarytech/institute/internal/server"
)

// @title Big Binary Institute API
// @version 1.0
// @description Public site and admin dashboard API of the Big Binary International Institute

// @contact.name Big Binary Tech
// @contact.url https://bigbinarytech.com
// @contact.email info@bigbinarytech.com

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization

func main() {
	configPath := flag.String("config", bootstrap.DefaultConfigPath, "path to the YAML config file")
	flag.Parse()

	ctx := context.Background()
	srv, err := server.NewServer(ctx, *configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(ctx); err != nil {
		logger.Error().Err(err).Msg("Server stopped with an error")
		os.Exit(1)
	}

	logger.Info().Msg("Bye")
}

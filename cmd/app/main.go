package main

import (
	"conectapro/config"
	"conectapro/di"
	"conectapro/helper"
	"conectapro/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title Conecta Pro API
// @version 1.0
// @description Marketplace backend connecting clients with home-service providers.
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the access token.

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	cfg := config.Get()

	logger.InitLogger()
	logger.Configure(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to run database migrations")
		}
	}

	http := di.InitializeService()
	http.Serve()
}

package main

import (
	"log"

	"go.uber.org/zap"

	"rating-catalog/cmd"
	"rating-catalog/internal/data/repository"
	"rating-catalog/internal/snapshot"
	"rating-catalog/internal/wire"
	"rating-catalog/pkg/database"
	"rating-catalog/pkg/utils"
)

func main() {
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	if config.Admin.Email == "" {
		logger.Warn("No admin email configured; all write endpoints will reject")
	}

	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	repos := repository.NewRepository(db, logger)
	hub := snapshot.NewHub(logger)

	app := wire.Wiring(repos, config, hub, logger)

	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}

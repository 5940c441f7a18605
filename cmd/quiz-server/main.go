package main

import (
	"log"

	"github.com/danielbohnn/quizcode/internal/config"
	"github.com/danielbohnn/quizcode/internal/httpapi"
	"github.com/danielbohnn/quizcode/internal/repository"
	"github.com/danielbohnn/quizcode/internal/service"
	"github.com/danielbohnn/quizcode/internal/storage/db"

	"go.uber.org/zap"
)

func setupLogger(env string) *zap.Logger {
	var logger *zap.Logger
	if env == "development" {
		logger, _ = zap.NewDevelopment()
	} else {
		logger, _ = zap.NewProduction()
	}
	return logger
}

func main() {
	cfg, err := config.Init()
	if err != nil {
		log.Fatal("failed load config " + err.Error())
		return
	}

	logger := setupLogger(cfg.Env)

	database, err := db.InitDB(cfg.DB)
	if err != nil {
		logger.Fatal("failed init db", zap.Error(err))
	}

	if err := db.Migrate(database); err != nil {
		logger.Fatal("failed migrate db", zap.Error(err))
	}
	if err := db.Seed(database); err != nil {
		logger.Fatal("failed seed db", zap.Error(err))
	}

	repos := repository.NewRepository(database)
	services := service.InitServices(repos, logger)

	handlers := httpapi.NewQuizHandlers(services, cfg.App.SessionSize, logger)
	app := httpapi.NewApp(handlers)

	logger.Info("starting http server", zap.String("port", cfg.HTTP.Port))
	if err := app.Listen(":" + cfg.HTTP.Port); err != nil {
		logger.Fatal("http server stopped", zap.Error(err))
	}
}

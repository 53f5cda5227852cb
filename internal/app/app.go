package app

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"modella_backend/internal/config"
	"modella_backend/internal/database"
	"modella_backend/internal/handlers"
	"modella_backend/internal/logger"
	"modella_backend/internal/routes"
	"modella_backend/internal/services"
)

// Run собирает приложение и запускает HTTP-сервер.
func Run() error {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)

	db, err := database.ConnectPostgres(cfg.Database.DSN)
	if err != nil {
		return fmt.Errorf("postgres: %w", err)
	}

	mongo, err := database.ConnectMongo(cfg.Mongo.URI, cfg.Mongo.Database)
	if err != nil {
		return fmt.Errorf("mongo: %w", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = mongo.Close(ctx)
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := mongo.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("mongo indexes: %w", err)
	}

	container := services.NewServiceContainer(db, mongo, cfg)
	appHandlers := handlers.NewAppHandlers(container)

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	routes.SetupRoutes(r, appHandlers)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("server starting", "addr", addr, "env", cfg.Server.Env)
	return r.Run(addr)
}

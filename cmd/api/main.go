package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"teamboard/config"
	_ "teamboard/docs" // Swagger docs
	gitrepoRepo "teamboard/internal/gitrepo/repository/postgre"
	"teamboard/internal/gitsync"
	"teamboard/internal/httpserver"
	"teamboard/pkg/log"
	"teamboard/pkg/postgre"
	"teamboard/pkg/scope"
)

// @title       Teamboard API
// @description Project management backend with GitHub/GitLab webhook ingestion and alert fan-out.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Teamboard...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Postgres
	db, err := postgre.Connect(ctx, postgre.Config{
		URL:             cfg.Postgres.URL,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: cfg.Postgres.ConnMaxLifetime,
	})
	if err != nil {
		logger.Error(ctx, "Failed to connect to Postgres: ", err)
		return
	}
	defer db.Close()

	// 4. JWT verifier
	jwtManager := scope.NewJWTManager(cfg.JWT.Secret)

	// 5. Metadata sync worker
	if cfg.Sync.Enabled {
		worker := gitsync.NewWorker(gitrepoRepo.New(db, logger), cfg.Sync.CheckInterval, logger)
		go worker.Run(ctx)
	} else {
		logger.Info(ctx, "Sync worker disabled")
	}

	// 6. HTTP Server
	httpServer, err := httpserver.New(httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		PostgresDB:  db,
		JWTManager:  jwtManager,
		Webhook:     cfg.Webhook,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

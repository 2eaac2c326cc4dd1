package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/taskloop/taskloop-server/internal/api/http/router"
	httpServer "github.com/taskloop/taskloop-server/internal/api/http/server"
	"github.com/taskloop/taskloop-server/internal/config"
	"github.com/taskloop/taskloop-server/internal/logger"
	"github.com/taskloop/taskloop-server/internal/model"
	"github.com/taskloop/taskloop-server/internal/repository/postgres"
	"github.com/taskloop/taskloop-server/internal/service"
	"github.com/taskloop/taskloop-server/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN, cfg.Database.QueryTimeout)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	userRepo := postgres.NewUserRepository(db)
	todoRepo := postgres.NewTodoRepository(db)
	tokenManager := token.NewJWT(cfg.JWT.Secret, cfg.JWT.TTL)

	var seeder service.TodoSeeder
	if cfg.Seed.Enabled {
		seeder = service.NewSeeder(todoRepo, cfg.Seed.Count, logger)
	}

	authService := service.NewAuth(userRepo, tokenManager, seeder, logger)
	todoService := service.NewTodo(todoRepo, logger)

	r := router.New(authService, todoService, tokenManager, db, cfg.HTTP.CORSOrigins, logger)
	srv := httpServer.NewHTTPServer(r.Register(), fmt.Sprintf(":%s", cfg.HTTP.Port))

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address())
		if err := s.Start(); err != nil {
			logger.Error("failed to start server", "error", err)
		}
	}(srv)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", srv.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}

package server

import (
	"context"
	"fmt"

	"interview-planner/core/config"
	"interview-planner/core/constants"
	"interview-planner/core/docstore"
	"interview-planner/core/logger"
	"interview-planner/core/middleware"
	"interview-planner/modules/booking"
	"interview-planner/modules/report"
	"interview-planner/modules/session"

	"github.com/hibiken/asynq"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// Run wires the whole service: config, logging, document backend, modules
// and (optionally) the background worker, then blocks serving HTTP.
func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(cfg.Log.Level, cfg.Server.Env)
	defer logger.Sync()

	backend, err := docstore.NewBackend(cfg)
	if err != nil {
		return fmt.Errorf("failed to build document backend: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())

	mw := middleware.NewMiddleware(cfg)
	e.Use(mw.RequestID())

	sessionSvc := session.Init(e, backend)
	booking.Init(e, backend, sessionSvc)

	// Make sure the document skeleton exists before serving traffic.
	ctx, cancel := context.WithTimeout(context.Background(), constants.DefaultRequestTimeout)
	initResult, appErr := sessionSvc.InitializeDocument(ctx)
	cancel()
	if appErr != nil {
		return fmt.Errorf("failed to initialize document: %w", appErr)
	}
	logger.Info("Server:DocumentReady", "created", initResult.Created)

	redisOpt := asynq.RedisClientOpt{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}
	queue := asynq.NewClient(redisOpt)
	defer queue.Close()

	mux := asynq.NewServeMux()
	if _, err := report.Init(e, sessionSvc, queue, mux); err != nil {
		return fmt.Errorf("failed to initialize report module: %w", err)
	}

	if cfg.Worker.Enabled {
		worker := asynq.NewServer(redisOpt, asynq.Config{
			Concurrency: cfg.Worker.Concurrency,
		})
		go func() {
			if err := worker.Run(mux); err != nil {
				logger.Error("Server:Worker", "error", err)
			}
		}()
		logger.Info("Server:WorkerStarted", "concurrency", cfg.Worker.Concurrency)
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server:Listening",
		"addr", addr,
		"env", cfg.Server.Env,
		"storage_backend", cfg.Storage.Backend,
	)
	return e.Start(addr)
}

package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"daykeeper/internal/config"
	"daykeeper/internal/handler"
	"daykeeper/internal/httpserver"
	"daykeeper/internal/repository"
	"daykeeper/internal/service/interpreter"
	"daykeeper/internal/service/reply"
	"daykeeper/internal/service/speech"
	"daykeeper/pkg/db"
	"daykeeper/pkg/logger"
	"daykeeper/pkg/redis"
)

func main() {
	cfg := config.Load()

	log := logger.NewLogger()
	defer log.Sync()

	log.Info("Starting daykeeper...",
		zap.String("port", cfg.Server.Port),
		zap.String("db_host", cfg.DB.Host),
		zap.Int("db_port", cfg.DB.Port),
	)

	// DB
	log.Info("Initializing database connection...")
	dbConn, err := db.NewConnection(cfg.DB, log)
	if err != nil {
		log.Fatal("Failed to init DB", zap.Error(err))
	}
	defer dbConn.Close()
	log.Info("Database connection established successfully")

	if err := repository.EnsureSchema(context.Background(), dbConn, log); err != nil {
		log.Fatal("Failed to ensure schema", zap.Error(err))
	}

	// Redis is optional; a nil client disables the motivation cache.
	cache := redis.NewClient(cfg.Redis)
	if cache != nil {
		defer cache.Close()
	}

	// Repositories
	habitRepo := repository.NewHabitRepository(dbConn, log)
	taskRepo := repository.NewTaskRepository(dbConn, log)

	// Services
	replyGen := reply.NewGenerator(cfg.Ollama, cache, log)
	transcriber := speech.NewTranscriber(cfg.Speech, log)
	conv := interpreter.New(habitRepo, taskRepo, replyGen, log)

	// Handlers
	habitHandler := handler.NewHabitHandler(habitRepo, log)
	taskHandler := handler.NewTaskHandler(taskRepo, log)
	assistantHandler := handler.NewAssistantHandler(conv, replyGen, transcriber, log)

	// HTTP Server
	log.Info("Initializing HTTP server...", zap.String("port", cfg.Server.Port))
	router := httpserver.NewRouter(habitHandler, taskHandler, assistantHandler, cfg.Auth, log, dbConn)
	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	go func() {
		log.Info("HTTP server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	log.Info("daykeeper is fully initialized and running")

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down daykeeper gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", zap.Error(err))
	} else {
		log.Info("HTTP server stopped")
	}

	log.Info("daykeeper shutdown complete")
}

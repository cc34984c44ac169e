package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"daykeeper/internal/handler"
	"daykeeper/pkg/config"
)

func NewRouter(
	habitHandler *handler.HabitHandler,
	taskHandler *handler.TaskHandler,
	assistantHandler *handler.AssistantHandler,
	authCfg config.AuthConfig,
	logger *zap.Logger,
	db *pgxpool.Pool,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger(logger))

	// Health endpoints stay outside auth.
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.HEAD("/healthz", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	r.GET("/readyz", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c, 1*time.Second)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"status": "db_not_ready", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	if authCfg.PasswordHash != "" {
		api.Use(BasicAuth(authCfg))
	}

	api.GET("/habits", habitHandler.Habits)
	api.POST("/habits", habitHandler.Habits)
	api.POST("/habits/new", habitHandler.New)
	api.POST("/habits/color", habitHandler.Color)
	api.POST("/habits/rename", habitHandler.Rename)
	api.POST("/habits/delete", habitHandler.Delete)

	api.GET("/tasks", taskHandler.List)
	api.POST("/tasks", taskHandler.Create)
	api.PUT("/tasks/:id/complete", taskHandler.Complete)
	api.DELETE("/tasks/:id", taskHandler.Delete)

	api.GET("/motivation", assistantHandler.Motivation)
	api.POST("/chat", assistantHandler.Chat)
	api.POST("/voice", assistantHandler.Voice)

	return r
}

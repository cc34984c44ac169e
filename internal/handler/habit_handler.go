package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"daykeeper/internal/model"
)

// HabitStore is the habit persistence surface the HTTP layer needs.
type HabitStore interface {
	List(ctx context.Context) (map[string]model.HabitDetail, error)
	ToggleDate(ctx context.Context, name, date string) error
	Add(ctx context.Context, name string) error
	UpdateColor(ctx context.Context, name, color string) error
	Rename(ctx context.Context, oldName, newName string) error
	Delete(ctx context.Context, name string) error
}

type HabitHandler struct {
	store  HabitStore
	logger *zap.Logger
}

func NewHabitHandler(store HabitStore, logger *zap.Logger) *HabitHandler {
	return &HabitHandler{store: store, logger: logger}
}

// Habits handles GET and POST /api/habits. A POST body {habit, date}
// toggles that date's flag, creating the habit when needed; both methods
// answer with the full habit mapping.
func (h *HabitHandler) Habits(c *gin.Context) {
	if c.Request.Method == http.MethodPost {
		var req struct {
			Habit string `json:"habit"`
			Date  string `json:"date"`
		}
		if err := c.ShouldBindJSON(&req); err != nil || req.Habit == "" || req.Date == "" {
			h.logger.Warn("Toggle habit: habit and date are required")
			c.JSON(http.StatusBadRequest, gin.H{"error": "habit and date required"})
			return
		}

		if err := h.store.ToggleDate(c.Request.Context(), req.Habit, req.Date); err != nil {
			h.logger.Error("Toggle habit failed",
				zap.Error(err),
				zap.String("habit", req.Habit),
			)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update habit"})
			return
		}
	}

	h.respondHabits(c)
}

// New handles POST /api/habits/new.
func (h *HabitHandler) New(c *gin.Context) {
	var req struct {
		Habit string `json:"habit"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Habit == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "habit required"})
		return
	}

	if err := h.store.Add(c.Request.Context(), req.Habit); err != nil {
		h.logger.Error("Add habit failed", zap.Error(err), zap.String("habit", req.Habit))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add habit"})
		return
	}

	h.respondHabits(c)
}

// Color handles POST /api/habits/color.
func (h *HabitHandler) Color(c *gin.Context) {
	var req struct {
		Habit string `json:"habit"`
		Color string `json:"color"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Habit == "" || req.Color == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "habit and color required"})
		return
	}

	if err := h.store.UpdateColor(c.Request.Context(), req.Habit, req.Color); err != nil {
		h.logger.Error("Update habit color failed", zap.Error(err), zap.String("habit", req.Habit))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update color"})
		return
	}

	h.respondHabits(c)
}

// Rename handles POST /api/habits/rename.
func (h *HabitHandler) Rename(c *gin.Context) {
	var req struct {
		Old string `json:"old"`
		New string `json:"new"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Old == "" || req.New == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "old and new required"})
		return
	}

	if err := h.store.Rename(c.Request.Context(), req.Old, req.New); err != nil {
		h.logger.Error("Rename habit failed",
			zap.Error(err),
			zap.String("old", req.Old),
			zap.String("new", req.New),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to rename habit"})
		return
	}

	h.respondHabits(c)
}

// Delete handles POST /api/habits/delete.
func (h *HabitHandler) Delete(c *gin.Context) {
	var req struct {
		Habit string `json:"habit"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Habit == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "habit required"})
		return
	}

	if err := h.store.Delete(c.Request.Context(), req.Habit); err != nil {
		h.logger.Error("Delete habit failed", zap.Error(err), zap.String("habit", req.Habit))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete habit"})
		return
	}

	h.respondHabits(c)
}

func (h *HabitHandler) respondHabits(c *gin.Context) {
	habits, err := h.store.List(c.Request.Context())
	if err != nil {
		h.logger.Error("List habits failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch habits"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"habits": habits})
}

package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"daykeeper/internal/model"
)

// TaskStore is the task persistence surface the HTTP layer needs.
type TaskStore interface {
	List(ctx context.Context) ([]model.Task, error)
	Insert(ctx context.Context, t *model.Task) (int, error)
	MarkCompleted(ctx context.Context, taskID int) error
	Delete(ctx context.Context, taskID int) error
}

type TaskHandler struct {
	store  TaskStore
	logger *zap.Logger
}

func NewTaskHandler(store TaskStore, logger *zap.Logger) *TaskHandler {
	return &TaskHandler{store: store, logger: logger}
}

// List handles GET /api/tasks. Tasks come back high priority first, newest
// first within a priority.
func (h *TaskHandler) List(c *gin.Context) {
	tasks, err := h.store.List(c.Request.Context())
	if err != nil {
		h.logger.Error("ListTasks: failed to fetch tasks", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	h.logger.Info("ListTasks: success", zap.Int("task_count", len(tasks)))
	c.JSON(http.StatusOK, gin.H{"success": true, "tasks": tasks})
}

// Create handles POST /api/tasks. Title is required; priority and category
// default to medium/other, createdAt to the server clock.
func (h *TaskHandler) Create(c *gin.Context) {
	var req struct {
		Title       string  `json:"title"`
		Description string  `json:"description"`
		Priority    string  `json:"priority"`
		Category    string  `json:"category"`
		DueDate     *string `json:"dueDate"`
		CreatedAt   string  `json:"createdAt"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request body"})
		return
	}
	if req.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "title is required"})
		return
	}

	if req.Priority == "" {
		req.Priority = model.PriorityMedium
	}
	if req.Category == "" {
		req.Category = model.CategoryOther
	}
	if req.CreatedAt == "" {
		req.CreatedAt = time.Now().Format(time.RFC3339)
	}

	task := &model.Task{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Category:    req.Category,
		DueDate:     req.DueDate,
		CreatedAt:   req.CreatedAt,
	}

	id, err := h.store.Insert(c.Request.Context(), task)
	if err != nil {
		h.logger.Error("CreateTask: failed to insert task",
			zap.Error(err),
			zap.String("title", req.Title),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	h.logger.Info("CreateTask: success",
		zap.Int("task_id", id),
		zap.String("title", req.Title),
	)
	c.JSON(http.StatusOK, gin.H{"success": true, "task_id": id})
}

// Complete handles PUT /api/tasks/:id/complete.
func (h *TaskHandler) Complete(c *gin.Context) {
	taskID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		h.logger.Warn("CompleteTask: invalid task id",
			zap.String("task_id", c.Param("id")),
			zap.Error(err),
		)
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid task id"})
		return
	}

	if err := h.store.MarkCompleted(c.Request.Context(), taskID); err != nil {
		h.logger.Error("CompleteTask: failed to mark task as completed",
			zap.Error(err),
			zap.Int("task_id", taskID),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	h.logger.Info("CompleteTask: success", zap.Int("task_id", taskID))
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Delete handles DELETE /api/tasks/:id. Deleting an id that does not exist
// still succeeds; there is deliberately no existence check.
func (h *TaskHandler) Delete(c *gin.Context) {
	taskID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid task id"})
		return
	}

	if err := h.store.Delete(c.Request.Context(), taskID); err != nil {
		h.logger.Error("DeleteTask: failed to delete task",
			zap.Error(err),
			zap.Int("task_id", taskID),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	h.logger.Info("DeleteTask: success", zap.Int("task_id", taskID))
	c.JSON(http.StatusOK, gin.H{"success": true})
}

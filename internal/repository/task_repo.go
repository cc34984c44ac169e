package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"daykeeper/internal/model"
	"daykeeper/pkg/metrics"
)

type TaskRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewTaskRepository(db *pgxpool.Pool, logger *zap.Logger) *TaskRepository {
	return &TaskRepository{db: db, logger: logger}
}

// List returns every task, high priority first, then medium, then low, and
// newest-created first within equal priority.
func (r *TaskRepository) List(ctx context.Context) ([]model.Task, error) {
	r.logger.Debug("Listing tasks")
	start := time.Now()

	query := `
        SELECT id, title, description, priority, category, due_date, completed, created_at
        FROM tasks
        ORDER BY
            CASE priority WHEN 'high' THEN 1 WHEN 'medium' THEN 2 ELSE 3 END,
            created_at DESC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.logger.Error("Failed to query tasks", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	tasks := []model.Task{}
	for rows.Next() {
		var t model.Task
		if err := rows.Scan(
			&t.ID,
			&t.Title,
			&t.Description,
			&t.Priority,
			&t.Category,
			&t.DueDate,
			&t.Completed,
			&t.CreatedAt,
		); err != nil {
			r.logger.Error("Failed to scan task row", zap.Error(err))
			return nil, err
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("Failed to iterate task rows", zap.Error(err))
		return nil, err
	}

	metrics.RecordDBQueryDuration("list", "tasks", time.Since(start))
	r.logger.Info("Tasks listed successfully", zap.Int("count", len(tasks)))
	return tasks, nil
}

// Insert stores a new task and returns its id.
func (r *TaskRepository) Insert(ctx context.Context, t *model.Task) (int, error) {
	r.logger.Debug("Inserting task",
		zap.String("title", t.Title),
		zap.String("priority", t.Priority),
		zap.String("category", t.Category),
	)
	start := time.Now()

	query := `
        INSERT INTO tasks (title, description, priority, category, due_date, completed, created_at)
        VALUES ($1, $2, $3, $4, $5, FALSE, $6)
        RETURNING id
    `
	var id int
	err := r.db.QueryRow(ctx, query,
		t.Title,
		t.Description,
		t.Priority,
		t.Category,
		t.DueDate,
		t.CreatedAt,
	).Scan(&id)
	if err != nil {
		r.logger.Error("Failed to insert task",
			zap.Error(err),
			zap.String("title", t.Title),
		)
		return 0, err
	}

	metrics.RecordDBQueryDuration("insert", "tasks", time.Since(start))
	r.logger.Info("Task inserted successfully",
		zap.Int("task_id", id),
		zap.String("title", t.Title),
	)
	return id, nil
}

// MarkCompleted flags a task as done.
func (r *TaskRepository) MarkCompleted(ctx context.Context, taskID int) error {
	r.logger.Debug("Marking task as completed", zap.Int("task_id", taskID))

	query := `UPDATE tasks SET completed = TRUE WHERE id = $1`
	result, err := r.db.Exec(ctx, query, taskID)
	if err != nil {
		r.logger.Error("Failed to mark task as completed",
			zap.Error(err),
			zap.Int("task_id", taskID),
		)
		return err
	}

	r.logger.Info("Task marked as completed",
		zap.Int("task_id", taskID),
		zap.Int64("rows_affected", result.RowsAffected()),
	)
	return nil
}

// Delete removes a task. Deleting an unknown id is not an error.
func (r *TaskRepository) Delete(ctx context.Context, taskID int) error {
	r.logger.Debug("Deleting task", zap.Int("task_id", taskID))

	query := `DELETE FROM tasks WHERE id = $1`
	result, err := r.db.Exec(ctx, query, taskID)
	if err != nil {
		r.logger.Error("Failed to delete task",
			zap.Error(err),
			zap.Int("task_id", taskID),
		)
		return err
	}

	r.logger.Info("Task deleted",
		zap.Int("task_id", taskID),
		zap.Int64("rows_affected", result.RowsAffected()),
	)
	return nil
}

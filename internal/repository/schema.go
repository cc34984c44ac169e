package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS habits (
		id SERIAL PRIMARY KEY,
		name TEXT UNIQUE NOT NULL,
		color TEXT NOT NULL DEFAULT '#2ecc40'
	)`,
	`CREATE TABLE IF NOT EXISTS habit_dates (
		habit_id INTEGER NOT NULL REFERENCES habits (id) ON DELETE CASCADE,
		date TEXT NOT NULL,
		checked BOOLEAN NOT NULL DEFAULT FALSE,
		PRIMARY KEY (habit_id, date)
	)`,
	`CREATE TABLE IF NOT EXISTS tasks (
		id SERIAL PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		priority TEXT NOT NULL DEFAULT 'medium',
		category TEXT NOT NULL DEFAULT 'other',
		due_date TEXT,
		completed BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TEXT NOT NULL
	)`,
}

// EnsureSchema creates the tables on startup if they do not exist yet.
func EnsureSchema(ctx context.Context, db *pgxpool.Pool, logger *zap.Logger) error {
	logger.Info("Ensuring database schema")
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			logger.Error("Failed to apply schema statement", zap.Error(err))
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	logger.Info("Database schema ready")
	return nil
}

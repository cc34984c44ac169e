package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"daykeeper/internal/model"
	"daykeeper/pkg/metrics"
)

type HabitRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewHabitRepository(db *pgxpool.Pool, logger *zap.Logger) *HabitRepository {
	return &HabitRepository{
		db:     db,
		logger: logger,
	}
}

// List returns every habit keyed by name, with its color and per-date
// checked flags.
func (r *HabitRepository) List(ctx context.Context) (map[string]model.HabitDetail, error) {
	r.logger.Debug("Listing habits")
	start := time.Now()

	query := `
        SELECT h.name, h.color, d.date, d.checked
        FROM habits h
        LEFT JOIN habit_dates d ON d.habit_id = h.id
        ORDER BY h.name
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.logger.Error("Failed to list habits", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	habits := make(map[string]model.HabitDetail)
	for rows.Next() {
		var (
			name    string
			color   string
			date    *string
			checked *bool
		)
		if err := rows.Scan(&name, &color, &date, &checked); err != nil {
			r.logger.Error("Failed to scan habit row", zap.Error(err))
			return nil, err
		}
		detail, ok := habits[name]
		if !ok {
			detail = model.HabitDetail{Dates: make(map[string]bool), Color: color}
		}
		if date != nil && checked != nil {
			detail.Dates[*date] = *checked
		}
		habits[name] = detail
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("Failed to iterate habit rows", zap.Error(err))
		return nil, err
	}

	metrics.RecordDBQueryDuration("list", "habits", time.Since(start))
	r.logger.Debug("Listed habits", zap.Int("count", len(habits)))
	return habits, nil
}

// ToggleDate flips the checked flag for (habit, date), creating both the
// habit and the date row when absent. A date seen for the first time starts
// checked.
func (r *HabitRepository) ToggleDate(ctx context.Context, name, date string) error {
	r.logger.Debug("Toggling habit date",
		zap.String("habit", name),
		zap.String("date", date),
	)
	start := time.Now()

	habitID, err := r.ensureHabit(ctx, name)
	if err != nil {
		return err
	}

	query := `
        INSERT INTO habit_dates (habit_id, date, checked)
        VALUES ($1, $2, TRUE)
        ON CONFLICT (habit_id, date)
        DO UPDATE SET checked = NOT habit_dates.checked
    `
	if _, err := r.db.Exec(ctx, query, habitID, date); err != nil {
		r.logger.Error("Failed to toggle habit date",
			zap.Error(err),
			zap.String("habit", name),
			zap.String("date", date),
		)
		return err
	}

	metrics.RecordDBQueryDuration("toggle", "habit_dates", time.Since(start))
	r.logger.Info("Habit date toggled",
		zap.String("habit", name),
		zap.String("date", date),
	)
	return nil
}

// Add creates a habit by name. Adding an existing habit is a no-op.
func (r *HabitRepository) Add(ctx context.Context, name string) error {
	r.logger.Debug("Adding habit", zap.String("habit", name))

	query := `INSERT INTO habits (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`
	if _, err := r.db.Exec(ctx, query, name); err != nil {
		r.logger.Error("Failed to add habit", zap.Error(err), zap.String("habit", name))
		return err
	}

	r.logger.Info("Habit added", zap.String("habit", name))
	return nil
}

// UpdateColor sets the display color of a habit.
func (r *HabitRepository) UpdateColor(ctx context.Context, name, color string) error {
	r.logger.Debug("Updating habit color",
		zap.String("habit", name),
		zap.String("color", color),
	)

	query := `UPDATE habits SET color = $1 WHERE name = $2`
	if _, err := r.db.Exec(ctx, query, color, name); err != nil {
		r.logger.Error("Failed to update habit color", zap.Error(err), zap.String("habit", name))
		return err
	}
	return nil
}

// Rename changes a habit's name, keeping its date history.
func (r *HabitRepository) Rename(ctx context.Context, oldName, newName string) error {
	r.logger.Debug("Renaming habit",
		zap.String("old", oldName),
		zap.String("new", newName),
	)

	query := `UPDATE habits SET name = $1 WHERE name = $2`
	if _, err := r.db.Exec(ctx, query, newName, oldName); err != nil {
		r.logger.Error("Failed to rename habit",
			zap.Error(err),
			zap.String("old", oldName),
			zap.String("new", newName),
		)
		return err
	}

	r.logger.Info("Habit renamed", zap.String("old", oldName), zap.String("new", newName))
	return nil
}

// Delete removes a habit and, via the cascade, its date rows.
func (r *HabitRepository) Delete(ctx context.Context, name string) error {
	r.logger.Debug("Deleting habit", zap.String("habit", name))

	query := `DELETE FROM habits WHERE name = $1`
	if _, err := r.db.Exec(ctx, query, name); err != nil {
		r.logger.Error("Failed to delete habit", zap.Error(err), zap.String("habit", name))
		return err
	}

	r.logger.Info("Habit deleted", zap.String("habit", name))
	return nil
}

// ensureHabit returns the id of the named habit, inserting it first when it
// does not exist yet.
func (r *HabitRepository) ensureHabit(ctx context.Context, name string) (int, error) {
	query := `
        INSERT INTO habits (name) VALUES ($1)
        ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
        RETURNING id
    `
	var id int
	if err := r.db.QueryRow(ctx, query, name).Scan(&id); err != nil {
		r.logger.Error("Failed to ensure habit", zap.Error(err), zap.String("habit", name))
		return 0, err
	}
	return id, nil
}

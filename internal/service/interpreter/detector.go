package interpreter

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"daykeeper/internal/model"
)

// DetectedItems names the habits and tasks created from one chat message.
type DetectedItems struct {
	Habits []string
	Tasks  []string
}

// Empty reports whether nothing was created.
func (d DetectedItems) Empty() bool {
	return len(d.Habits) == 0 && len(d.Tasks) == 0
}

// DetectAndCreate scans an ordinary chat message for embedded habit and
// task creation phrases. Unlike Interpret, every template is tried against
// the message and each distinct match creates one item; the returned names
// let the caller acknowledge them in the reply. Creation failures are
// logged and skipped, never surfaced.
func (i *Interpreter) DetectAndCreate(ctx context.Context, message string) DetectedItems {
	lower := strings.ToLower(message)
	created := DetectedItems{}
	seen := make(map[string]bool)

	for _, re := range detectHabitPatterns {
		for _, m := range re.FindAllStringSubmatch(lower, -1) {
			name := cleanHabitName(m[1])
			if name == "" || seen["habit:"+name] {
				continue
			}
			seen["habit:"+name] = true

			if err := i.habits.Add(ctx, name); err != nil {
				i.logger.Error("Failed to create detected habit",
					zap.Error(err),
					zap.String("habit", name),
				)
				continue
			}
			i.logger.Info("Habit created from chat message", zap.String("habit", name))
			created.Habits = append(created.Habits, name)
		}
	}

	for _, re := range detectTaskPatterns {
		for _, m := range re.FindAllStringSubmatch(lower, -1) {
			title := titleCase(strings.TrimSpace(m[1]))
			if len(title) <= 2 || seen["task:"+title] {
				continue
			}
			seen["task:"+title] = true

			task := &model.Task{
				Title:     title,
				Priority:  model.PriorityMedium,
				Category:  model.CategoryOther,
				CreatedAt: i.now().Format(time.RFC3339),
			}
			if _, err := i.tasks.Insert(ctx, task); err != nil {
				i.logger.Error("Failed to create detected task",
					zap.Error(err),
					zap.String("title", title),
				)
				continue
			}
			i.logger.Info("Task created from chat message", zap.String("title", title))
			created.Tasks = append(created.Tasks, title)
		}
	}

	return created
}

package interpreter

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"daykeeper/internal/model"
	"daykeeper/pkg/metrics"
)

// Action tags carried on the wire in chat and voice responses.
const (
	ActionTaskUpdated   = "task_updated"
	ActionTaskCreated   = "task_created"
	ActionTaskError     = "task_error"
	ActionTaskInfo      = "task_info"
	ActionHabitUpdated  = "habit_updated"
	ActionHabitNotFound = "habit_not_found"
	ActionHabitCreated  = "habit_created"
	ActionTimeQuery     = "time_query"
	ActionWeatherQuery  = "weather_query"
	ActionSystemCommand = "system_command"
	ActionChat          = "chat"
)

// Outcome is the interpreter's result: the reply to surface, the action tag
// describing which intent was recognized, and optional intent details.
type Outcome struct {
	Reply     string `json:"reply"`
	Action    string `json:"action"`
	TaskAdded string `json:"task_added,omitempty"`
	App       string `json:"app,omitempty"`
}

// HabitStore is the habit persistence capability the interpreter needs.
type HabitStore interface {
	List(ctx context.Context) (map[string]model.HabitDetail, error)
	ToggleDate(ctx context.Context, name, date string) error
	Add(ctx context.Context, name string) error
}

// TaskStore is the task persistence capability the interpreter needs.
type TaskStore interface {
	Insert(ctx context.Context, t *model.Task) (int, error)
}

// Replier produces the conversational fallback when no command matched.
type Replier interface {
	Reply(ctx context.Context, text string) string
}

// Interpreter maps free-text utterances onto habit and task actions. It
// evaluates an ordered cascade of intent matchers; the first match wins and
// later stages never run. That order is part of the contract: reordering
// changes which intent claims ambiguous inputs.
type Interpreter struct {
	habits  HabitStore
	tasks   TaskStore
	replier Replier
	logger  *zap.Logger

	now func() time.Time
}

func New(habits HabitStore, tasks TaskStore, replier Replier, logger *zap.Logger) *Interpreter {
	return &Interpreter{
		habits:  habits,
		tasks:   tasks,
		replier: replier,
		logger:  logger,
		now:     time.Now,
	}
}

// matcher inspects one intent. ok is false when the stage did not match and
// the cascade should continue.
type matcher func(ctx context.Context, lower, original string) (Outcome, bool)

func (i *Interpreter) matchers() []matcher {
	return []matcher{
		i.matchAddTask,
		i.matchCompleteTask,
		i.matchListTasks,
		i.matchPrioritizedTask,
		i.matchCompleteHabit,
		i.matchAddHabit,
		i.matchGeneral,
	}
}

// Interpret classifies text and executes the matched action. It never
// returns an error: persistence failures degrade to an apologetic reply
// naming the attempted action.
func (i *Interpreter) Interpret(ctx context.Context, text string) Outcome {
	lower := strings.ToLower(text)

	for _, m := range i.matchers() {
		if out, ok := m(ctx, lower, text); ok {
			i.logger.Info("Command interpreted",
				zap.String("action", out.Action),
			)
			metrics.IncrementIntent(out.Action)
			return out
		}
	}

	reply := i.replier.Reply(ctx, text)
	metrics.IncrementIntent(ActionChat)
	return Outcome{Reply: reply, Action: ActionChat}
}

// matchAddTask handles plain task/event creation phrasing, with optional
// date extraction.
func (i *Interpreter) matchAddTask(ctx context.Context, lower, original string) (Outcome, bool) {
	matched := false
	for _, re := range addTaskPatterns {
		if re.MatchString(lower) {
			matched = true
			break
		}
	}
	if !matched {
		return Outcome{}, false
	}

	taskText := extractTaskText(original)
	dueDate, datePhrase := extractDate(lower, i.now())
	if datePhrase != "" {
		taskText = removePhrase(taskText, datePhrase)
	}
	if taskText == "" {
		return Outcome{}, false
	}

	title := titleCase(taskText)
	task := &model.Task{
		Title:     title,
		Priority:  inferPriority(taskText, ""),
		Category:  inferCategory(taskText),
		CreatedAt: i.now().Format(time.RFC3339),
	}
	if dueDate != "" {
		task.DueDate = &dueDate
	}

	if _, err := i.tasks.Insert(ctx, task); err != nil {
		i.logger.Error("Failed to create task from command", zap.Error(err))
		return Outcome{
			Reply:  fmt.Sprintf("Sorry, I couldn't save the task '%s' right now. Please try again.", title),
			Action: ActionTaskError,
		}, true
	}

	reply := fmt.Sprintf("I've added '%s' to your tasks", title)
	if dueDate != "" {
		reply += " for " + dueDate
	}
	reply += "."
	return Outcome{Reply: reply, Action: ActionTaskUpdated, TaskAdded: title}, true
}

// matchCompleteTask points the user at manual completion. Task names are
// deliberately not resolved here, unlike habit completion below.
func (i *Interpreter) matchCompleteTask(ctx context.Context, lower, original string) (Outcome, bool) {
	for _, re := range completeTaskPatterns {
		if m := re.FindStringSubmatch(lower); m != nil {
			name := strings.TrimSpace(m[2])
			return Outcome{
				Reply: fmt.Sprintf(
					"Task completion will be available in the tasks page. You can mark '%s' as complete there.",
					name,
				),
				Action: ActionTaskInfo,
			}, true
		}
	}
	return Outcome{}, false
}

func (i *Interpreter) matchListTasks(ctx context.Context, lower, original string) (Outcome, bool) {
	for _, re := range listTasksPatterns {
		if re.MatchString(lower) {
			return Outcome{
				Reply:  "You can view all your tasks on the Tasks page. I can help you add new tasks through voice commands!",
				Action: ActionTaskInfo,
			}, true
		}
	}
	return Outcome{}, false
}

// matchPrioritizedTask handles "add a task called X with high priority"
// phrasing, inferring priority and category from the utterance and title.
func (i *Interpreter) matchPrioritizedTask(ctx context.Context, lower, original string) (Outcome, bool) {
	m := prioritizedTaskPattern.FindStringSubmatch(original)
	if m == nil {
		return Outcome{}, false
	}

	rawTitle, trailingPriority := splitTrailingPriority(strings.TrimSpace(m[3]))
	if rawTitle == "" {
		return Outcome{}, false
	}

	titleLower := strings.ToLower(rawTitle)
	priority := inferPriority(titleLower, trailingPriority)
	category := inferCategory(titleLower)
	title := titleCase(rawTitle)

	task := &model.Task{
		Title:       title,
		Description: fmt.Sprintf("Created via voice command: %q", original),
		Priority:    priority,
		Category:    category,
		CreatedAt:   i.now().Format(time.RFC3339),
	}

	if _, err := i.tasks.Insert(ctx, task); err != nil {
		i.logger.Error("Failed to create prioritized task", zap.Error(err))
		return Outcome{
			Reply: fmt.Sprintf(
				"I understood you want to create the task '%s', but there was an issue saving it. Please try again or add it manually.",
				title,
			),
			Action: ActionTaskError,
		}, true
	}

	return Outcome{
		Reply: fmt.Sprintf(
			"Perfect! I've created a %s priority task: '%s' in your %s category. The task has been added to your task management system.",
			priority, title, category,
		),
		Action:    ActionTaskCreated,
		TaskAdded: title,
	}, true
}

// matchCompleteHabit resolves the spoken name against existing habits by
// case-insensitive substring containment in either direction; the first
// habit found wins. Ambiguity between overlapping names is accepted.
func (i *Interpreter) matchCompleteHabit(ctx context.Context, lower, original string) (Outcome, bool) {
	m := completeHabitPattern.FindStringSubmatch(lower)
	if m == nil {
		return Outcome{}, false
	}
	spoken := strings.TrimSpace(m[4])
	if spoken == "" {
		return Outcome{}, false
	}

	habits, err := i.habits.List(ctx)
	if err != nil {
		i.logger.Error("Failed to list habits for completion", zap.Error(err))
		return Outcome{
			Reply:  fmt.Sprintf("Sorry, I couldn't look up your habits to mark '%s' complete. Please try again.", spoken),
			Action: ActionHabitNotFound,
		}, true
	}

	bestMatch := ""
	for name := range habits {
		nameLower := strings.ToLower(name)
		if strings.Contains(nameLower, spoken) || strings.Contains(spoken, nameLower) {
			bestMatch = name
			break
		}
	}

	if bestMatch == "" {
		return Outcome{
			Reply: fmt.Sprintf(
				"I couldn't find a habit called '%s'. Would you like me to create it as a new habit or perhaps you meant to create a task instead?",
				spoken,
			),
			Action: ActionHabitNotFound,
		}, true
	}

	today := i.now().Format("2006-01-02")
	if err := i.habits.ToggleDate(ctx, bestMatch, today); err != nil {
		i.logger.Error("Failed to mark habit complete", zap.Error(err))
		return Outcome{
			Reply:  fmt.Sprintf("Sorry, I couldn't mark '%s' as complete right now. Please try again.", bestMatch),
			Action: ActionHabitNotFound,
		}, true
	}

	return Outcome{
		Reply: fmt.Sprintf(
			"Excellent work! I've marked '%s' as complete for today. Keep up the great momentum!",
			bestMatch,
		),
		Action: ActionHabitUpdated,
	}, true
}

func (i *Interpreter) matchAddHabit(ctx context.Context, lower, original string) (Outcome, bool) {
	m := addHabitPattern.FindStringSubmatch(lower)
	if m == nil {
		return Outcome{}, false
	}
	name := cleanHabitName(m[4])
	if name == "" {
		return Outcome{}, false
	}

	if err := i.habits.Add(ctx, name); err != nil {
		i.logger.Error("Failed to create habit from command", zap.Error(err))
		return Outcome{
			Reply:  fmt.Sprintf("Sorry, I couldn't save the habit '%s' right now. Please try again.", name),
			Action: ActionHabitNotFound,
		}, true
	}

	return Outcome{
		Reply: fmt.Sprintf(
			"Great choice! I've added '%s' as a new habit to track. Building consistent habits is key to long-term success. Would you like to mark it as complete for today?",
			name,
		),
		Action: ActionHabitCreated,
	}, true
}

// matchGeneral covers time/date queries, the weather placeholder, and
// open-application requests.
func (i *Interpreter) matchGeneral(ctx context.Context, lower, original string) (Outcome, bool) {
	for _, phrase := range timeQueryPhrases {
		if strings.Contains(lower, phrase) {
			now := i.now()
			return Outcome{
				Reply: fmt.Sprintf("It's currently %s on %s.",
					now.Format("03:04 PM"),
					now.Format("Monday, January 02, 2006"),
				),
				Action: ActionTimeQuery,
			}, true
		}
	}

	for _, phrase := range weatherQueryPhrases {
		if strings.Contains(lower, phrase) {
			return Outcome{
				Reply:  "I don't have access to weather data yet, but you can check your local weather app or ask me to add weather integration!",
				Action: ActionWeatherQuery,
			}, true
		}
	}

	for _, phrase := range openCommandPhrases {
		if strings.Contains(lower, phrase) {
			for _, app := range knownApps {
				if strings.Contains(lower, app) {
					return Outcome{
						Reply: fmt.Sprintf(
							"I would open %s for you, but I need permission to control your system. You can manually open %s for now.",
							app, app,
						),
						Action: ActionSystemCommand,
						App:    app,
					}, true
				}
			}
			break
		}
	}

	return Outcome{}, false
}

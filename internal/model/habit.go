package model

// Habit is a named recurring activity tracked by per-date completion flags.
type Habit struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// HabitDetail is the wire shape of one habit in the /api/habits mapping:
// per-date checked flags plus the display color.
type HabitDetail struct {
	Dates map[string]bool `json:"dates"`
	Color string          `json:"color"`
}

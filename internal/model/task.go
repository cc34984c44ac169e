package model

// Task priorities, ordered high before medium before low in listings.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// Task categories. CategoryOther is the default when nothing matches.
const (
	CategoryWork     = "work"
	CategoryHealth   = "health"
	CategoryLearning = "learning"
	CategoryPersonal = "personal"
	CategoryOther    = "other"
)

// Task is a one-time actionable item. DueDate and CreatedAt are ISO date /
// timestamp strings passed through from clients unchanged; DueDate is nil
// when no due date was given.
type Task struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Priority    string  `json:"priority"`
	Category    string  `json:"category"`
	DueDate     *string `json:"dueDate"`
	Completed   bool    `json:"completed"`
	CreatedAt   string  `json:"createdAt"`
}

package interpreter

import "regexp"

// The intent templates below are matched against the lower-cased utterance
// unless noted otherwise. Their grouping into cascade stages, and the order
// of the stages, is load-bearing: see Interpreter.matchers.

// Stage 1: plain task/event creation phrasing.
var addTaskPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(add|create|schedule|plan|set up|make|new)\s+(task|event|appointment|meeting|reminder|todo|item)`),
	regexp.MustCompile(`(remind me to|schedule|plan to|need to|have to|should)\s+(.+)`),
	regexp.MustCompile(`(tomorrow|today|next week|this week|monday|tuesday|wednesday|thursday|friday|saturday|sunday).+(meeting|appointment|call|task|event)`),
}

// Stage 2: explicit task completion. These require the task/todo noun so
// that bare names ("mark yoga as done") fall through to habit completion.
var completeTaskPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(complete|done|finish|finished|mark|check off)\s+(?:the\s+|my\s+)?(?:task|todo)\s+(.+)`),
	regexp.MustCompile(`(completed|did)\s+(?:the\s+|my\s+)?(?:task|todo)\s+(.+)`),
}

// Stage 3: task listing queries.
var listTasksPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(what|show|list|tell me).+(tasks|schedule|todo|events|appointments)`),
	regexp.MustCompile(`(what's|whats).+(on my|my).+(schedule|calendar|todo)`),
	regexp.MustCompile(`(show me|list).+(today|tomorrow|this week|next week)`),
}

// Stage 4: task creation with a free-text title and an optional trailing
// priority word, matched case-insensitively against the original text so
// the title keeps its casing. The remainder is split by
// splitTrailingPriority.
var prioritizedTaskPattern = regexp.MustCompile(
	`(?i)(add|create|make|schedule)\s+(?:a\s+|the\s+|new\s+)*(task|appointment|meeting|reminder|todo)\b\s*(?:called\s+|named\s+|labeled\s+|for\s+|to\s+)?(.+)$`,
)

// trailingPriorityPattern recognizes "... with high priority", "... low",
// and similar suffixes on an extracted title.
var trailingPriorityPattern = regexp.MustCompile(
	`(?i)[\s,]*(?:with\s+)?(high|medium|low|urgent|important)\s*(?:priority)?\s*[.!?"]*$`,
)

// Stage 5: habit completion. The spoken name is resolved against existing
// habits afterwards.
var completeHabitPattern = regexp.MustCompile(
	`(complete|completed|finished|did|mark|check|done)\s+(my\s+|the\s+)?(habit\s+|chore\s+|activity\s+|goal\s+)?(?:called\s+|named\s+)?"?([\w\s]+?)"?\s*(?:as\s+(?:done|complete|completed|finished))?\s*(?:today|now|just now|for today|for the day)?\s*[.?!]?$`,
)

// Stage 6: habit creation.
var addHabitPattern = regexp.MustCompile(
	`(add|create|make|start)\s+((?:a\s+|the\s+|new\s+)*)(habit|routine)\s*(?:called\s+|named\s+|labeled\s+|of\s+|for\s+)?"?([\w\s]+?)"?\s*[.?!]?$`,
)

// Stage 7: general assistant queries.
var (
	timeQueryPhrases    = []string{"what time", "current time", "what day", "what date"}
	weatherQueryPhrases = []string{"weather", "temperature", "forecast"}
	openCommandPhrases  = []string{"open", "launch", "start"}

	knownApps = []string{
		"safari", "chrome", "firefox", "mail", "calendar",
		"notes", "messages", "facetime", "music", "spotify",
	}
)

// Lead-in phrases tried in order when extracting a task title; the captured
// remainder becomes the title.
var taskLeadInPatterns = []*regexp.Regexp{
	regexp.MustCompile(`remind me to (.+)`),
	regexp.MustCompile(`schedule (.+)`),
	regexp.MustCompile(`add (.+) to`),
	regexp.MustCompile(`need to (.+)`),
	regexp.MustCompile(`have to (.+)`),
	regexp.MustCompile(`should (.+)`),
	regexp.MustCompile(`plan to (.+)`),
	regexp.MustCompile(`create (.+) task`),
	regexp.MustCompile(`new (.+) task`),
	regexp.MustCompile(`make (.+) appointment`),
}

// Stop words removed when no lead-in phrase matched.
var taskStopWords = map[string]bool{
	"add": true, "create": true, "schedule": true, "plan": true,
	"make": true, "new": true, "task": true, "event": true,
	"appointment": true, "meeting": true, "reminder": true,
	"todo": true, "agenda": true, "item": true,
}

// habitSuffixPattern strips a trailing "daily"/"every day"/"everyday" from
// habit names.
var habitSuffixPattern = regexp.MustCompile(`(?i)\s*(daily|every day|everyday)\s*$`)

// Proactive detector templates. Unlike the command cascade, every template
// is tried against the whole message and each match creates an item.
var detectHabitPatterns = []*regexp.Regexp{
	regexp.MustCompile(`i (?:want|need) to (?:start|begin|create|add|track) (?:a )?habit (?:called |named |of )?['"]?([^'".,!?]+)['"]?`),
	regexp.MustCompile(`(?:create|add|start|track) (?:a |the )?habit[:\s]+['"]?([^'".,!?]+)['"]?`),
	regexp.MustCompile(`i (?:want to|need to|should) (?:start|begin) (drinking water|exercising|reading|meditation|yoga)`),
	regexp.MustCompile(`help me (?:track|start|create) (?:a )?habit (?:of |for )?['"]?([^'".,!?]+)['"]?`),
	regexp.MustCompile(`i'm (?:starting|beginning) (?:a |the )?habit (?:of |for )?['"]?([^'".,!?]+)['"]?`),
}

var detectTaskPatterns = []*regexp.Regexp{
	regexp.MustCompile(`i need to (?:do|complete|finish|work on) ([^.,!?]+)`),
	regexp.MustCompile(`(?:create|add|make) (?:a |the )?task[:\s]+['"]?([^'".,!?]+)['"]?`),
	regexp.MustCompile(`remind me to ([^.,!?]+)`),
	regexp.MustCompile(`i have to ([^.,!?]+)`),
	regexp.MustCompile(`(?:schedule|plan) ([^.,!?]+)`),
}

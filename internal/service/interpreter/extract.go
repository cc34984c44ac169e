package interpreter

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"daykeeper/internal/model"
)

// extractTaskText pulls the task title out of natural language: first by
// lead-in phrase, then by dropping command stop words when at least three
// tokens survive, finally falling back to the trimmed text itself.
func extractTaskText(text string) string {
	lower := strings.ToLower(text)

	for _, re := range taskLeadInPatterns {
		if m := re.FindStringSubmatch(lower); m != nil {
			return strings.TrimSpace(m[1])
		}
	}

	words := strings.Fields(lower)
	filtered := make([]string, 0, len(words))
	for _, w := range words {
		if !taskStopWords[strings.Trim(w, `.,!?"'`)] {
			filtered = append(filtered, w)
		}
	}
	if len(filtered) >= 3 {
		return strings.Join(filtered, " ")
	}

	return strings.TrimSpace(lower)
}

var weekdays = []string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

// extractDate recognizes relative date expressions and bare weekday names.
// It returns the resolved ISO date and the phrase that produced it, or two
// empty strings when nothing was recognized. Weekday names resolve to the
// next future occurrence (Monday-based week, rolling forward a full week
// when the named day is today or already past).
func extractDate(lower string, now time.Time) (isoDate, phrase string) {
	const iso = "2006-01-02"

	switch {
	case strings.Contains(lower, "tomorrow"):
		return now.AddDate(0, 0, 1).Format(iso), "tomorrow"
	case strings.Contains(lower, "today"):
		return now.Format(iso), "today"
	case strings.Contains(lower, "next week"):
		return now.AddDate(0, 0, 7).Format(iso), "next week"
	case strings.Contains(lower, "this week"):
		return now.Format(iso), "this week"
	}

	weekdayToday := (int(now.Weekday()) + 6) % 7 // Monday = 0
	for i, day := range weekdays {
		if strings.Contains(lower, day) {
			daysAhead := i - weekdayToday
			if daysAhead <= 0 {
				daysAhead += 7
			}
			return now.AddDate(0, 0, daysAhead).Format(iso), day
		}
	}

	return "", ""
}

// trailingFillerWords are dropped from the end of a title after a date
// phrase was removed ("meeting on monday" -> "meeting").
var trailingFillerWords = map[string]bool{
	"on": true, "at": true, "for": true, "by": true, "this": true, "next": true,
}

// removePhrase deletes the first occurrence of phrase from text and tidies
// up the leftover whitespace and dangling prepositions.
func removePhrase(text, phrase string) string {
	cleaned := strings.Replace(text, phrase, "", 1)
	words := strings.Fields(cleaned)
	for len(words) > 0 && trailingFillerWords[words[len(words)-1]] {
		words = words[:len(words)-1]
	}
	return strings.Join(words, " ")
}

// splitTrailingPriority separates an optional trailing priority clause from
// an extracted title: "buy groceries with high priority" -> ("buy
// groceries", "high").
func splitTrailingPriority(remainder string) (title, priority string) {
	loc := trailingPriorityPattern.FindStringSubmatchIndex(remainder)
	if loc == nil {
		return strings.Trim(remainder, ` ."!?`), ""
	}
	title = strings.Trim(remainder[:loc[0]], ` ."!?`)
	priority = strings.ToLower(remainder[loc[2]:loc[3]])
	if title == "" {
		// The whole remainder was a priority word; treat it as the title.
		return strings.Trim(remainder, ` ."!?`), ""
	}
	return title, priority
}

func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}

// cleanHabitName trims, strips a trailing daily/every day/everyday suffix,
// and title-cases a habit name. Names of two characters or fewer are
// rejected as noise.
func cleanHabitName(raw string) string {
	name := habitSuffixPattern.ReplaceAllString(strings.TrimSpace(raw), "")
	name = titleCase(strings.TrimSpace(name))
	if len(name) <= 2 {
		return ""
	}
	return name
}

var highPriorityKeywords = []string{"urgent", "asap", "important", "critical", "deadline"}
var lowPriorityKeywords = []string{"someday", "maybe", "eventually", "when possible"}

// inferPriority resolves a task's priority: the explicit trailing word
// first, then unconditionally overridden by urgency keywords found in the
// title itself.
func inferPriority(titleLower, trailingWord string) string {
	priority := model.PriorityMedium
	switch trailingWord {
	case "high", "urgent", "important":
		priority = model.PriorityHigh
	case "low":
		priority = model.PriorityLow
	}

	for _, kw := range highPriorityKeywords {
		if strings.Contains(titleLower, kw) {
			return model.PriorityHigh
		}
	}
	for _, kw := range lowPriorityKeywords {
		if strings.Contains(titleLower, kw) {
			return model.PriorityLow
		}
	}
	return priority
}

// categoryKeywords is scanned in order; the first set with a keyword in the
// title wins.
var categoryKeywords = []struct {
	category string
	keywords []string
}{
	{model.CategoryWork, []string{"meeting", "call", "email", "project", "work", "office"}},
	{model.CategoryHealth, []string{"exercise", "gym", "doctor", "health", "workout"}},
	{model.CategoryLearning, []string{"learn", "study", "read", "course", "training"}},
	{model.CategoryPersonal, []string{"family", "friend", "personal", "home", "shopping"}},
}

func inferCategory(titleLower string) string {
	for _, set := range categoryKeywords {
		for _, kw := range set.keywords {
			if strings.Contains(titleLower, kw) {
				return set.category
			}
		}
	}
	return model.CategoryOther
}

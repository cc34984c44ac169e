package interpreter

import (
	"testing"
	"time"

	"daykeeper/internal/model"
)

// Wednesday, so weekday resolution has both future and past day names to
// work with.
var fixedNow = time.Date(2025, 3, 12, 14, 30, 0, 0, time.UTC)

func TestExtractTaskText(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "lead-in phrase",
			text: "Remind me to buy milk",
			want: "buy milk",
		},
		{
			name: "have to lead-in",
			text: "I have to wash the car",
			want: "wash the car",
		},
		{
			name: "schedule lead-in",
			text: "Schedule the quarterly review",
			want: "the quarterly review",
		},
		{
			name: "stop words removed",
			text: "add task buy milk from store",
			want: "buy milk from store",
		},
		{
			name: "too few words after filtering falls back to full text",
			text: "new task gym",
			want: "new task gym",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractTaskText(tt.text); got != tt.want {
				t.Errorf("extractTaskText(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestExtractDate(t *testing.T) {
	tests := []struct {
		text       string
		wantDate   string
		wantPhrase string
	}{
		{"call the dentist tomorrow", "2025-03-13", "tomorrow"},
		{"do it today", "2025-03-12", "today"},
		{"plan the trip next week", "2025-03-19", "next week"},
		{"sometime this week", "2025-03-12", "this week"},
		{"meeting on friday", "2025-03-14", "friday"},
		// Monday is already past this week, so it rolls to the next one.
		{"meeting on monday", "2025-03-17", "monday"},
		// A day name matching today rolls a full week forward.
		{"meeting on wednesday", "2025-03-19", "wednesday"},
		{"call the dentist", "", ""},
	}

	for _, tt := range tests {
		gotDate, gotPhrase := extractDate(tt.text, fixedNow)
		if gotDate != tt.wantDate || gotPhrase != tt.wantPhrase {
			t.Errorf("extractDate(%q) = (%q, %q), want (%q, %q)",
				tt.text, gotDate, gotPhrase, tt.wantDate, tt.wantPhrase)
		}
	}
}

func TestRemovePhrase(t *testing.T) {
	tests := []struct {
		text   string
		phrase string
		want   string
	}{
		{"call the dentist tomorrow", "tomorrow", "call the dentist"},
		{"meeting on monday", "monday", "meeting"},
		{"review by friday", "friday", "review"},
		{"buy milk", "tomorrow", "buy milk"},
	}

	for _, tt := range tests {
		if got := removePhrase(tt.text, tt.phrase); got != tt.want {
			t.Errorf("removePhrase(%q, %q) = %q, want %q", tt.text, tt.phrase, got, tt.want)
		}
	}
}

func TestSplitTrailingPriority(t *testing.T) {
	tests := []struct {
		remainder    string
		wantTitle    string
		wantPriority string
	}{
		{"buy groceries with high priority", "buy groceries", "high"},
		{"finish report low.", "finish report", "low"},
		{"Buy Groceries", "Buy Groceries", ""},
		// A bare priority word is the whole title, not a priority clause.
		{"high priority", "high priority", ""},
	}

	for _, tt := range tests {
		title, priority := splitTrailingPriority(tt.remainder)
		if title != tt.wantTitle || priority != tt.wantPriority {
			t.Errorf("splitTrailingPriority(%q) = (%q, %q), want (%q, %q)",
				tt.remainder, title, priority, tt.wantTitle, tt.wantPriority)
		}
	}
}

func TestCleanHabitName(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"reading daily", "Reading"},
		{"drinking water every day", "Drinking Water"},
		{"meditation", "Meditation"},
		{"go", ""},
		{"  yoga  ", "Yoga"},
	}

	for _, tt := range tests {
		if got := cleanHabitName(tt.raw); got != tt.want {
			t.Errorf("cleanHabitName(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestInferPriority(t *testing.T) {
	tests := []struct {
		title    string
		trailing string
		want     string
	}{
		{"call mom", "", model.PriorityMedium},
		{"pay bills", "high", model.PriorityHigh},
		{"pay bills", "urgent", model.PriorityHigh},
		{"pay bills", "important", model.PriorityHigh},
		{"organize photos", "low", model.PriorityLow},
		// Keywords in the title override the trailing word.
		{"fix the urgent bug", "low", model.PriorityHigh},
		{"someday organize the garage", "", model.PriorityLow},
		{"submit before the deadline", "", model.PriorityHigh},
	}

	for _, tt := range tests {
		if got := inferPriority(tt.title, tt.trailing); got != tt.want {
			t.Errorf("inferPriority(%q, %q) = %q, want %q", tt.title, tt.trailing, got, tt.want)
		}
	}
}

func TestInferCategory(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"team meeting notes", model.CategoryWork},
		{"book doctor visit", model.CategoryHealth},
		{"study for the exam", model.CategoryLearning},
		{"visit family", model.CategoryPersonal},
		{"buy groceries", model.CategoryOther},
		// Category sets are scanned in a fixed order, work first.
		{"study for work presentation", model.CategoryWork},
	}

	for _, tt := range tests {
		if got := inferCategory(tt.title); got != tt.want {
			t.Errorf("inferCategory(%q) = %q, want %q", tt.title, got, tt.want)
		}
	}
}

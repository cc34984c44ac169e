package reply

import "strings"

// fallbackCategory pairs the keywords that select a category with its
// canned responses. Categories are scanned in order; the first one whose
// keyword appears in the message wins.
type fallbackCategory struct {
	name      string
	keywords  []string
	responses []string
}

var fallbackCategories = []fallbackCategory{
	{
		name:     "greeting",
		keywords: []string{"hello", "hi", "hey", "good morning", "good afternoon"},
		responses: []string{
			"Hello! I'm Dia, your personal assistant. I'm here to help you organize your life, manage tasks, and build productive habits. How can I assist you today?",
			"Hi there! Dia here, ready to help you tackle your goals and optimize your daily routine. What would you like to work on?",
			"Good day! I'm Dia, and I'm excited to help you achieve more and live more efficiently. What's on your agenda today?",
		},
	},
	{
		name:     "status",
		keywords: []string{"how are you", "how do you feel", "what's up"},
		responses: []string{
			"I'm functioning optimally and ready to help you succeed! As your assistant, I'm always here to support your productivity and well-being. What can I help you accomplish?",
			"I'm doing excellently, thank you for asking! I'm particularly energized when helping users like you reach their potential. How can I assist you today?",
			"I'm at your service and operating at full capacity! I love helping people organize their lives and achieve their goals. What would you like to focus on?",
		},
	},
	{
		name:     "habit",
		keywords: []string{"habit", "routine", "daily", "exercise", "workout", "reading", "water"},
		responses: []string{
			"That's fantastic that you're thinking about habits! Building consistent routines is one of the best investments you can make. What specific habit would you like to work on?",
			"I love helping with habits! Small, consistent actions create amazing results over time. Tell me more about what you'd like to improve.",
			"Habits are the foundation of success! Whether it's exercise, reading, or any other routine, I'm here to help you stay consistent. What's your goal?",
		},
	},
	{
		name:     "task",
		keywords: []string{"task", "work", "productive", "busy", "schedule", "plan", "organize"},
		responses: []string{
			"Let's tackle those tasks together! I can help you organize your day and stay focused. What's the most important thing you need to accomplish?",
			"Productivity is all about smart planning and consistent action! I'm here to help you prioritize and get things done. What's on your to-do list?",
			"Great mindset! Breaking big goals into manageable tasks is the key to success. How can I help you organize your day?",
			"I love helping with organization! The Tasks page is perfect for keeping track of everything you need to do. What would you like to add first?",
		},
	},
	{
		name:     "goal",
		keywords: []string{"goal", "achieve", "success", "improve", "better", "progress"},
		responses: []string{
			"I'm excited to help you reach your goals! Every small step counts toward bigger achievements. What specific area would you like to focus on?",
			"Success is built one day at a time! Let's break down your goals into actionable steps. What would you like to work on first?",
			"Progress is the best motivator! I can help you track your improvements in both tasks and habits. What's your main focus right now?",
		},
	},
	{
		name:     "distress",
		keywords: []string{"tired", "stressed", "difficult", "hard", "struggle", "help"},
		responses: []string{
			"I hear you, and I want you to know that what you're feeling is completely valid. Every challenge is an opportunity to grow stronger. Let's take this one step at a time.",
			"You're being so brave by reaching out! Remember, even the smallest progress is still progress. What's one tiny thing we can do right now to make you feel better?",
			"I'm here for you! Life can be challenging, but you have more strength than you realize. Let's find a small, manageable way to move forward together.",
		},
	},
}

var defaultResponses = []string{
	"That's interesting! I'm here to help you with whatever you're working on. Whether it's building better habits, staying organized, or just having a friendly chat, I'm all ears!",
	"I appreciate you sharing that with me! As your companion, I'm here to support you in creating positive changes in your life. How can we make today a little bit better?",
	"Thanks for talking with me! I love helping people discover their potential and build great routines. What aspect of your life would you like to improve?",
}

var motivationMessages = []string{
	"Every small step counts! You're building something amazing.",
	"Today is full of possibilities. Let's make it count!",
	"You have the power to create positive change. Believe in yourself!",
	"Progress, not perfection. You're doing great!",
	"Your future self will thank you for the effort you put in today!",
	"Small consistent actions lead to extraordinary results!",
	"You're stronger than you think and capable of more than you imagine!",
}

// FallbackReply picks a canned response for the message's keyword category,
// uniformly at random within the category.
func FallbackReply(userMessage string) string {
	messageLower := strings.ToLower(userMessage)

	for _, cat := range fallbackCategories {
		for _, kw := range cat.keywords {
			if strings.Contains(messageLower, kw) {
				return randomFrom(cat.responses)
			}
		}
	}
	return randomFrom(defaultResponses)
}

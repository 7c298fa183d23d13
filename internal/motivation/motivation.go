// Package motivation holds the fixed encouragement texts offered to users.
package motivation

import "math/rand/v2"

// Quotes are the daily motivation lines.
var Quotes = []string{
	"Growth begins the moment you step out of your comfort zone!",
	"Every setback is a setup for a comeback!",
	"Keep striving, your dedication will lead to greatness!",
	"The journey of improvement starts with a single step!",
	"Progress, no matter how small, is still progress!",
}

// Tips are the mindset tips a user can pick for the summary document.
var Tips = []string{
	"Keep pushing forward, consistency is key!",
	"Mistakes help you grow, embrace them!",
	"Feedback is a tool for improvement, use it wisely.",
	"Challenge yourself beyond limits every day!",
	"Effort makes your brain stronger and sharper!",
}

// FeedbackOptions are the answers to "How do you feel about your journey?".
var FeedbackOptions = []string{
	"Feeling Amazing!",
	"Still Working on It",
	"Need More Motivation",
}

// Quote returns a random entry of Quotes.
func Quote() string {
	return Quotes[rand.IntN(len(Quotes))]
}

// ProgressMessage returns the encouragement shown after saving progress.
func ProgressMessage(percentage int) string {
	switch {
	case percentage < 30:
		return "Keep pushing! Small steps lead to big achievements."
	case percentage < 70:
		return "You're doing great! Stay consistent."
	default:
		return "Amazing progress! Keep up the fantastic work!"
	}
}

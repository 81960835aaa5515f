// Package dashboard summarizes progress for the status view.
package dashboard

import (
	"time"

	"github.com/runnerr0/mindwell/internal/mood"
)

// GoalDays is the streak length the dashboard counts down to.
const GoalDays = 7

const recentMoods = 7

// Quote is a daily inspirational quote.
type Quote struct {
	Text   string `json:"text"`
	Author string `json:"author"`
}

var quotes = []Quote{
	{"The mind is everything. What you think you become.", "Buddha"},
	{"Your mental health is more important than your career, money, other's opinions, that event you said you'd attend, your partner's mood, and your family's opinions. Take care of yourself.", "Unknown"},
	{"Self-care is not selfish. It is essential.", "Audre Lorde"},
	{"You don't have to be positive all the time. It's perfectly okay to feel sad, angry, annoyed, frustrated, scared, or anxious. Having feelings doesn't make you a negative person.", "Lori Deschene"},
	{"Be kind to your mind. It's the only one you've got.", "Unknown"},
	{"You are enough just as you are. Each emotion you feel, everything in your life, everything you do or do not do... where you are and who you are right now is enough.", "Haemin Sunim"},
	{"Mental health is not a destination, but a process. It's about how you drive, not where you're going.", "Noam Shpancer"},
}

// Achievement is a milestone badge.
type Achievement struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Earned      bool   `json:"earned"`
}

// Input is everything the dashboard reads.
type Input struct {
	Now          time.Time
	Streak       mood.Streak
	Moods        []mood.Observation // newest first
	JournalCount int
	Sessions     int
}

// Summary is the rendered-agnostic dashboard.
type Summary struct {
	Greeting      string             `json:"greeting"`
	Quote         Quote              `json:"quote"`
	Streak        mood.Streak        `json:"streak"`
	DaysUntilGoal int                `json:"daysUntilGoal"`
	RecentMoods   []mood.Observation `json:"recentMoods"`
	JournalCount  int                `json:"journalCount"`
	Sessions      int                `json:"sessions"`
	Achievements  []Achievement      `json:"achievements"`
}

// Build computes the summary.
func Build(in Input) Summary {
	recent := in.Moods
	if len(recent) > recentMoods {
		recent = recent[:recentMoods]
	}
	return Summary{
		Greeting:      Greeting(in.Now),
		Quote:         DailyQuote(in.Now),
		Streak:        in.Streak,
		DaysUntilGoal: max(0, GoalDays-in.Streak.Current),
		RecentMoods:   append([]mood.Observation(nil), recent...),
		JournalCount:  in.JournalCount,
		Sessions:      in.Sessions,
		Achievements: []Achievement{
			{"First Step", "Completed your first mood check-in", len(in.Moods) > 0},
			{"Consistent Care", "Maintained a 3-day streak", in.Streak.Current >= 3},
			{"Reflection Master", "Written 5+ journal entries", in.JournalCount >= 5},
			{"Mindful Warrior", "Completed 10+ mindfulness sessions", in.Sessions >= 10},
		},
	}
}

// Greeting depends on the hour of now.
func Greeting(now time.Time) string {
	switch h := now.Hour(); {
	case h < 12:
		return "Good morning"
	case h < 17:
		return "Good afternoon"
	default:
		return "Good evening"
	}
}

// DailyQuote picks the same quote for a whole calendar day.
func DailyQuote(now time.Time) Quote {
	return quotes[now.YearDay()%len(quotes)]
}

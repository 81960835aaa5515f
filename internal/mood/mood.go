// Package mood records mood check-ins and keeps the daily check-in streak.
package mood

import (
	"strings"
	"time"

	"github.com/runnerr0/mindwell/internal/errs"
)

// HistoryLimit is the number of observations kept, newest first.
const HistoryLimit = 100

// Intensity bounds for a check-in.
const (
	MinIntensity = 1
	MaxIntensity = 10
)

// KnownEmotions are the labels offered at check-in.
var KnownEmotions = []string{
	"Happy", "Calm", "Neutral", "Worried", "Sad", "Frustrated", "Tired", "Grateful",
}

// Observation is one mood check-in.
type Observation struct {
	Emotion   string    `json:"emotion"`
	Intensity int       `json:"intensity"`
	Timestamp time.Time `json:"timestamp"`
}

// Streak counts distinct check-in days.
type Streak struct {
	Current     int        `json:"current"`
	Best        int        `json:"best"`
	LastCheckin *time.Time `json:"lastCheckin"`
}

// Result is the outcome of Record.
type Result struct {
	History []Observation
	Streak  Streak
}

// Validate rejects an empty emotion or an intensity outside [1,10].
func (o Observation) Validate() error {
	if strings.TrimSpace(o.Emotion) == "" {
		return errs.Invalid("emotion", o.Emotion, "must not be empty")
	}
	if o.Intensity < MinIntensity || o.Intensity > MaxIntensity {
		return errs.Invalid("intensity", o.Intensity, "must be between 1 and 10")
	}
	return nil
}

// Record prepends obs to history, keeps the newest HistoryLimit entries and
// advances the streak when obs falls on a new calendar day. The inputs are
// not modified.
//
// A missed day does not reset Current; only same-day repeats are ignored.
func Record(history []Observation, streak Streak, obs Observation) (Result, error) {
	return record(history, streak, obs, HistoryLimit)
}

func record(history []Observation, streak Streak, obs Observation, limit int) (Result, error) {
	if err := obs.Validate(); err != nil {
		return Result{}, err
	}
	if limit <= 0 {
		limit = HistoryLimit
	}

	n := len(history) + 1
	if n > limit {
		n = limit
	}
	updated := make([]Observation, 0, n)
	updated = append(updated, obs)
	for _, o := range history {
		if len(updated) == n {
			break
		}
		updated = append(updated, o)
	}

	next := streak
	if streak.LastCheckin != nil {
		t := *streak.LastCheckin
		next.LastCheckin = &t
	}
	if next.LastCheckin == nil || !sameDay(*next.LastCheckin, obs.Timestamp) {
		next.Current++
		if next.Current > next.Best {
			next.Best = next.Current
		}
		ts := obs.Timestamp
		next.LastCheckin = &ts
	}

	return Result{History: updated, Streak: next}, nil
}

// sameDay compares calendar dates in b's location.
func sameDay(a, b time.Time) bool {
	a = a.In(b.Location())
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// IntensityBand names the 1-10 scale for display.
func IntensityBand(n int) string {
	switch {
	case n <= 3:
		return "Mild"
	case n <= 7:
		return "Moderate"
	default:
		return "Intense"
	}
}

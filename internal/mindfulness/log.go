package mindfulness

import (
	"context"
	"time"

	"github.com/runnerr0/mindwell/internal/storage"
)

// Log counts completed sessions.
type Log struct {
	Completed     int            `json:"completed"`
	TotalSeconds  int            `json:"totalSeconds"`
	ByExercise    map[string]int `json:"byExercise"`
	LastCompleted *time.Time     `json:"lastCompleted"`
}

// Tracker persists the session log.
type Tracker struct {
	records *storage.Records
	now     func() time.Time
}

// TrackerOption configures a Tracker.
type TrackerOption func(*Tracker)

// WithClock sets the time stamped on completed sessions. Nil keeps time.Now.
func WithClock(now func() time.Time) TrackerOption {
	return func(t *Tracker) {
		if now != nil {
			t.now = now
		}
	}
}

func NewTracker(records *storage.Records, opts ...TrackerOption) *Tracker {
	t := &Tracker{records: records, now: time.Now}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Load returns the stored log, empty when none exists.
func (t *Tracker) Load(ctx context.Context) (Log, error) {
	var l Log
	if _, err := t.records.Load(ctx, storage.KeyMindfulnessLog, &l); err != nil {
		return Log{}, err
	}
	return l, nil
}

// Complete records a finished session of e.
func (t *Tracker) Complete(ctx context.Context, e Exercise) (Log, error) {
	l, err := t.Load(ctx)
	if err != nil {
		return Log{}, err
	}
	if l.ByExercise == nil {
		l.ByExercise = map[string]int{}
	}
	now := t.now()
	l.Completed++
	l.TotalSeconds += int(e.Duration / time.Second)
	l.ByExercise[e.ID]++
	l.LastCompleted = &now

	if err := t.records.Save(ctx, storage.KeyMindfulnessLog, l); err != nil {
		return Log{}, err
	}
	return l, nil
}

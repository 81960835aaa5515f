package mood

import (
	"context"
	"time"

	"github.com/runnerr0/mindwell/internal/storage"
)

// Service persists check-ins through the store, reading and writing whole values.
type Service struct {
	records *storage.Records
	limit   int
	now     func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithClock sets the source of check-in timestamps. Nil keeps time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// NewService returns a Service keeping at most limit observations.
func NewService(records *storage.Records, limit int, opts ...Option) *Service {
	if limit <= 0 {
		limit = HistoryLimit
	}
	s := &Service{records: records, limit: limit, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// History returns the stored observations, newest first.
func (s *Service) History(ctx context.Context) ([]Observation, error) {
	var history []Observation
	if _, err := s.records.Load(ctx, storage.KeyMoodHistory, &history); err != nil {
		return nil, err
	}
	return history, nil
}

// Streak returns the stored streak, zero when none exists.
func (s *Service) Streak(ctx context.Context) (Streak, error) {
	var streak Streak
	if _, err := s.records.Load(ctx, storage.KeyStreak, &streak); err != nil {
		return Streak{}, err
	}
	return streak, nil
}

// CheckIn records emotion at the current time.
func (s *Service) CheckIn(ctx context.Context, emotion string, intensity int) (Result, error) {
	return s.Record(ctx, Observation{Emotion: emotion, Intensity: intensity, Timestamp: s.now()})
}

// Record validates obs, applies it to the stored state and writes both values back.
func (s *Service) Record(ctx context.Context, obs Observation) (Result, error) {
	if err := obs.Validate(); err != nil {
		return Result{}, err
	}
	history, err := s.History(ctx)
	if err != nil {
		return Result{}, err
	}
	streak, err := s.Streak(ctx)
	if err != nil {
		return Result{}, err
	}

	res, err := record(history, streak, obs, s.limit)
	if err != nil {
		return Result{}, err
	}

	if err := s.records.Save(ctx, storage.KeyMoodHistory, res.History); err != nil {
		return Result{}, err
	}
	if err := s.records.Save(ctx, storage.KeyStreak, res.Streak); err != nil {
		return Result{}, err
	}
	return res, nil
}

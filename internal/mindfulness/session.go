package mindfulness

import (
	"context"
	"time"
)

// CompletionMessage is shown when a session runs to the end.
const CompletionMessage = "Exercise complete. Take a moment to notice how you feel."

// Tick is emitted once per second of a session.
type Tick struct {
	Elapsed     time.Duration
	Remaining   time.Duration
	Step        int
	Instruction string

	// Set for breathing exercises only.
	Phase     Phase
	PhaseLeft int
}

// Session drives one exercise.
type Session struct {
	Exercise Exercise

	// Interval is the wall-clock time per session second. Zero means one second.
	Interval time.Duration
}

// NewSession returns a real-time session for e.
func NewSession(e Exercise) *Session {
	return &Session{Exercise: e, Interval: time.Second}
}

// TickAt describes the session state after elapsed.
func (s *Session) TickAt(elapsed time.Duration) Tick {
	e := s.Exercise
	t := Tick{
		Elapsed:   elapsed,
		Remaining: e.Duration - elapsed,
	}
	if t.Remaining < 0 {
		t.Remaining = 0
	}
	if n := len(e.Instructions); n > 0 && e.Duration > 0 {
		step := int(int64(elapsed) * int64(n) / int64(e.Duration))
		if step >= n {
			step = n - 1
		}
		t.Step = step
		t.Instruction = e.Instructions[step]
	}
	if e.Kind == Breathing {
		t.Phase, t.PhaseLeft = BreathingPhaseAt(elapsed)
	}
	return t
}

// Run emits a tick at the start and after every session second until the
// duration has elapsed or ctx is done. It reports whether the session
// completed; a cancelled session returns ctx.Err().
func (s *Session) Run(ctx context.Context, tick func(Tick)) (bool, error) {
	interval := s.Interval
	if interval <= 0 {
		interval = time.Second
	}
	if tick == nil {
		tick = func(Tick) {}
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var elapsed time.Duration
	tick(s.TickAt(elapsed))
	for elapsed < s.Exercise.Duration {
		select {
		case <-ctx.Done():
			return false, ctx.Err()
		case <-ticker.C:
			elapsed += time.Second
			tick(s.TickAt(elapsed))
		}
	}
	return true, nil
}

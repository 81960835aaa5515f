// Package mindfulness provides the guided exercise catalog and a timed
// session runner with the 4-7-8 breathing cycle.
package mindfulness

import (
	"fmt"
	"time"
)

// Kind groups exercises.
type Kind string

const (
	Breathing     Kind = "breathing"
	Meditation    Kind = "meditation"
	Visualization Kind = "visualization"
)

// Exercise is one guided practice.
type Exercise struct {
	ID           string
	Title        string
	Description  string
	Duration     time.Duration
	Kind         Kind
	Instructions []string
}

var catalog = []Exercise{
	{
		ID:          "box-breathing",
		Title:       "4-7-8 Breathing",
		Description: "A calming breathing technique to reduce anxiety",
		Duration:    4 * time.Minute,
		Kind:        Breathing,
		Instructions: []string{
			"Find a comfortable position and close your eyes",
			"Breathe in through your nose for 4 counts",
			"Hold your breath for 7 counts",
			"Exhale through your mouth for 8 counts",
			"Repeat this cycle",
		},
	},
	{
		ID:          "body-scan",
		Title:       "Body Scan Meditation",
		Description: "Progressive relaxation focusing on each part of your body",
		Duration:    10 * time.Minute,
		Kind:        Meditation,
		Instructions: []string{
			"Lie down or sit comfortably",
			"Start with your toes and slowly work upward",
			"Notice any tension or sensation in each body part",
			"Breathe into areas of tension",
			"Release and relax each muscle group",
		},
	},
	{
		ID:          "peaceful-place",
		Title:       "Peaceful Place Visualization",
		Description: "Imagine a calm, safe place to find inner peace",
		Duration:    5 * time.Minute,
		Kind:        Visualization,
		Instructions: []string{
			"Close your eyes and take deep breaths",
			"Picture a place where you feel completely safe",
			"Notice the colors, sounds, and sensations",
			"Feel the peace and calm of this place",
			"Know you can return here anytime",
		},
	},
}

// DefaultExerciseID is started when no exercise is named.
const DefaultExerciseID = "box-breathing"

// Catalog returns a copy of the available exercises.
func Catalog() []Exercise {
	out := make([]Exercise, len(catalog))
	copy(out, catalog)
	return out
}

// Find looks an exercise up by id.
func Find(id string) (Exercise, bool) {
	for _, e := range catalog {
		if e.ID == id {
			return e, true
		}
	}
	return Exercise{}, false
}

// Phase of the 4-7-8 breathing cycle.
type Phase string

const (
	Inhale Phase = "inhale"
	Hold   Phase = "hold"
	Exhale Phase = "exhale"
)

// Phase lengths in seconds.
const (
	inhaleSeconds = 4
	holdSeconds   = 7
	exhaleSeconds = 8
	cycleSeconds  = inhaleSeconds + holdSeconds + exhaleSeconds
)

// BreathingPhaseAt returns the phase at elapsed and the whole seconds left
// in it. The cycle starts with inhale at zero and repeats every 19 seconds.
func BreathingPhaseAt(elapsed time.Duration) (Phase, int) {
	s := int(elapsed/time.Second) % cycleSeconds
	switch {
	case s < inhaleSeconds:
		return Inhale, inhaleSeconds - s
	case s < inhaleSeconds+holdSeconds:
		return Hold, holdSeconds - (s - inhaleSeconds)
	default:
		return Exhale, exhaleSeconds - (s - inhaleSeconds - holdSeconds)
	}
}

// BreathingCue renders a phase for display, e.g. "Inhale (3)".
func BreathingCue(p Phase, left int) string {
	switch p {
	case Hold:
		return fmt.Sprintf("Hold (%d)", left)
	case Exhale:
		return fmt.Sprintf("Exhale (%d)", left)
	default:
		return fmt.Sprintf("Inhale (%d)", left)
	}
}

// FormatClock renders d as m:ss.
func FormatClock(d time.Duration) string {
	s := int(d / time.Second)
	return fmt.Sprintf("%d:%02d", s/60, s%60)
}

package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/runnerr0/mindwell/internal/mood"
)

// checkinJSON is the JSON output structure for the checkin command.
type checkinJSON struct {
	Observation mood.Observation `json:"observation"`
	Streak      mood.Streak      `json:"streak"`
	HistorySize int              `json:"history_size"`
}

// Execute implements the go-flags Commander interface for CheckinCommand.
func (c *CheckinCommand) Execute(args []string) error {
	if strings.TrimSpace(c.Emotion) == "" {
		return fmt.Errorf("--emotion is required (one of %s)", strings.Join(mood.KnownEmotions, ", "))
	}
	return withApp(c.app, c.globals, c.execute)
}

func (c *CheckinCommand) execute(a *app) error {
	res, err := a.moods().CheckIn(context.Background(), strings.TrimSpace(c.Emotion), c.Intensity)
	if err != nil {
		return err
	}
	obs := res.History[0]

	if isJSON(c.globals) {
		return printJSON(checkinJSON{Observation: obs, Streak: res.Streak, HistorySize: len(res.History)})
	}

	fmt.Printf("%s Recorded %s (%d/10, %s)\n",
		successStyle.Render("✓"), obs.Emotion, obs.Intensity, mood.IntensityBand(obs.Intensity))
	fmt.Printf("Streak: %s (best %s)\n", pluralDays(res.Streak.Current), pluralDays(res.Streak.Best))
	return nil
}

package cli

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runnerr0/mindwell/internal/errs"
)

func TestCheckin_RecordsAndStartsStreak(t *testing.T) {
	a := newTestApp(t)
	cmd := &CheckinCommand{Emotion: "Grateful", Intensity: 8, globals: &GlobalFlags{}, app: a}

	output := captureOutput(t, func() {
		require.NoError(t, cmd.Execute(nil))
	})

	assert.Contains(t, output, "Recorded Grateful (8/10, Intense)")
	assert.Contains(t, output, "Streak: 1 day (best 1 day)")

	history, err := a.moods().History(context.Background())
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "Grateful", history[0].Emotion)
}

func TestCheckin_SameDayKeepsStreak(t *testing.T) {
	a := newTestApp(t)
	cmd := &CheckinCommand{Emotion: "Calm", Intensity: 3, globals: &GlobalFlags{JSON: true}, app: a}

	captureOutput(t, func() { require.NoError(t, cmd.Execute(nil)) })
	output := captureOutput(t, func() { require.NoError(t, cmd.Execute(nil)) })

	var out checkinJSON
	require.NoError(t, json.Unmarshal([]byte(output), &out))
	assert.Equal(t, 1, out.Streak.Current)
	assert.Equal(t, 2, out.HistorySize)
	assert.Equal(t, "Calm", out.Observation.Emotion)
}

func TestCheckin_IntensityOutOfRange(t *testing.T) {
	a := newTestApp(t)
	cmd := &CheckinCommand{Emotion: "Sad", Intensity: 11, globals: &GlobalFlags{}, app: a}

	err := cmd.Execute(nil)
	var verr *errs.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "intensity", verr.Field)

	history, err := a.moods().History(context.Background())
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestCheckin_UsesAppClock(t *testing.T) {
	a := newTestApp(t)
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	a.now = func() time.Time { return now }
	cmd := &CheckinCommand{Emotion: "Calm", Intensity: 4, globals: &GlobalFlags{}, app: a}

	captureOutput(t, func() { require.NoError(t, cmd.Execute(nil)) })

	history, err := a.moods().History(context.Background())
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.True(t, now.Equal(history[0].Timestamp))

	streak, err := a.moods().Streak(context.Background())
	require.NoError(t, err)
	require.NotNil(t, streak.LastCheckin)
	assert.True(t, now.Equal(*streak.LastCheckin))
}

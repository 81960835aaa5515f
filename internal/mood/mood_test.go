package mood

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runnerr0/mindwell/internal/errs"
)

func at(day, hour int) time.Time {
	return time.Date(2024, time.March, day, hour, 0, 0, 0, time.UTC)
}

func TestRecord_FirstCheckin(t *testing.T) {
	now := at(10, 9)
	res, err := Record(nil, Streak{}, Observation{Emotion: "Happy", Intensity: 6, Timestamp: now})
	require.NoError(t, err)

	assert.Equal(t, 1, res.Streak.Current)
	assert.Equal(t, 1, res.Streak.Best)
	require.NotNil(t, res.Streak.LastCheckin)
	assert.True(t, now.Equal(*res.Streak.LastCheckin))
	require.Len(t, res.History, 1)
	assert.Equal(t, "Happy", res.History[0].Emotion)
}

func TestRecord_SameDayDoesNotDoubleCount(t *testing.T) {
	res, err := Record(nil, Streak{}, Observation{Emotion: "Calm", Intensity: 3, Timestamp: at(10, 8)})
	require.NoError(t, err)

	res, err = Record(res.History, res.Streak, Observation{Emotion: "Sad", Intensity: 4, Timestamp: at(10, 22)})
	require.NoError(t, err)

	assert.Equal(t, 1, res.Streak.Current)
	assert.Len(t, res.History, 2)
	assert.Equal(t, "Sad", res.History[0].Emotion, "newest first")
	assert.True(t, at(10, 8).Equal(*res.Streak.LastCheckin), "same-day check-in leaves lastCheckin alone")
}

func TestRecord_ConsecutiveDaysIncrementByOne(t *testing.T) {
	var history []Observation
	streak := Streak{}
	best := 0
	for day := 1; day <= 5; day++ {
		res, err := Record(history, streak, Observation{Emotion: "Calm", Intensity: 5, Timestamp: at(day, 12)})
		require.NoError(t, err)
		assert.Equal(t, streak.Current+1, res.Streak.Current)
		assert.GreaterOrEqual(t, res.Streak.Best, best)
		best = res.Streak.Best
		history, streak = res.History, res.Streak
	}
	assert.Equal(t, 5, streak.Current)
	assert.Equal(t, 5, streak.Best)
}

// A skipped day keeps the streak running. This mirrors the observed
// behavior of the check-in flow and is asserted so a change is deliberate.
func TestRecord_MissedDayDoesNotReset(t *testing.T) {
	last := at(1, 12)
	streak := Streak{Current: 4, Best: 4, LastCheckin: &last}

	res, err := Record(nil, streak, Observation{Emotion: "Tired", Intensity: 2, Timestamp: at(9, 12)})
	require.NoError(t, err)
	assert.Equal(t, 5, res.Streak.Current)
	assert.Equal(t, 5, res.Streak.Best)
}

func TestRecord_BestNeverDecreases(t *testing.T) {
	last := at(1, 12)
	streak := Streak{Current: 1, Best: 9, LastCheckin: &last}

	res, err := Record(nil, streak, Observation{Emotion: "Calm", Intensity: 5, Timestamp: at(2, 12)})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Streak.Current)
	assert.Equal(t, 9, res.Streak.Best)
}

func TestRecord_TruncatesToNewest100(t *testing.T) {
	var history []Observation
	streak := Streak{}
	start := at(1, 0)
	for i := 0; i < 105; i++ {
		res, err := Record(history, streak, Observation{
			Emotion:   "Neutral",
			Intensity: 1 + i%10,
			Timestamp: start.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
		history, streak = res.History, res.Streak
	}

	require.Len(t, history, 100)
	assert.True(t, start.Add(104*time.Minute).Equal(history[0].Timestamp))
	assert.True(t, start.Add(5*time.Minute).Equal(history[99].Timestamp))
}

func TestRecord_DoesNotMutateInputs(t *testing.T) {
	last := at(1, 12)
	history := []Observation{{Emotion: "Sad", Intensity: 2, Timestamp: last}}
	streak := Streak{Current: 1, Best: 1, LastCheckin: &last}

	_, err := Record(history, streak, Observation{Emotion: "Happy", Intensity: 8, Timestamp: at(2, 12)})
	require.NoError(t, err)

	assert.Len(t, history, 1)
	assert.Equal(t, "Sad", history[0].Emotion)
	assert.Equal(t, 1, streak.Current)
	assert.True(t, at(1, 12).Equal(*streak.LastCheckin))
}

func TestRecord_CalendarDayUsesObservationLocation(t *testing.T) {
	east := time.FixedZone("UTC+10", 10*3600)
	// 20:00 UTC on the 1st is 06:00 on the 2nd at UTC+10.
	last := time.Date(2024, time.March, 1, 20, 0, 0, 0, time.UTC)
	streak := Streak{Current: 1, Best: 1, LastCheckin: &last}

	res, err := Record(nil, streak, Observation{
		Emotion:   "Calm",
		Intensity: 5,
		Timestamp: time.Date(2024, time.March, 2, 9, 0, 0, 0, east),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Streak.Current)
}

func TestRecord_Validation(t *testing.T) {
	cases := []struct {
		name  string
		obs   Observation
		field string
	}{
		{"empty emotion", Observation{Emotion: "  ", Intensity: 5}, "emotion"},
		{"intensity zero", Observation{Emotion: "Happy", Intensity: 0}, "intensity"},
		{"intensity eleven", Observation{Emotion: "Happy", Intensity: 11}, "intensity"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Record(nil, Streak{}, tc.obs)
			var ve *errs.ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, tc.field, ve.Field)
		})
	}
}

func TestIntensityBand(t *testing.T) {
	assert.Equal(t, "Mild", IntensityBand(1))
	assert.Equal(t, "Mild", IntensityBand(3))
	assert.Equal(t, "Moderate", IntensityBand(4))
	assert.Equal(t, "Moderate", IntensityBand(7))
	assert.Equal(t, "Intense", IntensityBand(8))
	assert.Equal(t, "Intense", IntensityBand(10))
}

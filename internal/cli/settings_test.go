package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runnerr0/mindwell/internal/errs"
	"github.com/runnerr0/mindwell/internal/settings"
)

func setSetting(a *app, key, value string) error {
	cmd := &SettingsSetCommand{globals: &GlobalFlags{}, app: a}
	cmd.Args.Key = key
	cmd.Args.Value = value
	return cmd.Execute(nil)
}

func TestSettings_ShowDefaults(t *testing.T) {
	output := captureOutput(t, func() {
		require.NoError(t, (&SettingsShowCommand{globals: &GlobalFlags{}, app: newTestApp(t)}).Execute(nil))
	})
	assert.Contains(t, output, "language")
	assert.Contains(t, output, "en")
	assert.Contains(t, output, "data_retention_days")
	assert.Contains(t, output, "30")
}

func TestSettings_SetPersists(t *testing.T) {
	a := newTestApp(t)

	output := captureOutput(t, func() {
		require.NoError(t, setSetting(a, "theme", "dark"))
		require.NoError(t, setSetting(a, "notifications", "false"))
	})
	assert.Contains(t, output, "theme = dark")

	output = captureOutput(t, func() {
		require.NoError(t, (&SettingsShowCommand{globals: &GlobalFlags{JSON: true}, app: a}).Execute(nil))
	})
	var st settings.Settings
	require.NoError(t, json.Unmarshal([]byte(output), &st))
	assert.Equal(t, "dark", st.Theme)
	assert.False(t, st.Notifications)
	assert.Equal(t, "en", st.Language)
}

func TestSettings_SetRejectsInvalid(t *testing.T) {
	a := newTestApp(t)

	var verr *errs.ValidationError
	require.ErrorAs(t, setSetting(a, "language", "fr"), &verr)
	assert.Equal(t, "language", verr.Field)

	require.ErrorAs(t, setSetting(a, "colour", "blue"), &verr)
	assert.Equal(t, "setting", verr.Field)
}

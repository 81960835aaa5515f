package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	goflags "github.com/jessevdk/go-flags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionFlag(t *testing.T) {
	var err error
	output := captureOutput(t, func() {
		err = RunWithArgs("0.1.0-test", []string{"--version"})
	})

	assert.NoError(t, err)
	assert.Contains(t, output, "mindwell 0.1.0-test")
}

func TestVersionOutputFormat(t *testing.T) {
	output := captureOutput(t, func() {
		_ = RunWithArgs("1.2.3", []string{"--version"})
	})

	assert.Equal(t, "mindwell 1.2.3", strings.TrimSpace(output))
}

func TestSubcommandsRecognized(t *testing.T) {
	cases := [][]string{
		{"checkin", "--emotion", "Calm", "--intensity", "4"},
		{"analyze", "I feel fine"},
		{"chat", "--message", "hello"},
		{"journal", "add", "--content", "today", "--tag", "work"},
		{"journal", "edit", "--id", "x", "--remove-tag", "work"},
		{"journal", "list", "--limit", "5"},
		{"journal", "show", "--id", "x"},
		{"journal", "delete", "--id", "x"},
		{"breathe", "--exercise", "body-scan"},
		{"status"},
		{"settings", "show"},
		{"settings", "set", "theme", "dark"},
		{"export", "--format", "yaml"},
		{"purge", "--all"},
	}
	for _, args := range cases {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			parser, _, _ := buildParser("test")
			var ran goflags.Commander
			parser.CommandHandler = func(cmd goflags.Commander, _ []string) error {
				ran = cmd
				return nil
			}
			_, err := parser.ParseArgs(args)
			require.NoError(t, err)
			assert.NotNil(t, ran)
		})
	}
}

func TestFlagDefaults(t *testing.T) {
	parser, _, cmds := buildParser("test")
	parser.CommandHandler = func(goflags.Commander, []string) error { return nil }

	_, err := parser.ParseArgs([]string{"checkin", "--emotion", "Calm"})
	require.NoError(t, err)
	assert.Equal(t, 5, cmds.Checkin.Intensity)

	_, err = parser.ParseArgs([]string{"breathe"})
	require.NoError(t, err)
	assert.Equal(t, "box-breathing", cmds.Breathe.Exercise)

	_, err = parser.ParseArgs([]string{"export"})
	require.NoError(t, err)
	assert.Equal(t, "json", cmds.Export.Format)
}

func TestGlobalFlagsShared(t *testing.T) {
	parser, globals, cmds := buildParser("test")
	parser.CommandHandler = func(goflags.Commander, []string) error { return nil }

	_, err := parser.ParseArgs([]string{"--json", "journal", "list"})
	require.NoError(t, err)
	assert.True(t, globals.JSON)
	assert.Same(t, globals, cmds.Journal.List.globals)
	assert.Same(t, globals, cmds.Settings.Set.globals)
}

func TestRequiredFlags(t *testing.T) {
	cases := []struct {
		args []string
		want string
	}{
		{[]string{"checkin"}, "--emotion is required"},
		{[]string{"journal", "show"}, "--id is required"},
		{[]string{"journal", "edit", "--title", "x"}, "--id is required"},
		{[]string{"journal", "delete"}, "--id is required"},
		{[]string{"purge"}, "purge requires --all flag for safety"},
		{[]string{"breathe", "--exercise", "nope"}, `unknown exercise "nope"`},
		{[]string{"export", "--format", "xml"}, "unsupported format: xml"},
	}
	for _, tc := range cases {
		t.Run(strings.Join(tc.args, " "), func(t *testing.T) {
			err := RunWithArgs("test", tc.args)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestSettingsSetRequiresArgs(t *testing.T) {
	err := RunWithArgs("test", []string{"settings", "set", "theme"})
	require.Error(t, err)
}

// writeConfig writes a config rooted at a temp dir and returns its path.
func writeConfig(t *testing.T, backend string) (string, string) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := "storage:\n  path: " + dir + "\n  backend: " + backend + "\nlogging:\n  file: \"\"\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0600))
	t.Setenv("OPENROUTER_API_KEY", "")
	return path, dir
}

func TestRun_SQLiteBackend(t *testing.T) {
	cfgPath, dir := writeConfig(t, "sqlite")

	captureOutput(t, func() {
		require.NoError(t, RunWithArgs("test", []string{"--config", cfgPath, "checkin", "--emotion", "Happy", "--intensity", "7"}))
	})
	assert.FileExists(t, filepath.Join(dir, "mindwell.db"))

	output := captureOutput(t, func() {
		require.NoError(t, RunWithArgs("test", []string{"--config", cfgPath, "--json", "status"}))
	})
	assert.Contains(t, output, `"current": 1`)
	assert.Contains(t, output, `"emotion": "Happy"`)
}

func TestRun_FileBackend(t *testing.T) {
	cfgPath, dir := writeConfig(t, "file")

	captureOutput(t, func() {
		require.NoError(t, RunWithArgs("test", []string{"--config", cfgPath, "journal", "add", "--content", "Dear diary"}))
	})
	assert.FileExists(t, filepath.Join(dir, "data", "mindwell-journal-entries.json"))

	output := captureOutput(t, func() {
		require.NoError(t, RunWithArgs("test", []string{"--config", cfgPath, "--json", "journal", "list"}))
	})
	assert.Contains(t, output, "Dear diary")
}

func TestRun_BadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("storage:\n  backend: postgres\n"), 0600))

	err := RunWithArgs("test", []string{"--config", path, "status"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid storage.backend")
}

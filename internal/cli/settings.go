package cli

import (
	"context"
	"fmt"

	"github.com/runnerr0/mindwell/internal/settings"
)

// Execute implements the go-flags Commander interface for SettingsShowCommand.
func (c *SettingsShowCommand) Execute(args []string) error {
	return withApp(c.app, c.globals, func(a *app) error {
		st, err := a.settings().Load(context.Background())
		if err != nil {
			return err
		}
		if isJSON(c.globals) {
			return printJSON(st)
		}
		printSettings(st)
		return nil
	})
}

// Execute implements the go-flags Commander interface for SettingsSetCommand.
func (c *SettingsSetCommand) Execute(args []string) error {
	return withApp(c.app, c.globals, func(a *app) error {
		st, err := a.settings().Update(context.Background(), c.Args.Key, c.Args.Value)
		if err != nil {
			return err
		}
		if isJSON(c.globals) {
			return printJSON(st)
		}
		fmt.Printf("%s %s = %s\n", successStyle.Render("✓"), c.Args.Key, c.Args.Value)
		return nil
	})
}

func printSettings(st settings.Settings) {
	fmt.Println(headerStyle.Render("Settings"))
	fmt.Printf("  %-20s %s\n", "language", st.Language)
	fmt.Printf("  %-20s %s\n", "theme", st.Theme)
	fmt.Printf("  %-20s %t\n", "notifications", st.Notifications)
	fmt.Printf("  %-20s %t\n", "sound_enabled", st.SoundEnabled)
	fmt.Printf("  %-20s %t\n", "auto_save", st.AutoSave)
	fmt.Printf("  %-20s %d\n", "data_retention_days", st.DataRetentionDays)
}

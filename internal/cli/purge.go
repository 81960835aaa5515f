package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/runnerr0/mindwell/internal/storage"
)

// Execute implements the go-flags Commander interface for PurgeCommand.
func (c *PurgeCommand) Execute(args []string) error {
	if !c.All {
		return fmt.Errorf("purge requires --all flag for safety")
	}
	return withApp(c.app, c.globals, c.execute)
}

func (c *PurgeCommand) execute(a *app) error {
	// Confirmation prompt unless --force
	if !c.Force {
		fmt.Println(warningStyle.Render("⚠ WARNING: This will permanently delete ALL your mindwell data."))
		fmt.Println("  - All journal entries")
		fmt.Println("  - All mood check-ins and your streak")
		fmt.Println("  - The saved chat conversation")
		fmt.Println("  - The mindfulness session log")
		fmt.Println()
		fmt.Println("Settings are kept. This action cannot be undone.")
		fmt.Println()
		fmt.Print(`Type "PURGE" to confirm: `)

		scanner := bufio.NewScanner(a.stdin)
		if !scanner.Scan() {
			return fmt.Errorf("aborted: no input received")
		}
		input := strings.TrimSpace(scanner.Text())
		if input != "PURGE" {
			return fmt.Errorf("aborted: confirmation text did not match")
		}
	}

	removed, err := a.records.Purge(context.Background(), storage.UserDataKeys)
	if err != nil {
		return fmt.Errorf("purge failed: %w", err)
	}

	if removed == nil {
		removed = []string{}
	}

	if isJSON(c.globals) {
		return printJSON(map[string]any{
			"purged":  true,
			"removed": removed,
			"message": "all personal data deleted",
		})
	}

	fmt.Println("Purged all data. mindwell is empty.")
	return nil
}

package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/runnerr0/mindwell/internal/export"
)

// Execute implements the go-flags Commander interface for ExportCommand.
func (c *ExportCommand) Execute(args []string) error {
	exporter, err := export.NewExporter(c.Format)
	if err != nil {
		return err
	}
	return withApp(c.app, c.globals, func(a *app) error {
		return c.execute(a, exporter)
	})
}

func (c *ExportCommand) execute(a *app, exporter export.Exporter) error {
	bundle, err := export.Collect(context.Background(), a.journal(), a.moods(), a.settings())
	if err != nil {
		return err
	}

	if c.Out == "-" {
		return exporter.Export(bundle, os.Stdout)
	}

	path := c.Out
	if path == "" {
		path = export.FileName(a.now(), exporter)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	w := bufio.NewWriter(f)
	if err := exporter.Export(bundle, w); err != nil {
		f.Close()
		return fmt.Errorf("write export: %w", err)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("write export: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close export file: %w", err)
	}

	a.logger.Info("exported data")

	if isJSON(c.globals) {
		return printJSON(map[string]any{
			"path":            path,
			"journal_entries": len(bundle.JournalEntries),
			"mood_entries":    len(bundle.MoodHistory),
		})
	}
	fmt.Printf("%s Exported %d journal entries and %d mood check-ins to %s\n",
		successStyle.Render("✓"), len(bundle.JournalEntries), len(bundle.MoodHistory), path)
	return nil
}

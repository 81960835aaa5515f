package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/runnerr0/mindwell/internal/mood"
)

// MarkdownExporter writes a human-readable report.
type MarkdownExporter struct{}

func (e *MarkdownExporter) Export(b *Bundle, w io.Writer) error {
	_, _ = fmt.Fprintf(w, "# mindwell data\n\n")

	_, _ = fmt.Fprintf(w, "## Mood history\n\n")
	if len(b.MoodHistory) == 0 {
		_, _ = fmt.Fprintf(w, "_No check-ins yet._\n\n")
	} else {
		_, _ = fmt.Fprintf(w, "| When | Emotion | Intensity |\n|---|---|---|\n")
		for _, o := range b.MoodHistory {
			_, _ = fmt.Fprintf(w, "| %s | %s | %d (%s) |\n",
				o.Timestamp.Format("2006-01-02 15:04"), escapeCell(o.Emotion), o.Intensity, mood.IntensityBand(o.Intensity))
		}
		_, _ = fmt.Fprintln(w)
	}

	_, _ = fmt.Fprintf(w, "## Journal\n\n")
	if len(b.JournalEntries) == 0 {
		_, _ = fmt.Fprintf(w, "_No entries yet._\n\n")
	}
	for i, e := range b.JournalEntries {
		_, _ = fmt.Fprintf(w, "### %s\n\n", e.Title)
		_, _ = fmt.Fprintf(w, "**Date:** %s  \n", e.Timestamp.Format("2006-01-02 15:04"))
		_, _ = fmt.Fprintf(w, "**Mood:** %s\n", e.Mood)
		if len(e.Tags) > 0 {
			_, _ = fmt.Fprintf(w, "**Tags:** %s\n", strings.Join(e.Tags, ", "))
		}
		_, _ = fmt.Fprintf(w, "\n%s\n\n", e.Content)
		if i < len(b.JournalEntries)-1 {
			_, _ = fmt.Fprintf(w, "---\n\n")
		}
	}

	s := b.Settings
	_, _ = fmt.Fprintf(w, "## Settings\n\n")
	_, _ = fmt.Fprintf(w, "- Language: %s\n- Theme: %s\n- Notifications: %t\n- Sound: %t\n- Auto-save: %t\n- Data retention: %d days\n",
		s.Language, s.Theme, s.Notifications, s.SoundEnabled, s.AutoSave, s.DataRetentionDays)
	return nil
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

func (e *MarkdownExporter) Extension() string {
	return "md"
}

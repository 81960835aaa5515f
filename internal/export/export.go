// Package export writes the user's data as a single document.
package export

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/runnerr0/mindwell/internal/journal"
	"github.com/runnerr0/mindwell/internal/mood"
	"github.com/runnerr0/mindwell/internal/settings"
)

// Bundle is everything an export contains.
type Bundle struct {
	JournalEntries []journal.Entry    `json:"journalEntries" yaml:"journal_entries"`
	MoodHistory    []mood.Observation `json:"moodHistory" yaml:"mood_history"`
	Settings       settings.Settings  `json:"settings" yaml:"settings"`
}

// Exporter defines the interface for all export formats
type Exporter interface {
	Export(b *Bundle, w io.Writer) error
	Extension() string
}

// NewExporter creates a new exporter based on format
func NewExporter(format string) (Exporter, error) {
	switch format {
	case "json", "":
		return &JSONExporter{}, nil
	case "yaml", "yml":
		return &YAMLExporter{}, nil
	case "md", "markdown":
		return &MarkdownExporter{}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s (supported: json, yaml, md)", format)
	}
}

// FileName returns the default export file name for now.
func FileName(now time.Time, e Exporter) string {
	return fmt.Sprintf("mindwell-data-%s.%s", now.Format("2006-01-02"), e.Extension())
}

// Collect reads the exported records from their services. Missing
// records export as empty lists.
func Collect(ctx context.Context, j *journal.Service, m *mood.Service, s *settings.Service) (*Bundle, error) {
	entries, err := j.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("read journal: %w", err)
	}
	history, err := m.History(ctx)
	if err != nil {
		return nil, fmt.Errorf("read mood history: %w", err)
	}
	st, err := s.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}

	b := &Bundle{JournalEntries: entries, MoodHistory: history, Settings: st}
	if b.JournalEntries == nil {
		b.JournalEntries = []journal.Entry{}
	}
	if b.MoodHistory == nil {
		b.MoodHistory = []mood.Observation{}
	}
	return b, nil
}

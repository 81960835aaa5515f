// Package journal keeps free-form reflection entries.
package journal

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/runnerr0/mindwell/internal/errs"
	"github.com/runnerr0/mindwell/internal/storage"
)

// DefaultMood is used when a draft names no mood.
const DefaultMood = "neutral"

// Moods maps the journal mood labels to their display emoji.
var Moods = map[string]string{
	"happy":      "😊",
	"calm":       "😌",
	"excited":    "🤩",
	"grateful":   "🙏",
	"peaceful":   "☮️",
	"sad":        "😢",
	"anxious":    "😰",
	"angry":      "😠",
	"frustrated": "😤",
	"worried":    "😟",
	"tired":      "😴",
	"confused":   "😕",
	"neutral":    "😐",
}

// Entry is a saved journal entry.
type Entry struct {
	ID        string    `json:"id" yaml:"id"`
	Title     string    `json:"title" yaml:"title"`
	Content   string    `json:"content" yaml:"content"`
	Mood      string    `json:"mood" yaml:"mood"`
	Timestamp time.Time `json:"date" yaml:"date"`
	Tags      []string  `json:"tags" yaml:"tags"`
}

// Draft is an entry being written or edited.
type Draft struct {
	Title   string
	Content string
	Mood    string
	Tags    []string
}

// AddTag appends tag after trimming. Empty and duplicate tags are ignored.
func (d *Draft) AddTag(tag string) {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return
	}
	for _, t := range d.Tags {
		if t == tag {
			return
		}
	}
	d.Tags = append(d.Tags, tag)
}

// RemoveTag drops tag if present.
func (d *Draft) RemoveTag(tag string) {
	out := d.Tags[:0]
	for _, t := range d.Tags {
		if t != tag {
			out = append(out, t)
		}
	}
	d.Tags = out
}

// DraftFrom opens an existing entry for editing.
func DraftFrom(e Entry) Draft {
	return Draft{
		Title:   e.Title,
		Content: e.Content,
		Mood:    e.Mood,
		Tags:    append([]string(nil), e.Tags...),
	}
}

// Service stores entries under a single key, newest first.
type Service struct {
	records *storage.Records
	now     func() time.Time
	newID   func() string
}

// Option configures a Service.
type Option func(*Service)

// WithClock sets the source of entry timestamps. Nil keeps time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

func NewService(records *storage.Records, opts ...Option) *Service {
	s := &Service{
		records: records,
		now:     time.Now,
		newID:   func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List returns all entries, newest first.
func (s *Service) List(ctx context.Context) ([]Entry, error) {
	var entries []Entry
	if _, err := s.records.Load(ctx, storage.KeyJournalEntries, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Get returns the entry with id.
func (s *Service) Get(ctx context.Context, id string) (Entry, error) {
	entries, err := s.List(ctx)
	if err != nil {
		return Entry{}, err
	}
	for _, e := range entries {
		if e.ID == id {
			return e, nil
		}
	}
	return Entry{}, &errs.NotFoundError{Kind: "journal entry", ID: id}
}

// Save stores d as a new entry when editingID is empty; otherwise it
// replaces the whole entry with that id in place.
func (s *Service) Save(ctx context.Context, d Draft, editingID string) (Entry, error) {
	if strings.TrimSpace(d.Content) == "" {
		return Entry{}, errs.Invalid("content", d.Content, "must not be empty")
	}

	entries, err := s.List(ctx)
	if err != nil {
		return Entry{}, err
	}

	now := s.now()
	entry := Entry{
		ID:        editingID,
		Title:     d.Title,
		Content:   d.Content,
		Mood:      d.Mood,
		Timestamp: now,
		Tags:      append([]string{}, d.Tags...),
	}
	if strings.TrimSpace(entry.Title) == "" {
		entry.Title = "Journal Entry - " + now.Format("Jan 2, 2006")
	}
	if entry.Mood == "" {
		entry.Mood = DefaultMood
	}

	if editingID == "" {
		entry.ID = s.newID()
		entries = append([]Entry{entry}, entries...)
	} else {
		idx := indexOf(entries, editingID)
		if idx < 0 {
			return Entry{}, &errs.NotFoundError{Kind: "journal entry", ID: editingID}
		}
		entries[idx] = entry
	}

	if err := s.records.Save(ctx, storage.KeyJournalEntries, entries); err != nil {
		return Entry{}, err
	}
	return entry, nil
}

// Delete removes the entry with id.
func (s *Service) Delete(ctx context.Context, id string) error {
	entries, err := s.List(ctx)
	if err != nil {
		return err
	}
	idx := indexOf(entries, id)
	if idx < 0 {
		return &errs.NotFoundError{Kind: "journal entry", ID: id}
	}
	entries = append(entries[:idx], entries[idx+1:]...)
	return s.records.Save(ctx, storage.KeyJournalEntries, entries)
}

func indexOf(entries []Entry, id string) int {
	for i, e := range entries {
		if e.ID == id {
			return i
		}
	}
	return -1
}

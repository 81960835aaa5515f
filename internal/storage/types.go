package storage

import (
	"context"
	"time"
)

// Keys of the persisted store. Each holds one whole JSON document.
const (
	KeyMoodHistory    = "mindwell-mood-history"
	KeyStreak         = "mindwell-streak"
	KeyJournalEntries = "mindwell-journal-entries"
	KeySettings       = "mindwell-settings"
	KeyChatHistory    = "mindwell-chat-history"
	KeyMindfulnessLog = "mindwell-mindfulness-log"
)

// UserDataKeys are the keys removed by a purge. Settings survive a purge.
var UserDataKeys = []string{
	KeyJournalEntries,
	KeyMoodHistory,
	KeyStreak,
	KeyChatHistory,
	KeyMindfulnessLog,
}

// KV is the persisted key/value collaborator: synchronous get/set of
// JSON-serializable text, whole-value overwrite.
type KV interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Keys(ctx context.Context) ([]string, error)
}

// Auditor is implemented by stores that keep an audit trail.
type Auditor interface {
	Audit(ctx context.Context, action, detail string) error
}

// Stats holds aggregate statistics about the store.
type Stats struct {
	TotalKeys  int
	TotalBytes int64
	Keys       []KeySize
}

// KeySize pairs a key with the byte length of its stored value.
type KeySize struct {
	Key       string
	Bytes     int64
	UpdatedAt time.Time
}

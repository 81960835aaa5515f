package cli

import (
	"bytes"
	"context"
	"database/sql"
	"io"
	"os"
	"strings"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/runnerr0/mindwell/internal/chat"
	"github.com/runnerr0/mindwell/internal/config"
	"github.com/runnerr0/mindwell/internal/storage"
)

// captureOutput captures stdout during fn execution and returns it as a string.
func captureOutput(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	done := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		done <- buf.String()
	}()

	fn()

	w.Close()
	os.Stdout = old
	return <-done
}

// newTestApp returns an app over a migrated in-memory SQLite store.
func newTestApp(t *testing.T) *app {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, storage.NewMigrationRunner(db).Run(context.Background()))

	store, err := storage.NewSQLiteStore(db)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	return &app{
		cfg:      config.DefaultConfig(),
		kv:       store,
		records:  storage.NewRecords(store, zap.NewNop()),
		logger:   zap.NewNop(),
		stdin:    strings.NewReader(""),
		now:      time.Now,
		tick:     time.Millisecond,
		location: ":memory:",
	}
}

// fakeCompleter replies with reply, or fails with err.
type fakeCompleter struct {
	reply string
	err   error
	reqs  []chat.Request
}

func (f *fakeCompleter) Complete(_ context.Context, req chat.Request) (string, error) {
	f.reqs = append(f.reqs, req)
	return f.reply, f.err
}

// fixedRand always picks index 0.
type fixedRand struct{}

func (fixedRand) Intn(int) int { return 0 }

package cli

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"github.com/runnerr0/mindwell/internal/chat"
	"github.com/runnerr0/mindwell/internal/config"
	"github.com/runnerr0/mindwell/internal/journal"
	"github.com/runnerr0/mindwell/internal/logging"
	"github.com/runnerr0/mindwell/internal/mindfulness"
	"github.com/runnerr0/mindwell/internal/mood"
	"github.com/runnerr0/mindwell/internal/provider"
	"github.com/runnerr0/mindwell/internal/sentiment"
	"github.com/runnerr0/mindwell/internal/settings"
	"github.com/runnerr0/mindwell/internal/storage"
)

// app bundles what a command needs. Commands open one from config in
// Execute; tests inject their own.
type app struct {
	cfg        *config.Config
	kv         storage.KV
	records    *storage.Records
	logger     *zap.Logger
	stdin      io.Reader
	now        func() time.Time
	completer  chat.Completer       // nil answers with fallback replies
	classifier sentiment.Classifier // nil scores with keywords only
	rand       chat.RandSource
	tick       time.Duration // wall-clock length of one session second
	location   string        // store path shown by status

	closers []func() error
}

// withApp runs fn against the injected app, or opens one from config.
func withApp(injected *app, g *GlobalFlags, fn func(*app) error) error {
	if injected != nil {
		injected.logger = logging.OrNop(injected.logger)
		return fn(injected)
	}
	a, err := openApp(g)
	if err != nil {
		return err
	}
	defer a.Close()
	return fn(a)
}

// openApp loads config, builds the logger, opens the configured store and
// wires the remote capabilities whose credentials are present.
func openApp(g *GlobalFlags) (*app, error) {
	cfg, err := loadConfig(g)
	if err != nil {
		return nil, err
	}

	opts, err := logging.FromConfig(cfg, g.Verbose)
	if err != nil {
		return nil, fmt.Errorf("resolve log path: %w", err)
	}
	logger, err := logging.New(opts)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	kv, location, closeStore, err := openStore(cfg)
	if err != nil {
		_ = logger.Sync()
		return nil, err
	}

	a := &app{
		cfg:      cfg,
		kv:       kv,
		records:  storage.NewRecords(kv, logger),
		logger:   logger,
		stdin:    os.Stdin,
		now:      time.Now,
		tick:     time.Second,
		location: location,
		closers:  []func() error{closeStore, func() error { _ = logger.Sync(); return nil }},
	}

	if c, err := provider.ChatFromConfig(cfg.Chat, os.Getenv); err == nil {
		a.completer = c
	} else {
		logger.Debug("chat service disabled", zap.Error(err))
	}
	if cfg.Sentiment.ClassifierEnabled {
		if c, err := provider.ClassifierFromConfig(cfg.Sentiment, os.Getenv); err == nil {
			a.classifier = c
		} else {
			logger.Warn("sentiment classifier disabled", zap.Error(err))
		}
	}

	return a, nil
}

// Close releases the store and flushes the logger.
func (a *app) Close() error {
	var errList []error
	for _, c := range a.closers {
		if err := c(); err != nil {
			errList = append(errList, err)
		}
	}
	return errors.Join(errList...)
}

// loadConfig reads --config when given, otherwise the default path
// (written with defaults on first run).
func loadConfig(g *GlobalFlags) (*config.Config, error) {
	if g != nil && g.Config != "" {
		path, err := config.ExpandPath(g.Config)
		if err != nil {
			return nil, err
		}
		return config.Load(path)
	}
	return config.LoadOrCreate()
}

// openStore opens the configured backend. The returned string names where
// the data lives.
func openStore(cfg *config.Config) (storage.KV, string, func() error, error) {
	dir, err := cfg.DataDir()
	if err != nil {
		return nil, "", nil, err
	}

	if cfg.Storage.Backend == "file" {
		path := filepath.Join(dir, cfg.Storage.FilesDir)
		fs, err := storage.NewFileStore(path)
		if err != nil {
			return nil, "", nil, err
		}
		return fs, path, func() error { return nil }, nil
	}

	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, "", nil, fmt.Errorf("create database directory: %w", err)
	}
	dbPath := filepath.Join(dir, cfg.Storage.SQLiteFile)

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, "", nil, fmt.Errorf("open database: %w", err)
	}

	runner := storage.NewMigrationRunner(db)
	if err := runner.Run(context.Background()); err != nil {
		db.Close()
		return nil, "", nil, fmt.Errorf("run migrations: %w", err)
	}

	store, err := storage.NewSQLiteStore(db)
	if err != nil {
		db.Close()
		return nil, "", nil, fmt.Errorf("create store: %w", err)
	}

	closeFn := func() error {
		store.Close()
		return db.Close()
	}
	return store, dbPath, closeFn, nil
}

func (a *app) historyLimit() int {
	if a.cfg == nil {
		return mood.HistoryLimit
	}
	return a.cfg.Mood.HistoryLimit
}

func (a *app) moods() *mood.Service {
	return mood.NewService(a.records, a.historyLimit(), mood.WithClock(a.now))
}

func (a *app) journal() *journal.Service {
	return journal.NewService(a.records, journal.WithClock(a.now))
}

func (a *app) settings() *settings.Service {
	return settings.NewService(a.records)
}

func (a *app) tracker() *mindfulness.Tracker {
	return mindfulness.NewTracker(a.records, mindfulness.WithClock(a.now))
}

func (a *app) scorer() *sentiment.Scorer {
	opts := []sentiment.Option{sentiment.WithLogger(a.logger)}
	if a.classifier != nil {
		opts = append(opts, sentiment.WithClassifier(a.classifier))
	}
	return sentiment.NewScorer(opts...)
}

func (a *app) responder() *chat.Responder {
	opts := []chat.Option{chat.WithLogger(a.logger), chat.WithClock(a.now)}
	if a.rand != nil {
		opts = append(opts, chat.WithRand(a.rand))
	}
	return chat.NewResponder(a.completer, opts...)
}

// formatBytes formats a byte count into a human-readable string.
func formatBytes(b int64) string {
	switch {
	case b >= 1<<30:
		return fmt.Sprintf("%.1f GB", float64(b)/float64(1<<30))
	case b >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(b)/float64(1<<20))
	case b >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(b)/float64(1<<10))
	default:
		return fmt.Sprintf("%d B", b)
	}
}

// pluralDays formats n as "1 day" or "n days".
func pluralDays(n int) string {
	if n == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", n)
}

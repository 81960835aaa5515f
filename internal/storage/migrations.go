package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// migration is one versioned schema step.
type migration struct {
	Version int
	Name    string
	Apply   func(tx *sql.Tx) error
}

// schemaMigrations are applied in order; versions must strictly increase.
var schemaMigrations = []migration{
	{Version: 1, Name: "kv_schema", Apply: migrateV001},
}

// MigrationRunner brings a SQLite database up to the current schema.
type MigrationRunner struct {
	db         *sql.DB
	migrations []migration
}

func NewMigrationRunner(db *sql.DB) *MigrationRunner {
	return &MigrationRunner{db: db, migrations: schemaMigrations}
}

// Run applies every migration whose version is not yet recorded in
// schema_migrations, each in its own transaction.
func (r *MigrationRunner) Run(ctx context.Context) error {
	if err := checkOrder(r.migrations); err != nil {
		return err
	}

	// WAL keeps readers unblocked while a command writes a whole value back.
	if _, err := r.db.ExecContext(ctx, "PRAGMA journal_mode = WAL"); err != nil {
		return fmt.Errorf("set WAL mode: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version    INTEGER PRIMARY KEY,
			name       TEXT NOT NULL,
			applied_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)
	`); err != nil {
		return fmt.Errorf("create schema_migrations: %w", err)
	}

	done, err := r.Applied(ctx)
	if err != nil {
		return err
	}
	for _, m := range r.migrations {
		if _, ok := done[m.Version]; ok {
			continue
		}
		if err := r.applyOne(ctx, m); err != nil {
			return fmt.Errorf("migration %d (%s): %w", m.Version, m.Name, err)
		}
	}
	return nil
}

// Applied returns the recorded migration names keyed by version.
func (r *MigrationRunner) Applied(ctx context.Context) (map[int]string, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT version, name FROM schema_migrations")
	if err != nil {
		return nil, fmt.Errorf("read schema_migrations: %w", err)
	}
	defer rows.Close()

	out := map[int]string{}
	for rows.Next() {
		var (
			v    int
			name string
		)
		if err := rows.Scan(&v, &name); err != nil {
			return nil, err
		}
		out[v] = name
	}
	return out, rows.Err()
}

// CurrentVersion returns the highest applied version, 0 on a fresh database.
func (r *MigrationRunner) CurrentVersion(ctx context.Context) (int, error) {
	var v sql.NullInt64
	if err := r.db.QueryRowContext(ctx, "SELECT MAX(version) FROM schema_migrations").Scan(&v); err != nil {
		return 0, err
	}
	return int(v.Int64), nil
}

func (r *MigrationRunner) applyOne(ctx context.Context, m migration) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck

	if err := m.Apply(tx); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx,
		"INSERT INTO schema_migrations (version, name) VALUES (?, ?)", m.Version, m.Name,
	); err != nil {
		return fmt.Errorf("record: %w", err)
	}
	return tx.Commit()
}

func checkOrder(ms []migration) error {
	prev := 0
	for _, m := range ms {
		if m.Version <= prev {
			return fmt.Errorf("migration %q has version %d, want > %d", m.Name, m.Version, prev)
		}
		prev = m.Version
	}
	return nil
}

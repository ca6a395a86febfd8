package documents

import (
	"context"
	"database/sql"
	stderrors "errors"
	"io/fs"
	"path/filepath"
	"slices"
	"sort"
	"strings"
	"time"

	// registers the "sqlite" driver
	_ "modernc.org/sqlite"

	"github.com/KirkDiggler/rpg-hud/internal/errors"
	"github.com/KirkDiggler/rpg-hud/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-hud/internal/repositories/documents/migrations"
)

const (
	sqliteDSNOptions = "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	migrationTable   = "schema_migrations"
	migrateUpMarker  = "-- +migrate Up"
	migrateDownMark  = "-- +migrate Down"
)

// SQLiteConfig holds the configuration for the SQLite repository
type SQLiteConfig struct {
	Path  string
	Clock clock.Clock
}

// Validate ensures all required settings are provided
func (c *SQLiteConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("path", strings.TrimSpace(c.Path), vb)
	if c.Clock == nil {
		vb.RequiredField("clock")
	}
	return vb.Build()
}

// SQLiteRepository persists documents in a single SQLite table
type SQLiteRepository struct {
	db    *sql.DB
	clock clock.Clock
}

var _ Repository = (*SQLiteRepository)(nil)

// NewSQLite opens the database file and applies the embedded migrations
func NewSQLite(cfg *SQLiteConfig) (*SQLiteRepository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	db, err := sql.Open("sqlite", filepath.Clean(cfg.Path)+sqliteDSNOptions)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open sqlite database %s", cfg.Path)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, errors.Wrapf(err, "failed to ping sqlite database %s", cfg.Path)
	}
	if err := applyMigrations(db, migrations.FS); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "failed to run migrations")
	}

	return &SQLiteRepository{db: db, clock: cfg.Clock}, nil
}

// Close closes the database handle
func (r *SQLiteRepository) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}

// Save upserts a document
func (r *SQLiteRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if err := validateSave(input); err != nil {
		return nil, err
	}

	doc := &Document{
		Key:       input.Key,
		Data:      slices.Clone(input.Data),
		UpdatedAt: r.clock.Now().UTC(),
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO documents (key, data, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		doc.Key, string(doc.Data), doc.UpdatedAt.UnixMilli(),
	)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to store document %s", input.Key)
	}

	return &SaveOutput{Document: doc}, nil
}

// Load returns one document
func (r *SQLiteRepository) Load(ctx context.Context, input LoadInput) (*LoadOutput, error) {
	if err := validateKey(input.Key); err != nil {
		return nil, err
	}

	var (
		data      string
		updatedAt int64
	)
	row := r.db.QueryRowContext(ctx, `SELECT data, updated_at FROM documents WHERE key = ?`, input.Key)
	if err := row.Scan(&data, &updatedAt); err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, notFound(input.Key)
		}
		return nil, errors.Wrapf(err, "failed to load document %s", input.Key)
	}

	return &LoadOutput{Document: &Document{
		Key:       input.Key,
		Data:      []byte(data),
		UpdatedAt: time.UnixMilli(updatedAt).UTC(),
	}}, nil
}

// Delete removes one document
func (r *SQLiteRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if err := validateKey(input.Key); err != nil {
		return nil, err
	}

	res, err := r.db.ExecContext(ctx, `DELETE FROM documents WHERE key = ?`, input.Key)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete document %s", input.Key)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete document %s", input.Key)
	}

	return &DeleteOutput{Deleted: affected > 0}, nil
}

// List returns keys sharing a prefix
func (r *SQLiteRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT key FROM documents WHERE substr(key, 1, ?) = ? ORDER BY key`,
		len(input.Prefix), input.Prefix,
	)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list documents with prefix %q", input.Prefix)
	}
	defer func() { _ = rows.Close() }()

	keys := []string{}
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, errors.Wrap(err, "failed to scan document key")
		}
		keys = append(keys, key)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to list documents")
	}

	return &ListOutput{Keys: keys}, nil
}

// applyMigrations runs each embedded .sql file once, in name order
func applyMigrations(db *sql.DB, migrationFS fs.FS) error {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS ` + migrationTable + ` (
		name TEXT PRIMARY KEY,
		applied_at INTEGER NOT NULL
	)`); err != nil {
		return errors.Wrap(err, "failed to ensure migration table")
	}

	entries, err := fs.ReadDir(migrationFS, ".")
	if err != nil {
		return errors.Wrap(err, "failed to read migrations")
	}

	var files []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			files = append(files, entry.Name())
		}
	}
	sort.Strings(files)

	for _, name := range files {
		var applied int
		err := db.QueryRow(`SELECT COUNT(*) FROM `+migrationTable+` WHERE name = ?`, name).Scan(&applied)
		if err != nil {
			return errors.Wrapf(err, "failed to check migration %s", name)
		}
		if applied > 0 {
			continue
		}

		content, err := fs.ReadFile(migrationFS, name)
		if err != nil {
			return errors.Wrapf(err, "failed to read migration %s", name)
		}

		tx, err := db.Begin()
		if err != nil {
			return errors.Wrapf(err, "failed to begin migration %s", name)
		}
		if _, err := tx.Exec(upSection(string(content))); err != nil {
			_ = tx.Rollback()
			return errors.Wrapf(err, "failed to apply migration %s", name)
		}
		if _, err := tx.Exec(`INSERT INTO `+migrationTable+` (name, applied_at) VALUES (?, ?)`,
			name, time.Now().UTC().UnixMilli()); err != nil {
			_ = tx.Rollback()
			return errors.Wrapf(err, "failed to record migration %s", name)
		}
		if err := tx.Commit(); err != nil {
			return errors.Wrapf(err, "failed to commit migration %s", name)
		}
	}

	return nil
}

func upSection(content string) string {
	start := strings.Index(content, migrateUpMarker)
	if start == -1 {
		return content
	}
	content = content[start+len(migrateUpMarker):]
	if end := strings.Index(content, migrateDownMark); end != -1 {
		content = content[:end]
	}
	return content
}

package character

import (
	"context"
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/KirkDiggler/coc-sheet-api/internal/entities/coc"
	"github.com/KirkDiggler/coc-sheet-api/internal/errors"
	"github.com/KirkDiggler/coc-sheet-api/internal/pkg/clock"
)

var sqliteInitStatements = []string{
	"PRAGMA journal_mode = WAL",
	"PRAGMA busy_timeout = 5000",
}

var sqliteMigrations = []string{
	`CREATE TABLE IF NOT EXISTS characters (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL DEFAULT '',
		player TEXT NOT NULL DEFAULT '' COLLATE NOCASE,
		updated_at INTEGER NOT NULL DEFAULT 0,
		document TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_characters_updated_at ON characters(updated_at)`,
	`CREATE INDEX IF NOT EXISTS idx_characters_player ON characters(player)`,
}

// SQLiteConfig contains configuration for the SQLite character repository.
type SQLiteConfig struct {
	// Path of the database file; the directory is created if missing
	Path  string
	Clock clock.Clock
}

// Validate validates the SQLiteConfig.
func (cfg *SQLiteConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Path == "" {
		return errors.InvalidArgument("path cannot be empty")
	}
	return nil
}

// SQLiteRepository stores each investigator as one JSON document row
type SQLiteRepository struct {
	db    *sql.DB
	clock clock.Clock
}

// NewSQLite opens or creates the database at cfg.Path and runs migrations
func NewSQLite(cfg *SQLiteConfig) (*SQLiteRepository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
		return nil, errors.Wrap(err, "failed to create database directory")
	}

	db, err := sql.Open("sqlite", cfg.Path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open database")
	}

	for _, stmt := range sqliteInitStatements {
		if _, err := db.Exec(stmt); err != nil {
			_ = db.Close()
			return nil, errors.Wrapf(err, "failed to run %q", stmt)
		}
	}

	for i, stmt := range sqliteMigrations {
		if _, err := db.Exec(stmt); err != nil {
			_ = db.Close()
			return nil, errors.Wrapf(err, "failed to run migration %d", i)
		}
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &SQLiteRepository{db: db, clock: c}, nil
}

// Close closes the database connection.
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// List returns investigators most recently updated first
func (r *SQLiteRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	query := `SELECT document FROM characters`
	var args []any
	if p := playerKey(input.Player); p != "" {
		query += ` WHERE player = ?`
		args = append(args, p)
	}
	query += ` ORDER BY updated_at DESC, id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Transport(err, "failed to list characters")
	}
	defer func() {
		_ = rows.Close()
	}()

	characters := []*coc.Character{}
	for rows.Next() {
		var doc string
		if err := rows.Scan(&doc); err != nil {
			return nil, errors.Transport(err, "failed to scan character")
		}
		char, err := decodeDocument(doc)
		if err != nil {
			return nil, err
		}
		characters = append(characters, char)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Transport(err, "failed to list characters")
	}

	return &ListOutput{Characters: characters}, nil
}

func (r *SQLiteRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	var doc string
	err := r.db.QueryRowContext(ctx, `SELECT document FROM characters WHERE id = ?`, input.ID).Scan(&doc)
	if err == sql.ErrNoRows {
		return nil, errors.NotFoundf("character with ID %s not found", input.ID)
	}
	if err != nil {
		return nil, errors.Transport(err, "failed to get character")
	}

	char, err := decodeDocument(doc)
	if err != nil {
		return nil, err
	}
	return &GetOutput{Character: char}, nil
}

func (r *SQLiteRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Character == nil {
		return nil, errors.InvalidArgument(errCharacterNil)
	}
	if input.Character.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	doc, err := json.Marshal(input.Character)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal character data")
	}

	updatedAt := input.Character.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = r.clock.Now()
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO characters (id, name, player, updated_at, document)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			player = excluded.player,
			updated_at = excluded.updated_at,
			document = excluded.document`,
		input.Character.ID,
		input.Character.Name,
		playerKey(input.Character.Player),
		updatedAt.UnixMilli(),
		string(doc),
	)
	if err != nil {
		return nil, errors.Transport(err, "failed to save character")
	}

	return &SaveOutput{Character: input.Character}, nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	res, err := r.db.ExecContext(ctx, `DELETE FROM characters WHERE id = ?`, input.ID)
	if err != nil {
		return nil, errors.Transport(err, "failed to delete character")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, errors.Transport(err, "failed to delete character")
	}
	if n == 0 {
		return nil, errors.NotFoundf("character with ID %s not found", input.ID)
	}

	return &DeleteOutput{}, nil
}

func decodeDocument(doc string) (*coc.Character, error) {
	var char coc.Character
	if err := json.Unmarshal([]byte(doc), &char); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal character data")
	}
	return &char, nil
}

// ensure the SQLite repository satisfies Repository
var _ Repository = (*SQLiteRepository)(nil)

//go:build sqlite

package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/inovacc/notr/internal/model"
	"github.com/inovacc/notr/internal/params"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS notes (
    position   INTEGER PRIMARY KEY,
    id         TEXT NOT NULL,
    title      TEXT NOT NULL,
    content    TEXT NOT NULL,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS config (
    id      INTEGER PRIMARY KEY CHECK (id = 1),
    payload TEXT NOT NULL
);`

// SQLite implements the Store interface using modernc.org/sqlite.
type SQLite struct {
	db *sql.DB
}

// NewSQLite creates a new SQLite store at the specified path.
// This is primarily exposed for testing purposes.
func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// SQLite doesn't handle multiple writers well
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(sqliteSchema); err != nil {
		_ = db.Close()

		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &SQLite{db: db}, nil
}

// Close closes the database.
func (s *SQLite) Close() error {
	return s.db.Close()
}

func initDB() (Store, error) {
	path := filepath.Join(params.AppdataDir, "notr.db")

	return NewSQLite(path)
}

func (s *SQLite) Ping() error {
	return s.db.Ping()
}

func (s *SQLite) LoadNotes() ([]model.Note, error) {
	rows, err := s.db.Query(`SELECT id, title, content, created_at, updated_at FROM notes ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notes := []model.Note{}

	for rows.Next() {
		var (
			n                    model.Note
			createdAt, updatedAt string
		)

		if err := rows.Scan(&n.ID, &n.Title, &n.Content, &createdAt, &updatedAt); err != nil {
			return nil, err
		}

		if n.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
		}

		if n.UpdatedAt, err = parseTime(updatedAt); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
		}

		notes = append(notes, n)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return notes, nil
}

func (s *SQLite) SaveNotes(notes []model.Note) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}

	if _, err := tx.Exec(`DELETE FROM notes`); err != nil {
		_ = tx.Rollback()

		return err
	}

	stmt, err := tx.Prepare(`INSERT INTO notes (position, id, title, content, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		_ = tx.Rollback()

		return err
	}
	defer stmt.Close()

	for i, n := range notes {
		if _, err := stmt.Exec(i, n.ID, n.Title, n.Content, formatTime(n.CreatedAt), formatTime(n.UpdatedAt)); err != nil {
			_ = tx.Rollback()

			return err
		}
	}

	return tx.Commit()
}

func (s *SQLite) GetConfig() (*model.Config, error) {
	row := s.db.QueryRow(`SELECT payload FROM config WHERE id = 1`)

	var payload string

	err := row.Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		// Return default config if not found
		defaultCfg := model.DefaultConfig()

		return &defaultCfg, nil
	} else if err != nil {
		return nil, err
	}

	var cfg model.Config
	if err := json.Unmarshal([]byte(payload), &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (s *SQLite) SaveConfig(cfg *model.Config) error {
	if cfg == nil {
		return errors.New("config is required")
	}

	data, err := json.Marshal(cfg)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(`INSERT INTO config (id, payload) VALUES (1, ?)
        ON CONFLICT(id) DO UPDATE SET payload = excluded.payload`, string(data))

	return err
}

func formatTime(t time.Time) string {
	return t.Format(time.RFC3339Nano)
}

func parseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}

// Package history keeps a local record of generation requests and their
// results so past programs survive even when the user never saved them to
// the backend. The backend remains authoritative for saved workouts; this
// cache is strictly per-machine convenience.
package history

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/repkit/repkit/internal/models"
)

// Entry is one recorded generation.
type Entry struct {
	ID          string
	CreatedAt   time.Time
	InputText   string
	Preferences *models.Preferences
	Program     models.ProgramResponse
}

// Store is a SQLite-backed history log.
type Store struct {
	path string
	db   *sql.DB
}

// NewStore creates a history store at the given path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Open opens the database, creating the file and schema when missing.
func (s *Store) Open() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open history database: %w", err)
	}
	s.db = db

	_, err = s.db.Exec(`CREATE TABLE IF NOT EXISTS generations (
		id TEXT PRIMARY KEY,
		created_at TEXT NOT NULL,
		input_text TEXT NOT NULL,
		preferences_json TEXT,
		program_json TEXT NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("failed to create history schema: %w", err)
	}
	return nil
}

// Close closes the database.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Record appends a generation result and returns its id.
func (s *Store) Record(inputText string, prefs *models.Preferences, program models.ProgramResponse) (string, error) {
	programJSON, err := json.Marshal(program)
	if err != nil {
		return "", fmt.Errorf("failed to serialize program: %w", err)
	}

	var prefsJSON sql.NullString
	if prefs != nil {
		data, err := json.Marshal(prefs)
		if err != nil {
			return "", fmt.Errorf("failed to serialize preferences: %w", err)
		}
		prefsJSON = sql.NullString{String: string(data), Valid: true}
	}

	id := uuid.New().String()
	_, err = s.db.Exec(
		`INSERT INTO generations (id, created_at, input_text, preferences_json, program_json) VALUES (?, ?, ?, ?, ?)`,
		id, time.Now().UTC().Format(time.RFC3339), inputText, prefsJSON, string(programJSON),
	)
	if err != nil {
		return "", fmt.Errorf("failed to record generation: %w", err)
	}
	return id, nil
}

// List returns entries newest first, capped at limit (0 means no cap).
// Program payloads are loaded in full; history is small by construction.
func (s *Store) List(limit int) ([]Entry, error) {
	query := `SELECT id, created_at, input_text, preferences_json, program_json FROM generations ORDER BY created_at DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// Get returns one entry by id.
func (s *Store) Get(id string) (*Entry, error) {
	row := s.db.QueryRow(
		`SELECT id, created_at, input_text, preferences_json, program_json FROM generations WHERE id = ?`, id)
	entry, err := scanEntry(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("no history entry with id %s", id)
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// Clear deletes all entries.
func (s *Store) Clear() error {
	_, err := s.db.Exec(`DELETE FROM generations`)
	if err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (Entry, error) {
	var entry Entry
	var createdAt string
	var prefsJSON sql.NullString
	var programJSON string

	if err := row.Scan(&entry.ID, &createdAt, &entry.InputText, &prefsJSON, &programJSON); err != nil {
		if err == sql.ErrNoRows {
			return entry, err
		}
		return entry, fmt.Errorf("failed to scan history row: %w", err)
	}

	ts, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return entry, fmt.Errorf("failed to parse history timestamp: %w", err)
	}
	entry.CreatedAt = ts

	if prefsJSON.Valid {
		var prefs models.Preferences
		if err := json.Unmarshal([]byte(prefsJSON.String), &prefs); err != nil {
			return entry, fmt.Errorf("failed to parse stored preferences: %w", err)
		}
		entry.Preferences = &prefs
	}

	if err := json.Unmarshal([]byte(programJSON), &entry.Program); err != nil {
		return entry, fmt.Errorf("failed to parse stored program: %w", err)
	}
	return entry, nil
}

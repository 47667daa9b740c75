// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ledger persists the history of processed notes in a SQLite
// database, letting the pipeline skip PDFs that were already pushed.
package ledger

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/notesmith/pkg/types"
)

const dbFile = "notesmith.db"

// Store manages the ledger SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the ledger database under stateDir, creating the
// schema if it does not exist.
func Open(stateDir string) (*Store, error) {
	if err := os.MkdirAll(stateDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating state directory: %w", err)
	}

	dbPath := filepath.Join(stateDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS notes (
		id TEXT NOT NULL,
		pdf_path TEXT NOT NULL,
		sha256 TEXT NOT NULL,
		title TEXT,
		page_url TEXT,
		status TEXT NOT NULL,
		created_at TEXT NOT NULL,
		PRIMARY KEY (id, sha256)
	)`)
	if err != nil {
		return fmt.Errorf("executing schema statement: %w", err)
	}
	return nil
}

// Record inserts or replaces the ledger entry for a note. The (id, sha256)
// pair is the key: re-pushing a changed PDF under the same name creates a
// new entry instead of overwriting the old one.
func (s *Store) Record(n types.Note) error {
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now().UTC()
	}
	_, err := s.db.Exec(
		`INSERT OR REPLACE INTO notes (id, pdf_path, sha256, title, page_url, status, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		n.ID, n.PDFPath, n.SHA256, n.Title, n.PageURL, string(n.Status),
		n.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("recording note %s: %w", n.ID, err)
	}
	return nil
}

// Lookup returns the entry for a PDF digest, if one exists.
func (s *Store) Lookup(sha string) (types.Note, bool, error) {
	row := s.db.QueryRow(
		`SELECT id, pdf_path, sha256, title, page_url, status, created_at
		 FROM notes WHERE sha256 = ? ORDER BY created_at DESC LIMIT 1`, sha)

	n, err := scanNote(row)
	if err == sql.ErrNoRows {
		return types.Note{}, false, nil
	}
	if err != nil {
		return types.Note{}, false, fmt.Errorf("looking up digest %s: %w", sha, err)
	}
	return n, true, nil
}

// List returns all ledger entries, newest first.
func (s *Store) List() ([]types.Note, error) {
	rows, err := s.db.Query(
		`SELECT id, pdf_path, sha256, title, page_url, status, created_at
		 FROM notes ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("listing notes: %w", err)
	}
	defer rows.Close()

	var notes []types.Note
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning note: %w", err)
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanNote(row rowScanner) (types.Note, error) {
	var n types.Note
	var status, createdAt string
	if err := row.Scan(&n.ID, &n.PDFPath, &n.SHA256, &n.Title, &n.PageURL, &status, &createdAt); err != nil {
		return types.Note{}, err
	}
	n.Status = types.NoteStatus(status)
	if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
		n.CreatedAt = t
	}
	return n, nil
}

// HashFile returns the hex SHA-256 digest of a file's contents.
func HashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("hashing %s: %w", path, err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

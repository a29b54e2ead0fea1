// Package revision tracks document versions and the phrase-level
// rewrite reports computed between them.
package revision

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/prosewatch/prosewatch/pkg/storage"
)

// Schema creates the revision tracking tables.
const Schema = `
CREATE TABLE IF NOT EXISTS documents (
	id              INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id         INTEGER NOT NULL DEFAULT 0,
	name            TEXT NOT NULL,
	url             TEXT NOT NULL,
	created_at      TIMESTAMP NOT NULL,
	last_checked_at TIMESTAMP,
	UNIQUE(user_id, url)
);

CREATE TABLE IF NOT EXISTS revisions (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	document_id INTEGER NOT NULL REFERENCES documents(id) ON DELETE CASCADE,
	content     TEXT NOT NULL,
	checksum    TEXT NOT NULL,
	captured_at TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS reports (
	id              INTEGER PRIMARY KEY AUTOINCREMENT,
	document_id     INTEGER NOT NULL REFERENCES documents(id) ON DELETE CASCADE,
	old_revision_id INTEGER NOT NULL,
	new_revision_id INTEGER NOT NULL,
	additions       TEXT NOT NULL,
	removals        TEXT NOT NULL,
	created_at      TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_revisions_document ON revisions(document_id, id);
CREATE INDEX IF NOT EXISTS idx_reports_document ON reports(document_id, id);
`

// Store provides persistence for documents, revisions, and reports.
type Store struct {
	db *storage.DB
}

// NewStore creates a new store with the given database.
func NewStore(db *storage.DB) *Store {
	return &Store{db: db}
}

// Migrate applies the revision schema.
func (s *Store) Migrate(ctx context.Context) error {
	return s.db.Migrate(ctx, Schema)
}

// Document is a tracked document whose rewrites are monitored.
type Document struct {
	ID            int        `json:"id"`
	UserID        int        `json:"user_id"`
	Name          string     `json:"name"`
	URL           string     `json:"url"`
	CreatedAt     time.Time  `json:"created_at"`
	LastCheckedAt *time.Time `json:"last_checked_at,omitempty"`
}

// Revision is one captured version of a document's text.
type Revision struct {
	ID         int       `json:"id"`
	DocumentID int       `json:"document_id"`
	Content    string    `json:"content"`
	Checksum   string    `json:"checksum"`
	CapturedAt time.Time `json:"captured_at"`
}

// Report holds the phrase lists computed between two revisions.
type Report struct {
	ID            int       `json:"id"`
	DocumentID    int       `json:"document_id"`
	OldRevisionID int       `json:"old_revision_id"`
	NewRevisionID int       `json:"new_revision_id"`
	Additions     []string  `json:"additions"`
	Removals      []string  `json:"removals"`
	CreatedAt     time.Time `json:"created_at"`
}

// AddDocument inserts a document, returning the existing ID when the
// same user already tracks the URL.
func (s *Store) AddDocument(ctx context.Context, userID int, name, url string) (int, error) {
	url = strings.TrimSpace(url)
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO documents (user_id, name, url, created_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(user_id, url) DO UPDATE SET name = excluded.name`,
		userID, name, url, time.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("add document: %w", err)
	}
	// last_insert_rowid is stale after an upsert hits the conflict arm,
	// so resolve the ID with a lookup either way.
	var id int
	row := s.db.QueryRowContext(ctx,
		`SELECT id FROM documents WHERE user_id = ? AND url = ?`, userID, url)
	if err := row.Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// GetDocument returns a document by ID, or nil when not found.
func (s *Store) GetDocument(ctx context.Context, id int) (*Document, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, user_id, name, url, created_at, last_checked_at FROM documents WHERE id = ?`, id)
	d := &Document{}
	if err := row.Scan(&d.ID, &d.UserID, &d.Name, &d.URL, &d.CreatedAt, &d.LastCheckedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return d, nil
}

// ListDocuments returns all documents for a user, ordered by name.
func (s *Store) ListDocuments(ctx context.Context, userID int) ([]Document, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, user_id, name, url, created_at, last_checked_at FROM documents WHERE user_id = ? ORDER BY name`,
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var result []Document
	for rows.Next() {
		var d Document
		if err := rows.Scan(&d.ID, &d.UserID, &d.Name, &d.URL, &d.CreatedAt, &d.LastCheckedAt); err != nil {
			return nil, err
		}
		result = append(result, d)
	}
	return result, rows.Err()
}

// AllDocuments returns every tracked document across users.
func (s *Store) AllDocuments(ctx context.Context) ([]Document, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, user_id, name, url, created_at, last_checked_at FROM documents ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var result []Document
	for rows.Next() {
		var d Document
		if err := rows.Scan(&d.ID, &d.UserID, &d.Name, &d.URL, &d.CreatedAt, &d.LastCheckedAt); err != nil {
			return nil, err
		}
		result = append(result, d)
	}
	return result, rows.Err()
}

// DeleteDocument removes a user's document and its revision history.
func (s *Store) DeleteDocument(ctx context.Context, userID, id int) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM documents WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return fmt.Errorf("delete document: %w", err)
	}
	return nil
}

// UpdateLastChecked stamps the document's last check time.
func (s *Store) UpdateLastChecked(ctx context.Context, id int) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE documents SET last_checked_at = ? WHERE id = ?`, time.Now().UTC(), id)
	return err
}

// SaveRevision stores a captured version of a document's text.
func (s *Store) SaveRevision(ctx context.Context, documentID int, content, checksum string) (int, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO revisions (document_id, content, checksum, captured_at) VALUES (?, ?, ?, ?)`,
		documentID, content, checksum, time.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("save revision: %w", err)
	}
	id, _ := res.LastInsertId()
	return int(id), nil
}

// LatestRevision returns the most recent revision of a document, or
// nil when none has been captured yet.
func (s *Store) LatestRevision(ctx context.Context, documentID int) (*Revision, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, document_id, content, checksum, captured_at FROM revisions
		 WHERE document_id = ? ORDER BY id DESC LIMIT 1`, documentID)
	r := &Revision{}
	if err := row.Scan(&r.ID, &r.DocumentID, &r.Content, &r.Checksum, &r.CapturedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return r, nil
}

// SaveReport persists the phrase lists of a computed diff.
func (s *Store) SaveReport(ctx context.Context, r Report) (int, error) {
	additions, err := json.Marshal(r.Additions)
	if err != nil {
		return 0, fmt.Errorf("marshal additions: %w", err)
	}
	removals, err := json.Marshal(r.Removals)
	if err != nil {
		return 0, fmt.Errorf("marshal removals: %w", err)
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO reports (document_id, old_revision_id, new_revision_id, additions, removals, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		r.DocumentID, r.OldRevisionID, r.NewRevisionID, string(additions), string(removals), time.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("save report: %w", err)
	}
	id, _ := res.LastInsertId()
	return int(id), nil
}

// ListReports returns the most recent reports for a document, newest
// first.
func (s *Store) ListReports(ctx context.Context, documentID, limit int) ([]Report, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, document_id, old_revision_id, new_revision_id, additions, removals, created_at
		 FROM reports WHERE document_id = ? ORDER BY id DESC LIMIT ?`, documentID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var result []Report
	for rows.Next() {
		var r Report
		var additions, removals string
		if err := rows.Scan(&r.ID, &r.DocumentID, &r.OldRevisionID, &r.NewRevisionID,
			&additions, &removals, &r.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(additions), &r.Additions); err != nil {
			return nil, fmt.Errorf("unmarshal additions: %w", err)
		}
		if err := json.Unmarshal([]byte(removals), &r.Removals); err != nil {
			return nil, fmt.Errorf("unmarshal removals: %w", err)
		}
		result = append(result, r)
	}
	return result, rows.Err()
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog persists paper records in a local SQLite database and
// provides CRUD plus the two query modes: structured filtering and the
// keyword prefilter feeding the scan formatter. Every write is gated by
// the shared validation rules before the database is touched.
package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/meshint/paperdesk/internal/validate"
	"github.com/meshint/paperdesk/pkg/types"
)

const defaultDBFile = "papers.db"

// timeFormat is the stored form of created_at and updated_at.
const timeFormat = time.RFC3339Nano

// paperColumns is the column list every paper SELECT uses, in scanPaper
// order.
const paperColumns = `id, title, title_en, authors, authors_en, year,
	tags, summary, fulltext, original_file, created_at, updated_at`

// orderClause is the ordering contract for every record list leaving the
// store: year descending, then title ascending.
const orderClause = ` ORDER BY year DESC, title ASC`

// Store manages the paper catalog SQLite database. All operations are
// synchronous; the caller blocks until the statement completes.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore opens or creates the catalog database at cfg.Path (papers.db
// when empty) and creates the schema if it does not exist.
func NewStore(cfg types.CatalogConfig) (*Store, error) {
	path := cfg.Path
	if path == "" {
		path = defaultDBFile
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, storageErr("opening database", err)
	}

	s := &Store{db: db, path: path}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Path returns the database file path, for whole-file backup and restore.
func (s *Store) Path() string {
	return s.path
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS papers (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			title_en TEXT,
			authors TEXT NOT NULL,
			authors_en TEXT,
			year INTEGER NOT NULL,
			tags TEXT,
			summary TEXT,
			fulltext TEXT,
			original_file TEXT,
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_papers_year ON papers(year)`,
		`CREATE INDEX IF NOT EXISTS idx_papers_title ON papers(title)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return storageErr("creating schema", err)
		}
	}
	return nil
}

// Create validates the editable fields and inserts a new paper with fresh
// created_at = updated_at. It returns the assigned id. The id and
// timestamps on the input are ignored.
func (s *Store) Create(ctx context.Context, p types.Paper) (int64, error) {
	if err := validate.Fields(p); err != nil {
		return 0, err
	}

	now := time.Now().UTC().Format(timeFormat)
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO papers
			(title, title_en, authors, authors_en, year, tags,
			 summary, fulltext, original_file, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.Title, nullable(p.TitleEN), p.Authors, nullable(p.AuthorsEN),
		p.Year, encodeTags(p.Tags), nullable(p.Summary),
		nullable(p.Fulltext), nullable(p.OriginalFile), now, now,
	)
	if err != nil {
		return 0, storageErr("inserting paper", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, storageErr("reading inserted id", err)
	}
	return id, nil
}

// Get returns the paper with the given id, or ErrNotFound.
func (s *Store) Get(ctx context.Context, id int64) (types.Paper, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+paperColumns+` FROM papers WHERE id = ?`, id)

	p, err := scanPaper(row)
	if err == sql.ErrNoRows {
		return types.Paper{}, ErrNotFound
	}
	if err != nil {
		return types.Paper{}, err
	}
	return p, nil
}

// Update re-validates the fields as in Create and replaces all editable
// fields of the paper, refreshing updated_at. The id and created_at are
// never touched. Returns ErrNotFound if the id does not exist.
func (s *Store) Update(ctx context.Context, id int64, p types.Paper) error {
	if err := validate.Fields(p); err != nil {
		return err
	}

	now := time.Now().UTC().Format(timeFormat)
	res, err := s.db.ExecContext(ctx,
		`UPDATE papers
		 SET title = ?, title_en = ?, authors = ?, authors_en = ?, year = ?,
		     tags = ?, summary = ?, fulltext = ?, original_file = ?,
		     updated_at = ?
		 WHERE id = ?`,
		p.Title, nullable(p.TitleEN), p.Authors, nullable(p.AuthorsEN),
		p.Year, encodeTags(p.Tags), nullable(p.Summary),
		nullable(p.Fulltext), nullable(p.OriginalFile), now, id,
	)
	if err != nil {
		return storageErr("updating paper", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return storageErr("checking update result", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the paper permanently. Returns ErrNotFound if the id does
// not exist; deleting an already-deleted id fails the same way.
func (s *Store) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM papers WHERE id = ?`, id)
	if err != nil {
		return storageErr("deleting paper", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return storageErr("checking delete result", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// List returns all papers ordered by year descending, then title
// ascending. Consumers rely on this ordering for display.
func (s *Store) List(ctx context.Context) ([]types.Paper, error) {
	return s.queryPapers(ctx,
		`SELECT `+paperColumns+` FROM papers`+orderClause)
}

func (s *Store) queryPapers(ctx context.Context, query string, args ...any) ([]types.Paper, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storageErr("querying papers", err)
	}
	defer rows.Close()

	var papers []types.Paper
	for rows.Next() {
		p, err := scanPaper(rows)
		if err != nil {
			return nil, err
		}
		papers = append(papers, p)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("reading result rows", err)
	}
	return papers, nil
}

// rowScanner abstracts *sql.Row and *sql.Rows for scanPaper.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanPaper(row rowScanner) (types.Paper, error) {
	var (
		p        types.Paper
		titleEN  sql.NullString
		authEN   sql.NullString
		tagsJSON sql.NullString
		summary  sql.NullString
		fulltext sql.NullString
		origFile sql.NullString
		created  string
		updated  string
	)

	err := row.Scan(
		&p.ID, &p.Title, &titleEN, &p.Authors, &authEN, &p.Year,
		&tagsJSON, &summary, &fulltext, &origFile, &created, &updated,
	)
	if err == sql.ErrNoRows {
		return types.Paper{}, err
	}
	if err != nil {
		return types.Paper{}, storageErr("scanning paper row", err)
	}

	p.TitleEN = titleEN.String
	p.AuthorsEN = authEN.String
	p.Summary = summary.String
	p.Fulltext = fulltext.String
	p.OriginalFile = origFile.String

	if tagsJSON.Valid && tagsJSON.String != "" {
		if err := json.Unmarshal([]byte(tagsJSON.String), &p.Tags); err != nil {
			return types.Paper{}, storageErr("decoding tags", err)
		}
	}

	if p.CreatedAt, err = time.Parse(timeFormat, created); err != nil {
		return types.Paper{}, storageErr("parsing created_at", err)
	}
	if p.UpdatedAt, err = time.Parse(timeFormat, updated); err != nil {
		return types.Paper{}, storageErr("parsing updated_at", err)
	}
	return p, nil
}

// encodeTags serializes tags to JSON at the storage edge. The structured
// form is the data-model boundary; only the column holds the string form.
func encodeTags(tags []string) any {
	if len(tags) == 0 {
		return nil
	}
	data, _ := json.Marshal(tags)
	return string(data)
}

// nullable stores empty optional text as NULL.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

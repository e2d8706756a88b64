// Package sqlite implements the announcement store contract over a
// SQLite database with the upstream arXiv_* schema.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/arXiv/arxiv-feed/internal/store"
)

// Compile-time check: Store implements store.Listings.
var _ store.Listings = (*Store)(nil)

const dateLayout = "2006-01-02"

// Store reads announcement data from SQLite.
type Store struct {
	db *sql.DB
}

// Open connects to the database at dsn. The connection is read-only
// from this service's perspective; the schema belongs to the ingestion
// pipeline upstream.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	return &Store{db: db}, nil
}

// Ping checks connectivity.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %w", store.ErrNotReady, err)
	}
	return nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// UpdatesInWindow returns the update events dated within [first, last]
// whose category is in the given set.
func (s *Store) UpdatesInWindow(
	ctx context.Context, first, last time.Time, categories []string,
) ([]store.UpdateEvent, error) {
	if len(categories) == 0 {
		return nil, nil
	}

	query := fmt.Sprintf(
		`SELECT document_id, version, date, action, category
		 FROM arXiv_updates
		 WHERE date BETWEEN ? AND ? AND category IN (%s)`,
		placeholders(len(categories)))

	args := make([]any, 0, 2+len(categories))
	args = append(args, first.Format(dateLayout), last.Format(dateLayout))
	for _, c := range categories {
		args = append(args, c)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying updates: %w", err)
	}
	defer rows.Close()

	var events []store.UpdateEvent
	for rows.Next() {
		var (
			ev   store.UpdateEvent
			date string
		)
		if err := rows.Scan(&ev.DocumentID, &ev.Version, &date, (*string)(&ev.Action), &ev.Category); err != nil {
			return nil, fmt.Errorf("scanning update row: %w", err)
		}
		if ev.Date, err = time.Parse(dateLayout, date); err != nil {
			return nil, fmt.Errorf("parsing update date %q: %w", date, err)
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading update rows: %w", err)
	}
	return events, nil
}

// HasPrimaryIn reports per document whether any membership restricted to
// the category set is primary (MAX over is_primary).
func (s *Store) HasPrimaryIn(
	ctx context.Context, documentIDs []int64, categories []string,
) (map[int64]bool, error) {
	if len(documentIDs) == 0 || len(categories) == 0 {
		return map[int64]bool{}, nil
	}

	query := fmt.Sprintf(
		`SELECT document_id, MAX(is_primary)
		 FROM arXiv_document_category
		 WHERE document_id IN (%s) AND category IN (%s)
		 GROUP BY document_id`,
		placeholders(len(documentIDs)), placeholders(len(categories)))

	args := make([]any, 0, len(documentIDs)+len(categories))
	for _, id := range documentIDs {
		args = append(args, id)
	}
	for _, c := range categories {
		args = append(args, c)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying memberships: %w", err)
	}
	defer rows.Close()

	primary := make(map[int64]bool, len(documentIDs))
	for rows.Next() {
		var (
			id        int64
			isPrimary int
		)
		if err := rows.Scan(&id, &isPrimary); err != nil {
			return nil, fmt.Errorf("scanning membership row: %w", err)
		}
		primary[id] = isPrimary != 0
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading membership rows: %w", err)
	}
	return primary, nil
}

// CurrentMetadata returns the is_current snapshot per document.
func (s *Store) CurrentMetadata(
	ctx context.Context, documentIDs []int64,
) (map[int64]store.Metadata, error) {
	if len(documentIDs) == 0 {
		return map[int64]store.Metadata{}, nil
	}

	query := fmt.Sprintf(
		`SELECT document_id, paper_id, version, title, abstract, authors,
		        abs_categories, license, journal_ref, doi
		 FROM arXiv_metadata
		 WHERE is_current = 1 AND document_id IN (%s)`,
		placeholders(len(documentIDs)))

	args := make([]any, 0, len(documentIDs))
	for _, id := range documentIDs {
		args = append(args, id)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying metadata: %w", err)
	}
	defer rows.Close()

	meta := make(map[int64]store.Metadata, len(documentIDs))
	for rows.Next() {
		var (
			m                           store.Metadata
			title, abstract, authors    sql.NullString
			absCats, license, jref, doi sql.NullString
		)
		if err := rows.Scan(&m.DocumentID, &m.PaperID, &m.Version, &title,
			&abstract, &authors, &absCats, &license, &jref, &doi); err != nil {
			return nil, fmt.Errorf("scanning metadata row: %w", err)
		}
		m.Title = title.String
		m.Abstract = abstract.String
		m.Authors = authors.String
		m.AbsCategories = absCats.String
		m.License = license.String
		m.JournalRef = jref.String
		m.DOI = doi.String
		meta[m.DocumentID] = m
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading metadata rows: %w", err)
	}
	return meta, nil
}

// placeholders builds a "?, ?, ?" list for IN clauses.
func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

// Package store defines the read-only contract against the announcement
// database. Rows are plain value records; the schema is owned by the
// upstream submission system and never written from here.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/arXiv/arxiv-feed/internal/domain"
)

// ErrNotReady signals a store that cannot serve queries yet.
var ErrNotReady = errors.New("store not ready")

// UpdateEvent is one immutable announcement fact for a paper. A paper
// can have several events on different dates and categories; uniqueness
// is (DocumentID, Date, Action, Category).
type UpdateEvent struct {
	DocumentID int64
	Version    int
	Date       time.Time
	Action     domain.Action
	Category   string
}

// Metadata is the current snapshot of a paper version. Optional fields
// come back empty, never as database NULLs.
type Metadata struct {
	DocumentID    int64
	PaperID       string
	Version       int
	Title         string
	Abstract      string
	Authors       string
	AbsCategories string
	License       string
	JournalRef    string
	DOI           string
}

// Listings is the query surface the classification engine needs.
type Listings interface {
	// UpdatesInWindow returns every update event dated within
	// [first, last] (inclusive, date granularity) whose category is in
	// the given set. No eligibility filtering happens here.
	UpdatesInWindow(ctx context.Context, first, last time.Time, categories []string) ([]UpdateEvent, error)

	// HasPrimaryIn reports, per document, whether any of its category
	// memberships restricted to the given set is the primary one.
	// Documents with no membership in the set are absent from the map.
	HasPrimaryIn(ctx context.Context, documentIDs []int64, categories []string) (map[int64]bool, error)

	// CurrentMetadata returns the is_current metadata snapshot per
	// document. Documents lacking a current snapshot are absent.
	CurrentMetadata(ctx context.Context, documentIDs []int64) (map[int64]Metadata, error)
}

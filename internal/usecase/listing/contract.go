package listing

import (
	"context"
	"time"

	"github.com/arXiv/arxiv-feed/internal/store"
)

// Store is the announcement-database surface the classifier needs.
type Store interface {
	UpdatesInWindow(ctx context.Context, first, last time.Time, categories []string) ([]store.UpdateEvent, error)
	HasPrimaryIn(ctx context.Context, documentIDs []int64, categories []string) (map[int64]bool, error)
	CurrentMetadata(ctx context.Context, documentIDs []int64) (map[int64]store.Metadata, error)
}

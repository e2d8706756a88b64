package feed

import (
	"context"
	"time"

	"github.com/arXiv/arxiv-feed/internal/domain"
	"github.com/arXiv/arxiv-feed/internal/serialize"
	"github.com/arXiv/arxiv-feed/internal/usecase/listing"
)

// Lister classifies the papers announced in a window.
type Lister interface {
	Listings(ctx context.Context, first, last time.Time, categories []string) ([]listing.Listing, error)
}

// Cache stores serialized feeds keyed by normalized query.
type Cache interface {
	Get(ctx context.Context, version domain.FeedVersion, rawQuery string) (serialize.Feed, bool)
	Set(ctx context.Context, version domain.FeedVersion, rawQuery string, feed serialize.Feed, ttl time.Duration)
}

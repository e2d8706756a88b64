// Package feed orchestrates one feed request: validate the query,
// expand it against the taxonomy, classify the window's papers,
// assemble documents, and serialize them, with an optional response
// cache around the whole pipeline.
package feed

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/arXiv/arxiv-feed/internal/domain"
	"github.com/arXiv/arxiv-feed/internal/domain/query"
	"github.com/arXiv/arxiv-feed/internal/serialize"
	"github.com/arXiv/arxiv-feed/internal/taxonomy"
)

// DefaultDays is the lookback window length in publication days.
const DefaultDays = 1

// Service builds serialized feeds.
type Service struct {
	taxonomy   *taxonomy.Index
	lister     Lister
	serializer *serialize.Serializer
	cache      Cache
	days       int
	location   *time.Location
	now        func() time.Time
	documents  prometheus.Histogram
	logger     *zap.Logger
}

// New creates a feed service with a one-day window and UTC publication
// midnight.
func New(idx *taxonomy.Index, lister Lister, serializer *serialize.Serializer, logger *zap.Logger) *Service {
	return &Service{
		taxonomy:   idx,
		lister:     lister,
		serializer: serializer,
		days:       DefaultDays,
		location:   time.UTC,
		now:        time.Now,
		logger:     logger,
	}
}

// WithCache attaches a response cache.
func (s *Service) WithCache(cache Cache) *Service {
	s.cache = cache
	return s
}

// WithWindow sets the lookback length and the timezone whose midnight
// bounds a publication day.
func (s *Service) WithWindow(days int, location *time.Location) *Service {
	if days > 0 {
		s.days = days
	}
	if location != nil {
		s.location = location
	}
	return s
}

// WithClock overrides the time source.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// WithDocumentsMetric observes the per-feed document count on the given
// histogram, passed explicitly.
func (s *Service) WithDocumentsMetric(h prometheus.Histogram) *Service {
	s.documents = h
	return s
}

// Feed returns the serialized feed for a raw query in the given
// version. Validation errors wrap the domain sentinels and carry
// caller-facing messages.
func (s *Service) Feed(ctx context.Context, rawQuery string, version domain.FeedVersion) (serialize.Feed, error) {
	if s.cache != nil {
		if cached, ok := s.cache.Get(ctx, version, rawQuery); ok {
			return cached, nil
		}
	}

	req, err := query.Parse(rawQuery, s.taxonomy)
	if err != nil {
		return serialize.Feed{}, err
	}

	first, last := s.window()
	expanded := s.taxonomy.Expand(req.Archives(), req.Categories())

	listings, err := s.lister.Listings(ctx, first, last, expanded)
	if err != nil {
		return serialize.Feed{}, err
	}

	docs := assemble(req.Topics(), listings)
	result, err := s.serializer.Serialize(docs, version, s.now())
	if err != nil {
		return serialize.Feed{}, err
	}

	s.logger.Debug("feed built",
		zap.String("query", rawQuery),
		zap.String("version", string(version)),
		zap.Int("documents", len(docs.Documents)),
	)
	if s.documents != nil {
		s.documents.Observe(float64(len(docs.Documents)))
	}

	if s.cache != nil {
		s.cache.Set(ctx, version, rawQuery, result, s.CacheTTL())
	}
	return result, nil
}

// window returns the inclusive date bounds of the current feed window:
// today's publication midnight back (days-1) publication days.
func (s *Service) window() (first, last time.Time) {
	last = publicationMidnight(s.now(), s.location)
	first = last.AddDate(0, 0, -(s.days - 1))
	return first, last
}

// CacheTTL is the time until the next publication midnight, when the
// feed content changes.
func (s *Service) CacheTTL() time.Duration {
	now := s.now()
	next := publicationMidnight(now, s.location).AddDate(0, 0, 1)
	return next.Sub(now)
}

// publicationMidnight is the start of now's day in the feed timezone.
func publicationMidnight(now time.Time, location *time.Location) time.Time {
	t := now.In(location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, location)
}

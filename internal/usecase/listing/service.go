// Package listing selects, classifies, and orders the papers that
// appear in one feed window.
package listing

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/arXiv/arxiv-feed/internal/domain"
	"github.com/arXiv/arxiv-feed/internal/store"
)

const (
	// DefaultResultLimit caps one feed's entries.
	DefaultResultLimit = 2000
	// ReplaceVersionThreshold excludes replacements of heavily revised
	// papers; a version at or above it is no longer announced.
	ReplaceVersionThreshold = 6
)

// Listing is one classified paper: its current metadata snapshot plus
// the derived listing type.
type Listing struct {
	Meta store.Metadata
	Type domain.ListingType
}

// Service runs the classification pipeline against the store.
type Service struct {
	store  Store
	limit  int
	logger *zap.Logger
}

// New creates a listing service with the default result limit.
func New(st Store, logger *zap.Logger) *Service {
	return &Service{store: st, limit: DefaultResultLimit, logger: logger}
}

// WithResultLimit overrides the result cap.
func (s *Service) WithResultLimit(limit int) *Service {
	if limit > 0 {
		s.limit = limit
	}
	return s
}

// Listings returns at most limit classified papers announced within
// [first, last] under the expanded category set, ordered by listing-type
// weight descending and paper id descending within a type. An empty
// result is a valid outcome, not an error.
func (s *Service) Listings(
	ctx context.Context, first, last time.Time, categories []string,
) ([]Listing, error) {
	events, err := s.store.UpdatesInWindow(ctx, first, last, categories)
	if err != nil {
		return nil, fmt.Errorf("fetching update events: %w", err)
	}

	winners := selectWinners(events)
	if len(winners) == 0 {
		s.logger.Info("no papers matched window",
			zap.Time("first", first),
			zap.Time("last", last),
			zap.Int("categories", len(categories)),
		)
		return nil, nil
	}

	ids := make([]int64, 0, len(winners))
	for id := range winners {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	primary, err := s.store.HasPrimaryIn(ctx, ids, categories)
	if err != nil {
		return nil, fmt.Errorf("fetching category memberships: %w", err)
	}
	meta, err := s.store.CurrentMetadata(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("fetching metadata: %w", err)
	}

	listings := make([]Listing, 0, len(ids))
	for _, id := range ids {
		listingType := domain.Classify(winners[id].Action, primary[id])
		if listingType == domain.ListingNoMatch {
			continue
		}
		m, ok := meta[id]
		if !ok {
			// No current snapshot; nothing to render for this paper.
			continue
		}
		listings = append(listings, Listing{Meta: m, Type: listingType})
	}

	sort.SliceStable(listings, func(i, j int) bool {
		wi, wj := listings[i].Type.Weight(), listings[j].Type.Weight()
		if wi != wj {
			return wi > wj
		}
		return listings[i].Meta.PaperID > listings[j].Meta.PaperID
	})

	if len(listings) > s.limit {
		listings = listings[:s.limit]
	}
	if len(listings) == 0 {
		s.logger.Info("classification produced no listings",
			zap.Time("first", first),
			zap.Time("last", last),
		)
	}
	return listings, nil
}

// selectWinners keeps exactly one eligible event per paper: the one with
// the highest action priority. Group-by row choice is made explicitly
// here rather than left to the database engine. Priority ties break on
// earlier date, then category, so repeated runs agree.
func selectWinners(events []store.UpdateEvent) map[int64]store.UpdateEvent {
	winners := make(map[int64]store.UpdateEvent)
	for _, ev := range events {
		if !eligible(ev) {
			continue
		}
		cur, ok := winners[ev.DocumentID]
		if !ok || beats(ev, cur) {
			winners[ev.DocumentID] = ev
		}
	}
	return winners
}

func eligible(ev store.UpdateEvent) bool {
	if ev.Action == domain.ActionAbsOnly {
		return false
	}
	if ev.Action == domain.ActionReplace && ev.Version >= ReplaceVersionThreshold {
		return false
	}
	return true
}

func beats(a, b store.UpdateEvent) bool {
	pa, pb := a.Action.Priority(), b.Action.Priority()
	if pa != pb {
		return pa > pb
	}
	if !a.Date.Equal(b.Date) {
		return a.Date.Before(b.Date)
	}
	return a.Category < b.Category
}

package listing

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/arXiv/arxiv-feed/internal/domain"
	"github.com/arXiv/arxiv-feed/internal/store"
)

// --- Mocks ---

type mockStore struct {
	events  []store.UpdateEvent
	primary map[int64]bool
	meta    map[int64]store.Metadata

	eventsErr  error
	primaryErr error
	metaErr    error

	lastIDs []int64
}

func (m *mockStore) UpdatesInWindow(
	_ context.Context, _, _ time.Time, _ []string,
) ([]store.UpdateEvent, error) {
	return m.events, m.eventsErr
}

func (m *mockStore) HasPrimaryIn(
	_ context.Context, ids []int64, _ []string,
) (map[int64]bool, error) {
	m.lastIDs = ids
	return m.primary, m.primaryErr
}

func (m *mockStore) CurrentMetadata(
	_ context.Context, _ []int64,
) (map[int64]store.Metadata, error) {
	return m.meta, m.metaErr
}

func day(d string) time.Time {
	t, err := time.Parse("2006-01-02", d)
	if err != nil {
		panic(err)
	}
	return t
}

func meta(id int64, paperID string) store.Metadata {
	return store.Metadata{
		DocumentID: id,
		PaperID:    paperID,
		Version:    1,
		Title:      "Title " + paperID,
		Abstract:   "Abstract " + paperID,
		Authors:    "Jane Doe",
	}
}

// --- Tests ---

func TestListings_NewPrimary(t *testing.T) {
	st := &mockStore{
		events: []store.UpdateEvent{
			{DocumentID: 1, Version: 1, Date: day("2023-10-25"), Action: domain.ActionNew, Category: "astro-ph"},
		},
		primary: map[int64]bool{1: true},
		meta:    map[int64]store.Metadata{1: meta(1, "2310.12345")},
	}
	svc := New(st, zap.NewNop())

	got, err := svc.Listings(context.Background(), day("2023-10-25"), day("2023-10-25"), []string{"astro-ph"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d listings, want 1", len(got))
	}
	if got[0].Type != domain.ListingNew {
		t.Errorf("type = %q, want new", got[0].Type)
	}
	if got[0].Meta.PaperID != "2310.12345" {
		t.Errorf("paper = %q", got[0].Meta.PaperID)
	}
}

func TestListings_CrossWhenNotPrimary(t *testing.T) {
	// A paper whose winning event is "new" but whose primary category
	// is outside the queried set appears as a cross listing.
	st := &mockStore{
		events: []store.UpdateEvent{
			{DocumentID: 2, Version: 1, Date: day("2023-10-26"), Action: domain.ActionNew, Category: "cs.CV"},
		},
		primary: map[int64]bool{2: false},
		meta:    map[int64]store.Metadata{2: meta(2, "2310.12346")},
	}
	svc := New(st, zap.NewNop())

	got, err := svc.Listings(context.Background(), day("2023-10-26"), day("2023-10-26"), []string{"cs.CV"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Type != domain.ListingCross {
		t.Fatalf("got %+v, want one cross listing", got)
	}
}

func TestListings_OnePaperOneEntry(t *testing.T) {
	// Several qualifying events for one paper collapse to the single
	// highest-priority one.
	st := &mockStore{
		events: []store.UpdateEvent{
			{DocumentID: 1, Version: 1, Date: day("2023-10-25"), Action: domain.ActionReplace, Category: "cs.CV"},
			{DocumentID: 1, Version: 1, Date: day("2023-10-25"), Action: domain.ActionNew, Category: "cs.LG"},
			{DocumentID: 1, Version: 1, Date: day("2023-10-26"), Action: domain.ActionCross, Category: "cs.AI"},
		},
		primary: map[int64]bool{1: true},
		meta:    map[int64]store.Metadata{1: meta(1, "2310.12345")},
	}
	svc := New(st, zap.NewNop())

	got, err := svc.Listings(context.Background(), day("2023-10-25"), day("2023-10-26"), []string{"cs.CV", "cs.LG", "cs.AI"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d listings, want 1", len(got))
	}
	if got[0].Type != domain.ListingNew {
		t.Errorf("type = %q, the new event outranks replace and cross", got[0].Type)
	}
}

func TestListings_AbsOnlyExcluded(t *testing.T) {
	st := &mockStore{
		events: []store.UpdateEvent{
			{DocumentID: 1, Version: 2, Date: day("2023-10-25"), Action: domain.ActionAbsOnly, Category: "cs.CV"},
		},
		primary: map[int64]bool{1: true},
		meta:    map[int64]store.Metadata{1: meta(1, "2310.12345")},
	}
	svc := New(st, zap.NewNop())

	got, err := svc.Listings(context.Background(), day("2023-10-25"), day("2023-10-25"), []string{"cs.CV"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("absonly events never produce listings, got %+v", got)
	}
}

func TestListings_HeavilyRevisedReplaceExcluded(t *testing.T) {
	st := &mockStore{
		events: []store.UpdateEvent{
			{DocumentID: 1, Version: 6, Date: day("2023-10-25"), Action: domain.ActionReplace, Category: "cs.CV"},
			{DocumentID: 2, Version: 5, Date: day("2023-10-25"), Action: domain.ActionReplace, Category: "cs.CV"},
		},
		primary: map[int64]bool{2: true},
		meta:    map[int64]store.Metadata{2: meta(2, "2310.12346")},
	}
	svc := New(st, zap.NewNop())

	got, err := svc.Listings(context.Background(), day("2023-10-25"), day("2023-10-25"), []string{"cs.CV"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d listings, want 1", len(got))
	}
	if got[0].Meta.PaperID != "2310.12346" {
		t.Errorf("version 6 replacement should be dropped, got %q", got[0].Meta.PaperID)
	}
}

func TestListings_Ordering(t *testing.T) {
	st := &mockStore{
		events: []store.UpdateEvent{
			{DocumentID: 1, Version: 2, Date: day("2023-10-26"), Action: domain.ActionReplace, Category: "cs.CV"},
			{DocumentID: 2, Version: 1, Date: day("2023-10-26"), Action: domain.ActionNew, Category: "cs.CV"},
			{DocumentID: 3, Version: 1, Date: day("2023-10-26"), Action: domain.ActionNew, Category: "cs.CV"},
			{DocumentID: 4, Version: 1, Date: day("2023-10-26"), Action: domain.ActionCross, Category: "cs.CV"},
		},
		primary: map[int64]bool{1: false, 2: true, 3: true, 4: false},
		meta: map[int64]store.Metadata{
			1: meta(1, "2310.11111"),
			2: meta(2, "2310.22222"),
			3: meta(3, "2310.33333"),
			4: meta(4, "2310.44444"),
		},
	}
	svc := New(st, zap.NewNop())

	got, err := svc.Listings(context.Background(), day("2023-10-26"), day("2023-10-26"), []string{"cs.CV"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 4 {
		t.Fatalf("got %d listings, want 4", len(got))
	}
	// New entries first, paper id descending within a type, then the
	// cross, then the replace-cross.
	wantOrder := []string{"2310.33333", "2310.22222", "2310.44444", "2310.11111"}
	for i, want := range wantOrder {
		if got[i].Meta.PaperID != want {
			t.Errorf("position %d = %q, want %q", i, got[i].Meta.PaperID, want)
		}
	}
}

func TestListings_ResultLimit(t *testing.T) {
	st := &mockStore{
		events: []store.UpdateEvent{
			{DocumentID: 1, Version: 1, Date: day("2023-10-26"), Action: domain.ActionNew, Category: "cs.CV"},
			{DocumentID: 2, Version: 1, Date: day("2023-10-26"), Action: domain.ActionNew, Category: "cs.CV"},
			{DocumentID: 3, Version: 1, Date: day("2023-10-26"), Action: domain.ActionNew, Category: "cs.CV"},
		},
		primary: map[int64]bool{1: true, 2: true, 3: true},
		meta: map[int64]store.Metadata{
			1: meta(1, "2310.11111"),
			2: meta(2, "2310.22222"),
			3: meta(3, "2310.33333"),
		},
	}
	svc := New(st, zap.NewNop()).WithResultLimit(2)

	got, err := svc.Listings(context.Background(), day("2023-10-26"), day("2023-10-26"), []string{"cs.CV"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d listings, want 2", len(got))
	}
	// The cap keeps the top of the ordering.
	if got[0].Meta.PaperID != "2310.33333" || got[1].Meta.PaperID != "2310.22222" {
		t.Errorf("got %q, %q", got[0].Meta.PaperID, got[1].Meta.PaperID)
	}
}

func TestListings_EmptyWindow(t *testing.T) {
	svc := New(&mockStore{}, zap.NewNop())

	got, err := svc.Listings(context.Background(), day("2023-10-26"), day("2023-10-26"), []string{"cs.CV"})
	if err != nil {
		t.Fatalf("an empty window is not an error: %v", err)
	}
	if got != nil {
		t.Errorf("got %+v, want nil", got)
	}
}

func TestListings_MissingMetadataDropped(t *testing.T) {
	st := &mockStore{
		events: []store.UpdateEvent{
			{DocumentID: 1, Version: 1, Date: day("2023-10-26"), Action: domain.ActionNew, Category: "cs.CV"},
			{DocumentID: 2, Version: 1, Date: day("2023-10-26"), Action: domain.ActionNew, Category: "cs.CV"},
		},
		primary: map[int64]bool{1: true, 2: true},
		meta:    map[int64]store.Metadata{2: meta(2, "2310.22222")},
	}
	svc := New(st, zap.NewNop())

	got, err := svc.Listings(context.Background(), day("2023-10-26"), day("2023-10-26"), []string{"cs.CV"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Meta.PaperID != "2310.22222" {
		t.Errorf("papers without a current snapshot are dropped, got %+v", got)
	}
}

func TestListings_StoreError(t *testing.T) {
	wantErr := errors.New("connection refused")
	svc := New(&mockStore{eventsErr: wantErr}, zap.NewNop())

	_, err := svc.Listings(context.Background(), day("2023-10-26"), day("2023-10-26"), []string{"cs.CV"})
	if !errors.Is(err, wantErr) {
		t.Errorf("got %v, want wrapped store error", err)
	}
}

func TestSelectWinners_Deterministic(t *testing.T) {
	// Same priority on two dates: the earlier event wins, on every run.
	events := []store.UpdateEvent{
		{DocumentID: 1, Version: 1, Date: day("2023-10-27"), Action: domain.ActionCross, Category: "cs.LG"},
		{DocumentID: 1, Version: 1, Date: day("2023-10-26"), Action: domain.ActionCross, Category: "cs.AI"},
	}
	for i := 0; i < 10; i++ {
		winners := selectWinners(events)
		if got := winners[1].Category; got != "cs.AI" {
			t.Fatalf("run %d picked %q, want the earlier event", i, got)
		}
	}
}

func TestSelectWinners_CategoryTieBreak(t *testing.T) {
	events := []store.UpdateEvent{
		{DocumentID: 1, Version: 1, Date: day("2023-10-26"), Action: domain.ActionCross, Category: "cs.LG"},
		{DocumentID: 1, Version: 1, Date: day("2023-10-26"), Action: domain.ActionCross, Category: "cs.AI"},
	}
	winners := selectWinners(events)
	if got := winners[1].Category; got != "cs.AI" {
		t.Errorf("same priority and date break on category, got %q", got)
	}
}

package feed

import (
	"strings"

	"github.com/arXiv/arxiv-feed/internal/authors"
	"github.com/arXiv/arxiv-feed/internal/domain"
	"github.com/arXiv/arxiv-feed/internal/usecase/listing"
)

// assemble maps classified listings to output-ready documents. Order is
// preserved; the listing service already ranked and capped.
func assemble(topics []string, listings []listing.Listing) domain.DocumentSet {
	docs := make([]domain.Document, 0, len(listings))
	for _, l := range listings {
		docs = append(docs, assembleDocument(l))
	}
	return domain.DocumentSet{Topics: topics, Documents: docs}
}

func assembleDocument(l listing.Listing) domain.Document {
	m := l.Meta
	return domain.Document{
		PaperID:     m.PaperID,
		Version:     m.Version,
		Title:       m.Title,
		Abstract:    m.Abstract,
		Authors:     authors.Parse(m.Authors),
		Categories:  strings.Fields(m.AbsCategories),
		License:     m.License,
		JournalRef:  m.JournalRef,
		DOI:         m.DOI,
		ListingType: l.Type,
	}
}

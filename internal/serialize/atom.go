package serialize

import (
	"encoding/xml"
	"time"

	"github.com/arXiv/arxiv-feed/internal/domain"
)

type atomDoc struct {
	XMLName xml.Name    `xml:"feed"`
	NS      string      `xml:"xmlns,attr"`
	NSArxiv string      `xml:"xmlns:arxiv,attr"`
	ID      string      `xml:"id"`
	Title   string      `xml:"title"`
	Sub     string      `xml:"subtitle"`
	Links   []atomLink  `xml:"link"`
	Updated string      `xml:"updated"`
	Entries []atomEntry `xml:"entry"`
}

type atomLink struct {
	Href string `xml:"href,attr"`
	Rel  string `xml:"rel,attr,omitempty"`
	Type string `xml:"type,attr,omitempty"`
}

type atomAuthor struct {
	Name string `xml:"name"`
}

type atomCategory struct {
	Term string `xml:"term,attr"`
}

type atomEntry struct {
	ID           string         `xml:"id"`
	Title        string         `xml:"title"`
	Summary      string         `xml:"summary"`
	Authors      []atomAuthor   `xml:"author"`
	Categories   []atomCategory `xml:"category"`
	Link         atomLink       `xml:"link"`
	Updated      string         `xml:"updated"`
	Rights       string         `xml:"rights,omitempty"`
	AnnounceType string         `xml:"arxiv:announce_type"`
	JournalRef   string         `xml:"arxiv:journal_reference,omitempty"`
	DOI          string         `xml:"arxiv:DOI,omitempty"`
}

func (s *Serializer) atom10(docs domain.DocumentSet, now time.Time) ([]byte, error) {
	entries := make([]atomEntry, 0, len(docs.Documents))
	for _, doc := range docs.Documents {
		entries = append(entries, s.atomEntry(doc, now))
	}
	return s.atomShell(s.feedTitle(docs.Topics), s.feedDescription(docs.Topics), now, entries)
}

func (s *Serializer) atomEntry(doc domain.Document, now time.Time) atomEntry {
	entry := atomEntry{
		ID:      s.absURL(doc.PaperID),
		Title:   doc.Title,
		Summary: doc.Abstract,
		Link: atomLink{
			Href: s.absURL(doc.PaperID),
			Type: "text/html",
		},
		Updated:      now.Format(time.RFC3339),
		Rights:       doc.License,
		AnnounceType: string(doc.ListingType),
		JournalRef:   doc.JournalRef,
		DOI:          doc.DOI,
	}
	for _, author := range doc.Authors {
		entry.Authors = append(entry.Authors, atomAuthor{Name: author.FullName})
	}
	for _, cat := range doc.Categories {
		entry.Categories = append(entry.Categories, atomCategory{Term: cat})
	}
	return entry
}

func (s *Serializer) atomShell(title, subtitle string, now time.Time, entries []atomEntry) ([]byte, error) {
	link := "https://" + s.baseServer + "/atom"
	feed := atomDoc{
		NS:      "http://www.w3.org/2005/Atom",
		NSArxiv: "http://arxiv.org/schemas/atom",
		ID:      link,
		Title:   title,
		Sub:     subtitle,
		Links: []atomLink{
			{Href: link, Rel: "self", Type: "application/atom+xml"},
			{Href: "https://" + s.baseServer + "/", Rel: "alternate", Type: "text/html"},
		},
		Updated: now.Format(time.RFC3339),
		Entries: entries,
	}

	body, err := xml.MarshalIndent(feed, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), body...), nil
}

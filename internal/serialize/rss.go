package serialize

import (
	"encoding/xml"
	"time"

	"github.com/arXiv/arxiv-feed/internal/domain"
)

type rssDoc struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	NSAtom  string     `xml:"xmlns:atom,attr"`
	NSDC    string     `xml:"xmlns:dc,attr"`
	NSArxiv string     `xml:"xmlns:arxiv,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title          string    `xml:"title"`
	Link           string    `xml:"link"`
	Description    string    `xml:"description"`
	SelfLink       rssLink   `xml:"atom:link"`
	Language       string    `xml:"language"`
	ManagingEditor string    `xml:"managingEditor"`
	PubDate        string    `xml:"pubDate"`
	LastBuildDate  string    `xml:"lastBuildDate"`
	Items          []rssItem `xml:"item"`
}

type rssLink struct {
	Href string `xml:"href,attr"`
	Rel  string `xml:"rel,attr"`
	Type string `xml:"type,attr"`
}

type rssGUID struct {
	IsPermaLink string `xml:"isPermaLink,attr"`
	Value       string `xml:",chardata"`
}

type rssItem struct {
	Title        string   `xml:"title"`
	Link         string   `xml:"link"`
	Description  string   `xml:"description"`
	GUID         rssGUID  `xml:"guid"`
	Categories   []string `xml:"category"`
	PubDate      string   `xml:"pubDate"`
	AnnounceType string   `xml:"arxiv:announce_type"`
	Rights       string   `xml:"dc:rights,omitempty"`
	Creator      string   `xml:"dc:creator,omitempty"`
	JournalRef   string   `xml:"arxiv:journal_reference,omitempty"`
	DOI          string   `xml:"arxiv:DOI,omitempty"`
}

func (s *Serializer) rss20(docs domain.DocumentSet, now time.Time) ([]byte, error) {
	items := make([]rssItem, 0, len(docs.Documents))
	for _, doc := range docs.Documents {
		items = append(items, s.rssEntry(doc, now))
	}
	return s.rssShell(s.feedTitle(docs.Topics), s.feedDescription(docs.Topics), now, items)
}

func (s *Serializer) rssEntry(doc domain.Document, now time.Time) rssItem {
	return rssItem{
		Title:        doc.Title,
		Link:         s.absURL(doc.PaperID),
		Description:  itemDescription(doc),
		GUID:         rssGUID{IsPermaLink: "false", Value: "oai:arXiv.org:" + doc.PaperID},
		Categories:   doc.Categories,
		PubDate:      now.Format(time.RFC1123Z),
		AnnounceType: string(doc.ListingType),
		Rights:       doc.License,
		Creator:      creatorLine(doc.Authors),
		JournalRef:   doc.JournalRef,
		DOI:          doc.DOI,
	}
}

func (s *Serializer) rssShell(title, description string, now time.Time, items []rssItem) ([]byte, error) {
	feed := rssDoc{
		Version: "2.0",
		NSAtom:  "http://www.w3.org/2005/Atom",
		NSDC:    "http://purl.org/dc/elements/1.1/",
		NSArxiv: "http://arxiv.org/schemas/atom",
		Channel: rssChannel{
			Title:       title,
			Link:        "https://" + s.baseServer + "/",
			Description: description,
			SelfLink: rssLink{
				Href: "https://" + s.baseServer + "/rss",
				Rel:  "self",
				Type: "application/rss+xml",
			},
			Language:       "en-us",
			ManagingEditor: "www-admin@" + s.baseServer,
			PubDate:        now.Format(time.RFC1123Z),
			LastBuildDate:  now.Format(time.RFC1123Z),
			Items:          items,
		},
	}

	body, err := xml.MarshalIndent(feed, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), body...), nil
}

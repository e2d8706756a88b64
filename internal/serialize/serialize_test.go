package serialize

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/arXiv/arxiv-feed/internal/domain"
)

func assertWellFormed(t *testing.T, body []byte) {
	t.Helper()
	dec := xml.NewDecoder(bytes.NewReader(body))
	for {
		_, err := dec.Token()
		if err == io.EOF {
			return
		}
		if err != nil {
			t.Fatalf("body is not well-formed XML: %v", err)
		}
	}
}

var testNow = time.Date(2023, 10, 26, 0, 0, 0, 0, time.UTC)

func testDocs() domain.DocumentSet {
	return domain.DocumentSet{
		Topics: []string{"cs.CV", "math"},
		Documents: []domain.Document{{
			PaperID:  "2310.12345",
			Version:  2,
			Title:    "A Study of Things",
			Abstract: "We study things.",
			Authors: []domain.Author{
				{LastName: "Doe", FullName: "Jane Doe", Initials: "J.", Affiliations: []string{"MIT"}},
				{LastName: "Roe", FullName: "Bob Roe", Initials: "B."},
			},
			Categories:  []string{"cs.CV", "cs.LG"},
			License:     "http://creativecommons.org/licenses/by/4.0/",
			JournalRef:  "J. Things 1 (2023) 1-10",
			DOI:         "10.0000/thing",
			ListingType: domain.ListingNew,
		}},
	}
}

func TestSerialize_RSS(t *testing.T) {
	s := New("arxiv.org")

	feed, err := s.Serialize(testDocs(), domain.FeedVersionRSS20, testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if feed.ContentType != "application/rss+xml" {
		t.Errorf("content type = %q", feed.ContentType)
	}

	body := string(feed.Body)
	for _, want := range []string{
		`<?xml version="1.0" encoding="UTF-8"?>`,
		`<rss version="2.0"`,
		`xmlns:arxiv="http://arxiv.org/schemas/atom"`,
		`<title>cs.CV, math updates on arxiv.org</title>`,
		`<link>https://arxiv.org/</link>`,
		`<managingEditor>www-admin@arxiv.org</managingEditor>`,
		`<title>A Study of Things</title>`,
		`<link>https://arxiv.org/abs/2310.12345</link>`,
		`<guid isPermaLink="false">oai:arXiv.org:2310.12345</guid>`,
		`<arxiv:announce_type>new</arxiv:announce_type>`,
		`<dc:creator>Jane Doe (MIT), Bob Roe</dc:creator>`,
		`<dc:rights>http://creativecommons.org/licenses/by/4.0/</dc:rights>`,
		`<arxiv:journal_reference>J. Things 1 (2023) 1-10</arxiv:journal_reference>`,
		`<arxiv:DOI>10.0000/thing</arxiv:DOI>`,
		`<category>cs.CV</category>`,
		`<category>cs.LG</category>`,
		`arXiv:2310.12345v2 Announce Type: new`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("RSS body missing %q", want)
		}
	}

	assertWellFormed(t, feed.Body)
}

func TestSerialize_Atom(t *testing.T) {
	s := New("arxiv.org")

	feed, err := s.Serialize(testDocs(), domain.FeedVersionAtom10, testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if feed.ContentType != "application/atom+xml" {
		t.Errorf("content type = %q", feed.ContentType)
	}

	body := string(feed.Body)
	for _, want := range []string{
		`<feed xmlns="http://www.w3.org/2005/Atom"`,
		`xmlns:arxiv="http://arxiv.org/schemas/atom"`,
		`<title>cs.CV, math updates on arxiv.org</title>`,
		`<id>https://arxiv.org/abs/2310.12345</id>`,
		`<summary>We study things.</summary>`,
		`<name>Jane Doe</name>`,
		`<name>Bob Roe</name>`,
		`<category term="cs.CV"></category>`,
		`<arxiv:announce_type>new</arxiv:announce_type>`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("Atom body missing %q", want)
		}
	}

	assertWellFormed(t, feed.Body)
}

func TestSerialize_UnsupportedVersion(t *testing.T) {
	s := New("arxiv.org")

	for _, version := range []domain.FeedVersion{domain.FeedVersionRSS091, domain.FeedVersionRSS10} {
		_, err := s.Serialize(testDocs(), version, testNow)
		if !errors.Is(err, domain.ErrUnsupportedVersion) {
			t.Errorf("Serialize(%q) = %v, want ErrUnsupportedVersion", version, err)
		}
	}
}

func TestSerialize_ETag(t *testing.T) {
	s := New("arxiv.org")

	a, err := s.Serialize(testDocs(), domain.FeedVersionRSS20, testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := s.Serialize(testDocs(), domain.FeedVersionRSS20, testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if a.ETag != b.ETag {
		t.Error("identical bodies must produce identical ETags")
	}
	if !strings.HasPrefix(a.ETag, `"`) || !strings.HasSuffix(a.ETag, `"`) {
		t.Errorf("ETag %q should be quoted", a.ETag)
	}
	if len(a.ETag) != 66 {
		t.Errorf("ETag length = %d, want quoted sha256 hex", len(a.ETag))
	}

	atom, err := s.Serialize(testDocs(), domain.FeedVersionAtom10, testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if atom.ETag == a.ETag {
		t.Error("different bodies must produce different ETags")
	}
}

func TestSerialize_EmptyDocumentSet(t *testing.T) {
	s := New("arxiv.org")

	feed, err := s.Serialize(domain.DocumentSet{Topics: []string{"cs.CV"}}, domain.FeedVersionRSS20, testNow)
	if err != nil {
		t.Fatalf("an empty set still serializes: %v", err)
	}
	body := string(feed.Body)
	if strings.Contains(body, "<item>") {
		t.Error("empty set should have no items")
	}
	if !strings.Contains(body, "<title>cs.CV updates on arxiv.org</title>") {
		t.Error("empty feed keeps its channel metadata")
	}
}

func TestErrorFeed(t *testing.T) {
	s := New("arxiv.org")

	feed := s.ErrorFeed(`bad archive "bogus"`, domain.FeedVersionRSS20, testNow)
	body := string(feed.Body)
	if !strings.Contains(body, "<title>Feed error for query</title>") {
		t.Error("error feed should carry the error title")
	}
	if !strings.Contains(body, "bad archive &#34;bogus&#34;") {
		t.Errorf("error feed should carry the escaped message, got:\n%s", body)
	}
	if feed.ContentType != "application/rss+xml" {
		t.Errorf("content type = %q", feed.ContentType)
	}
	assertWellFormed(t, feed.Body)

	atom := s.ErrorFeed("oops", domain.FeedVersionAtom10, testNow)
	if atom.ContentType != "application/atom+xml" {
		t.Errorf("atom error content type = %q", atom.ContentType)
	}
	if !strings.Contains(string(atom.Body), "<title>Feed error for query</title>") {
		t.Error("atom error feed should carry the error title")
	}
}

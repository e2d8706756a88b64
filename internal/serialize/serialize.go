// Package serialize renders a DocumentSet as RSS 2.0 or Atom 1.0 bytes
// with the arXiv namespace extensions.
package serialize

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/arXiv/arxiv-feed/internal/domain"
)

// Feed is a serialized feed document ready for the HTTP layer.
type Feed struct {
	Body        []byte
	ContentType string
	ETag        string
}

// Serializer builds feed documents for one base server.
type Serializer struct {
	baseServer string
}

// New creates a serializer. baseServer is the public host used in feed
// links, e.g. "arxiv.org".
func New(baseServer string) *Serializer {
	return &Serializer{baseServer: baseServer}
}

// Serialize renders the document set in the requested version. The
// version must be in the supported set.
func (s *Serializer) Serialize(
	docs domain.DocumentSet, version domain.FeedVersion, now time.Time,
) (Feed, error) {
	var (
		body []byte
		err  error
	)
	switch version {
	case domain.FeedVersionRSS20:
		body, err = s.rss20(docs, now)
	case domain.FeedVersionAtom10:
		body, err = s.atom10(docs, now)
	default:
		return Feed{}, &domain.UnsupportedVersionError{
			Version:   string(version),
			Supported: domain.SupportedFeedVersions(),
		}
	}
	if err != nil {
		return Feed{}, fmt.Errorf("serializing %s feed: %w", version, err)
	}

	return Feed{
		Body:        body,
		ContentType: version.ContentType(),
		ETag:        etag(body),
	}, nil
}

// ErrorFeed renders a well-formed feed document carrying only an error
// title and description, for 4xx/5xx responses.
func (s *Serializer) ErrorFeed(message string, version domain.FeedVersion, now time.Time) Feed {
	const title = "Feed error for query"

	var body []byte
	if version.IsAtom() {
		body, _ = s.atomShell(title, message, now, nil)
	} else {
		body, _ = s.rssShell(title, message, now, nil)
	}

	return Feed{
		Body:        body,
		ContentType: version.ContentType(),
		ETag:        etag(body),
	}
}

func (s *Serializer) feedTitle(topics []string) string {
	return fmt.Sprintf("%s updates on %s", strings.Join(topics, ", "), s.baseServer)
}

func (s *Serializer) feedDescription(topics []string) string {
	return fmt.Sprintf("%s updates on the %s e-print archive.",
		strings.Join(topics, ", "), s.baseServer)
}

func (s *Serializer) absURL(paperID string) string {
	return fmt.Sprintf("https://%s/abs/%s", s.baseServer, paperID)
}

// creatorLine renders authors as a single display line, affiliations in
// parentheses, for the RSS dc:creator element.
func creatorLine(authors []domain.Author) string {
	parts := make([]string, 0, len(authors))
	for _, a := range authors {
		name := a.FullName
		if len(a.Affiliations) > 0 {
			name += " (" + strings.Join(a.Affiliations, ", ") + ")"
		}
		parts = append(parts, name)
	}
	return strings.Join(parts, ", ")
}

// itemDescription is the announcement body shown by feed readers.
func itemDescription(doc domain.Document) string {
	return fmt.Sprintf("arXiv:%sv%d Announce Type: %s\nAbstract: %s",
		doc.PaperID, doc.Version, doc.ListingType, doc.Abstract)
}

func etag(body []byte) string {
	sum := sha256.Sum256(body)
	return `"` + hex.EncodeToString(sum[:]) + `"`
}

// Package query parses and validates the archive/category specification
// of a feed request against the taxonomy.
package query

import (
	"fmt"
	"strings"

	"github.com/arXiv/arxiv-feed/internal/domain"
	"github.com/arXiv/arxiv-feed/internal/taxonomy"
)

// Delimiter separates archive/category tokens in a feed query.
const Delimiter = "+"

// Request is a validated feed query.
type Request struct {
	archives   []string
	categories []string
}

// Archives returns the requested archive ids, lowercased, in query order.
func (r *Request) Archives() []string { return r.archives }

// Categories returns the requested category ids, case-resolved, in query order.
func (r *Request) Categories() []string { return r.categories }

// Topics returns the categories followed by the archives, for feed
// titles and the DocumentSet.
func (r *Request) Topics() []string {
	topics := make([]string, 0, len(r.categories)+len(r.archives))
	topics = append(topics, r.categories...)
	topics = append(topics, r.archives...)
	return topics
}

// Parse validates a raw query string like "math+cs.CG". Each token names
// an archive or an archive.subject_class pair; matching is
// case-insensitive. Tokens are kept in encountered order, duplicates
// included; downstream expansion deduplicates.
func Parse(raw string, idx *taxonomy.Index) (Request, error) {
	tokens := strings.Split(raw, Delimiter)

	for _, token := range tokens {
		if strings.TrimSpace(token) == "" {
			return Request{}, fmt.Errorf(
				"%w: invalid archive specification %q; correct format is one or more "+
					"archive names delimited by %q, each either 'archive' or "+
					"'archive.subject_class', for example 'math+cs.CG'",
				domain.ErrInvalidQuerySyntax, raw, Delimiter)
		}
	}

	var req Request
	for _, token := range tokens {
		parts := strings.Split(token, ".")
		if len(parts) > 2 {
			return Request{}, fmt.Errorf(
				"%w: %q; valid names are an archive, possibly followed by a single "+
					"period and subject class", domain.ErrMalformedStructure, token)
		}

		archive := strings.ToLower(parts[0])
		if !idx.IsValidArchive(archive) {
			return Request{}, &domain.UnknownArchiveError{
				Archive: parts[0],
				Valid:   idx.ArchiveIDs(),
			}
		}

		if len(parts) == 1 {
			req.archives = append(req.archives, archive)
			continue
		}

		// Subject class casing differs by archive (cs.CV vs
		// cond-mat.str-el), so try upper before lower.
		upper := archive + "." + strings.ToUpper(parts[1])
		lower := archive + "." + strings.ToLower(parts[1])
		switch {
		case idx.IsValidCategory(upper):
			req.categories = append(req.categories, upper)
		case idx.IsValidCategory(lower):
			req.categories = append(req.categories, lower)
		default:
			return Request{}, &domain.UnknownCategoryError{
				Archive: archive,
				Subject: parts[1],
				Valid:   idx.SubjectClassesOf(archive),
			}
		}
	}

	return req, nil
}

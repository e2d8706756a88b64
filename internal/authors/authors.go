// Package authors parses the free-text author field of paper metadata.
//
// The accepted shape is a comma-separated list of author entries, where
// each entry is a display name optionally followed by one or more
// parenthesized affiliation groups:
//
//	John A. Smith (MIT), Jane Doe (Harvard, CERN) and Bob Roe
//
// The field is human-written and inherently lossy; parsing is
// best-effort. An entry that cannot be understood is skipped, never
// fatal, so one garbled name does not suppress an entire feed entry.
package authors

import (
	"strings"
	"unicode/utf8"

	"github.com/arXiv/arxiv-feed/internal/domain"
)

var nameSuffixes = map[string]bool{
	"Jr": true, "Jr.": true, "Sr": true, "Sr.": true,
	"II": true, "III": true, "IV": true, "V": true,
}

// Parse splits a raw author string into structured authors.
func Parse(raw string) []domain.Author {
	var authors []domain.Author
	for _, entry := range splitEntries(raw) {
		if author, ok := parseEntry(entry); ok {
			authors = append(authors, author)
		}
	}
	return authors
}

// splitEntries splits on commas and the word "and" outside parentheses,
// so affiliation lists like "(Harvard, CERN)" stay intact.
func splitEntries(raw string) []string {
	var (
		entries []string
		buf     strings.Builder
		depth   int
	)
	flush := func() {
		if s := strings.TrimSpace(buf.String()); s != "" {
			entries = append(entries, s)
		}
		buf.Reset()
	}

	for _, r := range raw {
		switch {
		case r == '(':
			depth++
			buf.WriteRune(r)
		case r == ')':
			if depth > 0 {
				depth--
			}
			buf.WriteRune(r)
		case r == ',' && depth == 0:
			flush()
		default:
			buf.WriteRune(r)
		}
	}
	flush()

	// A final "A and B" entry holds two authors.
	var out []string
	for _, entry := range entries {
		for _, part := range splitTopLevelAnd(entry) {
			part = strings.TrimSpace(strings.TrimPrefix(part, "and "))
			if part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func splitTopLevelAnd(entry string) []string {
	depth := 0
	for i := 0; i+5 <= len(entry); i++ {
		switch entry[i] {
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		}
		if depth == 0 && entry[i:i+5] == " and " {
			return []string{entry[:i], entry[i+5:]}
		}
	}
	return []string{entry}
}

// parseEntry splits one entry into name and affiliations and derives
// the surname and initials.
func parseEntry(entry string) (domain.Author, bool) {
	name, affiliations := splitAffiliations(entry)
	name = strings.TrimSpace(name)
	if name == "" || strings.EqualFold(name, "et al") || strings.EqualFold(name, "et al.") {
		return domain.Author{}, false
	}

	tokens := strings.Fields(name)
	author := domain.Author{
		FullName:     strings.Join(tokens, " "),
		Affiliations: affiliations,
	}

	last := len(tokens) - 1
	if last > 0 && nameSuffixes[tokens[last]] && last > 1 {
		author.LastName = tokens[last-1] + " " + tokens[last]
		last--
	} else {
		author.LastName = tokens[last]
	}
	author.Initials = initials(tokens[:last])
	return author, true
}

// splitAffiliations separates trailing parenthesized groups from the
// name. Group contents split on commas into individual affiliations. An
// unbalanced open paren swallows the rest of the entry as one group.
func splitAffiliations(entry string) (string, []string) {
	open := strings.IndexByte(entry, '(')
	if open < 0 {
		return entry, nil
	}

	name := entry[:open]
	var affiliations []string
	rest := entry[open:]
	for {
		start := strings.IndexByte(rest, '(')
		if start < 0 {
			break
		}
		end := matchingParen(rest, start)
		group := rest[start+1 : end]
		for _, affil := range strings.Split(group, ",") {
			if affil = strings.TrimSpace(affil); affil != "" {
				affiliations = append(affiliations, affil)
			}
		}
		if end >= len(rest) {
			break
		}
		rest = rest[end+1:]
	}
	return name, affiliations
}

// matchingParen returns the index of the paren closing the one at start,
// or len(s) when the group is unterminated.
func matchingParen(s string, start int) int {
	depth := 0
	for i := start; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return len(s)
}

// initials renders given-name tokens as dotted initials: "John A." -> "J. A.".
func initials(given []string) string {
	var parts []string
	for _, tok := range given {
		r, _ := utf8.DecodeRuneInString(tok)
		if r == utf8.RuneError {
			continue
		}
		parts = append(parts, string(r)+".")
	}
	return strings.Join(parts, " ")
}

// Package taxonomy holds the static archive/category reference data and
// resolves requested archives and categories into the full set of
// identifiers that can appear on stored update events. The tables are
// fixed at compile time; an Index built from them is immutable and safe
// for concurrent reads.
package taxonomy

import (
	"sort"
	"strings"
)

// Archive is a top-level subject grouping.
type Archive struct {
	ID   string
	Name string
}

// Category is a subject classification filed under exactly one archive.
type Category struct {
	ID        string
	Name      string
	InArchive string
}

// Index is the read-only taxonomy lookup structure.
type Index struct {
	archives   map[string]Archive
	categories map[string]Category

	// alias maps each side of a canonical alias pair to the other.
	alias map[string]string
	// subsumedInto maps a retired archive id to the category that
	// absorbed it; legacyOf is the reverse.
	subsumedInto map[string]string
	legacyOf     map[string]string

	byArchive map[string][]string
}

// New builds the index from the compiled-in taxonomy tables.
func New() *Index {
	idx := &Index{
		archives:     archives,
		categories:   categories,
		alias:        make(map[string]string, 2*len(categoryAliases)),
		subsumedInto: subsumedArchives,
		legacyOf:     make(map[string]string, len(subsumedArchives)),
		byArchive:    make(map[string][]string),
	}

	for _, pair := range categoryAliases {
		idx.alias[pair[0]] = pair[1]
		idx.alias[pair[1]] = pair[0]
	}
	for legacy, current := range subsumedArchives {
		idx.legacyOf[current] = legacy
	}
	for id, cat := range categories {
		idx.byArchive[cat.InArchive] = append(idx.byArchive[cat.InArchive], id)
	}
	for _, ids := range idx.byArchive {
		sort.Strings(ids)
	}

	return idx
}

// IsValidArchive reports whether id names a current archive.
func (x *Index) IsValidArchive(id string) bool {
	_, ok := x.archives[id]
	return ok
}

// IsValidCategory reports whether id names a current category.
func (x *Index) IsValidCategory(id string) bool {
	_, ok := x.categories[id]
	return ok
}

// ArchiveIDs returns all current archive ids, sorted.
func (x *Index) ArchiveIDs() []string {
	ids := make([]string, 0, len(x.archives))
	for id := range x.archives {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// CategoriesOf returns the ids of all categories filed under the archive,
// sorted. The result is a copy.
func (x *Index) CategoriesOf(archive string) []string {
	ids := x.byArchive[archive]
	out := make([]string, len(ids))
	copy(out, ids)
	return out
}

// SubjectClassesOf returns the subject-class parts of an archive's
// categories, for error messages. A single-category archive whose
// category id equals the archive id contributes nothing.
func (x *Index) SubjectClassesOf(archive string) []string {
	var out []string
	for _, id := range x.byArchive[archive] {
		if rest, ok := strings.CutPrefix(id, archive+"."); ok {
			out = append(out, rest)
		}
	}
	return out
}

// AliasOf returns the alternate identifier of a category, or "" when the
// category has no alias.
func (x *Index) AliasOf(id string) string {
	return x.alias[id]
}

// IsSubsumedLegacy reports whether id is the name of a retired archive
// that was merged into a current category.
func (x *Index) IsSubsumedLegacy(id string) bool {
	_, ok := x.subsumedInto[id]
	return ok
}

// LegacyOf returns the retired archive name absorbed by the category, or
// "" when the category never subsumed one.
func (x *Index) LegacyOf(category string) string {
	return x.legacyOf[category]
}

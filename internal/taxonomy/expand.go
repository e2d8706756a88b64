package taxonomy

import "sort"

// Expand resolves requested archives and categories into the closure of
// category identifiers that can appear on stored update events. The
// closure is deliberately a superset: category and archive names have
// changed over time, and a paper filed under an old name must still be
// found. False positives are filtered by the membership join downstream.
func (x *Index) Expand(archives, categories []string) []string {
	set := make(map[string]struct{})
	add := func(id string) {
		if id != "" {
			set[id] = struct{}{}
		}
	}

	for _, archive := range archives {
		// The bare archive id appears on events announced before the
		// archive gained subject classes.
		add(archive)

		for _, cat := range x.CategoriesOf(archive) {
			add(cat)
			// Skip the alias when the category is itself a retired
			// archive name, so a whole legacy archive is not pulled in
			// through a rename pair.
			if !x.IsSubsumedLegacy(cat) {
				add(x.AliasOf(cat))
			}
			add(x.LegacyOf(cat))
		}
	}

	for _, cat := range categories {
		add(cat)
		add(x.AliasOf(cat))
		add(x.LegacyOf(cat))
	}

	out := make([]string, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

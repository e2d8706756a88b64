package domain

// Author is one parsed entry from a paper's raw author string.
type Author struct {
	LastName     string
	FullName     string
	Initials     string
	Affiliations []string
}

// Document is one output-ready paper entry, assembled from the current
// metadata snapshot of a paper plus its resolved listing type.
type Document struct {
	PaperID     string
	Version     int
	Title       string
	Abstract    string
	Authors     []Author
	Categories  []string
	License     string
	JournalRef  string
	DOI         string
	ListingType ListingType
}

// DocumentSet is the ordered, deduplicated result of one feed query.
type DocumentSet struct {
	// Topics are the requested categories and archives, in the order
	// they were resolved from the query.
	Topics []string

	Documents []Document
}

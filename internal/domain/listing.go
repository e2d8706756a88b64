package domain

// Action is the kind of update event recorded for a paper.
type Action string

// Update event actions as stored in the updates table.
const (
	ActionNew     Action = "new"
	ActionReplace Action = "replace"
	ActionAbsOnly Action = "absonly"
	ActionCross   Action = "cross"
	ActionRepCro  Action = "repcro"
)

// Priority ranks actions when a paper has several qualifying events in
// one window. Higher wins.
func (a Action) Priority() int {
	switch a {
	case ActionNew:
		return 3
	case ActionCross:
		return 2
	case ActionReplace:
		return 1
	default:
		return 0
	}
}

// ListingType is the display-facing classification of a paper's
// appearance in a feed. Derived per query, never stored.
type ListingType string

// Listing types.
const (
	ListingNew          ListingType = "new"
	ListingCross        ListingType = "cross"
	ListingReplace      ListingType = "replace"
	ListingReplaceCross ListingType = "replace-cross"
	ListingNoMatch      ListingType = "no_match"
)

// Weight orders listing types in feed output. Higher sorts first.
func (t ListingType) Weight() int {
	switch t {
	case ListingNew:
		return 4
	case ListingCross:
		return 3
	case ListingReplace:
		return 2
	case ListingReplaceCross:
		return 1
	default:
		return 0
	}
}

// Classify derives the listing type from the winning action and whether
// any matched category membership is the paper's primary category.
// First match wins; anything else is no_match and is dropped from output.
func Classify(action Action, anyPrimary bool) ListingType {
	switch {
	case action == ActionNew && anyPrimary:
		return ListingNew
	case action == ActionNew || action == ActionCross:
		return ListingCross
	case action == ActionReplace && anyPrimary:
		return ListingReplace
	case action == ActionReplace:
		return ListingReplaceCross
	default:
		return ListingNoMatch
	}
}

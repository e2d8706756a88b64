package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidQuerySyntax signals an empty query or an empty token.
	ErrInvalidQuerySyntax = errors.New("invalid query syntax")
	// ErrMalformedStructure signals a token with more than one period.
	ErrMalformedStructure = errors.New("malformed archive/subject structure")
	// ErrUnknownArchive signals an archive token that is not in the taxonomy.
	ErrUnknownArchive = errors.New("unknown archive")
	// ErrUnknownCategory signals a subject class not found under a known archive.
	ErrUnknownCategory = errors.New("unknown category")
	// ErrUnsupportedVersion signals a feed serialization version outside the supported set.
	ErrUnsupportedVersion = errors.New("unsupported feed version")
)

// UnknownArchiveError wraps ErrUnknownArchive with the offending token and
// the full set of valid archive identifiers.
type UnknownArchiveError struct {
	Archive string
	Valid   []string
}

func (e *UnknownArchiveError) Error() string {
	return fmt.Sprintf("bad archive %q; valid archive names are: %s",
		e.Archive, strings.Join(e.Valid, ", "))
}

func (e *UnknownArchiveError) Unwrap() error { return ErrUnknownArchive }

// UnknownCategoryError wraps ErrUnknownCategory with the offending subject
// class and the valid subject classes of its archive.
type UnknownCategoryError struct {
	Archive string
	Subject string
	Valid   []string
}

func (e *UnknownCategoryError) Error() string {
	return fmt.Sprintf("bad subject class %q; valid subject classes for the archive %q are: %s",
		e.Subject, e.Archive, strings.Join(e.Valid, ", "))
}

func (e *UnknownCategoryError) Unwrap() error { return ErrUnknownCategory }

// UnsupportedVersionError wraps ErrUnsupportedVersion with the requested
// version and the supported set.
type UnsupportedVersionError struct {
	Version   string
	Supported []FeedVersion
}

func (e *UnsupportedVersionError) Error() string {
	supported := make([]string, len(e.Supported))
	for i, v := range e.Supported {
		supported[i] = string(v)
	}
	return fmt.Sprintf("unsupported feed version %q requested; valid options are: %s",
		e.Version, strings.Join(supported, ", "))
}

func (e *UnsupportedVersionError) Unwrap() error { return ErrUnsupportedVersion }

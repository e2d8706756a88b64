package domain

import (
	"strconv"
	"strings"
)

// FeedVersion identifies a feed serialization format.
type FeedVersion string

// Known feed versions. Only RSS 2.0 and Atom 1.0 are supported; the
// older RSS formats are recognized so requests for them get a precise
// error instead of a parse failure.
const (
	FeedVersionRSS091 FeedVersion = "RSS 0.91"
	FeedVersionRSS10  FeedVersion = "RSS 1.0"
	FeedVersionRSS20  FeedVersion = "RSS 2.0"
	FeedVersionAtom10 FeedVersion = "Atom 1.0"
)

// SupportedFeedVersions returns the feed versions this service can emit.
func SupportedFeedVersions() []FeedVersion {
	return []FeedVersion{FeedVersionRSS20, FeedVersionAtom10}
}

// IsRSS reports whether the version is an RSS specification.
func (v FeedVersion) IsRSS() bool {
	return v == FeedVersionRSS091 || v == FeedVersionRSS10 || v == FeedVersionRSS20
}

// IsAtom reports whether the version is an Atom specification.
func (v FeedVersion) IsAtom() bool {
	return v == FeedVersionAtom10
}

// ContentType returns the MIME type for the serialized feed.
func (v FeedVersion) ContentType() string {
	if v.IsAtom() {
		return "application/atom+xml"
	}
	return "application/rss+xml"
}

// FeedVersionFrom resolves a version string to a supported FeedVersion.
// A bare number like "2.0" is treated as an RSS version, or Atom when
// preferAtom is set. Matching is case-insensitive.
func FeedVersionFrom(version string, preferAtom bool) (FeedVersion, error) {
	v := strings.TrimSpace(version)

	// A bare number carries no family; pick one from the endpoint.
	if _, err := strconv.ParseFloat(v, 64); err == nil {
		if preferAtom {
			v = "Atom " + v
		} else {
			v = "RSS " + v
		}
	}

	for _, supported := range SupportedFeedVersions() {
		if strings.EqualFold(v, string(supported)) {
			return supported, nil
		}
	}
	return "", &UnsupportedVersionError{Version: version, Supported: SupportedFeedVersions()}
}

package reddit

import (
	"fmt"
	"net/url"
	"regexp"
)

const (
	// BaseURL is the base URL for Reddit
	BaseURL = "https://www.reddit.com"

	// PermalinkBase is the prefix for item source URLs built from permalinks
	PermalinkBase = "https://reddit.com"

	// MaxPageSize is the maximum number of entries the listing API returns per request
	MaxPageSize = 100
)

// ListingKind selects which listing of a user's history to fetch
type ListingKind string

const (
	ListingSubmitted ListingKind = "submitted"
	ListingComments  ListingKind = "comments"
)

// ContentKind maps a listing kind to the normalized content kind
func (k ListingKind) ContentKind() ContentKind {
	if k == ListingSubmitted {
		return KindPost
	}
	return KindComment
}

// usernamePattern matches the username segment of a profile URL
var usernamePattern = regexp.MustCompile(`/user/([^/]+)`)

// ExtractUsername extracts the username from a Reddit profile URL.
// Returns an empty string when the URL does not look like a profile URL.
func ExtractUsername(profileURL string) string {
	match := usernamePattern.FindStringSubmatch(profileURL)
	if match == nil {
		return ""
	}
	return match[1]
}

// ListingURL constructs the URL for one page of a user's listing
func ListingURL(baseURL, username string, kind ListingKind, limit int, after string) string {
	if limit <= 0 || limit > MaxPageSize {
		limit = MaxPageSize
	}

	params := url.Values{}
	params.Set("limit", fmt.Sprintf("%d", limit))
	if after != "" {
		params.Set("after", after)
	}

	return fmt.Sprintf("%s/user/%s/%s/.json?%s", baseURL, username, kind, params.Encode())
}

// AboutURL constructs the URL for a user's account metadata
func AboutURL(baseURL, username string) string {
	return fmt.Sprintf("%s/user/%s/about/.json", baseURL, username)
}

// ProfileURL constructs the public profile URL for a user
func ProfileURL(username string) string {
	if username == "" {
		return ""
	}
	return fmt.Sprintf("%s/user/%s/", BaseURL, username)
}

// SourceURL converts an item permalink into an absolute source URL
func SourceURL(permalink string) string {
	if permalink == "" {
		return ""
	}
	return PermalinkBase + permalink
}

package reddit

// ContentKind distinguishes posts from comments after normalization
type ContentKind string

const (
	KindPost    ContentKind = "post"
	KindComment ContentKind = "comment"
)

// ContentItem is the normalized shape shared by posts and comments.
// Created by the paginator, read-only afterwards.
type ContentItem struct {
	Kind       ContentKind `json:"kind"`
	Title      string      `json:"title,omitempty"` // empty for comments
	Body       string      `json:"body"`
	Community  string      `json:"community"`
	Score      int         `json:"score"`
	CreatedUTC int64       `json:"created_utc"`
	SourceURL  string      `json:"source_url"`
}

// AccountInfo holds account metadata from the about endpoint.
// May be entirely absent when the about fetch fails; consumers fall back
// to item timestamps.
type AccountInfo struct {
	CreatedUTC   int64 `json:"created_utc"`
	LinkKarma    int   `json:"link_karma"`
	CommentKarma int   `json:"comment_karma"`
	TotalKarma   int   `json:"total_karma"`
	IsGold       bool  `json:"is_gold"`
	IsMod        bool  `json:"is_mod"`
	Verified     bool  `json:"verified"`
}

// Listing represents a page of the Reddit listing API
type Listing struct {
	Data ListingData `json:"data"`
}

// ListingData wraps the page entries and the continuation token
type ListingData struct {
	Children []Thing `json:"children"`
	After    string  `json:"after"`
}

// Thing wraps a single listing entry
type Thing struct {
	Kind string    `json:"kind"`
	Data ThingData `json:"data"`
}

// ThingData carries the fields shared by post and comment entries.
// Posts populate title/selftext, comments populate body; missing fields
// decode to zero values.
type ThingData struct {
	Title      string  `json:"title"`
	SelfText   string  `json:"selftext"`
	Body       string  `json:"body"`
	Subreddit  string  `json:"subreddit"`
	Score      int     `json:"score"`
	CreatedUTC float64 `json:"created_utc"`
	Permalink  string  `json:"permalink"`
}

// AboutResponse represents the response of the about endpoint
type AboutResponse struct {
	Data AboutData `json:"data"`
}

// AboutData carries the account metadata fields
type AboutData struct {
	CreatedUTC   float64 `json:"created_utc"`
	LinkKarma    int     `json:"link_karma"`
	CommentKarma int     `json:"comment_karma"`
	TotalKarma   int     `json:"total_karma"`
	IsGold       bool    `json:"is_gold"`
	IsMod        bool    `json:"is_mod"`
	Verified     bool    `json:"verified"`
}

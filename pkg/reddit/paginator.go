package reddit

import (
	"redditpersona/pkg/logger"
)

// ListingFetcher is the client surface the paginator depends on
type ListingFetcher interface {
	FetchListing(username string, kind ListingKind, limit int, after string) (*Listing, error)
}

// Paginator walks a user's listing page by page and normalizes the
// entries into ContentItems. The continuation token is single-use per
// call chain; a collection cannot be restarted mid-way.
type Paginator struct {
	fetcher  ListingFetcher
	pageSize int
	logger   logger.Logger
}

// NewPaginator creates a paginator fetching pageSize entries per request
func NewPaginator(fetcher ListingFetcher, pageSize int, log logger.Logger) *Paginator {
	if pageSize <= 0 || pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	if log == nil {
		log = logger.GetLogger()
	}

	return &Paginator{
		fetcher:  fetcher,
		pageSize: pageSize,
		logger:   log,
	}
}

// Collect fetches up to maxItems of a user's history in the order the
// API delivers it (reverse chronological). Pagination stops on an empty
// page, a missing continuation token, or the item limit. A fetch error
// ends the walk early and keeps everything gathered so far.
func (p *Paginator) Collect(username string, kind ListingKind, maxItems int) []ContentItem {
	items := make([]ContentItem, 0, p.pageSize)
	after := ""

	for len(items) < maxItems {
		listing, err := p.fetcher.FetchListing(username, kind, p.pageSize, after)
		if err != nil {
			p.logger.WarnWithFields("listing fetch failed, keeping partial results", map[string]interface{}{
				"username":  username,
				"kind":      string(kind),
				"collected": len(items),
				"error":     err.Error(),
			})
			break
		}

		children := listing.Data.Children
		if len(children) == 0 {
			p.logger.DebugWithFields("empty page, no more content", map[string]interface{}{
				"username": username,
				"kind":     string(kind),
			})
			break
		}

		for _, child := range children {
			items = append(items, normalize(child, kind))
		}

		after = listing.Data.After
		if after == "" {
			p.logger.DebugWithFields("listing exhausted", map[string]interface{}{
				"username": username,
				"kind":     string(kind),
			})
			break
		}

		p.logger.DebugWithFields("collected page", map[string]interface{}{
			"username":  username,
			"kind":      string(kind),
			"collected": len(items),
		})
	}

	if len(items) > maxItems {
		items = items[:maxItems]
	}

	return items
}

// normalize converts a raw listing entry into a ContentItem. Missing
// fields stay at their zero values.
func normalize(thing Thing, kind ListingKind) ContentItem {
	data := thing.Data

	item := ContentItem{
		Kind:       kind.ContentKind(),
		Community:  data.Subreddit,
		Score:      data.Score,
		CreatedUTC: int64(data.CreatedUTC),
		SourceURL:  SourceURL(data.Permalink),
	}

	if kind == ListingSubmitted {
		item.Title = data.Title
		item.Body = data.SelfText
	} else {
		item.Body = data.Body
	}

	return item
}

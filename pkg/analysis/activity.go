package analysis

import (
	"sort"
	"time"

	"redditpersona/pkg/reddit"
)

const (
	peakHourCount     = 3
	topCommunityCount = 10
	daysPerYear       = 365.25
)

// HourCount is an hour-of-day (UTC) with its item count
type HourCount struct {
	Hour  int `json:"hour"`
	Count int `json:"count"`
}

// CommunityCount is a community name with its item count
type CommunityCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// ActivitySummary holds temporal and engagement statistics over a user's
// collected history
type ActivitySummary struct {
	AccountAgeDays     float64          `json:"account_age_days"`
	AccountAgeYears    float64          `json:"account_age_years"`
	PeakHours          []HourCount      `json:"peak_hours"`
	TopCommunities     []CommunityCount `json:"top_communities"`
	TotalPosts         int              `json:"total_posts"`
	TotalComments      int              `json:"total_comments"`
	AvgPostScore       float64          `json:"avg_post_score"`
	AvgCommentScore    float64          `json:"avg_comment_score"`
	PostToCommentRatio float64          `json:"post_to_comment_ratio"`
}

// SummarizeActivity computes activity statistics from the normalized
// item list. Account age prefers the account creation time and falls
// back to the earliest item timestamp; with neither it is zero.
func SummarizeActivity(items []reddit.ContentItem, info *reddit.AccountInfo, now time.Time) ActivitySummary {
	var summary ActivitySummary

	var createdUTC int64
	if info != nil && info.CreatedUTC > 0 {
		createdUTC = info.CreatedUTC
	} else {
		for _, item := range items {
			if item.CreatedUTC == 0 {
				continue
			}
			if createdUTC == 0 || item.CreatedUTC < createdUTC {
				createdUTC = item.CreatedUTC
			}
		}
	}
	if createdUTC > 0 {
		summary.AccountAgeDays = now.Sub(time.Unix(createdUTC, 0)).Hours() / 24
		summary.AccountAgeYears = summary.AccountAgeDays / daysPerYear
	}

	summary.PeakHours = peakHours(items)
	summary.TopCommunities = topCommunities(items)

	var postScore, commentScore int
	for _, item := range items {
		if item.Kind == reddit.KindPost {
			summary.TotalPosts++
			postScore += item.Score
		} else {
			summary.TotalComments++
			commentScore += item.Score
		}
	}

	if summary.TotalPosts > 0 {
		summary.AvgPostScore = float64(postScore) / float64(summary.TotalPosts)
	}
	if summary.TotalComments > 0 {
		summary.AvgCommentScore = float64(commentScore) / float64(summary.TotalComments)
	}

	// The +1 keeps the ratio defined for users with zero comments, at
	// the cost of slightly deflating it for everyone
	summary.PostToCommentRatio = float64(summary.TotalPosts) / float64(summary.TotalComments+1)

	return summary
}

// peakHours returns the most frequent posting hours (UTC), ties broken
// by first-encountered order
func peakHours(items []reddit.ContentItem) []HourCount {
	counts := make(map[int]int)
	firstSeen := make(map[int]int)
	order := 0

	for _, item := range items {
		if item.CreatedUTC == 0 {
			continue
		}
		hour := time.Unix(item.CreatedUTC, 0).UTC().Hour()
		if _, seen := counts[hour]; !seen {
			firstSeen[hour] = order
			order++
		}
		counts[hour]++
	}

	hours := make([]HourCount, 0, len(counts))
	for hour, count := range counts {
		hours = append(hours, HourCount{Hour: hour, Count: count})
	}
	sort.SliceStable(hours, func(i, j int) bool {
		if hours[i].Count != hours[j].Count {
			return hours[i].Count > hours[j].Count
		}
		return firstSeen[hours[i].Hour] < firstSeen[hours[j].Hour]
	})

	if len(hours) > peakHourCount {
		hours = hours[:peakHourCount]
	}
	return hours
}

// topCommunities returns the most frequent communities, ties broken by
// first-encountered order
func topCommunities(items []reddit.ContentItem) []CommunityCount {
	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	order := 0

	for _, item := range items {
		if item.Community == "" {
			continue
		}
		if _, seen := counts[item.Community]; !seen {
			firstSeen[item.Community] = order
			order++
		}
		counts[item.Community]++
	}

	communities := make([]CommunityCount, 0, len(counts))
	for name, count := range counts {
		communities = append(communities, CommunityCount{Name: name, Count: count})
	}
	sort.SliceStable(communities, func(i, j int) bool {
		if communities[i].Count != communities[j].Count {
			return communities[i].Count > communities[j].Count
		}
		return firstSeen[communities[i].Name] < firstSeen[communities[j].Name]
	})

	if len(communities) > topCommunityCount {
		communities = communities[:topCommunityCount]
	}
	return communities
}

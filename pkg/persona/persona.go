package persona

import (
	"sort"
	"time"

	"redditpersona/pkg/analysis"
	"redditpersona/pkg/reddit"
)

// Engagement styles derived from the post-to-comment ratio
const (
	StyleCommenter = "Commenter"
	StylePoster    = "Poster"

	commenterRatioThreshold = 0.5
)

// BasicInfo is the headline summary of an account
type BasicInfo struct {
	AccountAgeDays  float64 `json:"account_age_days"`
	AccountAgeYears float64 `json:"account_age_years"`
	TotalPosts      int     `json:"total_posts"`
	TotalComments   int     `json:"total_comments"`
	EngagementStyle string  `json:"engagement_style"`
}

// Persona is the terminal aggregate of a run: identity, activity
// statistics, inferred demographics, ranked interests and traits, and
// the citation evidence behind them. Immutable after assembly.
type Persona struct {
	Username          string                      `json:"username"`
	ProfileURL        string                      `json:"profile_url"`
	GeneratedAt       time.Time                   `json:"generated_at"`
	BasicInfo         BasicInfo                   `json:"basic_info"`
	Activity          analysis.ActivitySummary    `json:"activity"`
	Demographics      analysis.Demographics       `json:"demographics"`
	Interests         []analysis.CategoryStrength `json:"interests"`
	PersonalityTraits []analysis.CategoryStrength `json:"personality_traits"`
	Citations         analysis.CitationMap        `json:"citations"`
}

// Input carries the analysis results feeding a Persona. The generation
// timestamp is an input so that assembly stays a pure function.
type Input struct {
	Username             string
	GeneratedAt          time.Time
	Activity             analysis.ActivitySummary
	Demographics         analysis.Demographics
	Interests            []analysis.CategoryStrength
	Personality          []analysis.CategoryStrength
	DemographicCitations analysis.CitationMap
	InterestCitations    analysis.CitationMap
}

// Assemble merges the analysis results into a Persona. It is a pure
// merge with no network or file effects: the same input always yields
// the same Persona, and the input slices and maps are not modified.
//
// Interests and personality traits are ranked descending by strength,
// ties keeping their original order. The citation map combines
// demographic and interest citations; personality strengths are
// reported without backing citations.
func Assemble(in Input) *Persona {
	ratio := in.Activity.PostToCommentRatio
	style := StylePoster
	if ratio < commenterRatioThreshold {
		style = StyleCommenter
	}

	return &Persona{
		Username:    in.Username,
		ProfileURL:  reddit.ProfileURL(in.Username),
		GeneratedAt: in.GeneratedAt,
		BasicInfo: BasicInfo{
			AccountAgeDays:  in.Activity.AccountAgeDays,
			AccountAgeYears: in.Activity.AccountAgeYears,
			TotalPosts:      in.Activity.TotalPosts,
			TotalComments:   in.Activity.TotalComments,
			EngagementStyle: style,
		},
		Activity:          in.Activity,
		Demographics:      in.Demographics,
		Interests:         rank(in.Interests),
		PersonalityTraits: rank(in.Personality),
		Citations:         analysis.Merge(in.DemographicCitations, in.InterestCitations),
	}
}

// rank returns a copy sorted descending by strength, ties keeping
// their input order
func rank(strengths []analysis.CategoryStrength) []analysis.CategoryStrength {
	ranked := make([]analysis.CategoryStrength, len(strengths))
	copy(ranked, strengths)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Strength > ranked[j].Strength
	})
	return ranked
}

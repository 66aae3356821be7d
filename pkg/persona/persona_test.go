package persona

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"redditpersona/pkg/analysis"
)

func sampleInput() Input {
	return Input{
		Username:    "kojied",
		GeneratedAt: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
		Activity: analysis.ActivitySummary{
			AccountAgeDays:     730,
			AccountAgeYears:    2,
			TotalPosts:         10,
			TotalComments:      40,
			PostToCommentRatio: 10.0 / 41.0,
		},
		Demographics: analysis.Demographics{LikelyAgeGroup: "young"},
		Interests: []analysis.CategoryStrength{
			{Name: "gaming", Strength: 3},
			{Name: "tech", Strength: 7},
			{Name: "food", Strength: 3},
		},
		Personality: []analysis.CategoryStrength{
			{Name: "helpful", Strength: 2},
			{Name: "humorous", Strength: 5},
		},
		DemographicCitations: analysis.CitationMap{
			"age_young": {{MatchedTerm: "college"}},
		},
		InterestCitations: analysis.CitationMap{
			"interest_gaming": {{MatchedTerm: "steam"}},
		},
	}
}

func TestAssemble(t *testing.T) {
	t.Run("fills identity and basic info", func(t *testing.T) {
		p := Assemble(sampleInput())

		assert.Equal(t, "kojied", p.Username)
		assert.Equal(t, "https://www.reddit.com/user/kojied/", p.ProfileURL)
		assert.Equal(t, 10, p.BasicInfo.TotalPosts)
		assert.Equal(t, 40, p.BasicInfo.TotalComments)
		assert.InDelta(t, 2.0, p.BasicInfo.AccountAgeYears, 0.001)
	})

	t.Run("engagement style follows the ratio", func(t *testing.T) {
		in := sampleInput()

		in.Activity.PostToCommentRatio = 0.49
		assert.Equal(t, StyleCommenter, Assemble(in).BasicInfo.EngagementStyle)

		in.Activity.PostToCommentRatio = 0.5
		assert.Equal(t, StylePoster, Assemble(in).BasicInfo.EngagementStyle)
	})

	t.Run("ranks interests and traits by strength with stable ties", func(t *testing.T) {
		p := Assemble(sampleInput())

		require.Len(t, p.Interests, 3)
		assert.Equal(t, "tech", p.Interests[0].Name)
		assert.Equal(t, "gaming", p.Interests[1].Name)
		assert.Equal(t, "food", p.Interests[2].Name)

		require.Len(t, p.PersonalityTraits, 2)
		assert.Equal(t, "humorous", p.PersonalityTraits[0].Name)
	})

	t.Run("merges demographic and interest citations only", func(t *testing.T) {
		p := Assemble(sampleInput())

		assert.Len(t, p.Citations, 2)
		assert.Contains(t, p.Citations, "age_young")
		assert.Contains(t, p.Citations, "interest_gaming")
	})

	t.Run("does not modify its input", func(t *testing.T) {
		in := sampleInput()
		Assemble(in)

		assert.Equal(t, "gaming", in.Interests[0].Name)
		assert.Equal(t, "helpful", in.Personality[0].Name)
	})

	t.Run("is idempotent", func(t *testing.T) {
		in := sampleInput()

		first := Assemble(in)
		second := Assemble(in)

		assert.Equal(t, first, second)
	})
}

package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"redditpersona/pkg/analysis"
	"redditpersona/pkg/persona"
)

func samplePersona() *persona.Persona {
	return &persona.Persona{
		Username:    "kojied",
		ProfileURL:  "https://www.reddit.com/user/kojied/",
		GeneratedAt: time.Date(2024, 6, 1, 12, 30, 0, 0, time.UTC),
		BasicInfo: persona.BasicInfo{
			AccountAgeDays:  730,
			AccountAgeYears: 2,
			TotalPosts:      10,
			TotalComments:   40,
			EngagementStyle: persona.StyleCommenter,
		},
		Activity: analysis.ActivitySummary{
			PeakHours:       []analysis.HourCount{{Hour: 9, Count: 3}, {Hour: 14, Count: 2}},
			TopCommunities:  []analysis.CommunityCount{{Name: "golang", Count: 5}},
			AvgPostScore:    15.5,
			AvgCommentScore: 3.25,
		},
		Demographics: analysis.Demographics{
			LikelyAgeGroup:    "young",
			LikelyGender:      "male",
			PossibleLocations: []analysis.LocationCount{{Location: "portland", Count: 2}},
		},
		Interests: []analysis.CategoryStrength{
			{Name: "gaming", Strength: 7},
			{Name: "tech", Strength: 2},
		},
		PersonalityTraits: []analysis.CategoryStrength{
			{Name: "helpful", Strength: 4},
		},
		Citations: analysis.CitationMap{
			"age_young": {
				{Excerpt: "in my college dorm", SourceURL: "https://reddit.com/r/x/1/"},
			},
			"interest_gaming": {
				{Excerpt: "c1", SourceURL: "u1"},
				{Excerpt: "c2", SourceURL: "u2"},
				{Excerpt: "c3", SourceURL: "u3"},
				{Excerpt: "c4", SourceURL: "u4"},
				{Excerpt: "c5", SourceURL: "u5"},
			},
		},
	}
}

func TestRender(t *testing.T) {
	text := Render(samplePersona())

	t.Run("header and identity", func(t *testing.T) {
		assert.True(t, strings.HasPrefix(text, "REDDIT USER PERSONA REPORT\n"))
		assert.Contains(t, text, "Username: kojied\n")
		assert.Contains(t, text, "Profile URL: https://www.reddit.com/user/kojied/\n")
		assert.Contains(t, text, "Generated: 2024-06-01 12:30:00\n")
	})

	t.Run("basic info", func(t *testing.T) {
		assert.Contains(t, text, "Account Age: 2.0 years (730 days)\n")
		assert.Contains(t, text, "Total Posts: 10\n")
		assert.Contains(t, text, "Total Comments: 40\n")
		assert.Contains(t, text, "Engagement Style: Commenter\n")
	})

	t.Run("activity patterns", func(t *testing.T) {
		assert.Contains(t, text, "Peak Activity Hours: 9:00 (3 posts), 14:00 (2 posts)\n")
		assert.Contains(t, text, "Top Subreddits: golang (5)\n")
		assert.Contains(t, text, "Average Post Score: 15.5\n")
		assert.Contains(t, text, "Average Comment Score: 3.2\n")
	})

	t.Run("demographics with citations", func(t *testing.T) {
		assert.Contains(t, text, "Likely Age Group: Young\n")
		assert.Contains(t, text, `    1. "in my college dorm"`)
		assert.Contains(t, text, "       Source: https://reddit.com/r/x/1/\n")
		assert.Contains(t, text, "Likely Gender: Male\n")
		assert.Contains(t, text, "Possible Locations: portland (2)\n")
	})

	t.Run("interests capped citations with overflow marker", func(t *testing.T) {
		assert.Contains(t, text, "Gaming: 7 mentions\n")
		assert.Contains(t, text, `    3. "c3"`)
		assert.NotContains(t, text, `"c4"`)
		assert.Contains(t, text, "    ... and 2 more\n")
	})

	t.Run("personality traits without citations", func(t *testing.T) {
		assert.Contains(t, text, "Helpful: 4 indicators\n")
	})
}

func TestRenderOmitsAbsentDemographics(t *testing.T) {
	p := samplePersona()
	p.Demographics = analysis.Demographics{}

	text := Render(p)

	assert.NotContains(t, text, "Likely Age Group")
	assert.NotContains(t, text, "Likely Gender")
	assert.NotContains(t, text, "Possible Locations")
	assert.Contains(t, text, "DEMOGRAPHICS\n")
}

func TestWriter(t *testing.T) {
	t.Run("writes the report file", func(t *testing.T) {
		dir := t.TempDir()
		w, err := NewWriter(dir, "{username}_persona.txt")
		require.NoError(t, err)

		path, err := w.Write(samplePersona())

		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "kojied_persona.txt"), path)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, Render(samplePersona()), string(data))
	})

	t.Run("creates the output directory", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "nested", "out")

		_, err := NewWriter(dir, "")
		require.NoError(t, err)

		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})

	t.Run("defaults apply", func(t *testing.T) {
		w, err := NewWriter(t.TempDir(), "")
		require.NoError(t, err)

		assert.True(t, strings.HasSuffix(w.Path(samplePersona()), "kojied_persona.txt"))
	})
}

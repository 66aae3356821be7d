package analysis

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// KeywordCategory is a named list of indicator terms. Categories and
// keywords are matched in declaration order, which also drives
// tie-breaking when strengths are equal.
type KeywordCategory struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// Tables holds the keyword lists and location patterns driving signal
// extraction. Tables are immutable configuration: build one with
// DefaultTables or LoadTables and pass it into the extractor.
type Tables struct {
	AgeGroups        []KeywordCategory `yaml:"age_groups"`
	Genders          []KeywordCategory `yaml:"genders"`
	Interests        []KeywordCategory `yaml:"interests"`
	Personality      []KeywordCategory `yaml:"personality"`
	LocationPatterns []string          `yaml:"location_patterns"`

	locationRegexps []*regexp.Regexp
}

// DefaultTables returns the built-in hand-curated keyword tables
func DefaultTables() *Tables {
	t := &Tables{
		AgeGroups: []KeywordCategory{
			{Name: "young", Keywords: []string{"college", "school", "student", "homework", "class", "dorm", "freshman", "sophomore", "junior", "senior"}},
			{Name: "middle", Keywords: []string{"work", "job", "career", "mortgage", "kids", "children", "family", "spouse", "marriage"}},
			{Name: "older", Keywords: []string{"retirement", "grandkids", "pension", "medicare", "social security", "arthritis", "back pain"}},
		},
		Genders: []KeywordCategory{
			{Name: "male", Keywords: []string{"girlfriend", "wife", "my girl", "she said", "boyfriend", "gay", "straight guy"}},
			{Name: "female", Keywords: []string{"boyfriend", "husband", "my guy", "he said", "girlfriend", "lesbian", "straight girl"}},
		},
		Interests: []KeywordCategory{
			{Name: "gaming", Keywords: []string{"game", "gaming", "steam", "console", "pc", "xbox", "playstation", "nintendo"}},
			{Name: "tech", Keywords: []string{"programming", "code", "software", "computer", "tech", "developer", "python", "javascript"}},
			{Name: "fitness", Keywords: []string{"gym", "workout", "exercise", "fitness", "running", "lifting", "diet", "protein"}},
			{Name: "food", Keywords: []string{"cooking", "recipe", "food", "restaurant", "chef", "kitchen", "meal", "dinner"}},
			{Name: "travel", Keywords: []string{"travel", "trip", "vacation", "flight", "hotel", "country", "city", "tourist"}},
			{Name: "entertainment", Keywords: []string{"movie", "film", "tv", "show", "netflix", "actor", "music", "band"}},
			{Name: "education", Keywords: []string{"university", "college", "degree", "professor", "study", "exam", "homework"}},
			{Name: "finance", Keywords: []string{"money", "investment", "stock", "crypto", "bitcoin", "salary", "budget", "savings"}},
		},
		Personality: []KeywordCategory{
			{Name: "helpful", Keywords: []string{"help", "advice", "recommend", "suggest", "guide", "explain"}},
			{Name: "humorous", Keywords: []string{"lol", "haha", "funny", "joke", "hilarious", "lmao"}},
			{Name: "analytical", Keywords: []string{"analyze", "data", "statistics", "research", "study", "evidence"}},
			{Name: "creative", Keywords: []string{"art", "design", "creative", "original", "innovative", "artistic"}},
			{Name: "social", Keywords: []string{"friend", "community", "social", "group", "together", "meetup"}},
		},
		LocationPatterns: []string{
			`(?i)\b(in|from|live in|living in|moved to|visiting)\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*)\b`,
			`(?i)\b([A-Z][a-z]+,\s*[A-Z]{2})\b`,
			`(?i)\b([A-Z][a-z]+\s+[A-Z][a-z]+)\b`,
		},
	}

	// The built-in patterns are known-good
	if err := t.Compile(); err != nil {
		panic(fmt.Sprintf("analysis: default location patterns: %v", err))
	}

	return t
}

// LoadTables reads keyword tables from a YAML file and compiles its
// location patterns
func LoadTables(path string) (*Tables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tables file: %w", err)
	}

	var t Tables
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to parse tables file: %w", err)
	}

	if err := t.Compile(); err != nil {
		return nil, err
	}

	return &t, nil
}

// Compile compiles the location patterns. Must be called before the
// tables are handed to an extractor; LoadTables and DefaultTables do
// this themselves.
func (t *Tables) Compile() error {
	t.locationRegexps = make([]*regexp.Regexp, 0, len(t.LocationPatterns))
	for _, pattern := range t.LocationPatterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return fmt.Errorf("invalid location pattern %q: %w", pattern, err)
		}
		t.locationRegexps = append(t.locationRegexps, re)
	}
	return nil
}

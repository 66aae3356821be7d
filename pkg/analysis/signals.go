package analysis

import (
	"strings"

	"redditpersona/pkg/reddit"
)

// Citation ties an inferred signal back to the source text and URL that
// produced it. One citation is emitted per (item, matched term) pair.
type Citation struct {
	Excerpt     string `json:"excerpt"`
	SourceURL   string `json:"source_url"`
	MatchedTerm string `json:"matched_term"`
}

// CitationMap maps a category key (age_young, gender_male, location,
// interest_gaming) to its citations in emission order.
type CitationMap map[string][]Citation

// Merge combines citation maps into a new map. Later maps append after
// earlier ones under shared keys; the inputs are not modified.
func Merge(maps ...CitationMap) CitationMap {
	merged := make(CitationMap)
	for _, m := range maps {
		for key, citations := range m {
			merged[key] = append(merged[key], citations...)
		}
	}
	return merged
}

// CategoryStrength is a category's aggregate match score, used for
// ranking. Strength counts raw keyword occurrences, which can exceed the
// category's citation count.
type CategoryStrength struct {
	Name     string `json:"name"`
	Strength int    `json:"strength"`
}

// Extractor scans item text against keyword tables and produces
// citations and strength scores. Each extraction pass returns its own
// result; merging happens explicitly at the caller.
type Extractor struct {
	tables              *Tables
	excerptLength       int
	interestCitationCap int
}

// NewExtractor creates an extractor over the given tables.
// excerptLength bounds citation excerpts; interestCitationCap bounds
// citations per item for interest categories.
func NewExtractor(tables *Tables, excerptLength, interestCitationCap int) *Extractor {
	if excerptLength <= 0 {
		excerptLength = 200
	}
	if interestCitationCap <= 0 {
		interestCitationCap = 1
	}

	return &Extractor{
		tables:              tables,
		excerptLength:       excerptLength,
		interestCitationCap: interestCitationCap,
	}
}

// itemText is the lower-cased concatenation of an item's title and body
func itemText(item reddit.ContentItem) string {
	return strings.ToLower(item.Title + " " + item.Body)
}

// excerpt truncates text to the configured excerpt length with an
// ellipsis marker. The length counts runes, so a cut never lands
// inside a multibyte character.
func (e *Extractor) excerpt(text string) string {
	runes := []rune(text)
	if len(runes) > e.excerptLength {
		return string(runes[:e.excerptLength]) + "..."
	}
	return text
}

// ExtractDemographics scans items against the age and gender keyword
// lists and the location patterns. Every (item, keyword) substring match
// emits a citation; a term appearing in opposing categories accumulates
// under both. Empty text simply yields nothing.
func (e *Extractor) ExtractDemographics(items []reddit.ContentItem) CitationMap {
	citations := make(CitationMap)

	for _, item := range items {
		text := itemText(item)

		for _, group := range e.tables.AgeGroups {
			for _, keyword := range group.Keywords {
				if strings.Contains(text, keyword) {
					citations["age_"+group.Name] = append(citations["age_"+group.Name], Citation{
						Excerpt:     e.excerpt(text),
						SourceURL:   item.SourceURL,
						MatchedTerm: keyword,
					})
				}
			}
		}

		for _, gender := range e.tables.Genders {
			for _, keyword := range gender.Keywords {
				if strings.Contains(text, keyword) {
					citations["gender_"+gender.Name] = append(citations["gender_"+gender.Name], Citation{
						Excerpt:     e.excerpt(text),
						SourceURL:   item.SourceURL,
						MatchedTerm: keyword,
					})
				}
			}
		}

		for _, re := range e.tables.locationRegexps {
			for _, match := range re.FindAllStringSubmatch(text, -1) {
				// The location is the last capture group; the leading
				// group of the preposition pattern is not a place
				location := match[len(match)-1]
				citations["location"] = append(citations["location"], Citation{
					Excerpt:     e.excerpt(text),
					SourceURL:   item.SourceURL,
					MatchedTerm: location,
				})
			}
		}
	}

	return citations
}

// ExtractInterests scores interest categories over the whole corpus and
// collects capped per-item citations.
//
// Strength is the total number of keyword occurrences across the
// concatenated text of all items, so "steam steam steam" counts three
// times. Citations are capped per item (first matching keywords win), so
// strength and citation count deliberately diverge.
func (e *Extractor) ExtractInterests(items []reddit.ContentItem) ([]CategoryStrength, CitationMap) {
	corpus := corpusText(items)

	strengths := make([]CategoryStrength, 0, len(e.tables.Interests))
	citations := make(CitationMap)

	for _, category := range e.tables.Interests {
		count := 0
		for _, keyword := range category.Keywords {
			count += strings.Count(corpus, keyword)
		}
		if count == 0 {
			continue
		}

		strengths = append(strengths, CategoryStrength{Name: category.Name, Strength: count})

		key := "interest_" + category.Name
		for _, item := range items {
			text := itemText(item)
			emitted := 0
			for _, keyword := range category.Keywords {
				if strings.Contains(text, keyword) {
					citations[key] = append(citations[key], Citation{
						Excerpt:     e.excerpt(text),
						SourceURL:   item.SourceURL,
						MatchedTerm: keyword,
					})
					emitted++
					if emitted >= e.interestCitationCap {
						break
					}
				}
			}
		}
	}

	return strengths, citations
}

// ExtractPersonality scores personality traits by occurrence count over
// the whole corpus. Traits carry no citations; only the strength is
// reported.
func (e *Extractor) ExtractPersonality(items []reddit.ContentItem) []CategoryStrength {
	corpus := corpusText(items)

	strengths := make([]CategoryStrength, 0, len(e.tables.Personality))
	for _, trait := range e.tables.Personality {
		count := 0
		for _, keyword := range trait.Keywords {
			count += strings.Count(corpus, keyword)
		}
		if count > 0 {
			strengths = append(strengths, CategoryStrength{Name: trait.Name, Strength: count})
		}
	}

	return strengths
}

// corpusText is the lower-cased concatenation of all item texts
func corpusText(items []reddit.ContentItem) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, item.Title+" "+item.Body)
	}
	return strings.ToLower(strings.Join(parts, " "))
}

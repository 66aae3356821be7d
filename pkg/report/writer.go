// Package report renders a Persona into a human-readable text report
// and writes it to disk, one file per run.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"redditpersona/pkg/analysis"
	"redditpersona/pkg/persona"
)

const (
	maxCitationsPerCategory = 3
	maxReportedInterests    = 5
	maxReportedTraits       = 5
	maxReportedLocations    = 3
	maxReportedCommunities  = 5

	timestampLayout = "2006-01-02 15:04:05"
)

// Writer renders personas to text files in an output directory
type Writer struct {
	outputDir       string
	fileNamePattern string
}

// NewWriter creates a report writer, creating the output directory if
// it doesn't exist. The file name pattern replaces "{username}" with
// the persona's username.
func NewWriter(outputDir, fileNamePattern string) (*Writer, error) {
	if outputDir == "" {
		outputDir = "."
	}
	if fileNamePattern == "" {
		fileNamePattern = "{username}_persona.txt"
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	return &Writer{
		outputDir:       outputDir,
		fileNamePattern: fileNamePattern,
	}, nil
}

// Path returns the report path for the given persona
func (w *Writer) Path(p *persona.Persona) string {
	name := strings.ReplaceAll(w.fileNamePattern, "{username}", p.Username)
	return filepath.Join(w.outputDir, name)
}

// Write renders the persona and writes the report file, returning its
// path
func (w *Writer) Write(p *persona.Persona) (string, error) {
	path := w.Path(p)
	if err := os.WriteFile(path, []byte(Render(p)), 0644); err != nil {
		return "", fmt.Errorf("failed to write report: %w", err)
	}
	return path, nil
}

// Render produces the full text report for a persona
func Render(p *persona.Persona) string {
	var b strings.Builder

	b.WriteString("REDDIT USER PERSONA REPORT\n")
	b.WriteString(strings.Repeat("=", 50) + "\n\n")

	fmt.Fprintf(&b, "Username: %s\n", p.Username)
	fmt.Fprintf(&b, "Profile URL: %s\n", p.ProfileURL)
	fmt.Fprintf(&b, "Generated: %s\n\n", p.GeneratedAt.Format(timestampLayout))

	writeBasicInfo(&b, p)
	writeActivity(&b, p)
	writeDemographics(&b, p)
	writeInterests(&b, p)
	writeTraits(&b, p)

	return b.String()
}

func writeBasicInfo(b *strings.Builder, p *persona.Persona) {
	writeHeader(b, "BASIC INFORMATION")
	fmt.Fprintf(b, "Account Age: %.1f years (%.0f days)\n", p.BasicInfo.AccountAgeYears, p.BasicInfo.AccountAgeDays)
	fmt.Fprintf(b, "Total Posts: %d\n", p.BasicInfo.TotalPosts)
	fmt.Fprintf(b, "Total Comments: %d\n", p.BasicInfo.TotalComments)
	fmt.Fprintf(b, "Engagement Style: %s\n\n", p.BasicInfo.EngagementStyle)
}

func writeActivity(b *strings.Builder, p *persona.Persona) {
	writeHeader(b, "ACTIVITY PATTERNS")

	hours := make([]string, 0, len(p.Activity.PeakHours))
	for _, h := range p.Activity.PeakHours {
		hours = append(hours, fmt.Sprintf("%d:00 (%d posts)", h.Hour, h.Count))
	}
	fmt.Fprintf(b, "Peak Activity Hours: %s\n", strings.Join(hours, ", "))

	communities := p.Activity.TopCommunities
	if len(communities) > maxReportedCommunities {
		communities = communities[:maxReportedCommunities]
	}
	names := make([]string, 0, len(communities))
	for _, c := range communities {
		names = append(names, fmt.Sprintf("%s (%d)", c.Name, c.Count))
	}
	fmt.Fprintf(b, "Top Subreddits: %s\n", strings.Join(names, ", "))

	fmt.Fprintf(b, "Average Post Score: %.1f\n", p.Activity.AvgPostScore)
	fmt.Fprintf(b, "Average Comment Score: %.1f\n\n", p.Activity.AvgCommentScore)
}

func writeDemographics(b *strings.Builder, p *persona.Persona) {
	writeHeader(b, "DEMOGRAPHICS")

	if p.Demographics.LikelyAgeGroup != "" {
		fmt.Fprintf(b, "Likely Age Group: %s\n", title(p.Demographics.LikelyAgeGroup))
		writeCitations(b, p.Citations, "age_"+p.Demographics.LikelyAgeGroup)
	}

	if p.Demographics.LikelyGender != "" {
		fmt.Fprintf(b, "Likely Gender: %s\n", title(p.Demographics.LikelyGender))
		writeCitations(b, p.Citations, "gender_"+p.Demographics.LikelyGender)
	}

	if len(p.Demographics.PossibleLocations) > 0 {
		locations := p.Demographics.PossibleLocations
		if len(locations) > maxReportedLocations {
			locations = locations[:maxReportedLocations]
		}
		parts := make([]string, 0, len(locations))
		for _, loc := range locations {
			parts = append(parts, fmt.Sprintf("%s (%d)", loc.Location, loc.Count))
		}
		fmt.Fprintf(b, "Possible Locations: %s\n", strings.Join(parts, ", "))
		writeCitations(b, p.Citations, "location")
	}

	b.WriteString("\n")
}

func writeInterests(b *strings.Builder, p *persona.Persona) {
	writeHeader(b, "INTERESTS")

	interests := p.Interests
	if len(interests) > maxReportedInterests {
		interests = interests[:maxReportedInterests]
	}
	for _, interest := range interests {
		fmt.Fprintf(b, "%s: %d mentions\n", title(interest.Name), interest.Strength)
		writeCitations(b, p.Citations, "interest_"+interest.Name)
	}
	b.WriteString("\n")
}

func writeTraits(b *strings.Builder, p *persona.Persona) {
	writeHeader(b, "PERSONALITY TRAITS")

	traits := p.PersonalityTraits
	if len(traits) > maxReportedTraits {
		traits = traits[:maxReportedTraits]
	}
	for _, trait := range traits {
		fmt.Fprintf(b, "%s: %d indicators\n", title(trait.Name), trait.Strength)
	}
	b.WriteString("\n")
}

// writeCitations writes up to three citations for a category, with a
// trailing count of what was cut
func writeCitations(b *strings.Builder, citations analysis.CitationMap, category string) {
	list := citations[category]
	if len(list) == 0 {
		return
	}

	b.WriteString("  Citations:\n")
	for i, citation := range list {
		if i >= maxCitationsPerCategory {
			break
		}
		fmt.Fprintf(b, "    %d. %q\n", i+1, citation.Excerpt)
		fmt.Fprintf(b, "       Source: %s\n", citation.SourceURL)
	}
	if len(list) > maxCitationsPerCategory {
		fmt.Fprintf(b, "    ... and %d more\n", len(list)-maxCitationsPerCategory)
	}
	b.WriteString("\n")
}

func writeHeader(b *strings.Builder, name string) {
	b.WriteString(name + "\n")
	b.WriteString(strings.Repeat("-", 20) + "\n")
}

// title upper-cases the first letter of each word
func title(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}

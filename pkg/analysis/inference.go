package analysis

import "sort"

const topLocationCount = 5

// LocationCount is a captured location string with its citation count
type LocationCount struct {
	Location string `json:"location"`
	Count    int    `json:"count"`
}

// Demographics holds best-guess demographic conclusions. Empty fields
// mean "no signal", not "unknown"; consumers omit them entirely.
type Demographics struct {
	LikelyAgeGroup    string          `json:"likely_age_group,omitempty"`
	LikelyGender      string          `json:"likely_gender,omitempty"`
	PossibleLocations []LocationCount `json:"possible_locations,omitempty"`
}

// InferDemographics reduces the demographic citation map to single-valued
// conclusions. Age and gender pick the candidate with the most citations;
// a zero-citation family stays unset. Candidate lists of different sizes
// are compared by raw count, without normalizing for list length.
func InferDemographics(citations CitationMap, tables *Tables) Demographics {
	var inferred Demographics

	bestCount := 0
	for _, group := range tables.AgeGroups {
		count := len(citations["age_"+group.Name])
		if count > bestCount {
			bestCount = count
			inferred.LikelyAgeGroup = group.Name
		}
	}

	bestCount = 0
	for _, gender := range tables.Genders {
		count := len(citations["gender_"+gender.Name])
		if count > bestCount {
			bestCount = count
			inferred.LikelyGender = gender.Name
		}
	}

	inferred.PossibleLocations = rankLocations(citations["location"])

	return inferred
}

// rankLocations counts distinct captured location strings and returns
// the most frequent ones, ties broken by first-encountered order
func rankLocations(citations []Citation) []LocationCount {
	if len(citations) == 0 {
		return nil
	}

	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	order := 0

	for _, citation := range citations {
		location := citation.MatchedTerm
		if _, seen := counts[location]; !seen {
			firstSeen[location] = order
			order++
		}
		counts[location]++
	}

	ranked := make([]LocationCount, 0, len(counts))
	for location, count := range counts {
		ranked = append(ranked, LocationCount{Location: location, Count: count})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return firstSeen[ranked[i].Location] < firstSeen[ranked[j].Location]
	})

	if len(ranked) > topLocationCount {
		ranked = ranked[:topLocationCount]
	}
	return ranked
}

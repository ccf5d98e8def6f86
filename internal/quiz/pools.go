package quiz

import "reelquiz/internal/dataset"

// Pools holds the distinct candidate values per attribute, in first-seen
// order. Distractors for a question are drawn from its attribute's pool.
type Pools map[Attribute][]string

// BuildPools collects the distinct attribute values across all rows. The
// genre pool includes every comma-separated token, so secondary genres can
// serve as distractors even though questions only ask about primary ones.
func BuildPools(rows []dataset.Row, attributes []Attribute) Pools {
	pools := make(Pools, len(attributes))
	for _, attribute := range attributes {
		seen := make(map[string]struct{})
		values := []string{}
		for _, row := range rows {
			for _, value := range candidateValues(row, attribute) {
				if value == "" {
					continue
				}
				if _, ok := seen[value]; ok {
					continue
				}
				seen[value] = struct{}{}
				values = append(values, value)
			}
		}
		pools[attribute] = values
	}
	return pools
}

func candidateValues(row dataset.Row, attribute Attribute) []string {
	if attribute == AttributeGenre {
		return GenreTokens(row.Genres)
	}
	return []string{answerFor(row, attribute)}
}

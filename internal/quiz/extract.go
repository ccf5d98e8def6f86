package quiz

import (
	"strings"

	"reelquiz/internal/dataset"
)

// Facts builds the askable facts for the requested attributes. Facts are
// ordered attribute by attribute, following dataset row order within each.
// Rows without a title or without the attribute value yield no fact.
func Facts(rows []dataset.Row, attributes []Attribute) []Fact {
	facts := make([]Fact, 0, len(rows)*len(attributes))
	for _, attribute := range attributes {
		for _, row := range rows {
			if row.Title == "" {
				continue
			}
			answer := answerFor(row, attribute)
			if answer == "" {
				continue
			}
			facts = append(facts, Fact{
				Attribute: attribute,
				Title:     row.Title,
				Answer:    answer,
			})
		}
	}
	return facts
}

// answerFor extracts the value a question about the attribute asks for.
func answerFor(row dataset.Row, attribute Attribute) string {
	switch attribute {
	case AttributeYear:
		return row.Year
	case AttributeActor:
		return row.MainActor
	case AttributeGenre:
		return PrimaryGenre(row.Genres)
	case AttributeDirector:
		return row.Director
	}
	return ""
}

// PrimaryGenre returns the first comma-separated genre token. A movie tagged
// "Action, Sci-Fi" is asked about as an Action movie.
func PrimaryGenre(genres string) string {
	first, _, _ := strings.Cut(genres, ",")
	return strings.TrimSpace(first)
}

// GenreTokens splits a genres field into its trimmed tokens.
func GenreTokens(genres string) []string {
	parts := strings.Split(genres, ",")
	tokens := make([]string, 0, len(parts))
	for _, part := range parts {
		if token := strings.TrimSpace(part); token != "" {
			tokens = append(tokens, token)
		}
	}
	return tokens
}

package runner

import "reelquiz/internal/quiz"

// summarize converts generation stats into the run summary.
func summarize(stats quiz.Stats) QuestionSummary {
	byAttribute := make(map[string]int, len(stats.ByAttribute))
	for attribute, count := range stats.ByAttribute {
		byAttribute[string(attribute)] = count
	}
	return QuestionSummary{
		Facts:        stats.Facts,
		Generated:    stats.Generated,
		SkippedFacts: stats.SkippedFacts,
		ByAttribute:  byAttribute,
	}
}

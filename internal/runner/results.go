package runner

import (
	"time"

	"reelquiz/internal/quiz"
)

// Results captures one generation run.
type Results struct {
	RunID       string
	DatasetPath string
	OutputPath  string
	Seed        int64
	StartedAt   time.Time
	FinishedAt  time.Time
	Dataset     DatasetSummary
	Questions   QuestionSummary
	Generated   []quiz.Question
}

// DatasetSummary describes what the loader and filter saw.
type DatasetSummary struct {
	RowsParsed   int
	RowsSkipped  int
	RowsFiltered int
}

// QuestionSummary describes what generation produced.
type QuestionSummary struct {
	Facts        int
	Generated    int
	SkippedFacts int
	ByAttribute  map[string]int
}

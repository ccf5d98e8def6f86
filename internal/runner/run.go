package runner

import (
	"context"
	"io"
	"path/filepath"
	"time"

	"reelquiz/internal/dataset"
	"reelquiz/internal/quiz"
	"reelquiz/internal/spec"
)

// Dependencies are runner seams tests can replace.
type Dependencies struct {
	RunID func() (string, error)
	Now   func() time.Time
}

// Params configures a generation run. Config values are the source of
// truth; the CLI merges flag overrides into the config before calling Run.
type Params struct {
	// BaseDir anchors relative dataset and output paths. Empty means the
	// current directory.
	BaseDir string
	// Verbose enables stage logging to VerboseWriter.
	Verbose       bool
	VerboseWriter io.Writer
	NoColor       bool
	Deps          Dependencies
}

// Run loads the dataset, applies the row filter, and generates questions.
// Nothing is written; RunAndWrite persists the output file.
func Run(ctx context.Context, cfg spec.Config, params Params) (Results, error) {
	if err := ctx.Err(); err != nil {
		return Results{}, err
	}

	runID, err := ensureRunID(params.Deps.RunID)
	if err != nil {
		return Results{}, err
	}
	now := params.Deps.Now
	if now == nil {
		now = time.Now
	}
	startedAt := now()

	datasetPath := resolvePath(params.BaseDir, cfg.Dataset.Path)
	outputPath := resolvePath(params.BaseDir, cfg.Output.Path)

	loaded, err := dataset.LoadFile(datasetPath)
	if err != nil {
		return Results{}, err
	}
	logVerbose(params, styleStage, "dataset %s: %d rows parsed, %d skipped", datasetPath, len(loaded.Rows), loaded.Skipped)

	filter, err := dataset.CompileFilter(cfg.Dataset.Filter)
	if err != nil {
		return Results{}, err
	}
	rows, excluded, err := dataset.ApplyFilter(loaded.Rows, filter)
	if err != nil {
		return Results{}, err
	}
	if filter != nil {
		logVerbose(params, styleStage, "filter %q: %d rows kept, %d excluded", cfg.Dataset.Filter, len(rows), excluded)
	}

	attributes, err := quiz.ParseAttributes(cfg.Generator.Attributes)
	if err != nil {
		return Results{}, err
	}
	questions, stats := quiz.Generate(rows, quiz.Params{
		Attributes: attributes,
		Count:      cfg.Generator.Count,
		Seed:       cfg.Generator.Seed,
	})
	summary := summarize(stats)
	logVerbose(params, styleMetrics, "generated %d questions from %d facts (%d skipped): %s",
		summary.Generated, summary.Facts, summary.SkippedFacts, formatAttributeCounts(summary.ByAttribute))

	finishedAt := now()
	return Results{
		RunID:       runID,
		DatasetPath: datasetPath,
		OutputPath:  outputPath,
		Seed:        cfg.Generator.Seed,
		StartedAt:   startedAt,
		FinishedAt:  finishedAt,
		Dataset: DatasetSummary{
			RowsParsed:   len(loaded.Rows),
			RowsSkipped:  loaded.Skipped,
			RowsFiltered: excluded,
		},
		Questions: summary,
		Generated: questions,
	}, nil
}

// RunAndWrite runs generation and writes the questions file. The file is
// written even when no questions were generated, so downstream consumers
// always find a well-formed header.
func RunAndWrite(ctx context.Context, cfg spec.Config, params Params) (Results, error) {
	results, err := Run(ctx, cfg, params)
	if err != nil {
		return Results{}, err
	}
	if err := quiz.WriteFile(results.OutputPath, results.Generated); err != nil {
		return Results{}, err
	}
	logVerbose(params, styleStage, "wrote %s", results.OutputPath)
	return results, nil
}

func ensureRunID(generator func() (string, error)) (string, error) {
	if generator != nil {
		return generator()
	}
	return NewRunID()
}

func resolvePath(baseDir, path string) string {
	if path == "" || filepath.IsAbs(path) || baseDir == "" {
		return path
	}
	return filepath.Join(baseDir, path)
}

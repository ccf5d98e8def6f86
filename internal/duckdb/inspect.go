package duckdb

import (
	"context"

	"reelquiz/internal/dataset"
)

// Inspect ingests rows into a fresh in-memory database and computes the
// inspection report. Nothing touches disk.
func Inspect(ctx context.Context, rows []dataset.Row, topN int) (DatasetStats, error) {
	db, err := OpenMemory(ctx)
	if err != nil {
		return DatasetStats{}, err
	}
	defer db.Close()

	if err := InsertRows(ctx, db, rows); err != nil {
		return DatasetStats{}, err
	}
	return CollectStats(ctx, db, topN)
}

package duckdb_test

import (
	"testing"

	"reelquiz/internal/dataset"
	"reelquiz/internal/duckdb"
)

// TestCollectStatsSummary verifies totals, ranges, and averages.
func TestCollectStatsSummary(t *testing.T) {
	db, ctx := openTestDB(t)
	if err := duckdb.InsertRows(ctx, db, testRows()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stats, err := duckdb.CollectStats(ctx, db, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.Movies != 4 {
		t.Fatalf("expected 4 movies, got %d", stats.Movies)
	}
	if !stats.HasYears || stats.MinYear != 1979 || stats.MaxYear != 2010 {
		t.Fatalf("unexpected year range %+v", stats)
	}
	if !stats.HasRatings {
		t.Fatalf("expected a rating average")
	}
	if stats.AvgRating < 8.5 || stats.AvgRating > 8.6 {
		t.Fatalf("unexpected average rating %f", stats.AvgRating)
	}
}

// TestCollectStatsViability verifies the distinct-pool floor per attribute.
func TestCollectStatsViability(t *testing.T) {
	db, ctx := openTestDB(t)
	if err := duckdb.InsertRows(ctx, db, testRows()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stats, err := duckdb.CollectStats(ctx, db, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	byAttribute := map[string]duckdb.AttributeStats{}
	for _, attribute := range stats.Attributes {
		byAttribute[attribute.Attribute] = attribute
	}

	year := byAttribute["year"]
	if year.Distinct != 3 || year.Viable {
		t.Fatalf("expected 3 distinct years and no viability, got %+v", year)
	}
	genre := byAttribute["genre"]
	if genre.Distinct != 6 || !genre.Viable {
		t.Fatalf("expected 6 distinct genre tokens and viability, got %+v", genre)
	}
	director := byAttribute["director"]
	if director.Distinct != 4 || !director.Viable {
		t.Fatalf("expected 4 distinct directors and viability, got %+v", director)
	}
	actor := byAttribute["actor"]
	if actor.Distinct != 3 || actor.Viable {
		t.Fatalf("expected 3 distinct actors and no viability, got %+v", actor)
	}
}

// TestCollectStatsTopValues verifies top lists are ordered and capped.
func TestCollectStatsTopValues(t *testing.T) {
	db, ctx := openTestDB(t)
	if err := duckdb.InsertRows(ctx, db, testRows()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stats, err := duckdb.CollectStats(ctx, db, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, attribute := range stats.Attributes {
		if len(attribute.Top) > 2 {
			t.Fatalf("expected top list capped at 2, got %+v", attribute)
		}
		if attribute.Attribute == "genre" {
			if len(attribute.Top) != 2 || attribute.Top[0].Value != "Sci-Fi" || attribute.Top[0].Count != 2 {
				t.Fatalf("expected Sci-Fi as most common token, got %+v", attribute.Top)
			}
		}
	}
}

// TestCollectStatsEmptyDatabase verifies behavior with no rows.
func TestCollectStatsEmptyDatabase(t *testing.T) {
	db, ctx := openTestDB(t)
	stats, err := duckdb.CollectStats(ctx, db, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.Movies != 0 || stats.HasYears || stats.HasRatings {
		t.Fatalf("expected empty stats, got %+v", stats)
	}
	for _, attribute := range stats.Attributes {
		if attribute.Distinct != 0 || attribute.Viable {
			t.Fatalf("expected empty pools, got %+v", attribute)
		}
	}
}

// TestCollectStatsIgnoresDatasetRowsWithoutValues verifies NULL handling.
func TestCollectStatsIgnoresDatasetRowsWithoutValues(t *testing.T) {
	db, ctx := openTestDB(t)
	rows := []dataset.Row{
		{Title: "Only Title"},
		{Title: "With Year", Year: "1999"},
	}
	if err := duckdb.InsertRows(ctx, db, rows); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	stats, err := duckdb.CollectStats(ctx, db, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, attribute := range stats.Attributes {
		if attribute.Attribute == "year" && attribute.Distinct != 1 {
			t.Fatalf("expected 1 distinct year, got %+v", attribute)
		}
	}
}

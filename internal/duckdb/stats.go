package duckdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// minPoolSize is the distinct-value floor for a four-option question: one
// answer plus three distractors.
const minPoolSize = 4

// ValueCount is one attribute value and how many movies carry it.
type ValueCount struct {
	Value string
	Count int
}

// AttributeStats summarizes the option pool for one question attribute.
type AttributeStats struct {
	Attribute string
	Distinct  int
	Viable    bool
	Top       []ValueCount
}

// DatasetStats is the report assembled by the inspect command.
type DatasetStats struct {
	Movies     int
	MinYear    int
	MaxYear    int
	HasYears   bool
	AvgRating  float64
	HasRatings bool
	Attributes []AttributeStats
}

type attributeQueries struct {
	attribute string
	distinct  string
	top       string
}

// Genre pools draw from exploded tokens; the other attributes group plain
// movie columns.
var inspectQueries = []attributeQueries{
	{
		attribute: "year",
		distinct:  `SELECT count(DISTINCT year) FROM movies WHERE year IS NOT NULL`,
		top: `SELECT CAST(year AS VARCHAR) AS value, count(*) AS n FROM movies
		      WHERE year IS NOT NULL GROUP BY year ORDER BY n DESC, value LIMIT ?`,
	},
	{
		attribute: "actor",
		distinct:  `SELECT count(DISTINCT main_actor) FROM movies WHERE main_actor IS NOT NULL`,
		top: `SELECT main_actor AS value, count(*) AS n FROM movies
		      WHERE main_actor IS NOT NULL GROUP BY main_actor ORDER BY n DESC, value LIMIT ?`,
	},
	{
		attribute: "genre",
		distinct:  `SELECT count(DISTINCT token) FROM genre_tokens`,
		top: `SELECT token AS value, count(*) AS n FROM genre_tokens
		      GROUP BY token ORDER BY n DESC, value LIMIT ?`,
	},
	{
		attribute: "director",
		distinct:  `SELECT count(DISTINCT director) FROM movies WHERE director IS NOT NULL`,
		top: `SELECT director AS value, count(*) AS n FROM movies
		      WHERE director IS NOT NULL GROUP BY director ORDER BY n DESC, value LIMIT ?`,
	},
}

// CollectStats computes the inspection report. topN caps the most-common
// values listed per attribute.
func CollectStats(ctx context.Context, db *sql.DB, topN int) (DatasetStats, error) {
	if db == nil {
		return DatasetStats{}, errors.New("duckdb: db is nil")
	}
	if topN <= 0 {
		topN = 5
	}

	stats := DatasetStats{}
	if err := db.QueryRowContext(ctx, `SELECT count(*) FROM movies`).Scan(&stats.Movies); err != nil {
		return DatasetStats{}, fmt.Errorf("count movies: %w", err)
	}

	var minYear, maxYear sql.NullInt64
	if err := db.QueryRowContext(ctx, `SELECT min(year), max(year) FROM movies`).Scan(&minYear, &maxYear); err != nil {
		return DatasetStats{}, fmt.Errorf("year range: %w", err)
	}
	if minYear.Valid && maxYear.Valid {
		stats.MinYear = int(minYear.Int64)
		stats.MaxYear = int(maxYear.Int64)
		stats.HasYears = true
	}

	var avgRating sql.NullFloat64
	if err := db.QueryRowContext(ctx, `SELECT avg(rating) FROM movies`).Scan(&avgRating); err != nil {
		return DatasetStats{}, fmt.Errorf("average rating: %w", err)
	}
	if avgRating.Valid {
		stats.AvgRating = avgRating.Float64
		stats.HasRatings = true
	}

	for _, queries := range inspectQueries {
		attribute, err := collectAttribute(ctx, db, queries, topN)
		if err != nil {
			return DatasetStats{}, err
		}
		stats.Attributes = append(stats.Attributes, attribute)
	}
	return stats, nil
}

func collectAttribute(ctx context.Context, db *sql.DB, queries attributeQueries, topN int) (AttributeStats, error) {
	stats := AttributeStats{Attribute: queries.attribute}
	if err := db.QueryRowContext(ctx, queries.distinct).Scan(&stats.Distinct); err != nil {
		return AttributeStats{}, fmt.Errorf("distinct %s: %w", queries.attribute, err)
	}
	stats.Viable = stats.Distinct >= minPoolSize

	rows, err := db.QueryContext(ctx, queries.top, topN)
	if err != nil {
		return AttributeStats{}, fmt.Errorf("top %s: %w", queries.attribute, err)
	}
	defer rows.Close()
	for rows.Next() {
		var entry ValueCount
		if err := rows.Scan(&entry.Value, &entry.Count); err != nil {
			return AttributeStats{}, fmt.Errorf("scan top %s: %w", queries.attribute, err)
		}
		stats.Top = append(stats.Top, entry)
	}
	if err := rows.Err(); err != nil {
		return AttributeStats{}, fmt.Errorf("iterate top %s: %w", queries.attribute, err)
	}
	return stats, nil
}

package duckdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"reelquiz/internal/dataset"
	"reelquiz/internal/quiz"
)

// InsertRows loads dataset rows into the inspection tables. Rows without a
// title are skipped; unparseable years and ratings are stored as NULL.
func InsertRows(ctx context.Context, db *sql.DB, rows []dataset.Row) error {
	if db == nil {
		return errors.New("duckdb: db is nil")
	}
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin ingest: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	movieStmt, err := tx.PrepareContext(ctx,
		`INSERT INTO movies (movie_id, title, year, director, main_actor, genres, primary_genre, rating)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare movie insert: %w", err)
	}
	defer func() { _ = movieStmt.Close() }()

	tokenStmt, err := tx.PrepareContext(ctx,
		`INSERT INTO genre_tokens (movie_id, token) VALUES (?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare token insert: %w", err)
	}
	defer func() { _ = tokenStmt.Close() }()

	for _, row := range rows {
		if row.Title == "" {
			continue
		}
		id := uuid.NewString()
		if _, err := movieStmt.ExecContext(
			ctx,
			id,
			row.Title,
			nullableInt(row.Year),
			nullableText(row.Director),
			nullableText(row.MainActor),
			nullableText(row.Genres),
			nullableText(quiz.PrimaryGenre(row.Genres)),
			nullableFloat(row.Rating),
		); err != nil {
			return fmt.Errorf("insert movie %q: %w", row.Title, err)
		}
		for _, token := range quiz.GenreTokens(row.Genres) {
			if _, err := tokenStmt.ExecContext(ctx, id, token); err != nil {
				return fmt.Errorf("insert genre token %q: %w", token, err)
			}
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit ingest: %w", err)
	}
	return nil
}

func nullableText(value string) any {
	if value == "" {
		return nil
	}
	return value
}

func nullableInt(value string) any {
	n, err := strconv.Atoi(value)
	if err != nil {
		return nil
	}
	return n
}

func nullableFloat(value string) any {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil
	}
	return f
}

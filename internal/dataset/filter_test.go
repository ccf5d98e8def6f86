package dataset

import (
	"strings"
	"testing"
)

func sampleRow() Row {
	return Row{
		Title:     "Inception",
		Year:      "2010",
		Director:  "Christopher Nolan",
		MainActor: "Leonardo DiCaprio",
		Genres:    "Action, Sci-Fi",
		Rating:    "8.8",
	}
}

func TestCompileFilterEmptyExpression(t *testing.T) {
	f, err := CompileFilter("   ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f != nil {
		t.Fatal("expected nil filter for empty expression")
	}
	ok, err := f.Match(sampleRow())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("expected nil filter to match every row")
	}
}

func TestCompileFilterRejectsBadExpression(t *testing.T) {
	_, err := CompileFilter("row.rating >=")
	if err == nil {
		t.Fatal("expected error for malformed expression")
	}
	if !strings.Contains(err.Error(), "compile filter") {
		t.Fatalf("expected compile filter error, got %v", err)
	}
}

func TestFilterMatchNumericFields(t *testing.T) {
	f, err := CompileFilter("row.rating >= 7.0 && row.year < 2020")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ok, err := f.Match(sampleRow())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("expected row to match")
	}

	low := sampleRow()
	low.Rating = "5.1"
	ok, err = f.Match(low)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatal("expected low-rated row to be rejected")
	}
}

func TestFilterMatchStringFields(t *testing.T) {
	f, err := CompileFilter(`row.genres.contains("Sci-Fi")`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ok, err := f.Match(sampleRow())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("expected genre substring to match")
	}
}

func TestFilterUnparseableNumbersBecomeZero(t *testing.T) {
	f, err := CompileFilter("row.year == 0")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	row := sampleRow()
	row.Year = "unknown"
	ok, err := f.Match(row)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("expected unparseable year to compare as zero")
	}
}

func TestFilterNonBooleanResultDoesNotMatch(t *testing.T) {
	f, err := CompileFilter("row.title")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ok, err := f.Match(sampleRow())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatal("expected non-boolean result to be treated as no match")
	}
}

func TestApplyFilterCountsExcludedRows(t *testing.T) {
	rows := []Row{sampleRow(), sampleRow(), sampleRow()}
	rows[1].Rating = "4.2"
	rows[2].Rating = "6.9"

	f, err := CompileFilter("row.rating >= 7.0")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	kept, excluded, err := ApplyFilter(rows, f)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(kept) != 1 || excluded != 2 {
		t.Fatalf("expected 1 kept and 2 excluded, got %d and %d", len(kept), excluded)
	}

	kept, excluded, err = ApplyFilter(rows, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(kept) != 3 || excluded != 0 {
		t.Fatalf("expected nil filter to keep all rows, got %d and %d", len(kept), excluded)
	}
}

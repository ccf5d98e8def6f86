package dataset

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/cel-go/cel"
)

// Filter is a compiled row predicate. Expressions see a single `row`
// variable with typed fields, e.g. `row.rating >= 7.0 && row.year < 2000`.
type Filter struct {
	program cel.Program
}

// CompileFilter builds a Filter from a CEL expression. An empty expression
// yields a nil Filter, which matches every row.
func CompileFilter(expression string) (*Filter, error) {
	if strings.TrimSpace(expression) == "" {
		return nil, nil
	}
	env, err := cel.NewEnv(cel.Variable("row", cel.DynType))
	if err != nil {
		return nil, fmt.Errorf("create filter environment: %w", err)
	}
	ast, issues := env.Compile(expression)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("compile filter: %w", issues.Err())
	}
	program, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("build filter program: %w", err)
	}
	return &Filter{program: program}, nil
}

// Match reports whether the row satisfies the filter. A nil Filter matches
// everything. Expressions that evaluate to a non-boolean value do not match.
func (f *Filter) Match(row Row) (bool, error) {
	if f == nil {
		return true, nil
	}
	out, _, err := f.program.Eval(map[string]any{"row": row.filterVars()})
	if err != nil {
		return false, fmt.Errorf("evaluate filter: %w", err)
	}
	matched, ok := out.Value().(bool)
	if !ok {
		return false, nil
	}
	return matched, nil
}

// ApplyFilter returns the rows that match f plus the number excluded.
func ApplyFilter(rows []Row, f *Filter) ([]Row, int, error) {
	if f == nil {
		return rows, 0, nil
	}
	kept := make([]Row, 0, len(rows))
	excluded := 0
	for _, row := range rows {
		ok, err := f.Match(row)
		if err != nil {
			return nil, 0, err
		}
		if ok {
			kept = append(kept, row)
		} else {
			excluded++
		}
	}
	return kept, excluded, nil
}

// filterVars exposes the row to filter expressions. Year and rating are
// converted to numbers so comparisons work; unparseable values become zero.
func (r Row) filterVars() map[string]any {
	year, _ := strconv.Atoi(r.Year)
	rating, _ := strconv.ParseFloat(r.Rating, 64)
	return map[string]any{
		"title":      r.Title,
		"year":       year,
		"director":   r.Director,
		"main_actor": r.MainActor,
		"genres":     r.Genres,
		"rating":     rating,
	}
}

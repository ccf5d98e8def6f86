package dataset

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// delimiterCandidates are tried against the header line, most common first.
var delimiterCandidates = []rune{',', ';', '\t', '|'}

const maxLineBytes = 1 << 20

// LoadFile reads and parses the dataset at path.
func LoadFile(path string) (Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return Result{}, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	res, err := Load(f)
	if err != nil {
		return Result{}, fmt.Errorf("load dataset %s: %w", path, err)
	}
	return res, nil
}

// Load parses dataset rows from r. The first non-blank line is the header;
// its delimiter is detected by inspection. Rows that cannot be parsed, or
// that carry more fields than the header, are skipped and counted rather
// than failing the load. Rows with fewer fields are padded with empty
// values. The loader is line oriented, so a record must fit on one line.
func Load(r io.Reader) (Result, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	header, err := readHeader(scanner)
	if err != nil {
		return Result{}, err
	}
	delim := detectDelimiter(header)

	columns, err := parseLine(header, delim)
	if err != nil {
		return Result{}, fmt.Errorf("parse header: %w", err)
	}
	index := columnIndex(columns)

	res := Result{}
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields, err := parseLine(line, delim)
		if err != nil || len(fields) > len(columns) {
			res.Skipped++
			continue
		}
		res.Rows = append(res.Rows, rowFromFields(fields, index))
	}
	if err := scanner.Err(); err != nil {
		return Result{}, fmt.Errorf("read dataset: %w", err)
	}
	return res, nil
}

func readHeader(scanner *bufio.Scanner) (string, error) {
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) != "" {
			return line, nil
		}
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("read dataset: %w", err)
	}
	return "", fmt.Errorf("dataset has no header row")
}

// detectDelimiter picks the candidate that occurs most often in the header.
// Ties keep the earlier candidate, so a plain comma header wins.
func detectDelimiter(header string) rune {
	best := delimiterCandidates[0]
	bestCount := 0
	for _, c := range delimiterCandidates {
		count := strings.Count(header, string(c))
		if count > bestCount {
			best = c
			bestCount = count
		}
	}
	return best
}

func parseLine(line string, delim rune) ([]string, error) {
	reader := csv.NewReader(strings.NewReader(line))
	reader.Comma = delim
	reader.FieldsPerRecord = -1
	return reader.Read()
}

// columnIndex maps normalized column names to their position. Unknown
// columns are ignored; duplicates keep the first occurrence.
func columnIndex(columns []string) map[string]int {
	index := make(map[string]int, len(columns))
	for i, name := range columns {
		normalized := strings.ToLower(strings.TrimSpace(name))
		if _, ok := index[normalized]; !ok {
			index[normalized] = i
		}
	}
	return index
}

func rowFromFields(fields []string, index map[string]int) Row {
	at := func(column string) string {
		i, ok := index[column]
		if !ok || i >= len(fields) {
			return ""
		}
		return strings.TrimSpace(fields[i])
	}
	return Row{
		Title:     at(ColumnTitle),
		Year:      at(ColumnYear),
		Director:  at(ColumnDirector),
		MainActor: at(ColumnMainActor),
		Genres:    at(ColumnGenres),
		Rating:    at(ColumnRating),
	}
}

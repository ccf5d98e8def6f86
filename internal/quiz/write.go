package quiz

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
)

// Header is the column layout of a questions file.
var Header = []string{"question", "option1", "option2", "option3", "option4", "correct"}

// WriteFile writes questions as CSV to path, creating parent directories.
// An empty question list still writes the header row.
func WriteFile(path string, questions []Question) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	if err := Write(f, questions); err != nil {
		f.Close()
		return fmt.Errorf("write output file %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close output file: %w", err)
	}
	return nil
}

// Write writes the header plus one CSV record per question.
func Write(w io.Writer, questions []Question) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(Header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, question := range questions {
		record := []string{
			question.Prompt,
			question.Options[0],
			question.Options[1],
			question.Options[2],
			question.Options[3],
			strconv.Itoa(question.Correct),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write question: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush questions: %w", err)
	}
	return nil
}

package quiz

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Issue captures a validation problem in a questions file.
type Issue struct {
	Field   string
	Message string
}

// ValidationError reports one or more questions file issues.
type ValidationError struct {
	Issues []Issue
}

// Error returns a readable message for validation failures.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return ""
	}
	parts := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return fmt.Sprintf("questions file validation failed: %s", strings.Join(parts, "; "))
}

type issueCollector struct {
	issues []Issue
}

func (collector *issueCollector) add(field, message string) {
	collector.issues = append(collector.issues, Issue{Field: field, Message: message})
}

func (collector *issueCollector) result() error {
	if len(collector.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: collector.issues}
}

// ReadFile loads and validates a questions file.
func ReadFile(path string) ([]Question, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open questions file: %w", err)
	}
	defer f.Close()

	questions, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("read questions file %s: %w", path, err)
	}
	return questions, nil
}

// Read parses questions from CSV. Unlike the dataset loader this parse is
// strict, since questions files are machine written.
func Read(r io.Reader) ([]Question, error) {
	reader := csv.NewReader(r)
	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("questions file is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("parse header: %w", err)
	}
	if !headerMatches(header) {
		return nil, fmt.Errorf("unexpected header %v", header)
	}

	collector := &issueCollector{}
	questions := []Question{}
	for row := 0; ; row++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse questions: %w", err)
		}
		question, ok := parseQuestion(record, row, collector.add)
		if ok {
			questions = append(questions, question)
		}
	}
	if err := collector.result(); err != nil {
		return nil, err
	}
	return questions, nil
}

func headerMatches(header []string) bool {
	if len(header) != len(Header) {
		return false
	}
	for i, name := range Header {
		if strings.TrimSpace(header[i]) != name {
			return false
		}
	}
	return true
}

func parseQuestion(record []string, index int, add func(field, message string)) (Question, bool) {
	prefix := fmt.Sprintf("questions[%d]", index)

	question := Question{Prompt: strings.TrimSpace(record[0])}
	if question.Prompt == "" {
		add(prefix+".question", "is required")
	}
	seen := make(map[string]int, 4)
	for i := 0; i < 4; i++ {
		option := strings.TrimSpace(record[i+1])
		if option == "" {
			add(fmt.Sprintf("%s.option%d", prefix, i+1), "is required")
		} else if prior, ok := seen[option]; ok {
			add(fmt.Sprintf("%s.option%d", prefix, i+1), fmt.Sprintf("duplicates option%d", prior))
		} else {
			seen[option] = i + 1
		}
		question.Options[i] = option
	}
	correct, err := strconv.Atoi(strings.TrimSpace(record[5]))
	if err != nil {
		add(prefix+".correct", fmt.Sprintf("invalid index %q", record[5]))
		return Question{}, false
	}
	if correct < 1 || correct > 4 {
		add(prefix+".correct", fmt.Sprintf("index %d out of range", correct))
		return Question{}, false
	}
	question.Correct = correct
	return question, true
}

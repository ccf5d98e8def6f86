package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// readLine reads one line, trimming the line ending. EOF with partial
// input still yields that input.
func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	line = strings.TrimRight(line, "\r\n")
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	if errors.Is(err, io.EOF) {
		return line, io.EOF
	}
	return line, nil
}

// promptString asks for a value; empty input selects the fallback.
func promptString(reader *bufio.Reader, out io.Writer, label, fallback string) (string, error) {
	for {
		if fallback != "" {
			fmt.Fprintf(out, "%s [%s]: ", label, fallback)
		} else {
			fmt.Fprintf(out, "%s: ", label)
		}
		line, err := readLine(reader)
		if err != nil && err != io.EOF {
			return "", err
		}
		line = strings.TrimSpace(line)
		if line != "" {
			return line, nil
		}
		if fallback != "" {
			return fallback, nil
		}
		if err == io.EOF {
			return "", fmt.Errorf("missing input for %s", label)
		}
	}
}

// promptYesNo asks a yes/no question; empty input selects the default.
func promptYesNo(reader *bufio.Reader, out io.Writer, label string, defaultYes bool) (bool, error) {
	suffix := "y/N"
	if defaultYes {
		suffix = "Y/n"
	}
	for {
		fmt.Fprintf(out, "%s [%s]: ", label, suffix)
		line, err := readLine(reader)
		if err != nil && err != io.EOF {
			return false, err
		}
		answer := strings.ToLower(strings.TrimSpace(line))
		switch answer {
		case "":
			return defaultYes, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		default:
			if err == io.EOF {
				return false, fmt.Errorf("invalid response %q", answer)
			}
			fmt.Fprintln(out, "Please answer yes or no.")
		}
	}
}

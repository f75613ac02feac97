package source

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// FromFile reads a line-oriented identifier list. Each non-empty line is one
// identifier; surrounding whitespace is trimmed, blank lines and lines
// starting with # are skipped.
func FromFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open identifier file: %w", err)
	}
	defer f.Close()

	var identifiers []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		identifiers = append(identifiers, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read identifier file: %w", err)
	}

	return identifiers, nil
}

// FromArgs trims positional arguments and drops empty ones.
func FromArgs(args []string) []string {
	identifiers := make([]string, 0, len(args))
	for _, arg := range args {
		if arg = strings.TrimSpace(arg); arg != "" {
			identifiers = append(identifiers, arg)
		}
	}
	return identifiers
}

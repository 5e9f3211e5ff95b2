package pipeline

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

const (
	// DefaultMaxCandidates bounds how many candidates an audit accepts
	// when the caller does not set a limit.
	DefaultMaxCandidates = 10000

	// maxLineBytes bounds a single candidate line. Longer lines abort
	// the read; candidates are never truncated.
	maxLineBytes = 1024
)

// ReadPasswordList reads newline-delimited candidates from r. Blank lines
// and lines starting with '#' are skipped; surrounding whitespace is
// trimmed. At most limit candidates are accepted (DefaultMaxCandidates when
// limit <= 0).
func ReadPasswordList(r io.Reader, limit int) ([]string, error) {
	if limit <= 0 {
		limit = DefaultMaxCandidates
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, maxLineBytes), maxLineBytes)

	passwords := []string{}
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if len(passwords) >= limit {
			return nil, fmt.Errorf("%w: limit %d", ErrTooManyCandidates, limit)
		}
		passwords = append(passwords, line)
	}
	if err := scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, ErrLineTooLong
		}
		return nil, fmt.Errorf("failed to read password list: %w", err)
	}

	return passwords, nil
}

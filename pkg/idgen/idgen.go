package idgen

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Width is the number of digits after the prefix.
const Width = 3

// maxSequence is the largest suffix representable in Width digits.
const maxSequence = 999

var (
	ErrExhausted = errors.New("id sequence exhausted")
	ErrMalformed = errors.New("malformed id")
)

// Next returns the id that follows lastID, e.g. Next("PAC", "PAC009") = "PAC010".
// An empty lastID starts the sequence at prefix+"001".
func Next(prefix, lastID string) (string, error) {
	if lastID == "" {
		return fmt.Sprintf("%s%0*d", prefix, Width, 1), nil
	}

	n, err := Sequence(prefix, lastID)
	if err != nil {
		return "", err
	}
	if n+1 > maxSequence {
		return "", fmt.Errorf("%w: %s after %s", ErrExhausted, prefix, lastID)
	}

	return fmt.Sprintf("%s%0*d", prefix, Width, n+1), nil
}

// Sequence extracts the numeric suffix of id.
func Sequence(prefix, id string) (int, error) {
	if !strings.HasPrefix(id, prefix) {
		return 0, fmt.Errorf("%w: %q does not start with %q", ErrMalformed, id, prefix)
	}

	n, err := strconv.Atoi(strings.TrimPrefix(id, prefix))
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %q", ErrMalformed, id)
	}
	return n, nil
}

// Max returns the id with the highest numeric suffix. Ids that do not parse
// under prefix are ignored. Returns "" when none qualify.
func Max(prefix string, ids []string) string {
	best, bestN := "", -1
	for _, id := range ids {
		n, err := Sequence(prefix, id)
		if err != nil {
			continue
		}
		if n > bestN {
			best, bestN = id, n
		}
	}
	return best
}

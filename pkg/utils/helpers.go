package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseYear parses a dropdown year value. An empty value means no
// selection and returns 0 with no error.
func ParseYear(s string) (int, error) {
	// Trim whitespace first
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}

	year, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("year must be an integer, got %q", s)
	}
	if year <= 0 {
		return 0, fmt.Errorf("year must be positive, got %d", year)
	}
	return year, nil
}

// PathParam extracts the trailing segment after prefix. path is the
// already decoded r.URL.Path.
func PathParam(path, prefix string) (string, bool) {
	if !strings.HasPrefix(path, prefix) {
		return "", false
	}
	val := path[len(prefix):]
	if val == "" || strings.Contains(val, "/") {
		return "", false
	}
	return val, true
}

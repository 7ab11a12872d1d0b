package dataset

import (
	"bufio"
	"bytes"
	_ "embed"
	"fmt"
	"strings"
)

//go:embed countries.txt
var countriesTxt []byte

// loadCountries parses the embedded country list. Blank lines and
// lines starting with '#' are skipped.
func loadCountries() ([]string, error) {
	return parseCountries(countriesTxt)
}

func parseCountries(data []byte) ([]string, error) {
	var names []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(bytes.NewReader(data))
	line := 0
	for scanner.Scan() {
		line++
		t := strings.TrimSpace(scanner.Text())
		if t == "" || t[0] == '#' {
			continue
		}
		if seen[t] {
			return nil, fmt.Errorf("%w: duplicate country %q on line %d", ErrMalformed, t, line)
		}
		seen[t] = true
		names = append(names, t)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan countries: %w", err)
	}
	return names, nil
}

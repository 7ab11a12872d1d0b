package dataset

import (
	"errors"
	"fmt"
	"strings"

	"worldcup-dashboard/internal/model"
)

// ErrMalformed marks a literal table that cannot be served
var ErrMalformed = errors.New("malformed dataset")

// firstWorldCup is the earliest year a final can have been played
const firstWorldCup = 1930

// ValidateRecord applies the per-row rules to a match record.
func ValidateRecord(rec model.MatchRecord) error {
	// Check required fields
	if strings.TrimSpace(rec.Winner) == "" {
		return fmt.Errorf("%w: missing winner for %d", ErrMalformed, rec.Year)
	}
	if strings.TrimSpace(rec.RunnerUp) == "" {
		return fmt.Errorf("%w: missing runner-up for %d", ErrMalformed, rec.Year)
	}

	// Check min values
	if rec.Year < firstWorldCup {
		return fmt.Errorf("%w: year below minimum: got %d, want ≥ %d", ErrMalformed, rec.Year, firstWorldCup)
	}

	if rec.Winner == rec.RunnerUp {
		return fmt.Errorf("%w: %s cannot be both winner and runner-up in %d", ErrMalformed, rec.Winner, rec.Year)
	}
	return nil
}

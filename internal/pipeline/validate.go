package pipeline

import (
	"log"

	"worldcup-dashboard/internal/dataset"
	"worldcup-dashboard/internal/model"
)

// validateMatches keeps the records that pass the per-row rules and counts the rest
func validateMatches(matches []model.MatchRecord, verbose bool) ([]model.MatchRecord, int) {
	valid := make([]model.MatchRecord, 0, len(matches))
	seen := make(map[int]bool, len(matches))
	invalid := 0

	for _, m := range matches {
		if err := dataset.ValidateRecord(m); err != nil {
			invalid++
			if verbose {
				log.Printf("❌ Validation: skipping %d - %v", m.Year, err)
			}
			continue
		}
		if seen[m.Year] {
			invalid++
			if verbose {
				log.Printf("❌ Validation: skipping duplicate final %d", m.Year)
			}
			continue
		}
		seen[m.Year] = true
		valid = append(valid, m)
	}
	return valid, invalid
}

// unattributed returns the finals whose remapped winner is not a reference
// country. Their titles are missing from the win table.
func unattributed(matches []model.MatchRecord, winners []string, countries map[string]struct{}) []model.MatchRecord {
	var out []model.MatchRecord
	for i, w := range winners {
		if _, ok := countries[w]; !ok {
			out = append(out, matches[i])
		}
	}
	return out
}

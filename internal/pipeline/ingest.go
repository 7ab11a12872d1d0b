package pipeline

import (
	"fmt"

	"worldcup-dashboard/internal/model"
)

// ingest reads every final out of the source
func ingest(src Source) ([]model.MatchRecord, error) {
	matches := src.ListMatches()
	if len(matches) == 0 {
		return nil, fmt.Errorf("ingest: no matches")
	}
	return matches, nil
}

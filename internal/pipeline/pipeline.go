package pipeline

import (
	"context"
	"fmt"
	"log"
	"time"

	"worldcup-dashboard/internal/model"
)

// Result is everything the presentation layer needs from the run
type Result struct {
	Matches  []model.MatchRecord `json:"matches"`
	Wins     WinCounts           `json:"-"`
	Stages   []StageMetrics      `json:"stages"`
	Duration time.Duration       `json:"duration"`

	// Finals whose winner is not a reference country after the remap
	Unattributed []model.MatchRecord `json:"unattributed"`
}

// ------------------- Pipeline Runner -------------------

// Run reads the matches, validates them, remaps the winners and
// aggregates the win table. Stage progress is logged when verbose is set.
func Run(ctx context.Context, src Source, verbose bool) (*Result, error) {
	start := time.Now()
	t := newTracker(verbose)
	res := &Result{}

	// --- INGESTION STAGE ---
	t.StartStage("ingest")
	matches, err := ingest(src)
	if err != nil {
		return nil, err
	}
	t.EndStage(len(matches), 0)

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("pipeline cancelled after ingest: %w", err)
	}

	// --- VALIDATION STAGE ---
	t.StartStage("validate")
	var invalid int
	res.Matches, invalid = validateMatches(matches, verbose)
	t.EndStage(len(res.Matches), invalid)

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("pipeline cancelled after validate: %w", err)
	}

	// --- TRANSFORMATION STAGE ---
	t.StartStage("transform")
	winners := RemapWinners(res.Matches, WinnerRemap)
	t.EndStage(len(winners), 0)

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("pipeline cancelled after transform: %w", err)
	}

	// --- AGGREGATION STAGE ---
	t.StartStage("aggregate")
	countries := src.ReferenceCountries()
	res.Wins = aggregateWins(winners, countries)
	res.Unattributed = unattributed(res.Matches, winners, countries)
	t.EndStage(res.Wins.Len(), len(res.Unattributed))

	if verbose {
		for _, m := range res.Unattributed {
			log.Printf("⚠️  %d title of %q is not attributed to any country", m.Year, m.Winner)
		}
	}

	res.Stages = t.Stages()
	res.Duration = time.Since(start)
	if verbose {
		log.Printf("🏁 Pipeline completed in %v: %d titles across %d countries", res.Duration, res.Wins.Total(), len(res.Wins.Winners()))
	}
	return res, nil
}

package present

import (
	"fmt"

	"worldcup-dashboard/internal/model"
	"worldcup-dashboard/internal/pipeline"
)

// MatchFinder finds the final played in a given year
type MatchFinder interface {
	FindMatch(year int) (model.MatchRecord, bool)
}

// CountryWins answers the country dropdown. An empty country means
// nothing is selected and yields empty output.
func CountryWins(wins pipeline.WinCounts, country string) string {
	if country == "" {
		return ""
	}
	return fmt.Sprintf("%s has won %d times.", country, wins.Get(country))
}

// MatchResult answers the year dropdown. Year 0 means nothing is
// selected; a year without a final also yields empty output.
func MatchResult(finder MatchFinder, year int) string {
	if year == 0 {
		return ""
	}
	m, ok := finder.FindMatch(year)
	if !ok {
		return ""
	}
	return fmt.Sprintf("Winner: %s, Runner-Up: %s", m.Winner, m.RunnerUp)
}

package pipeline

import (
	"sort"

	"worldcup-dashboard/internal/model"
)

// Source is what the aggregation reads from
type Source interface {
	ListMatches() []model.MatchRecord
	ReferenceCountries() map[string]struct{}
}

// WinCounts maps every reference country to its number of titles.
// It is immutable once computed.
type WinCounts struct {
	counts map[string]int
	names  []string // sorted
}

// ComputeWinCounts tallies titles per country.
//
// Winners are remapped with WinnerRemap and counted; every reference
// country starts at zero and the tally is overlaid on top. Names that
// are not in the reference set are dropped without error.
func ComputeWinCounts(src Source) WinCounts {
	return aggregateWins(RemapWinners(src.ListMatches(), WinnerRemap), src.ReferenceCountries())
}

func aggregateWins(winners []string, countries map[string]struct{}) WinCounts {
	// 1. Tally occurrences per name
	tally := make(map[string]int)
	for _, w := range winners {
		tally[w]++
	}

	// 2. Every reference country starts at zero
	counts := make(map[string]int, len(countries))
	for c := range countries {
		counts[c] = 0
	}

	// 3. Overlay the tally, keeping only known countries
	for name, n := range tally {
		if _, ok := counts[name]; ok {
			counts[name] = n
		}
	}

	names := make([]string, 0, len(counts))
	for c := range counts {
		names = append(names, c)
	}
	sort.Strings(names)

	return WinCounts{counts: counts, names: names}
}

// Get returns the wins for country; unknown countries have zero
func (w WinCounts) Get(country string) int {
	return w.counts[country]
}

// Has reports whether country is part of the table
func (w WinCounts) Has(country string) bool {
	_, ok := w.counts[country]
	return ok
}

// Len returns the number of countries in the table
func (w WinCounts) Len() int { return len(w.counts) }

// Countries returns every country in lexicographic order
func (w WinCounts) Countries() []string {
	out := make([]string, len(w.names))
	copy(out, w.names)
	return out
}

// Total returns the sum of all wins
func (w WinCounts) Total() int {
	total := 0
	for _, n := range w.counts {
		total += n
	}
	return total
}

// Min returns the smallest count in the table
func (w WinCounts) Min() int {
	if len(w.names) == 0 {
		return 0
	}
	minimum := w.counts[w.names[0]]
	for _, n := range w.counts {
		if n < minimum {
			minimum = n
		}
	}
	return minimum
}

// Max returns the largest count in the table
func (w WinCounts) Max() int {
	maximum := 0
	for _, n := range w.counts {
		if n > maximum {
			maximum = n
		}
	}
	return maximum
}

// Rows returns the full table sorted by country name
func (w WinCounts) Rows() []model.CountryWins {
	rows := make([]model.CountryWins, len(w.names))
	for i, c := range w.names {
		rows[i] = model.CountryWins{Country: c, Wins: w.counts[c]}
	}
	return rows
}

// Winners returns the countries with at least one title,
// most titles first and ties broken by name.
func (w WinCounts) Winners() []model.CountryWins {
	var rows []model.CountryWins
	for _, c := range w.names {
		if n := w.counts[c]; n > 0 {
			rows = append(rows, model.CountryWins{Country: c, Wins: n})
		}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Wins > rows[j].Wins
	})
	return rows
}

// Package dataset holds the static table of World Cup finals and the
// reference list of country names it is joined against.
package dataset

import (
	"fmt"
	"sort"

	"worldcup-dashboard/internal/model"
)

// ------------------- Finals table -------------------

// Columns are kept in the shape the table was authored in; New zips them into records.
var finalYears = []int{
	1930, 1934, 1938, 1950, 1954, 1958, 1962, 1966, 1970, 1974,
	1978, 1982, 1986, 1990, 1994, 1998, 2002, 2006, 2010, 2014, 2018,
}

var finalWinners = []string{
	"Uruguay", "Italy", "Italy", "Uruguay", "West Germany", "Brazil", "Brazil", "England", "Brazil", "West Germany",
	"Argentina", "Italy", "Argentina", "West Germany", "Brazil", "France", "Brazil", "Italy", "Spain", "Germany", "France",
}

var finalRunnersUp = []string{
	"Argentina", "Czechoslovakia", "Hungary", "Brazil", "Hungary", "Sweden", "Czechoslovakia", "West Germany", "Italy", "Netherlands",
	"Netherlands", "West Germany", "West Germany", "Argentina", "Italy", "Brazil", "Germany", "France", "Netherlands", "Argentina", "Croatia",
}

// Dataset is the immutable match table plus the country reference set.
// Safe for concurrent use; nothing mutates it after New returns.
type Dataset struct {
	matches   []model.MatchRecord
	byYear    map[int]int
	countries map[string]struct{}
	sorted    []string
}

// New builds the dataset from the embedded literals.
// It fails if the literal table is malformed; callers treat that as fatal.
func New() (*Dataset, error) {
	countries, err := loadCountries()
	if err != nil {
		return nil, fmt.Errorf("load countries: %w", err)
	}
	return Build(finalYears, finalWinners, finalRunnersUp, countries)
}

// Build zips the three columns into match records, validates them and
// indexes them by year.
func Build(years []int, winners, runnersUp []string, countries []string) (*Dataset, error) {
	if len(years) != len(winners) || len(years) != len(runnersUp) {
		return nil, fmt.Errorf("%w: column lengths differ (years=%d winners=%d runners-up=%d)",
			ErrMalformed, len(years), len(winners), len(runnersUp))
	}
	if len(countries) == 0 {
		return nil, fmt.Errorf("%w: empty country reference list", ErrMalformed)
	}

	ds := &Dataset{
		matches:   make([]model.MatchRecord, 0, len(years)),
		byYear:    make(map[int]int, len(years)),
		countries: make(map[string]struct{}, len(countries)),
	}

	for i := range years {
		rec := model.MatchRecord{Year: years[i], Winner: winners[i], RunnerUp: runnersUp[i]}
		if err := ValidateRecord(rec); err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		if _, dup := ds.byYear[rec.Year]; dup {
			return nil, fmt.Errorf("row %d: %w: duplicate year %d", i, ErrMalformed, rec.Year)
		}
		ds.byYear[rec.Year] = len(ds.matches)
		ds.matches = append(ds.matches, rec)
	}

	for _, c := range countries {
		ds.countries[c] = struct{}{}
	}
	ds.sorted = make([]string, 0, len(ds.countries))
	for c := range ds.countries {
		ds.sorted = append(ds.sorted, c)
	}
	sort.Strings(ds.sorted)

	return ds, nil
}

// ListMatches returns every final in the order it was authored (chronological)
func (d *Dataset) ListMatches() []model.MatchRecord {
	out := make([]model.MatchRecord, len(d.matches))
	copy(out, d.matches)
	return out
}

// FindMatch looks up the final played in year. A missing year is not an error.
func (d *Dataset) FindMatch(year int) (model.MatchRecord, bool) {
	i, ok := d.byYear[year]
	if !ok {
		return model.MatchRecord{}, false
	}
	return d.matches[i], true
}

// Years returns the years in dataset order
func (d *Dataset) Years() []int {
	years := make([]int, len(d.matches))
	for i, m := range d.matches {
		years[i] = m.Year
	}
	return years
}

// ReferenceCountries returns the set of recognized country names
func (d *Dataset) ReferenceCountries() map[string]struct{} {
	out := make(map[string]struct{}, len(d.countries))
	for c := range d.countries {
		out[c] = struct{}{}
	}
	return out
}

// IsCountry reports whether name is in the reference set
func (d *Dataset) IsCountry(name string) bool {
	_, ok := d.countries[name]
	return ok
}

// SortedCountries returns the reference set in lexicographic order
func (d *Dataset) SortedCountries() []string {
	out := make([]string, len(d.sorted))
	copy(out, d.sorted)
	return out
}

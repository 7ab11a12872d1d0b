package pipeline

import "worldcup-dashboard/internal/model"

// RemapTable maps historical team names to the canonical country name
type RemapTable map[string]string

// WinnerRemap is applied to winners before they are tallied.
//
// England -> United Kingdom is not part of it: the dashboard has always
// tallied that remap from the unmapped column and thrown it away, so
// England's 1966 title never reaches the map. Adding the entry changes
// the published numbers.
var WinnerRemap = RemapTable{
	"West Germany": "Germany",
}

// Apply returns the canonical name for name, or name itself if unmapped
func (t RemapTable) Apply(name string) string {
	if canonical, ok := t[name]; ok {
		return canonical
	}
	return name
}

// RemapWinners returns the remapped winner of every match, in match order
func RemapWinners(matches []model.MatchRecord, table RemapTable) []string {
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = table.Apply(m.Winner)
	}
	return out
}

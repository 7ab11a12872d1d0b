package model

// MatchRecord represents a single World Cup final
type MatchRecord struct {
	Year     int    `json:"year"`
	Winner   string `json:"winner"`
	RunnerUp string `json:"runner_up"`
}

// CountryWins is one row of the win table
type CountryWins struct {
	Country string `json:"country"`
	Wins    int    `json:"wins"`
}

// TeamHistory summarises the finals a team has played
type TeamHistory struct {
	Team        string        `json:"team"`
	Titles      int           `json:"titles"`
	RunnerUps   int           `json:"runner_ups"`
	Appearances []MatchRecord `json:"appearances"`
}

package handler

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"worldcup-dashboard/internal/cache"
	"worldcup-dashboard/internal/dataset"
	"worldcup-dashboard/internal/model"
	"worldcup-dashboard/internal/pipeline"
	"worldcup-dashboard/internal/present"
	"worldcup-dashboard/internal/store"
	"worldcup-dashboard/pkg/utils"
)

// Route paths the page script and the API share
const (
	PathLookupWins  = "/api/v1/lookup/wins"
	PathLookupMatch = "/api/v1/lookup/match"
	PathWins        = "/api/v1/wins"
	PathMatches     = "/api/v1/matches"
)

// Dashboard serves the page and the API over read-only data
type Dashboard struct {
	ds       *dataset.Dataset
	wins     pipeline.WinCounts
	store    *store.MatchStore
	cache    cache.Cache
	cacheTTL time.Duration
	started  time.Time
}

// LookupResponse is the body of both dropdown lookups
type LookupResponse struct {
	Output string `json:"output"`
}

// NewDashboard wires the handlers. c may be nil to render on every request.
func NewDashboard(ds *dataset.Dataset, wins pipeline.WinCounts, st *store.MatchStore, c cache.Cache, cacheTTL time.Duration) *Dashboard {
	return &Dashboard{
		ds:       ds,
		wins:     wins,
		store:    st,
		cache:    c,
		cacheTTL: cacheTTL,
		started:  time.Now(),
	}
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[ERROR] Failed to write response: %v", err)
	}
}

// Page renders the dashboard
func (d *Dashboard) Page(w http.ResponseWriter, r *http.Request) {
	body, err := cache.GetOrRender(d.cache, cache.Key("page"), d.cacheTTL, func() ([]byte, error) {
		var buf bytes.Buffer
		err := present.RenderPage(&buf, present.PageData{
			Figure:    present.BuildChoropleth(d.wins),
			Countries: d.ds.SortedCountries(),
			Years:     d.ds.Years(),
			WinsURL:   PathLookupWins,
			MatchURL:  PathLookupMatch,
		})
		return buf.Bytes(), err
	})
	if err != nil {
		log.Printf("[ERROR] %v", err)
		http.Error(w, "Failed to render dashboard", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(body)
}

// Figure returns the choropleth figure
// @Summary Choropleth figure
// @Description Plotly figure shading every country by its number of World Cup titles
// @Tags map
// @Produce json
// @Success 200 {object} present.Figure
// @Router /figure [get]
func (d *Dashboard) Figure(w http.ResponseWriter, r *http.Request) {
	body, err := cache.GetOrRender(d.cache, cache.Key("figure"), d.cacheTTL, func() ([]byte, error) {
		return json.Marshal(present.BuildChoropleth(d.wins))
	})
	if err != nil {
		http.Error(w, "Failed to build figure", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(body)
}

// LookupWins answers the country dropdown
// @Summary Wins by country
// @Description Sentence with the number of titles of the selected country; empty output when no country is selected
// @Tags lookup
// @Produce json
// @Param country query string false "Country name"
// @Success 200 {object} LookupResponse
// @Router /lookup/wins [get]
func (d *Dashboard) LookupWins(w http.ResponseWriter, r *http.Request) {
	country := r.URL.Query().Get("country")
	writeJSON(w, LookupResponse{Output: present.CountryWins(d.wins, country)})
}

// LookupMatch answers the year dropdown
// @Summary Final by year
// @Description Winner and runner-up of the final in the selected year; empty output when no year is selected or none was played
// @Tags lookup
// @Produce json
// @Param year query int false "Year"
// @Success 200 {object} LookupResponse
// @Failure 400 {string} string "Year is not an integer"
// @Router /lookup/match [get]
func (d *Dashboard) LookupMatch(w http.ResponseWriter, r *http.Request) {
	year, err := utils.ParseYear(r.URL.Query().Get("year"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, LookupResponse{Output: present.MatchResult(d.ds, year)})
}

// ListWins returns the full win table
// @Summary Win table
// @Description Titles per reference country; pass winners=true to skip countries without a title
// @Tags wins
// @Produce json
// @Param winners query bool false "Only countries with at least one title"
// @Success 200 {object} map[string]interface{}
// @Router /wins [get]
func (d *Dashboard) ListWins(w http.ResponseWriter, r *http.Request) {
	rows := d.wins.Rows()
	if r.URL.Query().Get("winners") == "true" {
		rows = d.wins.Winners()
	}
	writeJSON(w, map[string]interface{}{
		"wins":       rows,
		"count":      len(rows),
		"total_wins": d.wins.Total(),
	})
}

// GetWins returns the titles of one country
// @Summary Wins of a country
// @Tags wins
// @Produce json
// @Param country path string true "Country name"
// @Success 200 {object} model.CountryWins
// @Failure 404 {string} string "Unknown country"
// @Router /wins/{country} [get]
func (d *Dashboard) GetWins(w http.ResponseWriter, r *http.Request) {
	country, ok := utils.PathParam(r.URL.Path, PathWins+"/")
	if !ok {
		http.Error(w, "Country is required", http.StatusBadRequest)
		return
	}
	if !d.wins.Has(country) {
		http.Error(w, "Unknown country", http.StatusNotFound)
		return
	}
	writeJSON(w, model.CountryWins{Country: country, Wins: d.wins.Get(country)})
}

// ListMatches returns the finals, optionally only those a team played
// @Summary List finals
// @Description All finals by year; with team, only the finals that team reached plus a summary
// @Tags matches
// @Produce json
// @Param team query string false "Team name as it appears in the table (e.g. West Germany)"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {string} string "Internal server error"
// @Router /matches [get]
func (d *Dashboard) ListMatches(w http.ResponseWriter, r *http.Request) {
	if team := r.URL.Query().Get("team"); team != "" {
		history, err := d.store.TeamHistory(r.Context(), team)
		if err != nil {
			log.Printf("[ERROR] team history %s: %v", team, err)
			http.Error(w, "Failed to fetch matches", http.StatusInternalServerError)
			return
		}
		writeJSON(w, history)
		return
	}

	matches, err := d.store.ListMatches(r.Context())
	if err != nil {
		log.Printf("[ERROR] list matches: %v", err)
		http.Error(w, "Failed to fetch matches", http.StatusInternalServerError)
		return
	}
	writeJSON(w, map[string]interface{}{
		"matches": matches,
		"count":   len(matches),
	})
}

// GetMatch returns the final of one year
// @Summary Final of a year
// @Tags matches
// @Produce json
// @Param year path int true "Year"
// @Success 200 {object} model.MatchRecord
// @Failure 400 {string} string "Year is not an integer"
// @Failure 404 {string} string "No final that year"
// @Router /matches/{year} [get]
func (d *Dashboard) GetMatch(w http.ResponseWriter, r *http.Request) {
	raw, ok := utils.PathParam(r.URL.Path, PathMatches+"/")
	if !ok {
		http.Error(w, "Year is required", http.StatusBadRequest)
		return
	}
	year, err := utils.ParseYear(raw)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	m, found, err := d.store.FindMatch(r.Context(), year)
	if err != nil {
		log.Printf("[ERROR] find match: %v", err)
		http.Error(w, "Failed to fetch match", http.StatusInternalServerError)
		return
	}
	if !found {
		http.Error(w, "No final that year", http.StatusNotFound)
		return
	}
	writeJSON(w, m)
}

// Countries returns the sorted reference set (country dropdown options)
// @Summary Country options
// @Tags options
// @Produce json
// @Success 200 {array} string
// @Router /countries [get]
func (d *Dashboard) Countries(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, d.ds.SortedCountries())
}

// Years returns the years in dataset order (year dropdown options)
// @Summary Year options
// @Tags options
// @Produce json
// @Success 200 {array} int
// @Router /years [get]
func (d *Dashboard) Years(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, d.ds.Years())
}

// Health reports liveness
func (d *Dashboard) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]interface{}{
		"status":    "ok",
		"matches":   len(d.ds.Years()),
		"countries": d.wins.Len(),
		"uptime":    time.Since(d.started).Round(time.Second).String(),
	})
}

// Robots keeps crawlers on the page and off the API
func (d *Dashboard) Robots(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("User-agent: *\nDisallow: /api/\nDisallow: /swagger/\n"))
}

// Package present turns the win table into the dashboard: the choropleth
// figure, the two dropdown lookups and the HTML page that hosts them.
package present

import (
	"fmt"

	"worldcup-dashboard/internal/pipeline"
)

// MapTitle is shown above the choropleth
const MapTitle = "FIFA World Cup Wins by Country"

// ColorStop pins a color to a fraction of the color axis
type ColorStop struct {
	Fraction float64
	Color    string
}

// ColorScale is an ordered list of stops from 0 to 1
type ColorScale []ColorStop

// WinsColorScale shades countries without titles grey and the most
// successful ones red.
var WinsColorScale = ColorScale{
	{Fraction: 0, Color: "lightgrey"},
	{Fraction: 0.1, Color: "yellow"},
	{Fraction: 0.5, Color: "orange"},
	{Fraction: 1, Color: "red"},
}

// Validate checks the stops start at 0, end at 1 and increase
func (cs ColorScale) Validate() error {
	if len(cs) < 2 {
		return fmt.Errorf("color scale needs at least 2 stops, got %d", len(cs))
	}
	if cs[0].Fraction != 0 || cs[len(cs)-1].Fraction != 1 {
		return fmt.Errorf("color scale must span [0,1], got [%v,%v]", cs[0].Fraction, cs[len(cs)-1].Fraction)
	}
	for i := 1; i < len(cs); i++ {
		if cs[i].Fraction <= cs[i-1].Fraction {
			return fmt.Errorf("color scale stop %d (%v) is not above stop %d (%v)", i, cs[i].Fraction, i-1, cs[i-1].Fraction)
		}
	}
	return nil
}

// Band returns the color of the last stop at or below v's position on [lo,hi]
func (cs ColorScale) Band(v, lo, hi int) string {
	if len(cs) == 0 {
		return ""
	}
	frac := 0.0
	if hi > lo {
		frac = float64(v-lo) / float64(hi-lo)
	}
	color := cs[0].Color
	for _, stop := range cs {
		if frac >= stop.Fraction {
			color = stop.Color
		}
	}
	return color
}

// plotly wants [[fraction, color], ...]
func (cs ColorScale) plotly() [][2]interface{} {
	out := make([][2]interface{}, len(cs))
	for i, s := range cs {
		out[i] = [2]interface{}{s.Fraction, s.Color}
	}
	return out
}

// Figure is a Plotly.js figure: data traces plus layout
type Figure struct {
	Data   []ChoroplethTrace `json:"data"`
	Layout Layout            `json:"layout"`
}

// ChoroplethTrace shades countries, located by name, through a shared color axis
type ChoroplethTrace struct {
	Type          string   `json:"type"`
	Name          string   `json:"name"`
	Locations     []string `json:"locations"`
	LocationMode  string   `json:"locationmode"`
	Z             []int    `json:"z"`
	ColorAxis     string   `json:"coloraxis"`
	HoverTemplate string   `json:"hovertemplate"`
}

// Layout holds the figure title, the color axis and the map projection
type Layout struct {
	Title     Title     `json:"title"`
	ColorAxis ColorAxis `json:"coloraxis"`
	Geo       Geo       `json:"geo"`
	Margin    Margin    `json:"margin"`
}

type Title struct {
	Text string `json:"text"`
}

// ColorAxis maps [CMin,CMax] onto the color scale
type ColorAxis struct {
	ColorScale [][2]interface{} `json:"colorscale"`
	CMin       int              `json:"cmin"`
	CMax       int              `json:"cmax"`
	ColorBar   ColorBar         `json:"colorbar"`
}

type ColorBar struct {
	Title Title `json:"title"`
}

type Geo struct {
	ShowFrame      bool `json:"showframe"`
	ShowCoastlines bool `json:"showcoastlines"`
}

type Margin struct {
	L int `json:"l"`
	R int `json:"r"`
	T int `json:"t"`
	B int `json:"b"`
}

// BuildChoropleth renders the win table as a choropleth keyed by country name.
// The color axis spans the observed [min,max] of the data, so the scale
// stops are fractions of that range rather than raw counts.
func BuildChoropleth(wins pipeline.WinCounts) Figure {
	rows := wins.Rows()
	locations := make([]string, len(rows))
	z := make([]int, len(rows))
	for i, r := range rows {
		locations[i] = r.Country
		z[i] = r.Wins
	}

	return Figure{
		Data: []ChoroplethTrace{{
			Type:          "choropleth",
			Name:          "",
			Locations:     locations,
			LocationMode:  "country names",
			Z:             z,
			ColorAxis:     "coloraxis",
			HoverTemplate: "Country=%{location}<br>Wins=%{z}<extra></extra>",
		}},
		Layout: Layout{
			Title: Title{Text: MapTitle},
			ColorAxis: ColorAxis{
				ColorScale: WinsColorScale.plotly(),
				CMin:       wins.Min(),
				CMax:       wins.Max(),
				ColorBar:   ColorBar{Title: Title{Text: "Wins"}},
			},
			Geo:    Geo{ShowFrame: false, ShowCoastlines: true},
			Margin: Margin{L: 0, R: 0, T: 40, B: 0},
		},
	}
}

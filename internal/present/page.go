package present

import (
	"embed"
	"fmt"
	"html/template"
	"io"
)

// DashboardTitle heads the page
const DashboardTitle = "FIFA World Cup Dashboard"

//go:embed templates/dashboard.html
var templateFS embed.FS

var dashboardTmpl = template.Must(template.ParseFS(templateFS, "templates/dashboard.html"))

// PageData is everything the dashboard template needs
type PageData struct {
	Title     string
	Figure    Figure
	Countries []string // sorted reference set
	Years     []int    // dataset order
	WinsURL   string
	MatchURL  string
}

// RenderPage writes the dashboard HTML to w
func RenderPage(w io.Writer, data PageData) error {
	if data.Title == "" {
		data.Title = DashboardTitle
	}
	if err := dashboardTmpl.Execute(w, data); err != nil {
		return fmt.Errorf("render dashboard: %w", err)
	}
	return nil
}

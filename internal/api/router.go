package api

import (
	"worldcup-dashboard/internal/api/handler"
	"worldcup-dashboard/pkg/router"

	_ "worldcup-dashboard/docs"

	httpSwagger "github.com/swaggo/http-swagger"
)

func RegisterRoutes(r *router.Router, d *handler.Dashboard) {
	r.GET("/", d.Page)
	r.GET("/healthz", d.Health)
	r.GET("/robots.txt", d.Robots)

	r.GET("/api/v1/figure", d.Figure)
	r.GET(handler.PathLookupWins, d.LookupWins)
	r.GET(handler.PathLookupMatch, d.LookupMatch)
	r.GET("/api/v1/countries", d.Countries)
	r.GET("/api/v1/years", d.Years)
	r.GET(handler.PathWins, d.ListWins)
	r.GET(handler.PathWins+"/*", d.GetWins)
	r.GET(handler.PathMatches, d.ListMatches)
	r.GET(handler.PathMatches+"/*", d.GetMatch)

	r.Mount("/swagger/", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
}

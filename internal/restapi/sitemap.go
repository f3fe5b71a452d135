package restapi

import (
	"encoding/xml"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
)

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// sitemap renders every public page: static sections, honey details,
// active local sources, events, and validated city pages. Record pages
// carry a lastmod taken from the record's update timestamp.
func (s *Server) sitemap(c echo.Context) error {
	ctx := c.Request().Context()
	base := strings.TrimRight(s.cfg.Web.PublicURL, "/")

	set := sitemapURLSet{Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	add := func(path string, updated time.Time, changefreq, priority string) {
		u := sitemapURL{
			Loc:        base + path,
			ChangeFreq: changefreq,
			Priority:   priority,
		}
		if !updated.IsZero() {
			u.LastMod = updated.Format("2006-01-02")
		}
		set.URLs = append(set.URLs, u)
	}

	add("/", time.Time{}, "daily", "1.0")
	add("/honeys", time.Time{}, "daily", "0.9")
	add("/local-sources", time.Time{}, "daily", "0.9")
	add("/events", time.Time{}, "daily", "0.8")
	add("/cities", time.Time{}, "weekly", "0.8")

	honeys, err := s.honeys.FindAll(ctx)
	if err != nil {
		return failFromErr(c, err)
	}
	for _, h := range honeys {
		add("/honeys/"+h.Slug, h.UpdatedAt, "weekly", "0.7")
	}

	sources, err := s.sources.FindAllForMap(ctx, nil, true)
	if err != nil {
		return failFromErr(c, err)
	}
	for _, src := range sources {
		add("/local-sources/"+src.Slug, src.UpdatedAt, "weekly", "0.7")
	}

	events, err := s.events.FindAll(ctx)
	if err != nil {
		return failFromErr(c, err)
	}
	for _, e := range events {
		add("/events/"+e.Slug, e.UpdatedAt, "weekly", "0.6")
	}

	cities, err := s.cities.ListValidated(ctx)
	if err != nil {
		return failFromErr(c, err)
	}
	for _, city := range cities {
		add("/cities/"+city.Slug, city.UpdatedAt, "weekly", "0.7")
	}

	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return failFromErr(c, err)
	}
	return c.Blob(http.StatusOK, "application/xml", append([]byte(xml.Header), body...))
}

package site

import (
	"encoding/xml"
	"io"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc string `xml:"loc"`
}

// sitemapLocs returns the absolute URL of every page, in page order.
func (a *App) sitemapLocs() []string {
	pages := a.pages()
	locs := make([]string, 0, len(pages))
	for _, p := range pages {
		locs = append(locs, absoluteURL(a.Config.URL, p.Path))
	}
	return locs
}

func (a *App) writeSitemap(w io.Writer) error {
	set := sitemapURLSet{XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	for _, loc := range a.sitemapLocs() {
		set.URLs = append(set.URLs, sitemapURL{Loc: loc})
	}
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(set); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

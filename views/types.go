package views

import "github.com/goodfields/site/content"

// Site is the view model of the site configuration. It mirrors the root
// package's SiteConfig so templates do not import the server package.
type Site struct {
	Name         string
	URL          string
	BookingURL   string
	ContactEmail string
	MailtoURL    string
	LinkedInURL  string
	WebsiteURL   string
	WebsiteLabel string // e.g. "wallykroeker.com"
}

// PageMeta carries per-page OpenGraph and SEO metadata into the <head> template.
type PageMeta struct {
	Title       string // full <title>, template already applied
	Description string
	URL         string // canonical + og:url
	OGType      string // "website"
	OGImage     string // optional, absolute
	Locale      string
}

// Page is everything a page template needs.
type Page struct {
	Site    Site
	Meta    PageMeta
	Content *content.Content

	// NavBase prefixes the section anchors: "" on the home page, "/" elsewhere.
	NavBase string

	// StructuredData is the JSON-LD payload; empty omits the script block.
	StructuredData string
}

// NavItem is one entry of the primary navigation.
type NavItem struct {
	Label string
	Href  string
}

// Nav returns the primary navigation for p.
func (p Page) Nav() []NavItem {
	return []NavItem{
		{Label: "Offers", Href: p.NavBase + "#offers"},
		{Label: "About", Href: p.NavBase + "#about"},
		{Label: "Book", Href: p.NavBase + "#book"},
	}
}

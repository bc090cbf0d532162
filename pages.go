package site

import (
	"github.com/a-h/templ"

	"github.com/goodfields/site/views"
)

// page is one HTML route of the site. The same table drives routing,
// the sitemap, static builds and the link check.
type page struct {
	Path      string // route, always with a trailing slash
	File      string // output path for static builds
	Component func(a *App) templ.Component
}

func (a *App) pages() []page {
	return []page{
		{Path: "/", File: "index.html", Component: (*App).homePage},
		{Path: "/privacy/", File: "privacy/index.html", Component: (*App).privacyPage},
	}
}

func (a *App) viewSite() views.Site {
	return views.Site{
		Name:         a.Config.Name,
		URL:          a.Config.URL,
		BookingURL:   a.Config.BookingURL,
		ContactEmail: a.Config.ContactEmail,
		MailtoURL:    a.Config.MailtoURL(),
		LinkedInURL:  a.Config.Social.LinkedIn,
		WebsiteURL:   a.Config.Social.Website,
		WebsiteLabel: hostLabel(a.Config.Social.Website),
	}
}

// viewPage builds the common view model. title is the page's own title;
// "" uses the default site title.
func (a *App) viewPage(title, description, path string) views.Page {
	meta := a.Content.Meta
	if description == "" {
		description = meta.Description
	}
	p := views.Page{
		Site:    a.viewSite(),
		Content: a.Content,
		NavBase: "/",
		Meta: views.PageMeta{
			Title:       meta.PageTitle(title),
			Description: description,
			URL:         absoluteURL(a.Config.URL, path),
			OGType:      "website",
			Locale:      meta.Locale,
		},
	}
	if meta.OGImage != "" {
		p.Meta.OGImage = absoluteURL(a.Config.URL, meta.OGImage)
	}
	return p
}

// homePage projects the structured data on every render; it is never cached.
func (a *App) homePage() templ.Component {
	p := a.viewPage("", "", "/")
	p.NavBase = ""
	p.StructuredData = StructuredDataJSON(a.Config, a.Content.Business, a.Content.Offers())
	return views.Home(p)
}

func (a *App) privacyPage() templ.Component {
	doc := a.Content.Privacy
	return views.Privacy(a.viewPage(doc.Title, doc.Description, "/privacy/"))
}

func (a *App) notFoundPage() templ.Component {
	return views.NotFound(a.viewPage("Page not found", "", "/"))
}

func (a *App) serverErrorPage() templ.Component {
	return views.ServerError(a.viewPage("Error", "", "/"))
}

package views

import "github.com/a-h/templ"

// Layout wraps body in the document shell: head metadata, header and footer.
func Layout(p Page, body templ.Component) templ.Component {
	return component(func(hw *htmlWriter) {
		hw.raw(`<!DOCTYPE html><html lang="en"><head>`)
		hw.raw(`<meta charset="utf-8"/>`)
		hw.raw(`<meta name="viewport" content="width=device-width, initial-scale=1"/>`)
		hw.raw("<title>")
		hw.text(p.Meta.Title)
		hw.raw("</title>")
		hw.render(Head(p))
		hw.raw(`<link rel="stylesheet" href="/public/site.css"/>`)
		if p.StructuredData != "" {
			// JSON is \u-escaped for <, > and &, so it cannot close the element.
			hw.raw(`<script id="ld-json" type="application/ld+json">`, p.StructuredData, `</script>`)
		}
		hw.raw(`</head><body class="page">`)
		hw.render(Header(p))
		hw.render(body)
		hw.render(Footer(p))
		hw.raw("</body></html>")
	})
}

// Head renders the description, canonical and social card tags.
func Head(p Page) templ.Component {
	return component(func(hw *htmlWriter) {
		meta := func(key, name, val string) {
			if val == "" {
				return
			}
			hw.raw("<meta")
			hw.attr(key, name)
			hw.attr("content", val)
			hw.raw("/>")
		}
		meta("name", "description", p.Meta.Description)
		hw.raw(`<link rel="canonical"`)
		hw.attr("href", p.Meta.URL)
		hw.raw("/>")
		meta("property", "og:title", p.Meta.Title)
		meta("property", "og:description", p.Meta.Description)
		meta("property", "og:url", p.Meta.URL)
		meta("property", "og:site_name", p.Site.Name)
		meta("property", "og:locale", p.Meta.Locale)
		meta("property", "og:type", p.Meta.OGType)
		meta("property", "og:image", p.Meta.OGImage)
		if p.Meta.OGImage != "" {
			meta("name", "twitter:card", "summary_large_image")
		} else {
			meta("name", "twitter:card", "summary")
		}
	})
}

// Header renders the sticky bar with the brand link, the desktop nav and a
// <details> disclosure for small screens. The menu needs no script or state.
func Header(p Page) templ.Component {
	return component(func(hw *htmlWriter) {
		hw.raw(`<header class="site-header"><div class="container bar">`)
		hw.link("brand", "/", p.Site.Name)
		hw.raw(`<nav class="nav-desktop" aria-label="Primary">`)
		for _, item := range p.Nav() {
			hw.link("", item.Href, item.Label)
		}
		hw.raw(`</nav>`)
		hw.raw(`<details class="nav-mobile"><summary aria-label="Toggle menu">Menu</summary>`)
		hw.raw(`<nav aria-label="Mobile">`)
		for _, item := range p.Nav() {
			hw.link("", item.Href, item.Label)
		}
		hw.raw(`</nav></details>`)
		hw.raw(`</div></header>`)
	})
}

// Footer renders contact details, profile links and the privacy link.
func Footer(p Page) templ.Component {
	return component(func(hw *htmlWriter) {
		f := p.Content.Footer
		hw.raw(`<footer class="site-footer"><div class="container footer-grid">`)

		hw.raw(`<div class="footer-about"><p class="footer-name">`)
		hw.text(p.Site.Name)
		hw.raw(`</p>`)
		if f.Tagline != "" {
			hw.raw("<p>")
			hw.text(f.Tagline)
			hw.raw("</p>")
		}
		if f.PrivacyNote != "" {
			hw.raw(`<p class="small">`)
			hw.text(f.PrivacyNote)
			hw.raw("</p>")
		}
		hw.raw(`</div>`)

		hw.raw(`<div class="footer-col"><p class="footer-heading">Contact</p>`)
		hw.link("", p.Site.MailtoURL, p.Site.ContactEmail)
		hw.externalLink("", p.Site.LinkedInURL, "LinkedIn")
		hw.raw(`</div>`)

		hw.raw(`<div class="footer-col"><p class="footer-heading">Links</p>`)
		hw.link("", p.Site.WebsiteURL, p.Site.WebsiteLabel)
		hw.link("", "/privacy/", "Privacy")
		hw.raw(`</div>`)

		hw.raw(`</div></footer>`)
	})
}

package views

import (
	"github.com/a-h/templ"

	"github.com/goodfields/site/content"
)

// Home is the landing page: hero, offers, about and booking sections.
func Home(p Page) templ.Component {
	return Layout(p, component(func(hw *htmlWriter) {
		hw.raw(`<main>`)
		hw.render(Hero(p))
		hw.render(Offers(p.Content.OffersSection, p.Content.Offers()))
		hw.render(About(p.Content.About))
		hw.render(Book(p))
		hw.raw(`</main>`)
	}))
}

// Hero renders the headline with the booking and email calls to action.
func Hero(p Page) templ.Component {
	return component(func(hw *htmlWriter) {
		h := p.Content.Hero
		biz := p.Content.Business
		hw.raw(`<section class="hero"><div class="container narrow center">`)
		if h.Eyebrow != "" {
			hw.raw(`<p class="eyebrow">`)
			hw.text(h.Eyebrow)
			hw.raw(`</p>`)
		}
		hw.raw(`<h1>`)
		hw.text(h.Heading)
		hw.raw(`</h1>`)
		if h.Lead != "" {
			hw.raw(`<p class="lead">`)
			hw.text(h.Lead)
			hw.raw(`</p>`)
		}
		if biz.Founder != "" {
			hw.raw(`<p class="attribution">`)
			byline := "— " + biz.Founder
			if biz.FounderRole != "" {
				byline += ", " + biz.FounderRole
			}
			hw.text(byline)
			hw.raw(`</p>`)
		}
		hw.raw(`<div class="actions">`)
		hw.link("btn btn-primary", p.Site.BookingURL, fallback(h.PrimaryCTA, "Book a consult"))
		hw.link("btn btn-secondary", p.Site.MailtoURL, fallback(h.SecondaryCTA, "Email us"))
		hw.raw(`</div></div></section>`)
	})
}

// Offers renders one card per offer, in catalog order.
func Offers(s content.Section, offers []content.Offer) templ.Component {
	return component(func(hw *htmlWriter) {
		hw.raw(`<section id="offers" class="section"><div class="container">`)
		if s.Heading != "" {
			hw.raw(`<h2>`)
			hw.text(s.Heading)
			hw.raw(`</h2>`)
		}
		hw.raw(`<div class="grid">`)
		for _, o := range offers {
			hw.raw(`<article`)
			hw.attr("class", OfferClass(o.Accent))
			hw.raw(`><h3>`)
			hw.text(o.Title)
			hw.raw(`</h3><ul>`)
			for _, b := range o.Bullets {
				hw.raw(`<li>`)
				hw.text(b)
				hw.raw(`</li>`)
			}
			hw.raw(`</ul></article>`)
		}
		hw.raw(`</div></div></section>`)
	})
}

// About renders the Markdown about copy.
func About(s content.Section) templ.Component {
	return component(func(hw *htmlWriter) {
		hw.raw(`<section id="about" class="section"><div class="container narrow">`)
		hw.raw(`<h2>`)
		hw.text(s.Heading)
		hw.raw(`</h2><div class="prose">`)
		hw.markdown(s.Body)
		hw.raw(`</div></div></section>`)
	})
}

// Book renders the closing call to action.
func Book(p Page) templ.Component {
	return component(func(hw *htmlWriter) {
		b := p.Content.Book
		hw.raw(`<section id="book" class="section"><div class="container narrow center">`)
		hw.raw(`<h2>`)
		hw.text(b.Heading)
		hw.raw(`</h2>`)
		if b.Lead != "" {
			hw.raw(`<p class="lead">`)
			hw.text(b.Lead)
			hw.raw(`</p>`)
		}
		hw.raw(`<div class="actions">`)
		hw.link("btn btn-primary", p.Site.BookingURL, fallback(b.CTA, "Book a call"))
		hw.raw(`</div></div></section>`)
	})
}

// OfferClass returns the card classes for an accent name. Unknown accents
// render as a plain card.
func OfferClass(accent string) string {
	switch accent {
	case "blue", "emerald", "purple":
		return "offer accent-" + accent
	default:
		return "offer"
	}
}

func fallback(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

package views

import "github.com/a-h/templ"

// Privacy renders the privacy policy page.
func Privacy(p Page) templ.Component {
	return Layout(p, component(func(hw *htmlWriter) {
		doc := p.Content.Privacy
		hw.raw(`<main class="container narrow doc"><h1>`)
		hw.text(doc.Title)
		hw.raw(`</h1><div class="prose">`)
		hw.markdown(doc.Body)
		hw.raw(`</div><p class="back">`)
		hw.link("", "/", "Back to "+p.Site.Name)
		hw.raw(`</p></main>`)
	}))
}

// NotFound renders the 404 page.
func NotFound(p Page) templ.Component {
	return errorPage(p, "Page not found", "The page you were looking for does not exist.")
}

// ServerError renders the 500 page.
func ServerError(p Page) templ.Component {
	return errorPage(p, "Something went wrong", "Please try again in a moment.")
}

func errorPage(p Page, heading, message string) templ.Component {
	return Layout(p, component(func(hw *htmlWriter) {
		hw.raw(`<main class="container narrow doc center"><h1>`)
		hw.text(heading)
		hw.raw(`</h1><p class="lead">`)
		hw.text(message)
		hw.raw(`</p><div class="actions">`)
		hw.link("btn btn-secondary", "/", "Go to the home page")
		hw.raw(`</div></main>`)
	}))
}

package site

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/temoto/robotstxt"
	"golang.org/x/net/html"

	"github.com/goodfields/site/markdown"
)

// Problem is one defect found by Check.
type Problem struct {
	Where   string // page path, or "config", "content", "robots.txt"
	Message string
}

func (p Problem) String() string {
	return p.Where + ": " + p.Message
}

// scannedPage is what Check extracts from a rendered page.
type scannedPage struct {
	ids    map[string]struct{}
	hrefs  []string
	jsonLD []string
}

// Check renders every page and reports authoring defects: invalid
// configuration or content, links with a disallowed scheme, anchors that
// point at missing ids, structured data that does not list the catalog, and
// a robots.txt that blocks a sitemap page. An empty result means the site is
// clean.
func (a *App) Check(ctx context.Context) []Problem {
	var problems []Problem
	add := func(where, format string, args ...any) {
		problems = append(problems, Problem{Where: where, Message: fmt.Sprintf(format, args...)})
	}

	if err := a.Config.Validate(); err != nil {
		add("config", "%v", err)
	}
	if err := a.Content.Validate(); err != nil {
		add("content", "%v", err)
	}

	pages := a.pages()
	scanned := make(map[string]*scannedPage, len(pages))
	for _, p := range pages {
		var buf bytes.Buffer
		if err := p.Component(a).Render(ctx, &buf); err != nil {
			add(p.Path, "render: %v", err)
			continue
		}
		sp, err := scanPage(&buf)
		if err != nil {
			add(p.Path, "parse: %v", err)
			continue
		}
		scanned[p.Path] = sp
	}

	for _, p := range pages {
		sp, ok := scanned[p.Path]
		if !ok {
			continue
		}
		for _, href := range sp.hrefs {
			if msg := checkHref(p.Path, href, scanned); msg != "" {
				add(p.Path, "%s", msg)
			}
		}
	}

	if home, ok := scanned["/"]; ok {
		for _, msg := range a.checkStructuredData(home.jsonLD) {
			add("/", "%s", msg)
		}
	}

	var robots bytes.Buffer
	if err := a.writeRobots(&robots); err != nil {
		add("robots.txt", "render: %v", err)
	} else {
		for _, msg := range checkRobots(robots.Bytes(), pages) {
			add("robots.txt", "%s", msg)
		}
	}
	return problems
}

func scanPage(r io.Reader) (*scannedPage, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	sp := &scannedPage{ids: make(map[string]struct{})}

	var visit func(*html.Node)
	visit = func(n *html.Node) {
		if n.Type == html.ElementNode {
			for _, attr := range n.Attr {
				switch {
				case attr.Key == "id":
					sp.ids[attr.Val] = struct{}{}
				case attr.Key == "href" && n.Data == "a":
					sp.hrefs = append(sp.hrefs, attr.Val)
				}
			}
			if n.Data == "script" && attrValue(n, "type") == "application/ld+json" && n.FirstChild != nil {
				sp.jsonLD = append(sp.jsonLD, n.FirstChild.Data)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	visit(doc)
	return sp, nil
}

func attrValue(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

// checkHref returns a description of what is wrong with href on the page at
// from, or "" if it is fine. Internal links must name a page that exists and,
// when they carry a fragment, an id on that page.
func checkHref(from, href string, pages map[string]*scannedPage) string {
	if markdown.SafeURL(href) == "" {
		return fmt.Sprintf("link %q has a disallowed or malformed URL", href)
	}
	if !strings.HasPrefix(href, "/") && !strings.HasPrefix(href, "#") {
		return ""
	}
	target, fragment, _ := strings.Cut(href, "#")
	if target == "" {
		target = from
	}
	page, ok := pages[target]
	if !ok {
		return fmt.Sprintf("link %q points at an unknown page", href)
	}
	if fragment == "" {
		return ""
	}
	if _, ok := page.ids[fragment]; !ok {
		return fmt.Sprintf("link %q points at a missing anchor", href)
	}
	return ""
}

func (a *App) checkStructuredData(blocks []string) []string {
	if len(blocks) != 1 {
		return []string{fmt.Sprintf("expected one JSON-LD block, found %d", len(blocks))}
	}
	var got ProfessionalService
	if err := json.Unmarshal([]byte(blocks[0]), &got); err != nil {
		return []string{fmt.Sprintf("JSON-LD does not decode: %v", err)}
	}
	var msgs []string
	if got.Type != "ProfessionalService" {
		msgs = append(msgs, fmt.Sprintf("JSON-LD @type = %q", got.Type))
	}
	titles := a.Content.Titles()
	if len(got.Offers) != len(titles) {
		return append(msgs, fmt.Sprintf("JSON-LD lists %d offers, catalog has %d", len(got.Offers), len(titles)))
	}
	for i, o := range got.Offers {
		if o.Name != titles[i] {
			msgs = append(msgs, fmt.Sprintf("JSON-LD offer %d is %q, catalog has %q", i+1, o.Name, titles[i]))
		}
	}
	return msgs
}

func checkRobots(body []byte, pages []page) []string {
	data, err := robotstxt.FromBytes(body)
	if err != nil {
		return []string{fmt.Sprintf("does not parse: %v", err)}
	}
	var msgs []string
	group := data.FindGroup("*")
	for _, p := range pages {
		if !group.Test(p.Path) {
			msgs = append(msgs, fmt.Sprintf("disallows %s", p.Path))
		}
	}
	if len(data.Sitemaps) == 0 {
		msgs = append(msgs, "does not name a sitemap")
	}
	return msgs
}

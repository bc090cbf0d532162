// Package markdown renders the small Markdown subset used for site copy
// (headings, paragraphs, lists, emphasis and links) as a templ component.
package markdown

import (
	"context"
	"html"
	"io"
	"net/url"
	"regexp"
	"strings"

	"github.com/a-h/templ"
)

var (
	reBold             = regexp.MustCompile(`\*\*(.+?)\*\*`)
	reBoldUnderscore   = regexp.MustCompile(`__(.+?)__`)
	reItalic           = regexp.MustCompile(`\*([^*]+)\*`)
	reItalicUnderscore = regexp.MustCompile(`_([^_]+)_`)
	reLink             = regexp.MustCompile(`\[(.*?)\]\((.*?)\)(\^)?`)
	reOrderedItem      = regexp.MustCompile(`^\d+\.\s`)
)

// Markdown returns a templ.Component that renders md as HTML.
func Markdown(md string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, Render(md))
		return err
	})
}

// block tracks which element is open while walking the source line by line.
type block int

const (
	blockNone block = iota
	blockPara
	blockList
	blockOrdered
)

var closeTags = map[block]string{
	blockPara:    "</p>",
	blockList:    "</ul>",
	blockOrdered: "</ol>",
}

type renderer struct {
	b    strings.Builder
	open block
}

func (r *renderer) enter(b block, openTag string) {
	if r.open == b {
		return
	}
	r.close()
	r.b.WriteString(openTag)
	r.open = b
}

func (r *renderer) close() {
	r.b.WriteString(closeTags[r.open])
	r.open = blockNone
}

// Render converts md to HTML. Raw HTML in the source is escaped.
func Render(md string) string {
	var r renderer
	for _, raw := range strings.Split(md, "\n") {
		line := strings.TrimSpace(strings.TrimRight(raw, "\r"))
		switch {
		case line == "":
			r.close()
		case strings.HasPrefix(line, "### "):
			r.close()
			r.b.WriteString("<h3>" + FormatInline(line[4:]) + "</h3>")
		case strings.HasPrefix(line, "## "):
			r.close()
			r.b.WriteString("<h2>" + FormatInline(line[3:]) + "</h2>")
		case strings.HasPrefix(line, "# "):
			r.close()
			r.b.WriteString("<h1>" + FormatInline(line[2:]) + "</h1>")
		case strings.HasPrefix(line, "- "), strings.HasPrefix(line, "* "):
			r.enter(blockList, "<ul>")
			r.b.WriteString("<li>" + FormatInline(strings.TrimSpace(line[2:])) + "</li>")
		case reOrderedItem.MatchString(line):
			r.enter(blockOrdered, "<ol>")
			item := reOrderedItem.ReplaceAllString(line, "")
			r.b.WriteString("<li>" + FormatInline(strings.TrimSpace(item)) + "</li>")
		default:
			if r.open == blockPara {
				r.b.WriteByte(' ')
			}
			r.enter(blockPara, "<p>")
			r.b.WriteString(FormatInline(line))
		}
	}
	r.close()
	return r.b.String()
}

// ApplyOutsideTags applies fn only to text segments outside HTML tags,
// so that formatting regexes never touch URLs inside href attributes.
func ApplyOutsideTags(s string, fn func(string) string) string {
	var buf strings.Builder
	for len(s) > 0 {
		lt := strings.Index(s, "<")
		if lt < 0 {
			buf.WriteString(fn(s))
			break
		}
		if lt > 0 {
			buf.WriteString(fn(s[:lt]))
		}
		gt := strings.Index(s[lt:], ">")
		if gt < 0 {
			buf.WriteString(s[lt:])
			break
		}
		buf.WriteString(s[lt : lt+gt+1])
		s = s[lt+gt+1:]
	}
	return buf.String()
}

// FormatInline escapes s and applies links, bold and italic.
// A link written as [text](url)^ opens in a new tab.
func FormatInline(s string) string {
	escaped := html.EscapeString(s)
	escaped = reLink.ReplaceAllStringFunc(escaped, func(m string) string {
		match := reLink.FindStringSubmatch(m)
		href := SafeURL(html.UnescapeString(match[2]))
		if href == "" {
			return match[1]
		}
		attrs := ""
		if match[3] == "^" {
			attrs = ` target="_blank" rel="noopener noreferrer"`
		}
		return `<a href="` + html.EscapeString(href) + `"` + attrs + `>` + match[1] + `</a>`
	})
	return ApplyOutsideTags(escaped, func(seg string) string {
		seg = reBold.ReplaceAllString(seg, "<strong>$1</strong>")
		seg = reBoldUnderscore.ReplaceAllString(seg, "<strong>$1</strong>")
		seg = reItalic.ReplaceAllString(seg, "<em>$1</em>")
		seg = reItalicUnderscore.ReplaceAllString(seg, "<em>$1</em>")
		return seg
	})
}

// SafeURL returns raw trimmed if it is a relative, fragment, http(s), mailto
// or tel link, and "" otherwise. The result is not HTML-escaped.
func SafeURL(raw string) string {
	val := strings.TrimSpace(raw)
	if val == "" {
		return ""
	}
	if strings.HasPrefix(val, "#") || (strings.HasPrefix(val, "/") && !strings.HasPrefix(val, "//")) {
		return val
	}
	parsed, err := url.Parse(val)
	if err != nil || parsed.Scheme == "" {
		return ""
	}
	switch strings.ToLower(parsed.Scheme) {
	case "http", "https":
		if parsed.Host == "" {
			return ""
		}
		return val
	case "mailto", "tel":
		return val
	default:
		return ""
	}
}

package site

import (
	"net/url"
	"strings"
)

// absoluteURL resolves a site path such as "/", "/privacy/" or
// "/sitemap.xml" against the canonical base URL. Absolute URLs pass through.
func absoluteURL(base, sitePath string) string {
	if strings.HasPrefix(sitePath, "https://") || strings.HasPrefix(sitePath, "http://") {
		return sitePath
	}
	return strings.TrimSuffix(base, "/") + "/" + strings.TrimPrefix(sitePath, "/")
}

// hostLabel turns a profile URL into a short link label:
// "https://www.example.com/x" becomes "example.com".
func hostLabel(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return raw
	}
	return strings.TrimPrefix(u.Host, "www.")
}

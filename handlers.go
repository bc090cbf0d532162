package site

import (
	"fmt"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
)

func (a *App) pageHandler(p page) echo.HandlerFunc {
	return func(c echo.Context) error {
		return Render(c, p.Component(a))
	}
}

func (a *App) handleRobots(c echo.Context) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextPlainCharsetUTF8)
	c.Response().WriteHeader(http.StatusOK)
	return a.writeRobots(c.Response())
}

// writeRobots allows everything and points crawlers at the sitemap.
func (a *App) writeRobots(w io.Writer) error {
	_, err := fmt.Fprintf(w, "User-agent: *\nAllow: /\n\nSitemap: %s\n", absoluteURL(a.Config.URL, "/sitemap.xml"))
	return err
}

func (a *App) handleSitemap(c echo.Context) error {
	c.Response().Header().Set(echo.HeaderContentType, "application/xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	return a.writeSitemap(c.Response())
}

func handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, a.notFoundPage())
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		_ = RenderStatus(c, code, a.serverErrorPage())
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}

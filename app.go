// Package site serves and builds the GoodFields marketing site: a home page
// with the offer catalog and schema.org structured data, a privacy page,
// sitemap and robots.txt. Pages are templ components rendered by Echo, or
// written to disk by Build for static hosting.
package site

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"

	"github.com/goodfields/site/content"
)

// App wires the site configuration, the content document, and the Echo
// server together. Config and Content are read-only once New returns.
type App struct {
	Config  SiteConfig
	Content *content.Content
	Server  ServerConfig
	Echo    *echo.Echo

	customRoutes []func(*App)
}

// New creates an App with middleware and routes registered. A nil content
// document means the compiled-in one.
func New(cfg SiteConfig, c *content.Content, srv ServerConfig, opts ...Option) *App {
	srv.setDefaults()
	if c == nil {
		c = content.Default()
	}

	a := &App{
		Config:  cfg,
		Content: c,
		Server:  srv,
		Echo:    echo.New(),
	}
	a.Echo.HideBanner = true
	a.Echo.Logger.SetLevel(parseLogLevel(srv.LogLevel))

	for _, opt := range opts {
		opt(a)
	}

	a.setupMiddleware()
	a.setupRoutes()
	for _, fn := range a.customRoutes {
		fn(a)
	}
	return a
}

// Start listens on Server.Addr until the server is shut down.
func (a *App) Start() error {
	a.Echo.Logger.Infof("serving %s on %s", a.Config.URL, a.Server.Addr)
	if err := a.Echo.Start(a.Server.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting connections and waits for in-flight requests.
func (a *App) Shutdown(ctx context.Context) error {
	return a.Echo.Shutdown(ctx)
}

func (a *App) setupRoutes() {
	e := a.Echo

	e.StaticFS("/public", echo.MustSubFS(Assets, "assets"))
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/healthz", handleHealth)

	for _, p := range a.pages() {
		e.GET(p.Path, a.pageHandler(p))
	}
}

func parseLogLevel(s string) log.Lvl {
	switch strings.ToLower(s) {
	case "debug":
		return log.DEBUG
	case "warn", "warning":
		return log.WARN
	case "error":
		return log.ERROR
	case "off":
		return log.OFF
	default:
		return log.INFO
	}
}

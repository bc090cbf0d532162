package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"

	"github.com/goodfields/site"
	"github.com/goodfields/site/content"
)

// setup loads the environment and builds the App. Configuration is read
// exactly once here and handed to the App as values.
func setup(contentPath string) (*site.App, site.Overrides, error) {
	if err := site.LoadDotEnv(); err != nil {
		return nil, site.Overrides{}, err
	}
	overrides, err := site.OverridesFromEnv()
	if err != nil {
		return nil, site.Overrides{}, err
	}
	srv, err := site.LoadServerConfig()
	if err != nil {
		return nil, site.Overrides{}, err
	}
	doc := content.Default()
	if contentPath != "" {
		if doc, err = content.LoadFile(contentPath); err != nil {
			return nil, site.Overrides{}, err
		}
	}
	return site.New(site.LoadSiteConfig(overrides), doc, srv), overrides, nil
}

func runServe(args []string) error {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	contentPath := fs.String("content", "", "content file to use instead of the compiled-in copy")
	fs.Parse(args)

	app, overrides, err := setup(*contentPath)
	if err != nil {
		return err
	}
	for _, name := range site.RejectedOverrides(overrides) {
		app.Echo.Logger.Warnf("ignoring malformed %s, using the default", name)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() { errc <- app.Start() }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), app.Server.ShutdownTimeout)
	defer cancel()
	return app.Shutdown(shutdownCtx)
}

func runBuild(args []string) error {
	fs := flag.NewFlagSet("build", flag.ExitOnError)
	out := fs.String("out", "dist", "output directory")
	contentPath := fs.String("content", "", "content file to use instead of the compiled-in copy")
	fs.Parse(args)

	app, _, err := setup(*contentPath)
	if err != nil {
		return err
	}
	if problems := app.Check(context.Background()); len(problems) > 0 {
		printProblems(problems)
		return errors.New("refusing to build a site with problems")
	}
	files, err := app.Build(context.Background(), *out)
	if err != nil {
		return err
	}
	for _, f := range files {
		fmt.Printf("  wrote %s\n", f)
	}
	return nil
}

func runCheck(args []string) error {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	contentPath := fs.String("content", "", "content file to check instead of the compiled-in copy")
	fs.Parse(args)

	app, overrides, err := setup(*contentPath)
	if err != nil {
		return err
	}
	for _, name := range site.RejectedOverrides(overrides) {
		color.Yellow("WARN  %s is set but malformed; the default is used", name)
	}
	problems := app.Check(context.Background())
	if len(problems) > 0 {
		printProblems(problems)
		return fmt.Errorf("%d problem(s) found", len(problems))
	}
	color.Green("OK    %d offers, booking %s, contact %s",
		len(app.Content.Offers()), app.Config.BookingURL, app.Config.MailtoURL())
	return nil
}

func printProblems(problems []site.Problem) {
	for _, p := range problems {
		color.Red("FAIL  %s", p)
	}
}

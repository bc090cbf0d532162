package site

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
)

// Build renders the whole site into dir for static hosting: every page,
// a 404 page, sitemap.xml, robots.txt, the structured data on its own, and
// the embedded assets under public/. It returns the written paths relative
// to dir, in write order.
func (a *App) Build(ctx context.Context, dir string) ([]string, error) {
	var written []string
	write := func(rel string, fn func(w io.Writer) error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		full := filepath.Join(dir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			return fmt.Errorf("site: build %s: %w", rel, err)
		}
		f, err := os.Create(full)
		if err != nil {
			return fmt.Errorf("site: build %s: %w", rel, err)
		}
		if err := fn(f); err != nil {
			f.Close()
			return fmt.Errorf("site: build %s: %w", rel, err)
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("site: build %s: %w", rel, err)
		}
		written = append(written, rel)
		return nil
	}

	for _, p := range a.pages() {
		cmp := p.Component(a)
		if err := write(p.File, func(w io.Writer) error { return cmp.Render(ctx, w) }); err != nil {
			return written, err
		}
	}
	if err := write("404.html", func(w io.Writer) error { return a.notFoundPage().Render(ctx, w) }); err != nil {
		return written, err
	}
	if err := write("sitemap.xml", a.writeSitemap); err != nil {
		return written, err
	}
	if err := write("robots.txt", a.writeRobots); err != nil {
		return written, err
	}
	if err := write("structured-data.json", a.writeStructuredData); err != nil {
		return written, err
	}

	err := fs.WalkDir(Assets, "assets", func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := Assets.ReadFile(p)
		if err != nil {
			return err
		}
		rel := path.Join("public", path.Base(p))
		return write(rel, func(w io.Writer) error {
			_, err := w.Write(data)
			return err
		})
	})
	if err != nil {
		return written, err
	}

	a.Echo.Logger.Infof("built %d files into %s", len(written), dir)
	return written, nil
}

func (a *App) writeStructuredData(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ProjectStructuredData(a.Config, a.Content.Business, a.Content.Offers()))
}

package site

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestBuild(t *testing.T) {
	a := newTestApp(t, DefaultSiteConfig(), ServerConfig{})
	dir := t.TempDir()

	written, err := a.Build(context.Background(), dir)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	want := []string{
		"index.html",
		"privacy/index.html",
		"404.html",
		"sitemap.xml",
		"robots.txt",
		"structured-data.json",
		"public/site.css",
	}
	if !reflect.DeepEqual(written, want) {
		t.Errorf("written = %q, want %q", written, want)
	}

	index, err := os.ReadFile(filepath.Join(dir, "index.html"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(index), `type="application/ld+json"`) {
		t.Error("index.html has no structured data")
	}
	if !strings.Contains(string(index), `href="mailto:wally@goodfields.io"`) {
		t.Error("index.html has no mailto link")
	}

	raw, err := os.ReadFile(filepath.Join(dir, "structured-data.json"))
	if err != nil {
		t.Fatal(err)
	}
	var sd ProfessionalService
	if err := json.Unmarshal(raw, &sd); err != nil {
		t.Fatalf("structured-data.json does not decode: %v", err)
	}
	if len(sd.Offers) != len(a.Content.Titles()) {
		t.Errorf("structured-data.json lists %d offers", len(sd.Offers))
	}

	notFound, err := os.ReadFile(filepath.Join(dir, "404.html"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(notFound), "Page not found") {
		t.Error("404.html is not the not-found page")
	}
}

func TestBuildMatchesServedPages(t *testing.T) {
	a := newTestApp(t, DefaultSiteConfig(), ServerConfig{})
	dir := t.TempDir()
	if _, err := a.Build(context.Background(), dir); err != nil {
		t.Fatal(err)
	}
	for _, p := range a.pages() {
		built, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(p.File)))
		if err != nil {
			t.Fatal(err)
		}
		if served := get(a, p.Path).Body.String(); served != string(built) {
			t.Errorf("%s: built file differs from the served page", p.Path)
		}
	}
}

func TestBuildCancelled(t *testing.T) {
	a := newTestApp(t, DefaultSiteConfig(), ServerConfig{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	written, err := a.Build(ctx, t.TempDir())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if len(written) != 0 {
		t.Errorf("written = %q, want nothing", written)
	}
}

package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRunBuild(t *testing.T) {
	t.Setenv("BOOKING_URL", "")
	t.Setenv("CONTACT_EMAIL", "")
	t.Setenv("GOODFIELDS_LOG_LEVEL", "off")
	out := filepath.Join(t.TempDir(), "dist")

	if err := runBuild([]string{"-out", out}); err != nil {
		t.Fatalf("runBuild failed: %v", err)
	}
	for _, f := range []string{"index.html", "privacy/index.html", "sitemap.xml", "robots.txt"} {
		if _, err := os.Stat(filepath.Join(out, f)); err != nil {
			t.Errorf("%s not written: %v", f, err)
		}
	}
}

func TestRunCheck(t *testing.T) {
	t.Setenv("BOOKING_URL", "not a url")
	t.Setenv("CONTACT_EMAIL", "")
	t.Setenv("GOODFIELDS_LOG_LEVEL", "off")

	if err := runCheck(nil); err != nil {
		t.Errorf("a malformed override falls back and should pass: %v", err)
	}
}

func TestRunCheckMissingContent(t *testing.T) {
	t.Setenv("GOODFIELDS_LOG_LEVEL", "off")
	err := runCheck([]string{"-content", filepath.Join(t.TempDir(), "missing.toml")})
	if err == nil {
		t.Fatal("expected an error for a missing content file")
	}
}

package content

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultCatalogOrder(t *testing.T) {
	want := []string{
		"Security Assessment & Hardening",
		"AI Strategy for the Practical Org",
		"Custom LibreChat (Private, Internal)",
	}
	got := Default().Titles()
	if len(got) != len(want) {
		t.Fatalf("Titles() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Titles()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestDefaultIsParsedOnce(t *testing.T) {
	if Default() != Default() {
		t.Fatal("Default() should return the same document on every call")
	}
}

func TestDefaultValidates(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("embedded content is invalid: %v", err)
	}
}

func TestOffersIsStableAndCopied(t *testing.T) {
	c := Default()
	first := c.Offers()
	first[0].Title = "changed"
	first[0].Bullets[0] = "changed"
	first[1], first[2] = first[2], first[1]

	second := c.Offers()
	if second[0].Title != "Security Assessment & Hardening" {
		t.Errorf("Offers()[0].Title = %q after caller mutation", second[0].Title)
	}
	if second[0].Bullets[0] == "changed" {
		t.Error("caller mutation leaked into the catalog bullets")
	}
	if second[1].Title != "AI Strategy for the Practical Org" {
		t.Errorf("Offers()[1].Title = %q, order was not preserved", second[1].Title)
	}
}

func TestEveryOfferHasBullets(t *testing.T) {
	for _, o := range Default().Offers() {
		if len(o.Bullets) == 0 {
			t.Errorf("offer %q has no bullets", o.Title)
		}
	}
}

const minimalDoc = `
[meta]
title = "Site"
title_template = "%s · Site"
description = "d"

[business]
description = "d"
founder = "F"
area_served = "CA"
region = "Manitoba"
country = "CA"

[hero]
heading = "h"

[about]
heading = "a"

[book]
heading = "b"

[privacy]
title = "Privacy"
body = "p"
`

func TestLoadMinimal(t *testing.T) {
	doc := minimalDoc + `
[[offers]]
title = "One"
bullets = ["a", "b"]

[[offers]]
title = "Two"
accent = "emerald"
bullets = ["c"]
`
	c, err := Load(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	offers := c.Offers()
	if len(offers) != 2 {
		t.Fatalf("len(Offers()) = %d, want 2", len(offers))
	}
	if offers[1].Title != "Two" || offers[1].Accent != "emerald" {
		t.Errorf("Offers()[1] = %+v", offers[1])
	}
	if len(offers[0].Bullets) != 2 || offers[0].Bullets[1] != "b" {
		t.Errorf("Offers()[0].Bullets = %v, want [a b]", offers[0].Bullets)
	}
	if c.Meta.PageTitle("Privacy") != "Privacy · Site" {
		t.Errorf("PageTitle = %q", c.Meta.PageTitle("Privacy"))
	}
}

func TestLoadRejectsAuthoringDefects(t *testing.T) {
	tests := []struct {
		name   string
		offers string
		want   string
	}{
		{"no offers", "", "no offers"},
		{"empty title", "[[offers]]\ntitle = \"\"\nbullets = [\"a\"]\n", "empty title"},
		{"duplicate", "[[offers]]\ntitle = \"A\"\nbullets = [\"a\"]\n[[offers]]\ntitle = \"A\"\nbullets = [\"b\"]\n", "duplicate"},
		{"no bullets", "[[offers]]\ntitle = \"A\"\nbullets = []\n", "no bullets"},
		{"blank bullet", "[[offers]]\ntitle = \"A\"\nbullets = [\" \"]\n", "is empty"},
	}
	for _, tt := range tests {
		_, err := Load(strings.NewReader(minimalDoc + tt.offers))
		if err == nil {
			t.Errorf("%s: expected an error", tt.name)
			continue
		}
		if !strings.Contains(err.Error(), tt.want) {
			t.Errorf("%s: error = %q, want it to mention %q", tt.name, err, tt.want)
		}
	}
}

func TestLoadRejectsMissingCopy(t *testing.T) {
	doc := strings.Replace(minimalDoc, `founder = "F"`, "", 1) + "[[offers]]\ntitle = \"A\"\nbullets = [\"a\"]\n"
	_, err := Load(strings.NewReader(doc))
	if err == nil || !strings.Contains(err.Error(), "business.founder") {
		t.Fatalf("err = %v, want business.founder is required", err)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.toml")
	if err := os.WriteFile(path, siteTOML, 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if got, want := len(c.Offers()), len(Default().Offers()); got != want {
		t.Errorf("len(Offers()) = %d, want %d", got, want)
	}
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestPageTitle(t *testing.T) {
	m := Default().Meta
	if got := m.PageTitle(""); got != m.Title {
		t.Errorf("PageTitle(\"\") = %q, want %q", got, m.Title)
	}
	if got := m.PageTitle("Privacy Policy"); got != "Privacy Policy · GoodFields" {
		t.Errorf("PageTitle = %q, want %q", got, "Privacy Policy · GoodFields")
	}
}

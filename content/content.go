// Package content holds the editable copy of the site: the ordered offer
// catalog, page text, head metadata, and the business facts used for
// structured data. The compiled-in document is content/site.toml.
package content

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

//go:embed site.toml
var siteTOML []byte

// Offer is one service package, rendered as a card.
type Offer struct {
	Title   string   `mapstructure:"title"`
	Bullets []string `mapstructure:"bullets"`
	Accent  string   `mapstructure:"accent"` // presentational only
}

// Business carries the fixed facts published in structured data.
type Business struct {
	Description string `mapstructure:"description"`
	Founder     string `mapstructure:"founder"`
	FounderRole string `mapstructure:"founder_role"`
	AreaServed  string `mapstructure:"area_served"`
	Region      string `mapstructure:"region"`
	Country     string `mapstructure:"country"`
	Locality    string `mapstructure:"locality"`
}

// Meta is the default head metadata shared by every page.
type Meta struct {
	Title         string `mapstructure:"title"`
	TitleTemplate string `mapstructure:"title_template"` // %s is the page title
	Description   string `mapstructure:"description"`
	Tagline       string `mapstructure:"tagline"`
	Locale        string `mapstructure:"locale"`
	OGImage       string `mapstructure:"og_image"`
}

type Hero struct {
	Eyebrow      string `mapstructure:"eyebrow"`
	Heading      string `mapstructure:"heading"`
	Lead         string `mapstructure:"lead"`
	PrimaryCTA   string `mapstructure:"primary_cta"`
	SecondaryCTA string `mapstructure:"secondary_cta"`
}

// Section is a headed block of copy. Body is Markdown.
type Section struct {
	Heading string `mapstructure:"heading"`
	Lead    string `mapstructure:"lead"`
	Body    string `mapstructure:"body"`
	CTA     string `mapstructure:"cta"`
}

type Footer struct {
	Tagline     string `mapstructure:"tagline"`
	PrivacyNote string `mapstructure:"privacy_note"`
}

// Page is a standalone document such as the privacy policy. Body is Markdown.
type Page struct {
	Title       string `mapstructure:"title"`
	Description string `mapstructure:"description"`
	Body        string `mapstructure:"body"`
}

// Content is the whole site document. Treat it as read-only once loaded;
// accessors hand out copies of anything mutable.
type Content struct {
	Meta          Meta     `mapstructure:"meta"`
	Business      Business `mapstructure:"business"`
	Hero          Hero     `mapstructure:"hero"`
	OffersSection Section  `mapstructure:"offers_section"`
	About         Section  `mapstructure:"about"`
	Book          Section  `mapstructure:"book"`
	Footer        Footer   `mapstructure:"footer"`
	Privacy       Page     `mapstructure:"privacy"`

	OfferList []Offer `mapstructure:"offers"`
}

var compiled struct {
	once sync.Once
	c    *Content
}

// Default returns the compiled-in document. It is parsed once per process.
// The embedded file is checked by tests, so a parse failure here is a
// build defect and panics.
func Default() *Content {
	compiled.once.Do(func() {
		c, err := Load(bytes.NewReader(siteTOML))
		if err != nil {
			panic(fmt.Sprintf("content: embedded site.toml: %v", err))
		}
		compiled.c = c
	})
	return compiled.c
}

// Load parses a TOML content document and validates it.
func Load(r io.Reader) (*Content, error) {
	v := viper.New()
	v.SetConfigType("toml")
	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("content: parse: %w", err)
	}
	var c Content
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("content: decode: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// LoadFile reads a content document from disk.
func LoadFile(path string) (*Content, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("content: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Validate reports the first authoring defect in c.
func (c *Content) Validate() error {
	if len(c.OfferList) == 0 {
		return fmt.Errorf("content: no offers defined")
	}
	seen := make(map[string]struct{}, len(c.OfferList))
	for i, o := range c.OfferList {
		title := strings.TrimSpace(o.Title)
		if title == "" {
			return fmt.Errorf("content: offer %d has an empty title", i+1)
		}
		if _, dup := seen[title]; dup {
			return fmt.Errorf("content: duplicate offer title %q", title)
		}
		seen[title] = struct{}{}
		if len(o.Bullets) == 0 {
			return fmt.Errorf("content: offer %q has no bullets", title)
		}
		for j, b := range o.Bullets {
			if strings.TrimSpace(b) == "" {
				return fmt.Errorf("content: offer %q bullet %d is empty", title, j+1)
			}
		}
	}
	required := []struct {
		name, val string
	}{
		{"meta.title", c.Meta.Title},
		{"meta.description", c.Meta.Description},
		{"business.description", c.Business.Description},
		{"business.founder", c.Business.Founder},
		{"business.area_served", c.Business.AreaServed},
		{"business.region", c.Business.Region},
		{"business.country", c.Business.Country},
		{"hero.heading", c.Hero.Heading},
		{"about.heading", c.About.Heading},
		{"book.heading", c.Book.Heading},
		{"privacy.title", c.Privacy.Title},
		{"privacy.body", c.Privacy.Body},
	}
	for _, f := range required {
		if strings.TrimSpace(f.val) == "" {
			return fmt.Errorf("content: %s is required", f.name)
		}
	}
	if c.Meta.TitleTemplate != "" && strings.Count(c.Meta.TitleTemplate, "%s") != 1 {
		return fmt.Errorf("content: meta.title_template must contain exactly one %%s")
	}
	return nil
}

// Offers returns the catalog in display order. The slice and its bullets are
// copies, so callers cannot reorder or edit the catalog.
func (c *Content) Offers() []Offer {
	out := make([]Offer, len(c.OfferList))
	for i, o := range c.OfferList {
		o.Bullets = append([]string(nil), o.Bullets...)
		out[i] = o
	}
	return out
}

// Titles returns the offer titles in display order.
func (c *Content) Titles() []string {
	titles := make([]string, len(c.OfferList))
	for i, o := range c.OfferList {
		titles[i] = o.Title
	}
	return titles
}

// PageTitle applies the title template to a page title. An empty page title
// yields the default site title.
func (m Meta) PageTitle(page string) string {
	switch {
	case page == "":
		return m.Title
	case m.TitleTemplate == "":
		return page
	}
	return fmt.Sprintf(m.TitleTemplate, page)
}

package site

import (
	"fmt"
	"net/mail"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Compiled-in identity of the site. Overrides can replace the booking URL
// and contact email; everything else is fixed.
const (
	defaultName         = "GoodFields"
	defaultURL          = "https://goodfields.io"
	defaultBookingURL   = "https://calendly.com/wally-goodfields/45min"
	defaultContactEmail = "wally@goodfields.io"
	defaultWebsite      = "https://wallykroeker.com"
	defaultLinkedIn     = "https://www.linkedin.com/in/wallykroeker/"
)

// SiteConfig is the business identity every page reads. Build it once with
// LoadSiteConfig and pass it by value; nothing writes to it afterwards.
type SiteConfig struct {
	Name         string
	URL          string // canonical base URL, no trailing slash
	BookingURL   string
	ContactEmail string
	Social       SocialLinks
}

// SocialLinks is the fixed set of external profiles.
type SocialLinks struct {
	Website  string
	LinkedIn string
}

// SocialLink is one named channel.
type SocialLink struct {
	Channel string
	URL     string
}

// Links returns the channels in a fixed order: website, then linkedin.
func (s SocialLinks) Links() []SocialLink {
	return []SocialLink{
		{Channel: "website", URL: s.Website},
		{Channel: "linkedin", URL: s.LinkedIn},
	}
}

// MailtoURL returns the contact link, exactly "mailto:" followed by the address.
func (c SiteConfig) MailtoURL() string {
	return "mailto:" + c.ContactEmail
}

// DefaultSiteConfig returns the compiled-in configuration.
func DefaultSiteConfig() SiteConfig {
	return SiteConfig{
		Name:         defaultName,
		URL:          defaultURL,
		BookingURL:   defaultBookingURL,
		ContactEmail: defaultContactEmail,
		Social: SocialLinks{
			Website:  defaultWebsite,
			LinkedIn: defaultLinkedIn,
		},
	}
}

// Overrides are the optional external values layered over the defaults.
// An empty field means "not set".
type Overrides struct {
	BookingURL   string `envconfig:"BOOKING_URL"`
	ContactEmail string `envconfig:"CONTACT_EMAIL"`
}

// OverridesFromEnv reads BOOKING_URL and CONTACT_EMAIL from the environment.
func OverridesFromEnv() (Overrides, error) {
	var o Overrides
	if err := envconfig.Process("", &o); err != nil {
		return Overrides{}, fmt.Errorf("site: read overrides: %w", err)
	}
	return o, nil
}

// LoadSiteConfig layers o over the defaults. An override is taken verbatim
// when it is non-blank and well formed; anything else falls back silently.
func LoadSiteConfig(o Overrides) SiteConfig {
	cfg := DefaultSiteConfig()
	if isWebURL(o.BookingURL) {
		cfg.BookingURL = o.BookingURL
	}
	if isEmail(o.ContactEmail) {
		cfg.ContactEmail = o.ContactEmail
	}
	return cfg
}

// RejectedOverrides names the overrides that were set but ignored by
// LoadSiteConfig because they are malformed.
func RejectedOverrides(o Overrides) []string {
	var rejected []string
	if strings.TrimSpace(o.BookingURL) != "" && !isWebURL(o.BookingURL) {
		rejected = append(rejected, "BOOKING_URL")
	}
	if strings.TrimSpace(o.ContactEmail) != "" && !isEmail(o.ContactEmail) {
		rejected = append(rejected, "CONTACT_EMAIL")
	}
	return rejected
}

// Validate checks that every field is present and well formed.
func (c SiteConfig) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("site: name is empty")
	}
	urls := []struct {
		field, val string
	}{
		{"url", c.URL},
		{"booking url", c.BookingURL},
		{"website link", c.Social.Website},
		{"linkedin link", c.Social.LinkedIn},
	}
	for _, u := range urls {
		if !isWebURL(u.val) {
			return fmt.Errorf("site: %s %q is not an absolute http(s) URL", u.field, u.val)
		}
	}
	if strings.HasSuffix(c.URL, "/") {
		return fmt.Errorf("site: url %q must not end with a slash", c.URL)
	}
	if !isEmail(c.ContactEmail) {
		return fmt.Errorf("site: contact email %q is not a valid address", c.ContactEmail)
	}
	return nil
}

func isWebURL(v string) bool {
	if v == "" || strings.TrimSpace(v) != v {
		return false
	}
	u, err := url.ParseRequestURI(v)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func isEmail(v string) bool {
	if v == "" || strings.TrimSpace(v) != v {
		return false
	}
	addr, err := mail.ParseAddress(v)
	return err == nil && addr.Name == "" && addr.Address == v
}

// ServerConfig holds runtime settings for the HTTP server, read from
// GOODFIELDS_* environment variables.
type ServerConfig struct {
	Addr              string        `envconfig:"ADDR" default:":3000"`
	LogLevel          string        `envconfig:"LOG_LEVEL" default:"info"`
	RateLimit         float64       `envconfig:"RATE_LIMIT" default:"20"` // requests per second per IP
	RateBurst         int           `envconfig:"RATE_BURST" default:"40"`
	CanonicalRedirect bool          `envconfig:"CANONICAL_REDIRECT" default:"true"`
	ShutdownTimeout   time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
}

// LoadServerConfig processes GOODFIELDS_* variables into a ServerConfig.
func LoadServerConfig() (ServerConfig, error) {
	var cfg ServerConfig
	if err := envconfig.Process("goodfields", &cfg); err != nil {
		return ServerConfig{}, fmt.Errorf("site: server config: %w", err)
	}
	return cfg, nil
}

func (c *ServerConfig) setDefaults() {
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.ShutdownTimeout == 0 {
		c.ShutdownTimeout = 10 * time.Second
	}
}

// LoadDotEnv loads variables from the given files (default ".env") into the
// process environment without overriding values that are already set.
// Missing files are skipped; production deployments usually have none.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	var existing []string
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			existing = append(existing, p)
		}
	}
	if len(existing) == 0 {
		return nil
	}
	if err := godotenv.Load(existing...); err != nil {
		return fmt.Errorf("site: load %s: %w", strings.Join(existing, ", "), err)
	}
	return nil
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

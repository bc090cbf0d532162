package site

import (
	"encoding/json"

	"github.com/goodfields/site/content"
)

// ProfessionalService is the schema.org record embedded on the home page.
// Field order follows the published shape.
type ProfessionalService struct {
	Context     string        `json:"@context"`
	Type        string        `json:"@type"`
	Name        string        `json:"name"`
	URL         string        `json:"url"`
	Description string        `json:"description"`
	AreaServed  string        `json:"areaServed"`
	Address     PostalAddress `json:"address"`
	Founder     Person        `json:"founder"`
	Offers      []OfferRef    `json:"offers"`
	SameAs      []string      `json:"sameAs"`
}

type PostalAddress struct {
	Type           string `json:"@type"`
	AddressRegion  string `json:"addressRegion"`
	AddressCountry string `json:"addressCountry"`
}

type Person struct {
	Type string `json:"@type"`
	Name string `json:"name"`
}

// OfferRef names one catalog entry.
type OfferRef struct {
	Type string `json:"@type"`
	Name string `json:"name"`
}

// ProjectStructuredData derives the ProfessionalService record from the site
// configuration and the offer catalog. Offers keep catalog order.
func ProjectStructuredData(cfg SiteConfig, biz content.Business, offers []content.Offer) ProfessionalService {
	refs := make([]OfferRef, 0, len(offers))
	for _, o := range offers {
		refs = append(refs, OfferRef{Type: "Offer", Name: o.Title})
	}
	return ProfessionalService{
		Context:     "https://schema.org",
		Type:        "ProfessionalService",
		Name:        cfg.Name,
		URL:         cfg.URL,
		Description: biz.Description,
		AreaServed:  biz.AreaServed,
		Address: PostalAddress{
			Type:           "PostalAddress",
			AddressRegion:  biz.Region,
			AddressCountry: biz.Country,
		},
		Founder: Person{
			Type: "Person",
			Name: biz.Founder,
		},
		Offers: refs,
		SameAs: []string{cfg.Social.Website, cfg.Social.LinkedIn},
	}
}

// StructuredDataJSON returns the record as JSON safe to place inside a
// <script type="application/ld+json"> element: <, > and & are \u-escaped.
func StructuredDataJSON(cfg SiteConfig, biz content.Business, offers []content.Offer) string {
	b, err := json.Marshal(ProjectStructuredData(cfg, biz, offers))
	if err != nil {
		return "{}"
	}
	return string(b)
}

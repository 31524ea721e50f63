package clinicinfo

import (
	"github.com/healinghandsmipt/website_backend/config"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type Address struct {
	Street string `json:"street"`
	City   string `json:"city"`
	State  string `json:"state"`
	Zip    string `json:"zip"`
	Full   string `json:"full"`
}

type NavItem struct {
	Name string `json:"name"`
	Href string `json:"href"`
}

type SocialLinks struct {
	Facebook  string `json:"facebook,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
}

// Info is the site-wide identity block rendered into the navigation shell,
// footer and contact page.
type Info struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	URL         string      `json:"url"`
	Phone       string      `json:"phone"`
	TollFree    string      `json:"tollFree,omitempty"`
	Fax         string      `json:"fax,omitempty"`
	Email       string      `json:"email"`
	Address     Address     `json:"address"`
	Hours       []string    `json:"hours"`
	Navigation  []NavItem   `json:"navigation"`
	Social      SocialLinks `json:"social"`
}

// ServiceEntry is one treatment program in the services catalog.
type ServiceEntry struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	Tagline          string   `json:"tagline"`
	ShortDescription string   `json:"shortDescription"`
	Description      string   `json:"description"`
	KeyBenefits      []string `json:"keyBenefits"`
	Icon             string   `json:"icon"`
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	Info() Info
	Services() []ServiceEntry
	ServiceByID(id string) (ServiceEntry, bool)
	Hours() []string
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type clinicInfoService struct {
	info        Info
	catalog     []ServiceEntry
	catalogByID map[string]ServiceEntry
}

// New builds the content service. Identity fields come from config so the
// site can change its phone number without a deploy; the catalog is code.
func New(site config.SiteConfig) Service {
	info := defaultInfo

	if site.Name != "" {
		info.Name = site.Name
	}
	if site.URL != "" {
		info.URL = site.URL
	}
	if site.Phone != "" {
		info.Phone = site.Phone
	}
	if site.TollFree != "" {
		info.TollFree = site.TollFree
	}
	if site.Fax != "" {
		info.Fax = site.Fax
	}
	if site.Email != "" {
		info.Email = site.Email
	}
	if site.Address.Street != "" {
		info.Address = Address{
			Street: site.Address.Street,
			City:   site.Address.City,
			State:  site.Address.State,
			Zip:    site.Address.Zip,
		}
	}
	info.Address.Full = info.Address.Street + ", " + info.Address.City + ", " + info.Address.State + " " + info.Address.Zip

	byID := make(map[string]ServiceEntry, len(serviceCatalog))
	for _, s := range serviceCatalog {
		byID[s.ID] = s
	}

	return &clinicInfoService{
		info:        info,
		catalog:     serviceCatalog,
		catalogByID: byID,
	}
}

func (s *clinicInfoService) Info() Info {
	return s.info
}

func (s *clinicInfoService) Services() []ServiceEntry {
	return s.catalog
}

func (s *clinicInfoService) ServiceByID(id string) (ServiceEntry, bool) {
	entry, ok := s.catalogByID[id]
	return entry, ok
}

func (s *clinicInfoService) Hours() []string {
	return s.info.Hours
}

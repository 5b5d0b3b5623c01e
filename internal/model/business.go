// Package model holds the canonical document types shared across the
// pipeline. Every field has a deterministic default; downstream consumers
// never see a missing required field.
package model

// Vertical is the business-category classification driving template
// selection.
type Vertical string

const (
	VerticalPlumbing    Vertical = "plumbing"
	VerticalHVAC        Vertical = "hvac"
	VerticalElectrical  Vertical = "electrical"
	VerticalRoofing     Vertical = "roofing"
	VerticalLandscaping Vertical = "landscaping"
	VerticalPainting    Vertical = "painting"
	VerticalFlooring    Vertical = "flooring"
	VerticalPestControl Vertical = "pest-control"
)

// DefaultVertical is used for unrecognized categories. The silent default
// is a deliberate policy: unknown categories must not block generation.
const DefaultVertical = VerticalHVAC

type Address struct {
	Street string `json:"street"`
	City   string `json:"city"`
	State  string `json:"state"`
	Zip    string `json:"zip"`
	Full   string `json:"full"`
}

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Phone struct {
	Display string `json:"display"`
	E164    string `json:"raw"`
}

// HoursBlock is one {days, hours} grouping in the normalized hours list.
type HoursBlock struct {
	Days  string `json:"days"`
	Hours string `json:"hours"`
}

// Hours carries the three display strings plus the structured grouping
// list, which always has exactly three entries.
type Hours struct {
	Weekday    string       `json:"weekday"`
	Saturday   string       `json:"saturday"`
	Sunday     string       `json:"sunday"`
	Structured []HoursBlock `json:"structured"`
}

type SEO struct {
	TitleTemplate      string `json:"titleTemplate"`
	DefaultTitle       string `json:"defaultTitle"`
	DefaultDescription string `json:"defaultDescription"`
	Keywords           string `json:"keywords"`
}

type Features struct {
	OnlineBooking        bool `json:"onlineBooking"`
	EmergencyService     bool `json:"emergencyService"`
	FreeEstimates        bool `json:"freeEstimates"`
	FinancingAvailable   bool `json:"financingAvailable"`
	TestimonialsCarousel bool `json:"testimonialsCarousel"`
	BlogEnabled          bool `json:"blogEnabled"`
}

type Forms struct {
	NotificationEmail string `json:"notificationEmail"`
	SuccessMessage    string `json:"successMessage"`
	ErrorMessage      string `json:"errorMessage"`
}

// Business is the canonical business document, the single source of truth
// for one site.
type Business struct {
	Slug        string      `json:"slug"`
	Name        string      `json:"name"`
	LegalName   string      `json:"legalName"`
	Tagline     string      `json:"tagline"`
	Description string      `json:"description"`
	Vertical    Vertical    `json:"vertical"`
	Phone       Phone       `json:"phone"`
	Email       string      `json:"email"`
	Website     string      `json:"website,omitempty"`
	Address     Address     `json:"address"`
	Coordinates Coordinates `json:"coordinates"`
	Hours       Hours       `json:"hours"`
	Rating      float64     `json:"rating"`
	ReviewCount int         `json:"reviewCount"`
	Established int         `json:"established"`
	Licenses    []string    `json:"licenses"`
	Theme       string      `json:"theme"`
	Features    Features    `json:"features"`
	SEO         SEO         `json:"seo"`
	Forms       Forms       `json:"forms"`
}

package synth

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Candidate is the partial, untrusted document parsed from the generative
// service's response. Every field is optional; nothing here is assumed to
// satisfy any schema. The merge layer decides what survives.
type Candidate struct {
	Business     *CandidateBusiness     `json:"business"`
	Services     []CandidateService     `json:"services"`
	Testimonials []CandidateTestimonial `json:"testimonials"`
	FAQs         []CandidateFAQ         `json:"faqs"`
	Areas        []CandidateArea        `json:"areas"`
	Posts        []CandidatePost        `json:"posts"`
}

// CandidateBusiness carries optional overrides for the canonical business
// document. Pointer fields distinguish "absent" from "empty".
type CandidateBusiness struct {
	Name        *string         `json:"name"`
	LegalName   *string         `json:"legalName"`
	Tagline     *string         `json:"tagline"`
	Description *string         `json:"description"`
	Email       *string         `json:"email"`
	Theme       *string         `json:"theme"`
	Established *FlexInt        `json:"established"`
	Licenses    []FlexString    `json:"licenses"`
	Hours       *CandidateHours `json:"hours"`
	SEO         *CandidateSEO   `json:"seo"`
}

// CandidateHours mirrors the hours shape; structured groupings from the
// candidate are ignored (the canonical three are always rebuilt).
type CandidateHours struct {
	Weekday  *string `json:"weekday"`
	Saturday *string `json:"saturday"`
	Sunday   *string `json:"sunday"`
}

// CandidateSEO carries optional SEO overrides.
type CandidateSEO struct {
	DefaultTitle       *string `json:"defaultTitle"`
	DefaultDescription *string `json:"defaultDescription"`
	Keywords           *string `json:"keywords"`
}

// CandidateService is one service entry as the model produced it. Emergency
// is a pointer so an omitted flag is distinguishable from an explicit false.
type CandidateService struct {
	Slug             string   `json:"slug"`
	Name             string   `json:"name"`
	ShortDescription string   `json:"shortDescription"`
	LongDescription  string   `json:"longDescription"`
	Features         []string `json:"features"`
	Benefits         []string `json:"benefits"`
	Icon             string   `json:"icon"`
	Category         string   `json:"category"`
	Emergency        *bool    `json:"emergency"`
	MetaTitle        string   `json:"metaTitle"`
	MetaDescription  string   `json:"metaDescription"`
}

// CandidateTestimonial is one testimonial entry as produced.
type CandidateTestimonial struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Location string   `json:"location"`
	Rating   *FlexInt `json:"rating"`
	Text     string   `json:"text"`
	Service  string   `json:"service"`
	Date     string   `json:"date"`
	Verified *bool    `json:"verified"`
}

// CandidateFAQ is a flat question/answer pair with an optional category
// label; the merge layer regroups these into categories.
type CandidateFAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Category string `json:"category"`
}

// CandidateArea is parsed for completeness but rejected by default policy
// (historically the model omits required area fields).
type CandidateArea struct {
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	State       string `json:"state"`
	Description string `json:"description"`
}

// CandidatePost is one blog post entry as produced.
type CandidatePost struct {
	Slug            string `json:"slug"`
	Title           string `json:"title"`
	Excerpt         string `json:"excerpt"`
	Content         string `json:"content"`
	AuthorID        string `json:"authorId"`
	Date            string `json:"date"`
	Category        string `json:"category"`
	Image           string `json:"image"`
	ReadTime        string `json:"readTime"`
	MetaTitle       string `json:"metaTitle"`
	MetaDescription string `json:"metaDescription"`
}

// FlexString accepts a JSON string, a number, or an object with a "name"
// field, collapsing all three to a plain string. The model alternates
// between `"Licensed"` and `{"name": "Licensed"}` shapes.
type FlexString string

// UnmarshalJSON implements tolerant decoding for FlexString.
func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = []byte(strings.TrimSpace(string(data)))
	if len(data) == 0 || string(data) == "null" {
		*f = ""
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
	case '{':
		var obj struct {
			Name string `json:"name"`
		}
		if err := json.Unmarshal(data, &obj); err != nil {
			return err
		}
		*f = FlexString(obj.Name)
	default:
		*f = FlexString(strings.Trim(string(data), `"`))
	}
	return nil
}

// FlexInt accepts a JSON number or numeric string.
type FlexInt int

// UnmarshalJSON implements tolerant decoding for FlexInt.
func (f *FlexInt) UnmarshalJSON(data []byte) error {
	s := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	// Accept floats like 4.0 from the model.
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*f = 0
		return nil
	}
	*f = FlexInt(int(v))
	return nil
}

// ParseCandidate decodes candidate JSON section by section, dropping any
// section that does not decode rather than failing the whole candidate.
// It returns nil only when nothing usable was decoded.
func ParseCandidate(data []byte) *Candidate {
	var sections map[string]json.RawMessage
	if err := json.Unmarshal(data, &sections); err != nil {
		return nil
	}

	c := &Candidate{}
	any := false

	if raw, ok := sections["business"]; ok {
		var b CandidateBusiness
		if json.Unmarshal(raw, &b) == nil {
			c.Business = &b
			any = true
		}
	}
	if decodeSection(sections, "services", &c.Services) {
		any = true
	}
	if decodeSection(sections, "testimonials", &c.Testimonials) {
		any = true
	}
	if decodeSection(sections, "faqs", &c.FAQs) {
		any = true
	}
	if decodeSection(sections, "areas", &c.Areas) {
		any = true
	}
	if decodeSection(sections, "posts", &c.Posts) {
		any = true
	}

	if !any {
		return nil
	}
	return c
}

func decodeSection[T any](sections map[string]json.RawMessage, key string, dst *[]T) bool {
	raw, ok := sections[key]
	if !ok {
		return false
	}
	var out []T
	if err := json.Unmarshal(raw, &out); err != nil || len(out) == 0 {
		return false
	}
	*dst = out
	return true
}

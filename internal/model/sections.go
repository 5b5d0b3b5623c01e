package model

type Service struct {
	Slug             string   `json:"slug"`
	Name             string   `json:"name"`
	ShortDescription string   `json:"shortDescription"`
	LongDescription  string   `json:"longDescription"`
	Features         []string `json:"features"`
	Benefits         []string `json:"benefits"`
	Icon             string   `json:"icon"`
	Category         string   `json:"category"`
	Emergency        bool     `json:"emergency"`
	MetaTitle        string   `json:"metaTitle"`
	MetaDescription  string   `json:"metaDescription"`
}

type Testimonial struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Rating   int    `json:"rating"`
	Text     string `json:"text"`
	Service  string `json:"service"`
	Date     string `json:"date"`
	Verified bool   `json:"verified"`
}

type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// FAQCategory groups FAQs for display. A category slugged "general"
// always exists in merged output.
type FAQCategory struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
	FAQs []FAQ  `json:"faqs"`
}

type Area struct {
	Slug              string      `json:"slug"`
	Name              string      `json:"name"`
	State             string      `json:"state"`
	Description       string      `json:"description"`
	Neighborhoods     []string    `json:"neighborhoods"`
	Landmarks         []string    `json:"landmarks"`
	LocalChallenges   string      `json:"localChallenges"`
	Coordinates       Coordinates `json:"coordinates"`
	Population        string      `json:"population"`
	ServiceHighlights []string    `json:"serviceHighlights"`
}

type Post struct {
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

type Author struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Role           string   `json:"role"`
	Bio            string   `json:"bio"`
	Certifications []string `json:"certifications"`
}

// SiteConfig is the full merged configuration for one site: the canonical
// business document plus every section document.
type SiteConfig struct {
	Business      Business      `json:"business"`
	Services      []Service     `json:"services"`
	Testimonials  []Testimonial `json:"testimonials"`
	FAQCategories []FAQCategory `json:"faqCategories"`
	Areas         []Area        `json:"areas"`
	Posts         []Post        `json:"posts"`
	Authors       []Author      `json:"authors"`
}

package deploy

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"

	"github.com/sells-group/sitegen-cli/internal/model"
)

// dataSubdir is where the site template reads its section documents from.
const dataSubdir = "src/data"

// Persisted document wrappers. Each section file carries its array under a
// named key plus the metadata the template expects.

type servicesDoc struct {
	Services   []model.Service `json:"services"`
	Categories []string        `json:"categories"`
}

type testimonialsDoc struct {
	Testimonials []model.Testimonial `json:"testimonials"`
	Summary      testimonialSummary  `json:"summary"`
}

type testimonialSummary struct {
	AverageRating float64 `json:"averageRating"`
	TotalCount    int     `json:"totalCount"`
}

type faqsDoc struct {
	Categories []model.FAQCategory `json:"categories"`
}

type areasDoc struct {
	Areas              []model.Area `json:"areas"`
	ServiceRadius      string       `json:"serviceRadius"`
	PrimaryServiceArea string       `json:"primaryServiceArea"`
}

type postsDoc struct {
	Posts      []model.Post `json:"posts"`
	Categories []string     `json:"categories"`
}

type authorsDoc struct {
	Authors []model.Author `json:"authors"`
}

// writeDocs materializes every section document into the workspace data
// directory under its fixed filename. The same shape normalization the merge
// layer applies is re-applied here: the orchestrator does not trust that all
// callers went through the merge layer.
func writeDocs(workspace string, cfg *model.SiteConfig) error {
	normalizeShapes(cfg)

	dataDir := filepath.Join(workspace, dataSubdir)
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return eris.Wrap(err, "deploy: create data dir")
	}

	docs := map[string]any{
		"business.json": cfg.Business,
		"services.json": servicesDoc{
			Services:   cfg.Services,
			Categories: distinctServiceCategories(cfg.Services),
		},
		"testimonials.json": testimonialsDoc{
			Testimonials: cfg.Testimonials,
			Summary: testimonialSummary{
				AverageRating: averageRating(cfg.Testimonials),
				TotalCount:    len(cfg.Testimonials),
			},
		},
		"faqs.json": faqsDoc{Categories: cfg.FAQCategories},
		"areas.json": areasDoc{
			Areas:              cfg.Areas,
			ServiceRadius:      "25 miles",
			PrimaryServiceArea: primaryArea(cfg),
		},
		"posts.json": postsDoc{
			Posts:      cfg.Posts,
			Categories: distinctPostCategories(cfg.Posts),
		},
		"authors.json": authorsDoc{Authors: cfg.Authors},
	}

	for name, doc := range docs {
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return eris.Wrapf(err, "deploy: marshal %s", name)
		}
		if err := os.WriteFile(filepath.Join(dataDir, name), data, 0o644); err != nil {
			return eris.Wrapf(err, "deploy: write %s", name)
		}
	}
	return nil
}

// normalizeShapes defensively re-applies the canonical struct shapes.
func normalizeShapes(cfg *model.SiteConfig) {
	h := &cfg.Business.Hours
	if len(h.Structured) != 3 {
		h.Structured = []model.HoursBlock{
			{Days: "Monday - Friday", Hours: h.Weekday},
			{Days: "Saturday", Hours: h.Saturday},
			{Days: "Sunday", Hours: h.Sunday},
		}
	}
	if cfg.Business.Licenses == nil {
		cfg.Business.Licenses = []string{}
	}
	for i := range cfg.Testimonials {
		if r := cfg.Testimonials[i].Rating; r < 1 || r > 5 {
			cfg.Testimonials[i].Rating = 5
		}
	}
}

func distinctServiceCategories(services []model.Service) []string {
	return distinct(services, func(s model.Service) string { return s.Category })
}

func distinctPostCategories(posts []model.Post) []string {
	return distinct(posts, func(p model.Post) string { return p.Category })
}

func distinct[T any](items []T, key func(T) string) []string {
	seen := map[string]bool{}
	var out []string
	for _, it := range items {
		k := key(it)
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	return out
}

func averageRating(ts []model.Testimonial) float64 {
	if len(ts) == 0 {
		return 0
	}
	var sum int
	for _, t := range ts {
		sum += t.Rating
	}
	// One decimal place, matching the template's display format.
	return float64(int(float64(sum)/float64(len(ts))*10+0.5)) / 10
}

func primaryArea(cfg *model.SiteConfig) string {
	if len(cfg.Areas) > 0 {
		if cfg.Areas[0].State != "" {
			return fmt.Sprintf("%s, %s", cfg.Areas[0].Name, cfg.Areas[0].State)
		}
		return cfg.Areas[0].Name
	}
	return cfg.Business.Address.City
}

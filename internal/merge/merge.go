// Package merge combines the deterministic fallback configuration with an
// optional, untrusted candidate document. Output is always fully
// schema-valid regardless of which sources were available: candidate
// content may override required fields but can never remove one.
package merge

import (
	"time"

	"go.uber.org/zap"

	"github.com/sells-group/sitegen-cli/internal/model"
	"github.com/sells-group/sitegen-cli/internal/synth"
)

// Options holds merge-policy flags.
type Options struct {
	// AllowCandidateAreas accepts candidate-provided service areas. Off by
	// default: the candidate format has historically omitted fields the
	// area template requires (state, neighborhoods, coordinates).
	AllowCandidateAreas bool
}

// Merger merges candidates into fallback configurations.
type Merger struct {
	opts Options
	now  func() time.Time
}

// New creates a Merger.
func New(opts Options) *Merger {
	return &Merger{opts: opts, now: time.Now}
}

// WithClock overrides the time source used for date backfill, for tests.
func (m *Merger) WithClock(now func() time.Time) *Merger {
	m.now = now
	return m
}

// Merge produces the final configuration. fb must be a total configuration
// from the fallback generator; cand may be nil or arbitrarily partial.
func (m *Merger) Merge(fb *model.SiteConfig, cand *synth.Candidate) *model.SiteConfig {
	out := *fb

	if cand == nil {
		return &out
	}

	out.Business = m.mergeBusiness(fb.Business, cand.Business)

	if len(cand.Services) > 0 {
		out.Services = m.mergeServices(fb, cand.Services)
	}
	if len(cand.Testimonials) > 0 {
		out.Testimonials = m.mergeTestimonials(fb, cand.Testimonials)
	}
	if len(cand.FAQs) > 0 {
		out.FAQCategories = m.mergeFAQs(cand.FAQs)
	}
	if len(cand.Posts) > 0 {
		out.Posts = m.mergePosts(fb, cand.Posts)
	}

	if len(cand.Areas) > 0 {
		if m.opts.AllowCandidateAreas {
			out.Areas = m.mergeAreas(fb, cand.Areas)
		} else {
			zap.L().Debug("discarding candidate areas per merge policy",
				zap.Int("count", len(cand.Areas)),
			)
		}
	}

	// Authors never come from the candidate; the fallback set is total.
	return &out
}

// mergeBusiness shallow-overwrites the fallback business with any candidate
// field that is present and non-empty. This is the one section where partial
// candidate data is safe: every field is independently defaultable.
func (m *Merger) mergeBusiness(base model.Business, cb *synth.CandidateBusiness) model.Business {
	if cb == nil {
		return base
	}

	setStr := func(dst *string, src *string) {
		if src != nil && *src != "" {
			*dst = *src
		}
	}

	setStr(&base.Name, cb.Name)
	setStr(&base.LegalName, cb.LegalName)
	setStr(&base.Tagline, cb.Tagline)
	setStr(&base.Description, cb.Description)
	setStr(&base.Email, cb.Email)
	setStr(&base.Theme, cb.Theme)

	if cb.Established != nil && int(*cb.Established) > 0 {
		base.Established = int(*cb.Established)
	}

	if licenses := coerceLicenses(cb.Licenses); len(licenses) > 0 {
		base.Licenses = licenses
	}

	if cb.Hours != nil {
		setStr(&base.Hours.Weekday, cb.Hours.Weekday)
		setStr(&base.Hours.Saturday, cb.Hours.Saturday)
		setStr(&base.Hours.Sunday, cb.Hours.Sunday)
	}
	// The structured groupings are always rebuilt from the three day
	// strings, never taken from upstream.
	base.Hours.Structured = []model.HoursBlock{
		{Days: "Monday - Friday", Hours: base.Hours.Weekday},
		{Days: "Saturday", Hours: base.Hours.Saturday},
		{Days: "Sunday", Hours: base.Hours.Sunday},
	}

	if cb.SEO != nil {
		setStr(&base.SEO.DefaultTitle, cb.SEO.DefaultTitle)
		setStr(&base.SEO.DefaultDescription, cb.SEO.DefaultDescription)
		setStr(&base.SEO.Keywords, cb.SEO.Keywords)
	}

	return base
}

// coerceLicenses collapses heterogeneous license entries to plain strings,
// dropping empties.
func coerceLicenses(in []synth.FlexString) []string {
	out := make([]string, 0, len(in))
	for _, l := range in {
		if s := string(l); s != "" {
			out = append(out, s)
		}
	}
	return out
}

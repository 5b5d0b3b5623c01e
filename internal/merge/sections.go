package merge

import (
	"fmt"

	"github.com/sells-group/sitegen-cli/internal/model"
	"github.com/sells-group/sitegen-cli/internal/normalize"
	"github.com/sells-group/sitegen-cli/internal/synth"
)

// Per-section backfill: the candidate array is taken wholesale, then every
// record gets its required fields filled — from the fallback record at the
// same index when one exists, else from a shape-aware default. Candidate
// content may only override, never omit.

func (m *Merger) mergeServices(fb *model.SiteConfig, in []synth.CandidateService) []model.Service {
	out := make([]model.Service, 0, len(in))
	for i, cs := range in {
		var base model.Service
		if i < len(fb.Services) {
			base = fb.Services[i]
		}

		emergency := base.Emergency
		if cs.Emergency != nil {
			emergency = *cs.Emergency
		}

		svc := model.Service{
			Slug:             firstOf(cs.Slug, normalize.Slugify(cs.Name), base.Slug, fmt.Sprintf("service-%d", i+1)),
			Name:             firstOf(cs.Name, base.Name, fmt.Sprintf("Service %d", i+1)),
			ShortDescription: firstOf(cs.ShortDescription, base.ShortDescription, "Professional service from our experienced local team."),
			LongDescription:  firstOf(cs.LongDescription, cs.ShortDescription, base.LongDescription, "Contact us to learn more about this service."),
			Features:         firstSlice(cs.Features, base.Features, []string{"Licensed technicians", "Upfront pricing"}),
			Benefits:         firstSlice(cs.Benefits, base.Benefits, []string{"Quality workmanship", "Satisfaction guaranteed"}),
			Icon:             firstOf(cs.Icon, base.Icon, "tool"),
			Category:         firstOf(cs.Category, base.Category, "Services"),
			Emergency:        emergency,
			MetaTitle:        firstOf(cs.MetaTitle, base.MetaTitle, firstOf(cs.Name, base.Name, "Our Services")+" | "+fb.Business.Name),
			MetaDescription:  firstOf(cs.MetaDescription, cs.ShortDescription, base.MetaDescription, "Professional service. Contact us today."),
		}
		out = append(out, svc)
	}
	return out
}

func (m *Merger) mergeTestimonials(fb *model.SiteConfig, in []synth.CandidateTestimonial) []model.Testimonial {
	today := m.now().Format("2006-01-02")

	out := make([]model.Testimonial, 0, len(in))
	for i, ct := range in {
		var base model.Testimonial
		if i < len(fb.Testimonials) {
			base = fb.Testimonials[i]
		}

		rating := 5
		if ct.Rating != nil {
			rating = int(*ct.Rating)
		}
		if rating < 1 || rating > 5 {
			rating = 5
		}

		verified := true
		if ct.Verified != nil {
			verified = *ct.Verified
		}

		out = append(out, model.Testimonial{
			ID:       firstOf(ct.ID, base.ID, fmt.Sprintf("t-%d", i+1)),
			Name:     firstOf(ct.Name, base.Name, "Satisfied Customer"),
			Location: firstOf(ct.Location, base.Location, fb.Business.Address.City, "Local"),
			Rating:   rating,
			Text:     firstOf(ct.Text, base.Text, "Great service from start to finish."),
			Service:  firstOf(ct.Service, base.Service, "General Service"),
			Date:     firstOf(ct.Date, base.Date, today),
			Verified: verified,
		})
	}
	return out
}

// mergeFAQs regroups a flat candidate FAQ list into categories. A category
// slugged "general" always exists and, when synthesized here, holds at
// least the first four merged FAQs.
func (m *Merger) mergeFAQs(in []synth.CandidateFAQ) []model.FAQCategory {
	type group struct {
		name string
		faqs []model.FAQ
	}

	var order []string
	groups := map[string]*group{}

	for _, cf := range in {
		if cf.Question == "" || cf.Answer == "" {
			continue
		}
		name := cf.Category
		if name == "" {
			name = "General"
		}
		slug := normalize.Slugify(name)
		if slug == "" {
			slug = "general"
			name = "General"
		}

		g, ok := groups[slug]
		if !ok {
			g = &group{name: name}
			groups[slug] = g
			order = append(order, slug)
		}
		g.faqs = append(g.faqs, model.FAQ{Question: cf.Question, Answer: cf.Answer})
	}

	if _, ok := groups["general"]; !ok {
		// Seed the general category with the first four merged FAQs.
		var seed []model.FAQ
		for _, slug := range order {
			for _, f := range groups[slug].faqs {
				seed = append(seed, f)
				if len(seed) == 4 {
					break
				}
			}
			if len(seed) == 4 {
				break
			}
		}
		if len(seed) == 0 {
			seed = []model.FAQ{{
				Question: "How do I get in touch?",
				Answer:   "Call us or use the contact form on this site and we'll get back to you within one business day.",
			}}
		}
		groups["general"] = &group{name: "General", faqs: seed}
		order = append([]string{"general"}, order...)
	} else {
		// general always renders first.
		for i, slug := range order {
			if slug == "general" && i != 0 {
				order = append(order[:i], order[i+1:]...)
				order = append([]string{"general"}, order...)
				break
			}
		}
	}

	out := make([]model.FAQCategory, 0, len(order))
	for _, slug := range order {
		g := groups[slug]
		out = append(out, model.FAQCategory{Name: g.name, Slug: slug, FAQs: g.faqs})
	}
	return out
}

func (m *Merger) mergePosts(fb *model.SiteConfig, in []synth.CandidatePost) []model.Post {
	today := m.now().Format("2006-01-02")

	authorID := "author-1"
	if len(fb.Authors) > 0 {
		authorID = fb.Authors[0].ID
	}

	out := make([]model.Post, 0, len(in))
	for i, cp := range in {
		var base model.Post
		if i < len(fb.Posts) {
			base = fb.Posts[i]
		}

		title := firstOf(cp.Title, base.Title, fmt.Sprintf("Post %d", i+1))
		out = append(out, model.Post{
			Slug:            firstOf(cp.Slug, normalize.Slugify(cp.Title), base.Slug, fmt.Sprintf("post-%d", i+1)),
			Title:           title,
			Excerpt:         firstOf(cp.Excerpt, base.Excerpt, title),
			Content:         firstOf(cp.Content, base.Content, cp.Excerpt, title),
			AuthorID:        firstOf(cp.AuthorID, base.AuthorID, authorID),
			Date:            firstOf(cp.Date, base.Date, today),
			Category:        firstOf(cp.Category, base.Category, "Tips"),
			Image:           firstOf(cp.Image, base.Image, fmt.Sprintf("/images/blog/%s-%d.jpg", fb.Business.Vertical, i+1)),
			ReadTime:        firstOf(cp.ReadTime, base.ReadTime, "5 min read"),
			MetaTitle:       firstOf(cp.MetaTitle, base.MetaTitle, title+" | "+fb.Business.Name),
			MetaDescription: firstOf(cp.MetaDescription, cp.Excerpt, base.MetaDescription, title),
		})
	}
	return out
}

// mergeAreas is reached only when the candidate-areas policy flag is on.
// Required fields the candidate format tends to omit come from the fallback
// record at the same index.
func (m *Merger) mergeAreas(fb *model.SiteConfig, in []synth.CandidateArea) []model.Area {
	out := make([]model.Area, 0, len(in))
	for i, ca := range in {
		var base model.Area
		if i < len(fb.Areas) {
			base = fb.Areas[i]
		} else if len(fb.Areas) > 0 {
			base = fb.Areas[0]
		}

		name := firstOf(ca.Name, base.Name, fmt.Sprintf("Area %d", i+1))
		out = append(out, model.Area{
			Slug:              firstOf(ca.Slug, normalize.Slugify(name), base.Slug, fmt.Sprintf("area-%d", i+1)),
			Name:              name,
			State:             firstOf(ca.State, base.State),
			Description:       firstOf(ca.Description, base.Description, "We proudly serve "+name+" and nearby communities."),
			Neighborhoods:     base.Neighborhoods,
			Landmarks:         base.Landmarks,
			LocalChallenges:   base.LocalChallenges,
			Coordinates:       base.Coordinates,
			Population:        base.Population,
			ServiceHighlights: base.ServiceHighlights,
		})
	}
	return out
}

// firstOf returns the first non-empty string.
func firstOf(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

// firstSlice returns the first non-empty slice.
func firstSlice(vals ...[]string) []string {
	for _, v := range vals {
		if len(v) > 0 {
			return v
		}
	}
	return nil
}

// Package fallback produces a complete, schema-valid site configuration
// from normalized input and static per-vertical templates. It never touches
// the network and never fails: it is the correctness backstop for the whole
// pipeline.
package fallback

import (
	"fmt"
	"hash/fnv"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/sells-group/sitegen-cli/internal/model"
	"github.com/sells-group/sitegen-cli/internal/normalize"
)

// Generator builds fallback site configurations. The classifier is injected
// so vertical mapping stays independently testable.
type Generator struct {
	classifier *normalize.Classifier
	now        func() time.Time
}

// Option configures a Generator.
type Option func(*Generator)

// WithClock overrides the time source, used by tests.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

// New creates a Generator. A nil classifier uses the default category table.
func New(classifier *normalize.Classifier, opts ...Option) *Generator {
	if classifier == nil {
		classifier = normalize.NewClassifier(nil)
	}
	g := &Generator{classifier: classifier, now: time.Now}
	for _, o := range opts {
		o(g)
	}
	return g
}

var titleCaser = cases.Title(language.AmericanEnglish)

// Generate produces the full site configuration for a raw record. Output is
// reproducible for the same input: the only pseudo-random field, the
// established year, is seeded from the business slug.
func (g *Generator) Generate(raw model.RawBusinessRecord) *model.SiteConfig {
	vertical := g.classifier.Classify(raw.Category)
	tmpl := verticalTemplates[vertical]

	biz := g.business(raw, vertical, tmpl)

	return &model.SiteConfig{
		Business:      biz,
		Services:      buildServices(biz, tmpl),
		Testimonials:  g.buildTestimonials(biz, tmpl),
		FAQCategories: buildFAQs(biz, tmpl),
		Areas:         buildAreas(biz),
		Posts:         g.buildPosts(biz, tmpl),
		Authors:       buildAuthors(biz, tmpl),
	}
}

func (g *Generator) business(raw model.RawBusinessRecord, vertical model.Vertical, tmpl verticalTemplate) model.Business {
	name := strings.TrimSpace(raw.Name)
	if name == "" {
		name = titleCaser.String(string(vertical)) + " Pros"
	}
	slug := normalize.Slugify(name)
	if slug == "" {
		slug = string(vertical) + "-pros"
	}

	addr := normalize.ParseAddress(raw.Address)
	phone := normalize.FormatPhone(raw.Phone)
	if phone.Display == "" {
		phone = normalize.FormatPhone("5555555555")
	}

	coords := model.Coordinates{}
	if raw.Latitude != nil && raw.Longitude != nil {
		coords = model.Coordinates{Lat: *raw.Latitude, Lng: *raw.Longitude}
	}

	rating := raw.Rating
	if rating <= 0 || rating > 5 {
		rating = 4.8
	}
	reviews := raw.ReviewCount
	if reviews <= 0 {
		reviews = 47
	}

	city := addr.City
	if city == "" {
		city = "your area"
	}

	return model.Business{
		Slug:        slug,
		Name:        name,
		LegalName:   name + " LLC",
		Tagline:     tmpl.tagline,
		Description: fmt.Sprintf("%s is a trusted %s company serving %s and the surrounding communities. Our licensed, experienced team delivers honest pricing, quality workmanship, and service you can rely on.", name, tmpl.noun, city),
		Vertical:    vertical,
		Phone:       phone,
		Email:       "info@" + slug + ".com",
		Website:     raw.Website,
		Address:     addr,
		Coordinates: coords,
		Hours: model.Hours{
			Weekday:  "7:00 AM - 6:00 PM",
			Saturday: "8:00 AM - 4:00 PM",
			Sunday:   "Closed",
			Structured: []model.HoursBlock{
				{Days: "Monday - Friday", Hours: "7:00 AM - 6:00 PM"},
				{Days: "Saturday", Hours: "8:00 AM - 4:00 PM"},
				{Days: "Sunday", Hours: "Closed"},
			},
		},
		Rating:      rating,
		ReviewCount: reviews,
		Established: establishedYear(slug),
		Licenses:    []string{"Licensed & Insured", "Bonded", fmt.Sprintf("%s Contractor License", tmpl.label)},
		Theme:       tmpl.theme,
		Features: model.Features{
			OnlineBooking:        true,
			EmergencyService:     true,
			FreeEstimates:        true,
			FinancingAvailable:   true,
			TestimonialsCarousel: true,
			BlogEnabled:          true,
		},
		SEO: model.SEO{
			TitleTemplate:      "%s | " + name,
			DefaultTitle:       fmt.Sprintf("%s | %s Services in %s", name, tmpl.label, city),
			DefaultDescription: fmt.Sprintf("Professional %s services in %s. Licensed, insured, and locally trusted. Call %s for a free estimate.", tmpl.noun, city, phone.Display),
			Keywords:           fmt.Sprintf("%s, %s %s, %s near me", tmpl.noun, city, tmpl.noun, tmpl.noun),
		},
		Forms: model.Forms{
			NotificationEmail: "info@" + slug + ".com",
			SuccessMessage:    "Thanks for reaching out! We'll get back to you within one business day.",
			ErrorMessage:      "Something went wrong sending your message. Please call us directly and we'll take care of you.",
		},
	}
}

// establishedYear derives a stable year in [1985, 2010] from the slug, so
// repeated generation for the same business is byte-identical.
func establishedYear(slug string) int {
	h := fnv.New32a()
	h.Write([]byte(slug))
	return 1985 + int(h.Sum32()%26)
}

func buildServices(biz model.Business, tmpl verticalTemplate) []model.Service {
	out := make([]model.Service, 0, len(tmpl.services))
	for _, s := range tmpl.services {
		slug := normalize.Slugify(s.name)
		out = append(out, model.Service{
			Slug:             slug,
			Name:             s.name,
			ShortDescription: s.short,
			LongDescription: fmt.Sprintf("%s %s proudly offers %s throughout %s. %s Contact us at %s to schedule service or request a free estimate.",
				s.short, biz.Name, strings.ToLower(s.name), cityOr(biz, "the area"), serviceClose(s), biz.Phone.Display),
			Features:        s.features,
			Benefits:        s.benefits,
			Icon:            s.icon,
			Category:        s.category,
			Emergency:       s.emergency,
			MetaTitle:       fmt.Sprintf("%s in %s | %s", s.name, cityOr(biz, "Your Area"), biz.Name),
			MetaDescription: fmt.Sprintf("%s Serving %s. Call %s today.", s.short, cityOr(biz, "your area"), biz.Phone.Display),
		})
	}
	return out
}

func serviceClose(s serviceSpec) string {
	if s.emergency {
		return "Emergency service is available when you need it most."
	}
	return "Every job is backed by our workmanship guarantee."
}

func cityOr(biz model.Business, def string) string {
	if biz.Address.City != "" {
		return biz.Address.City
	}
	return def
}

// Synthetic reviewer seeds. Names are intentionally generic.
var testimonialSeeds = []struct {
	name string
	text string
}{
	{"Mike R.", "Called in the morning and they were out the same day. Professional, friendly, and the price matched the quote exactly. Couldn't ask for more."},
	{"Sarah T.", "From the first phone call to the finished job, everything was smooth. The technician explained what he was doing and left the place spotless."},
	{"David L.", "I've used several companies over the years and these folks are the best by far. On time, honest, and the work has held up perfectly."},
	{"Jennifer M.", "Fantastic experience. They showed up when they said they would, finished ahead of schedule, and the quality is outstanding. Highly recommend."},
	{"Robert K.", "Fair pricing and zero pressure. They gave me options at different price points and never pushed the expensive one. That earned my trust."},
	{"Amanda W.", "Five stars isn't enough. Quick scheduling, courteous crew, and they followed up afterward to make sure everything was still working great."},
}

func (g *Generator) buildTestimonials(biz model.Business, tmpl verticalTemplate) []model.Testimonial {
	loc := cityOr(biz, "Local")
	out := make([]model.Testimonial, 0, len(testimonialSeeds))
	for i, seed := range testimonialSeeds {
		svc := tmpl.services[i%len(tmpl.services)]
		out = append(out, model.Testimonial{
			ID:       fmt.Sprintf("t-%d", i+1),
			Name:     seed.name,
			Location: loc,
			Rating:   5,
			Text:     seed.text,
			Service:  svc.name,
			Date:     g.now().AddDate(0, 0, -14*(i+1)).Format("2006-01-02"),
			Verified: true,
		})
	}
	return out
}

func buildFAQs(biz model.Business, tmpl verticalTemplate) []model.FAQCategory {
	general := []model.FAQ{
		{Question: "Are you licensed and insured?", Answer: fmt.Sprintf("Yes. %s is fully licensed, bonded, and insured. We're happy to provide proof of insurance and license numbers on request.", biz.Name)},
		{Question: "What areas do you serve?", Answer: fmt.Sprintf("We serve %s and the surrounding communities. If you're nearby but not sure you're in our service area, give us a call at %s.", cityOr(biz, "the local area"), biz.Phone.Display)},
		{Question: "Do you offer free estimates?", Answer: "Yes, we provide free, no-obligation estimates. We'll assess the work, walk you through your options, and give you a clear written price before anything starts."},
		{Question: "What payment methods do you accept?", Answer: "We accept all major credit cards, checks, and cash. Financing options are available for larger projects—ask us for details."},
	}

	scheduling := []model.FAQ{
		{Question: "How quickly can you schedule service?", Answer: "Routine appointments are usually available within a day or two, and we keep room in the schedule for urgent calls. Emergency service is available for critical issues."},
		{Question: "Will I get a reminder before my appointment?", Answer: "Yes, we confirm every appointment the day before and our technician calls when they're on the way, so you're never left waiting and wondering."},
	}

	pricing := []model.FAQ{
		{Question: "How do you price your work?", Answer: "We use upfront, flat-rate pricing. You approve the exact price before work begins—no hourly surprises, no hidden fees on the final bill."},
		{Question: "Do you offer any discounts?", Answer: "We offer seasonal specials plus standing discounts for seniors, military, and first responders. Check our site or ask when you call."},
	}

	return []model.FAQCategory{
		{Name: "General", Slug: "general", FAQs: general},
		{Name: "Services", Slug: "services", FAQs: tmpl.faqs},
		{Name: "Scheduling", Slug: "scheduling", FAQs: scheduling},
		{Name: "Pricing", Slug: "pricing", FAQs: pricing},
	}
}

// areaSeed derives sibling service areas from the primary city.
var areaSeeds = []struct {
	prefix  string
	latOff  float64
	lngOff  float64
	pop     string
}{
	{"", 0, 0, "85,000"},
	{"North ", 0.08, 0.01, "42,000"},
	{"Downtown ", -0.01, -0.01, "18,000"},
	{"West ", 0.01, -0.09, "36,000"},
}

func buildAreas(biz model.Business) []model.Area {
	city := cityOr(biz, "Hometown")
	state := biz.Address.State

	out := make([]model.Area, 0, len(areaSeeds))
	for _, seed := range areaSeeds {
		name := seed.prefix + city
		out = append(out, model.Area{
			Slug:        normalize.Slugify(name),
			Name:        name,
			State:       state,
			Description: fmt.Sprintf("%s has proudly served homeowners and businesses in %s for years. Our local technicians know the area, its building styles, and the problems they bring.", biz.Name, name),
			Neighborhoods: []string{
				name + " Heights", "Old " + city, name + " Estates",
			},
			Landmarks: []string{
				name + " Community Park", city + " Town Center",
			},
			LocalChallenges: fmt.Sprintf("Homes in %s range from older construction to new builds, and each brings its own maintenance needs. Our technicians handle both daily.", name),
			Coordinates: model.Coordinates{
				Lat: biz.Coordinates.Lat + seed.latOff,
				Lng: biz.Coordinates.Lng + seed.lngOff,
			},
			Population: seed.pop,
			ServiceHighlights: []string{
				"Same-day appointments available",
				"Local technicians, fast response",
				"Free estimates for " + name + " residents",
			},
		})
	}
	return out
}

var postSeeds = []struct {
	title    string
	excerpt  string
	category string
	readTime string
}{
	{
		title:    "5 Signs It's Time to Call a %s Professional",
		excerpt:  "Some problems are safe to watch; others get expensive fast. Here are the warning signs that mean it's time to bring in a pro.",
		category: "Tips",
		readTime: "4 min read",
	},
	{
		title:    "How Much Does %s Service Cost? A Homeowner's Guide",
		excerpt:  "A straight answer to the first question everyone asks, with the factors that move the price up or down.",
		category: "Pricing",
		readTime: "6 min read",
	},
	{
		title:    "Seasonal %s Maintenance Checklist",
		excerpt:  "A season-by-season rundown of the simple maintenance that prevents the most common (and most expensive) problems.",
		category: "Maintenance",
		readTime: "5 min read",
	},
	{
		title:    "How to Choose a %s Company You Can Trust",
		excerpt:  "Licenses, reviews, written estimates: what actually matters when you're comparing local companies.",
		category: "Tips",
		readTime: "5 min read",
	},
}

func (g *Generator) buildPosts(biz model.Business, tmpl verticalTemplate) []model.Post {
	out := make([]model.Post, 0, len(postSeeds))
	for i, seed := range postSeeds {
		title := fmt.Sprintf(seed.title, tmpl.label)
		out = append(out, model.Post{
			Slug:     normalize.Slugify(title),
			Title:    title,
			Excerpt:  seed.excerpt,
			Content: fmt.Sprintf("%s\n\nAt %s, we've seen every version of this across %s. This guide covers what to look for, what it means, and when to pick up the phone.\n\nIf you'd rather talk it through with a professional, call us at %s—we're happy to help, no pressure.",
				seed.excerpt, biz.Name, cityOr(biz, "the area"), biz.Phone.Display),
			AuthorID:        "author-1",
			Date:            g.now().AddDate(0, 0, -21*(i+1)).Format("2006-01-02"),
			Category:        seed.category,
			Image:           fmt.Sprintf("/images/blog/%s-%d.jpg", biz.Vertical, i+1),
			ReadTime:        seed.readTime,
			MetaTitle:       fmt.Sprintf("%s | %s Blog", title, biz.Name),
			MetaDescription: seed.excerpt,
		})
	}
	return out
}

func buildAuthors(biz model.Business, tmpl verticalTemplate) []model.Author {
	return []model.Author{
		{
			ID:   "author-1",
			Name: "The " + biz.Name + " Team",
			Role: "Owner & Lead Technician",
			Bio:  fmt.Sprintf("With decades of combined experience in %s, our team writes about the questions we hear from customers every day.", tmpl.noun),
			Certifications: []string{
				"Licensed " + tmpl.label + " Contractor",
				"Factory Trained & Certified",
			},
		},
		{
			ID:   "author-2",
			Name: "Service Desk",
			Role: "Customer Care",
			Bio:  "Our service desk coordinates scheduling, estimates, and follow-ups, and shares practical tips for getting the most from every service visit.",
			Certifications: []string{
				"Customer Service Certified",
			},
		},
	}
}

package fallback

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/sitegen-cli/internal/model"
)

func fixedClock() func() time.Time {
	ts := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	return func() time.Time { return ts }
}

func testRecord() model.RawBusinessRecord {
	lat, lng := 33.5093, -112.1450
	return model.RawBusinessRecord{
		Name:        "Valley Plumbing & Heating",
		Rating:      4.7,
		ReviewCount: 132,
		Category:    "Plumber",
		Address:     "4240 W Camelback Rd, Phoenix, AZ 85019",
		Phone:       "6025552665",
		Website:     "https://valleyplumbing.example.com",
		Latitude:    &lat,
		Longitude:   &lng,
	}
}

func TestGenerate_CompleteBusiness(t *testing.T) {
	g := New(nil, WithClock(fixedClock()))
	cfg := g.Generate(testRecord())

	biz := cfg.Business
	assert.Equal(t, "valley-plumbing-heating", biz.Slug)
	assert.Equal(t, "Valley Plumbing & Heating", biz.Name)
	assert.Equal(t, model.VerticalPlumbing, biz.Vertical)
	assert.Equal(t, "(602) 555-2665", biz.Phone.Display)
	assert.Equal(t, "+16025552665", biz.Phone.E164)
	assert.Equal(t, "info@valley-plumbing-heating.com", biz.Email)
	assert.Equal(t, "Phoenix", biz.Address.City)
	assert.Equal(t, "AZ", biz.Address.State)
	assert.Equal(t, "85019", biz.Address.Zip)
	assert.InDelta(t, 4.7, biz.Rating, 0.001)
	assert.Equal(t, 132, biz.ReviewCount)
	assert.NotEmpty(t, biz.Tagline)
	assert.NotEmpty(t, biz.Description)
	assert.NotEmpty(t, biz.Theme)
	assert.NotEmpty(t, biz.Licenses)
	assert.NotEmpty(t, biz.SEO.DefaultTitle)
	assert.NotEmpty(t, biz.Forms.NotificationEmail)

	assert.GreaterOrEqual(t, biz.Established, 1985)
	assert.LessOrEqual(t, biz.Established, 2010)

	// Hours always carry exactly the three canonical groupings.
	require.Len(t, biz.Hours.Structured, 3)
	assert.Equal(t, "Monday - Friday", biz.Hours.Structured[0].Days)
	assert.Equal(t, "Sunday", biz.Hours.Structured[2].Days)
}

// Totality: a completely empty record still yields every required field of
// every section.
func TestGenerate_TotalOnEmptyRecord(t *testing.T) {
	g := New(nil, WithClock(fixedClock()))
	cfg := g.Generate(model.RawBusinessRecord{})

	biz := cfg.Business
	assert.NotEmpty(t, biz.Slug)
	assert.NotEmpty(t, biz.Name)
	assert.NotEmpty(t, biz.Email)
	assert.NotEmpty(t, biz.Phone.Display)
	assert.NotEmpty(t, biz.Theme)
	assert.Equal(t, model.DefaultVertical, biz.Vertical)
	assert.Equal(t, "00000", biz.Address.Zip)
	require.Len(t, biz.Hours.Structured, 3)

	require.NotEmpty(t, cfg.Services)
	for _, s := range cfg.Services {
		assert.NotEmpty(t, s.Slug)
		assert.NotEmpty(t, s.Name)
		assert.NotEmpty(t, s.ShortDescription)
		assert.NotEmpty(t, s.LongDescription)
		assert.NotEmpty(t, s.Features)
		assert.NotEmpty(t, s.Benefits)
		assert.NotEmpty(t, s.Icon)
		assert.NotEmpty(t, s.Category)
		assert.NotEmpty(t, s.MetaTitle)
		assert.NotEmpty(t, s.MetaDescription)
	}

	require.NotEmpty(t, cfg.Testimonials)
	for _, tm := range cfg.Testimonials {
		assert.NotEmpty(t, tm.ID)
		assert.NotEmpty(t, tm.Name)
		assert.NotEmpty(t, tm.Location)
		assert.NotEmpty(t, tm.Text)
		assert.NotEmpty(t, tm.Service)
		assert.NotEmpty(t, tm.Date)
		assert.GreaterOrEqual(t, tm.Rating, 1)
		assert.LessOrEqual(t, tm.Rating, 5)
	}

	require.NotEmpty(t, cfg.FAQCategories)
	for _, cat := range cfg.FAQCategories {
		assert.NotEmpty(t, cat.Name)
		assert.NotEmpty(t, cat.Slug)
		assert.NotEmpty(t, cat.FAQs)
		for _, f := range cat.FAQs {
			assert.NotEmpty(t, f.Question)
			assert.NotEmpty(t, f.Answer)
		}
	}

	require.NotEmpty(t, cfg.Areas)
	for _, a := range cfg.Areas {
		assert.NotEmpty(t, a.Slug)
		assert.NotEmpty(t, a.Name)
		assert.NotEmpty(t, a.Description)
		assert.NotEmpty(t, a.Neighborhoods)
		assert.NotEmpty(t, a.Landmarks)
		assert.NotEmpty(t, a.LocalChallenges)
		assert.NotEmpty(t, a.Population)
		assert.NotEmpty(t, a.ServiceHighlights)
	}

	require.NotEmpty(t, cfg.Posts)
	for _, p := range cfg.Posts {
		assert.NotEmpty(t, p.Slug)
		assert.NotEmpty(t, p.Title)
		assert.NotEmpty(t, p.Excerpt)
		assert.NotEmpty(t, p.Content)
		assert.NotEmpty(t, p.AuthorID)
		assert.NotEmpty(t, p.Date)
		assert.NotEmpty(t, p.Category)
		assert.NotEmpty(t, p.Image)
		assert.NotEmpty(t, p.ReadTime)
	}

	require.NotEmpty(t, cfg.Authors)
	for _, a := range cfg.Authors {
		assert.NotEmpty(t, a.ID)
		assert.NotEmpty(t, a.Name)
		assert.NotEmpty(t, a.Role)
		assert.NotEmpty(t, a.Bio)
		assert.NotEmpty(t, a.Certifications)
	}
}

func TestGenerate_GeneralFAQCategoryExists(t *testing.T) {
	g := New(nil, WithClock(fixedClock()))
	cfg := g.Generate(testRecord())

	var found int
	for _, cat := range cfg.FAQCategories {
		if cat.Slug == "general" {
			found++
			assert.GreaterOrEqual(t, len(cat.FAQs), 4)
		}
	}
	assert.Equal(t, 1, found)
}

func TestGenerate_Reproducible(t *testing.T) {
	g := New(nil, WithClock(fixedClock()))

	a, err := json.Marshal(g.Generate(testRecord()))
	require.NoError(t, err)
	b, err := json.Marshal(g.Generate(testRecord()))
	require.NoError(t, err)

	assert.Equal(t, string(a), string(b))
}

func TestGenerate_AllVerticalsHaveTemplates(t *testing.T) {
	verticals := []model.Vertical{
		model.VerticalPlumbing, model.VerticalHVAC, model.VerticalElectrical,
		model.VerticalRoofing, model.VerticalLandscaping, model.VerticalPainting,
		model.VerticalFlooring, model.VerticalPestControl,
	}

	for _, v := range verticals {
		tmpl, ok := verticalTemplates[v]
		require.True(t, ok, "missing template for %s", v)
		assert.NotEmpty(t, tmpl.theme, v)
		assert.NotEmpty(t, tmpl.tagline, v)
		assert.GreaterOrEqual(t, len(tmpl.services), 5, v)
		assert.NotEmpty(t, tmpl.faqs, v)
	}
}

func TestGenerate_ThemeFollowsVertical(t *testing.T) {
	g := New(nil, WithClock(fixedClock()))

	rec := testRecord()
	rec.Category = "Roofing company"
	cfg := g.Generate(rec)

	assert.Equal(t, model.VerticalRoofing, cfg.Business.Vertical)
	assert.Equal(t, themeForVertical(model.VerticalRoofing), cfg.Business.Theme)
}

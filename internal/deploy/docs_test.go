package deploy

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/sitegen-cli/internal/model"
)

func TestWriteDocs_Wrappers(t *testing.T) {
	ws := t.TempDir()
	cfg := siteConfig(t)

	require.NoError(t, writeDocs(ws, cfg))
	dataDir := filepath.Join(ws, "src", "data")

	var services servicesDoc
	readJSON(t, filepath.Join(dataDir, "services.json"), &services)
	assert.Equal(t, len(cfg.Services), len(services.Services))
	assert.NotEmpty(t, services.Categories)

	var testimonials testimonialsDoc
	readJSON(t, filepath.Join(dataDir, "testimonials.json"), &testimonials)
	assert.Equal(t, len(cfg.Testimonials), testimonials.Summary.TotalCount)
	assert.Greater(t, testimonials.Summary.AverageRating, 0.0)

	var areas areasDoc
	readJSON(t, filepath.Join(dataDir, "areas.json"), &areas)
	assert.NotEmpty(t, areas.Areas)
	assert.NotEmpty(t, areas.ServiceRadius)
	assert.Contains(t, areas.PrimaryServiceArea, "Phoenix")

	var faqs faqsDoc
	readJSON(t, filepath.Join(dataDir, "faqs.json"), &faqs)
	assert.NotEmpty(t, faqs.Categories)

	var posts postsDoc
	readJSON(t, filepath.Join(dataDir, "posts.json"), &posts)
	assert.NotEmpty(t, posts.Posts)
	assert.NotEmpty(t, posts.Categories)

	var authors authorsDoc
	readJSON(t, filepath.Join(dataDir, "authors.json"), &authors)
	assert.NotEmpty(t, authors.Authors)
}

// The orchestrator does not trust that config came through the merge layer:
// shape normalization is re-applied before writing.
func TestWriteDocs_DefensiveNormalization(t *testing.T) {
	ws := t.TempDir()
	cfg := siteConfig(t)
	cfg.Business.Hours.Structured = nil
	cfg.Business.Licenses = nil
	cfg.Testimonials[0].Rating = 11

	require.NoError(t, writeDocs(ws, cfg))

	var biz model.Business
	readJSON(t, filepath.Join(ws, "src", "data", "business.json"), &biz)
	require.Len(t, biz.Hours.Structured, 3)
	assert.NotNil(t, biz.Licenses)

	var testimonials testimonialsDoc
	readJSON(t, filepath.Join(ws, "src", "data", "testimonials.json"), &testimonials)
	assert.Equal(t, 5, testimonials.Testimonials[0].Rating)
}

func readJSON(t *testing.T, path string, dst any) {
	t.Helper()
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, dst))
}

func TestAverageRating(t *testing.T) {
	assert.Zero(t, averageRating(nil))
	assert.InDelta(t, 4.5, averageRating([]model.Testimonial{{Rating: 4}, {Rating: 5}}), 0.001)
	assert.InDelta(t, 5.0, averageRating([]model.Testimonial{{Rating: 5}}), 0.001)
}

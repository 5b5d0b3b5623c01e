package synth

import (
	"fmt"
	"strings"

	"github.com/sells-group/sitegen-cli/internal/model"
)

// systemPrompt frames every synthesis request.
const systemPrompt = `You are a copywriter for local home-service businesses. You write warm, specific, trustworthy website copy that sounds like a real local company, never generic filler.

Rules:
- Return a single valid JSON object and nothing else
- Write in American English, second person where natural
- Never invent certifications, awards, or years in business
- Keep every description grounded in the business details provided`

// BuildPrompt embeds the normalized business fields and the exact target
// document shape into one user prompt.
func BuildPrompt(raw model.RawBusinessRecord, biz model.Business) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, `Write complete website content for this business:

Name: %s
Trade: %s
City: %s, %s
Phone: %s
Rating: %.1f stars (%d reviews)
`, biz.Name, biz.Vertical, biz.Address.City, biz.Address.State, biz.Phone.Display, biz.Rating, biz.ReviewCount)

	if raw.Category != "" {
		fmt.Fprintf(&sb, "Listed category: %s\n", raw.Category)
	}
	if raw.Website != "" {
		fmt.Fprintf(&sb, "Existing website: %s\n", raw.Website)
	}

	sb.WriteString(`
Return one JSON object with exactly this shape:

{
  "business": {
    "tagline": "short memorable tagline",
    "description": "2-3 sentence company description",
    "seo": {"defaultTitle": "...", "defaultDescription": "...", "keywords": "comma, separated"}
  },
  "services": [
    {"slug": "kebab-case", "name": "...", "shortDescription": "1 sentence", "longDescription": "2-3 paragraphs", "features": ["..."], "benefits": ["..."], "icon": "feather icon name", "category": "...", "emergency": false, "metaTitle": "...", "metaDescription": "..."}
  ],
  "testimonials": [
    {"name": "First L.", "location": "city", "rating": 5, "text": "...", "service": "service name", "date": "YYYY-MM-DD", "verified": true}
  ],
  "faqs": [
    {"question": "...", "answer": "...", "category": "General|Services|Pricing|Scheduling"}
  ],
  "posts": [
    {"slug": "kebab-case", "title": "...", "excerpt": "...", "content": "full markdown article", "date": "YYYY-MM-DD", "category": "...", "readTime": "N min read", "metaTitle": "...", "metaDescription": "..."}
  ]
}

Produce 5-6 services, 6 testimonials, 8-10 faqs, and 4 posts. Every service must be a real service this trade performs.`)

	return sb.String()
}

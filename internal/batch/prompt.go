package batch

import (
	"fmt"
	"strings"
)

const batchSystemPrompt = `You are a copywriter producing website content for a local home-services business. You always answer with the exact multi-file format requested, nothing else. Every file body is a single valid JSON object.`

// BuildPrompt asks for all six section documents in one response,
// each wrapped in a labeled block so the output can be split back
// into individual files.
func BuildPrompt(in Input) string {
	var b strings.Builder

	b.WriteString("Generate website content for the following business:\n\n")
	b.WriteString(in.Description)
	b.WriteString("\n\n")
	if in.Record != nil {
		fmt.Fprintf(&b, "Business name: %s\n", in.Record.Name)
		if in.Record.Category != "" {
			fmt.Fprintf(&b, "Trade: %s\n", in.Record.Category)
		}
		if in.Record.Address != "" {
			fmt.Fprintf(&b, "Address: %s\n", in.Record.Address)
		}
		b.WriteString("\n")
	}

	b.WriteString(`Produce exactly six files. Wrap each one in a marker line of the form:

=== FILE: <name> ===

followed by the file's JSON body. The files and their shapes:

=== FILE: services.json ===
{"services": [{"slug","name","shortDescription","longDescription","features":[],"benefits":[],"icon","category","emergency":false,"metaTitle","metaDescription"}], "categories": []}

=== FILE: testimonials.json ===
{"testimonials": [{"id","name","location","rating":5,"text","service","date","verified":true}], "summary": {"averageRating":4.8,"totalCount":6}}

=== FILE: faqs.json ===
{"categories": [{"name","slug","faqs":[{"question","answer","category"}]}]}

=== FILE: areas.json ===
{"areas": [{"slug","name","state","description","neighborhoods":[],"landmarks":[],"localChallenges","coordinates":{"lat","lng"},"population","serviceHighlights":[]}], "serviceRadius":"25 miles", "primaryServiceArea":""}

=== FILE: posts.json ===
{"posts": [{"slug","title","excerpt","content","authorId","date","category","image","readTime","metaTitle","metaDescription"}], "categories": []}

=== FILE: authors.json ===
{"authors": [{"id","name","role","bio","certifications":[]}]}

Write 5-6 services, 6 testimonials, 8-10 FAQs in at least three categories (one category slugged "general"), 3-4 service areas, 4 blog posts, and 2 authors. Output only the six labeled blocks.`)

	return b.String()
}

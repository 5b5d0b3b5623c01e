package batch

import (
	"regexp"
	"strings"

	"github.com/sells-group/sitegen-cli/internal/synth"
)

// ExpectedFiles are the section documents the batch prompt asks for,
// in the order they are reported.
var ExpectedFiles = []string{
	"services.json",
	"testimonials.json",
	"faqs.json",
	"areas.json",
	"posts.json",
	"authors.json",
}

var blockMarker = regexp.MustCompile(`(?m)^===\s*FILE:\s*([A-Za-z0-9._-]+)\s*===\s*$`)

// ParseBlocks splits a multi-document response into per-file JSON
// payloads. Blocks whose filename is not in ExpectedFiles, or whose
// body contains no parsable JSON object, are dropped.
func ParseBlocks(text string) map[string]string {
	expected := make(map[string]bool, len(ExpectedFiles))
	for _, name := range ExpectedFiles {
		expected[name] = true
	}

	matches := blockMarker.FindAllStringSubmatchIndex(text, -1)
	out := make(map[string]string)
	for i, m := range matches {
		name := text[m[2]:m[3]]
		if !expected[name] {
			continue
		}
		start := m[1]
		end := len(text)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		body, ok := synth.ExtractJSON(strings.TrimSpace(text[start:end]))
		if !ok {
			continue
		}
		out[name] = body
	}
	return out
}

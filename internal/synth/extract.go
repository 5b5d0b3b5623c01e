package synth

import "strings"

// ExtractJSON returns the first balanced JSON object substring in free-form
// model output. The response is not guaranteed to be pure JSON: it may carry
// leading commentary, markdown fences, or trailing notes. The second return
// is false when no balanced object exists — callers branch on it instead of
// recovering from a parse panic.
func ExtractJSON(text string) (string, bool) {
	// Strip a markdown fence first so the brace scan sees clean input.
	if idx := strings.Index(text, "```json"); idx >= 0 {
		text = text[idx+len("```json"):]
		if end := strings.Index(text, "```"); end >= 0 {
			text = text[:end]
		}
	}

	start := strings.IndexByte(text, '{')
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(text); i++ {
		ch := text[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}

		switch ch {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1], true
			}
		}
	}

	return "", false
}

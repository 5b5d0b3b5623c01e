package normalize

import (
	"regexp"
	"strings"
)

const maxSlugLen = 50

var (
	nonAlnum    = regexp.MustCompile(`[^a-z0-9]+`)
	multiHyphen = regexp.MustCompile(`-{2,}`)
)

// Slugify lowercases a name and reduces it to a hyphen-separated,
// filesystem- and URL-safe identifier of at most 50 characters. Idempotent:
// slugifying a slug returns it unchanged.
func Slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = nonAlnum.ReplaceAllString(s, "-")
	s = multiHyphen.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if len(s) > maxSlugLen {
		s = strings.Trim(s[:maxSlugLen], "-")
	}
	return s
}

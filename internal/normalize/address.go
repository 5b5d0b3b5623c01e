// Package normalize converts raw scraped business fields into canonical
// primitives. Every function here is total: malformed input produces a
// defaulted result, never an error.
package normalize

import (
	"regexp"
	"strings"

	"github.com/sells-group/sitegen-cli/internal/model"
)

var stateZip = regexp.MustCompile(`([A-Z]{2})\s+(\d{5})`)

// ParseAddress splits a free-text address on commas: part 0 is the street,
// part 1 the city, and a "ST 12345" pattern is pulled from part 2. Unmatched
// groups default to empty string, the zip to "00000".
func ParseAddress(full string) model.Address {
	addr := model.Address{Zip: "00000"}

	parts := strings.Split(full, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	if len(parts) > 0 {
		addr.Street = parts[0]
	}
	if len(parts) > 1 {
		addr.City = parts[1]
	}
	if len(parts) > 2 {
		if m := stateZip.FindStringSubmatch(strings.ToUpper(parts[2])); m != nil {
			addr.State = m[1]
			addr.Zip = m[2]
		}
	}

	addr.Full = FullAddress(addr)
	return addr
}

// FullAddress renders the precomputed single-line form of an address,
// skipping empty components.
func FullAddress(a model.Address) string {
	var parts []string
	if a.Street != "" {
		parts = append(parts, a.Street)
	}
	if a.City != "" {
		parts = append(parts, a.City)
	}
	if a.State != "" || a.Zip != "" {
		tail := strings.TrimSpace(a.State + " " + a.Zip)
		if tail != "" {
			parts = append(parts, tail)
		}
	}
	return strings.Join(parts, ", ")
}

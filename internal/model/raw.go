package model

import "strings"

// RawBusinessRecord is the unvalidated input describing one business, as
// captured from an external source. It is read-only: the normalizer derives
// canonical fields from it but never writes back.
type RawBusinessRecord struct {
	Name        string   `json:"name"`
	Rating      float64  `json:"rating"`
	ReviewCount int      `json:"reviewCount"`
	Category    string   `json:"category"`
	Address     string   `json:"address"`
	Phone       string   `json:"phone"`
	Website     string   `json:"website,omitempty"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
}

// Valid reports whether the record carries enough to generate a site.
// Only the name is required; everything else has a deterministic default.
func (r RawBusinessRecord) Valid() bool {
	return strings.TrimSpace(r.Name) != ""
}

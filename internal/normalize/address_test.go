package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAddress(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		street string
		city   string
		state  string
		zip    string
	}{
		{
			name:   "full address",
			input:  "4240 W Camelback Rd, Phoenix, AZ 85019",
			street: "4240 W Camelback Rd",
			city:   "Phoenix",
			state:  "AZ",
			zip:    "85019",
		},
		{
			name:   "lowercase state",
			input:  "12 Main St, Mesa, az 85201",
			street: "12 Main St",
			city:   "Mesa",
			state:  "AZ",
			zip:    "85201",
		},
		{
			name:   "street only",
			input:  "500 Oak Ave",
			street: "500 Oak Ave",
			zip:    "00000",
		},
		{
			name:  "empty",
			input: "",
			zip:   "00000",
		},
		{
			name:   "no zip match",
			input:  "1 Elm St, Tucson, Arizona",
			street: "1 Elm St",
			city:   "Tucson",
			zip:    "00000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr := ParseAddress(tt.input)
			assert.Equal(t, tt.street, addr.Street)
			assert.Equal(t, tt.city, addr.City)
			assert.Equal(t, tt.state, addr.State)
			if tt.zip != "" {
				assert.Equal(t, tt.zip, addr.Zip)
			}
		})
	}
}

func TestParseAddress_FullString(t *testing.T) {
	addr := ParseAddress("4240 W Camelback Rd, Phoenix, AZ 85019")
	assert.Equal(t, "4240 W Camelback Rd, Phoenix, AZ 85019", addr.Full)

	// Partial addresses render without dangling separators.
	addr = ParseAddress("500 Oak Ave")
	assert.Equal(t, "500 Oak Ave, 00000", addr.Full)
}

func TestParseAddress_NeverPanics(t *testing.T) {
	for _, input := range []string{"", ",", ",,,,", "   ", "a,b,c,d,e,f"} {
		assert.NotPanics(t, func() { ParseAddress(input) })
	}
}

package batch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBlocks(t *testing.T) {
	text := `Here are your files.

=== FILE: services.json ===
{"services": [{"name": "Drain Cleaning"}], "categories": ["repair"]}

=== FILE: faqs.json ===
` + "```json\n" + `{"categories": [{"slug": "general"}]}` + "\n```" + `

=== FILE: notes.txt ===
{"ignored": true}

=== FILE: authors.json ===
this block has no JSON object at all
`

	blocks := ParseBlocks(text)
	require.Len(t, blocks, 2)
	assert.Contains(t, blocks["services.json"], "Drain Cleaning")
	assert.Contains(t, blocks["faqs.json"], "general")
	assert.NotContains(t, blocks, "notes.txt")
	assert.NotContains(t, blocks, "authors.json")
}

func TestParseBlocks_Empty(t *testing.T) {
	assert.Empty(t, ParseBlocks("no markers here"))
}

func TestResolveInput_InlineJSON(t *testing.T) {
	in, err := ResolveInput(`{"name": "Valley Plumbing", "category": "plumber", "address": "1 Main St, Phoenix, AZ 85001"}`)
	require.NoError(t, err)
	require.NotNil(t, in.Record)
	assert.Equal(t, "Valley Plumbing", in.Record.Name)
}

func TestResolveInput_FreeText(t *testing.T) {
	in, err := ResolveInput("a family-owned HVAC company in Mesa")
	require.NoError(t, err)
	assert.Nil(t, in.Record)
	assert.Equal(t, "a family-owned HVAC company in Mesa", in.Description)
}

func TestResolveInput_Empty(t *testing.T) {
	_, err := ResolveInput("   ")
	require.Error(t, err)
}

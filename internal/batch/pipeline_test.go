package batch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/sitegen-cli/pkg/anthropic"
)

type mockClient struct {
	resp    *anthropic.MessageResponse
	err     error
	lastReq anthropic.MessageRequest
}

func (m *mockClient) CreateMessage(_ context.Context, req anthropic.MessageRequest) (*anthropic.MessageResponse, error) {
	m.lastReq = req
	if m.err != nil {
		return nil, m.err
	}
	return m.resp, nil
}

func textResponse(text string) *anthropic.MessageResponse {
	return &anthropic.MessageResponse{
		Content: []anthropic.ContentBlock{{Type: "text", Text: text}},
	}
}

func TestRun_PartialSuccess(t *testing.T) {
	mc := &mockClient{resp: textResponse(`
=== FILE: services.json ===
{"services": [{"name": "AC Repair"}], "categories": []}

=== FILE: testimonials.json ===
not json at all

=== FILE: authors.json ===
{"authors": [{"id": "author-1", "name": "The Team"}]}
`)}
	p := New(mc, "test-model", 4096, 0.7)
	outDir := t.TempDir()

	report, err := p.Run(context.Background(), "an HVAC company in Mesa", outDir)
	require.NoError(t, err)
	assert.Equal(t, 6, report.Expected)
	assert.ElementsMatch(t, []string{"services.json", "authors.json"}, report.Written)

	data, err := os.ReadFile(filepath.Join(outDir, "services.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "AC Repair")

	_, err = os.Stat(filepath.Join(outDir, "testimonials.json"))
	assert.True(t, os.IsNotExist(err))

	assert.Contains(t, mc.lastReq.Messages[0].Content, "an HVAC company in Mesa")
	assert.Contains(t, mc.lastReq.Messages[0].Content, "=== FILE: services.json ===")
}

func TestRun_NoClient(t *testing.T) {
	p := New(nil, "test-model", 4096, 0.7)
	_, err := p.Run(context.Background(), "anything", t.TempDir())
	require.Error(t, err)
}

func TestRun_RequestError(t *testing.T) {
	p := New(&mockClient{err: errors.New("boom")}, "test-model", 4096, 0.7)
	_, err := p.Run(context.Background(), "anything", t.TempDir())
	require.Error(t, err)
}

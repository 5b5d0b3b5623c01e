package batch

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/sitegen-cli/pkg/anthropic"
)

// Report summarizes one batch run. Written holds the filenames that
// were produced; Expected is the size of the full document set.
type Report struct {
	Written  []string
	Expected int
}

type Pipeline struct {
	client      anthropic.Client
	model       string
	maxTokens   int64
	temperature float64
}

func New(client anthropic.Client, modelID string, maxTokens int64, temperature float64) *Pipeline {
	return &Pipeline{
		client:      client,
		model:       modelID,
		maxTokens:   maxTokens,
		temperature: temperature,
	}
}

// Run resolves the input, issues one generation request, and writes
// every parsable document block to outDir. Missing or unparsable
// blocks are skipped; the report carries the shortfall. Unlike the
// live pipeline there is no fallback backfill here — partial output
// is meant for human review.
func (p *Pipeline) Run(ctx context.Context, arg, outDir string) (*Report, error) {
	if p.client == nil {
		return nil, eris.New("batch: no API credential configured")
	}

	in, err := ResolveInput(arg)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, eris.Wrap(err, "batch: create output dir")
	}

	resp, err := p.client.CreateMessage(ctx, anthropic.MessageRequest{
		Model:       p.model,
		MaxTokens:   p.maxTokens,
		System:      batchSystemPrompt,
		Temperature: &p.temperature,
		Messages: []anthropic.Message{
			{Role: "user", Content: BuildPrompt(in)},
		},
	})
	if err != nil {
		return nil, eris.Wrap(err, "batch: generation request")
	}
	resp.Usage.LogCost(p.model, "batch")

	blocks := ParseBlocks(resp.Text())
	report := &Report{Expected: len(ExpectedFiles)}
	for _, name := range ExpectedFiles {
		body, ok := blocks[name]
		if !ok {
			zap.L().Warn("document block missing from response", zap.String("file", name))
			continue
		}
		var buf bytes.Buffer
		if err := json.Indent(&buf, []byte(body), "", "  "); err != nil {
			zap.L().Warn("document block is not valid JSON",
				zap.String("file", name), zap.Error(err))
			continue
		}
		path := filepath.Join(outDir, name)
		if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
			return report, eris.Wrapf(err, "batch: write %s", name)
		}
		report.Written = append(report.Written, name)
	}
	return report, nil
}

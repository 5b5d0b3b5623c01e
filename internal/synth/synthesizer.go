// Package synth builds a prompt from normalized business fields, calls the
// generative-text service once, and parses the response into an untrusted
// candidate document. Every failure mode degrades to "no candidate"; the
// pipeline then runs on the fallback generator alone.
package synth

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/sells-group/sitegen-cli/internal/model"
	"github.com/sells-group/sitegen-cli/pkg/anthropic"
)

// Synthesizer issues single bounded-token synthesis calls.
type Synthesizer struct {
	client      anthropic.Client
	model       string
	maxTokens   int64
	temperature float64
	limiter     *rate.Limiter
}

// New creates a Synthesizer. A nil client disables synthesis: Synthesize
// then always reports no candidate, which is a normal outcome, not an error.
func New(client anthropic.Client, modelID string, maxTokens int64, temperature float64, perSec float64) *Synthesizer {
	if perSec <= 0 {
		perSec = 1
	}
	return &Synthesizer{
		client:      client,
		model:       modelID,
		maxTokens:   maxTokens,
		temperature: temperature,
		limiter:     rate.NewLimiter(rate.Limit(perSec), 1),
	}
}

// Enabled reports whether a service client is configured.
func (s *Synthesizer) Enabled() bool {
	return s != nil && s.client != nil
}

// Synthesize runs one synthesis attempt. It returns nil on any failure —
// missing credential, transport error, or unparsable payload — after logging
// the cause. No retries: a failed attempt degrades straight to fallback-only
// operation.
func (s *Synthesizer) Synthesize(ctx context.Context, raw model.RawBusinessRecord, biz model.Business) *Candidate {
	if !s.Enabled() {
		zap.L().Debug("synthesis disabled, no service credential configured")
		return nil
	}

	if err := s.limiter.Wait(ctx); err != nil {
		zap.L().Warn("synthesis rate-limit wait canceled", zap.Error(err))
		return nil
	}

	resp, err := s.client.CreateMessage(ctx, anthropic.MessageRequest{
		Model:       s.model,
		MaxTokens:   s.maxTokens,
		System:      systemPrompt,
		Messages:    []anthropic.Message{{Role: "user", Content: BuildPrompt(raw, biz)}},
		Temperature: &s.temperature,
	})
	if err != nil {
		zap.L().Warn("synthesis request failed, using fallback content",
			zap.String("business", biz.Slug),
			zap.Error(err),
		)
		return nil
	}
	resp.Usage.LogCost(s.model, "synthesize")

	text := resp.Text()
	jsonStr, ok := ExtractJSON(text)
	if !ok {
		zap.L().Warn("no JSON object in synthesis response",
			zap.String("business", biz.Slug),
			zap.Int("response_len", len(text)),
		)
		return nil
	}

	cand := ParseCandidate([]byte(jsonStr))
	if cand == nil {
		zap.L().Warn("synthesis response JSON did not decode into any usable section",
			zap.String("business", biz.Slug),
		)
		return nil
	}

	zap.L().Info("synthesis produced candidate",
		zap.String("business", biz.Slug),
		zap.Int("services", len(cand.Services)),
		zap.Int("testimonials", len(cand.Testimonials)),
		zap.Int("faqs", len(cand.FAQs)),
		zap.Int("posts", len(cand.Posts)),
	)
	return cand
}

package main

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"github.com/rotisserie/eris"

	"github.com/sells-group/sitegen-cli/internal/config"
	"github.com/sells-group/sitegen-cli/internal/deploy"
	"github.com/sells-group/sitegen-cli/internal/fallback"
	"github.com/sells-group/sitegen-cli/internal/merge"
	"github.com/sells-group/sitegen-cli/internal/model"
	"github.com/sells-group/sitegen-cli/internal/normalize"
	"github.com/sells-group/sitegen-cli/internal/store"
	"github.com/sells-group/sitegen-cli/internal/synth"
	"github.com/sells-group/sitegen-cli/pkg/anthropic"
)

// pipelineEnv bundles the generation pipeline's components, wired once per
// command invocation.
type pipelineEnv struct {
	gen    *fallback.Generator
	synth  *synth.Synthesizer
	merger *merge.Merger
	orch   *deploy.Orchestrator
	store  store.Store
}

func initPipeline(ctx context.Context, c *config.Config) (*pipelineEnv, error) {
	var client anthropic.Client
	if c.Anthropic.Key != "" {
		client = anthropic.NewClient(c.Anthropic.Key)
	}

	st, err := initStore(ctx, c)
	if err != nil {
		return nil, err
	}

	var classifier *normalize.Classifier
	if c.Normalize.CategoryTableFile != "" {
		table, err := normalize.LoadCategoryTable(c.Normalize.CategoryTableFile)
		if err != nil {
			_ = st.Close()
			return nil, err
		}
		classifier = normalize.NewClassifier(table)
	}

	return &pipelineEnv{
		gen: fallback.New(classifier),
		synth: synth.New(client, c.Anthropic.Model, c.Anthropic.MaxTokens,
			c.Anthropic.Temperature, c.Anthropic.RatePerSec),
		merger: merge.New(merge.Options{AllowCandidateAreas: c.Merge.AllowCandidateAreas}),
		orch: deploy.New(c.Deploy.TemplateDir, c.Deploy.ScratchDir, c.Deploy.Command,
			c.Deploy.Token, time.Duration(c.Deploy.TimeoutSecs)*time.Second, nil),
		store: st,
	}, nil
}

func (e *pipelineEnv) Close() {
	if e.store != nil {
		_ = e.store.Close()
	}
}

// buildConfig runs the generation half of the pipeline: fallback, one
// synthesis attempt, merge. It always returns a complete configuration.
func (e *pipelineEnv) buildConfig(ctx context.Context, raw model.RawBusinessRecord) *model.SiteConfig {
	fb := e.gen.Generate(raw)
	cand := e.synth.Synthesize(ctx, raw, fb.Business)
	return e.merger.Merge(fb, cand)
}

// deployConfig publishes a configuration and records the attempt in the
// run-history store.
func (e *pipelineEnv) deployConfig(ctx context.Context, cfg *model.SiteConfig) (*deploy.Result, error) {
	run, err := e.store.CreateRun(ctx, cfg.Business.Slug, cfg.Business.Name)
	if err != nil {
		return nil, err
	}

	res, err := e.orch.Deploy(ctx, cfg)
	if err != nil {
		_ = e.store.FailRun(ctx, run.ID, err.Error())
		return nil, err
	}

	if err := e.store.CompleteRun(ctx, run.ID, res.ProjectID, res.URL); err != nil {
		return nil, err
	}
	return res, nil
}

func initStore(ctx context.Context, c *config.Config) (store.Store, error) {
	var (
		st  store.Store
		err error
	)
	switch c.Store.Driver {
	case "postgres":
		st, err = store.NewPostgres(ctx, c.Store.DatabaseURL)
	default:
		st, err = store.NewSQLite(c.Store.DatabaseURL)
	}
	if err != nil {
		return nil, err
	}
	if err := st.Migrate(ctx); err != nil {
		_ = st.Close()
		return nil, err
	}
	return st, nil
}

// readRecord loads a raw business record from a JSON file.
func readRecord(path string) (model.RawBusinessRecord, error) {
	var raw model.RawBusinessRecord

	data, err := os.ReadFile(path)
	if err != nil {
		return raw, eris.Wrap(err, "read record file")
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return raw, eris.Wrap(err, "parse record file")
	}
	if !raw.Valid() {
		return raw, eris.New("record is missing a business name")
	}
	return raw, nil
}

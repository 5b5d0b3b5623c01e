//go:build !integration

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/sitegen-cli/internal/deploy"
	"github.com/sells-group/sitegen-cli/internal/fallback"
	"github.com/sells-group/sitegen-cli/internal/merge"
	"github.com/sells-group/sitegen-cli/internal/store"
	"github.com/sells-group/sitegen-cli/internal/synth"
)

// stubDeployRunner stands in for the hosting CLI.
type stubDeployRunner struct {
	output string
	err    error
}

func (s *stubDeployRunner) Run(_ context.Context, _, _ string, _ []string, _ []string) (string, error) {
	return s.output, s.err
}

func newTestEnv(t *testing.T, runner deploy.CommandRunner) *pipelineEnv {
	t.Helper()

	templateDir := filepath.Join(t.TempDir(), "template")
	require.NoError(t, os.MkdirAll(templateDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(templateDir, "package.json"), []byte("{}"), 0o644))

	st, err := store.NewSQLite(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	require.NoError(t, st.Migrate(context.Background()))

	return &pipelineEnv{
		gen:    fallback.New(nil),
		synth:  synth.New(nil, "test-model", 1024, 0.7, 10),
		merger: merge.New(merge.Options{}),
		orch:   deploy.New(templateDir, t.TempDir(), "vercel", "", time.Minute, runner),
		store:  st,
	}
}

func postJSON(t *testing.T, h http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestRouter_Health(t *testing.T) {
	r := newRouter(newTestEnv(t, &stubDeployRunner{}))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "ok")
}

func TestRouter_GenerateSite_MissingScrapedData(t *testing.T) {
	r := newRouter(newTestEnv(t, &stubDeployRunner{}))

	rr := postJSON(t, r, "/api/generate-site", map[string]any{"deploy": true})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "scrapedData")
}

func TestRouter_GenerateSite_InvalidJSON(t *testing.T) {
	r := newRouter(newTestEnv(t, &stubDeployRunner{}))

	req := httptest.NewRequest(http.MethodPost, "/api/generate-site", bytes.NewReader([]byte("not json")))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "invalid request body")
}

func TestRouter_GenerateSite_Preview(t *testing.T) {
	r := newRouter(newTestEnv(t, &stubDeployRunner{}))

	rr := postJSON(t, r, "/api/generate-site", map[string]any{
		"scrapedData": map[string]any{"name": "Valley Plumbing & Heating", "category": "Plumber"},
	})
	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Success      bool            `json:"success"`
		Preview      bool            `json:"preview"`
		BusinessJSON json.RawMessage `json:"businessJson"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.True(t, resp.Preview)
	assert.Contains(t, string(resp.BusinessJSON), "valley-plumbing-heating")
}

func TestRouter_GenerateSite_PreviewIdempotence(t *testing.T) {
	r := newRouter(newTestEnv(t, &stubDeployRunner{}))
	body := map[string]any{
		"scrapedData": map[string]any{"name": "Valley Plumbing & Heating", "category": "Plumber"},
	}

	first := postJSON(t, r, "/api/generate-site", body)
	second := postJSON(t, r, "/api/generate-site", body)
	require.Equal(t, http.StatusOK, first.Code)
	require.Equal(t, http.StatusOK, second.Code)

	var a, b struct {
		BusinessJSON json.RawMessage `json:"businessJson"`
	}
	require.NoError(t, json.Unmarshal(first.Body.Bytes(), &a))
	require.NoError(t, json.Unmarshal(second.Body.Bytes(), &b))
	assert.Equal(t, string(a.BusinessJSON), string(b.BusinessJSON))
}

func TestRouter_GenerateSite_Deploy(t *testing.T) {
	env := newTestEnv(t, &stubDeployRunner{output: "Production: https://valley-plumbing.vercel.app\n"})
	r := newRouter(env)

	rr := postJSON(t, r, "/api/generate-site", map[string]any{
		"scrapedData": map[string]any{"name": "Valley Plumbing & Heating", "category": "Plumber"},
		"deploy":      true,
	})
	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Success    bool `json:"success"`
		Deployment struct {
			URL       string `json:"url"`
			ProjectID string `json:"projectId"`
		} `json:"deployment"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "https://valley-plumbing.vercel.app", resp.Deployment.URL)
	assert.Equal(t, "site-valley-plumbing-heating", resp.Deployment.ProjectID)

	runs, err := env.store.ListRuns(context.Background(), store.RunFilter{Status: store.StatusSucceeded})
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "valley-plumbing-heating", runs[0].BusinessSlug)
}

func TestRouter_GenerateSite_DeployFailure(t *testing.T) {
	env := newTestEnv(t, &stubDeployRunner{output: "Error: forbidden", err: errors.New("exit status 1")})
	r := newRouter(env)

	rr := postJSON(t, r, "/api/generate-site", map[string]any{
		"scrapedData": map[string]any{"name": "Valley Plumbing & Heating", "category": "Plumber"},
		"deploy":      true,
	})
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Body.String(), `"success":false`)

	runs, err := env.store.ListRuns(context.Background(), store.RunFilter{Status: store.StatusFailed})
	require.NoError(t, err)
	assert.Len(t, runs, 1)
}

func TestRouter_Augment(t *testing.T) {
	r := newRouter(newTestEnv(t, &stubDeployRunner{}))

	rr := postJSON(t, r, "/api/augment", map[string]any{
		"scrapedData": map[string]any{"name": "ABC Electric", "category": "Electrician"},
	})
	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Success bool            `json:"success"`
		UsedAI  bool            `json:"usedAI"`
		Config  json.RawMessage `json:"config"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.False(t, resp.UsedAI)
	assert.Contains(t, string(resp.Config), "abc-electric")
}

func TestRouter_Augment_MissingData(t *testing.T) {
	r := newRouter(newTestEnv(t, &stubDeployRunner{}))

	rr := postJSON(t, r, "/api/augment", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

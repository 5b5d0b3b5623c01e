package deploy

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/sitegen-cli/internal/fallback"
	"github.com/sells-group/sitegen-cli/internal/model"
)

// stubRunner records the invocation and returns canned output.
type stubRunner struct {
	output  string
	err     error
	sleep   time.Duration
	gotDir  string
	gotName string
	gotArgs []string
	calls   int
}

func (s *stubRunner) Run(ctx context.Context, dir, name string, args []string, _ []string) (string, error) {
	s.calls++
	s.gotDir = dir
	s.gotName = name
	s.gotArgs = args
	if s.sleep > 0 {
		select {
		case <-time.After(s.sleep):
		case <-ctx.Done():
			return s.output, ctx.Err()
		}
	}
	return s.output, s.err
}

func makeTemplate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "src", "pages"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "node_modules", "left-pad"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".git"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "package.json"), []byte(`{"name":"site-template"}`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "src", "pages", "index.tsx"), []byte("export default Page"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".git", "HEAD"), []byte("ref"), 0o644))
	return dir
}

func siteConfig(t *testing.T) *model.SiteConfig {
	t.Helper()
	g := fallback.New(nil)
	return g.Generate(model.RawBusinessRecord{
		Name:     "Valley Plumbing & Heating",
		Category: "Plumber",
		Address:  "4240 W Camelback Rd, Phoenix, AZ 85019",
		Phone:    "6025552665",
	})
}

func TestDeploy_Success(t *testing.T) {
	tmpl := makeTemplate(t)
	scratch := t.TempDir()
	runner := &stubRunner{output: "Deploying...\nProduction: https://valley-plumbing-heating.vercel.app [2s]\n"}

	o := New(tmpl, scratch, "vercel", "tok-123", time.Minute, runner)
	res, err := o.Deploy(context.Background(), siteConfig(t))
	require.NoError(t, err)

	assert.Equal(t, "https://valley-plumbing-heating.vercel.app", res.URL)
	assert.Equal(t, "site-valley-plumbing-heating", res.ProjectID)
	assert.NotEmpty(t, res.DeployID)

	// Structured invocation: explicit argument list, no shell string.
	assert.Equal(t, "vercel", runner.gotName)
	assert.Contains(t, runner.gotArgs, "deploy")
	assert.Contains(t, runner.gotArgs, "--prod")
	assert.Contains(t, runner.gotArgs, "site-valley-plumbing-heating")

	// Workspace is deleted after success.
	entries, err := os.ReadDir(scratch)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestDeploy_CleanupOnFailure(t *testing.T) {
	tmpl := makeTemplate(t)
	scratch := t.TempDir()
	runner := &stubRunner{output: "Error! build failed\n", err: errors.New("exit status 1")}

	o := New(tmpl, scratch, "vercel", "", time.Minute, runner)
	_, err := o.Deploy(context.Background(), siteConfig(t))
	require.Error(t, err)
	// Raw process output retained for diagnostics.
	assert.Contains(t, err.Error(), "build failed")

	entries, rdErr := os.ReadDir(scratch)
	require.NoError(t, rdErr)
	assert.Empty(t, entries, "workspace must not leak on failure")
}

func TestDeploy_CleanupOnTimeout(t *testing.T) {
	tmpl := makeTemplate(t)
	scratch := t.TempDir()
	runner := &stubRunner{sleep: time.Second}

	o := New(tmpl, scratch, "vercel", "", 20*time.Millisecond, runner)
	_, err := o.Deploy(context.Background(), siteConfig(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timed out")

	entries, rdErr := os.ReadDir(scratch)
	require.NoError(t, rdErr)
	assert.Empty(t, entries, "workspace must not leak on timeout")
}

func TestDeploy_NoURLInOutputNotFatal(t *testing.T) {
	tmpl := makeTemplate(t)
	runner := &stubRunner{output: "Deployed, but in a format we don't recognize\n"}

	o := New(tmpl, t.TempDir(), "vercel", "", time.Minute, runner)
	res, err := o.Deploy(context.Background(), siteConfig(t))
	require.NoError(t, err)
	assert.Empty(t, res.URL)
	assert.NotEmpty(t, res.Output)
}

func TestDeploy_WorkspaceContents(t *testing.T) {
	tmpl := makeTemplate(t)
	runner := &stubRunner{output: "https://x.vercel.app"}

	// Capture the workspace contents at run time, before cleanup.
	var seenFiles []string
	var seenBusiness map[string]any
	capture := &captureRunner{inner: runner, onRun: func(dir string) {
		dataDir := filepath.Join(dir, "src", "data")
		entries, err := os.ReadDir(dataDir)
		require.NoError(t, err)
		for _, e := range entries {
			seenFiles = append(seenFiles, e.Name())
		}

		raw, err := os.ReadFile(filepath.Join(dataDir, "business.json"))
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(raw, &seenBusiness))

		// Stripped artifacts never reach the workspace.
		_, err = os.Stat(filepath.Join(dir, "node_modules"))
		assert.True(t, os.IsNotExist(err))
		_, err = os.Stat(filepath.Join(dir, ".git"))
		assert.True(t, os.IsNotExist(err))

		// Template files do.
		_, err = os.Stat(filepath.Join(dir, "package.json"))
		assert.NoError(t, err)
	}}

	o := New(tmpl, t.TempDir(), "vercel", "", time.Minute, capture)
	_, err := o.Deploy(context.Background(), siteConfig(t))
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{
		"business.json", "services.json", "testimonials.json",
		"faqs.json", "areas.json", "posts.json", "authors.json",
	}, seenFiles)
	assert.Equal(t, "valley-plumbing-heating", seenBusiness["slug"])
}

type captureRunner struct {
	inner CommandRunner
	onRun func(dir string)
}

func (c *captureRunner) Run(ctx context.Context, dir, name string, args []string, env []string) (string, error) {
	c.onRun(dir)
	return c.inner.Run(ctx, dir, name, args, env)
}

func TestDeploy_EmptySlug(t *testing.T) {
	o := New(makeTemplate(t), t.TempDir(), "vercel", "", time.Minute, &stubRunner{})
	cfg := siteConfig(t)
	cfg.Business.Slug = ""
	_, err := o.Deploy(context.Background(), cfg)
	require.Error(t, err)
}

func TestDeploy_MissingTemplate(t *testing.T) {
	o := New("/nonexistent/template", t.TempDir(), "vercel", "", time.Minute, &stubRunner{})
	_, err := o.Deploy(context.Background(), siteConfig(t))
	require.Error(t, err)
}

// Package deploy materializes a final site configuration into an ephemeral
// build workspace and drives the hosting provider's deploy CLI. The
// workspace is deleted on every exit path, success or failure.
package deploy

import (
	"context"
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/sitegen-cli/internal/model"
)

// Result is a completed deployment.
type Result struct {
	URL       string `json:"url"`
	ProjectID string `json:"projectId"`
	DeployID  string `json:"deployId"`
	Output    string `json:"output,omitempty"`
}

// Orchestrator owns the workspace lifecycle and the deploy subprocess.
type Orchestrator struct {
	templateDir string
	scratchDir  string
	command     string
	token       string
	timeout     time.Duration
	runner      CommandRunner
}

// New creates an Orchestrator. A nil runner uses the real subprocess runner.
func New(templateDir, scratchDir, command, token string, timeout time.Duration, runner CommandRunner) *Orchestrator {
	if runner == nil {
		runner = NewExecRunner()
	}
	if timeout <= 0 {
		timeout = 5 * time.Minute
	}
	return &Orchestrator{
		templateDir: templateDir,
		scratchDir:  scratchDir,
		command:     command,
		token:       token,
		timeout:     timeout,
		runner:      runner,
	}
}

// urlPattern matches the published URL in the deploy CLI's output.
var urlPattern = regexp.MustCompile(`https://[a-zA-Z0-9.-]+\.vercel\.app`)

// Deploy publishes a site configuration. A subprocess failure (non-zero
// exit, timeout) is fatal to the invocation and surfaced with the raw output
// retained; workspace cleanup runs regardless of how the deploy step ended.
func (o *Orchestrator) Deploy(ctx context.Context, cfg *model.SiteConfig) (*Result, error) {
	slug := cfg.Business.Slug
	if slug == "" {
		return nil, eris.New("deploy: business slug is empty")
	}
	projectID := "site-" + slug

	ws, err := createWorkspace(o.templateDir, o.scratchDir, slug)
	if err != nil {
		return nil, err
	}
	defer func() {
		if rmErr := removeWorkspace(ws); rmErr != nil {
			zap.L().Error("workspace cleanup failed", zap.String("workspace", ws), zap.Error(rmErr))
		}
	}()

	if err := writeDocs(ws, cfg); err != nil {
		return nil, err
	}

	args := []string{"deploy", "--prod", "--yes", "--name", projectID}
	var env []string
	if o.token != "" {
		env = append(env, "VERCEL_TOKEN="+o.token)
		args = append(args, "--token", o.token)
	}

	runCtx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	zap.L().Info("running deploy command",
		zap.String("project", projectID),
		zap.String("command", o.command),
		zap.Duration("timeout", o.timeout),
	)

	output, err := o.runner.Run(runCtx, ws, o.command, args, env)
	if err != nil {
		if runCtx.Err() == context.DeadlineExceeded {
			return nil, eris.Wrapf(err, "deploy: command timed out after %s: %s", o.timeout, tail(output, 2000))
		}
		return nil, eris.Wrapf(err, "deploy: command failed: %s", tail(output, 2000))
	}

	// Absence of a URL match is not fatal: the caller still gets the raw
	// output for diagnostics.
	url := urlPattern.FindString(output)
	if url == "" {
		zap.L().Warn("no published URL found in deploy output", zap.String("project", projectID))
	}

	res := &Result{
		URL:       url,
		ProjectID: projectID,
		DeployID:  uuid.NewString(),
		Output:    output,
	}
	zap.L().Info("deploy complete",
		zap.String("project", projectID),
		zap.String("url", url),
	)
	return res, nil
}

func tail(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}

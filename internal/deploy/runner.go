package deploy

import (
	"bytes"
	"context"
	"os"
	"os/exec"
)

// CommandRunner executes the hosting provider's CLI. Tests substitute a stub
// so no real deploys happen.
type CommandRunner interface {
	// Run executes name with args in dir, returning combined output. The
	// context bounds execution time.
	Run(ctx context.Context, dir, name string, args []string, extraEnv []string) (string, error)
}

// execRunner runs real subprocesses via exec.CommandContext with an explicit
// argument list. Never a shell string: arguments are passed verbatim.
type execRunner struct{}

// NewExecRunner returns the production CommandRunner.
func NewExecRunner() CommandRunner {
	return execRunner{}
}

func (execRunner) Run(ctx context.Context, dir, name string, args []string, extraEnv []string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), extraEnv...)

	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	err := cmd.Run()
	return out.String(), err
}

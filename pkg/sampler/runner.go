package sampler

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"github.com/pkg/errors"

	"github.com/digitalocean/clockmon/internal/log"
)

// Runner runs an external command and returns what it wrote to stdout
type Runner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// ExecRunner runs commands with os/exec
type ExecRunner struct{}

// Run executes name with args. Only a failure to start the process is
// returned as an error; a non-zero exit status is logged and whatever the
// process wrote to stdout is returned.
func (ExecRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Start(); err != nil {
		return nil, errors.Wrapf(err, "failed to execute %q", name)
	}

	err := cmd.Wait()
	if exitErr, ok := err.(*exec.ExitError); ok {
		log.Debug("%s exited with %s: %s", name, exitErr, strings.TrimSpace(stderr.String()))
		return stdout.Bytes(), nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed waiting for %q", name)
	}

	return stdout.Bytes(), nil
}

package cedra

import (
	"bytes"
	"context"
	"os/exec"
)

//go:generate mockgen -destination=mock/mock_runner.go -package=mockcedra -source=runner.go

// Runner executes an external command and captures its output
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (stdout, stderr []byte, err error)
}

// ExecRunner runs commands with os/exec
type ExecRunner struct{}

// NewExecRunner creates a runner backed by os/exec
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// Run implements Runner
func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.Bytes(), stderr.Bytes(), err
}

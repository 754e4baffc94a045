// Package execx runs external commands for the bootstrap and listing code.
package execx

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/arthur-debert/zshboot/pkg/logging"
	"github.com/arthur-debert/zshboot/pkg/types"
)

// ExitError reports a command that ran and exited non-zero
type ExitError struct {
	Name string
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%s exited with code %d", e.Name, e.Code)
}

// OSRunner runs commands on the host
type OSRunner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	// Env is appended to the inherited environment
	Env []string
}

// NewOSRunner streams to the process stdio
func NewOSRunner() *OSRunner {
	return &OSRunner{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
}

// LookPath resolves name on PATH
func (r *OSRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// Run executes name with args, streaming output
func (r *OSRunner) Run(ctx context.Context, name string, args ...string) error {
	logging.LogCommand(name, args)
	cmd := r.command(ctx, name, args...)
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	return classify(ctx, name, cmd.Run())
}

// Output executes name with args and returns stdout. Stderr is streamed.
func (r *OSRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	logging.LogCommand(name, args)
	cmd := r.command(ctx, name, args...)
	cmd.Stderr = r.Stderr
	out, err := cmd.Output()
	return out, classify(ctx, name, err)
}

func (r *OSRunner) command(ctx context.Context, name string, args ...string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, name, args...)
	if len(r.Env) > 0 {
		cmd.Env = append(os.Environ(), r.Env...)
	}
	return cmd
}

func classify(ctx context.Context, name string, err error) error {
	if err == nil {
		return nil
	}
	var ee *exec.ExitError
	if errors.As(err, &ee) {
		return &ExitError{Name: name, Code: ee.ExitCode()}
	}
	if ctx.Err() == context.DeadlineExceeded {
		return &ExitError{Name: name, Code: 124}
	}
	return err
}

// Shell runs script through sh -c
func Shell(ctx context.Context, r types.Runner, script string) error {
	return r.Run(ctx, "sh", "-c", script)
}

var _ types.Runner = (*OSRunner)(nil)

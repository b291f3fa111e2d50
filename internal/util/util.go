// Package util runs external commands and captures their output.
package util

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
)

// CommandOutput wraps the output from an exec command as strings.
type CommandOutput struct {
	Stdout string
	Stderr string
}

// ExecuteCommand runs the command named by c[0] with the remaining elements
// as arguments and returns its full stdout and stderr. The output buffers
// grow until the process closes its streams; no timeout is applied beyond
// whatever the context carries. Captured output is returned alongside a
// non-nil error so callers can surface stderr in diagnostics.
func ExecuteCommand(ctx context.Context, c []string) (output CommandOutput, err error) {
	if len(c) == 0 {
		return CommandOutput{}, fmt.Errorf("must provide a command")
	}

	name := c[0]
	var args []string
	if len(c) > 1 {
		args = c[1:]
	}

	cmd := exec.CommandContext(ctx, name, args...)
	var stdoutb, stderrb bytes.Buffer
	cmd.Stdout = &stdoutb
	cmd.Stderr = &stderrb

	if err := cmd.Run(); err != nil {
		return CommandOutput{Stdout: stdoutb.String(), Stderr: stderrb.String()}, fmt.Errorf("error running specified command: %w", err)
	}

	return CommandOutput{Stdout: stdoutb.String(), Stderr: stderrb.String()}, nil
}

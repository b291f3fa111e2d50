package util

import (
	"context"
	"strings"
	"testing"
)

func TestExecuteCommand(t *testing.T) {
	t.Run("empty command", func(t *testing.T) {
		// verify the empty argv case errors instead of execing nothing
		_, err := ExecuteCommand(context.Background(), nil)
		if err == nil {
			t.Errorf("ExecuteCommand() expected error for empty command")
		}
	})

	t.Run("command not found", func(t *testing.T) {
		_, err := ExecuteCommand(context.Background(), []string{"mlsblk-no-such-binary"})
		if err == nil {
			t.Errorf("ExecuteCommand() expected error for missing binary")
		}
	})

	t.Run("captures stdout", func(t *testing.T) {
		out, err := ExecuteCommand(context.Background(), []string{"echo", "hello"})
		if err != nil {
			t.Fatalf("ExecuteCommand() unexpected error: %v", err)
		}
		if strings.TrimSpace(out.Stdout) != "hello" {
			t.Errorf("ExecuteCommand() stdout = %q, want %q", out.Stdout, "hello")
		}
	})
}

// Package adapter contains the infrastructure adapters of semreg: external
// tools driven through os/exec, filesystem access, locks and report storage.
package adapter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"time"
)

// waitDelay bounds how long a killed command may keep its output pipes open.
const waitDelay = 2 * time.Second

// ErrNoCommand is returned when an adapter has no command configured.
var ErrNoCommand = errors.New("no command configured")

// CommandError describes a failed external command.
type CommandError struct {
	Argv   []string
	Stderr string
	Err    error
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("%s: %v", strings.Join(e.Argv, " "), e.Err)
	if stderr := strings.TrimSpace(e.Stderr); stderr != "" {
		msg += ": " + lastLine(stderr)
	}

	return msg
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// runCommand runs argv followed by args and returns stdout. The command is
// killed when ctx is done.
func runCommand(ctx context.Context, dir string, argv []string, args ...string) (string, error) {
	if len(argv) == 0 {
		return "", ErrNoCommand
	}

	full := append(append([]string{}, argv...), args...)

	// #nosec G204 - commands come from the harness configuration
	cmd := exec.CommandContext(ctx, full[0], full[1:]...)
	cmd.Dir = dir
	cmd.WaitDelay = waitDelay

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	slog.Debug("running command", "argv", full, "dir", dir)

	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return stdout.String(), ctxErr
		}

		slog.Error("command failed", "argv", full, "error", err)

		return stdout.String(), &CommandError{Argv: full, Stderr: stderr.String(), Err: err}
	}

	return stdout.String(), nil
}

// lastLine returns the last non-empty line of output.
func lastLine(output string) string {
	lines := strings.Split(strings.TrimRight(output, "\n"), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if line := strings.TrimSpace(lines[i]); line != "" {
			return line
		}
	}

	return ""
}

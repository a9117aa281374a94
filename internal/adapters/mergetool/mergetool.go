package mergetool

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/renato0307/mergebench/internal/domain"
	"github.com/renato0307/mergebench/internal/logging"
	"github.com/renato0307/mergebench/internal/ports"
)

// Tool implements ports.MergeTool for tools following the
// `<cmd> <left> <base> <right> -o <output>` convention
type Tool struct {
	runner  ports.ProcessRunner
	timeout time.Duration
}

// Compile-time interface verification
var _ ports.MergeTool = (*Tool)(nil)

// NewTool creates a merge tool invoker. A zero timeout disables the limit.
func NewTool(runner ports.ProcessRunner, timeout time.Duration) *Tool {
	return &Tool{runner: runner, timeout: timeout}
}

// Merge runs mergeCmd (split on whitespace) on the three inputs.
// The exit code is returned as data; an error means the tool could not be
// started or was killed on timeout.
func (t *Tool) Merge(ctx context.Context, mergeCmd, left, base, right, output string) (int, error) {
	fields := strings.Fields(mergeCmd)
	if len(fields) == 0 {
		return -1, fmt.Errorf("empty merge command")
	}

	args := append(fields[1:], left, base, right, "-o", output)

	result, err := t.runner.Run(ctx, ports.Command{
		Name:    fields[0],
		Args:    args,
		Timeout: t.timeout,
	})
	if err != nil {
		return -1, fmt.Errorf("failed to run %s: %w", fields[0], err)
	}

	if result.TimedOut {
		return -1, fmt.Errorf("%s: %w after %s", fields[0], domain.ErrTimedOut, t.timeout)
	}

	if result.ExitCode != 0 {
		logging.Logger.Debug("Merge tool exited non-zero",
			"cmd", mergeCmd,
			"exit_code", result.ExitCode,
			"stdout", string(result.Stdout),
			"stderr", string(result.Stderr))
	}

	return result.ExitCode, nil
}

package process

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"time"

	"github.com/renato0307/mergebench/internal/logging"
	"github.com/renato0307/mergebench/internal/ports"
)

// pipeDrainDelay bounds how long Wait keeps reading output after the child
// exits, since forked helpers may inherit and hold its pipes
var pipeDrainDelay = 5 * time.Second

// Runner implements ports.ProcessRunner on top of os/exec.
// Every child runs in its own process group so a timeout kills the whole
// tree (build tools and merge tools routinely fork helpers).
type Runner struct{}

// Compile-time interface verification
var _ ports.ProcessRunner = (*Runner)(nil)

// NewRunner creates a new process runner
func NewRunner() *Runner {
	return &Runner{}
}

// Run starts the command and waits for it, its timeout or ctx.
// A timeout is reported through ProcessResult.TimedOut, not as an error.
func (r *Runner) Run(ctx context.Context, c ports.Command) (ports.ProcessResult, error) {
	logging.Logger.Debug("Running process", "name", c.Name, "args", c.Args, "dir", c.Dir, "timeout", c.Timeout)

	var stdout, stderr bytes.Buffer
	cmd := exec.Command(c.Name, c.Args...)
	cmd.Dir = c.Dir
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = pipeDrainDelay
	if len(c.Env) > 0 {
		cmd.Env = append(os.Environ(), c.Env...)
	}
	setProcessGroup(cmd)

	start := time.Now()
	if err := cmd.Start(); err != nil {
		return ports.ProcessResult{}, fmt.Errorf("failed to start %s: %w", c.Name, err)
	}

	done := make(chan error, 1)
	go func() {
		done <- cmd.Wait()
	}()

	var timeout <-chan time.Time
	if c.Timeout > 0 {
		timer := time.NewTimer(c.Timeout)
		defer timer.Stop()
		timeout = timer.C
	}

	result := ports.ProcessResult{}
	var waitErr error

	select {
	case waitErr = <-done:
	case <-timeout:
		logging.Logger.Warn("Process timed out, killing process group", "name", c.Name, "timeout", c.Timeout)
		r.kill(cmd)
		<-done
		result.TimedOut = true
	case <-ctx.Done():
		logging.Logger.Debug("Context done, killing process group", "name", c.Name)
		r.kill(cmd)
		<-done
		result.Duration = time.Since(start)
		result.ExitCode = -1
		result.Stdout = stdout.Bytes()
		result.Stderr = stderr.Bytes()
		return result, ctx.Err()
	}

	result.Duration = time.Since(start)
	result.Stdout = stdout.Bytes()
	result.Stderr = stderr.Bytes()

	switch {
	case result.TimedOut:
		result.ExitCode = -1
	case waitErr == nil:
		result.ExitCode = 0
	case errors.Is(waitErr, exec.ErrWaitDelay):
		logging.Logger.Warn("Process exited but left its output pipes open", "name", c.Name)
		result.ExitCode = 0
	default:
		var exitErr *exec.ExitError
		if !errors.As(waitErr, &exitErr) {
			return result, fmt.Errorf("failed to wait for %s: %w", c.Name, waitErr)
		}
		result.ExitCode = exitErr.ExitCode()
	}

	logging.Logger.Debug("Process finished",
		"name", c.Name,
		"exit_code", result.ExitCode,
		"duration", result.Duration,
		"timed_out", result.TimedOut)
	return result, nil
}

func (r *Runner) kill(cmd *exec.Cmd) {
	if err := killProcessGroup(cmd); err != nil {
		logging.Logger.Debug("Failed to kill process group", "error", err, "pid", cmd.Process.Pid)
	}
}

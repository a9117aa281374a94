package maven

import (
	"context"
	"path/filepath"
	"time"

	"github.com/renato0307/mergebench/internal/logging"
	"github.com/renato0307/mergebench/internal/ports"
)

// DefaultBinary is the Maven executable looked up on PATH
const DefaultBinary = "mvn"

// Builder implements ports.Builder by running Maven in batch mode
type Builder struct {
	binary      string
	runner      ports.ProcessRunner
	testTimeout time.Duration
	timeout     time.Duration
}

// Compile-time interface verification
var _ ports.Builder = (*Builder)(nil)

// NewBuilder creates a Maven builder. Zero timeouts disable the limit.
func NewBuilder(runner ports.ProcessRunner, binary string, timeout, testTimeout time.Duration) *Builder {
	if binary == "" {
		binary = DefaultBinary
	}
	return &Builder{
		binary:      binary,
		runner:      runner,
		testTimeout: testTimeout,
		timeout:     timeout,
	}
}

// Compile runs `mvn clean compile` and reports whether it succeeded
func (b *Builder) Compile(ctx context.Context, workdir string) bool {
	return b.run(ctx, workdir, b.timeout, "clean", "compile")
}

// Test runs `mvn clean test` and reports whether it succeeded
func (b *Builder) Test(ctx context.Context, workdir string) bool {
	return b.run(ctx, workdir, b.testTimeout, "clean", "test")
}

// OutputDir returns Maven's build output directory
func (b *Builder) OutputDir(workdir string) string {
	return filepath.Join(workdir, "target")
}

func (b *Builder) run(ctx context.Context, workdir string, timeout time.Duration, goals ...string) bool {
	args := append([]string{"-B", "-q"}, goals...)

	result, err := b.runner.Run(ctx, ports.Command{
		Name:    b.binary,
		Args:    args,
		Dir:     workdir,
		Timeout: timeout,
	})
	if err != nil {
		logging.Logger.Error("Failed to run Maven", "error", err, "workdir", workdir, "goals", goals)
		return false
	}

	if result.TimedOut {
		logging.Logger.Warn("Maven timed out", "workdir", workdir, "goals", goals, "timeout", timeout)
		return false
	}

	if result.ExitCode != 0 {
		logging.Logger.Info("Maven build failed",
			"workdir", workdir,
			"goals", goals,
			"exit_code", result.ExitCode,
			"stdout", tail(result.Stdout),
			"stderr", tail(result.Stderr))
		return false
	}

	logging.Logger.Debug("Maven build succeeded", "workdir", workdir, "goals", goals, "duration", result.Duration)
	return true
}

// tail keeps the end of a build log, where Maven prints the failure summary
func tail(output []byte) string {
	const max = 4096
	if len(output) > max {
		output = output[len(output)-max:]
	}
	return string(output)
}

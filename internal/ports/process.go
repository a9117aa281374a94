package ports

import (
	"context"
	"time"
)

// Command describes one external process invocation
type Command struct {
	Args    []string
	Dir     string
	Env     []string
	Name    string
	Timeout time.Duration // zero means no timeout
}

// ProcessResult is what an external process left behind
type ProcessResult struct {
	Duration time.Duration // wall-clock time of the process alone
	ExitCode int
	Stderr   []byte
	Stdout   []byte
	TimedOut bool
}

// ProcessRunner runs external processes synchronously.
// A non-zero exit code is not an error; an error means the process could not be started.
type ProcessRunner interface {
	Run(ctx context.Context, cmd Command) (ProcessResult, error)
}

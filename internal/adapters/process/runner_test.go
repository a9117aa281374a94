//go:build unix

package process

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/mergebench/internal/ports"
)

func TestRun_CapturesOutputAndExitCode(t *testing.T) {
	r := NewRunner()

	result, err := r.Run(context.Background(), ports.Command{
		Name: "sh",
		Args: []string{"-c", "echo out; echo err >&2; exit 3"},
	})

	require.NoError(t, err)
	assert.Equal(t, 3, result.ExitCode)
	assert.Equal(t, "out\n", string(result.Stdout))
	assert.Equal(t, "err\n", string(result.Stderr))
	assert.False(t, result.TimedOut)
}

func TestRun_UsesDirAndEnv(t *testing.T) {
	r := NewRunner()
	dir := t.TempDir()

	result, err := r.Run(context.Background(), ports.Command{
		Name: "sh",
		Args: []string{"-c", "pwd; echo $MERGEBENCH_RUNNER_ENV"},
		Dir:  dir,
		Env:  []string{"MERGEBENCH_RUNNER_ENV=yes"},
	})

	require.NoError(t, err)
	assert.Equal(t, 0, result.ExitCode)
	assert.Contains(t, string(result.Stdout), "yes")
}

func TestRun_DoesNotWaitForPipeHolders(t *testing.T) {
	defer func(d time.Duration) { pipeDrainDelay = d }(pipeDrainDelay)
	pipeDrainDelay = 200 * time.Millisecond
	r := NewRunner()

	start := time.Now()
	result, err := r.Run(context.Background(), ports.Command{
		Name: "sh",
		Args: []string{"-c", "sleep 5 & echo merged"},
	})

	require.NoError(t, err)
	assert.Equal(t, 0, result.ExitCode)
	assert.Equal(t, "merged\n", string(result.Stdout))
	assert.Less(t, time.Since(start), 3*time.Second)
}

func TestRun_TimeoutKillsProcessGroup(t *testing.T) {
	r := NewRunner()

	start := time.Now()
	// The child forks a grandchild that would outlive a plain Kill
	result, err := r.Run(context.Background(), ports.Command{
		Name:    "sh",
		Args:    []string{"-c", "sleep 30 & wait"},
		Timeout: 200 * time.Millisecond,
	})

	require.NoError(t, err)
	assert.True(t, result.TimedOut)
	assert.Equal(t, -1, result.ExitCode)
	assert.Less(t, time.Since(start), 10*time.Second)
}

func TestRun_ContextCancelled(t *testing.T) {
	r := NewRunner()
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	_, err := r.Run(ctx, ports.Command{Name: "sleep", Args: []string{"30"}})

	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestRun_MissingBinary(t *testing.T) {
	r := NewRunner()

	_, err := r.Run(context.Background(), ports.Command{Name: "definitely-not-a-binary-mergebench"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to start")
}

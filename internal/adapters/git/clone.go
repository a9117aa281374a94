package git

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/renato0307/mergebench/internal/logging"
	"github.com/renato0307/mergebench/internal/ports"
)

// CloneWorkspace makes a private clone of origin in a new directory under
// baseDir. Merge driver definitions from the origin's local configuration
// are copied so that drivers configured per repository keep working.
// The returned cleanup function removes the clone.
func CloneWorkspace(ctx context.Context, origin, baseDir string) (*CLIWorkspace, func(), error) {
	if baseDir != "" {
		if err := os.MkdirAll(baseDir, 0755); err != nil {
			return nil, nil, fmt.Errorf("failed to create clone base directory: %w", err)
		}
	}

	dir, err := os.MkdirTemp(baseDir, "mergebench-worker-")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create clone directory: %w", err)
	}
	cleanup := func() {
		if err := os.RemoveAll(dir); err != nil {
			logging.Logger.Warn("Failed to remove worker clone", "error", err, "dir", dir)
		}
	}

	if err := cloneRepository(ctx, origin, dir, ""); err != nil {
		cleanup()
		return nil, nil, err
	}

	if err := copyMergeConfig(ctx, origin, dir); err != nil {
		cleanup()
		return nil, nil, err
	}

	return &CLIWorkspace{dir: dir}, cleanup, nil
}

// NewWorkspaceFactory returns a ports.WorkspaceFactory producing one
// private clone of origin per worker
func NewWorkspaceFactory(origin, baseDir string) ports.WorkspaceFactory {
	return func(ctx context.Context, workerID int) (ports.Workspace, func(), error) {
		logging.Logger.Debug("Creating worker workspace", "worker", workerID, "origin", origin)
		ws, cleanup, err := CloneWorkspace(ctx, origin, baseDir)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create workspace for worker %d: %w", workerID, err)
		}
		return ws, cleanup, nil
	}
}

func copyMergeConfig(ctx context.Context, origin, target string) error {
	cmd := exec.CommandContext(ctx, "git", "config", "--local", "--get-regexp", `^merge\.`)
	cmd.Dir = origin
	output, err := cmd.Output()
	if err != nil {
		// Exit status 1: nothing configured
		return nil
	}

	for _, line := range strings.Split(strings.TrimSpace(string(output)), "\n") {
		key, value, ok := strings.Cut(line, " ")
		if !ok {
			continue
		}
		set := exec.CommandContext(ctx, "git", "config", "--local", key, value)
		set.Dir = target
		if out, err := set.CombinedOutput(); err != nil {
			return fmt.Errorf("failed to copy config %s: %w\nOutput: %s", key, err, string(out))
		}
	}
	return nil
}

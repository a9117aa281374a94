package git

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/renato0307/mergebench/internal/domain"
	"github.com/renato0307/mergebench/internal/logging"
	"github.com/renato0307/mergebench/internal/ports"
)

// CLIWorkspace implements ports.Workspace by shelling out to git.
// Only one goroutine may use a CLIWorkspace at a time.
type CLIWorkspace struct {
	dir string
}

// Compile-time interface verification
var _ ports.Workspace = (*CLIWorkspace)(nil)

// NewCLIWorkspace wraps an existing working tree
func NewCLIWorkspace(dir string) (*CLIWorkspace, error) {
	isGit, root := isGitRepo(dir)
	if !isGit {
		return nil, fmt.Errorf("%w: %s", domain.ErrRepositoryNotFound, dir)
	}
	return &CLIWorkspace{dir: root}, nil
}

// Dir returns the working tree root
func (w *CLIWorkspace) Dir() string {
	return w.dir
}

// Save captures the current HEAD (branch name if attached) and status
func (w *CLIWorkspace) Save(ctx context.Context) (ports.WorkspaceState, error) {
	head, err := w.git(ctx, "symbolic-ref", "--short", "-q", "HEAD")
	if err != nil {
		// Detached HEAD
		head, err = w.git(ctx, "rev-parse", "HEAD")
		if err != nil {
			return ports.WorkspaceState{}, fmt.Errorf("failed to read HEAD: %w", err)
		}
	}

	status, err := w.git(ctx, "status", "--porcelain", "--untracked-files=no")
	if err != nil {
		return ports.WorkspaceState{}, fmt.Errorf("failed to read status: %w", err)
	}

	return ports.WorkspaceState{
		Head:   strings.TrimSpace(head),
		Status: strings.TrimSpace(status),
	}, nil
}

// EnsureClean fails with domain.ErrDirtyWorkspace when tracked files have
// uncommitted changes
func (w *CLIWorkspace) EnsureClean(ctx context.Context) error {
	state, err := w.Save(ctx)
	if err != nil {
		return err
	}
	if state.Status != "" {
		logging.Logger.Error("Workspace is dirty", "dir", w.dir, "status", state.Status)
		return fmt.Errorf("%w: %s", domain.ErrDirtyWorkspace, w.dir)
	}
	return nil
}

// Checkout force-checks out rev (detached for commit hashes) and removes
// untracked files left by a previous build
func (w *CLIWorkspace) Checkout(ctx context.Context, rev string) error {
	logging.Logger.Debug("Checking out revision", "dir", w.dir, "rev", rev)

	if _, err := w.git(ctx, "-c", "advice.detachedHead=false", "checkout", "--force", "--quiet", rev); err != nil {
		return fmt.Errorf("failed to checkout %s: %w", rev, err)
	}
	if _, err := w.git(ctx, "clean", "-fdxq"); err != nil {
		return fmt.Errorf("failed to clean working tree: %w", err)
	}
	return nil
}

// Restore aborts any merge in progress, discards all changes and returns
// to the saved HEAD. Every step runs even when an earlier one fails.
func (w *CLIWorkspace) Restore(ctx context.Context, state ports.WorkspaceState) error {
	logging.Logger.Debug("Restoring workspace", "dir", w.dir, "head", state.Head)

	// Fails harmlessly when no merge is in progress
	if _, err := w.git(ctx, "merge", "--abort"); err != nil {
		logging.Logger.Debug("No merge to abort", "dir", w.dir)
	}

	var errs []error
	if _, err := w.git(ctx, "reset", "--hard", "--quiet"); err != nil {
		errs = append(errs, fmt.Errorf("failed to reset: %w", err))
	}
	if _, err := w.git(ctx, "clean", "-fdxq"); err != nil {
		errs = append(errs, fmt.Errorf("failed to clean: %w", err))
	}
	if state.Head != "" {
		if _, err := w.git(ctx, "-c", "advice.detachedHead=false", "checkout", "--force", "--quiet", state.Head); err != nil {
			errs = append(errs, fmt.Errorf("failed to checkout %s: %w", state.Head, err))
		}
	}

	if err := errors.Join(errs...); err != nil {
		logging.Logger.Error("Failed to restore workspace", "error", err, "dir", w.dir)
		return err
	}
	return nil
}

// AutoMergeTree computes the tree git would produce for an unassisted merge
// of left and right over base, without touching the working tree
func (w *CLIWorkspace) AutoMergeTree(ctx context.Context, base, left, right string) (ports.AutoMerge, error) {
	cmd := exec.CommandContext(ctx, "git", "merge-tree", "--write-tree", "--merge-base="+base, left, right)
	cmd.Dir = w.dir

	output, err := cmd.Output()
	treeHash := firstLine(string(output))

	if err != nil {
		var exitErr *exec.ExitError
		// Exit status 1 means the merge has conflicts; the tree is still written
		if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 && treeHash != "" {
			return ports.AutoMerge{Clean: false, TreeHash: treeHash}, nil
		}
		return ports.AutoMerge{}, fmt.Errorf("failed to run merge-tree: %w", err)
	}

	return ports.AutoMerge{Clean: true, TreeHash: treeHash}, nil
}

// MergeNoCommit checks out left (detached) and merges right without
// committing, using driver for every path matching pattern. The driver
// must be defined in the git configuration; an empty driver uses git's
// own merge. The attribute file is restored before returning, the merge
// state is left for the caller to inspect and Restore.
func (w *CLIWorkspace) MergeNoCommit(ctx context.Context, left, right, driver, pattern string) (bool, error) {
	logging.Logger.Info("Replaying merge", "dir", w.dir, "left", left, "right", right, "driver", driver)

	if err := w.Checkout(ctx, left); err != nil {
		return false, err
	}

	if driver != "" {
		restoreAttrs, err := w.writeMergeAttributes(ctx, driver, pattern)
		if err != nil {
			return false, err
		}
		defer restoreAttrs()
	}

	cmd := exec.CommandContext(ctx, "git", "merge", "--no-commit", "--no-ff", right)
	cmd.Dir = w.dir
	output, mergeErr := cmd.CombinedOutput()
	if mergeErr != nil {
		var exitErr *exec.ExitError
		if !errors.As(mergeErr, &exitErr) {
			return false, fmt.Errorf("failed to run merge: %w\nOutput: %s", mergeErr, string(output))
		}
		logging.Logger.Debug("Merge exited non-zero", "exit_code", exitErr.ExitCode(), "output", string(output))
	}

	unmerged, err := w.git(ctx, "diff", "--name-only", "--diff-filter=U")
	if err != nil {
		return false, fmt.Errorf("failed to list unmerged paths: %w", err)
	}

	return mergeErr == nil && strings.TrimSpace(unmerged) == "", nil
}

// writeMergeAttributes routes pattern to driver through info/attributes,
// which is local to the clone and never committed
func (w *CLIWorkspace) writeMergeAttributes(ctx context.Context, driver, pattern string) (func(), error) {
	gitDir, err := w.git(ctx, "rev-parse", "--absolute-git-dir")
	if err != nil {
		return nil, fmt.Errorf("failed to locate git dir: %w", err)
	}

	attrPath := filepath.Join(strings.TrimSpace(gitDir), "info", "attributes")
	original, readErr := os.ReadFile(attrPath)
	existed := readErr == nil

	if err := os.MkdirAll(filepath.Dir(attrPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create info dir: %w", err)
	}

	content := fmt.Sprintf("%s merge=%s\n", pattern, driver)
	if err := os.WriteFile(attrPath, []byte(content), 0644); err != nil {
		return nil, fmt.Errorf("failed to write attributes: %w", err)
	}

	return func() {
		var err error
		if existed {
			err = os.WriteFile(attrPath, original, 0644)
		} else {
			err = os.Remove(attrPath)
		}
		if err != nil {
			logging.Logger.Error("Failed to restore attributes", "error", err, "path", attrPath)
		}
	}, nil
}

func (w *CLIWorkspace) git(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = w.dir

	output, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("git %s: %w\nOutput: %s", strings.Join(args, " "), err, string(output))
	}
	return string(output), nil
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(s), "\n")
	return strings.TrimSpace(line)
}

// isGitRepo checks if the given path is within a git repository
// Returns true and the repository root path if it is, false and empty string otherwise
func isGitRepo(path string) (bool, string) {
	logging.Logger.Debug("Checking if directory is git repo", "path", path)

	cmd := exec.Command("git", "rev-parse", "--show-toplevel")
	cmd.Dir = path

	output, err := cmd.Output()
	if err != nil {
		logging.Logger.Debug("Not a git repository", "path", path)
		return false, ""
	}

	repoRoot := strings.TrimSpace(string(output))
	logging.Logger.Debug("Found git repository", "repo_root", repoRoot)
	return true, repoRoot
}

package harness

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// TestGitRepo is a throwaway repository for building merge histories.
type TestGitRepo struct {
	Path string
	tb   testing.TB
}

// NewTestGitRepo creates a repository on branch main with an initial commit.
//
// Setup structure:
//
//	tb.TempDir()/
//	└── repo/   <- git init, README.md committed on main
func NewTestGitRepo(tb testing.TB) *TestGitRepo {
	tb.Helper()

	path := filepath.Join(tb.TempDir(), "repo")
	runGitCommand(tb, filepath.Dir(path), "init", path)
	runGitCommand(tb, path, "config", "user.email", "test@example.com")
	runGitCommand(tb, path, "config", "user.name", "Test User")

	r := &TestGitRepo{Path: path, tb: tb}
	r.Commit("Initial commit", map[string]string{"README.md": "# Test Repo\n"})

	// Ensure branch is named "main" (git might default to "master")
	runGitCommand(tb, path, "branch", "-M", "main")
	return r
}

// Commit writes files and commits them, returning the commit hash.
func (r *TestGitRepo) Commit(message string, files map[string]string) string {
	r.tb.Helper()

	for name, content := range files {
		path := filepath.Join(r.Path, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			r.tb.Fatalf("Failed to create directory for %s: %v", name, err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			r.tb.Fatalf("Failed to write %s: %v", name, err)
		}
		runGitCommand(r.tb, r.Path, "add", name)
	}
	runGitCommand(r.tb, r.Path, "commit", "--allow-empty", "-m", message)
	return r.RevParse("HEAD")
}

// Checkout switches to rev, creating the branch first when create is set.
func (r *TestGitRepo) Checkout(rev string, create bool) {
	r.tb.Helper()
	if create {
		runGitCommand(r.tb, r.Path, "checkout", "-b", rev)
		return
	}
	runGitCommand(r.tb, r.Path, "checkout", rev)
}

// RevParse resolves rev to a commit hash.
func (r *TestGitRepo) RevParse(rev string) string {
	r.tb.Helper()
	return strings.TrimSpace(gitOutput(r.tb, r.Path, "rev-parse", rev))
}

// ConflictingMerge creates a merge commit whose parents both change the
// same line of path. The merge is resolved with resolved, and the hash of
// the merge commit is returned.
func (r *TestGitRepo) ConflictingMerge(path, base, left, right, resolved string) string {
	r.tb.Helper()

	r.Commit("Add "+path, map[string]string{path: base})

	branch := "feature-" + strings.ReplaceAll(filepath.Base(path), ".", "-")
	r.Checkout(branch, true)
	r.Commit("Change "+path+" on "+branch, map[string]string{path: right})

	r.Checkout("main", false)
	r.Commit("Change "+path+" on main", map[string]string{path: left})

	// The merge stops on the conflict; resolve and commit by hand
	cmd := exec.Command("git", "merge", "--no-ff", "--no-edit", branch)
	cmd.Dir = r.Path
	_ = cmd.Run()

	if err := os.WriteFile(filepath.Join(r.Path, path), []byte(resolved), 0644); err != nil {
		r.tb.Fatalf("Failed to resolve %s: %v", path, err)
	}
	runGitCommand(r.tb, r.Path, "add", path)
	runGitCommand(r.tb, r.Path, "commit", "--no-edit")
	return r.RevParse("HEAD")
}

// CleanMerge creates a merge commit whose parents change different files
// and returns its hash.
func (r *TestGitRepo) CleanMerge(leftFile, rightFile string) string {
	r.tb.Helper()

	branch := "feature-" + strings.ReplaceAll(filepath.Base(rightFile), ".", "-")
	r.Checkout(branch, true)
	r.Commit("Add "+rightFile, map[string]string{rightFile: "right\n"})

	r.Checkout("main", false)
	r.Commit("Add "+leftFile, map[string]string{leftFile: "left\n"})

	runGitCommand(r.tb, r.Path, "merge", "--no-ff", "--no-edit", branch)
	return r.RevParse("HEAD")
}

// RunGitCommand executes a git command in the specified directory (exported for tests).
func RunGitCommand(tb testing.TB, dir string, args ...string) {
	runGitCommand(tb, dir, args...)
}

// runGitCommand executes a git command in the specified directory.
func runGitCommand(tb testing.TB, dir string, args ...string) {
	tb.Helper()
	gitOutput(tb, dir, args...)
}

// gitOutput executes a git command and returns its combined output.
func gitOutput(tb testing.TB, dir string, args ...string) string {
	tb.Helper()

	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(),
		"GIT_AUTHOR_NAME=Test User",
		"GIT_AUTHOR_EMAIL=test@example.com",
		"GIT_COMMITTER_NAME=Test User",
		"GIT_COMMITTER_EMAIL=test@example.com",
	)

	output, err := cmd.CombinedOutput()
	if err != nil {
		tb.Fatalf("git %v failed in %s: %v\nOutput: %s", args, dir, err, output)
	}
	return string(output)
}

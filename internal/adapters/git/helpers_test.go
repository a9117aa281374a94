package git

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// testRepo is a throwaway repository driven through the git CLI
type testRepo struct {
	t   *testing.T
	dir string
}

// setupTestRepo creates a git repo with initial commit for testing
func setupTestRepo(t *testing.T) *testRepo {
	t.Helper()
	r := &testRepo{t: t, dir: t.TempDir()}

	// Merges run by the code under test need an identity too
	t.Setenv("GIT_AUTHOR_NAME", "Test")
	t.Setenv("GIT_AUTHOR_EMAIL", "test@test.com")
	t.Setenv("GIT_COMMITTER_NAME", "Test")
	t.Setenv("GIT_COMMITTER_EMAIL", "test@test.com")

	r.git("init", "-b", "main")
	r.git("config", "user.email", "test@test.com")
	r.git("config", "user.name", "Test")

	r.write("README.md", "# Test\n")
	r.commit("Initial commit")

	return r
}

func (r *testRepo) git(args ...string) string {
	r.t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = r.dir
	cmd.Env = append(os.Environ(),
		"GIT_AUTHOR_NAME=Test",
		"GIT_AUTHOR_EMAIL=test@test.com",
		"GIT_COMMITTER_NAME=Test",
		"GIT_COMMITTER_EMAIL=test@test.com",
	)
	out, err := cmd.CombinedOutput()
	require.NoError(r.t, err, "git %v failed: %s", args, out)
	return strings.TrimSpace(string(out))
}

func (r *testRepo) write(path, content string) {
	r.t.Helper()
	full := filepath.Join(r.dir, path)
	require.NoError(r.t, os.MkdirAll(filepath.Dir(full), 0755))
	require.NoError(r.t, os.WriteFile(full, []byte(content), 0644))
}

func (r *testRepo) commit(msg string) string {
	r.t.Helper()
	r.git("add", "-A")
	r.git("commit", "-q", "-m", msg)
	return r.git("rev-parse", "HEAD")
}

// mergeHistory holds the commits of a single conflicting merge
type mergeHistory struct {
	base, left, right, merge string
}

// setupConflictingMerge builds main (left) and feature (right) branches that
// both edit the first line of src/App.java, then records a manual resolution
func setupConflictingMerge(t *testing.T) (*testRepo, mergeHistory) {
	t.Helper()
	r := setupTestRepo(t)

	r.write("src/App.java", "class App {\n  int a = 1;\n}\n")
	r.write("src/Util.java", "class Util {}\n")
	base := r.commit("base")

	r.git("checkout", "-q", "-b", "feature")
	r.write("src/App.java", "class App {\n  int a = 2;\n}\n")
	right := r.commit("feature edit")

	r.git("checkout", "-q", "main")
	r.write("src/App.java", "class App {\n  int a = 3;\n}\n")
	left := r.commit("main edit")

	cmd := exec.Command("git", "merge", "--no-ff", "feature")
	cmd.Dir = r.dir
	_ = cmd.Run() // conflicts

	r.write("src/App.java", "class App {\n  int a = 5;\n}\n")
	merge := r.commit("merge feature")

	return r, mergeHistory{base: base, left: left, right: right, merge: merge}
}

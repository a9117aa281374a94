package integration_test

import (
	"testing"

	"github.com/renato0307/mergebench/test/integration/harness"
)

const (
	calcBase     = "class Calc {\n    int x = 1;\n}\n"
	calcLeft     = "class Calc {\n    int x = 2;\n}\n"
	calcRight    = "class Calc {\n    int x = 3;\n}\n"
	calcResolved = "class Calc {\n    int x = 5;\n}\n"
)

// mergeHistory builds a repository with one conflicting and one clean merge
type mergeHistory struct {
	clean       string
	conflicting string
	repo        *harness.TestGitRepo
}

func newMergeHistory(t *testing.T) mergeHistory {
	t.Helper()

	repo := harness.NewTestGitRepo(t)
	conflicting := repo.ConflictingMerge("src/Calc.java", calcBase, calcLeft, calcRight, calcResolved)
	clean := repo.CleanMerge("docs/left.md", "docs/right.md")

	return mergeHistory{clean: clean, conflicting: conflicting, repo: repo}
}

// takeLeft is a merge tool that always answers with the left revision
func takeLeft(env *harness.TestEnvironment, dir string) string {
	return env.WriteScript(dir+"/take-left.sh", `cp "$1" "$5"`+"\n")
}

// alwaysConflict is a merge tool that always reports a conflict
func alwaysConflict(env *harness.TestEnvironment, dir string) string {
	return env.WriteScript(dir+"/take-left.sh", `printf '<<<<<<< LEFT\nleft\n=======\nright\n>>>>>>> RIGHT\n' > "$5"`+"\nexit 1\n")
}

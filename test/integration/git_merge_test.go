package integration_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/renato0307/mergebench/test/integration/harness"
)

func TestGitMerge(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	history := newMergeHistory(t)
	commits := env.WriteFile("merges.txt", history.conflicting+"\n"+history.clean+"\n")
	env.SetEnv("GIT_COMMITTER_NAME", "Test User")
	env.SetEnv("GIT_COMMITTER_EMAIL", "test@example.com")

	result := harness.RunCommand(t, env, "git-merge", history.repo.Path,
		"--merge-commits", commits,
		"--merge-drivers", "text",
		"-o", env.Path("git_results.csv"))

	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "2 git merge results")

	results := env.ReadFile("git_results.csv")
	assert.Contains(t, results, history.conflicting)
	assert.Contains(t, results, history.clean)
	assert.Contains(t, results, "text")
}

func TestRuntimeBenchmark(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	history := newMergeHistory(t)
	tool := takeLeft(env, "tools")

	harness.AssertSuccess(t, harness.RunCommand(t, env, "extract-file-merge-metainfo", history.repo.Path,
		"-o", env.Path("metainfo.csv")))

	result := harness.RunCommand(t, env, "runtime-benchmark", history.repo.Path,
		"--file-merge-metainfo", env.Path("metainfo.csv"),
		"--merge-commands", tool,
		"--num-runs", "3",
		"--base-merge-dir", env.Path("bench_dirs"),
		"-o", env.Path("runtimes.csv"))

	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "3 runtime samples")
	assert.Contains(t, env.ReadFile("runtimes.csv"), history.conflicting)
}

package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/mergebench/internal/domain"
)

func TestReadNonEmptyLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "merges.txt")
	require.NoError(t, os.WriteFile(path, []byte("abc\n\n  def  \n\nghi"), 0644))

	lines, err := readNonEmptyLines(path)

	require.NoError(t, err)
	assert.Equal(t, []string{"abc", "def", "ghi"}, lines)
}

func TestReadNonEmptyLines_MissingFile(t *testing.T) {
	_, err := readNonEmptyLines(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
}

func TestMineFlagsOptions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "merges.txt")
	require.NoError(t, os.WriteFile(path, []byte("m1\nm2\n"), 0644))

	opts, err := MineFlags{Buildable: true, MergeCommits: path, NonTrivial: true}.options()

	require.NoError(t, err)
	assert.Equal(t, []string{"m1", "m2"}, opts.AllowList)
	assert.True(t, opts.Buildable)
	assert.True(t, opts.NonTrivial)
	assert.False(t, opts.Testable)
}

func TestTruncate(t *testing.T) {
	items := []int{1, 2, 3}

	assert.Equal(t, []int{1, 2}, truncate(items, 2))
	assert.Equal(t, items, truncate(items, 0))
	assert.Equal(t, items, truncate(items, 5))
}

func TestMergeCommands(t *testing.T) {
	cmds, err := mergeCommands(nil, []string{"spork"})
	require.NoError(t, err)
	assert.Equal(t, []string{"spork"}, cmds)

	cmds, err = mergeCommands([]string{"jdime"}, []string{"spork"})
	require.NoError(t, err)
	assert.Equal(t, []string{"jdime"}, cmds)

	_, err = mergeCommands(nil, nil)
	require.Error(t, err)
}

func TestFirstNonEmpty(t *testing.T) {
	assert.Equal(t, "b", firstNonEmpty("", "b", "c"))
	assert.Equal(t, "", firstNonEmpty("", ""))
}

func TestRenderStatistics(t *testing.T) {
	assert.Equal(t, "No evaluations found.", renderStatistics(nil))

	out := renderStatistics([]domain.MergeEvaluationStatistics{{
		GitDiffAvgAcc:  0.75,
		GitDiffAvgMagn: 2.5,
		MergeCmd:       "spork",
		NumFileMerges:  4,
		NumSuccess:     3,
		NumConflict:    1,
		Project:        "commons-lang",
	}})

	assert.Contains(t, out, "commons-lang")
	assert.Contains(t, out, "spork")
	assert.Contains(t, out, "0.750")
	assert.Contains(t, out, "2.500")
}

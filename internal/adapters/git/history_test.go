package git

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/mergebench/internal/domain"
	"github.com/renato0307/mergebench/internal/ports"
)

func TestOpenHistory_NotARepository(t *testing.T) {
	_, err := OpenHistory(t.TempDir())

	require.ErrorIs(t, err, domain.ErrRepositoryNotFound)
}

func TestMergeCommits_FindsBinaryMerges(t *testing.T) {
	r, h := setupConflictingMerge(t)

	history, err := OpenHistory(r.dir)
	require.NoError(t, err)

	merges, err := history.MergeCommits(context.Background(), false)
	require.NoError(t, err)

	require.Len(t, merges, 1)
	assert.Equal(t, h.merge, merges[0].Hash)
	assert.Equal(t, []string{h.left, h.right}, merges[0].ParentHashes)
	assert.True(t, merges[0].IsMerge())
}

func TestMergeCommits_AllRefs(t *testing.T) {
	r, _ := setupConflictingMerge(t)

	// A merge only reachable from another branch
	r.git("checkout", "-q", "-b", "side", "HEAD~1")
	r.git("checkout", "-q", "-b", "side-2")
	r.write("side.txt", "x\n")
	r.commit("side-2")
	r.git("checkout", "-q", "side")
	r.write("other.txt", "y\n")
	r.commit("side")
	r.git("merge", "-q", "--no-ff", "-m", "merge side-2", "side-2")
	r.git("checkout", "-q", "main")

	history, err := OpenHistory(r.dir)
	require.NoError(t, err)

	fromHead, err := history.MergeCommits(context.Background(), false)
	require.NoError(t, err)
	all, err := history.MergeCommits(context.Background(), true)
	require.NoError(t, err)

	assert.Len(t, fromHead, 1)
	assert.Len(t, all, 2)
}

func TestMergeBases_SingleBase(t *testing.T) {
	r, h := setupConflictingMerge(t)
	history, err := OpenHistory(r.dir)
	require.NoError(t, err)

	bases, err := history.MergeBases(h.left, h.right)

	require.NoError(t, err)
	assert.Equal(t, []string{h.base}, bases)
}

func TestCommit_ResolvesRefsAndShortHashes(t *testing.T) {
	r, h := setupConflictingMerge(t)
	history, err := OpenHistory(r.dir)
	require.NoError(t, err)

	byRef, err := history.Commit("main")
	require.NoError(t, err)
	assert.Equal(t, h.merge, byRef.Hash)

	byShort, err := history.Commit(h.base[:10])
	require.NoError(t, err)
	assert.Equal(t, h.base, byShort.Hash)
	assert.NotEmpty(t, byShort.TreeHash)

	_, err = history.Commit("does-not-exist")
	assert.Error(t, err)
}

func TestTreeChanges_ModifyAndInsert(t *testing.T) {
	r, h := setupConflictingMerge(t)
	r.write("src/New.java", "class New {}\n")
	added := r.commit("add file")

	history, err := OpenHistory(r.dir)
	require.NoError(t, err)

	changes, err := history.TreeChanges(context.Background(), h.base, h.left, false)
	require.NoError(t, err)
	require.Len(t, changes, 1)
	assert.Equal(t, ports.ChangeModify, changes[0].Action)
	assert.Equal(t, "src/App.java", changes[0].FromPath)
	assert.Equal(t, "src/App.java", changes[0].ToPath)
	assert.NotEqual(t, changes[0].FromHash, changes[0].ToHash)

	changes, err = history.TreeChanges(context.Background(), h.merge, added, false)
	require.NoError(t, err)
	require.Len(t, changes, 1)
	assert.Equal(t, ports.ChangeInsert, changes[0].Action)
	assert.Empty(t, changes[0].FromPath)
	assert.Equal(t, "src/New.java", changes[0].ToPath)
}

func TestTreeChanges_DetectsRenames(t *testing.T) {
	r, h := setupConflictingMerge(t)
	r.git("mv", "src/Util.java", "src/Helpers.java")
	renamed := r.commit("rename")

	history, err := OpenHistory(r.dir)
	require.NoError(t, err)

	changes, err := history.TreeChanges(context.Background(), h.merge, renamed, true)
	require.NoError(t, err)

	require.Len(t, changes, 1)
	assert.Equal(t, ports.ChangeModify, changes[0].Action)
	assert.Equal(t, "src/Util.java", changes[0].FromPath)
	assert.Equal(t, "src/Helpers.java", changes[0].ToPath)
}

func TestFileAt(t *testing.T) {
	r, h := setupConflictingMerge(t)
	history, err := OpenHistory(r.dir)
	require.NoError(t, err)

	blob, ok, err := history.FileAt(h.merge, "src/App.java")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "src/App.java", blob.Path)

	data, err := history.BlobContents(blob.Hash)
	require.NoError(t, err)
	assert.Equal(t, "class App {\n  int a = 5;\n}\n", string(data))

	_, ok, err = history.FileAt(h.merge, "src/Missing.java")
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = history.FileAt(h.merge, "src")
	require.NoError(t, err)
	assert.False(t, ok, "directories are not files")
}

func TestHashBlob_MatchesGitHashObject(t *testing.T) {
	r := setupTestRepo(t)
	r.write("data.txt", "hello\n")

	expected := r.git("hash-object", "data.txt")

	assert.Equal(t, expected, HashBlob([]byte("hello\n")))
}

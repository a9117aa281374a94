package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/renato0307/mergebench/internal/domain"
	"github.com/renato0307/mergebench/internal/ports"
)

// fakeHistory is an in-memory HistoryReader
type fakeHistory struct {
	bases   map[[2]string][]string
	blobs   map[string][]byte
	changes map[[2]string][]ports.TreeChange
	commits map[string]domain.Commit
	files   map[string]map[string]string // commit -> path -> blob hash
	merges  []domain.Commit
}

func newFakeHistory() *fakeHistory {
	return &fakeHistory{
		bases:   make(map[[2]string][]string),
		blobs:   make(map[string][]byte),
		changes: make(map[[2]string][]ports.TreeChange),
		commits: make(map[string]domain.Commit),
		files:   make(map[string]map[string]string),
	}
}

func (h *fakeHistory) addCommit(hash string, parents ...string) domain.Commit {
	c := domain.Commit{Hash: hash, ParentHashes: parents, TreeHash: "tree-" + hash}
	h.commits[hash] = c
	if len(parents) > 1 {
		h.merges = append(h.merges, c)
	}
	return c
}

func (h *fakeHistory) addFile(commit, path, content string) string {
	hash := "blob-" + content
	h.blobs[hash] = []byte(content)
	if h.files[commit] == nil {
		h.files[commit] = make(map[string]string)
	}
	h.files[commit][path] = hash
	return hash
}

// addScenario records a merge commit with a unique merge base
func (h *fakeHistory) addScenario(base, left, right, merge string) domain.MergeScenario {
	b := h.addCommit(base)
	l := h.addCommit(left, base)
	r := h.addCommit(right, base)
	m := h.addCommit(merge, left, right)
	h.bases[[2]string{left, right}] = []string{base}
	return domain.MergeScenario{Base: b, Expected: m, Left: l, Right: r}
}

func (h *fakeHistory) BlobContents(hash string) ([]byte, error) {
	data, ok := h.blobs[hash]
	if !ok {
		return nil, fmt.Errorf("blob %s not found", hash)
	}
	return data, nil
}

func (h *fakeHistory) Commit(hash string) (domain.Commit, error) {
	c, ok := h.commits[hash]
	if !ok {
		return domain.Commit{}, fmt.Errorf("commit %s not found", hash)
	}
	return c, nil
}

func (h *fakeHistory) FileAt(commitHash, path string) (domain.Blob, bool, error) {
	hash, ok := h.files[commitHash][path]
	if !ok {
		return domain.Blob{}, false, nil
	}
	return domain.Blob{Hash: hash, Path: path}, true, nil
}

func (h *fakeHistory) MergeBases(a, b string) ([]string, error) {
	return h.bases[[2]string{a, b}], nil
}

func (h *fakeHistory) MergeCommits(ctx context.Context, allRefs bool) ([]domain.Commit, error) {
	return h.merges, nil
}

func (h *fakeHistory) TreeChanges(ctx context.Context, fromCommit, toCommit string, detectRenames bool) ([]ports.TreeChange, error) {
	if !detectRenames {
		return h.changes[[2]string{fromCommit, toCommit}], nil
	}
	return h.changes[[2]string{fromCommit, toCommit + "+renames"}], nil
}

func (h *fakeHistory) setChanges(from, to string, changes ...ports.TreeChange) {
	h.changes[[2]string{from, to}] = changes
}

func (h *fakeHistory) setRenames(from, to string, changes ...ports.TreeChange) {
	h.changes[[2]string{from, to + "+renames"}] = changes
}

func modify(path string) ports.TreeChange {
	return ports.TreeChange{Action: ports.ChangeModify, FromPath: path, ToPath: path, ToHash: "new-" + path}
}

func deletion(path string) ports.TreeChange {
	return ports.TreeChange{Action: ports.ChangeDelete, FromPath: path}
}

// writeMergeDir creates a merge dir named <root>/<commit>/<name> holding the
// given files
func writeMergeDir(t *testing.T, root, commit, name string, files map[string]string) string {
	t.Helper()
	dir := filepath.Join(root, commit, name)
	require.NoError(t, os.MkdirAll(dir, 0755))
	for file, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, file), []byte(content), 0644))
	}
	return dir
}

func javaMergeDir(t *testing.T, root, commit, name string) string {
	t.Helper()
	return writeMergeDir(t, root, commit, name, map[string]string{
		"Base.java":     "class A {}\n",
		"Left.java":     "class A { int l; }\n",
		"Right.java":    "class A { int r; }\n",
		"Expected.java": "class A { int l; int r; }\n",
	})
}

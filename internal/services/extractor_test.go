package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/mergebench/internal/domain"
	"github.com/renato0307/mergebench/internal/ports"
	portsmocks "github.com/renato0307/mergebench/internal/ports/mocks"
)

// extractionFixture builds a scenario with one file per extraction case
func extractionFixture(t *testing.T) (*fakeHistory, domain.MergeScenario, *portsmocks.MockThreeWayMerger) {
	t.Helper()
	h := newFakeHistory()
	ms := h.addScenario("base", "left", "right", "merge")

	// Conflicting modification, expected at the same path
	h.addFile("base", "src/A.java", "A0")
	aLeft := h.addFile("left", "src/A.java", "A1")
	aRight := h.addFile("right", "src/A.java", "A2")
	h.addFile("merge", "src/A.java", "A3")

	// Same change on both sides
	h.addFile("base", "src/B.java", "B0")
	bLeft := h.addFile("left", "src/B.java", "B1")
	bRight := h.addFile("right", "src/B.java", "B1")

	// Different but compatible changes
	h.addFile("base", "src/C.java", "C0")
	cLeft := h.addFile("left", "src/C.java", "C1")
	cRight := h.addFile("right", "src/C.java", "C2")

	// add/add conflict renamed in the merge commit
	dLeft := h.addFile("left", "src/D.java", "D1")
	dRight := h.addFile("right", "src/D.java", "D2")
	h.addFile("merge", "src/E.java", "D3")

	// Conflicting but gone from the merge commit
	h.addFile("base", "src/F.java", "F0")
	fLeft := h.addFile("left", "src/F.java", "F1")
	fRight := h.addFile("right", "src/F.java", "F2")

	change := func(action ports.ChangeAction, path, hash string) ports.TreeChange {
		from := path
		if action == ports.ChangeInsert {
			from = ""
		}
		return ports.TreeChange{Action: action, FromPath: from, ToPath: path, ToHash: hash}
	}
	h.setChanges("base", "left",
		change(ports.ChangeModify, "src/F.java", fLeft),
		change(ports.ChangeModify, "src/A.java", aLeft),
		change(ports.ChangeModify, "src/B.java", bLeft),
		change(ports.ChangeModify, "src/C.java", cLeft),
		change(ports.ChangeInsert, "src/D.java", dLeft),
		change(ports.ChangeModify, "README.md", "readme-left"))
	h.setChanges("base", "right",
		change(ports.ChangeModify, "src/A.java", aRight),
		change(ports.ChangeModify, "src/B.java", bRight),
		change(ports.ChangeModify, "src/C.java", cRight),
		change(ports.ChangeInsert, "src/D.java", dRight),
		change(ports.ChangeModify, "src/F.java", fRight),
		deletion("src/Gone.java"))
	h.setRenames("left", "merge",
		ports.TreeChange{Action: ports.ChangeModify, FromPath: "src/D.java", ToPath: "src/E.java"},
		ports.TreeChange{Action: ports.ChangeDelete, FromPath: "src/F.java"})

	merger := portsmocks.NewMockThreeWayMerger(t)
	merger.EXPECT().Conflicts(mock.Anything, []byte("A0"), []byte("A1"), []byte("A2")).Return(1, nil)
	merger.EXPECT().Conflicts(mock.Anything, []byte("C0"), []byte("C1"), []byte("C2")).Return(0, nil)
	merger.EXPECT().Conflicts(mock.Anything, mock.Anything, []byte("D1"), []byte("D2")).Return(2, nil)
	merger.EXPECT().Conflicts(mock.Anything, []byte("F0"), []byte("F1"), []byte("F2")).Return(1, nil)

	return h, ms, merger
}

func TestExtract(t *testing.T) {
	h, ms, merger := extractionFixture(t)

	fileMerges, err := NewFileMergeExtractor(h, merger).Extract(context.Background(), ms)
	require.NoError(t, err)

	require.Len(t, fileMerges, 2)

	a := fileMerges[0]
	assert.Equal(t, "src/A.java", a.Left.Path)
	require.NotNil(t, a.Base)
	assert.Equal(t, domain.Blob{Hash: "blob-A0", Path: "src/A.java"}, *a.Base)
	assert.Equal(t, domain.Blob{Hash: "blob-A3", Path: "src/A.java"}, a.Expected)
	assert.Equal(t, ms, a.Scenario)

	d := fileMerges[1]
	assert.Nil(t, d.Base, "add/add has no base")
	assert.Equal(t, domain.Blob{Hash: "blob-D1", Path: "src/D.java"}, d.Left)
	assert.Equal(t, domain.Blob{Hash: "blob-D2", Path: "src/D.java"}, d.Right)
	assert.Equal(t, domain.Blob{Hash: "blob-D3", Path: "src/E.java"}, d.Expected)
}

func TestExtract_IsDeterministic(t *testing.T) {
	h, ms, merger := extractionFixture(t)
	extractor := NewFileMergeExtractor(h, merger)

	first, err := extractor.Extract(context.Background(), ms)
	require.NoError(t, err)
	second, err := extractor.Extract(context.Background(), ms)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.IsNonDecreasing(t, []string{first[0].Left.Path, first[1].Left.Path})
}

func TestExtract_ConflictingPaths(t *testing.T) {
	h, ms, merger := extractionFixture(t)

	paths, err := NewFileMergeExtractor(h, merger).ConflictingPaths(context.Background(), ms)

	require.NoError(t, err)
	assert.Equal(t, []string{"src/A.java", "src/E.java"}, paths)
}

func TestExtractAll_SkipsFailingScenarios(t *testing.T) {
	h, ms, merger := extractionFixture(t)
	broken := ms
	broken.Expected.Hash = "broken"
	broken.Left.Hash = "unknown-left"
	h.setChanges("base", "unknown-left", modify("src/A.java"))

	fileMerges := NewFileMergeExtractor(h, merger).ExtractAll(context.Background(), []domain.MergeScenario{broken, ms})

	assert.Len(t, fileMerges, 2)
}

func TestFromMetainfo_RoundTrip(t *testing.T) {
	h, ms, merger := extractionFixture(t)
	extractor := NewFileMergeExtractor(h, merger)

	fileMerges, err := extractor.Extract(context.Background(), ms)
	require.NoError(t, err)

	for _, fm := range fileMerges {
		restored, err := extractor.FromMetainfo(domain.NewFileMergeMetainfo(fm))
		require.NoError(t, err)
		assert.Equal(t, fm, restored)
	}
}

func TestWriteMergeDirs(t *testing.T) {
	h, ms, merger := extractionFixture(t)
	extractor := NewFileMergeExtractor(h, merger)

	fileMerges, err := extractor.Extract(context.Background(), ms)
	require.NoError(t, err)

	root := t.TempDir()
	dirs, err := extractor.WriteMergeDirs(root, fileMerges)
	require.NoError(t, err)

	require.Equal(t, []string{
		filepath.Join(root, "merge", "src_A.java"),
		filepath.Join(root, "merge", "src_E.java"),
	}, dirs)

	read := func(dir, name string) string {
		data, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err)
		return string(data)
	}
	assert.Equal(t, "A0", read(dirs[0], "Base.java"))
	assert.Equal(t, "A1", read(dirs[0], "Left.java"))
	assert.Equal(t, "A2", read(dirs[0], "Right.java"))
	assert.Equal(t, "A3", read(dirs[0], "Expected.java"))
	assert.Empty(t, read(dirs[1], "Base.java"))

	for _, dir := range dirs {
		assert.Equal(t, "merge", CommitFromMergeDir(dir))
	}
}

func TestCommitFromMergeDir(t *testing.T) {
	assert.Equal(t, "abc123", CommitFromMergeDir("/tmp/merges/abc123/src_App.java"))
	assert.Equal(t, "abc123", CommitFromMergeDir("/tmp/merges/abc123/src_App.java/"))
}

package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/renato0307/mergebench/internal/domain"
	"github.com/renato0307/mergebench/internal/logging"
	"github.com/renato0307/mergebench/internal/ports"
)

// File name prefixes inside a merge directory
const (
	BasePrefix     = "Base"
	ExpectedPrefix = "Expected"
	LeftPrefix     = "Left"
	RightPrefix    = "Right"
)

// FileMergeExtractor finds the textually conflicting files of merge scenarios
type FileMergeExtractor struct {
	history ports.HistoryReader
	merger  ports.ThreeWayMerger
}

// NewFileMergeExtractor creates a new FileMergeExtractor
func NewFileMergeExtractor(history ports.HistoryReader, merger ports.ThreeWayMerger) *FileMergeExtractor {
	return &FileMergeExtractor{history: history, merger: merger}
}

// Extract returns the conflicting file merges of a scenario, sorted by path.
// Conflicting files without a counterpart in the expected commit are skipped.
func (e *FileMergeExtractor) Extract(ctx context.Context, ms domain.MergeScenario) ([]domain.FileMerge, error) {
	candidates, err := e.candidates(ctx, ms)
	if err != nil {
		return nil, err
	}

	var renames map[string]string
	var fileMerges []domain.FileMerge
	for _, path := range candidates {
		fm, conflicting, err := e.conflict(ctx, ms, path)
		if err != nil {
			return nil, err
		}
		if !conflicting {
			continue
		}

		expected, found, err := e.history.FileAt(ms.Expected.Hash, path)
		if err != nil {
			return nil, err
		}
		if !found {
			if renames == nil {
				if renames, err = e.renames(ctx, ms.Left.Hash, ms.Expected.Hash); err != nil {
					return nil, err
				}
			}
			if target, ok := renames[path]; ok {
				expected, found, err = e.history.FileAt(ms.Expected.Hash, target)
				if err != nil {
					return nil, err
				}
			}
		}
		if !found {
			logging.Logger.Warn("Conflicting file has no expected version, skipping",
				"merge_commit", ms.Expected.Hash, "path", path)
			continue
		}

		fm.Expected = expected
		fileMerges = append(fileMerges, fm)
	}

	logging.Logger.Debug("Extracted file merges", "merge_commit", ms.Expected.Hash, "count", len(fileMerges))
	return fileMerges, nil
}

// ExtractAll extracts the file merges of every scenario in order. Scenarios
// that fail are logged and skipped.
func (e *FileMergeExtractor) ExtractAll(ctx context.Context, scenarios []domain.MergeScenario) []domain.FileMerge {
	var all []domain.FileMerge
	for _, ms := range scenarios {
		if ctx.Err() != nil {
			break
		}
		fms, err := e.Extract(ctx, ms)
		if err != nil {
			logging.Logger.Warn("Failed to extract file merges, skipping", "error", err, "merge_commit", ms.Expected.Hash)
			continue
		}
		all = append(all, fms...)
	}
	return all
}

// ConflictingPaths returns the paths of the scenario's conflicting files in
// the expected commit
func (e *FileMergeExtractor) ConflictingPaths(ctx context.Context, ms domain.MergeScenario) ([]string, error) {
	fms, err := e.Extract(ctx, ms)
	if err != nil {
		return nil, err
	}
	paths := make([]string, 0, len(fms))
	for _, fm := range fms {
		paths = append(paths, fm.Expected.Path)
	}
	return paths, nil
}

// FromMetainfo rebuilds a FileMerge from its flat projection
func (e *FileMergeExtractor) FromMetainfo(m domain.FileMergeMetainfo) (domain.FileMerge, error) {
	resolver := NewScenarioMiner(e.history, nil, nil)
	ms, err := resolver.Resolve(m.Scenario())
	if err != nil {
		return domain.FileMerge{}, err
	}

	fm := domain.FileMerge{
		Expected: domain.Blob{Hash: m.ExpectedBlob, Path: m.ExpectedFilepath},
		Left:     domain.Blob{Hash: m.LeftBlob, Path: m.LeftFilepath},
		Right:    domain.Blob{Hash: m.RightBlob, Path: m.RightFilepath},
		Scenario: ms,
	}
	if m.HasBase() {
		fm.Base = &domain.Blob{Hash: m.BaseBlob, Path: m.BaseFilepath}
	}
	return fm, nil
}

// WriteMergeDirs materializes each file merge as
// <baseDir>/<merge commit>/<flattened path>/ holding Base, Left, Right and
// Expected versions of the file. The base file is empty for add/add.
func (e *FileMergeExtractor) WriteMergeDirs(baseDir string, fileMerges []domain.FileMerge) ([]string, error) {
	dirs := make([]string, 0, len(fileMerges))
	for _, fm := range fileMerges {
		dir := filepath.Join(baseDir, fm.Scenario.Expected.Hash, domain.SanitizePathName(fm.Expected.Path))
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create merge dir: %w", err)
		}

		ext := filepath.Ext(fm.Expected.Path)
		versions := []struct {
			blob   *domain.Blob
			prefix string
		}{
			{fm.Base, BasePrefix},
			{&fm.Left, LeftPrefix},
			{&fm.Right, RightPrefix},
			{&fm.Expected, ExpectedPrefix},
		}
		for _, v := range versions {
			var data []byte
			if v.blob != nil {
				var err error
				if data, err = e.history.BlobContents(v.blob.Hash); err != nil {
					return nil, err
				}
			}
			if err := os.WriteFile(filepath.Join(dir, v.prefix+ext), data, 0644); err != nil {
				return nil, fmt.Errorf("failed to write %s file: %w", v.prefix, err)
			}
		}

		dirs = append(dirs, dir)
	}

	logging.Logger.Info("Wrote merge directories", "base_dir", baseDir, "count", len(dirs))
	return dirs, nil
}

// CommitFromMergeDir recovers the merge commit hash from a merge directory path
func CommitFromMergeDir(dir string) string {
	return filepath.Base(filepath.Dir(filepath.Clean(dir)))
}

// candidates returns the paths changed on both sides to different contents
func (e *FileMergeExtractor) candidates(ctx context.Context, ms domain.MergeScenario) ([]string, error) {
	leftChanges, err := e.history.TreeChanges(ctx, ms.Base.Hash, ms.Left.Hash, false)
	if err != nil {
		return nil, err
	}
	rightChanges, err := e.history.TreeChanges(ctx, ms.Base.Hash, ms.Right.Hash, false)
	if err != nil {
		return nil, err
	}

	left := changedBlobs(leftChanges)
	var paths []string
	for path, rightHash := range changedBlobs(rightChanges) {
		if leftHash, ok := left[path]; ok && leftHash != rightHash {
			paths = append(paths, path)
		}
	}
	sort.Strings(paths)
	return paths, nil
}

// changedBlobs maps modified or added paths to their new blob hash
func changedBlobs(changes []ports.TreeChange) map[string]string {
	blobs := make(map[string]string)
	for _, c := range changes {
		if c.Action == ports.ChangeModify || c.Action == ports.ChangeInsert {
			blobs[c.ToPath] = c.ToHash
		}
	}
	return blobs
}

// conflict runs the three-way merge of path and reports whether it conflicts
func (e *FileMergeExtractor) conflict(ctx context.Context, ms domain.MergeScenario, path string) (domain.FileMerge, bool, error) {
	fm := domain.FileMerge{Scenario: ms}

	var contents [3][]byte
	sides := []struct {
		commit string
		target *domain.Blob
	}{
		{ms.Left.Hash, &fm.Left},
		{ms.Right.Hash, &fm.Right},
	}
	for i, side := range sides {
		blob, found, err := e.history.FileAt(side.commit, path)
		if err != nil {
			return fm, false, err
		}
		if !found {
			return fm, false, fmt.Errorf("changed path %s missing in %s", path, side.commit)
		}
		*side.target = blob
		if contents[i+1], err = e.history.BlobContents(blob.Hash); err != nil {
			return fm, false, err
		}
	}

	base, found, err := e.history.FileAt(ms.Base.Hash, path)
	if err != nil {
		return fm, false, err
	}
	if found {
		fm.Base = &base
		if contents[0], err = e.history.BlobContents(base.Hash); err != nil {
			return fm, false, err
		}
	}

	n, err := e.merger.Conflicts(ctx, contents[0], contents[1], contents[2])
	if err != nil {
		return fm, false, fmt.Errorf("failed to merge %s: %w", path, err)
	}
	return fm, n > 0, nil
}

// renames maps paths of from to their renamed path in to
func (e *FileMergeExtractor) renames(ctx context.Context, from, to string) (map[string]string, error) {
	changes, err := e.history.TreeChanges(ctx, from, to, true)
	if err != nil {
		return nil, err
	}

	renames := make(map[string]string)
	for _, c := range changes {
		if c.FromPath != "" && c.ToPath != "" && c.FromPath != c.ToPath {
			renames[c.FromPath] = c.ToPath
		}
	}
	return renames, nil
}

// findByPrefix returns the single regular file in dir whose name starts with prefix
func findByPrefix(entries []os.DirEntry, dir, prefix string) (string, error) {
	var matches []string
	for _, entry := range entries {
		if entry.Type().IsRegular() && strings.HasPrefix(entry.Name(), prefix) {
			matches = append(matches, entry.Name())
		}
	}
	if len(matches) != 1 {
		return "", fmt.Errorf("expected one %s file in %s, found %d", prefix, dir, len(matches))
	}
	return filepath.Join(dir, matches[0]), nil
}

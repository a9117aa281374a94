package services

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/renato0307/mergebench/internal/domain"
	"github.com/renato0307/mergebench/internal/logging"
	"github.com/renato0307/mergebench/internal/ports"
)

// Evaluator replays file merges and measures the results against the
// expected files
type Evaluator struct {
	differ ports.FileDiffer
	hasher ports.BlobHasher
	replay *ReplayEngine
}

// NewEvaluator creates a new Evaluator
func NewEvaluator(replay *ReplayEngine, hasher ports.BlobHasher, differ ports.FileDiffer) *Evaluator {
	return &Evaluator{differ: differ, hasher: hasher, replay: replay}
}

// Evaluate replays every merge directory with mergeCmd and evaluates the
// output. Directories whose inputs cannot be hashed are logged and dropped.
func (e *Evaluator) Evaluate(ctx context.Context, dirs []string, mergeCmd string) []domain.MergeEvaluation {
	evals := make([]domain.MergeEvaluation, 0, len(dirs))
	for _, result := range e.replay.RunFileMerges(ctx, dirs, mergeCmd) {
		eval, err := e.evaluate(ctx, result)
		if err != nil {
			logging.Logger.Warn("Failed to evaluate merge", "error", err, "dir", result.MergeDir, "cmd", mergeCmd)
			continue
		}
		evals = append(evals, eval)
	}

	logging.Logger.Info("Evaluated file merges", "cmd", mergeCmd, "count", len(evals))
	return evals
}

func (e *Evaluator) evaluate(ctx context.Context, result domain.MergeResult) (domain.MergeEvaluation, error) {
	eval := domain.MergeEvaluation{
		GitDiffSize: -1,
		MergeCmd:    result.MergeCmd,
		MergeCommit: CommitFromMergeDir(result.MergeDir),
		MergeDir:    result.MergeDir,
		Outcome:     result.Outcome,
		Runtime:     result.Runtime.Seconds(),
	}

	inputs := []struct {
		path   string
		target *string
	}{
		{result.BaseFile, &eval.BaseBlob},
		{result.LeftFile, &eval.LeftBlob},
		{result.RightFile, &eval.RightBlob},
		{result.ExpectedFile, &eval.ExpectedBlob},
	}
	for _, input := range inputs {
		if input.path == "" {
			return eval, fmt.Errorf("merge dir %s is incomplete", result.MergeDir)
		}
		hash, err := e.hasher.HashFile(input.path)
		if err != nil {
			return eval, err
		}
		*input.target = hash
	}

	if result.Outcome == domain.OutcomeFail {
		return eval, nil
	}

	merged, err := os.ReadFile(result.MergeFile)
	if err != nil {
		return eval, fmt.Errorf("failed to read merge output: %w", err)
	}
	if eval.ReplayedBlob, err = e.hasher.HashFile(result.MergeFile); err != nil {
		return eval, err
	}
	if eval.GitDiffSize, err = e.differ.DiffSize(ctx, result.ExpectedFile, result.MergeFile); err != nil {
		return eval, err
	}
	eval.NumConflicts = domain.CountConflicts(merged)
	eval.ConflictSize = domain.ConflictSize(merged)
	return eval, nil
}

// GatherBlobMetainfo hashes every input file of the merge directories and
// counts its lines. Each blob is reported once, sorted by hash.
func GatherBlobMetainfo(hasher ports.BlobHasher, dirs []string) ([]domain.JavaBlobMetainfo, error) {
	seen := make(map[string]int)
	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, fmt.Errorf("failed to read merge dir: %w", err)
		}

		for _, prefix := range []string{BasePrefix, LeftPrefix, RightPrefix, ExpectedPrefix} {
			path, err := findByPrefix(entries, dir, prefix)
			if err != nil {
				return nil, err
			}
			data, err := os.ReadFile(path)
			if err != nil {
				return nil, fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
			}
			hash, err := hasher.HashFile(path)
			if err != nil {
				return nil, err
			}
			seen[hash] = countLines(data)
		}
	}

	metainfo := make([]domain.JavaBlobMetainfo, 0, len(seen))
	for hash, lines := range seen {
		metainfo = append(metainfo, domain.JavaBlobMetainfo{Hexsha: hash, NumLines: lines})
	}
	sort.Slice(metainfo, func(i, j int) bool { return metainfo[i].Hexsha < metainfo[j].Hexsha })
	return metainfo, nil
}

// countLines counts lines the way wc -l would, plus an unterminated last line
func countLines(data []byte) int {
	if len(data) == 0 {
		return 0
	}
	n := bytes.Count(data, []byte("\n"))
	if data[len(data)-1] != '\n' {
		n++
	}
	return n
}

package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/renato0307/mergebench/internal/domain"
	"github.com/renato0307/mergebench/internal/logging"
	"github.com/renato0307/mergebench/internal/ports"
)

// DefaultAttributePattern routes Java sources to the merge driver under test
const DefaultAttributePattern = "*.java"

// GitMergeOptions configures a scenario-level replay
type GitMergeOptions struct {
	AttributePattern string
	Build            bool
	Drivers          []string
	Evaluate         bool
}

// conflictLister names the conflicting paths of a scenario
type conflictLister interface {
	ConflictingPaths(ctx context.Context, ms domain.MergeScenario) ([]string, error)
}

// ReplayEngine replays merges with external tools and git merge drivers
type ReplayEngine struct {
	builder   ports.Builder
	conflicts conflictLister
	evaluator ports.BytecodeEvaluator
	tool      ports.MergeTool
}

// NewReplayEngine creates a new ReplayEngine. builder, evaluator and
// conflicts are only needed for scenario-level replays.
func NewReplayEngine(tool ports.MergeTool, builder ports.Builder, evaluator ports.BytecodeEvaluator, conflicts conflictLister) *ReplayEngine {
	return &ReplayEngine{
		builder:   builder,
		conflicts: conflicts,
		evaluator: evaluator,
		tool:      tool,
	}
}

// RunFileMerges replays every merge directory with mergeCmd in order
func (r *ReplayEngine) RunFileMerges(ctx context.Context, dirs []string, mergeCmd string) []domain.MergeResult {
	results := make([]domain.MergeResult, 0, len(dirs))
	for _, dir := range dirs {
		if ctx.Err() != nil {
			break
		}
		results = append(results, r.RunFileMerge(ctx, dir, mergeCmd))
	}
	return results
}

// RunFileMerge replays one merge directory. Tool failures are reported
// through the outcome, never as errors.
func (r *ReplayEngine) RunFileMerge(ctx context.Context, dir, mergeCmd string) domain.MergeResult {
	result := domain.MergeResult{
		MergeCmd: domain.SanitizeMergeCmd(mergeCmd),
		MergeDir: dir,
		Outcome:  domain.OutcomeFail,
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		logging.Logger.Warn("Failed to read merge dir", "error", err, "dir", dir)
		return result
	}

	targets := []struct {
		prefix string
		path   *string
	}{
		{BasePrefix, &result.BaseFile},
		{LeftPrefix, &result.LeftFile},
		{RightPrefix, &result.RightFile},
		{ExpectedPrefix, &result.ExpectedFile},
	}
	for _, target := range targets {
		path, err := findByPrefix(entries, dir, target.prefix)
		if err != nil {
			logging.Logger.Warn("Malformed merge dir", "error", err, "dir", dir)
			return result
		}
		*target.path = path
	}

	result.MergeFile = filepath.Join(dir, result.MergeCmd+filepath.Ext(result.ExpectedFile))
	if err := os.Remove(result.MergeFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		logging.Logger.Warn("Failed to remove stale merge output", "error", err, "file", result.MergeFile)
		return result
	}

	start := time.Now()
	exitCode, err := r.tool.Merge(ctx, mergeCmd, result.LeftFile, result.BaseFile, result.RightFile, result.MergeFile)
	result.Runtime = time.Since(start)

	switch {
	case err != nil:
		logging.Logger.Warn("Merge tool failed", "error", err, "dir", dir, "cmd", mergeCmd)
	case !fileExists(result.MergeFile):
		logging.Logger.Debug("Merge tool wrote no output", "dir", dir, "cmd", mergeCmd)
	case exitCode != 0:
		result.Outcome = domain.OutcomeConflict
	default:
		result.Outcome = domain.OutcomeSuccess
	}

	logging.Logger.Debug("Replayed file merge", "dir", dir, "cmd", mergeCmd, "outcome", result.Outcome, "runtime", result.Runtime)
	return result
}

// RunGitMerges replays every scenario with every driver in ws. Scenarios
// that cannot be evaluated are logged and skipped.
func (r *ReplayEngine) RunGitMerges(ctx context.Context, ws ports.Workspace, scenarios []domain.MergeScenario, opts GitMergeOptions) []domain.GitMergeResult {
	var results []domain.GitMergeResult
	for _, ms := range scenarios {
		if ctx.Err() != nil {
			break
		}
		scenarioResults, err := r.RunGitMerge(ctx, ws, ms, opts)
		if err != nil {
			logMineError(err, ms.Expected.Hash)
			continue
		}
		results = append(results, scenarioResults...)
	}
	return results
}

// RunGitMerge replays one scenario with every driver, one result per driver
func (r *ReplayEngine) RunGitMerge(ctx context.Context, ws ports.Workspace, ms domain.MergeScenario, opts GitMergeOptions) ([]domain.GitMergeResult, error) {
	if opts.AttributePattern == "" {
		opts.AttributePattern = DefaultAttributePattern
	}

	var expected []domain.ExpectedClassfile
	if opts.Evaluate {
		copyDir, err := os.MkdirTemp("", "mergebench-expected-")
		if err != nil {
			return nil, fmt.Errorf("failed to create temp dir: %w", err)
		}
		defer os.RemoveAll(copyDir)

		if expected, err = r.buildExpected(ctx, ws, ms, copyDir); err != nil {
			return nil, err
		}
	}

	results := make([]domain.GitMergeResult, 0, len(opts.Drivers))
	for _, driver := range opts.Drivers {
		result, err := r.runDriver(ctx, ws, ms, driver, opts, expected)
		if err != nil {
			return nil, fmt.Errorf("failed to replay %s with %s: %w", ms.Expected.Hash, driver, err)
		}
		results = append(results, result)
	}
	return results, nil
}

func (r *ReplayEngine) runDriver(ctx context.Context, ws ports.Workspace, ms domain.MergeScenario, driver string, opts GitMergeOptions, expected []domain.ExpectedClassfile) (domain.GitMergeResult, error) {
	result := domain.GitMergeResult{
		BaseCommit:            ms.Base.Hash,
		LeftCommit:            ms.Left.Hash,
		MergeCommit:           ms.Expected.Hash,
		MergeDriver:           driver,
		NumExpectedClassfiles: len(expected),
		RightCommit:           ms.Right.Hash,
	}

	err := scoped(ctx, ws, func() error {
		ok, err := ws.MergeNoCommit(ctx, ms.Left.Hash, ms.Right.Hash, driver, opts.AttributePattern)
		if err != nil {
			return err
		}
		result.MergeOK = ok

		if opts.Build || opts.Evaluate {
			result.BuildOK = r.builder.Compile(ctx, ws.Dir())
		}
		if opts.Evaluate && result.BuildOK {
			result.NumEqualClassfiles = r.evaluator.Evaluate(ctx, r.builder.OutputDir(ws.Dir()), expected)
		}
		return nil
	})
	if err != nil {
		return domain.GitMergeResult{}, err
	}

	logging.Logger.Info("Replayed git merge",
		"merge_commit", ms.Expected.Hash,
		"driver", driver,
		"merge_ok", result.MergeOK,
		"build_ok", result.BuildOK,
		"equal_classfiles", fmt.Sprintf("%d/%d", result.NumEqualClassfiles, result.NumExpectedClassfiles))
	return result, nil
}

// buildExpected compiles the expected revision and copies the classfiles of
// the conflicting Java sources into copyDir
func (r *ReplayEngine) buildExpected(ctx context.Context, ws ports.Workspace, ms domain.MergeScenario, copyDir string) ([]domain.ExpectedClassfile, error) {
	paths, err := r.conflicts.ConflictingPaths(ctx, ms)
	if err != nil {
		return nil, err
	}

	var expected []domain.ExpectedClassfile
	err = withCheckout(ctx, ws, ms.Expected.Hash, func() error {
		if !r.builder.Compile(ctx, ws.Dir()) {
			return fmt.Errorf("%w: %s", domain.ErrExpectedBuildFailed, ms.Expected.Hash)
		}

		outputDir := r.builder.OutputDir(ws.Dir())
		if err := os.CopyFS(copyDir, os.DirFS(outputDir)); err != nil {
			return fmt.Errorf("failed to copy build output: %w", err)
		}

		for _, path := range paths {
			if !strings.HasSuffix(path, ".java") {
				continue
			}
			classfiles, err := r.evaluator.Locate(filepath.Join(ws.Dir(), path), copyDir)
			if err != nil {
				return err
			}
			for _, classfile := range classfiles {
				rel, err := filepath.Rel(copyDir, classfile)
				if err != nil {
					return fmt.Errorf("failed to relativize classfile: %w", err)
				}
				expected = append(expected, domain.ExpectedClassfile{
					CopyAbsPath:     classfile,
					CopyBaseDir:     copyDir,
					OriginalRelPath: rel,
				})
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(expected) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrNoExpectedClassfiles, ms.Expected.Hash)
	}
	return expected, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

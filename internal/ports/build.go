package ports

import (
	"context"

	"github.com/renato0307/mergebench/internal/domain"
)

// Builder runs the project's build tool in a working directory.
// A failed build is reported as false, not as an error.
type Builder interface {
	Compile(ctx context.Context, workdir string) bool
	OutputDir(workdir string) string
	Test(ctx context.Context, workdir string) bool
}

// BuildProbe checks whether a commit builds or passes its tests.
// Implementations must restore the workspace afterwards.
type BuildProbe interface {
	IsBuildable(ctx context.Context, commitHash string) bool
	IsTestable(ctx context.Context, commitHash string) bool
}

// MergeTool invokes an external three-way merge tool as
// `<cmd> <left> <base> <right> -o <output>`
type MergeTool interface {
	Merge(ctx context.Context, mergeCmd, left, base, right, output string) (exitCode int, err error)
}

// BytecodeEvaluator compares compiled artifacts of a replayed build
// against those of the expected revision
type BytecodeEvaluator interface {
	Evaluate(ctx context.Context, replayedDir string, expected []domain.ExpectedClassfile) int
	Locate(sourceFile, outputDir string) ([]string, error)
}

package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/renato0307/mergebench/internal/adapters/csvreport"
	"github.com/renato0307/mergebench/internal/domain"
	"github.com/renato0307/mergebench/internal/logging"
	"github.com/renato0307/mergebench/internal/ports"
	"github.com/renato0307/mergebench/internal/services"
)

// RuntimeBenchmarkCmd measures merge tool runtimes on file merges
type RuntimeBenchmarkCmd struct {
	OutputFlags `embed:""`

	BaseMergeDir      string   `help:"Directory for the merge directories (default: replay.merge_dir)" type:"path"`
	FileMergeMetainfo string   `help:"File merge metainfo CSV selecting the file merges" required:"" type:"existingfile"`
	MergeCommands     []string `help:"Merge commands to benchmark (default: merge.commands)" sep:","`
	NumMerges         int      `help:"Benchmark at most this many file merges (0 = all)"`
	NumRuns           int      `help:"Number of runs per file merge and command" default:"1"`
	Output            string   `help:"CSV file to write the runtimes to" short:"o" required:"" type:"path"`
	Repo              string   `arg:"" help:"Local path or git URL of the repository"`
}

// Run executes the runtime-benchmark command
func (r *RuntimeBenchmarkCmd) Run(cli *CLI) error {
	ctx := context.Background()
	container := cli.Container

	if r.NumRuns < 1 {
		return fmt.Errorf("--num-runs must be at least 1, got %d", r.NumRuns)
	}
	cmds, err := mergeCommands(r.MergeCommands, container.Config.Merge.Commands)
	if err != nil {
		return err
	}

	repoPath, source, err := container.Repository(r.Repo)
	if err != nil {
		return err
	}

	metainfo, err := csvreport.Read(r.FileMergeMetainfo, csvreport.FileMergeMetainfoSchema)
	if err != nil {
		return err
	}

	extractor, err := container.Extractor(repoPath)
	if err != nil {
		return err
	}
	var fileMerges []domain.FileMerge
	for _, m := range metainfo {
		fm, err := extractor.FromMetainfo(m)
		if err != nil {
			logging.Logger.Warn("Skipping file merge", "error", err, "merge_commit", m.MergeCommit, "path", m.ExpectedFilepath)
			continue
		}
		fileMerges = append(fileMerges, fm)
	}

	mergeDir := firstNonEmpty(r.BaseMergeDir, container.Config.Replay.MergeDir)
	if err := os.MkdirAll(mergeDir, 0755); err != nil {
		return fmt.Errorf("failed to create merge directory: %w", err)
	}
	dirs, err := extractor.WriteMergeDirs(mergeDir, fileMerges)
	if err != nil {
		return err
	}
	dirs = truncate(dirs, r.NumMerges)

	benchmark := services.NewRuntimeBenchmark(container.Replay(), container.FileTools)
	results, err := benchmark.Run(ctx, dirs, cmds, r.NumRuns)
	if err != nil {
		return err
	}

	if err := csvreport.Write(r.Output, results, csvreport.RuntimeResultSchema); err != nil {
		return err
	}

	run := domain.Run{Command: "runtime-benchmark", Project: source.Repo}
	err = container.RecordRun(ctx, r.OutputFlags, run, func(w ports.ResultWriter, runID string) error {
		return w.SaveRuntimeResults(ctx, runID, results)
	})
	if err != nil {
		return err
	}

	fmt.Printf("%d runtime samples written to %s\n", len(results), r.Output)
	return container.Publish(ctx, r.PublishBucket, []string{r.Output})
}

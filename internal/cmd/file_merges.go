package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/renato0307/mergebench/internal/adapters/csvreport"
	"github.com/renato0307/mergebench/internal/domain"
	"github.com/renato0307/mergebench/internal/logging"
	"github.com/renato0307/mergebench/internal/ports"
	"github.com/renato0307/mergebench/internal/services"
)

// ErrWorseThanBaseline is returned by merge-and-compare when the new results
// are worse than the baseline
var ErrWorseThanBaseline = errors.New("new results were worse than the baseline")

// ReplayFlags are shared by the commands replaying file merges
type ReplayFlags struct {
	DispatchFlags `embed:""`
	OutputFlags   `embed:""`

	MergeCommands []string `help:"Merge commands to replay with (default: merge.commands)" sep:","`
	MergeDir      string   `help:"Directory for the merge directories (default: replay.merge_dir)" type:"path"`
	NumMerges     int      `help:"Replay at most this many file merges (0 = all)"`
	Output        string   `help:"CSV file to write the evaluations to" short:"o" required:"" type:"path"`
	Repo          string   `arg:"" help:"Local path or git URL of the repository"`
}

// fileMergeRun is everything a file merge replay produced
type fileMergeRun struct {
	dirs        []string
	evaluations []domain.MergeEvaluation
	fileMerges  []domain.FileMerge
	project     string
	scenarios   []domain.MergeScenario
}

// replayFileMerges extracts the file merges of the repository, writes them
// to merge directories and evaluates them with every merge command
func replayFileMerges(ctx context.Context, container *Container, flags ReplayFlags, opts services.MineOptions) (*fileMergeRun, error) {
	cmds, err := mergeCommands(flags.MergeCommands, container.Config.Merge.Commands)
	if err != nil {
		return nil, err
	}

	repoPath, source, err := container.Repository(flags.Repo)
	if err != nil {
		return nil, err
	}

	fileMerges, scenarios, err := extractFileMerges(ctx, container, repoPath, opts)
	if err != nil {
		return nil, err
	}
	fileMerges = truncate(fileMerges, flags.NumMerges)

	mergeDir := flags.MergeDir
	if mergeDir == "" {
		mergeDir = container.Config.Replay.MergeDir
	}
	if err := os.MkdirAll(mergeDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create merge directory: %w", err)
	}

	extractor, err := container.Extractor(repoPath)
	if err != nil {
		return nil, err
	}
	dirs, err := extractor.WriteMergeDirs(mergeDir, fileMerges)
	if err != nil {
		return nil, err
	}

	dispatcher, err := container.Dispatcher(ctx, flags.DispatchFlags)
	if err != nil {
		return nil, err
	}

	logging.Logger.Info("Replaying file merges", "commands", cmds, "merge_dirs", len(dirs))
	evals, err := dispatcher.EvaluateFileMerges(ctx, dirs, cmds)
	if err != nil {
		return nil, err
	}

	return &fileMergeRun{
		dirs:        dirs,
		evaluations: evals,
		fileMerges:  fileMerges,
		project:     source.Repo,
		scenarios:   scenarios,
	}, nil
}

// record stores the scenarios and evaluations of the run
func (r *fileMergeRun) record(ctx context.Context, container *Container, flags ReplayFlags, command string) error {
	run := domain.Run{Command: command, ID: flags.RunID, Project: r.project}
	return container.RecordRun(ctx, flags.OutputFlags, run, func(w ports.ResultWriter, runID string) error {
		serialized := make([]domain.SerializableMergeScenario, len(r.scenarios))
		for i, ms := range r.scenarios {
			serialized[i] = ms.ToSerializable()
		}
		if err := w.SaveScenarios(ctx, runID, serialized); err != nil {
			return err
		}
		return w.SaveEvaluations(ctx, runID, r.evaluations)
	})
}

// RunFileMergesCmd replays conflicting file merges and evaluates them
type RunFileMergesCmd struct {
	ReplayFlags `embed:""`

	AllRefs        bool   `help:"Consider merge commits reachable from any ref, not only HEAD"`
	GatherMetainfo bool   `help:"Also write blob and file merge metainfo next to the output"`
	MergeCommits   string `help:"File with the merge commit hashes to consider, one per line" type:"existingfile"`
}

// Run executes the run-file-merges command
func (r *RunFileMergesCmd) Run(cli *CLI) error {
	ctx := context.Background()
	container := cli.Container

	opts, err := MineFlags{AllRefs: r.AllRefs, MergeCommits: r.MergeCommits}.options()
	if err != nil {
		return err
	}

	result, err := replayFileMerges(ctx, container, r.ReplayFlags, opts)
	if err != nil {
		return err
	}

	if err := csvreport.Write(r.Output, result.evaluations, csvreport.MergeEvaluationSchema); err != nil {
		return err
	}
	outputs := []string{r.Output}

	if r.GatherMetainfo {
		files, err := writeMetainfo(container, r.Output, result)
		if err != nil {
			return err
		}
		outputs = append(outputs, files...)
	}

	if err := result.record(ctx, container, r.ReplayFlags, "run-file-merges"); err != nil {
		return err
	}

	fmt.Printf("%d evaluations written to %s\n", len(result.evaluations), r.Output)
	return container.Publish(ctx, r.PublishBucket, outputs)
}

// writeMetainfo writes the blob and file merge metainfo files belonging to
// the results file
func writeMetainfo(container *Container, resultsFile string, result *fileMergeRun) ([]string, error) {
	blobs, err := services.GatherBlobMetainfo(container.FileTools, result.dirs)
	if err != nil {
		return nil, err
	}
	blobPath := services.BlobMetainfoPath(resultsFile)
	if err := csvreport.Write(blobPath, blobs, csvreport.JavaBlobMetainfoSchema); err != nil {
		return nil, err
	}
	logging.Logger.Info("Blob metainfo written", "path", blobPath)

	metainfo := make([]domain.FileMergeMetainfo, len(result.fileMerges))
	for i, fm := range result.fileMerges {
		metainfo[i] = domain.NewFileMergeMetainfo(fm)
	}
	metainfoPath := services.FileMergeMetainfoPath(resultsFile)
	if err := csvreport.Write(metainfoPath, metainfo, csvreport.FileMergeMetainfoSchema); err != nil {
		return nil, err
	}
	logging.Logger.Info("File merge metainfo written", "path", metainfoPath)

	return []string{blobPath, metainfoPath}, nil
}

// MergeAndCompareCmd replays the file merges of a baseline and compares
type MergeAndCompareCmd struct {
	ReplayFlags `embed:""`

	Compare string `help:"Baseline evaluation CSV to compare against" required:"" type:"existingfile"`
}

// Run executes the merge-and-compare command. It fails with
// ErrWorseThanBaseline when the new results are worse than the baseline.
func (m *MergeAndCompareCmd) Run(cli *CLI) error {
	ctx := context.Background()
	container := cli.Container

	baseline, err := csvreport.Read(m.Compare, csvreport.MergeEvaluationSchema)
	if err != nil {
		return err
	}

	opts := services.MineOptions{AllRefs: true, AllowList: services.BaselineCommits(baseline)}
	result, err := replayFileMerges(ctx, container, m.ReplayFlags, opts)
	if err != nil {
		return err
	}

	diffs := services.LogDiffs(result.evaluations, baseline)
	if err := csvreport.Write(m.Output, result.evaluations, csvreport.MergeEvaluationSchema); err != nil {
		return err
	}
	if err := result.record(ctx, container, m.ReplayFlags, "merge-and-compare"); err != nil {
		return err
	}
	if err := container.Publish(ctx, m.PublishBucket, []string{m.Output}); err != nil {
		return err
	}

	if !services.AtLeastAsGoodAs(result.evaluations, baseline) {
		logging.Logger.Warn("New results were worse than the reference", "differences", diffs)
		return ErrWorseThanBaseline
	}
	logging.Logger.Info("New results were no worse than the reference", "differences", diffs)
	fmt.Printf("Results are no worse than %s (%d differences)\n", m.Compare, diffs)
	return nil
}

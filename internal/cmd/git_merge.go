package cmd

import (
	"context"
	"fmt"

	"github.com/renato0307/mergebench/internal/adapters/csvreport"
	"github.com/renato0307/mergebench/internal/domain"
	"github.com/renato0307/mergebench/internal/logging"
	"github.com/renato0307/mergebench/internal/ports"
	"github.com/renato0307/mergebench/internal/services"
)

// GitMergeCmd replays whole merge scenarios with git merge drivers
type GitMergeCmd struct {
	DispatchFlags `embed:""`
	OutputFlags   `embed:""`

	AttributePattern string   `help:"Paths the merge drivers apply to (default: merge.attribute_pattern)"`
	Build            bool     `help:"Compile the merged revision"`
	Evaluate         bool     `help:"Compare the bytecode of the merged revision with the merge commit (implies --build)"`
	MergeCommits     string   `help:"File with the merge commit hashes to replay, one per line" required:"" type:"existingfile"`
	MergeDrivers     []string `help:"Git merge drivers to replay with (default: merge.drivers)" sep:","`
	NumMerges        int      `help:"Replay at most this many merge commits (0 = all)"`
	Output           string   `help:"CSV file to write the results to" short:"o" required:"" type:"path"`
	Repo             string   `arg:"" help:"Local path or git URL of the repository"`
}

// Run executes the git-merge command
func (g *GitMergeCmd) Run(cli *CLI) error {
	ctx := context.Background()
	container := cli.Container
	cfg := container.Config.Merge

	drivers := g.MergeDrivers
	if len(drivers) == 0 {
		drivers = cfg.Drivers
	}
	if len(drivers) == 0 {
		return fmt.Errorf("no merge drivers given (use --merge-drivers or merge.drivers)")
	}

	repoPath, source, err := container.Repository(g.Repo)
	if err != nil {
		return err
	}

	hashes, err := readNonEmptyLines(g.MergeCommits)
	if err != nil {
		return err
	}
	hashes = truncate(hashes, g.NumMerges)

	opts := services.MineOptions{AllRefs: true, AllowList: hashes}
	miner, cleanup, err := container.MinerFor(ctx, repoPath, opts)
	if err != nil {
		return err
	}
	defer cleanup()

	scenarios, err := miner.Mine(ctx, opts)
	if err != nil {
		return err
	}
	serialized := make([]domain.SerializableMergeScenario, len(scenarios))
	for i, ms := range scenarios {
		serialized[i] = ms.ToSerializable()
	}

	dispatcher, err := container.Dispatcher(ctx, g.DispatchFlags)
	if err != nil {
		return err
	}

	mergeOpts := services.GitMergeOptions{
		AttributePattern: firstNonEmpty(g.AttributePattern, cfg.AttributePattern),
		Build:            g.Build,
		Drivers:          drivers,
		Evaluate:         g.Evaluate,
	}
	logging.Logger.Info("Replaying git merges", "drivers", drivers, "scenarios", len(serialized))
	results, err := dispatcher.ReplayGitMerges(ctx, repoPath, serialized, mergeOpts)
	if err != nil {
		return err
	}

	if err := csvreport.Write(g.Output, results, csvreport.GitMergeResultSchema); err != nil {
		return err
	}

	run := domain.Run{Command: "git-merge", ID: g.RunID, Project: source.Repo}
	err = container.RecordRun(ctx, g.OutputFlags, run, func(w ports.ResultWriter, runID string) error {
		if err := w.SaveScenarios(ctx, runID, serialized); err != nil {
			return err
		}
		return w.SaveGitMergeResults(ctx, runID, results)
	})
	if err != nil {
		return err
	}

	fmt.Printf("%d git merge results written to %s\n", len(results), g.Output)
	return container.Publish(ctx, g.PublishBucket, []string{g.Output})
}

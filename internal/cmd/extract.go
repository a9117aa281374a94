package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/renato0307/mergebench/internal/adapters/csvreport"
	"github.com/renato0307/mergebench/internal/domain"
	"github.com/renato0307/mergebench/internal/logging"
	"github.com/renato0307/mergebench/internal/ports"
	"github.com/renato0307/mergebench/internal/services"
)

// ExtractMergeCommitsCmd mines the merge commits of a repository
type ExtractMergeCommitsCmd struct {
	MineFlags   `embed:""`
	OutputFlags `embed:""`

	Output       string `help:"File to write the merge commit hashes to" short:"o" required:"" type:"path"`
	Repo         string `arg:"" help:"Local path or git URL of the repository"`
	ScenariosCSV string `help:"Also write the mined scenarios as CSV" type:"path"`
}

// Run executes the extract-merge-commits command
func (e *ExtractMergeCommitsCmd) Run(cli *CLI) error {
	ctx := context.Background()
	container := cli.Container

	repoPath, source, err := container.Repository(e.Repo)
	if err != nil {
		return err
	}

	opts, err := e.options()
	if err != nil {
		return err
	}

	miner, cleanup, err := container.MinerFor(ctx, repoPath, opts)
	if err != nil {
		return err
	}
	defer cleanup()

	scenarios, err := miner.Mine(ctx, opts)
	if err != nil {
		return err
	}
	logging.Logger.Info("Extracted merge commits", "count", len(scenarios))

	hashes := make([]string, len(scenarios))
	serialized := make([]domain.SerializableMergeScenario, len(scenarios))
	for i, ms := range scenarios {
		hashes[i] = ms.Expected.Hash
		serialized[i] = ms.ToSerializable()
	}

	if err := os.WriteFile(e.Output, []byte(strings.Join(hashes, "\n")), 0644); err != nil {
		return fmt.Errorf("failed to write merge commits: %w", err)
	}
	outputs := []string{e.Output}

	if e.ScenariosCSV != "" {
		if err := csvreport.Write(e.ScenariosCSV, serialized, csvreport.ScenarioSchema); err != nil {
			return err
		}
		outputs = append(outputs, e.ScenariosCSV)
	}

	run := domain.Run{Command: "extract-merge-commits", Project: source.Repo}
	err = container.RecordRun(ctx, e.OutputFlags, run, func(w ports.ResultWriter, runID string) error {
		return w.SaveScenarios(ctx, runID, serialized)
	})
	if err != nil {
		return err
	}

	fmt.Printf("%d merge commits written to %s\n", len(hashes), e.Output)
	return container.Publish(ctx, e.PublishBucket, outputs)
}

// ExtractFileMergeMetainfoCmd writes the metainfo of conflicting file merges
type ExtractFileMergeMetainfoCmd struct {
	OutputFlags `embed:""`

	AllRefs      bool   `help:"Consider merge commits reachable from any ref, not only HEAD"`
	MergeCommits string `help:"File with the merge commit hashes to consider, one per line" type:"existingfile"`
	NumMerges    int    `help:"Keep at most this many file merges (0 = all)"`
	Output       string `help:"CSV file to write the metainfo to" short:"o" required:"" type:"path"`
	Repo         string `arg:"" help:"Local path or git URL of the repository"`
}

// Run executes the extract-file-merge-metainfo command
func (e *ExtractFileMergeMetainfoCmd) Run(cli *CLI) error {
	ctx := context.Background()
	container := cli.Container

	repoPath, _, err := container.Repository(e.Repo)
	if err != nil {
		return err
	}

	opts, err := MineFlags{AllRefs: e.AllRefs, MergeCommits: e.MergeCommits}.options()
	if err != nil {
		return err
	}

	fileMerges, _, err := extractFileMerges(ctx, container, repoPath, opts)
	if err != nil {
		return err
	}
	fileMerges = truncate(fileMerges, e.NumMerges)

	metainfo := make([]domain.FileMergeMetainfo, len(fileMerges))
	for i, fm := range fileMerges {
		metainfo[i] = domain.NewFileMergeMetainfo(fm)
	}
	if err := csvreport.Write(e.Output, metainfo, csvreport.FileMergeMetainfoSchema); err != nil {
		return err
	}

	fmt.Printf("%d file merges written to %s\n", len(metainfo), e.Output)
	return container.Publish(ctx, e.PublishBucket, []string{e.Output})
}

// extractFileMerges mines the repository and extracts the conflicting file
// merges of every scenario
func extractFileMerges(ctx context.Context, container *Container, repoPath string, opts services.MineOptions) ([]domain.FileMerge, []domain.MergeScenario, error) {
	miner, cleanup, err := container.MinerFor(ctx, repoPath, opts)
	if err != nil {
		return nil, nil, err
	}
	defer cleanup()

	scenarios, err := miner.Mine(ctx, opts)
	if err != nil {
		return nil, nil, err
	}
	logging.Logger.Info("Found merge scenarios", "count", len(scenarios))

	extractor, err := container.Extractor(repoPath)
	if err != nil {
		return nil, nil, err
	}
	fileMerges := extractor.ExtractAll(ctx, scenarios)
	logging.Logger.Info("Extracted file merges", "count", len(fileMerges))
	return fileMerges, scenarios, nil
}

package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/renato0307/mergebench/internal/domain"
	"github.com/renato0307/mergebench/internal/logging"
	"github.com/renato0307/mergebench/internal/ports"
)

// Task kinds understood by worker ranks
const (
	KindFileMerges = "file-merges"
	KindGitMerges  = "git-merges"
)

// FileMergesJob evaluates merge directories with every merge command
type FileMergesJob struct {
	Dirs      []string `json:"dirs"`
	MergeCmds []string `json:"merge_cmds"`
}

// GitMergesJob replays scenarios of the repository at RepoPath
type GitMergesJob struct {
	Options   GitMergeOptions                    `json:"options"`
	RepoPath  string                             `json:"repo_path"`
	Scenarios []domain.SerializableMergeScenario `json:"scenarios"`
}

// HistoryOpener opens the history of the repository at path
type HistoryOpener func(path string) (ports.HistoryReader, error)

// WorkspaceFactoryFor returns the factory of private clones of origin
type WorkspaceFactoryFor func(origin string) ports.WorkspaceFactory

// JobDeps wires the adapters a worker needs
type JobDeps struct {
	Builder     ports.Builder
	Bytecode    ports.BytecodeEvaluator
	Differ      ports.FileDiffer
	Hasher      ports.BlobHasher
	Merger      ports.ThreeWayMerger
	OpenHistory HistoryOpener
	Tool        ports.MergeTool
	Workspaces  WorkspaceFactoryFor
}

// Jobs runs the work of a single worker, whichever strategy dispatched it
type Jobs struct {
	deps JobDeps
}

// NewJobs creates a new Jobs
func NewJobs(deps JobDeps) *Jobs {
	return &Jobs{deps: deps}
}

// EvaluateFileMerges evaluates job.Dirs with every command of the job
func (j *Jobs) EvaluateFileMerges(ctx context.Context, workerID int, job FileMergesJob) ([]domain.MergeEvaluation, error) {
	evaluator := NewEvaluator(NewReplayEngine(j.deps.Tool, nil, nil, nil), j.deps.Hasher, j.deps.Differ)

	var evals []domain.MergeEvaluation
	for _, cmd := range job.MergeCmds {
		logging.Logger.Debug("Worker evaluating file merges", "worker", workerID, "cmd", cmd, "dirs", len(job.Dirs))
		evals = append(evals, evaluator.Evaluate(ctx, job.Dirs, cmd)...)
	}
	return evals, nil
}

// ReplayGitMerges replays job.Scenarios in a private clone of job.RepoPath
func (j *Jobs) ReplayGitMerges(ctx context.Context, workerID int, job GitMergesJob) ([]domain.GitMergeResult, error) {
	history, err := j.deps.OpenHistory(job.RepoPath)
	if err != nil {
		return nil, err
	}

	ws, cleanup, err := j.deps.Workspaces(job.RepoPath)(ctx, workerID)
	if err != nil {
		return nil, fmt.Errorf("failed to create workspace: %w", err)
	}
	defer cleanup()

	scenarios := NewScenarioMiner(history, nil, nil).ResolveAll(job.Scenarios)
	extractor := NewFileMergeExtractor(history, j.deps.Merger)
	engine := NewReplayEngine(j.deps.Tool, j.deps.Builder, j.deps.Bytecode, extractor)

	logging.Logger.Info("Worker replaying git merges", "worker", workerID, "scenarios", len(scenarios), "dir", ws.Dir())
	return engine.RunGitMerges(ctx, ws, scenarios, job.Options), nil
}

// Handlers exposes the jobs to ServeRank
func (j *Jobs) Handlers() map[string]RankHandler {
	return map[string]RankHandler{
		KindFileMerges: func(ctx context.Context, rank int, payload json.RawMessage) (any, error) {
			var job FileMergesJob
			if err := json.Unmarshal(payload, &job); err != nil {
				return nil, fmt.Errorf("failed to decode %s job: %w", KindFileMerges, err)
			}
			return j.EvaluateFileMerges(ctx, rank, job)
		},
		KindGitMerges: func(ctx context.Context, rank int, payload json.RawMessage) (any, error) {
			var job GitMergesJob
			if err := json.Unmarshal(payload, &job); err != nil {
				return nil, fmt.Errorf("failed to decode %s job: %w", KindGitMerges, err)
			}
			return j.ReplayGitMerges(ctx, rank, job)
		},
	}
}

// DispatchOptions selects how work is spread over workers
type DispatchOptions struct {
	Ranked       bool // rank model instead of the local pool
	ReplyTimeout time.Duration
	RunID        string
	// ServeInProcess runs the worker ranks as goroutines of this process;
	// otherwise separate `worker` processes must serve them
	ServeInProcess bool
	Transport      ports.Transport
	Workers        int
}

// Dispatcher spreads jobs over workers with the local pool or the rank model.
// Both strategies produce the same results for the same input.
type Dispatcher struct {
	jobs *Jobs
	opts DispatchOptions
}

// NewDispatcher creates a new Dispatcher
func NewDispatcher(jobs *Jobs, opts DispatchOptions) *Dispatcher {
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	return &Dispatcher{jobs: jobs, opts: opts}
}

// EvaluateFileMerges evaluates dirs with every command
func (d *Dispatcher) EvaluateFileMerges(ctx context.Context, dirs, cmds []string) ([]domain.MergeEvaluation, error) {
	if !d.opts.Ranked {
		return RunLocal(ctx, dirs, d.opts.Workers, func(ctx context.Context, workerID int, slice []string) ([]domain.MergeEvaluation, error) {
			return d.jobs.EvaluateFileMerges(ctx, workerID, FileMergesJob{Dirs: slice, MergeCmds: cmds})
		}), nil
	}

	return runRanked[string, domain.MergeEvaluation](ctx, d, KindFileMerges, dirs, func(slice []string) any {
		return FileMergesJob{Dirs: slice, MergeCmds: cmds}
	})
}

// ReplayGitMerges replays scenarios of the repository at repoPath
func (d *Dispatcher) ReplayGitMerges(ctx context.Context, repoPath string, scenarios []domain.SerializableMergeScenario, opts GitMergeOptions) ([]domain.GitMergeResult, error) {
	if !d.opts.Ranked {
		return RunLocal(ctx, scenarios, d.opts.Workers, func(ctx context.Context, workerID int, slice []domain.SerializableMergeScenario) ([]domain.GitMergeResult, error) {
			return d.jobs.ReplayGitMerges(ctx, workerID, GitMergesJob{Options: opts, RepoPath: repoPath, Scenarios: slice})
		}), nil
	}

	return runRanked[domain.SerializableMergeScenario, domain.GitMergeResult](ctx, d, KindGitMerges, scenarios, func(slice []domain.SerializableMergeScenario) any {
		return GitMergesJob{Options: opts, RepoPath: repoPath, Scenarios: slice}
	})
}

func runRanked[T, R any](ctx context.Context, d *Dispatcher, kind string, items []T, wrap func([]T) any) ([]R, error) {
	if d.opts.Transport == nil {
		return nil, fmt.Errorf("rank dispatch requires a transport")
	}

	if d.opts.ServeInProcess {
		serveCtx, cancel := context.WithCancel(ctx)
		defer cancel()
		for rank := 1; rank <= d.opts.Workers; rank++ {
			go func() {
				if err := ServeRank(serveCtx, d.opts.Transport, d.opts.RunID, rank, d.jobs.Handlers()); err != nil && serveCtx.Err() == nil {
					logging.Logger.Error("Rank stopped", "error", err, "rank", rank)
				}
			}()
		}
	}

	coordinator := NewRankCoordinator(d.opts.Transport, d.opts.RunID, d.opts.ReplyTimeout)
	return ScatterSlices[T, R](ctx, coordinator, kind, items, d.opts.Workers, wrap)
}

package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	adapterbytecode "github.com/renato0307/mergebench/internal/adapters/bytecode"
	adaptergit "github.com/renato0307/mergebench/internal/adapters/git"
	adaptermaven "github.com/renato0307/mergebench/internal/adapters/maven"
	adaptermergetool "github.com/renato0307/mergebench/internal/adapters/mergetool"
	adapterobjectstore "github.com/renato0307/mergebench/internal/adapters/objectstore"
	adapterprocess "github.com/renato0307/mergebench/internal/adapters/process"
	adapterqueue "github.com/renato0307/mergebench/internal/adapters/queue"
	adapterstorage "github.com/renato0307/mergebench/internal/adapters/storage"
	"github.com/renato0307/mergebench/internal/config"
	"github.com/renato0307/mergebench/internal/domain"
	"github.com/renato0307/mergebench/internal/logging"
	"github.com/renato0307/mergebench/internal/ports"
	"github.com/renato0307/mergebench/internal/services"
)

// Container holds all dependencies for the application
type Container struct {
	Config *config.Config

	// Adapters
	Builder   *adaptermaven.Builder
	Bytecode  *adapterbytecode.JavapEvaluator
	Cloner    *adaptergit.Cloner
	FileTools *adaptergit.FileTools
	Tool      *adaptermergetool.Tool

	// Services
	Jobs *services.Jobs

	// Internal - for cleanup only
	closers []func() error
	store   ports.ResultStore
}

// NewContainer creates a new Container with all dependencies wired
func NewContainer(cfg *config.Config) *Container {
	runner := adapterprocess.NewRunner()
	fileTools := adaptergit.NewFileTools()
	builder := adaptermaven.NewBuilder(runner, cfg.Build.Maven, cfg.Build.Timeout, cfg.Build.TestTimeout)
	bytecode := adapterbytecode.NewJavapEvaluator(runner, cfg.Build.Javap, cfg.Replay.ToolTimeout)
	tool := adaptermergetool.NewTool(runner, cfg.Replay.ToolTimeout)

	jobs := services.NewJobs(services.JobDeps{
		Builder:     builder,
		Bytecode:    bytecode,
		Differ:      fileTools,
		Hasher:      fileTools,
		Merger:      fileTools,
		OpenHistory: openHistory,
		Tool:        tool,
		Workspaces: func(origin string) ports.WorkspaceFactory {
			return adaptergit.NewWorkspaceFactory(origin, "")
		},
	})

	return &Container{
		Builder:   builder,
		Bytecode:  bytecode,
		Cloner:    adaptergit.NewCloner(),
		Config:    cfg,
		FileTools: fileTools,
		Jobs:      jobs,
		Tool:      tool,
	}
}

func openHistory(path string) (ports.HistoryReader, error) {
	return adaptergit.OpenHistory(path)
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	var errs []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		errs = append(errs, c.closers[i]())
	}
	c.closers = nil
	return errors.Join(errs...)
}

// Repository resolves a local path or git URL to a local repository,
// cloning remote repositories into the configured clone directory. The
// returned source names the project the repository belongs to.
func (c *Container) Repository(source string) (string, *domain.RepoSource, error) {
	path, rs, err := c.Cloner.GetOrCloneRepository(source, c.Config.Repo.CloneDir)
	if err != nil {
		return "", nil, err
	}
	logging.Logger.Debug("Resolved repository", "path", path, "project", rs.Repo, "source", source)
	return path, rs, nil
}

// MinerFor returns a scenario miner over the repository at repoPath.
// A private clone is created when the options need a writable workspace;
// the returned cleanup removes it.
func (c *Container) MinerFor(ctx context.Context, repoPath string, opts services.MineOptions) (*services.ScenarioMiner, func(), error) {
	history, err := adaptergit.OpenHistory(repoPath)
	if err != nil {
		return nil, nil, err
	}

	if !opts.NonTrivial && !opts.Buildable && !opts.Testable {
		return services.NewScenarioMiner(history, nil, nil), func() {}, nil
	}

	ws, cleanup, err := adaptergit.CloneWorkspace(ctx, repoPath, "")
	if err != nil {
		return nil, nil, err
	}

	var probe ports.BuildProbe
	if opts.Buildable || opts.Testable {
		probe = services.NewBuildProbe(ws, c.Builder)
	}
	return services.NewScenarioMiner(history, ws, probe), cleanup, nil
}

// Extractor returns a file merge extractor over the repository at repoPath
func (c *Container) Extractor(repoPath string) (*services.FileMergeExtractor, error) {
	history, err := adaptergit.OpenHistory(repoPath)
	if err != nil {
		return nil, err
	}
	return services.NewFileMergeExtractor(history, c.FileTools), nil
}

// Replay returns a replay engine for file level merges
func (c *Container) Replay() *services.ReplayEngine {
	return services.NewReplayEngine(c.Tool, nil, nil, nil)
}

// Store opens the result store at dbPath, falling back to the configured
// storage.db_path. It returns nil when neither is set.
func (c *Container) Store(dbPath string) (ports.ResultStore, error) {
	if c.store != nil {
		return c.store, nil
	}
	if dbPath == "" {
		dbPath = c.Config.Storage.DBPath
	}
	if dbPath == "" {
		return nil, nil
	}

	store, err := adapterstorage.NewSQLiteStore(config.ExpandPath(dbPath))
	if err != nil {
		return nil, err
	}
	c.store = store
	c.closers = append(c.closers, store.Close)
	return store, nil
}

// Dispatcher builds a dispatcher for the requested strategy. A rank run
// without a Redis address serves its ranks in-process over channels.
func (c *Container) Dispatcher(ctx context.Context, flags DispatchFlags) (*services.Dispatcher, error) {
	cfg := c.Config.Dispatch
	strategy := firstNonEmpty(flags.Strategy, cfg.Strategy)
	workers := cfg.Workers
	if flags.Workers > 0 {
		workers = flags.Workers
	}

	opts := services.DispatchOptions{
		ReplyTimeout: cfg.ReplyTimeout,
		RunID:        firstNonEmpty(flags.RunID, uuid.New().String()),
		Workers:      workers,
	}

	switch strategy {
	case config.StrategyLocal:
	case config.StrategyRank:
		opts.Ranked = true
		transport, err := c.Transport(ctx)
		if err != nil {
			return nil, err
		}
		if transport == nil {
			opts.Transport = adapterqueue.NewChannelTransport()
			opts.ServeInProcess = true
		} else {
			opts.Transport = transport
			logging.Logger.Info("Waiting for worker ranks", "ranks", workers, "run_id", opts.RunID)
		}
	default:
		return nil, fmt.Errorf("unknown dispatch strategy %q", strategy)
	}

	logging.Logger.Debug("Created dispatcher", "ranked", opts.Ranked, "run_id", opts.RunID, "workers", workers)
	return services.NewDispatcher(c.Jobs, opts), nil
}

// Transport connects to the configured Redis server. It returns nil when
// no Redis address is configured.
func (c *Container) Transport(ctx context.Context) (ports.Transport, error) {
	addr := c.Config.Dispatch.RedisAddr
	if addr == "" {
		return nil, nil
	}

	rdb, err := adapterqueue.DialRedis(ctx, addr)
	if err != nil {
		return nil, err
	}
	c.closers = append(c.closers, rdb.Close)
	return adapterqueue.NewRedisTransport(rdb), nil
}

// Publish uploads files to the bucket (or the configured publish.bucket).
// Nothing happens when no bucket is set.
func (c *Container) Publish(ctx context.Context, bucket string, files []string) error {
	cfg := c.Config.Publish
	bucket = firstNonEmpty(bucket, cfg.Bucket)
	if bucket == "" || len(files) == 0 {
		return nil
	}

	client := adapterobjectstore.NewS3Client(adapterobjectstore.S3Options{
		Endpoint: cfg.Endpoint,
		Region:   cfg.Region,
	})
	store := adapterobjectstore.NewS3ObjectStore(client, bucket, cfg.Prefix)
	if err := adapterobjectstore.PublishFiles(ctx, store, files); err != nil {
		return err
	}
	logging.Logger.Info("Published results", "bucket", bucket, "files", len(files))
	return nil
}

// RecordRun creates a run in the result store and hands the store to save.
// Nothing happens when no store is configured.
func (c *Container) RecordRun(ctx context.Context, flags OutputFlags, run domain.Run, save func(ports.ResultWriter, string) error) error {
	store, err := c.Store(flags.DB)
	if err != nil || store == nil {
		return err
	}

	if run.ID == "" {
		run.ID = uuid.New().String()
	}
	run.CreatedAt = time.Now().UTC()
	if err := store.CreateRun(ctx, run); err != nil {
		return err
	}
	if err := save(store, run.ID); err != nil {
		return err
	}
	logging.Logger.Info("Recorded run", "command", run.Command, "run_id", run.ID)
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

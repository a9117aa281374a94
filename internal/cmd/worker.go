package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/renato0307/mergebench/internal/logging"
	"github.com/renato0307/mergebench/internal/services"
)

// WorkerCmd serves one rank of a distributed run. The coordinator and its
// workers share the run id and the Redis server of dispatch.redis_addr.
type WorkerCmd struct {
	Rank  int    `help:"Rank to serve (1..workers)" required:""`
	RunID string `help:"Run id printed by the coordinator" required:""`
}

// Run executes the worker command
func (w *WorkerCmd) Run(cli *CLI) error {
	if w.Rank < 1 {
		return fmt.Errorf("--rank must be at least 1, got %d", w.Rank)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	transport, err := cli.Container.Transport(ctx)
	if err != nil {
		return err
	}
	if transport == nil {
		return fmt.Errorf("worker ranks need dispatch.redis_addr to be set")
	}

	logging.Logger.Info("Serving rank", "rank", w.Rank, "run_id", w.RunID)
	return services.ServeRank(ctx, transport, w.RunID, w.Rank, cli.Container.Jobs.Handlers())
}

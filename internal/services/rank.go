package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/renato0307/mergebench/internal/domain"
	"github.com/renato0307/mergebench/internal/logging"
	"github.com/renato0307/mergebench/internal/ports"
)

// RankHandler runs one task kind on a worker rank. The returned value is
// JSON-encoded into the reply.
type RankHandler func(ctx context.Context, rank int, payload json.RawMessage) (any, error)

// RankCoordinator is rank 0 of a run. It hands one task to each worker rank
// and collects the replies; it never replays merges itself.
type RankCoordinator struct {
	replyTimeout time.Duration
	runID        string
	transport    ports.Transport
}

// NewRankCoordinator creates a coordinator. A zero replyTimeout waits until
// every rank answered or ctx is done.
func NewRankCoordinator(transport ports.Transport, runID string, replyTimeout time.Duration) *RankCoordinator {
	return &RankCoordinator{replyTimeout: replyTimeout, runID: runID, transport: transport}
}

// RunID returns the run the coordinator dispatches for
func (c *RankCoordinator) RunID() string {
	return c.runID
}

// Scatter sends payloads[i] to rank i+1 and returns the successful replies
// in rank order. Ranks that fail or do not answer in time are logged and
// dropped.
func (c *RankCoordinator) Scatter(ctx context.Context, kind string, payloads []any) ([]json.RawMessage, error) {
	for i, payload := range payloads {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode %s task: %w", kind, err)
		}
		task := ports.Task{Kind: kind, Payload: data, Rank: i + 1, RunID: c.runID}
		if err := c.transport.SendTask(ctx, task); err != nil {
			return nil, fmt.Errorf("failed to send task to rank %d: %w", task.Rank, err)
		}
	}
	logging.Logger.Info("Dispatched tasks", "run_id", c.runID, "kind", kind, "ranks", len(payloads))

	collectCtx := ctx
	if c.replyTimeout > 0 {
		var cancel context.CancelFunc
		collectCtx, cancel = context.WithTimeout(ctx, c.replyTimeout)
		defer cancel()
	}

	replies := make([]json.RawMessage, len(payloads))
	answered := make([]bool, len(payloads))
	for pending := len(payloads); pending > 0; {
		reply, err := c.transport.ReceiveReply(collectCtx, c.runID)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			if errors.Is(err, context.DeadlineExceeded) {
				logging.Logger.Error("Timed out waiting for ranks", "run_id", c.runID, "missing", pending)
				break
			}
			return nil, fmt.Errorf("failed to receive reply: %w", err)
		}

		idx := reply.Rank - 1
		if idx < 0 || idx >= len(payloads) || answered[idx] {
			logging.Logger.Warn("Ignoring unexpected reply", "run_id", c.runID, "rank", reply.Rank)
			continue
		}
		answered[idx] = true
		pending--

		if reply.Err != "" {
			logging.Logger.Error("Rank failed, dropping its results",
				"error", fmt.Errorf("%w: %s", domain.ErrWorkerFailed, reply.Err), "rank", reply.Rank)
			continue
		}
		replies[idx] = reply.Payload
	}

	var ok []json.RawMessage
	for i, reply := range replies {
		if reply != nil {
			ok = append(ok, reply)
		} else if !answered[i] {
			logging.Logger.Error("Rank never answered", "run_id", c.runID, "rank", i+1)
		}
	}
	return ok, nil
}

// ScatterSlices partitions items over workers ranks, wraps each slice with
// wrap and decodes the replies as []R
func ScatterSlices[T, R any](ctx context.Context, c *RankCoordinator, kind string, items []T, workers int, wrap func([]T) any) ([]R, error) {
	var payloads []any
	for _, slice := range Partition(items, workers) {
		payloads = append(payloads, wrap(slice))
	}

	replies, err := c.Scatter(ctx, kind, payloads)
	if err != nil {
		return nil, err
	}

	var all []R
	for _, reply := range replies {
		var out []R
		if err := json.Unmarshal(reply, &out); err != nil {
			logging.Logger.Error("Failed to decode rank reply, dropping it", "error", err, "kind", kind)
			continue
		}
		all = append(all, out...)
	}
	return all, nil
}

// ServeRank receives one task for rank, runs the handler registered for its
// kind and replies. Handler failures and panics are reported in the reply;
// only transport failures are returned.
func ServeRank(ctx context.Context, transport ports.Transport, runID string, rank int, handlers map[string]RankHandler) error {
	logging.Logger.Info("Waiting for task", "run_id", runID, "rank", rank)
	task, err := transport.ReceiveTask(ctx, runID, rank)
	if err != nil {
		return fmt.Errorf("failed to receive task: %w", err)
	}

	reply := ports.Reply{Rank: rank, RunID: runID}
	payload, err := handleTask(ctx, task, handlers)
	if err != nil {
		logging.Logger.Error("Task failed", "error", err, "run_id", runID, "rank", rank, "kind", task.Kind)
		reply.Err = err.Error()
	} else {
		reply.Payload = payload
	}

	if err := transport.SendReply(context.WithoutCancel(ctx), reply); err != nil {
		return fmt.Errorf("failed to send reply: %w", err)
	}
	logging.Logger.Info("Task done", "run_id", runID, "rank", rank, "kind", task.Kind, "ok", reply.Err == "")
	return nil
}

func handleTask(ctx context.Context, task ports.Task, handlers map[string]RankHandler) (payload json.RawMessage, err error) {
	handler, ok := handlers[task.Kind]
	if !ok {
		return nil, fmt.Errorf("unknown task kind %q", task.Kind)
	}

	defer func() {
		if r := recover(); r != nil {
			logging.Logger.Error("Task panicked", "rank", task.Rank, "panic", r, "stack", string(debug.Stack()))
			payload = nil
			err = fmt.Errorf("task panicked: %v", r)
		}
	}()

	out, err := handler(ctx, task.Rank, task.Payload)
	if err != nil {
		return nil, err
	}
	data, err := json.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("failed to encode result: %w", err)
	}
	return data, nil
}

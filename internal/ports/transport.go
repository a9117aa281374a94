package ports

import (
	"context"
	"encoding/json"
)

// Task is a work descriptor sent by the coordinator to one rank
type Task struct {
	Kind    string          `json:"kind"`
	Payload json.RawMessage `json:"payload"`
	Rank    int             `json:"rank"`
	RunID   string          `json:"run_id"`
}

// Reply carries a rank's results (or its failure) back to the coordinator
type Reply struct {
	Err     string          `json:"err,omitempty"`
	Payload json.RawMessage `json:"payload,omitempty"`
	Rank    int             `json:"rank"`
	RunID   string          `json:"run_id"`
}

// Transport moves tasks and replies between the coordinator (rank 0)
// and worker ranks
type Transport interface {
	// ReceiveReply blocks until a reply for runID arrives or ctx is done
	ReceiveReply(ctx context.Context, runID string) (Reply, error)
	// ReceiveTask blocks until a task for rank arrives or ctx is done
	ReceiveTask(ctx context.Context, runID string, rank int) (Task, error)
	SendReply(ctx context.Context, reply Reply) error
	SendTask(ctx context.Context, task Task) error
}

package queue

import (
	"context"
	"sync"

	"github.com/renato0307/mergebench/internal/ports"
)

const channelBuffer = 64

// ChannelTransport moves tasks and replies between goroutines of one process
type ChannelTransport struct {
	mu      sync.Mutex
	replies map[string]chan ports.Reply
	tasks   map[taskKey]chan ports.Task
}

type taskKey struct {
	rank  int
	runID string
}

// Verify interface compliance at compile time
var _ ports.Transport = (*ChannelTransport)(nil)

// NewChannelTransport creates an in-process transport
func NewChannelTransport() *ChannelTransport {
	return &ChannelTransport{
		replies: make(map[string]chan ports.Reply),
		tasks:   make(map[taskKey]chan ports.Task),
	}
}

func (t *ChannelTransport) taskChan(runID string, rank int) chan ports.Task {
	t.mu.Lock()
	defer t.mu.Unlock()

	key := taskKey{rank: rank, runID: runID}
	ch, ok := t.tasks[key]
	if !ok {
		ch = make(chan ports.Task, channelBuffer)
		t.tasks[key] = ch
	}
	return ch
}

func (t *ChannelTransport) replyChan(runID string) chan ports.Reply {
	t.mu.Lock()
	defer t.mu.Unlock()

	ch, ok := t.replies[runID]
	if !ok {
		ch = make(chan ports.Reply, channelBuffer)
		t.replies[runID] = ch
	}
	return ch
}

// SendTask queues a task for its rank
func (t *ChannelTransport) SendTask(ctx context.Context, task ports.Task) error {
	select {
	case t.taskChan(task.RunID, task.Rank) <- task:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// ReceiveTask blocks until a task for rank arrives or ctx is done
func (t *ChannelTransport) ReceiveTask(ctx context.Context, runID string, rank int) (ports.Task, error) {
	select {
	case task := <-t.taskChan(runID, rank):
		return task, nil
	case <-ctx.Done():
		return ports.Task{}, ctx.Err()
	}
}

// SendReply queues a reply for the coordinator
func (t *ChannelTransport) SendReply(ctx context.Context, reply ports.Reply) error {
	select {
	case t.replyChan(reply.RunID) <- reply:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// ReceiveReply blocks until a reply for runID arrives or ctx is done
func (t *ChannelTransport) ReceiveReply(ctx context.Context, runID string) (ports.Reply, error) {
	select {
	case reply := <-t.replyChan(runID):
		return reply, nil
	case <-ctx.Done():
		return ports.Reply{}, ctx.Err()
	}
}

package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/renato0307/mergebench/internal/logging"
	"github.com/renato0307/mergebench/internal/ports"
)

const (
	keyPrefix = "mergebench"
	// pollInterval bounds each blocking pop so cancellation is noticed
	pollInterval = time.Second
	// keyTTL keeps abandoned runs from piling up in redis
	keyTTL = 48 * time.Hour
)

// RedisTransport moves tasks and replies through redis lists, so ranks can be
// separate processes or machines. Tasks for rank r of run id live in
// mergebench:<id>:task:<r>, replies in mergebench:<id>:reply.
type RedisTransport struct {
	rdb redis.UniversalClient
}

// Verify interface compliance at compile time
var _ ports.Transport = (*RedisTransport)(nil)

// NewRedisTransport creates a transport over an existing client
func NewRedisTransport(rdb redis.UniversalClient) *RedisTransport {
	return &RedisTransport{rdb: rdb}
}

// DialRedis connects to addr and verifies the connection
func DialRedis(ctx context.Context, addr string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
	}
	return client, nil
}

func joinKey(parts ...string) string {
	return strings.Join(append([]string{keyPrefix}, parts...), ":")
}

func taskListKey(runID string, rank int) string {
	return joinKey(runID, "task", strconv.Itoa(rank))
}

func replyListKey(runID string) string {
	return joinKey(runID, "reply")
}

// SendTask pushes a task onto its rank's list
func (t *RedisTransport) SendTask(ctx context.Context, task ports.Task) error {
	return t.push(ctx, taskListKey(task.RunID, task.Rank), task)
}

// SendReply pushes a reply onto the run's reply list
func (t *RedisTransport) SendReply(ctx context.Context, reply ports.Reply) error {
	return t.push(ctx, replyListKey(reply.RunID), reply)
}

// ReceiveTask blocks until a task for rank arrives or ctx is done
func (t *RedisTransport) ReceiveTask(ctx context.Context, runID string, rank int) (ports.Task, error) {
	var task ports.Task
	err := t.pop(ctx, taskListKey(runID, rank), &task)
	return task, err
}

// ReceiveReply blocks until a reply for runID arrives or ctx is done
func (t *RedisTransport) ReceiveReply(ctx context.Context, runID string) (ports.Reply, error) {
	var reply ports.Reply
	err := t.pop(ctx, replyListKey(runID), &reply)
	return reply, err
}

func (t *RedisTransport) push(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode message for %s: %w", key, err)
	}

	pipe := t.rdb.TxPipeline()
	pipe.LPush(ctx, key, data)
	pipe.Expire(ctx, key, keyTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to push to %s: %w", key, err)
	}

	logging.Logger.Debug("Pushed message", "key", key, "bytes", len(data))
	return nil
}

func (t *RedisTransport) pop(ctx context.Context, key string, target any) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		res, err := t.rdb.BRPop(ctx, pollInterval, key).Result()
		if errors.Is(err, redis.Nil) {
			continue
		}
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			return fmt.Errorf("failed to pop from %s: %w", key, err)
		}

		// res is [key, value]
		if err := json.Unmarshal([]byte(res[1]), target); err != nil {
			return fmt.Errorf("failed to decode message from %s: %w", key, err)
		}
		return nil
	}
}

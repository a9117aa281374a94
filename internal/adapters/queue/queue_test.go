package queue

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/mergebench/internal/ports"
)

func newRedisTransport(t *testing.T) (*RedisTransport, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		_ = client.Close()
	})
	return NewRedisTransport(client), mr
}

func TestTransportCompliance(t *testing.T) {
	cases := []struct {
		name string
		new  func(t *testing.T) ports.Transport
	}{
		{"channel", func(t *testing.T) ports.Transport { return NewChannelTransport() }},
		{"redis", func(t *testing.T) ports.Transport {
			tr, _ := newRedisTransport(t)
			return tr
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name+"/tasks are routed per rank in order", func(t *testing.T) {
			tr := tc.new(t)
			ctx := context.Background()

			require.NoError(t, tr.SendTask(ctx, ports.Task{RunID: "r1", Rank: 1, Kind: "a"}))
			require.NoError(t, tr.SendTask(ctx, ports.Task{RunID: "r1", Rank: 2, Kind: "b"}))
			require.NoError(t, tr.SendTask(ctx, ports.Task{RunID: "r1", Rank: 1, Kind: "c"}))

			got, err := tr.ReceiveTask(ctx, "r1", 2)
			require.NoError(t, err)
			assert.Equal(t, "b", got.Kind)

			got, err = tr.ReceiveTask(ctx, "r1", 1)
			require.NoError(t, err)
			assert.Equal(t, "a", got.Kind)

			got, err = tr.ReceiveTask(ctx, "r1", 1)
			require.NoError(t, err)
			assert.Equal(t, "c", got.Kind)
		})

		t.Run(tc.name+"/replies carry payloads and errors", func(t *testing.T) {
			tr := tc.new(t)
			ctx := context.Background()

			payload := json.RawMessage(`{"n":1}`)
			require.NoError(t, tr.SendReply(ctx, ports.Reply{RunID: "r1", Rank: 1, Payload: payload}))
			require.NoError(t, tr.SendReply(ctx, ports.Reply{RunID: "r1", Rank: 2, Err: "boom"}))
			require.NoError(t, tr.SendReply(ctx, ports.Reply{RunID: "other", Rank: 1}))

			first, err := tr.ReceiveReply(ctx, "r1")
			require.NoError(t, err)
			assert.Equal(t, 1, first.Rank)
			assert.JSONEq(t, `{"n":1}`, string(first.Payload))

			second, err := tr.ReceiveReply(ctx, "r1")
			require.NoError(t, err)
			assert.Equal(t, "boom", second.Err)
		})

		t.Run(tc.name+"/receive honours context", func(t *testing.T) {
			tr := tc.new(t)
			ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
			defer cancel()

			_, err := tr.ReceiveReply(ctx, "nobody")
			assert.ErrorIs(t, err, context.DeadlineExceeded)

			_, err = tr.ReceiveTask(ctx, "nobody", 3)
			assert.ErrorIs(t, err, context.DeadlineExceeded)
		})

		t.Run(tc.name+"/receive blocks until a message arrives", func(t *testing.T) {
			tr := tc.new(t)
			ctx := context.Background()

			done := make(chan ports.Task, 1)
			go func() {
				task, err := tr.ReceiveTask(ctx, "r1", 1)
				if err == nil {
					done <- task
				}
			}()

			time.Sleep(20 * time.Millisecond)
			require.NoError(t, tr.SendTask(ctx, ports.Task{RunID: "r1", Rank: 1, Kind: "late"}))

			select {
			case task := <-done:
				assert.Equal(t, "late", task.Kind)
			case <-time.After(5 * time.Second):
				t.Fatal("task was not received")
			}
		})
	}
}

func TestRedisTransport_Keys(t *testing.T) {
	tr, mr := newRedisTransport(t)
	ctx := context.Background()

	require.NoError(t, tr.SendTask(ctx, ports.Task{RunID: "run-7", Rank: 3}))
	require.NoError(t, tr.SendReply(ctx, ports.Reply{RunID: "run-7", Rank: 3}))

	assert.True(t, mr.Exists("mergebench:run-7:task:3"))
	assert.True(t, mr.Exists("mergebench:run-7:reply"))
	assert.Greater(t, mr.TTL("mergebench:run-7:reply"), time.Duration(0))
}

func TestRedisTransport_InvalidMessage(t *testing.T) {
	tr, mr := newRedisTransport(t)

	_, err := mr.Lpush("mergebench:run-1:reply", "not json")
	require.NoError(t, err)

	_, err = tr.ReceiveReply(context.Background(), "run-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode message")
}

func TestDialRedis(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := DialRedis(context.Background(), mr.Addr())
	require.NoError(t, err)
	client.Close()

	mr.Close()
	_, err = DialRedis(context.Background(), mr.Addr())
	assert.Error(t, err)
}

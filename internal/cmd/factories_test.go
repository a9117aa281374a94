package cmd

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/mergebench/internal/config"
	"github.com/renato0307/mergebench/internal/domain"
	"github.com/renato0307/mergebench/internal/ports"
	portsmocks "github.com/renato0307/mergebench/internal/ports/mocks"
)

func testConfig() *config.Config {
	return &config.Config{
		Dispatch: config.DispatchConfig{Strategy: config.StrategyLocal, Workers: 2},
		Merge:    config.MergeConfig{AttributePattern: "*.java"},
	}
}

func TestRecordRun_NoStoreIsNoop(t *testing.T) {
	c := NewContainer(testConfig())

	called := false
	err := c.RecordRun(context.Background(), OutputFlags{}, domain.Run{Command: "analyze"}, func(ports.ResultWriter, string) error {
		called = true
		return nil
	})

	require.NoError(t, err)
	assert.False(t, called)
}

func TestRecordRun_CreatesRunThenSaves(t *testing.T) {
	store := portsmocks.NewMockResultStore(t)
	c := NewContainer(testConfig())
	c.store = store

	store.EXPECT().CreateRun(mock.Anything, mock.MatchedBy(func(run domain.Run) bool {
		return run.ID == "run-1" && run.Command == "git-merge" && !run.CreatedAt.IsZero()
	})).Return(nil).Once()

	var savedID string
	err := c.RecordRun(context.Background(), OutputFlags{}, domain.Run{Command: "git-merge", ID: "run-1"}, func(w ports.ResultWriter, runID string) error {
		savedID = runID
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, "run-1", savedID)
}

func TestRecordRun_GeneratesID(t *testing.T) {
	store := portsmocks.NewMockResultStore(t)
	c := NewContainer(testConfig())
	c.store = store

	store.EXPECT().CreateRun(mock.Anything, mock.Anything).Return(nil).Once()

	var savedID string
	err := c.RecordRun(context.Background(), OutputFlags{}, domain.Run{Command: "run-file-merges"}, func(w ports.ResultWriter, runID string) error {
		savedID = runID
		return nil
	})

	require.NoError(t, err)
	assert.NotEmpty(t, savedID)
}

func TestRecordRun_CreateFailureSkipsSave(t *testing.T) {
	store := portsmocks.NewMockResultStore(t)
	c := NewContainer(testConfig())
	c.store = store

	store.EXPECT().CreateRun(mock.Anything, mock.Anything).Return(errors.New("database is locked")).Once()

	err := c.RecordRun(context.Background(), OutputFlags{}, domain.Run{Command: "git-merge"}, func(ports.ResultWriter, string) error {
		t.Fatal("save must not run")
		return nil
	})

	require.Error(t, err)
}

func TestRepository_NamesProjectAfterRepository(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "calc")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "src"), 0755))
	out, err := exec.Command("git", "init", "-q", dir).CombinedOutput()
	require.NoError(t, err, string(out))

	c := NewContainer(testConfig())
	path, source, err := c.Repository(filepath.Join(dir, "src"))
	require.NoError(t, err)

	assert.Equal(t, "calc", filepath.Base(path))
	assert.Equal(t, "calc", source.Repo)
	assert.False(t, source.IsRemote)
}

func TestPublish_WithoutBucketIsNoop(t *testing.T) {
	c := NewContainer(testConfig())

	require.NoError(t, c.Publish(context.Background(), "", []string{"results.csv"}))
}

func TestDispatcher_Strategies(t *testing.T) {
	c := NewContainer(testConfig())
	ctx := context.Background()

	d, err := c.Dispatcher(ctx, DispatchFlags{})
	require.NoError(t, err)
	assert.NotNil(t, d)

	// Without a Redis address the ranks run in-process
	d, err = c.Dispatcher(ctx, DispatchFlags{Strategy: config.StrategyRank, Workers: 3})
	require.NoError(t, err)
	assert.NotNil(t, d)

	_, err = c.Dispatcher(ctx, DispatchFlags{Strategy: "mpi"})
	require.Error(t, err)
}

func TestClose_RunsClosersInReverse(t *testing.T) {
	c := NewContainer(testConfig())

	var order []int
	c.closers = append(c.closers,
		func() error { order = append(order, 1); return nil },
		func() error { order = append(order, 2); return errors.New("boom") },
	)

	err := c.Close()

	require.ErrorContains(t, err, "boom")
	assert.Equal(t, []int{2, 1}, order)
	assert.NoError(t, c.Close())
}

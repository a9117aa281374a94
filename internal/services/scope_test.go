package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/mergebench/internal/ports"
	portsmocks "github.com/renato0307/mergebench/internal/ports/mocks"
)

var savedState = ports.WorkspaceState{Head: "main"}

func TestScoped_RestoresAfterSuccess(t *testing.T) {
	ws := portsmocks.NewMockWorkspace(t)
	ws.EXPECT().Save(mock.Anything).Return(savedState, nil).Once()
	ws.EXPECT().Restore(mock.Anything, savedState).Return(nil).Once()

	ran := false
	err := scoped(context.Background(), ws, func() error {
		ran = true
		return nil
	})

	require.NoError(t, err)
	assert.True(t, ran)
}

func TestScoped_JoinsRestoreError(t *testing.T) {
	bodyErr := errors.New("body failed")
	restoreErr := errors.New("restore failed")

	ws := portsmocks.NewMockWorkspace(t)
	ws.EXPECT().Save(mock.Anything).Return(savedState, nil)
	ws.EXPECT().Restore(mock.Anything, savedState).Return(restoreErr)

	err := scoped(context.Background(), ws, func() error { return bodyErr })

	require.Error(t, err)
	assert.ErrorIs(t, err, bodyErr)
	assert.ErrorIs(t, err, restoreErr)
}

func TestScoped_RestoresOnPanic(t *testing.T) {
	ws := portsmocks.NewMockWorkspace(t)
	ws.EXPECT().Save(mock.Anything).Return(savedState, nil)
	ws.EXPECT().Restore(mock.Anything, savedState).Return(nil).Once()

	assert.Panics(t, func() {
		_ = scoped(context.Background(), ws, func() error { panic("driver exploded") })
	})
}

func TestScoped_RestoresWithCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	ws := portsmocks.NewMockWorkspace(t)
	ws.EXPECT().Save(mock.Anything).Return(savedState, nil)
	ws.EXPECT().Restore(mock.Anything, savedState).
		RunAndReturn(func(ctx context.Context, _ ports.WorkspaceState) error {
			return ctx.Err()
		})

	err := scoped(ctx, ws, func() error {
		cancel()
		return nil
	})

	require.NoError(t, err)
}

func TestScoped_SaveFailureSkipsBody(t *testing.T) {
	ws := portsmocks.NewMockWorkspace(t)
	ws.EXPECT().Save(mock.Anything).Return(ports.WorkspaceState{}, errors.New("not a repo"))

	err := scoped(context.Background(), ws, func() error {
		t.Fatal("body must not run")
		return nil
	})

	require.Error(t, err)
}

func TestWithCheckout(t *testing.T) {
	ws := portsmocks.NewMockWorkspace(t)
	ws.EXPECT().Save(mock.Anything).Return(savedState, nil)
	ws.EXPECT().Checkout(mock.Anything, "abc123").Return(nil).Once()
	ws.EXPECT().Restore(mock.Anything, savedState).Return(nil).Once()

	called := false
	err := withCheckout(context.Background(), ws, "abc123", func() error {
		called = true
		return nil
	})

	require.NoError(t, err)
	assert.True(t, called)
}

package services

import (
	"context"
	"errors"

	"github.com/renato0307/mergebench/internal/ports"
)

// scoped saves the workspace state, runs fn and restores the state on every
// exit path, including a panic inside fn. Restore errors are joined with the
// error returned by fn.
func scoped(ctx context.Context, ws ports.Workspace, fn func() error) (err error) {
	state, err := ws.Save(ctx)
	if err != nil {
		return err
	}

	defer func() {
		// Restore even when the caller's context is already cancelled
		if restoreErr := ws.Restore(context.WithoutCancel(ctx), state); restoreErr != nil {
			err = errors.Join(err, restoreErr)
		}
	}()

	return fn()
}

// withCheckout runs fn with rev checked out in ws, restoring the previous
// HEAD afterwards
func withCheckout(ctx context.Context, ws ports.Workspace, rev string, fn func() error) error {
	return scoped(ctx, ws, func() error {
		if err := ws.Checkout(ctx, rev); err != nil {
			return err
		}
		return fn()
	})
}

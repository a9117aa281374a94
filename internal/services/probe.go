package services

import (
	"context"

	"github.com/renato0307/mergebench/internal/logging"
	"github.com/renato0307/mergebench/internal/ports"
)

// BuildProbe implements ports.BuildProbe by building commits in a workspace.
// The workspace is restored after every probe.
type BuildProbe struct {
	builder ports.Builder
	ws      ports.Workspace
}

// Verify interface compliance at compile time
var _ ports.BuildProbe = (*BuildProbe)(nil)

// NewBuildProbe creates a new BuildProbe
func NewBuildProbe(ws ports.Workspace, builder ports.Builder) *BuildProbe {
	return &BuildProbe{builder: builder, ws: ws}
}

// IsBuildable reports whether commitHash compiles
func (p *BuildProbe) IsBuildable(ctx context.Context, commitHash string) bool {
	return p.probe(ctx, commitHash, "compile", p.builder.Compile)
}

// IsTestable reports whether commitHash passes its test suite
func (p *BuildProbe) IsTestable(ctx context.Context, commitHash string) bool {
	return p.probe(ctx, commitHash, "test", p.builder.Test)
}

func (p *BuildProbe) probe(ctx context.Context, commitHash, goal string, run func(context.Context, string) bool) bool {
	ok := false
	err := withCheckout(ctx, p.ws, commitHash, func() error {
		ok = run(ctx, p.ws.Dir())
		return nil
	})
	if err != nil {
		logging.Logger.Warn("Build probe failed", "error", err, "commit", commitHash, "goal", goal)
		return false
	}

	logging.Logger.Info("Build probe finished", "commit", commitHash, "goal", goal, "ok", ok)
	return ok
}

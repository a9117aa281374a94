package services

import (
	"context"
	"fmt"

	"github.com/renato0307/mergebench/internal/domain"
	"github.com/renato0307/mergebench/internal/logging"
	"github.com/renato0307/mergebench/internal/ports"
)

// MineOptions selects which merge scenarios Mine keeps
type MineOptions struct {
	AllowList        []string // expected commit hashes; empty keeps all
	AllRefs          bool     // walk every ref instead of HEAD only
	Buildable        bool     // all four commits must compile
	NonTrivial       bool     // drop merges git resolves on its own
	SkipDeleteModify bool     // drop merges with delete/modify conflicts
	Testable         bool     // all four build and the expected commit passes its tests
}

// ScenarioMiner discovers merge scenarios in a commit history
type ScenarioMiner struct {
	history ports.HistoryReader
	probe   ports.BuildProbe
	ws      ports.Workspace
}

// NewScenarioMiner creates a new ScenarioMiner. ws is only needed for
// non-trivial filtering and probe only for build filtering; both may be nil
// otherwise.
func NewScenarioMiner(history ports.HistoryReader, ws ports.Workspace, probe ports.BuildProbe) *ScenarioMiner {
	return &ScenarioMiner{history: history, probe: probe, ws: ws}
}

// Mine returns the merge scenarios of the history in discovery order.
// Scenarios that cannot be analyzed are logged and dropped; only a failure
// to read the history is returned.
func (m *ScenarioMiner) Mine(ctx context.Context, opts MineOptions) ([]domain.MergeScenario, error) {
	commits, err := m.history.MergeCommits(ctx, opts.AllRefs)
	if err != nil {
		return nil, fmt.Errorf("failed to list merge commits: %w", err)
	}

	allowed := make(map[string]bool, len(opts.AllowList))
	for _, hash := range opts.AllowList {
		allowed[hash] = true
	}

	probes := newProbeCache(m.probe)
	var scenarios []domain.MergeScenario
	for _, c := range commits {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if len(allowed) > 0 && !allowed[c.Hash] {
			continue
		}

		ms, err := m.scenarioFor(c)
		if err != nil {
			logMineError(err, c.Hash)
			continue
		}

		keep, err := m.keep(ctx, ms, opts, probes)
		if err != nil {
			logMineError(err, c.Hash)
			continue
		}
		if keep {
			scenarios = append(scenarios, ms)
		}
	}

	logging.Logger.Info("Mined merge scenarios", "merges", len(commits), "scenarios", len(scenarios))
	return scenarios, nil
}

// Resolve turns the hashes of a serialized scenario back into commits
func (m *ScenarioMiner) Resolve(s domain.SerializableMergeScenario) (domain.MergeScenario, error) {
	var ms domain.MergeScenario
	targets := []struct {
		hash   string
		commit *domain.Commit
	}{
		{s.Base, &ms.Base},
		{s.Expected, &ms.Expected},
		{s.Left, &ms.Left},
		{s.Right, &ms.Right},
	}
	for _, target := range targets {
		c, err := m.history.Commit(target.hash)
		if err != nil {
			return domain.MergeScenario{}, fmt.Errorf("failed to resolve scenario %s: %w", s.Expected, err)
		}
		*target.commit = c
	}
	return ms, nil
}

// ResolveAll resolves serialized scenarios, dropping the ones that fail
func (m *ScenarioMiner) ResolveAll(serialized []domain.SerializableMergeScenario) []domain.MergeScenario {
	scenarios := make([]domain.MergeScenario, 0, len(serialized))
	for _, s := range serialized {
		ms, err := m.Resolve(s)
		if err != nil {
			logging.Logger.Warn("Skipping unresolvable scenario", "error", err, "merge_commit", s.Expected)
			continue
		}
		scenarios = append(scenarios, ms)
	}
	return scenarios
}

func (m *ScenarioMiner) scenarioFor(c domain.Commit) (domain.MergeScenario, error) {
	if !c.IsMerge() {
		return domain.MergeScenario{}, fmt.Errorf("%w: %s", domain.ErrNotAMerge, c.Hash)
	}

	left, err := m.history.Commit(c.ParentHashes[0])
	if err != nil {
		return domain.MergeScenario{}, err
	}
	right, err := m.history.Commit(c.ParentHashes[1])
	if err != nil {
		return domain.MergeScenario{}, err
	}

	bases, err := m.history.MergeBases(left.Hash, right.Hash)
	if err != nil {
		return domain.MergeScenario{}, err
	}
	switch len(bases) {
	case 0:
		return domain.MergeScenario{}, fmt.Errorf("%w: %s", domain.ErrNoMergeBase, c.Hash)
	case 1:
	default:
		return domain.MergeScenario{}, fmt.Errorf("%w: %s has %d merge bases", domain.ErrAmbiguousMergeBase, c.Hash, len(bases))
	}

	base, err := m.history.Commit(bases[0])
	if err != nil {
		return domain.MergeScenario{}, err
	}

	return domain.MergeScenario{Base: base, Expected: c, Left: left, Right: right}, nil
}

// keep applies the optional filters, cheapest first
func (m *ScenarioMiner) keep(ctx context.Context, ms domain.MergeScenario, opts MineOptions, probes *probeCache) (bool, error) {
	if opts.NonTrivial {
		trivial, err := m.isTrivial(ctx, ms)
		if err != nil {
			return false, err
		}
		if trivial {
			logging.Logger.Debug("Dropping trivial merge", "merge_commit", ms.Expected.Hash)
			return false, nil
		}
	}

	if opts.SkipDeleteModify {
		found, err := m.hasDeleteModify(ctx, ms)
		if err != nil {
			return false, err
		}
		if found {
			logging.Logger.Info("Dropping merge with delete/modify conflict", "merge_commit", ms.Expected.Hash)
			return false, nil
		}
	}

	if opts.Buildable || opts.Testable {
		for _, c := range ms.Commits() {
			if !probes.buildable(ctx, c.Hash) {
				logging.Logger.Info("Dropping unbuildable merge", "merge_commit", ms.Expected.Hash, "commit", c.Hash)
				return false, nil
			}
		}
	}

	if opts.Testable && !probes.testable(ctx, ms.Expected.Hash) {
		logging.Logger.Info("Dropping untestable merge", "merge_commit", ms.Expected.Hash)
		return false, nil
	}

	return true, nil
}

// isTrivial reports whether git's own merge reproduces the recorded result
func (m *ScenarioMiner) isTrivial(ctx context.Context, ms domain.MergeScenario) (bool, error) {
	if m.ws == nil {
		return false, fmt.Errorf("non-trivial filtering requires a workspace")
	}

	auto, err := m.ws.AutoMergeTree(ctx, ms.Base.Hash, ms.Left.Hash, ms.Right.Hash)
	if err != nil {
		return false, err
	}
	return auto.Clean && auto.TreeHash == ms.Expected.TreeHash, nil
}

// hasDeleteModify reports whether one side deletes a path the other modifies
func (m *ScenarioMiner) hasDeleteModify(ctx context.Context, ms domain.MergeScenario) (bool, error) {
	leftChanges, err := m.history.TreeChanges(ctx, ms.Base.Hash, ms.Left.Hash, false)
	if err != nil {
		return false, err
	}
	rightChanges, err := m.history.TreeChanges(ctx, ms.Base.Hash, ms.Right.Hash, false)
	if err != nil {
		return false, err
	}

	return crossesDeleteModify(leftChanges, rightChanges) || crossesDeleteModify(rightChanges, leftChanges), nil
}

func crossesDeleteModify(deleting, modifying []ports.TreeChange) bool {
	deleted := make(map[string]bool)
	for _, c := range deleting {
		if c.Action == ports.ChangeDelete {
			deleted[c.FromPath] = true
		}
	}
	for _, c := range modifying {
		if c.Action == ports.ChangeModify && deleted[c.FromPath] {
			return true
		}
	}
	return false
}

func logMineError(err error, hash string) {
	if domain.IsSkippable(err) {
		logging.Logger.Warn("Skipping merge commit", "error", err, "merge_commit", hash)
		return
	}
	logging.Logger.Error("Failed to analyze merge commit", "error", err, "merge_commit", hash)
}

// probeCache remembers build probe results; commits recur across scenarios
type probeCache struct {
	builds map[string]bool
	probe  ports.BuildProbe
	tests  map[string]bool
}

func newProbeCache(probe ports.BuildProbe) *probeCache {
	return &probeCache{
		builds: make(map[string]bool),
		probe:  probe,
		tests:  make(map[string]bool),
	}
}

func (c *probeCache) buildable(ctx context.Context, hash string) bool {
	if ok, seen := c.builds[hash]; seen {
		return ok
	}
	ok := c.probe != nil && c.probe.IsBuildable(ctx, hash)
	c.builds[hash] = ok
	return ok
}

func (c *probeCache) testable(ctx context.Context, hash string) bool {
	if ok, seen := c.tests[hash]; seen {
		return ok
	}
	ok := c.probe != nil && c.probe.IsTestable(ctx, hash)
	c.tests[hash] = ok
	return ok
}

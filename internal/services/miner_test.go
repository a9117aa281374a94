package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/mergebench/internal/domain"
	"github.com/renato0307/mergebench/internal/ports"
	portsmocks "github.com/renato0307/mergebench/internal/ports/mocks"
)

func expectedHashes(scenarios []domain.MergeScenario) []string {
	hashes := make([]string, 0, len(scenarios))
	for _, ms := range scenarios {
		hashes = append(hashes, ms.Expected.Hash)
	}
	return hashes
}

func TestMine_DiscoveryOrderAndParents(t *testing.T) {
	h := newFakeHistory()
	first := h.addScenario("b1", "l1", "r1", "m1")
	h.addScenario("b2", "l2", "r2", "m2")

	scenarios, err := NewScenarioMiner(h, nil, nil).Mine(context.Background(), MineOptions{})

	require.NoError(t, err)
	assert.Equal(t, []string{"m1", "m2"}, expectedHashes(scenarios))
	assert.Equal(t, first, scenarios[0])
}

func TestMine_AllowList(t *testing.T) {
	h := newFakeHistory()
	h.addScenario("b1", "l1", "r1", "m1")
	h.addScenario("b2", "l2", "r2", "m2")

	scenarios, err := NewScenarioMiner(h, nil, nil).Mine(context.Background(), MineOptions{AllowList: []string{"m2"}})

	require.NoError(t, err)
	assert.Equal(t, []string{"m2"}, expectedHashes(scenarios))
}

func TestMine_SkipsMergesWithoutUniqueBase(t *testing.T) {
	h := newFakeHistory()
	h.addScenario("b1", "l1", "r1", "m1")
	h.addScenario("b2", "l2", "r2", "criss-cross")
	h.bases[[2]string{"l2", "r2"}] = []string{"b2", "b2x"}
	h.addScenario("b3", "l3", "r3", "unrelated")
	delete(h.bases, [2]string{"l3", "r3"})

	scenarios, err := NewScenarioMiner(h, nil, nil).Mine(context.Background(), MineOptions{})

	require.NoError(t, err)
	assert.Equal(t, []string{"m1"}, expectedHashes(scenarios))
}

func TestScenarioFor_Errors(t *testing.T) {
	h := newFakeHistory()
	h.addScenario("b1", "l1", "r1", "m1")
	h.bases[[2]string{"l1", "r1"}] = []string{"b1", "b1x"}
	octopus := domain.Commit{Hash: "oct", ParentHashes: []string{"a", "b", "c"}}

	m := NewScenarioMiner(h, nil, nil)

	_, err := m.scenarioFor(octopus)
	assert.ErrorIs(t, err, domain.ErrNotAMerge)

	_, err = m.scenarioFor(h.commits["m1"])
	assert.ErrorIs(t, err, domain.ErrAmbiguousMergeBase)
	assert.True(t, domain.IsSkippable(err))
}

func TestMine_NonTrivial(t *testing.T) {
	h := newFakeHistory()
	trivial := h.addScenario("b1", "l1", "r1", "trivial")
	h.addScenario("b2", "l2", "r2", "resolved")
	h.addScenario("b3", "l3", "r3", "conflicting")

	ws := portsmocks.NewMockWorkspace(t)
	ws.EXPECT().AutoMergeTree(mock.Anything, "b1", "l1", "r1").
		Return(ports.AutoMerge{Clean: true, TreeHash: trivial.Expected.TreeHash}, nil)
	ws.EXPECT().AutoMergeTree(mock.Anything, "b2", "l2", "r2").
		Return(ports.AutoMerge{Clean: true, TreeHash: "other-tree"}, nil)
	ws.EXPECT().AutoMergeTree(mock.Anything, "b3", "l3", "r3").
		Return(ports.AutoMerge{Clean: false, TreeHash: "tree-conflicting"}, nil)

	scenarios, err := NewScenarioMiner(h, ws, nil).Mine(context.Background(), MineOptions{NonTrivial: true})

	require.NoError(t, err)
	assert.Equal(t, []string{"resolved", "conflicting"}, expectedHashes(scenarios))
}

func TestMine_NonTrivialWithoutWorkspace(t *testing.T) {
	h := newFakeHistory()
	h.addScenario("b1", "l1", "r1", "m1")

	scenarios, err := NewScenarioMiner(h, nil, nil).Mine(context.Background(), MineOptions{NonTrivial: true})

	require.NoError(t, err)
	assert.Empty(t, scenarios)
}

func TestMine_SkipDeleteModify(t *testing.T) {
	h := newFakeHistory()
	h.addScenario("b1", "l1", "r1", "deletes-left")
	h.setChanges("b1", "l1", deletion("A.java"))
	h.setChanges("b1", "r1", modify("A.java"))

	h.addScenario("b2", "l2", "r2", "deletes-right")
	h.setChanges("b2", "l2", modify("B.java"))
	h.setChanges("b2", "r2", deletion("B.java"))

	h.addScenario("b3", "l3", "r3", "disjoint")
	h.setChanges("b3", "l3", deletion("C.java"))
	h.setChanges("b3", "r3", modify("D.java"))

	scenarios, err := NewScenarioMiner(h, nil, nil).Mine(context.Background(), MineOptions{SkipDeleteModify: true})

	require.NoError(t, err)
	assert.Equal(t, []string{"disjoint"}, expectedHashes(scenarios))
}

func TestMine_BuildableProbesEachCommitOnce(t *testing.T) {
	h := newFakeHistory()
	h.addScenario("b1", "l1", "r1", "m1")
	// Second scenario shares its base with the first
	h.addCommit("l2", "b1")
	h.addCommit("r2", "b1")
	h.addCommit("m2", "l2", "r2")
	h.bases[[2]string{"l2", "r2"}] = []string{"b1"}

	probe := portsmocks.NewMockBuildProbe(t)
	for _, hash := range []string{"b1", "l1", "r1", "m1", "l2"} {
		probe.EXPECT().IsBuildable(mock.Anything, hash).Return(true).Once()
	}
	probe.EXPECT().IsBuildable(mock.Anything, "r2").Return(false).Once()

	scenarios, err := NewScenarioMiner(h, nil, probe).Mine(context.Background(), MineOptions{Buildable: true})

	require.NoError(t, err)
	assert.Equal(t, []string{"m1"}, expectedHashes(scenarios))
}

func TestMine_Testable(t *testing.T) {
	h := newFakeHistory()
	h.addScenario("b1", "l1", "r1", "m1")
	h.addScenario("b2", "l2", "r2", "m2")

	probe := portsmocks.NewMockBuildProbe(t)
	probe.EXPECT().IsBuildable(mock.Anything, mock.Anything).Return(true)
	probe.EXPECT().IsTestable(mock.Anything, "m1").Return(false)
	probe.EXPECT().IsTestable(mock.Anything, "m2").Return(true)

	scenarios, err := NewScenarioMiner(h, nil, probe).Mine(context.Background(), MineOptions{Testable: true})

	require.NoError(t, err)
	assert.Equal(t, []string{"m2"}, expectedHashes(scenarios))
}

func TestMine_CancelledContext(t *testing.T) {
	h := newFakeHistory()
	h.addScenario("b1", "l1", "r1", "m1")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewScenarioMiner(h, nil, nil).Mine(ctx, MineOptions{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestResolve_RoundTrip(t *testing.T) {
	h := newFakeHistory()
	ms := h.addScenario("b1", "l1", "r1", "m1")
	m := NewScenarioMiner(h, nil, nil)

	resolved, err := m.Resolve(ms.ToSerializable())

	require.NoError(t, err)
	assert.Equal(t, ms, resolved)
}

func TestResolveAll_DropsUnknownCommits(t *testing.T) {
	h := newFakeHistory()
	ms := h.addScenario("b1", "l1", "r1", "m1")
	unknown := domain.SerializableMergeScenario{Base: "x", Expected: "y", Left: "z", Right: "w"}

	resolved := NewScenarioMiner(h, nil, nil).ResolveAll([]domain.SerializableMergeScenario{unknown, ms.ToSerializable()})

	assert.Equal(t, []domain.MergeScenario{ms}, resolved)
}

func TestMine_UnreadableParentIsSkipped(t *testing.T) {
	history := portsmocks.NewMockHistoryReader(t)
	merge := domain.Commit{Hash: "m", ParentHashes: []string{"l", "r"}}
	broken := domain.Commit{Hash: "x", ParentHashes: []string{"gone", "r"}}
	left := domain.Commit{Hash: "l", ParentHashes: []string{"b"}}
	right := domain.Commit{Hash: "r", ParentHashes: []string{"b"}}
	base := domain.Commit{Hash: "b"}

	history.EXPECT().MergeCommits(mock.Anything, true).Return([]domain.Commit{broken, merge}, nil).Once()
	history.EXPECT().Commit("gone").Return(domain.Commit{}, errors.New("object not found")).Once()
	history.EXPECT().Commit("l").Return(left, nil).Once()
	history.EXPECT().Commit("r").Return(right, nil).Once()
	history.EXPECT().MergeBases("l", "r").Return([]string{"b"}, nil).Once()
	history.EXPECT().Commit("b").Return(base, nil).Once()

	scenarios, err := NewScenarioMiner(history, nil, nil).Mine(context.Background(), MineOptions{AllRefs: true})

	require.NoError(t, err)
	assert.Equal(t, []domain.MergeScenario{{Base: base, Expected: merge, Left: left, Right: right}}, scenarios)
}

func TestMine_ListingFailure(t *testing.T) {
	history := portsmocks.NewMockHistoryReader(t)
	history.EXPECT().MergeCommits(mock.Anything, false).Return(nil, errors.New("bad object HEAD")).Once()

	_, err := NewScenarioMiner(history, nil, nil).Mine(context.Background(), MineOptions{})

	require.ErrorContains(t, err, "failed to list merge commits")
}

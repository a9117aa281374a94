package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/renato0307/mergebench/internal/domain"
)

func eval(commit, file, cmd string, outcome domain.MergeOutcome, diff int) domain.MergeEvaluation {
	return domain.MergeEvaluation{
		GitDiffSize: diff,
		MergeCmd:    cmd,
		MergeCommit: commit,
		MergeDir:    "/merges/" + commit + "/" + file,
		Outcome:     outcome,
	}
}

func TestSummarize(t *testing.T) {
	summaries := Summarize([]domain.MergeEvaluation{
		eval("c1", "A", "spork", domain.OutcomeSuccess, 0),
		eval("c1", "B", "spork", domain.OutcomeConflict, 4),
		eval("c2", "A", "spork", domain.OutcomeFail, -1),
		eval("c1", "A", "jdime", domain.OutcomeSuccess, 3),
	})

	assert.Equal(t, map[string]CommandSummary{
		"spork": {Conflicts: 1, DiffSize: 4, Fails: 1, FileMerges: 3},
		"jdime": {DiffSize: 3, FileMerges: 1},
	}, summaries)
}

func TestBaselineCommits(t *testing.T) {
	commits := BaselineCommits([]domain.MergeEvaluation{
		eval("c2", "A", "spork", domain.OutcomeSuccess, 0),
		eval("c1", "A", "spork", domain.OutcomeSuccess, 0),
		eval("c2", "B", "spork", domain.OutcomeSuccess, 0),
	})

	assert.Equal(t, []string{"c2", "c1"}, commits)
}

func TestAtLeastAsGoodAs(t *testing.T) {
	baseline := []domain.MergeEvaluation{
		eval("c1", "A", "spork", domain.OutcomeSuccess, 2),
		eval("c1", "B", "spork", domain.OutcomeConflict, 5),
		eval("c2", "A", "spork", domain.OutcomeFail, -1),
	}

	tests := []struct {
		name     string
		current  []domain.MergeEvaluation
		expected bool
	}{
		{"identical", baseline, true},
		{"improved", []domain.MergeEvaluation{
			eval("c1", "A", "spork", domain.OutcomeSuccess, 0),
			eval("c1", "B", "spork", domain.OutcomeSuccess, 1),
			eval("c2", "A", "spork", domain.OutcomeConflict, 3),
		}, true},
		{"more fails", []domain.MergeEvaluation{
			eval("c1", "A", "spork", domain.OutcomeFail, -1),
			eval("c1", "B", "spork", domain.OutcomeConflict, 5),
			eval("c2", "A", "spork", domain.OutcomeFail, -1),
		}, false},
		{"more conflicts", []domain.MergeEvaluation{
			eval("c1", "A", "spork", domain.OutcomeConflict, 2),
			eval("c1", "B", "spork", domain.OutcomeConflict, 5),
			eval("c2", "A", "spork", domain.OutcomeFail, -1),
		}, false},
		{"larger diff", []domain.MergeEvaluation{
			eval("c1", "A", "spork", domain.OutcomeSuccess, 3),
			eval("c1", "B", "spork", domain.OutcomeConflict, 5),
			eval("c2", "A", "spork", domain.OutcomeFail, -1),
		}, false},
		{"command missing", []domain.MergeEvaluation{
			eval("c1", "A", "jdime", domain.OutcomeSuccess, 0),
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, AtLeastAsGoodAs(tt.current, baseline))
		})
	}
}

func TestLogDiffs(t *testing.T) {
	baseline := []domain.MergeEvaluation{
		eval("c1", "A", "spork", domain.OutcomeSuccess, 0),
		eval("c1", "B", "spork", domain.OutcomeConflict, 5),
		eval("c2", "A", "spork", domain.OutcomeSuccess, 1),
	}
	current := []domain.MergeEvaluation{
		eval("c1", "A", "spork", domain.OutcomeSuccess, 0),
		eval("c1", "B", "spork", domain.OutcomeSuccess, 2),
		eval("c3", "A", "spork", domain.OutcomeSuccess, 0),
	}

	// B changed, c3/A is new and c2/A is missing
	assert.Equal(t, 3, LogDiffs(current, baseline))
	assert.Zero(t, LogDiffs(baseline, baseline))
}

package services

import (
	"path/filepath"
	"sort"

	"github.com/renato0307/mergebench/internal/domain"
	"github.com/renato0307/mergebench/internal/logging"
)

// CommandSummary totals the evaluations of one merge command
type CommandSummary struct {
	Conflicts  int
	DiffSize   int // summed over replays that produced a file
	Fails      int
	FileMerges int
}

// Summarize totals evaluations per merge command
func Summarize(evals []domain.MergeEvaluation) map[string]CommandSummary {
	summaries := make(map[string]CommandSummary)
	for _, e := range evals {
		s := summaries[e.MergeCmd]
		s.FileMerges++
		switch e.Outcome {
		case domain.OutcomeFail:
			s.Fails++
		case domain.OutcomeConflict:
			s.Conflicts++
		}
		if e.GitDiffSize > 0 {
			s.DiffSize += e.GitDiffSize
		}
		summaries[e.MergeCmd] = s
	}
	return summaries
}

// BaselineCommits returns the distinct merge commits of the baseline in
// first-seen order
func BaselineCommits(baseline []domain.MergeEvaluation) []string {
	seen := make(map[string]bool)
	var commits []string
	for _, e := range baseline {
		if !seen[e.MergeCommit] {
			seen[e.MergeCommit] = true
			commits = append(commits, e.MergeCommit)
		}
	}
	return commits
}

// AtLeastAsGoodAs reports whether current is no worse than baseline for
// every merge command of the baseline: no more fails, no more conflicts and
// no larger total diff
func AtLeastAsGoodAs(current, baseline []domain.MergeEvaluation) bool {
	now := Summarize(current)
	good := true
	for cmd, before := range Summarize(baseline) {
		after, ok := now[cmd]
		if !ok {
			logging.Logger.Warn("Merge command missing from new results", "cmd", cmd)
			good = false
			continue
		}
		if after.Fails > before.Fails || after.Conflicts > before.Conflicts || after.DiffSize > before.DiffSize {
			logging.Logger.Warn("Merge command got worse",
				"cmd", cmd,
				"fails", before.Fails, "new_fails", after.Fails,
				"conflicts", before.Conflicts, "new_conflicts", after.Conflicts,
				"diff_size", before.DiffSize, "new_diff_size", after.DiffSize)
			good = false
		}
	}
	return good
}

type evaluationKey struct {
	cmd    string
	commit string
	file   string
}

func keyOf(e domain.MergeEvaluation) evaluationKey {
	return evaluationKey{cmd: e.MergeCmd, commit: e.MergeCommit, file: filepath.Base(e.MergeDir)}
}

// LogDiffs logs every file merge whose outcome or diff size changed, and
// the ones present in only one of the runs. It returns how many were logged.
func LogDiffs(current, baseline []domain.MergeEvaluation) int {
	before := make(map[evaluationKey]domain.MergeEvaluation, len(baseline))
	for _, e := range baseline {
		before[keyOf(e)] = e
	}

	diffs := 0
	seen := make(map[evaluationKey]bool, len(current))
	for _, e := range current {
		key := keyOf(e)
		seen[key] = true
		old, ok := before[key]
		switch {
		case !ok:
			logging.Logger.Info("New file merge", "merge_commit", key.commit, "file", key.file, "cmd", key.cmd)
			diffs++
		case old.Outcome != e.Outcome || old.GitDiffSize != e.GitDiffSize:
			logging.Logger.Info("File merge changed",
				"merge_commit", key.commit, "file", key.file, "cmd", key.cmd,
				"outcome", old.Outcome, "new_outcome", e.Outcome,
				"diff_size", old.GitDiffSize, "new_diff_size", e.GitDiffSize)
			diffs++
		}
	}

	var missing []evaluationKey
	for key := range before {
		if !seen[key] {
			missing = append(missing, key)
		}
	}
	sort.Slice(missing, func(i, j int) bool {
		if missing[i].commit != missing[j].commit {
			return missing[i].commit < missing[j].commit
		}
		return missing[i].file < missing[j].file
	})
	for _, key := range missing {
		logging.Logger.Info("File merge missing from new results", "merge_commit", key.commit, "file", key.file, "cmd", key.cmd)
	}

	return diffs + len(missing)
}

package services

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/renato0307/mergebench/internal/domain"
)

// BlobMetainfoPath is where the blob line counts of a results file live
func BlobMetainfoPath(resultsFile string) string {
	stem := strings.TrimSuffix(filepath.Base(resultsFile), filepath.Ext(resultsFile))
	return filepath.Join(filepath.Dir(resultsFile), stem+"_blob_metainfo.csv")
}

// FileMergeMetainfoPath is where the file merge metainfo of a results file lives
func FileMergeMetainfoPath(resultsFile string) string {
	stem := strings.TrimSuffix(filepath.Base(resultsFile), filepath.Ext(resultsFile))
	return filepath.Join(filepath.Dir(resultsFile), stem+"_file_merge_metainfo.csv")
}

// ProjectFromResultsFile names the project a results file belongs to: the
// part of the file name before the first underscore
func ProjectFromResultsFile(resultsFile string) string {
	name := filepath.Base(resultsFile)
	project, _, _ := strings.Cut(name, "_")
	return strings.TrimSuffix(project, filepath.Ext(project))
}

// ComputeStatistics aggregates the evaluations of a project per merge command.
// Magnitude is the mean git diff size and accuracy the mean of
// 1 - diff/lines(expected) clamped to [0, 1], both over replays that produced
// a file. Expected blobs missing from lineCounts are left out of the accuracy.
func ComputeStatistics(project string, evals []domain.MergeEvaluation, lineCounts map[string]int) []domain.MergeEvaluationStatistics {
	type acc struct {
		stats   domain.MergeEvaluationStatistics
		diffSum float64
		diffN   int
		accSum  float64
		accN    int
	}

	byCmd := make(map[string]*acc)
	for _, e := range evals {
		a, ok := byCmd[e.MergeCmd]
		if !ok {
			a = &acc{stats: domain.MergeEvaluationStatistics{Project: project, MergeCmd: e.MergeCmd}}
			byCmd[e.MergeCmd] = a
		}

		a.stats.NumFileMerges++
		switch e.Outcome {
		case domain.OutcomeSuccess:
			a.stats.NumSuccess++
		case domain.OutcomeConflict:
			a.stats.NumConflict++
		case domain.OutcomeFail:
			a.stats.NumFail++
		}

		if e.Outcome == domain.OutcomeFail || e.GitDiffSize < 0 {
			continue
		}
		a.diffSum += float64(e.GitDiffSize)
		a.diffN++

		if lines, ok := lineCounts[e.ExpectedBlob]; ok && lines > 0 {
			a.accSum += clamp01(1 - float64(e.GitDiffSize)/float64(lines))
			a.accN++
		}
	}

	stats := make([]domain.MergeEvaluationStatistics, 0, len(byCmd))
	for _, a := range byCmd {
		if a.diffN > 0 {
			a.stats.GitDiffAvgMagn = a.diffSum / float64(a.diffN)
		}
		if a.accN > 0 {
			a.stats.GitDiffAvgAcc = a.accSum / float64(a.accN)
		}
		stats = append(stats, a.stats)
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].MergeCmd < stats[j].MergeCmd })
	return stats
}

// LineCounts indexes blob metainfo by hash
func LineCounts(metainfo []domain.JavaBlobMetainfo) map[string]int {
	counts := make(map[string]int, len(metainfo))
	for _, m := range metainfo {
		counts[m.Hexsha] = m.NumLines
	}
	return counts
}

func clamp01(v float64) float64 {
	return min(max(v, 0), 1)
}

package csvreport

import (
	"time"

	"github.com/renato0307/mergebench/internal/domain"
)

// ScenarioSchema is the layout of mined merge scenarios
var ScenarioSchema = Schema[domain.SerializableMergeScenario]{Columns: []Column[domain.SerializableMergeScenario]{
	StringColumn("merge_commit",
		func(s domain.SerializableMergeScenario) string { return s.Expected },
		func(s *domain.SerializableMergeScenario, v string) { s.Expected = v }),
	StringColumn("base_commit",
		func(s domain.SerializableMergeScenario) string { return s.Base },
		func(s *domain.SerializableMergeScenario, v string) { s.Base = v }),
	StringColumn("left_commit",
		func(s domain.SerializableMergeScenario) string { return s.Left },
		func(s *domain.SerializableMergeScenario, v string) { s.Left = v }),
	StringColumn("right_commit",
		func(s domain.SerializableMergeScenario) string { return s.Right },
		func(s *domain.SerializableMergeScenario, v string) { s.Right = v }),
}}

// FileMergeMetainfoSchema is the layout of extracted file merges
var FileMergeMetainfoSchema = Schema[domain.FileMergeMetainfo]{Columns: []Column[domain.FileMergeMetainfo]{
	StringColumn("merge_commit",
		func(m domain.FileMergeMetainfo) string { return m.MergeCommit },
		func(m *domain.FileMergeMetainfo, v string) { m.MergeCommit = v }),
	StringColumn("expected_blob",
		func(m domain.FileMergeMetainfo) string { return m.ExpectedBlob },
		func(m *domain.FileMergeMetainfo, v string) { m.ExpectedBlob = v }),
	StringColumn("expected_filepath",
		func(m domain.FileMergeMetainfo) string { return m.ExpectedFilepath },
		func(m *domain.FileMergeMetainfo, v string) { m.ExpectedFilepath = v }),
	StringColumn("base_commit",
		func(m domain.FileMergeMetainfo) string { return m.BaseCommit },
		func(m *domain.FileMergeMetainfo, v string) { m.BaseCommit = v }),
	StringColumn("base_blob",
		func(m domain.FileMergeMetainfo) string { return m.BaseBlob },
		func(m *domain.FileMergeMetainfo, v string) { m.BaseBlob = v }),
	StringColumn("base_filepath",
		func(m domain.FileMergeMetainfo) string { return m.BaseFilepath },
		func(m *domain.FileMergeMetainfo, v string) { m.BaseFilepath = v }),
	StringColumn("left_commit",
		func(m domain.FileMergeMetainfo) string { return m.LeftCommit },
		func(m *domain.FileMergeMetainfo, v string) { m.LeftCommit = v }),
	StringColumn("left_blob",
		func(m domain.FileMergeMetainfo) string { return m.LeftBlob },
		func(m *domain.FileMergeMetainfo, v string) { m.LeftBlob = v }),
	StringColumn("left_filepath",
		func(m domain.FileMergeMetainfo) string { return m.LeftFilepath },
		func(m *domain.FileMergeMetainfo, v string) { m.LeftFilepath = v }),
	StringColumn("right_commit",
		func(m domain.FileMergeMetainfo) string { return m.RightCommit },
		func(m *domain.FileMergeMetainfo, v string) { m.RightCommit = v }),
	StringColumn("right_blob",
		func(m domain.FileMergeMetainfo) string { return m.RightBlob },
		func(m *domain.FileMergeMetainfo, v string) { m.RightBlob = v }),
	StringColumn("right_filepath",
		func(m domain.FileMergeMetainfo) string { return m.RightFilepath },
		func(m *domain.FileMergeMetainfo, v string) { m.RightFilepath = v }),
}}

// MergeResultSchema is the layout of raw file-level replay results
var MergeResultSchema = Schema[domain.MergeResult]{Columns: []Column[domain.MergeResult]{
	StringColumn("merge_dir",
		func(r domain.MergeResult) string { return r.MergeDir },
		func(r *domain.MergeResult, v string) { r.MergeDir = v }),
	StringColumn("merge_file",
		func(r domain.MergeResult) string { return r.MergeFile },
		func(r *domain.MergeResult, v string) { r.MergeFile = v }),
	StringColumn("base_file",
		func(r domain.MergeResult) string { return r.BaseFile },
		func(r *domain.MergeResult, v string) { r.BaseFile = v }),
	StringColumn("left_file",
		func(r domain.MergeResult) string { return r.LeftFile },
		func(r *domain.MergeResult, v string) { r.LeftFile = v }),
	StringColumn("right_file",
		func(r domain.MergeResult) string { return r.RightFile },
		func(r *domain.MergeResult, v string) { r.RightFile = v }),
	StringColumn("expected_file",
		func(r domain.MergeResult) string { return r.ExpectedFile },
		func(r *domain.MergeResult, v string) { r.ExpectedFile = v }),
	StringColumn("merge_cmd",
		func(r domain.MergeResult) string { return r.MergeCmd },
		func(r *domain.MergeResult, v string) { r.MergeCmd = v }),
	OutcomeColumn("outcome",
		func(r domain.MergeResult) domain.MergeOutcome { return r.Outcome },
		func(r *domain.MergeResult, v domain.MergeOutcome) { r.Outcome = v }),
	DurationColumn("runtime",
		func(r domain.MergeResult) time.Duration { return r.Runtime },
		func(r *domain.MergeResult, v time.Duration) { r.Runtime = v }),
}}

// MergeEvaluationSchema is the layout of evaluated file-level replays
var MergeEvaluationSchema = Schema[domain.MergeEvaluation]{Columns: []Column[domain.MergeEvaluation]{
	StringColumn("merge_dir",
		func(e domain.MergeEvaluation) string { return e.MergeDir },
		func(e *domain.MergeEvaluation, v string) { e.MergeDir = v }),
	StringColumn("merge_commit",
		func(e domain.MergeEvaluation) string { return e.MergeCommit },
		func(e *domain.MergeEvaluation, v string) { e.MergeCommit = v }),
	StringColumn("base_blob",
		func(e domain.MergeEvaluation) string { return e.BaseBlob },
		func(e *domain.MergeEvaluation, v string) { e.BaseBlob = v }),
	StringColumn("left_blob",
		func(e domain.MergeEvaluation) string { return e.LeftBlob },
		func(e *domain.MergeEvaluation, v string) { e.LeftBlob = v }),
	StringColumn("right_blob",
		func(e domain.MergeEvaluation) string { return e.RightBlob },
		func(e *domain.MergeEvaluation, v string) { e.RightBlob = v }),
	StringColumn("expected_blob",
		func(e domain.MergeEvaluation) string { return e.ExpectedBlob },
		func(e *domain.MergeEvaluation, v string) { e.ExpectedBlob = v }),
	StringColumn("replayed_blob",
		func(e domain.MergeEvaluation) string { return e.ReplayedBlob },
		func(e *domain.MergeEvaluation, v string) { e.ReplayedBlob = v }),
	StringColumn("merge_cmd",
		func(e domain.MergeEvaluation) string { return e.MergeCmd },
		func(e *domain.MergeEvaluation, v string) { e.MergeCmd = v }),
	OutcomeColumn("outcome",
		func(e domain.MergeEvaluation) domain.MergeOutcome { return e.Outcome },
		func(e *domain.MergeEvaluation, v domain.MergeOutcome) { e.Outcome = v }),
	IntColumn("git_diff_size",
		func(e domain.MergeEvaluation) int { return e.GitDiffSize },
		func(e *domain.MergeEvaluation, v int) { e.GitDiffSize = v }),
	IntColumn("num_conflicts",
		func(e domain.MergeEvaluation) int { return e.NumConflicts },
		func(e *domain.MergeEvaluation, v int) { e.NumConflicts = v }),
	IntColumn("conflict_size",
		func(e domain.MergeEvaluation) int { return e.ConflictSize },
		func(e *domain.MergeEvaluation, v int) { e.ConflictSize = v }),
	FloatColumn("runtime",
		func(e domain.MergeEvaluation) float64 { return e.Runtime },
		func(e *domain.MergeEvaluation, v float64) { e.Runtime = v }),
}}

// GitMergeResultSchema is the layout of scenario-level replays
var GitMergeResultSchema = Schema[domain.GitMergeResult]{Columns: []Column[domain.GitMergeResult]{
	StringColumn("merge_commit",
		func(r domain.GitMergeResult) string { return r.MergeCommit },
		func(r *domain.GitMergeResult, v string) { r.MergeCommit = v }),
	StringColumn("base_commit",
		func(r domain.GitMergeResult) string { return r.BaseCommit },
		func(r *domain.GitMergeResult, v string) { r.BaseCommit = v }),
	StringColumn("left_commit",
		func(r domain.GitMergeResult) string { return r.LeftCommit },
		func(r *domain.GitMergeResult, v string) { r.LeftCommit = v }),
	StringColumn("right_commit",
		func(r domain.GitMergeResult) string { return r.RightCommit },
		func(r *domain.GitMergeResult, v string) { r.RightCommit = v }),
	StringColumn("merge_driver",
		func(r domain.GitMergeResult) string { return r.MergeDriver },
		func(r *domain.GitMergeResult, v string) { r.MergeDriver = v }),
	BoolColumn("merge_ok",
		func(r domain.GitMergeResult) bool { return r.MergeOK },
		func(r *domain.GitMergeResult, v bool) { r.MergeOK = v }),
	BoolColumn("build_ok",
		func(r domain.GitMergeResult) bool { return r.BuildOK },
		func(r *domain.GitMergeResult, v bool) { r.BuildOK = v }),
	IntColumn("num_equal_classfiles",
		func(r domain.GitMergeResult) int { return r.NumEqualClassfiles },
		func(r *domain.GitMergeResult, v int) { r.NumEqualClassfiles = v }),
	IntColumn("num_expected_classfiles",
		func(r domain.GitMergeResult) int { return r.NumExpectedClassfiles },
		func(r *domain.GitMergeResult, v int) { r.NumExpectedClassfiles = v }),
}}

// RuntimeResultSchema is the layout of runtime benchmark samples
var RuntimeResultSchema = Schema[domain.RuntimeResult]{Columns: []Column[domain.RuntimeResult]{
	StringColumn("merge_commit",
		func(r domain.RuntimeResult) string { return r.MergeCommit },
		func(r *domain.RuntimeResult, v string) { r.MergeCommit = v }),
	StringColumn("base_blob",
		func(r domain.RuntimeResult) string { return r.BaseBlob },
		func(r *domain.RuntimeResult, v string) { r.BaseBlob = v }),
	StringColumn("left_blob",
		func(r domain.RuntimeResult) string { return r.LeftBlob },
		func(r *domain.RuntimeResult, v string) { r.LeftBlob = v }),
	StringColumn("right_blob",
		func(r domain.RuntimeResult) string { return r.RightBlob },
		func(r *domain.RuntimeResult, v string) { r.RightBlob = v }),
	Int64Column("runtime_ms",
		func(r domain.RuntimeResult) int64 { return r.RuntimeMS },
		func(r *domain.RuntimeResult, v int64) { r.RuntimeMS = v }),
	StringColumn("merge_cmd",
		func(r domain.RuntimeResult) string { return r.MergeCmd },
		func(r *domain.RuntimeResult, v string) { r.MergeCmd = v }),
}}

// JavaBlobMetainfoSchema is the layout of blob line counts
var JavaBlobMetainfoSchema = Schema[domain.JavaBlobMetainfo]{Columns: []Column[domain.JavaBlobMetainfo]{
	StringColumn("hexsha",
		func(b domain.JavaBlobMetainfo) string { return b.Hexsha },
		func(b *domain.JavaBlobMetainfo, v string) { b.Hexsha = v }),
	IntColumn("num_lines",
		func(b domain.JavaBlobMetainfo) int { return b.NumLines },
		func(b *domain.JavaBlobMetainfo, v int) { b.NumLines = v }),
}}

// StatisticsSchema is the layout of aggregated evaluation statistics
var StatisticsSchema = Schema[domain.MergeEvaluationStatistics]{Columns: []Column[domain.MergeEvaluationStatistics]{
	StringColumn("project",
		func(s domain.MergeEvaluationStatistics) string { return s.Project },
		func(s *domain.MergeEvaluationStatistics, v string) { s.Project = v }),
	StringColumn("merge_cmd",
		func(s domain.MergeEvaluationStatistics) string { return s.MergeCmd },
		func(s *domain.MergeEvaluationStatistics, v string) { s.MergeCmd = v }),
	IntColumn("num_file_merges",
		func(s domain.MergeEvaluationStatistics) int { return s.NumFileMerges },
		func(s *domain.MergeEvaluationStatistics, v int) { s.NumFileMerges = v }),
	IntColumn("num_success",
		func(s domain.MergeEvaluationStatistics) int { return s.NumSuccess },
		func(s *domain.MergeEvaluationStatistics, v int) { s.NumSuccess = v }),
	IntColumn("num_conflict",
		func(s domain.MergeEvaluationStatistics) int { return s.NumConflict },
		func(s *domain.MergeEvaluationStatistics, v int) { s.NumConflict = v }),
	IntColumn("num_fail",
		func(s domain.MergeEvaluationStatistics) int { return s.NumFail },
		func(s *domain.MergeEvaluationStatistics, v int) { s.NumFail = v }),
	FloatColumn("git_diff_avg_magn",
		func(s domain.MergeEvaluationStatistics) float64 { return s.GitDiffAvgMagn },
		func(s *domain.MergeEvaluationStatistics, v float64) { s.GitDiffAvgMagn = v }),
	FloatColumn("git_diff_avg_acc",
		func(s domain.MergeEvaluationStatistics) float64 { return s.GitDiffAvgAcc },
		func(s *domain.MergeEvaluationStatistics, v float64) { s.GitDiffAvgAcc = v }),
}}

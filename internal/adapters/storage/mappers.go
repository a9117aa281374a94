package storage

import (
	"github.com/renato0307/mergebench/internal/domain"
)

func runModelToDomain(m RunModel) domain.Run {
	return domain.Run{
		Command:   m.Command,
		CreatedAt: m.CreatedAt,
		ID:        m.ID,
		Project:   m.Project,
	}
}

func domainToScenarioModel(runID string, s domain.SerializableMergeScenario) ScenarioModel {
	return ScenarioModel{
		BaseCommit:  s.Base,
		LeftCommit:  s.Left,
		MergeCommit: s.Expected,
		RightCommit: s.Right,
		RunID:       runID,
	}
}

func evaluationModelToDomain(m EvaluationModel) domain.MergeEvaluation {
	return domain.MergeEvaluation{
		BaseBlob:     m.BaseBlob,
		ConflictSize: m.ConflictSize,
		ExpectedBlob: m.ExpectedBlob,
		GitDiffSize:  m.GitDiffSize,
		LeftBlob:     m.LeftBlob,
		MergeCmd:     m.MergeCmd,
		MergeCommit:  m.MergeCommit,
		MergeDir:     m.MergeDir,
		NumConflicts: m.NumConflicts,
		Outcome:      domain.MergeOutcome(m.Outcome),
		ReplayedBlob: m.ReplayedBlob,
		RightBlob:    m.RightBlob,
		Runtime:      m.Runtime,
	}
}

func domainToEvaluationModel(runID string, e domain.MergeEvaluation) EvaluationModel {
	return EvaluationModel{
		BaseBlob:     e.BaseBlob,
		ConflictSize: e.ConflictSize,
		ExpectedBlob: e.ExpectedBlob,
		GitDiffSize:  e.GitDiffSize,
		LeftBlob:     e.LeftBlob,
		MergeCmd:     e.MergeCmd,
		MergeCommit:  e.MergeCommit,
		MergeDir:     e.MergeDir,
		NumConflicts: e.NumConflicts,
		Outcome:      string(e.Outcome),
		ReplayedBlob: e.ReplayedBlob,
		RightBlob:    e.RightBlob,
		RunID:        runID,
		Runtime:      e.Runtime,
	}
}

func gitMergeResultModelToDomain(m GitMergeResultModel) domain.GitMergeResult {
	return domain.GitMergeResult{
		BaseCommit:            m.BaseCommit,
		BuildOK:               m.BuildOK,
		LeftCommit:            m.LeftCommit,
		MergeCommit:           m.MergeCommit,
		MergeDriver:           m.MergeDriver,
		MergeOK:               m.MergeOK,
		NumEqualClassfiles:    m.NumEqualClassfiles,
		NumExpectedClassfiles: m.NumExpectedClassfiles,
		RightCommit:           m.RightCommit,
	}
}

func domainToGitMergeResultModel(runID string, r domain.GitMergeResult) GitMergeResultModel {
	return GitMergeResultModel{
		BaseCommit:            r.BaseCommit,
		BuildOK:               r.BuildOK,
		LeftCommit:            r.LeftCommit,
		MergeCommit:           r.MergeCommit,
		MergeDriver:           r.MergeDriver,
		MergeOK:               r.MergeOK,
		NumEqualClassfiles:    r.NumEqualClassfiles,
		NumExpectedClassfiles: r.NumExpectedClassfiles,
		RightCommit:           r.RightCommit,
		RunID:                 runID,
	}
}

func domainToRuntimeResultModel(runID string, r domain.RuntimeResult) RuntimeResultModel {
	return RuntimeResultModel{
		BaseBlob:    r.BaseBlob,
		LeftBlob:    r.LeftBlob,
		MergeCmd:    r.MergeCmd,
		MergeCommit: r.MergeCommit,
		RightBlob:   r.RightBlob,
		RunID:       runID,
		RuntimeMS:   r.RuntimeMS,
	}
}

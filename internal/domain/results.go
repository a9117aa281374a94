package domain

import "time"

// MergeOutcome classifies a single replay
type MergeOutcome string

const (
	OutcomeConflict MergeOutcome = "conflict"
	OutcomeFail     MergeOutcome = "fail"
	OutcomeSuccess  MergeOutcome = "success"
)

// ParseMergeOutcome converts a persisted outcome tag back into a MergeOutcome
func ParseMergeOutcome(s string) (MergeOutcome, error) {
	switch MergeOutcome(s) {
	case OutcomeConflict, OutcomeFail, OutcomeSuccess:
		return MergeOutcome(s), nil
	}
	return "", &InvalidValueError{Field: "outcome", Value: s}
}

// MergeResult is the outcome of replaying one merge directory with one merge tool
type MergeResult struct {
	BaseFile     string
	ExpectedFile string
	LeftFile     string
	MergeCmd     string
	MergeDir     string
	MergeFile    string
	Outcome      MergeOutcome
	RightFile    string
	Runtime      time.Duration
}

// MergeEvaluation extends a MergeResult with diff metrics against the expected file
type MergeEvaluation struct {
	MergeDir     string
	MergeCommit  string
	BaseBlob     string
	LeftBlob     string
	RightBlob    string
	ExpectedBlob string
	ReplayedBlob string
	MergeCmd     string
	Outcome      MergeOutcome
	GitDiffSize  int
	NumConflicts int
	ConflictSize int
	Runtime      float64 // seconds
}

// GitMergeResult is the outcome of replaying a whole scenario with one git merge driver
type GitMergeResult struct {
	MergeCommit           string
	BaseCommit            string
	LeftCommit            string
	RightCommit           string
	MergeDriver           string
	MergeOK               bool
	BuildOK               bool
	NumEqualClassfiles    int
	NumExpectedClassfiles int
}

// RuntimeResult is one timing sample of a file-level replay
type RuntimeResult struct {
	MergeCommit string
	BaseBlob    string
	LeftBlob    string
	RightBlob   string
	MergeCmd    string
	RuntimeMS   int64
}

// JavaBlobMetainfo records the size of a blob taking part in a file merge
type JavaBlobMetainfo struct {
	Hexsha   string
	NumLines int
}

// MergeEvaluationStatistics aggregates evaluations per project and merge command
type MergeEvaluationStatistics struct {
	Project        string
	MergeCmd       string
	NumFileMerges  int
	NumSuccess     int
	NumConflict    int
	NumFail        int
	GitDiffAvgMagn float64
	GitDiffAvgAcc  float64
}

// ExpectedClassfile is a compiled artifact of the expected revision, copied
// out of the working tree so it survives later checkouts
type ExpectedClassfile struct {
	CopyAbsPath     string
	CopyBaseDir     string
	OriginalRelPath string
}

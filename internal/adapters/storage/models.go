package storage

import "time"

// RunModel is the GORM model for runs table
type RunModel struct {
	Command   string `gorm:"not null;default:''"`
	CreatedAt time.Time
	ID        string `gorm:"primaryKey"`
	Project   string `gorm:"not null;default:'';index:idx_runs_project"`
}

// TableName specifies the table name for GORM
func (RunModel) TableName() string { return "runs" }

// ScenarioModel is the GORM model for mined merge scenarios
type ScenarioModel struct {
	BaseCommit  string `gorm:"not null"`
	ID          uint   `gorm:"primaryKey"`
	LeftCommit  string `gorm:"not null"`
	MergeCommit string `gorm:"not null;index:idx_scenarios_merge"`
	RightCommit string `gorm:"not null"`
	RunID       string `gorm:"not null;index:idx_scenarios_run"`
}

// TableName specifies the table name for GORM
func (ScenarioModel) TableName() string { return "scenarios" }

// EvaluationModel is the GORM model for evaluated file-level replays
type EvaluationModel struct {
	BaseBlob     string
	ConflictSize int
	ExpectedBlob string
	GitDiffSize  int
	ID           uint `gorm:"primaryKey"`
	LeftBlob     string
	MergeCmd     string `gorm:"not null;index:idx_evaluations_cmd"`
	MergeCommit  string `gorm:"not null"`
	MergeDir     string `gorm:"not null"`
	NumConflicts int
	Outcome      string `gorm:"not null;check:outcome IN ('success','conflict','fail')"`
	ReplayedBlob string
	RightBlob    string
	RunID        string `gorm:"not null;index:idx_evaluations_run"`
	Runtime      float64
}

// TableName specifies the table name for GORM
func (EvaluationModel) TableName() string { return "evaluations" }

// GitMergeResultModel is the GORM model for scenario-level replays
type GitMergeResultModel struct {
	BaseCommit            string
	BuildOK               bool `gorm:"not null;default:false"`
	ID                    uint `gorm:"primaryKey"`
	LeftCommit            string
	MergeCommit           string `gorm:"not null"`
	MergeDriver           string `gorm:"not null"`
	MergeOK               bool   `gorm:"not null;default:false"`
	NumEqualClassfiles    int
	NumExpectedClassfiles int
	RightCommit           string
	RunID                 string `gorm:"not null;index:idx_git_merge_results_run"`
}

// TableName specifies the table name for GORM
func (GitMergeResultModel) TableName() string { return "git_merge_results" }

// RuntimeResultModel is the GORM model for runtime benchmark samples
type RuntimeResultModel struct {
	BaseBlob    string
	ID          uint `gorm:"primaryKey"`
	LeftBlob    string
	MergeCmd    string `gorm:"not null"`
	MergeCommit string `gorm:"not null"`
	RightBlob   string
	RunID       string `gorm:"not null;index:idx_runtime_results_run"`
	RuntimeMS   int64
}

// TableName specifies the table name for GORM
func (RuntimeResultModel) TableName() string { return "runtime_results" }

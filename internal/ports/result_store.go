package ports

import (
	"context"

	"github.com/renato0307/mergebench/internal/domain"
)

// ResultWriter persists aggregated results. Only the coordinator writes.
type ResultWriter interface {
	CreateRun(ctx context.Context, run domain.Run) error
	SaveEvaluations(ctx context.Context, runID string, evals []domain.MergeEvaluation) error
	SaveGitMergeResults(ctx context.Context, runID string, results []domain.GitMergeResult) error
	SaveRuntimeResults(ctx context.Context, runID string, results []domain.RuntimeResult) error
	SaveScenarios(ctx context.Context, runID string, scenarios []domain.SerializableMergeScenario) error
}

// ResultReader reads previously persisted results
type ResultReader interface {
	ListEvaluations(ctx context.Context, runID string) ([]domain.MergeEvaluation, error)
	ListGitMergeResults(ctx context.Context, runID string) ([]domain.GitMergeResult, error)
	ListRuns(ctx context.Context) ([]domain.Run, error)
}

// ResultStore is the composite interface
type ResultStore interface {
	ResultReader
	ResultWriter
	Close() error
}

// ObjectStore publishes output files
type ObjectStore interface {
	GetObject(ctx context.Context, key string) ([]byte, error)
	PutObject(ctx context.Context, key string, body []byte) error
}

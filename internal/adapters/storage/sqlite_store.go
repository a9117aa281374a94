package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/renato0307/mergebench/internal/domain"
	"github.com/renato0307/mergebench/internal/logging"
	"github.com/renato0307/mergebench/internal/ports"
)

const (
	batchSize  = 200
	maxRetries = 5
)

// SQLiteStore implements ports.ResultStore using GORM.
// Only the coordinator opens a store; workers never write to it.
type SQLiteStore struct {
	db *gorm.DB
}

// Verify interface compliance at compile time
var _ ports.ResultStore = (*SQLiteStore)(nil)

// gormLogger wraps the mergebench logger for GORM
type gormLogger struct {
	level logger.LogLevel
}

func (l *gormLogger) LogMode(level logger.LogLevel) logger.Interface {
	return &gormLogger{level: level}
}

func (l *gormLogger) Info(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Info {
		logging.Logger.Info(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Warn(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Warn {
		logging.Logger.Warn(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Error(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Error {
		logging.Logger.Error(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level < logger.Info {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logging.Logger.Error("gorm query error",
			"error", err,
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else if elapsed > 200*time.Millisecond {
		logging.Logger.Warn("slow query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else {
		logging.Logger.Debug("gorm query",
			"duration", elapsed,
			"rows", rows,
		)
	}
}

func newGormLogger() logger.Interface {
	if os.Getenv("MERGEBENCH_DEBUG") == "1" {
		return (&gormLogger{}).LogMode(logger.Info)
	}
	return (&gormLogger{}).LogMode(logger.Silent)
}

// NewSQLiteStore opens (creating if needed) the result database at dbPath
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if len(dbPath) > 0 && dbPath[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(homeDir, dbPath[1:])
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		PrepareStmt: false,
		NowFunc:     func() time.Time { return time.Now().UTC() },
		Logger:      newGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")
	db.Exec("PRAGMA synchronous=NORMAL")

	if err := db.AutoMigrate(
		&RunModel{},
		&ScenarioModel{},
		&EvaluationModel{},
		&GitMergeResultModel{},
		&RuntimeResultModel{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	logging.Logger.Debug("Result store opened", "path", dbPath)
	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database handle: %w", err)
	}
	return sqlDB.Close()
}

// CreateRun records a new run
func (s *SQLiteStore) CreateRun(ctx context.Context, run domain.Run) error {
	return withRetry(func() error {
		model := RunModel{
			Command:   run.Command,
			CreatedAt: run.CreatedAt,
			ID:        run.ID,
			Project:   run.Project,
		}
		if err := s.db.WithContext(ctx).Create(&model).Error; err != nil {
			return fmt.Errorf("failed to create run: %w", err)
		}
		return nil
	}, maxRetries)
}

// ListRuns returns every run, newest first
func (s *SQLiteStore) ListRuns(ctx context.Context) ([]domain.Run, error) {
	var models []RunModel
	err := withRetry(func() error {
		return s.db.WithContext(ctx).Order("created_at DESC").Find(&models).Error
	}, maxRetries)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}

	runs := make([]domain.Run, 0, len(models))
	for _, m := range models {
		runs = append(runs, runModelToDomain(m))
	}
	return runs, nil
}

// SaveScenarios stores the mined scenarios of a run
func (s *SQLiteStore) SaveScenarios(ctx context.Context, runID string, scenarios []domain.SerializableMergeScenario) error {
	models := make([]ScenarioModel, 0, len(scenarios))
	for _, sc := range scenarios {
		models = append(models, domainToScenarioModel(runID, sc))
	}
	return saveAll(ctx, s.db, "scenarios", models)
}

// SaveEvaluations stores the file-level evaluations of a run
func (s *SQLiteStore) SaveEvaluations(ctx context.Context, runID string, evals []domain.MergeEvaluation) error {
	models := make([]EvaluationModel, 0, len(evals))
	for _, e := range evals {
		models = append(models, domainToEvaluationModel(runID, e))
	}
	return saveAll(ctx, s.db, "evaluations", models)
}

// SaveGitMergeResults stores the scenario-level results of a run
func (s *SQLiteStore) SaveGitMergeResults(ctx context.Context, runID string, results []domain.GitMergeResult) error {
	models := make([]GitMergeResultModel, 0, len(results))
	for _, r := range results {
		models = append(models, domainToGitMergeResultModel(runID, r))
	}
	return saveAll(ctx, s.db, "git merge results", models)
}

// SaveRuntimeResults stores the runtime samples of a run
func (s *SQLiteStore) SaveRuntimeResults(ctx context.Context, runID string, results []domain.RuntimeResult) error {
	models := make([]RuntimeResultModel, 0, len(results))
	for _, r := range results {
		models = append(models, domainToRuntimeResultModel(runID, r))
	}
	return saveAll(ctx, s.db, "runtime results", models)
}

// ListEvaluations returns the evaluations of a run ordered by merge dir and command
func (s *SQLiteStore) ListEvaluations(ctx context.Context, runID string) ([]domain.MergeEvaluation, error) {
	var models []EvaluationModel
	err := withRetry(func() error {
		return s.db.WithContext(ctx).
			Where("run_id = ?", runID).
			Order("merge_dir, merge_cmd").
			Find(&models).Error
	}, maxRetries)
	if err != nil {
		return nil, fmt.Errorf("failed to list evaluations: %w", err)
	}

	evals := make([]domain.MergeEvaluation, 0, len(models))
	for _, m := range models {
		evals = append(evals, evaluationModelToDomain(m))
	}
	return evals, nil
}

// ListGitMergeResults returns the scenario-level results of a run
func (s *SQLiteStore) ListGitMergeResults(ctx context.Context, runID string) ([]domain.GitMergeResult, error) {
	var models []GitMergeResultModel
	err := withRetry(func() error {
		return s.db.WithContext(ctx).
			Where("run_id = ?", runID).
			Order("merge_commit, merge_driver").
			Find(&models).Error
	}, maxRetries)
	if err != nil {
		return nil, fmt.Errorf("failed to list git merge results: %w", err)
	}

	results := make([]domain.GitMergeResult, 0, len(models))
	for _, m := range models {
		results = append(results, gitMergeResultModelToDomain(m))
	}
	return results, nil
}

// saveAll inserts rows in batches inside one transaction
func saveAll[M any](ctx context.Context, db *gorm.DB, what string, rows []M) error {
	if len(rows) == 0 {
		return nil
	}

	logging.Logger.Debug("Saving rows", "what", what, "count", len(rows))
	return withRetry(func() error {
		return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.CreateInBatches(rows, batchSize).Error; err != nil {
				return fmt.Errorf("failed to save %s: %w", what, err)
			}
			return nil
		})
	}, maxRetries)
}

// withRetry retries operations on SQLITE_BUSY with linear backoff
func withRetry(fn func() error, maxRetries int) error {
	for i := 0; i < maxRetries; i++ {
		err := fn()
		if err == nil {
			return nil
		}

		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && (sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked) {
			time.Sleep(time.Millisecond * time.Duration(50*(i+1)))
			continue
		}

		return err
	}
	return fmt.Errorf("operation failed after %d retries", maxRetries)
}

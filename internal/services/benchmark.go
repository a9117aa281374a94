package services

import (
	"context"
	"fmt"

	"github.com/renato0307/mergebench/internal/domain"
	"github.com/renato0307/mergebench/internal/logging"
	"github.com/renato0307/mergebench/internal/ports"
)

// RuntimeBenchmark times file-level replays
type RuntimeBenchmark struct {
	hasher ports.BlobHasher
	replay *ReplayEngine
}

// NewRuntimeBenchmark creates a new RuntimeBenchmark
func NewRuntimeBenchmark(replay *ReplayEngine, hasher ports.BlobHasher) *RuntimeBenchmark {
	return &RuntimeBenchmark{hasher: hasher, replay: replay}
}

// Run replays every directory repeats times per command. The inputs must be
// mergeable: a failed replay aborts the benchmark.
func (b *RuntimeBenchmark) Run(ctx context.Context, dirs, cmds []string, repeats int) ([]domain.RuntimeResult, error) {
	var results []domain.RuntimeResult
	for _, cmd := range cmds {
		for i := 0; i < repeats; i++ {
			logging.Logger.Info("Running runtime benchmark round", "cmd", cmd, "round", i+1, "of", repeats)
			for _, dir := range dirs {
				if err := ctx.Err(); err != nil {
					return nil, err
				}

				result := b.replay.RunFileMerge(ctx, dir, cmd)
				if result.Outcome == domain.OutcomeFail {
					return nil, fmt.Errorf("failed to merge %s with %s during runtime benchmark", dir, cmd)
				}

				sample, err := b.sample(result, cmd)
				if err != nil {
					return nil, err
				}
				results = append(results, sample)
			}
		}
	}
	return results, nil
}

func (b *RuntimeBenchmark) sample(result domain.MergeResult, cmd string) (domain.RuntimeResult, error) {
	sample := domain.RuntimeResult{
		MergeCmd:    cmd,
		MergeCommit: CommitFromMergeDir(result.MergeDir),
		RuntimeMS:   result.Runtime.Milliseconds(),
	}

	blobs := []struct {
		path   string
		target *string
	}{
		{result.BaseFile, &sample.BaseBlob},
		{result.LeftFile, &sample.LeftBlob},
		{result.RightFile, &sample.RightBlob},
	}
	for _, blob := range blobs {
		hash, err := b.hasher.HashFile(blob.path)
		if err != nil {
			return domain.RuntimeResult{}, err
		}
		*blob.target = hash
	}
	return sample, nil
}

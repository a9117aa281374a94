package domain

import (
	"errors"
	"fmt"
)

var (
	ErrAmbiguousMergeBase   = errors.New("merge base is ambiguous")
	ErrDirtyWorkspace       = errors.New("workspace has uncommitted changes")
	ErrExpectedBuildFailed  = errors.New("failed to build expected revision")
	ErrHeaderMismatch       = errors.New("unexpected header")
	ErrNoExpectedClassfiles = errors.New("no expected classfiles")
	ErrNoMergeBase          = errors.New("no merge base")
	ErrNotAMerge            = errors.New("commit is not a binary merge")
	ErrRepositoryNotFound   = errors.New("repository not found")
	ErrTimedOut             = errors.New("timed out")
	ErrWorkerFailed         = errors.New("worker failed")
)

// IsSkippable reports whether err only disqualifies a single scenario.
// Callers log such errors and continue with the next scenario.
func IsSkippable(err error) bool {
	return errors.Is(err, ErrNoMergeBase) ||
		errors.Is(err, ErrAmbiguousMergeBase) ||
		errors.Is(err, ErrNotAMerge) ||
		errors.Is(err, ErrExpectedBuildFailed) ||
		errors.Is(err, ErrNoExpectedClassfiles)
}

// InvalidValueError is returned when a persisted value cannot be decoded
type InvalidValueError struct {
	Field string
	Value string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid value %q for field %s", e.Value, e.Field)
}

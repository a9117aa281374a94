package ports

import (
	"context"

	"github.com/renato0307/mergebench/internal/domain"
)

// ChangeAction classifies a path in a tree diff
type ChangeAction string

const (
	ChangeDelete ChangeAction = "delete"
	ChangeInsert ChangeAction = "insert"
	ChangeModify ChangeAction = "modify"
)

// TreeChange is one entry of a tree diff. FromPath is empty for inserts,
// ToPath is empty for deletes, and they differ for renames.
type TreeChange struct {
	Action   ChangeAction
	FromHash string
	FromPath string
	ToHash   string
	ToPath   string
}

// HistoryReader provides read-only access to the commit history
type HistoryReader interface {
	BlobContents(hash string) ([]byte, error)
	Commit(hash string) (domain.Commit, error)
	FileAt(commitHash, path string) (domain.Blob, bool, error)
	MergeBases(a, b string) ([]string, error)
	MergeCommits(ctx context.Context, allRefs bool) ([]domain.Commit, error)
	TreeChanges(ctx context.Context, fromCommit, toCommit string, detectRenames bool) ([]TreeChange, error)
}

// WorkspaceState captures what a scoped operation must restore
type WorkspaceState struct {
	Head   string // branch name, or commit hash when detached
	Status string // porcelain status output
}

// AutoMerge is the result of an unassisted three-way merge of two commits
type AutoMerge struct {
	Clean    bool
	TreeHash string
}

// Workspace is a writable working tree. It is single-writer: one Workspace
// must never be shared between concurrent workers.
type Workspace interface {
	AutoMergeTree(ctx context.Context, base, left, right string) (AutoMerge, error)
	Checkout(ctx context.Context, rev string) error
	Dir() string
	EnsureClean(ctx context.Context) error
	MergeNoCommit(ctx context.Context, left, right, driver, pattern string) (bool, error)
	Restore(ctx context.Context, state WorkspaceState) error
	Save(ctx context.Context) (WorkspaceState, error)
}

// WorkspaceFactory creates a private workspace for a worker.
// The returned cleanup function removes it.
type WorkspaceFactory func(ctx context.Context, workerID int) (Workspace, func(), error)

// ThreeWayMerger detects textual conflicts between three file versions
type ThreeWayMerger interface {
	// Conflicts returns the number of conflicting hunks; base may be empty
	Conflicts(ctx context.Context, base, left, right []byte) (int, error)
}

// RepoCloner resolves a repository source (local path or URL) to a local path
type RepoCloner interface {
	GetOrCloneRepository(source, cloneBase string) (string, *domain.RepoSource, error)
}

// FileDiffer measures how far apart two files are
type FileDiffer interface {
	// DiffSize returns the number of added plus deleted lines
	DiffSize(ctx context.Context, a, b string) (int, error)
}

// BlobHasher computes git blob hashes of files outside the object database
type BlobHasher interface {
	HashFile(path string) (string, error)
}

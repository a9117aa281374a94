package git

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/filemode"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/utils/merkletrie"

	"github.com/renato0307/mergebench/internal/domain"
	"github.com/renato0307/mergebench/internal/logging"
	"github.com/renato0307/mergebench/internal/ports"
)

// History implements ports.HistoryReader with go-git.
// It only reads the object database and never touches the working tree.
type History struct {
	mu   sync.Mutex // go-git repositories are not safe for concurrent use
	path string
	repo *gogit.Repository
}

// Compile-time interface verification
var _ ports.HistoryReader = (*History)(nil)

// OpenHistory opens the repository at path
func OpenHistory(path string) (*History, error) {
	logging.Logger.Debug("Opening repository history", "path", path)

	repo, err := gogit.PlainOpenWithOptions(path, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, gogit.ErrRepositoryNotExists) {
			return nil, fmt.Errorf("%w: %s", domain.ErrRepositoryNotFound, path)
		}
		return nil, fmt.Errorf("failed to open repository: %w", err)
	}

	return &History{path: path, repo: repo}, nil
}

// Path returns the path the history was opened from
func (h *History) Path() string {
	return h.path
}

// MergeCommits returns every binary merge reachable from HEAD (or from
// every ref when allRefs is set) in log order
func (h *History) MergeCommits(ctx context.Context, allRefs bool) ([]domain.Commit, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	opts := &gogit.LogOptions{All: allRefs}
	if !allRefs {
		head, err := h.repo.Head()
		if err != nil {
			return nil, fmt.Errorf("failed to read HEAD: %w", err)
		}
		opts.From = head.Hash()
	}

	iter, err := h.repo.Log(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to read commit log: %w", err)
	}
	defer iter.Close()

	var merges []domain.Commit
	err = iter.ForEach(func(c *object.Commit) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if c.NumParents() != 2 {
			return nil
		}
		merges = append(merges, toDomainCommit(c))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk commit log: %w", err)
	}

	logging.Logger.Debug("Found merge commits", "count", len(merges), "all_refs", allRefs)
	return merges, nil
}

// Commit resolves a revision (hash, short hash or ref) to a commit
func (h *History) Commit(rev string) (domain.Commit, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	c, err := h.commitObject(rev)
	if err != nil {
		return domain.Commit{}, err
	}
	return toDomainCommit(c), nil
}

// MergeBases returns the best common ancestors of two commits.
// More than one result means a criss-cross history.
func (h *History) MergeBases(a, b string) ([]string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ca, err := h.commitObject(a)
	if err != nil {
		return nil, err
	}
	cb, err := h.commitObject(b)
	if err != nil {
		return nil, err
	}

	bases, err := ca.MergeBase(cb)
	if err != nil {
		return nil, fmt.Errorf("failed to compute merge base of %s and %s: %w", a, b, err)
	}

	hashes := make([]string, 0, len(bases))
	for _, base := range bases {
		hashes = append(hashes, base.Hash.String())
	}
	return hashes, nil
}

// TreeChanges diffs the trees of two commits. Submodule entries are ignored.
func (h *History) TreeChanges(ctx context.Context, fromCommit, toCommit string, detectRenames bool) ([]ports.TreeChange, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	fromTree, err := h.tree(fromCommit)
	if err != nil {
		return nil, err
	}
	toTree, err := h.tree(toCommit)
	if err != nil {
		return nil, err
	}

	opts := object.DefaultDiffTreeOptions
	if !detectRenames {
		opts = &object.DiffTreeOptions{}
	}

	changes, err := object.DiffTreeWithOptions(ctx, fromTree, toTree, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to diff %s..%s: %w", fromCommit, toCommit, err)
	}

	result := make([]ports.TreeChange, 0, len(changes))
	for _, change := range changes {
		if change.From.TreeEntry.Mode == filemode.Submodule || change.To.TreeEntry.Mode == filemode.Submodule {
			continue
		}

		action, err := change.Action()
		if err != nil {
			return nil, fmt.Errorf("failed to classify change: %w", err)
		}

		tc := ports.TreeChange{
			FromPath: change.From.Name,
			ToPath:   change.To.Name,
		}
		if change.From.Name != "" {
			tc.FromHash = change.From.TreeEntry.Hash.String()
		}
		if change.To.Name != "" {
			tc.ToHash = change.To.TreeEntry.Hash.String()
		}

		switch action {
		case merkletrie.Insert:
			tc.Action = ports.ChangeInsert
		case merkletrie.Delete:
			tc.Action = ports.ChangeDelete
		default:
			tc.Action = ports.ChangeModify
		}
		result = append(result, tc)
	}

	return result, nil
}

// FileAt looks up path in the tree of a commit. The boolean is false when
// the path does not exist there.
func (h *History) FileAt(commitHash, path string) (domain.Blob, bool, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	tree, err := h.tree(commitHash)
	if err != nil {
		return domain.Blob{}, false, err
	}

	f, err := tree.File(path)
	if err != nil {
		if errors.Is(err, object.ErrFileNotFound) ||
			errors.Is(err, object.ErrDirectoryNotFound) ||
			errors.Is(err, object.ErrEntryNotFound) {
			return domain.Blob{}, false, nil
		}
		return domain.Blob{}, false, fmt.Errorf("failed to look up %s in %s: %w", path, commitHash, err)
	}

	return domain.Blob{Hash: f.Hash.String(), Path: path}, true, nil
}

// BlobContents reads the raw contents of a blob
func (h *History) BlobContents(hash string) ([]byte, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	blob, err := h.repo.BlobObject(plumbing.NewHash(hash))
	if err != nil {
		return nil, fmt.Errorf("failed to read blob %s: %w", hash, err)
	}

	r, err := blob.Reader()
	if err != nil {
		return nil, fmt.Errorf("failed to open blob %s: %w", hash, err)
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read blob %s: %w", hash, err)
	}
	return data, nil
}

func (h *History) commitObject(rev string) (*object.Commit, error) {
	hash, err := h.repo.ResolveRevision(plumbing.Revision(rev))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve revision %s: %w", rev, err)
	}

	c, err := h.repo.CommitObject(*hash)
	if err != nil {
		return nil, fmt.Errorf("failed to read commit %s: %w", rev, err)
	}
	return c, nil
}

func (h *History) tree(rev string) (*object.Tree, error) {
	c, err := h.commitObject(rev)
	if err != nil {
		return nil, err
	}

	tree, err := c.Tree()
	if err != nil {
		return nil, fmt.Errorf("failed to read tree of %s: %w", rev, err)
	}
	return tree, nil
}

// HashBlob computes the git blob hash of data without writing it
func HashBlob(data []byte) string {
	return plumbing.ComputeHash(plumbing.BlobObject, data).String()
}

func toDomainCommit(c *object.Commit) domain.Commit {
	parents := make([]string, 0, len(c.ParentHashes))
	for _, p := range c.ParentHashes {
		parents = append(parents, p.String())
	}
	return domain.Commit{
		Hash:         c.Hash.String(),
		ParentHashes: parents,
		TreeHash:     c.TreeHash.String(),
	}
}

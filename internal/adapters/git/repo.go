package git

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"

	gogit "github.com/go-git/go-git/v5"

	"github.com/renato0307/mergebench/internal/domain"
	"github.com/renato0307/mergebench/internal/logging"
	"github.com/renato0307/mergebench/internal/ports"
)

// Cloner implements ports.RepoCloner. Local repositories are used in place,
// remote ones are cloned once to {cloneBase}/{owner}/{repo} and reused.
type Cloner struct{}

// Compile-time interface verification
var _ ports.RepoCloner = (*Cloner)(nil)

// NewCloner creates a new Cloner
func NewCloner() *Cloner {
	return &Cloner{}
}

// GetOrCloneRepository implements RepoCloner.GetOrCloneRepository.
// A "#branch" suffix on source checks that branch out.
func (c *Cloner) GetOrCloneRepository(source, cloneBase string) (string, *domain.RepoSource, error) {
	rs, err := parseSource(source)
	if err != nil {
		return "", nil, fmt.Errorf("failed to parse repo source: %w", err)
	}

	var root string
	if rs.IsRemote {
		root, err = cloneOrReuse(rs, cloneBase)
	} else {
		root, err = localRoot(rs)
	}
	if err != nil {
		return "", nil, err
	}

	if err := checkoutBranch(root, rs.Branch); err != nil {
		return "", nil, err
	}

	logging.Logger.Debug("Resolved repository", "path", root, "project", rs.Repo, "remote", rs.IsRemote)
	return root, rs, nil
}

// user@host:owner/repo
var scpLikeURL = regexp.MustCompile(`^[\w.-]+@([\w.-]+):(.+)$`)

var remoteSchemes = map[string]bool{
	"ftp":   true,
	"ftps":  true,
	"git":   true,
	"http":  true,
	"https": true,
	"ssh":   true,
}

// remoteLocation splits a remote URL into host and repository path.
// ok is false for local paths.
func remoteLocation(source string) (host, path string, ok bool) {
	if m := scpLikeURL.FindStringSubmatch(source); m != nil {
		return m[1], m[2], true
	}

	u, err := url.Parse(source)
	if err != nil || !remoteSchemes[u.Scheme] || u.Host == "" {
		return "", "", false
	}
	return u.Hostname(), u.Path, true
}

// ownerAndRepo returns the last two path segments of a remote URL
func ownerAndRepo(source string) (owner, repo string, ok bool) {
	_, path, ok := remoteLocation(source)
	if !ok {
		return "", "", false
	}

	parts := strings.Split(trimRepoPath(path), "/")
	if len(parts) < 2 || parts[len(parts)-2] == "" || parts[len(parts)-1] == "" {
		return "", "", false
	}
	return parts[len(parts)-2], parts[len(parts)-1], true
}

func trimRepoPath(path string) string {
	return strings.TrimSuffix(strings.Trim(path, "/"), ".git")
}

// remoteKey normalizes a remote URL to host/owner/repo in lower case, so
// the https and ssh spellings of one repository compare equal
func remoteKey(source string) string {
	host, path, ok := remoteLocation(source)
	if !ok {
		return filepath.Clean(source)
	}
	return strings.ToLower(host + "/" + trimRepoPath(path))
}

func parseSource(source string) (*domain.RepoSource, error) {
	source, branch, _ := strings.Cut(source, "#")
	if source == "" {
		return nil, errors.New("empty repository source")
	}

	rs := &domain.RepoSource{Branch: branch, Path: source}
	if _, _, remote := remoteLocation(source); !remote {
		rs.Repo = filepath.Base(filepath.Clean(source))
		return rs, nil
	}

	owner, repo, ok := ownerAndRepo(source)
	if !ok {
		return nil, fmt.Errorf("could not extract owner/repo from %s", source)
	}
	rs.IsRemote = true
	rs.Owner = owner
	rs.Repo = repo
	return rs, nil
}

// localRoot validates a local source and names the project after the
// working tree root
func localRoot(rs *domain.RepoSource) (string, error) {
	path := rs.Path
	if rest, ok := strings.CutPrefix(path, "~"); ok {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		path = filepath.Join(home, rest)
	}

	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("%w: local path does not exist: %s", domain.ErrRepositoryNotFound, path)
	}
	isGit, root := isGitRepo(path)
	if !isGit {
		return "", fmt.Errorf("%w: local path is not a git repository: %s", domain.ErrRepositoryNotFound, path)
	}

	rs.Repo = filepath.Base(root)
	if owner, _, ok := ownerAndRepo(originURL(root)); ok {
		rs.Owner = owner
	}
	return root, nil
}

func cloneOrReuse(rs *domain.RepoSource, cloneBase string) (string, error) {
	target := filepath.Join(cloneBase, rs.Owner, rs.Repo)

	if _, err := os.Stat(target); err != nil {
		if err := cloneRepository(context.Background(), rs.Path, target, rs.Branch); err != nil {
			os.RemoveAll(target)
			return "", err
		}
		return target, nil
	}

	isGit, root := isGitRepo(target)
	if !isGit {
		return "", fmt.Errorf("clone directory exists but is not a git repository: %s", target)
	}
	if existing := originURL(root); existing != "" && remoteKey(existing) != remoteKey(rs.Path) {
		return "", fmt.Errorf("clone directory %s belongs to %s, not %s", target, existing, rs.Path)
	}

	logging.Logger.Info("Reusing existing clone", "path", root)
	return root, nil
}

// cloneRepository clones origin into targetPath, checking out branch if set
func cloneRepository(ctx context.Context, origin, targetPath, branch string) error {
	logging.Logger.Info("Cloning repository", "origin", origin, "target", targetPath, "branch", branch)

	if err := os.MkdirAll(filepath.Dir(targetPath), 0755); err != nil {
		return fmt.Errorf("failed to create parent directory: %w", err)
	}

	args := []string{"clone", "--quiet"}
	if branch != "" {
		args = append(args, "--branch", branch)
	}
	args = append(args, origin, targetPath)

	if out, err := exec.CommandContext(ctx, "git", args...).CombinedOutput(); err != nil {
		logging.Logger.Error("Git clone failed", "error", err, "output", string(out))
		return fmt.Errorf("failed to clone repository: %w\nOutput: %s", err, out)
	}
	return nil
}

// checkoutBranch checks branch out, fetching origin once if it is unknown
func checkoutBranch(repoPath, branch string) error {
	if branch == "" {
		return nil
	}
	if _, err := runGit(repoPath, "checkout", "--quiet", branch); err == nil {
		return nil
	}

	logging.Logger.Debug("Branch not found locally, fetching origin", "branch", branch)
	if out, err := runGit(repoPath, "fetch", "--quiet", "origin"); err != nil {
		return fmt.Errorf("failed to fetch origin: %w\nOutput: %s", err, out)
	}
	if out, err := runGit(repoPath, "checkout", "--quiet", branch); err != nil {
		return fmt.Errorf("failed to checkout branch %s: %w\nOutput: %s", branch, err, out)
	}
	return nil
}

func runGit(dir string, args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	return string(out), err
}

// originURL returns the first URL of the origin remote, or "" if there is none
func originURL(repoPath string) string {
	repo, err := gogit.PlainOpen(repoPath)
	if err != nil {
		return ""
	}
	remote, err := repo.Remote("origin")
	if err != nil || len(remote.Config().URLs) == 0 {
		return ""
	}
	return remote.Config().URLs[0]
}

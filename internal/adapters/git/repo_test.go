package git

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/mergebench/internal/domain"
)

func TestRemoteLocation(t *testing.T) {
	tests := []struct {
		source   string
		host     string
		path     string
		isRemote bool
	}{
		{"https://github.com/owner/repo", "github.com", "/owner/repo", true},
		{"http://gitlab.com/owner/repo.git", "gitlab.com", "/owner/repo.git", true},
		{"ssh://git@github.com:22/owner/repo", "github.com", "/owner/repo", true},
		{"git://github.com/owner/repo", "github.com", "/owner/repo", true},
		{"ftps://example.com/owner/repo.git", "example.com", "/owner/repo.git", true},
		{"git@github.com:owner/repo.git", "github.com", "owner/repo.git", true},
		{"/home/user/repo", "", "", false},
		{"./relative/repo", "", "", false},
		{"~/projects/repo.git", "", "", false},
		{"file:///srv/repo", "", "", false},
		{"", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			host, path, ok := remoteLocation(tt.source)
			assert.Equal(t, tt.isRemote, ok)
			assert.Equal(t, tt.host, host)
			assert.Equal(t, tt.path, path)
		})
	}
}

func TestOwnerAndRepo(t *testing.T) {
	tests := []struct {
		source string
		owner  string
		repo   string
		ok     bool
	}{
		{"https://github.com/owner/repo.git", "owner", "repo", true},
		{"https://github.com/org/subgroup/repo/", "subgroup", "repo", true},
		{"git@gitlab.com:owner/repo", "owner", "repo", true},
		{"https://github.com/", "", "", false},
		{"https://github.com/repo", "", "", false},
		{"/local/owner/repo", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			owner, repo, ok := ownerAndRepo(tt.source)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.owner, owner)
			assert.Equal(t, tt.repo, repo)
		})
	}
}

func TestRemoteKey_SameRepository(t *testing.T) {
	spellings := []string{
		"https://github.com/Owner/Repo",
		"https://github.com/owner/repo.git",
		"http://github.com/owner/repo/",
		"ssh://git@github.com/owner/repo",
		"git@github.com:owner/repo.git",
	}
	for _, s := range spellings {
		assert.Equal(t, "github.com/owner/repo", remoteKey(s), s)
	}

	assert.NotEqual(t, remoteKey("https://github.com/owner/repo"), remoteKey("https://gitlab.com/owner/repo"))
	assert.NotEqual(t, remoteKey("https://github.com/owner/repo1"), remoteKey("https://github.com/owner/repo2"))
	assert.Equal(t, "/srv/repo", remoteKey("/srv/repo/"))
}

func TestParseSource(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		expected *domain.RepoSource
	}{
		{
			name:     "remote with branch",
			source:   "https://github.com/owner/repo.git#develop",
			expected: &domain.RepoSource{Branch: "develop", IsRemote: true, Owner: "owner", Path: "https://github.com/owner/repo.git", Repo: "repo"},
		},
		{
			name:     "scp-like remote",
			source:   "git@github.com:owner/spork",
			expected: &domain.RepoSource{IsRemote: true, Owner: "owner", Path: "git@github.com:owner/spork", Repo: "spork"},
		},
		{
			name:     "local path",
			source:   "/home/user/calc/",
			expected: &domain.RepoSource{Path: "/home/user/calc/", Repo: "calc"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rs, err := parseSource(tt.source)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, rs)
		})
	}
}

func TestParseSource_Invalid(t *testing.T) {
	_, err := parseSource("")
	require.Error(t, err)

	_, err = parseSource("#main")
	require.Error(t, err)

	_, err = parseSource("https://github.com/repo")
	require.ErrorContains(t, err, "owner/repo")
}

func TestGetOrCloneRepository_LocalPath(t *testing.T) {
	r := setupTestRepo(t)
	require.NoError(t, os.MkdirAll(filepath.Join(r.dir, "src"), 0755))

	path, rs, err := NewCloner().GetOrCloneRepository(filepath.Join(r.dir, "src"), t.TempDir())
	require.NoError(t, err)

	root := r.git("rev-parse", "--show-toplevel")
	assert.Equal(t, root, path)
	assert.False(t, rs.IsRemote)
	assert.Equal(t, filepath.Base(root), rs.Repo)
}

func TestGetOrCloneRepository_LocalOwnerFromOrigin(t *testing.T) {
	r := setupTestRepo(t)
	r.git("remote", "add", "origin", "git@github.com:inria/spork.git")

	_, rs, err := NewCloner().GetOrCloneRepository(r.dir, t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "inria", rs.Owner)
	assert.Equal(t, filepath.Base(r.dir), rs.Repo)
}

func TestGetOrCloneRepository_LocalPathWithBranch(t *testing.T) {
	r := setupTestRepo(t)
	r.git("branch", "develop")

	path, rs, err := NewCloner().GetOrCloneRepository(r.dir+"#develop", t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "develop", rs.Branch)
	assert.Equal(t, "develop", r.git("-C", path, "rev-parse", "--abbrev-ref", "HEAD"))
}

func TestGetOrCloneRepository_UnknownBranch(t *testing.T) {
	r := setupTestRepo(t)

	_, _, err := NewCloner().GetOrCloneRepository(r.dir+"#nope", t.TempDir())

	require.Error(t, err)
}

func TestGetOrCloneRepository_MissingLocalPath(t *testing.T) {
	_, _, err := NewCloner().GetOrCloneRepository("/definitely/not/here", t.TempDir())

	require.ErrorIs(t, err, domain.ErrRepositoryNotFound)
}

func TestGetOrCloneRepository_NotAGitRepository(t *testing.T) {
	_, _, err := NewCloner().GetOrCloneRepository(t.TempDir(), t.TempDir())

	require.ErrorIs(t, err, domain.ErrRepositoryNotFound)
}

func TestCloneOrReuse_ReusesMatchingClone(t *testing.T) {
	r := setupTestRepo(t)
	cloneBase := t.TempDir()
	target := filepath.Join(cloneBase, "owner", "repo")
	require.NoError(t, cloneRepository(context.Background(), r.dir, target, ""))
	runGit(target, "remote", "set-url", "origin", "https://github.com/owner/repo.git")

	rs := &domain.RepoSource{IsRemote: true, Owner: "owner", Path: "git@github.com:owner/repo", Repo: "repo"}
	path, err := cloneOrReuse(rs, cloneBase)
	require.NoError(t, err)

	assert.Equal(t, filepath.Base(target), filepath.Base(path))
}

func TestCloneOrReuse_RejectsForeignClone(t *testing.T) {
	r := setupTestRepo(t)
	cloneBase := t.TempDir()
	target := filepath.Join(cloneBase, "owner", "repo")
	require.NoError(t, cloneRepository(context.Background(), r.dir, target, ""))
	runGit(target, "remote", "set-url", "origin", "https://github.com/other/repo.git")

	rs := &domain.RepoSource{IsRemote: true, Owner: "owner", Path: "https://github.com/owner/repo", Repo: "repo"}
	_, err := cloneOrReuse(rs, cloneBase)

	require.ErrorContains(t, err, "belongs to")
}

func TestCloneRepository(t *testing.T) {
	r := setupTestRepo(t)
	target := filepath.Join(t.TempDir(), "nested", "clone")

	require.NoError(t, cloneRepository(context.Background(), r.dir, target, ""))

	assert.FileExists(t, filepath.Join(target, "README.md"))
	assert.Equal(t, r.dir, originURL(target))
}

func TestOriginURL_NoRemote(t *testing.T) {
	r := setupTestRepo(t)

	assert.Empty(t, originURL(r.dir))
	assert.Empty(t, originURL(t.TempDir()))
}

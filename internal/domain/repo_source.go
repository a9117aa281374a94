package domain

// RepoSource describes where a repository comes from
type RepoSource struct {
	Branch   string
	IsRemote bool
	Owner    string
	Path     string
	Repo     string
}

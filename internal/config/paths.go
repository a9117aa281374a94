package config

import (
	"os"
	"path/filepath"
)

// GetHome returns MERGEBENCH_HOME or ~/.mergebench default
func GetHome() string {
	home := os.Getenv("MERGEBENCH_HOME")
	if home == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".mergebench"
		}
		return filepath.Join(homeDir, ".mergebench")
	}
	return ExpandPath(home)
}

// GetDBPath returns $MERGEBENCH_HOME/results.db
func GetDBPath() string {
	return filepath.Join(GetHome(), "results.db")
}

// GetCloneDir returns $MERGEBENCH_HOME/repos
func GetCloneDir() string {
	return filepath.Join(GetHome(), "repos")
}

// GetConfigPath returns $MERGEBENCH_HOME/config.toml
func GetConfigPath() string {
	return filepath.Join(GetHome(), "config.toml")
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}

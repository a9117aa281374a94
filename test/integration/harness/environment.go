package harness

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestEnvironment provides an isolated test environment with its own MERGEBENCH_HOME.
type TestEnvironment struct {
	MergebenchHome string
	WorkDir        string
	extraEnv       map[string]string
	tb             testing.TB
}

// NewTestEnvironment creates an isolated test environment with a temp MERGEBENCH_HOME
// and a separate directory for output files.
// The temp directories are automatically cleaned up when the test completes.
func NewTestEnvironment(tb testing.TB) *TestEnvironment {
	tb.Helper()

	return &TestEnvironment{
		MergebenchHome: tb.TempDir(),
		WorkDir:        tb.TempDir(),
		extraEnv:       make(map[string]string),
		tb:             tb,
	}
}

// Environ returns environment variables configured for test isolation.
// It filters out MERGEBENCH_* variables and sets:
//   - MERGEBENCH_HOME to the temp directory
//   - MERGEBENCH_DEBUG to empty string (disables debug logging)
func (e *TestEnvironment) Environ() []string {
	env := make([]string, 0, len(os.Environ())+2+len(e.extraEnv))

	for _, kv := range os.Environ() {
		key, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(key, "MERGEBENCH_") || e.extraEnv[key] != "" {
			continue
		}
		env = append(env, kv)
	}

	env = append(env,
		"MERGEBENCH_HOME="+e.MergebenchHome,
		"MERGEBENCH_DEBUG=",
	)

	for k, v := range e.extraEnv {
		env = append(env, k+"="+v)
	}

	return env
}

// DBPath returns the path of a result database inside the test home.
func (e *TestEnvironment) DBPath() string {
	return filepath.Join(e.MergebenchHome, "results.db")
}

// Path returns the path of name inside the work directory.
func (e *TestEnvironment) Path(name string) string {
	return filepath.Join(e.WorkDir, name)
}

// WriteFile writes content to name inside the work directory and returns its path.
func (e *TestEnvironment) WriteFile(name, content string) string {
	e.tb.Helper()
	path := e.Path(name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		e.tb.Fatalf("Failed to create directory for %s: %v", name, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		e.tb.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

// ReadFile returns the content of name inside the work directory.
func (e *TestEnvironment) ReadFile(name string) string {
	e.tb.Helper()
	data, err := os.ReadFile(e.Path(name))
	if err != nil {
		e.tb.Fatalf("Failed to read %s: %v", name, err)
	}
	return string(data)
}

// SetEnv sets an additional environment variable for this test environment.
func (e *TestEnvironment) SetEnv(key, value string) {
	if e.extraEnv == nil {
		e.extraEnv = make(map[string]string)
	}
	e.extraEnv[key] = value
}

// WriteScript writes an executable shell script to name inside the work
// directory and returns its path.
func (e *TestEnvironment) WriteScript(name, body string) string {
	e.tb.Helper()
	path := e.WriteFile(name, "#!/bin/sh\n"+body)
	if err := os.Chmod(path, 0755); err != nil {
		e.tb.Fatalf("Failed to make %s executable: %v", name, err)
	}
	return path
}

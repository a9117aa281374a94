package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/renato0307/mergebench/internal/domain"
	"github.com/renato0307/mergebench/internal/logging"
	"github.com/renato0307/mergebench/internal/ports"
)

// FileTools wraps the repository-less git file commands
// (merge-file and diff --no-index)
type FileTools struct{}

// Compile-time interface verification
var (
	_ ports.BlobHasher     = (*FileTools)(nil)
	_ ports.FileDiffer     = (*FileTools)(nil)
	_ ports.ThreeWayMerger = (*FileTools)(nil)
)

// NewFileTools creates a new FileTools
func NewFileTools() *FileTools {
	return &FileTools{}
}

// Conflicts runs a line-based three-way merge of the given contents and
// returns the number of conflict hunks. An empty base models add/add.
func (f *FileTools) Conflicts(ctx context.Context, base, left, right []byte) (int, error) {
	dir, err := os.MkdirTemp("", "mergebench-mergefile-")
	if err != nil {
		return 0, fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	paths := make([]string, 0, 3)
	for _, part := range []struct {
		name string
		data []byte
	}{
		{"left", left},
		{"base", base},
		{"right", right},
	} {
		path := filepath.Join(dir, part.name)
		if err := os.WriteFile(path, part.data, 0644); err != nil {
			return 0, fmt.Errorf("failed to write %s: %w", part.name, err)
		}
		paths = append(paths, path)
	}

	cmd := exec.CommandContext(ctx, "git", "merge-file", "-p", paths[0], paths[1], paths[2])
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err = cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	// Positive exit codes count conflicts (capped by the shell), anything
	// else is a failure of merge-file itself
	if !errors.As(err, &exitErr) || exitErr.ExitCode() < 1 || exitErr.ExitCode() > 127 {
		return 0, fmt.Errorf("failed to run merge-file: %w\nOutput: %s", err, stderr.String())
	}

	count := domain.CountConflicts(stdout.Bytes())
	logging.Logger.Debug("merge-file reported conflicts", "exit_code", exitErr.ExitCode(), "hunks", count)
	if count == 0 {
		count = exitErr.ExitCode()
	}
	return count, nil
}

// DiffSize returns the number of added plus deleted lines between two files
func (f *FileTools) DiffSize(ctx context.Context, a, b string) (int, error) {
	cmd := exec.CommandContext(ctx, "git", "diff", "--no-index", "--numstat", "--", a, b)
	output, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		// Exit status 1 only means the files differ
		if !errors.As(err, &exitErr) || exitErr.ExitCode() != 1 {
			return 0, fmt.Errorf("failed to diff %s and %s: %w", a, b, err)
		}
	}
	return parseNumstat(string(output))
}

// HashFile returns the git blob hash of a file's contents
func (f *FileTools) HashFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return HashBlob(data), nil
}

// parseNumstat sums the added and deleted columns of `git diff --numstat`.
// Binary files ("-") count as zero.
func parseNumstat(output string) (int, error) {
	total := 0
	for _, line := range strings.Split(strings.TrimSpace(output), "\n") {
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		for _, field := range fields[:2] {
			if field == "-" {
				continue
			}
			n, err := strconv.Atoi(field)
			if err != nil {
				return 0, fmt.Errorf("failed to parse numstat line %q: %w", line, err)
			}
			total += n
		}
	}
	return total, nil
}

package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/renato0307/mergebench/internal/services"
)

// DispatchFlags select how replay work is spread over workers.
// Zero values fall back to the [dispatch] configuration.
type DispatchFlags struct {
	RunID    string `help:"Identifier shared with worker ranks (default: random)"`
	Strategy string `help:"Dispatch strategy" enum:",local,rank" default:""`
	Workers  int    `help:"Number of parallel workers or ranks" short:"w"`
}

// OutputFlags control where results go besides the output file
type OutputFlags struct {
	DB            string `help:"SQLite database to record the run in (default: storage.db_path)" type:"path"`
	PublishBucket string `help:"S3 bucket to upload output files to (default: publish.bucket)"`
}

// MineFlags select which merge commits are mined
type MineFlags struct {
	AllRefs          bool   `help:"Consider merge commits reachable from any ref, not only HEAD"`
	Buildable        bool   `help:"Keep only merges whose four commits build"`
	MergeCommits     string `help:"File with the merge commit hashes to consider, one per line" type:"existingfile"`
	NonTrivial       bool   `help:"Keep only merges git cannot reproduce on its own"`
	SkipDeleteModify bool   `help:"Drop merges with delete/modify conflicts"`
	Testable         bool   `help:"Keep only merges whose commits build and whose merge commit passes its tests"`
}

// options converts the flags into mining options
func (f MineFlags) options() (services.MineOptions, error) {
	opts := services.MineOptions{
		AllRefs:          f.AllRefs,
		Buildable:        f.Buildable,
		NonTrivial:       f.NonTrivial,
		SkipDeleteModify: f.SkipDeleteModify,
		Testable:         f.Testable,
	}
	if f.MergeCommits == "" {
		return opts, nil
	}

	hashes, err := readNonEmptyLines(f.MergeCommits)
	if err != nil {
		return opts, err
	}
	opts.AllowList = hashes
	return opts, nil
}

// readNonEmptyLines returns the trimmed, non-empty lines of a file
func readNonEmptyLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var lines []string
	for _, line := range strings.Split(string(data), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, nil
}

// truncate keeps the first n items; n <= 0 keeps everything
func truncate[T any](items []T, n int) []T {
	if n > 0 && n < len(items) {
		return items[:n]
	}
	return items
}

// mergeCommands returns the flag value, or the configured merge.commands
func mergeCommands(flag, configured []string) ([]string, error) {
	cmds := flag
	if len(cmds) == 0 {
		cmds = configured
	}
	if len(cmds) == 0 {
		return nil, fmt.Errorf("no merge commands given (use --merge-commands or merge.commands)")
	}
	return cmds, nil
}

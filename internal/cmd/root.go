package cmd

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/renato0307/mergebench/internal/config"
	"github.com/renato0307/mergebench/internal/logging"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Config      string           `help:"Path to a TOML configuration file (default: ./mergebench.toml, then $MERGEBENCH_HOME/config.toml)" type:"path"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`

	ExtractMergeCommits      ExtractMergeCommitsCmd      `cmd:"extract-merge-commits" help:"Mine the merge commits of a repository"`
	ExtractFileMergeMetainfo ExtractFileMergeMetainfoCmd `cmd:"extract-file-merge-metainfo" help:"Extract metainfo of the conflicting file merges of a repository"`
	RunFileMerges            RunFileMergesCmd            `cmd:"run-file-merges" help:"Replay conflicting file merges with merge tools and evaluate the results"`
	MergeAndCompare          MergeAndCompareCmd          `cmd:"merge-and-compare" help:"Replay the file merges of a previous run and compare the results"`
	GitMerge                 GitMergeCmd                 `cmd:"git-merge" help:"Replay whole merge scenarios with git merge drivers"`
	RuntimeBenchmark         RuntimeBenchmarkCmd         `cmd:"runtime-benchmark" help:"Measure merge tool runtimes on file merges"`
	Analyze                  AnalyzeCmd                  `cmd:"analyze" help:"Aggregate file merge evaluations into statistics"`
	Runs                     RunsCmd                     `cmd:"runs" help:"List runs recorded in the result store"`
	Worker                   WorkerCmd                   `cmd:"worker" help:"Serve one worker rank of a distributed run" hidden:""`
	InitConfig               InitConfigCmd               `cmd:"init-config" help:"Write a sample configuration file"`
	VersionCmd               VersionCmd                  `cmd:"version" name:"version" help:"Show version information"`

	// Internal fields (not flags)
	Container *Container `kong:"-"`
}

// AfterApply initializes logging and configuration after CLI parsing
func (c *CLI) AfterApply() error {
	// Initialize logging first and get the log file path
	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}

	// Set environment variables AFTER initialization so worker processes inherit
	// debug settings and use the SAME log file
	if c.Debug || c.DebugFile != "" {
		os.Setenv("MERGEBENCH_DEBUG", "1")
		if logFilePath != "" {
			os.Setenv("MERGEBENCH_DEBUG_FILE", logFilePath)
		}
	}
	if c.MaxLogFiles != logging.DefaultMaxLogFiles {
		os.Setenv("MERGEBENCH_MAX_LOG_FILES", fmt.Sprintf("%d", c.MaxLogFiles))
	}

	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}

	// Create container AFTER logging is initialized so that GORM's logger
	// bridge has a logger to write to
	c.Container = NewContainer(cfg)
	return nil
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}

var versionInfo = "mergebench dev"

// SetVersionInfo sets the string printed by the version command
func SetVersionInfo(info string) {
	versionInfo = info
}

// VersionCmd prints version information
type VersionCmd struct{}

// Run executes the version command
func (v *VersionCmd) Run() error {
	fmt.Println(versionInfo)
	return nil
}

// InitConfigCmd writes a sample configuration file
type InitConfigCmd struct {
	Path string `arg:"" optional:"" help:"Where to write the configuration (default: $MERGEBENCH_HOME/config.toml)" type:"path"`
}

// Run executes the init-config command
func (i *InitConfigCmd) Run() error {
	path := i.Path
	if path == "" {
		path = config.GetConfigPath()
	}
	if err := config.InitConfig(path); err != nil {
		return err
	}
	fmt.Printf("Configuration written to %s\n", path)
	return nil
}

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix = "MERGEBENCH_"

	// StrategyLocal runs workers as goroutines with private clones
	StrategyLocal = "local"
	// StrategyRank runs a coordinator and worker ranks over a transport
	StrategyRank = "rank"
)

// Config represents mergebench's configuration
type Config struct {
	Build    BuildConfig    `koanf:"build"`
	Dispatch DispatchConfig `koanf:"dispatch"`
	Merge    MergeConfig    `koanf:"merge"`
	Publish  PublishConfig  `koanf:"publish"`
	Replay   ReplayConfig   `koanf:"replay"`
	Repo     RepoConfig     `koanf:"repo"`
	Storage  StorageConfig  `koanf:"storage"`
}

// BuildConfig configures the build and bytecode tools
type BuildConfig struct {
	Javap       string        `koanf:"javap"`
	Maven       string        `koanf:"maven"`
	TestTimeout time.Duration `koanf:"test_timeout"`
	Timeout     time.Duration `koanf:"timeout"`
}

// DispatchConfig configures how work is spread over workers
type DispatchConfig struct {
	RedisAddr    string        `koanf:"redis_addr"` // empty means in-process ranks
	ReplyTimeout time.Duration `koanf:"reply_timeout"`
	Strategy     string        `koanf:"strategy"`
	Workers      int           `koanf:"workers"`
}

// MergeConfig lists the merge tools and git merge drivers to replay with
type MergeConfig struct {
	AttributePattern string   `koanf:"attribute_pattern"`
	Commands         []string `koanf:"commands"`
	Drivers          []string `koanf:"drivers"`
}

// PublishConfig configures S3 publication of output files
type PublishConfig struct {
	Bucket   string `koanf:"bucket"` // empty disables publication
	Endpoint string `koanf:"endpoint"`
	Prefix   string `koanf:"prefix"`
	Region   string `koanf:"region"`
}

// ReplayConfig configures file-level replays
type ReplayConfig struct {
	MergeDir    string        `koanf:"merge_dir"`
	ToolTimeout time.Duration `koanf:"tool_timeout"`
}

// RepoConfig configures where remote repositories are cloned
type RepoConfig struct {
	CloneDir string `koanf:"clone_dir"`
}

// StorageConfig configures the sqlite result store
type StorageConfig struct {
	DBPath string `koanf:"db_path"` // empty disables the store
}

// defaults returns the built-in configuration values
func defaults() map[string]any {
	return map[string]any{
		"build.javap":             "javap",
		"build.maven":             "mvn",
		"build.test_timeout":      "30m",
		"build.timeout":           "30m",
		"dispatch.reply_timeout":  "24h",
		"dispatch.strategy":       StrategyLocal,
		"dispatch.workers":        1,
		"merge.attribute_pattern": "*.java",
		"merge.commands":          []string{},
		"merge.drivers":           []string{},
		"publish.region":          "us-east-1",
		"replay.merge_dir":        "merge_dirs",
		"replay.tool_timeout":     "5m",
		"repo.clone_dir":          GetCloneDir(),
	}
}

// Load builds the configuration from defaults, a TOML file and
// MERGEBENCH_* environment variables, in increasing precedence.
// An explicit configPath must exist; otherwise ./mergebench.toml and
// $MERGEBENCH_HOME/config.toml are tried in that order.
func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath != "" {
		if err := k.Load(file.Provider(ExpandPath(configPath)), toml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	} else {
		for _, path := range []string{"./mergebench.toml", GetConfigPath()} {
			if _, err := os.Stat(path); err != nil {
				continue
			}
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
			}
			break
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.Repo.CloneDir = ExpandPath(cfg.Repo.CloneDir)
	cfg.Storage.DBPath = ExpandPath(cfg.Storage.DBPath)

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// envKey maps MERGEBENCH_REPLAY_TOOL_TIMEOUT to replay.tool_timeout.
// Variables outside the config sections (MERGEBENCH_DEBUG, MERGEBENCH_HOME) are ignored.
func envKey(s string) string {
	section, key, found := strings.Cut(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "_")
	if !found || !sections[section] {
		return ""
	}
	return section + "." + key
}

var sections = map[string]bool{
	"build":    true,
	"dispatch": true,
	"merge":    true,
	"publish":  true,
	"replay":   true,
	"repo":     true,
	"storage":  true,
}

// Validate validates the configuration
func Validate(cfg *Config) error {
	switch cfg.Dispatch.Strategy {
	case StrategyLocal, StrategyRank:
	default:
		return fmt.Errorf("unknown dispatch strategy %q (expected %s or %s)",
			cfg.Dispatch.Strategy, StrategyLocal, StrategyRank)
	}

	if cfg.Dispatch.Workers < 0 {
		return fmt.Errorf("dispatch.workers must not be negative, got %d", cfg.Dispatch.Workers)
	}

	timeouts := map[string]time.Duration{
		"build.test_timeout":     cfg.Build.TestTimeout,
		"build.timeout":          cfg.Build.Timeout,
		"dispatch.reply_timeout": cfg.Dispatch.ReplyTimeout,
		"replay.tool_timeout":    cfg.Replay.ToolTimeout,
	}
	for name, d := range timeouts {
		if d < 0 {
			return fmt.Errorf("%s must not be negative, got %s", name, d)
		}
	}

	if cfg.Merge.AttributePattern == "" {
		return fmt.Errorf("merge.attribute_pattern is required")
	}

	return nil
}

// SampleConfig is written by `mergebench init-config`
const SampleConfig = `# mergebench configuration

[repo]
clone_dir = "~/.mergebench/repos"

[merge]
commands = ["spork", "jdime"]
drivers = ["spork"]
attribute_pattern = "*.java"

[build]
maven = "mvn"
javap = "javap"
timeout = "30m"
test_timeout = "30m"

[replay]
merge_dir = "merge_dirs"
tool_timeout = "5m"

[dispatch]
strategy = "local"   # local or rank
workers = 4
redis_addr = ""      # empty runs ranks in-process
reply_timeout = "24h"

[storage]
db_path = ""         # e.g. "~/.mergebench/results.db"

[publish]
bucket = ""
region = "us-east-1"
endpoint = ""
prefix = ""
`

// InitConfig writes the sample configuration to configPath
func InitConfig(configPath string) error {
	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("configuration file already exists at %s", configPath)
	}
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	return os.WriteFile(configPath, []byte(SampleConfig), 0644)
}

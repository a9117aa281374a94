package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("MERGEBENCH_HOME", home)
	t.Chdir(t.TempDir())
	return home
}

func TestLoad_Defaults(t *testing.T) {
	home := isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "mvn", cfg.Build.Maven)
	assert.Equal(t, 30*time.Minute, cfg.Build.Timeout)
	assert.Equal(t, 5*time.Minute, cfg.Replay.ToolTimeout)
	assert.Equal(t, StrategyLocal, cfg.Dispatch.Strategy)
	assert.Equal(t, 1, cfg.Dispatch.Workers)
	assert.Equal(t, "*.java", cfg.Merge.AttributePattern)
	assert.Equal(t, filepath.Join(home, "repos"), cfg.Repo.CloneDir)
	assert.Empty(t, cfg.Storage.DBPath)
	assert.Empty(t, cfg.Publish.Bucket)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[merge]
commands = ["spork", "jdime --mode=structured"]

[dispatch]
strategy = "rank"
workers = 8

[replay]
tool_timeout = "90s"
`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"spork", "jdime --mode=structured"}, cfg.Merge.Commands)
	assert.Equal(t, StrategyRank, cfg.Dispatch.Strategy)
	assert.Equal(t, 8, cfg.Dispatch.Workers)
	assert.Equal(t, 90*time.Second, cfg.Replay.ToolTimeout)
	assert.Equal(t, "mvn", cfg.Build.Maven)
}

func TestLoad_DefaultLocations(t *testing.T) {
	home := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.toml"), []byte("[build]\nmaven = \"mvnw\"\n"), 0644))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "mvnw", cfg.Build.Maven)

	// ./mergebench.toml wins over $MERGEBENCH_HOME/config.toml
	require.NoError(t, os.WriteFile("mergebench.toml", []byte("[build]\nmaven = \"./mvnw\"\n"), 0644))

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, "./mvnw", cfg.Build.Maven)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.toml")
	require.NoError(t, os.WriteFile(path, []byte("[replay]\ntool_timeout = \"90s\"\n"), 0644))

	t.Setenv("MERGEBENCH_REPLAY_TOOL_TIMEOUT", "0s")
	t.Setenv("MERGEBENCH_DISPATCH_REDIS_ADDR", "localhost:6379")
	t.Setenv("MERGEBENCH_DEBUG", "1")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, time.Duration(0), cfg.Replay.ToolTimeout)
	assert.Equal(t, "localhost:6379", cfg.Dispatch.RedisAddr)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	isolate(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config file")
}

func TestLoad_InvalidStrategy(t *testing.T) {
	isolate(t)
	t.Setenv("MERGEBENCH_DISPATCH_STRATEGY", "mpi")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown dispatch strategy")
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Dispatch: DispatchConfig{Strategy: StrategyLocal, Workers: 2},
			Merge:    MergeConfig{AttributePattern: "*.java"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"negative workers", func(c *Config) { c.Dispatch.Workers = -1 }, "dispatch.workers"},
		{"negative timeout", func(c *Config) { c.Build.Timeout = -time.Second }, "build.timeout"},
		{"missing pattern", func(c *Config) { c.Merge.AttributePattern = "" }, "attribute_pattern"},
		{"empty strategy", func(c *Config) { c.Dispatch.Strategy = "" }, "unknown dispatch strategy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := Validate(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "replay.tool_timeout", envKey("MERGEBENCH_REPLAY_TOOL_TIMEOUT"))
	assert.Equal(t, "storage.db_path", envKey("MERGEBENCH_STORAGE_DB_PATH"))
	assert.Empty(t, envKey("MERGEBENCH_DEBUG"))
	assert.Empty(t, envKey("MERGEBENCH_DEBUG_FILE"))
	assert.Empty(t, envKey("MERGEBENCH_HOME"))
}

func TestInitConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	require.NoError(t, InitConfig(path))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"spork", "jdime"}, cfg.Merge.Commands)
	assert.Equal(t, 4, cfg.Dispatch.Workers)

	err = InitConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestExpandPath(t *testing.T) {
	homeDir, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, homeDir, ExpandPath("~"))
	assert.Equal(t, filepath.Join(homeDir, "x", "y"), ExpandPath("~/x/y"))
	assert.Equal(t, "/abs", ExpandPath("/abs"))
}

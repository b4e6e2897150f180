package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubHome points FOOTPRINT_HOME and the user's home at a temp dir.
func stubHome(t *testing.T) string {
	t.Helper()
	tmpHome := t.TempDir()
	t.Setenv("HOME", tmpHome)
	t.Setenv("USERPROFILE", tmpHome)
	t.Setenv(EnvHome, "")
	for _, env := range []string{EnvDataDir, EnvLogLevel, EnvLogFormat, EnvOutputFormat} {
		t.Setenv(env, "")
	}
	return tmpHome
}

func TestGlobalConfig(t *testing.T) {
	stubHome(t)
	ResetGlobalConfigForTest()
	t.Cleanup(ResetGlobalConfigForTest)

	cfg := GetGlobalConfig()
	assert.NotNil(t, cfg)
	assert.Equal(t, "table", cfg.Output.DefaultFormat)

	cfg2 := GetGlobalConfig()
	assert.Same(t, cfg, cfg2)

	ResetGlobalConfigForTest()
	cfg3 := GetGlobalConfig()
	assert.NotSame(t, cfg, cfg3)

	replacement := Default()
	SetGlobalConfig(replacement)
	assert.Same(t, replacement, GetGlobalConfig())
}

func TestConfigGetters(t *testing.T) {
	stubHome(t)
	ResetGlobalConfigForTest()
	t.Cleanup(ResetGlobalConfigForTest)

	cfg := GetGlobalConfig()
	cfg.Output.DefaultFormat = "json"
	cfg.Output.Precision = 4
	cfg.Logging.Level = "debug"
	cfg.Logging.File = "/tmp/test.log"

	assert.Equal(t, "json", GetDefaultOutputFormat())
	assert.Equal(t, 4, GetOutputPrecision())
	assert.Equal(t, "debug", GetLoggingConfig().Level)
}

func TestEnsureConfigDir(t *testing.T) {
	tmpHome := stubHome(t)

	require.NoError(t, EnsureConfigDir())

	stat, err := os.Stat(filepath.Join(tmpHome, ".footprint"))
	require.NoError(t, err)
	assert.True(t, stat.IsDir())
}

func TestEnsureLogDir(t *testing.T) {
	stubHome(t)
	tmpDir := t.TempDir()
	ResetGlobalConfigForTest()
	t.Cleanup(ResetGlobalConfigForTest)

	cfg := GetGlobalConfig()
	cfg.Logging.File = filepath.Join(tmpDir, "logs", "subdir", "test.log")

	require.NoError(t, EnsureLogDir())

	stat, err := os.Stat(filepath.Join(tmpDir, "logs", "subdir"))
	require.NoError(t, err)
	assert.True(t, stat.IsDir())
}

func TestEnsureLogDirError(t *testing.T) {
	stubHome(t)
	ResetGlobalConfigForTest()
	t.Cleanup(ResetGlobalConfigForTest)
	cfg := GetGlobalConfig()

	// A regular file cannot be a parent directory.
	tmpFile := filepath.Join(t.TempDir(), "test-file")
	require.NoError(t, os.WriteFile(tmpFile, nil, 0o600))
	cfg.Logging.File = filepath.Join(tmpFile, "subdir", "test.log")

	assert.Error(t, EnsureLogDir())
}

func TestGetConfigDir(t *testing.T) {
	tmpHome := stubHome(t)

	dir, err := GetConfigDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tmpHome, ".footprint"), dir)

	t.Setenv(EnvHome, "/opt/footprint")
	dir, err = GetConfigDir()
	require.NoError(t, err)
	assert.Equal(t, "/opt/footprint", dir)
}

func TestEnsureSubDirs(t *testing.T) {
	tmpHome := stubHome(t)
	ResetGlobalConfigForTest()
	t.Cleanup(ResetGlobalConfigForTest)

	require.NoError(t, EnsureSubDirs())

	for _, sub := range []string{"data", "logs"} {
		stat, err := os.Stat(filepath.Join(tmpHome, ".footprint", sub))
		require.NoError(t, err, sub)
		assert.True(t, stat.IsDir())
	}
}

func TestToLoggingConfig(t *testing.T) {
	lc := LoggingConfig{Level: "warn", Format: "json", File: "/tmp/x.log"}
	got := lc.ToLoggingConfig()
	assert.Equal(t, "file", got.Output)
	assert.Equal(t, "/tmp/x.log", got.File)
	assert.Equal(t, "warn", got.Level)

	lc.File = ""
	assert.Equal(t, "stderr", lc.ToLoggingConfig().Output)
}

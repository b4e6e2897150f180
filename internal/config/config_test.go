package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	tmpHome := stubHome(t)
	cfg := Default()

	assert.Equal(t, "table", cfg.Output.DefaultFormat)
	assert.Equal(t, 2, cfg.Output.Precision)
	assert.Equal(t, "kg", cfg.Report.DisplayUnit)
	assert.True(t, cfg.Report.ShowEquivalencies)
	assert.Equal(t, 1500, cfg.Report.LoadingDelayMS)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, filepath.Join(tmpHome, ".footprint", "config.yaml"), cfg.ConfigPath())
	assert.Equal(t, filepath.Join(tmpHome, ".footprint", "data"), cfg.DataDir())
	require.NoError(t, cfg.Validate())
}

func TestNew_ReadsFileAndEnv(t *testing.T) {
	tmpHome := stubHome(t)
	dir := filepath.Join(tmpHome, ".footprint")
	require.NoError(t, os.MkdirAll(dir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(`
report:
  display_unit: t
  loading_delay_ms: 0
logging:
  level: warn
  format: json
`), 0o600))

	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvDataDir, "/srv/fp")

	cfg := New()
	assert.Equal(t, "t", cfg.Report.DisplayUnit)
	assert.Zero(t, cfg.Report.LoadingDelayMS)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "debug", cfg.Logging.Level, "env wins over file")
	assert.Equal(t, "/srv/fp", cfg.DataDir())
}

func TestNew_MalformedFileFallsBack(t *testing.T) {
	tmpHome := stubHome(t)
	dir := filepath.Join(tmpHome, ".footprint")
	require.NoError(t, os.MkdirAll(dir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("{{{"), 0o600))

	cfg := New()
	assert.Equal(t, "table", cfg.Output.DefaultFormat)
}

func TestLoad(t *testing.T) {
	stubHome(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output:\n  default_format: json\n  precision: 3\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Output.DefaultFormat)
	assert.Equal(t, path, cfg.ConfigPath())

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	stubHome(t)
	cfg := Default()
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg.SetConfigPath(path)
	require.NoError(t, cfg.Set("report.display_unit", "lb"))
	require.NoError(t, cfg.Save())

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "lb", loaded.Report.DisplayUnit)
	assert.Equal(t, cfg.Output, loaded.Output)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestSave_NoPath(t *testing.T) {
	cfg := &Config{}
	require.Error(t, cfg.Save())
}

func TestValidate(t *testing.T) {
	stubHome(t)
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{name: "bad format", mutate: func(c *Config) { c.Output.DefaultFormat = "xml" }, errMsg: "output.default_format"},
		{name: "negative precision", mutate: func(c *Config) { c.Output.Precision = -1 }, errMsg: "output.precision"},
		{name: "zero precision", mutate: func(c *Config) { c.Output.Precision = 0 }, errMsg: "output.precision"},
		{name: "bad unit", mutate: func(c *Config) { c.Report.DisplayUnit = "stone" }, errMsg: "report.display_unit"},
		{name: "long delay", mutate: func(c *Config) { c.Report.LoadingDelayMS = 60000 }, errMsg: "report.loading_delay_ms"},
		{name: "bad level", mutate: func(c *Config) { c.Logging.Level = "loud" }, errMsg: "logging.level"},
		{name: "bad log format", mutate: func(c *Config) { c.Logging.Format = "xml" }, errMsg: "logging.format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.ErrorIs(t, err, ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestGetSet(t *testing.T) {
	stubHome(t)
	cfg := Default()

	for _, key := range Keys() {
		_, err := cfg.Get(key)
		require.NoError(t, err, key)
	}

	_, err := cfg.Get("plugins.aws")
	require.ErrorIs(t, err, ErrUnknownKey)

	require.NoError(t, cfg.Set("output.precision", "3"))
	v, err := cfg.Get("output.precision")
	require.NoError(t, err)
	assert.Equal(t, 3, v)

	require.NoError(t, cfg.Set("report.show_equivalencies", "false"))
	assert.False(t, cfg.Report.ShowEquivalencies)

	require.NoError(t, cfg.Set("storage.dir", "/data"))
	assert.Equal(t, "/data", cfg.DataDir())

	require.ErrorIs(t, cfg.Set("output.precision", "many"), ErrInvalidConfig)
	require.ErrorIs(t, cfg.Set("report.show_equivalencies", "maybe"), ErrInvalidConfig)
	require.ErrorIs(t, cfg.Set("nope", "1"), ErrUnknownKey)

	// Invalid values leave the config untouched.
	require.ErrorIs(t, cfg.Set("output.default_format", "xml"), ErrInvalidConfig)
	assert.Equal(t, "table", cfg.Output.DefaultFormat)
}

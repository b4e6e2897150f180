// Package config loads, validates and persists footprint's YAML
// configuration (~/.footprint/config.yaml) and applies FOOTPRINT_*
// environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rshade/footprint/internal/greenops"
)

// Environment variables read by New.
const (
	EnvHome         = "FOOTPRINT_HOME"
	EnvDataDir      = "FOOTPRINT_DATA_DIR"
	EnvLogLevel     = "FOOTPRINT_LOG_LEVEL"
	EnvLogFormat    = "FOOTPRINT_LOG_FORMAT"
	EnvOutputFormat = "FOOTPRINT_OUTPUT_FORMAT"
)

const (
	configFileName     = "config.yaml"
	defaultHomeDirName = ".footprint"
	defaultDataDirName = "data"
	defaultLogFileName = "footprint.log"

	outputTypeFile = "file"

	defaultPrecision      = 2
	maxPrecision          = 6
	defaultLoadingDelayMS = 1500
	maxLoadingDelayMS     = 10000
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// ErrUnknownKey is returned by Get and Set for keys outside Keys().
var ErrUnknownKey = errors.New("unknown configuration key")

//nolint:gochecknoglobals // Lookup tables for validation.
var (
	validOutputFormats = []string{"table", "json", "ndjson"}
	validLogLevels     = []string{"trace", "debug", "info", "warn", "error"}
	validLogFormats    = []string{"json", "console", "text"}
)

// Config is the full configuration document.
type Config struct {
	Storage StorageConfig `yaml:"storage"`
	Output  OutputConfig  `yaml:"output"`
	Report  ReportConfig  `yaml:"report"`
	Logging LoggingConfig `yaml:"logging"`

	configPath string
}

// StorageConfig locates persisted data.
type StorageConfig struct {
	// Dir is the kvstore directory. Empty means <config dir>/data.
	Dir string `yaml:"dir"`
}

// OutputConfig controls CLI rendering.
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format"`
	Precision     int    `yaml:"precision"`
}

// ReportConfig controls the report screen and command.
type ReportConfig struct {
	DisplayUnit       string `yaml:"display_unit"`
	ShowEquivalencies bool   `yaml:"show_equivalencies"`
	LoadingDelayMS    int    `yaml:"loading_delay_ms"`
}

// LoggingConfig controls the zerolog logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// Default returns the built-in configuration without reading any file or
// environment variable.
func Default() *Config {
	dir, err := GetConfigDir()
	if err != nil {
		dir = defaultHomeDirName
	}
	return &Config{
		Output: OutputConfig{
			DefaultFormat: "table",
			Precision:     defaultPrecision,
		},
		Report: ReportConfig{
			DisplayUnit:       "kg",
			ShowEquivalencies: true,
			LoadingDelayMS:    defaultLoadingDelayMS,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
			File:   filepath.Join(dir, "logs", defaultLogFileName),
		},
		configPath: filepath.Join(dir, configFileName),
	}
}

// New returns the defaults overlaid with the config file, if present, and
// then with environment overrides. A malformed file is reported on stderr
// and ignored.
func New() *Config {
	cfg := Default()
	if _, err := os.Stat(cfg.configPath); err == nil {
		if mergeErr := ShallowMergeYAML(cfg, cfg.configPath); mergeErr != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Warning: ignoring config file: %v\n", mergeErr)
		}
	}
	cfg.applyEnv()
	return cfg
}

// Load returns the defaults overlaid with path and environment overrides.
// Unlike New, a missing or malformed file is an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if err := ShallowMergeYAML(cfg, path); err != nil {
		return nil, err
	}
	cfg.configPath = path
	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvDataDir); v != "" {
		c.Storage.Dir = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.Logging.Format = v
	}
	if v := os.Getenv(EnvOutputFormat); v != "" {
		c.Output.DefaultFormat = v
	}
}

// ConfigPath returns the file Save writes to.
func (c *Config) ConfigPath() string {
	return c.configPath
}

// SetConfigPath changes the file Save writes to.
func (c *Config) SetConfigPath(path string) {
	c.configPath = path
}

// DataDir returns the resolved kvstore directory.
func (c *Config) DataDir() string {
	if c.Storage.Dir != "" {
		return c.Storage.Dir
	}
	dir, err := GetConfigDir()
	if err != nil {
		return filepath.Join(defaultHomeDirName, defaultDataDirName)
	}
	return filepath.Join(dir, defaultDataDirName)
}

// Save writes the configuration to ConfigPath as YAML.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.New("config path not set")
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if mkErr := os.MkdirAll(filepath.Dir(c.configPath), 0o700); mkErr != nil {
		return fmt.Errorf("creating config directory: %w", mkErr)
	}

	if writeErr := os.WriteFile(c.configPath, data, 0o600); writeErr != nil {
		return fmt.Errorf("writing config file: %w", writeErr)
	}
	return nil
}

// Validate checks every field against its allowed values.
func (c *Config) Validate() error {
	var errs []error

	if !slices.Contains(validOutputFormats, c.Output.DefaultFormat) {
		errs = append(errs, fmt.Errorf("output.default_format %q must be one of %s",
			c.Output.DefaultFormat, strings.Join(validOutputFormats, ", ")))
	}
	if c.Output.Precision < 1 || c.Output.Precision > maxPrecision {
		errs = append(errs, fmt.Errorf("output.precision %d must be between 1 and %d",
			c.Output.Precision, maxPrecision))
	}
	if !greenops.IsRecognizedUnit(c.Report.DisplayUnit) {
		errs = append(errs, fmt.Errorf("report.display_unit %q must be one of g, kg, t, lb",
			c.Report.DisplayUnit))
	}
	if c.Report.LoadingDelayMS < 0 || c.Report.LoadingDelayMS > maxLoadingDelayMS {
		errs = append(errs, fmt.Errorf("report.loading_delay_ms %d must be between 0 and %d",
			c.Report.LoadingDelayMS, maxLoadingDelayMS))
	}
	if !slices.Contains(validLogLevels, strings.ToLower(c.Logging.Level)) {
		errs = append(errs, fmt.Errorf("logging.level %q must be one of %s",
			c.Logging.Level, strings.Join(validLogLevels, ", ")))
	}
	if !slices.Contains(validLogFormats, c.Logging.Format) {
		errs = append(errs, fmt.Errorf("logging.format %q must be one of %s",
			c.Logging.Format, strings.Join(validLogFormats, ", ")))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

// Keys lists every dotted key accepted by Get and Set.
func Keys() []string {
	return []string{
		"logging.file",
		"logging.format",
		"logging.level",
		"output.default_format",
		"output.precision",
		"report.display_unit",
		"report.loading_delay_ms",
		"report.show_equivalencies",
		"storage.dir",
	}
}

// Get returns the value at a dotted key such as "output.precision".
func (c *Config) Get(key string) (any, error) {
	switch key {
	case "storage.dir":
		return c.Storage.Dir, nil
	case "output.default_format":
		return c.Output.DefaultFormat, nil
	case "output.precision":
		return c.Output.Precision, nil
	case "report.display_unit":
		return c.Report.DisplayUnit, nil
	case "report.show_equivalencies":
		return c.Report.ShowEquivalencies, nil
	case "report.loading_delay_ms":
		return c.Report.LoadingDelayMS, nil
	case "logging.level":
		return c.Logging.Level, nil
	case "logging.format":
		return c.Logging.Format, nil
	case "logging.file":
		return c.Logging.File, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
}

// Set parses value for a dotted key and validates the result. On failure
// the configuration is left unchanged.
func (c *Config) Set(key, value string) error {
	next := *c

	switch key {
	case "storage.dir":
		next.Storage.Dir = value
	case "output.default_format":
		next.Output.DefaultFormat = value
	case "output.precision":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: output.precision must be an integer: %w", ErrInvalidConfig, err)
		}
		next.Output.Precision = n
	case "report.display_unit":
		next.Report.DisplayUnit = value
	case "report.show_equivalencies":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: report.show_equivalencies must be a boolean: %w", ErrInvalidConfig, err)
		}
		next.Report.ShowEquivalencies = b
	case "report.loading_delay_ms":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: report.loading_delay_ms must be an integer: %w", ErrInvalidConfig, err)
		}
		next.Report.LoadingDelayMS = n
	case "logging.level":
		next.Logging.Level = value
	case "logging.format":
		next.Logging.Format = value
	case "logging.file":
		next.Logging.File = value
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}

	if err := next.Validate(); err != nil {
		return err
	}
	*c = next
	return nil
}

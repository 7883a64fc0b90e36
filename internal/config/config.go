package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultPath is used when neither --config nor PREPKIT_CONFIG is set.
	DefaultPath = "prepkit.yaml"
	// EnvPath names the environment variable that overrides DefaultPath.
	EnvPath = "PREPKIT_CONFIG"
)

// Storage backends.
const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
	BackendMemory = "memory"
)

const (
	defaultSQLitePath   = "prepkit.db"
	defaultFileDir      = "prepkit-data"
	defaultMaxRetries   = 3
	defaultBaseDelay    = 50 * time.Millisecond
	defaultShortJDChars = 200
)

// Config is the root configuration for prepkit.
type Config struct {
	Storage  StorageConfig
	Analysis AnalysisConfig
}

// StorageConfig selects where history and checklist state live.
type StorageConfig struct {
	Backend string // "sqlite", "file" or "memory"
	Path    string // database file for sqlite, directory for file
	Retry   RetryConfig
}

// RetryConfig controls retries of transient storage errors.
type RetryConfig struct {
	MaxRetries int
	BaseDelay  time.Duration
}

// AnalysisConfig tunes the analyzer.
type AnalysisConfig struct {
	ShortJDChars     int      // JDs shorter than this get an advisory warning
	ExtraEnterprises []string // extra company-name substrings treated as Enterprise
}

// rawConfig is used for YAML unmarshaling (snake_case fields and duration as string).
type rawConfig struct {
	Storage  rawStorageConfig  `yaml:"storage"`
	Analysis rawAnalysisConfig `yaml:"analysis"`
}

type rawStorageConfig struct {
	Backend string         `yaml:"backend"`
	Path    string         `yaml:"path"`
	Retry   rawRetryConfig `yaml:"retry"`
}

type rawRetryConfig struct {
	MaxRetries *int   `yaml:"max_retries"`
	BaseDelay  string `yaml:"base_delay"`
}

type rawAnalysisConfig struct {
	ShortJDChars     int      `yaml:"short_jd_chars"`
	ExtraEnterprises []string `yaml:"extra_enterprises"`
}

// Path resolves the config file location: flag, then $PREPKIT_CONFIG, then
// DefaultPath. explicit is false only for DefaultPath.
func Path(flag string) (path string, explicit bool) {
	if flag != "" {
		return flag, true
	}
	if env := os.Getenv(EnvPath); env != "" {
		return env, true
	}
	return DefaultPath, false
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Storage: StorageConfig{
			Backend: BackendSQLite,
			Path:    defaultSQLitePath,
			Retry: RetryConfig{
				MaxRetries: defaultMaxRetries,
				BaseDelay:  defaultBaseDelay,
			},
		},
		Analysis: AnalysisConfig{ShortJDChars: defaultShortJDChars},
	}
}

// Load reads and parses the YAML config file at path, validates it, and returns Config.
// A missing file yields an error wrapping fs.ErrNotExist.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse builds a Config from YAML, filling defaults for omitted keys.
func Parse(data []byte) (*Config, error) {
	// Expand environment variables
	expanded := os.ExpandEnv(string(data))

	var raw rawConfig
	if err := yaml.Unmarshal([]byte(expanded), &raw); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg := Default()

	if raw.Storage.Backend != "" {
		cfg.Storage.Backend = strings.ToLower(raw.Storage.Backend)
	}
	switch {
	case raw.Storage.Path != "":
		cfg.Storage.Path = raw.Storage.Path
	case cfg.Storage.Backend == BackendFile:
		cfg.Storage.Path = defaultFileDir
	}

	if raw.Storage.Retry.MaxRetries != nil {
		cfg.Storage.Retry.MaxRetries = *raw.Storage.Retry.MaxRetries
	}
	if raw.Storage.Retry.BaseDelay != "" {
		d, err := time.ParseDuration(raw.Storage.Retry.BaseDelay)
		if err != nil {
			return nil, fmt.Errorf("parse storage.retry.base_delay %q: %w", raw.Storage.Retry.BaseDelay, err)
		}
		cfg.Storage.Retry.BaseDelay = d
	}

	if raw.Analysis.ShortJDChars != 0 {
		cfg.Analysis.ShortJDChars = raw.Analysis.ShortJDChars
	}
	cfg.Analysis.ExtraEnterprises = raw.Analysis.ExtraEnterprises

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func validate(cfg *Config) error {
	switch cfg.Storage.Backend {
	case BackendSQLite, BackendFile:
		if cfg.Storage.Path == "" {
			return fmt.Errorf("storage.path is required for backend %q", cfg.Storage.Backend)
		}
	case BackendMemory:
	default:
		return fmt.Errorf("storage.backend must be one of sqlite, file, memory, got %q", cfg.Storage.Backend)
	}

	if cfg.Storage.Retry.MaxRetries < 0 || cfg.Storage.Retry.MaxRetries > 10 {
		return fmt.Errorf("storage.retry.max_retries must be between 0 and 10, got %d", cfg.Storage.Retry.MaxRetries)
	}
	if cfg.Storage.Retry.BaseDelay <= 0 {
		return fmt.Errorf("storage.retry.base_delay must be positive, got %v", cfg.Storage.Retry.BaseDelay)
	}

	if cfg.Analysis.ShortJDChars < 0 {
		return fmt.Errorf("analysis.short_jd_chars must not be negative, got %d", cfg.Analysis.ShortJDChars)
	}

	return nil
}

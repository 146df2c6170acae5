package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
	"textclean/internal/logging"
)

// EnvPrefix prefixes every environment override, e.g. TEXTCLEAN_LOG_LEVEL.
const EnvPrefix = "TEXTCLEAN"

// Config holds all configuration for the textclean tool.
type Config struct {
	Clean     CleanConfig     `yaml:"clean"`
	Stopwords StopwordsConfig `yaml:"stopwords"`
	Resources ResourcesConfig `yaml:"resources"`
	Batch     BatchConfig     `yaml:"batch"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// CleanConfig holds cleaning pipeline options.
type CleanConfig struct {
	Stem           bool `yaml:"stem"`
	DetectLanguage bool `yaml:"detect_language"` // warn when the input does not look English
}

// StopwordsConfig selects the stopword list.
type StopwordsConfig struct {
	URL string `yaml:"url"` // where the English list is downloaded from; empty uses the built-in copy
}

// ResourcesConfig holds the download cache location.
type ResourcesConfig struct {
	CacheDir string `yaml:"cache_dir"` // empty means <user cache dir>/textclean
}

// BatchConfig holds directory mode file selection.
type BatchConfig struct {
	Includes []string `yaml:"includes"`
	Excludes []string `yaml:"excludes"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// envOverrides mirrors the settings that may be set from the environment.
// Pointers distinguish "unset" from zero values.
type envOverrides struct {
	LogLevel       *string `envconfig:"LOG_LEVEL"`
	Stem           *bool   `envconfig:"STEM"`
	DetectLanguage *bool   `envconfig:"DETECT_LANGUAGE"`
	StopwordsURL   *string `envconfig:"STOPWORDS_URL"`
	CacheDir       *string `envconfig:"CACHE_DIR"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Clean: CleanConfig{
			Stem:           false,
			DetectLanguage: false,
		},
		Stopwords: StopwordsConfig{
			URL: "",
		},
		Batch: BatchConfig{
			Includes: []string{"**/*.txt"},
			Excludes: []string{"**/.git/**"},
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from a YAML file, then applies environment
// overrides. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}

	return finish(cfg)
}

// LoadFromDir loads configuration from a directory (looks for textclean.yaml).
func LoadFromDir(dir string) (*Config, error) {
	path := filepath.Join(dir, "textclean.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	path = filepath.Join(dir, ".textclean", "config.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	return finish(DefaultConfig())
}

func finish(cfg *Config) (*Config, error) {
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	var env envOverrides
	if err := envconfig.Process(EnvPrefix, &env); err != nil {
		return fmt.Errorf("failed to read environment: %w", err)
	}
	if env.LogLevel != nil {
		c.Logging.Level = *env.LogLevel
	}
	if env.Stem != nil {
		c.Clean.Stem = *env.Stem
	}
	if env.DetectLanguage != nil {
		c.Clean.DetectLanguage = *env.DetectLanguage
	}
	if env.StopwordsURL != nil {
		c.Stopwords.URL = *env.StopwordsURL
	}
	if env.CacheDir != nil {
		c.Resources.CacheDir = *env.CacheDir
	}
	return nil
}

// Validate checks settings that would otherwise fail late.
func (c *Config) Validate() error {
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		return err
	}
	if len(c.Batch.Includes) == 0 {
		return fmt.Errorf("batch.includes must not be empty")
	}
	return nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// CacheDir resolves the resource cache directory.
func (c *Config) CacheDir() (string, error) {
	if c.Resources.CacheDir != "" {
		return c.Resources.CacheDir, nil
	}
	base, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user cache dir: %w", err)
	}
	return filepath.Join(base, "textclean"), nil
}

// ResourceDBPath returns the path to the resource cache database.
func ResourceDBPath(dir string) string {
	return filepath.Join(dir, "resources.db")
}

// EnsureCacheDir ensures the cache directory exists.
func EnsureCacheDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}

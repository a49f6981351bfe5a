// Package config loads lexcount configuration from an optional YAML file
// with LEXCOUNT_* environment overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rcliao/lexcount/internal/report"
)

// Config is the complete lexcount configuration.
type Config struct {
	DictionaryPath string    `yaml:"dictionary_path" env:"LEXCOUNT_DICTIONARY" env-default:"empath/empath/data/categories.tsv"`
	Verbose        bool      `yaml:"verbose" env:"LEXCOUNT_VERBOSE"`
	SuppressHeader bool      `yaml:"suppress_header" env:"LEXCOUNT_SUPPRESS_HEADER"`
	Format         string    `yaml:"format" env:"LEXCOUNT_FORMAT" env-default:"csv"`
	DBPath         string    `yaml:"db_path" env:"LEXCOUNT_DB"`
	Lexicon        string    `yaml:"lexicon" env:"LEXCOUNT_LEXICON"`
	MetricsFile    string    `yaml:"metrics_file" env:"LEXCOUNT_METRICS_FILE"`
	MaxLineLength  int       `yaml:"max_line_length" env:"LEXCOUNT_MAX_LINE_LENGTH" env-default:"8192"`
	Log            LogConfig `yaml:"log"`
}

// LogConfig controls the diagnostic logger.
type LogConfig struct {
	// Level overrides the level implied by Verbose when set.
	Level  string `yaml:"level" env:"LEXCOUNT_LOG_LEVEL"`
	Format string `yaml:"format" env:"LEXCOUNT_LOG_FORMAT" env-default:"text"`
}

// Load reads the YAML file at path, if any, then applies environment
// variables and defaults. An empty path falls back to $LEXCOUNT_CONFIG;
// with neither, only the environment and defaults are used.
func Load(path string) (*Config, error) {
	var cfg Config

	if path == "" {
		path = os.Getenv("LEXCOUNT_CONFIG")
	}
	if path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	return &cfg, nil
}

// Validate checks values that flags may have changed after Load.
func (c *Config) Validate() error {
	switch c.Format {
	case report.FormatCSV, report.FormatSummary:
	default:
		return fmt.Errorf("config: unknown format %q", c.Format)
	}
	if c.MaxLineLength <= 0 {
		return fmt.Errorf("config: max_line_length must be positive, got %d", c.MaxLineLength)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("config: unknown log format %q", c.Log.Format)
	}
	return nil
}

// LogLevel returns the configured level, or info when verbose and warn
// otherwise.
func (c *Config) LogLevel() string {
	if c.Log.Level != "" {
		return c.Log.Level
	}
	if c.Verbose {
		return "info"
	}
	return "warn"
}

// ResolveDBPath returns the lexicon store path, defaulting to
// ~/.lexcount/lexicons.db.
func (c *Config) ResolveDBPath() string {
	if c.DBPath != "" {
		return c.DBPath
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".lexcount", "lexicons.db")
}

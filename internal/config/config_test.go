package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("LEXCOUNT_CONFIG", "")

	cfg, err := Load("")
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "empath/empath/data/categories.tsv", cfg.DictionaryPath)
	assert.Equal(t, "csv", cfg.Format)
	assert.Equal(t, 8192, cfg.MaxLineLength)
	assert.False(t, cfg.Verbose)
	assert.False(t, cfg.SuppressHeader)
	assert.Equal(t, "warn", cfg.LogLevel())
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestLoad_YAMLWithEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lexcount.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`dictionary_path: /data/liwc.tsv
verbose: true
suppress_header: true
format: summary
log:
  format: json
`), 0o644))
	t.Setenv("LEXCOUNT_FORMAT", "csv")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "/data/liwc.tsv", cfg.DictionaryPath)
	assert.True(t, cfg.Verbose)
	assert.True(t, cfg.SuppressHeader)
	assert.Equal(t, "csv", cfg.Format)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "info", cfg.LogLevel())
}

func TestLoad_ConfigFromEnvPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.yml")
	require.NoError(t, os.WriteFile(path, []byte("lexicon: empath\n"), 0o644))
	t.Setenv("LEXCOUNT_CONFIG", path)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "empath", cfg.Lexicon)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := &Config{Format: "csv", MaxLineLength: 10, Log: LogConfig{Format: "text"}}
	require.NoError(t, cfg.Validate())

	bad := *cfg
	bad.Format = "xml"
	assert.Error(t, bad.Validate())

	bad = *cfg
	bad.MaxLineLength = 0
	assert.Error(t, bad.Validate())

	bad = *cfg
	bad.Log.Format = "logfmt"
	assert.Error(t, bad.Validate())
}

func TestLogLevelOverride(t *testing.T) {
	cfg := &Config{Verbose: true, Log: LogConfig{Level: "debug"}}
	assert.Equal(t, "debug", cfg.LogLevel())
}

func TestResolveDBPath(t *testing.T) {
	cfg := &Config{DBPath: "/tmp/x.db"}
	assert.Equal(t, "/tmp/x.db", cfg.ResolveDBPath())

	cfg.DBPath = ""
	assert.Equal(t, "lexicons.db", filepath.Base(cfg.ResolveDBPath()))
}

package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	synsetsPath   = filepath.Join("..", "..", "wordnet", "testdata", "synsets.txt")
	hypernymsPath = filepath.Join("..", "..", "wordnet", "testdata", "hypernyms.txt")
)

func withInputs(t *testing.T) *Config {
	t.Helper()
	v := New()
	v.Set(KeySynsets, synsetsPath)
	v.Set(KeyHypernyms, hypernymsPath)
	cfg, err := Load(v)
	require.NoError(t, err)

	return cfg
}

func TestLoad_Defaults(t *testing.T) {
	cfg := withInputs(t)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, 4096, cfg.CacheSize)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "none", cfg.TraceExporter)
	assert.Equal(t, "prometheus", cfg.MetricExporter)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("WORDNET_SYNSETS", synsetsPath)
	t.Setenv("WORDNET_HYPERNYMS", hypernymsPath)
	t.Setenv("WORDNET_CACHE_SIZE", "32")
	t.Setenv("WORDNET_SHUTDOWN_TIMEOUT", "3s")
	t.Setenv("WORDNET_LOG_FORMAT", "console")

	cfg, err := Load(New())
	require.NoError(t, err)
	assert.Equal(t, synsetsPath, cfg.Synsets)
	assert.Equal(t, 32, cfg.CacheSize)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "console", cfg.LogFormat)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wordnet.yaml")
	body := "synsets: " + synsetsPath + "\n" +
		"hypernyms: " + hypernymsPath + "\n" +
		"log-level: debug\n" +
		"listen-addr: 127.0.0.1:9000\n" +
		"shutdown-timeout: 1m\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	v := New()
	v.Set(KeyConfig, path)
	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "127.0.0.1:9000", cfg.ListenAddr)
	assert.Equal(t, time.Minute, cfg.ShutdownTimeout)
	assert.Equal(t, hypernymsPath, cfg.Hypernyms)

	v = New()
	v.Set(KeyConfig, filepath.Join(t.TempDir(), "missing.yaml"))
	_, err = Load(v)
	assert.Error(t, err)
}

func TestLoad_Flags(t *testing.T) {
	fs := pflag.NewFlagSet("wordnet", pflag.ContinueOnError)
	PersistentFlags(fs)
	ServeFlags(fs)
	require.NoError(t, fs.Parse([]string{
		"--synsets", synsetsPath,
		"--hypernyms", hypernymsPath,
		"--listen-addr", ":9999",
		"--cache-size", "7",
	}))

	v := New()
	require.NoError(t, v.BindPFlags(fs))
	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, ":9999", cfg.ListenAddr)
	assert.Equal(t, 7, cfg.CacheSize)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestValidate(t *testing.T) {
	base := *withInputs(t)

	cases := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"no synsets", func(c *Config) { c.Synsets = "" }},
		{"missing hypernyms file", func(c *Config) { c.Hypernyms = "does/not/exist.txt" }},
		{"bad level", func(c *Config) { c.LogLevel = "verbose" }},
		{"bad format", func(c *Config) { c.LogFormat = "xml" }},
		{"bad listen addr", func(c *Config) { c.ListenAddr = "8080" }},
		{"zero cache", func(c *Config) { c.CacheSize = 0 }},
		{"zero timeout", func(c *Config) { c.ShutdownTimeout = 0 }},
		{"bad exporter", func(c *Config) { c.TraceExporter = "jaeger" }},
		{"otlp without endpoint", func(c *Config) { c.TraceExporter = "otlp" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := base
			tc.mutate(&c)
			assert.ErrorIs(t, c.Validate(), ErrInvalidConfig)
		})
	}

	c := base
	c.TraceExporter = "otlp"
	c.OTLPEndpoint = "localhost:4317"
	assert.NoError(t, c.Validate())
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, withInputs(t)))

	out := buf.String()
	assert.Contains(t, out, "cache-size: 4096\n")
	assert.Contains(t, out, "shutdown-timeout: 10s\n")
	assert.Contains(t, out, "synsets: "+synsetsPath+"\n")
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `{
		"job_url": "https://jobs.example.com/123",
		"job_title": "Platform Engineer",
		"use_browser": true,
		"listen_addr": ":8080"
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "https://jobs.example.com/123", cfg.JobURL)
	assert.Equal(t, "Platform Engineer", cfg.JobTitle)
	assert.True(t, cfg.UseBrowser)
	assert.Equal(t, ":8080", cfg.ListenAddr)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	path := writeConfig(t, `{not json`)
	_, err = LoadConfig(path)
	assert.Error(t, err)
}

func TestValidateMutuallyExclusive(t *testing.T) {
	cfg := &Config{Job: "job.txt", JobURL: "https://example.com"}
	assert.Error(t, cfg.Validate())
}

func TestValidateMissingFiles(t *testing.T) {
	cfg := &Config{Resume: filepath.Join(t.TempDir(), "missing.pdf")}
	assert.Error(t, cfg.Validate())

	assert.NoError(t, (&Config{}).Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{JobURL: "https://jobs.example.com/123"}
	defaults := Config{
		JobURL:      "https://should-not-win.example.com",
		APIKey:      "default-key",
		DatabaseURL: "postgres://localhost/ats",
		ListenAddr:  ":8080",
	}

	merged := cfg.MergeWithDefaults(defaults)
	assert.Equal(t, "https://jobs.example.com/123", merged.JobURL)
	assert.Equal(t, "default-key", merged.APIKey)
	assert.Equal(t, "postgres://localhost/ats", merged.DatabaseURL)
	assert.Equal(t, ":8080", merged.ListenAddr)
}

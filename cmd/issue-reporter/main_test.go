package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupWorkDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("ISSUE_REPORTER_TOKEN", "")
	t.Chdir(dir)
	return dir
}

func TestRun_Version(t *testing.T) {
	setupWorkDir(t)
	var stdout, stderr bytes.Buffer

	err := run([]string{"--version"}, &stdout, &stderr)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), version)
}

func TestRun_ConfigInit(t *testing.T) {
	dir := setupWorkDir(t)
	var stdout, stderr bytes.Buffer

	err := run([]string{"config", "init"}, &stdout, &stderr)

	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, ".issue-reporter.toml"))
}

func TestRun_IssuesWithoutTracker(t *testing.T) {
	setupWorkDir(t)
	var stdout, stderr bytes.Buffer

	err := run([]string{"issues"}, &stdout, &stderr)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "tracker url not configured")
}

func TestRun_ConfigWarnings(t *testing.T) {
	dir := setupWorkDir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".issue-reporter.toml"), []byte("stray = 1\n"), 0o600))
	var stdout, stderr bytes.Buffer

	err := run([]string{"config", "template"}, &stdout, &stderr)

	require.NoError(t, err)
	assert.Contains(t, stderr.String(), "Warning: unknown key: stray")
}

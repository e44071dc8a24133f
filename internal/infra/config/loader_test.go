package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/runoshun/issue-reporter/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noEnv(string) string { return "" }

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoader_Load_Defaults(t *testing.T) {
	loader := NewLoaderWithGlobalDir(t.TempDir(), t.TempDir()).WithEnv(noEnv)

	cfg, err := loader.Load()

	require.NoError(t, err)
	assert.Equal(t, domain.NewDefaultConfig(), cfg)
}

func TestLoader_Load_ProjectConfigOnly(t *testing.T) {
	projectDir := t.TempDir()
	writeFile(t, domain.ProjectConfigPath(projectDir), `
[tracker]
url = "https://api.github.com/repos/acme/app/issues"
token = "secret"
timeout_seconds = 10

[reporter]
username = "alice"
client_version = "v1.4.0"
default_type = "feature"
jpeg_quality = 70

[log]
level = "debug"
file = "/tmp/ir.log"
`)

	cfg, err := NewLoaderWithGlobalDir(projectDir, t.TempDir()).WithEnv(noEnv).Load()

	require.NoError(t, err)
	assert.Equal(t, "https://api.github.com/repos/acme/app/issues", cfg.Tracker.URL)
	assert.Equal(t, "secret", cfg.Tracker.Token)
	assert.Equal(t, 10, cfg.Tracker.TimeoutSeconds)
	assert.Equal(t, "alice", cfg.Reporter.Username)
	assert.Equal(t, "v1.4.0", cfg.Reporter.ClientVersion)
	assert.Equal(t, "feature", cfg.Reporter.DefaultType)
	assert.Equal(t, 70, cfg.Reporter.JPEGQuality)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/tmp/ir.log", cfg.Log.File)
	assert.Empty(t, cfg.Warnings)
}

func TestLoader_Load_ProjectOverridesGlobal(t *testing.T) {
	projectDir := t.TempDir()
	globalDir := t.TempDir()
	writeFile(t, filepath.Join(globalDir, domain.ConfigFileName), `
[tracker]
url = "https://global.example/issues"
token = "global-token"

[reporter]
username = "global-user"
`)
	writeFile(t, domain.ProjectConfigPath(projectDir), `
[tracker]
url = "https://project.example/issues"
`)

	cfg, err := NewLoaderWithGlobalDir(projectDir, globalDir).WithEnv(noEnv).Load()

	require.NoError(t, err)
	assert.Equal(t, "https://project.example/issues", cfg.Tracker.URL)
	assert.Equal(t, "global-token", cfg.Tracker.Token)
	assert.Equal(t, "global-user", cfg.Reporter.Username)
	assert.Equal(t, domain.DefaultTimeoutSeconds, cfg.Tracker.TimeoutSeconds)
}

func TestLoader_Load_EnvTokenOverrides(t *testing.T) {
	projectDir := t.TempDir()
	writeFile(t, domain.ProjectConfigPath(projectDir), "[tracker]\ntoken = \"file-token\"\n")

	env := func(key string) string {
		if key == domain.TokenEnvVar {
			return "env-token"
		}
		return ""
	}
	cfg, err := NewLoaderWithGlobalDir(projectDir, t.TempDir()).WithEnv(env).Load()

	require.NoError(t, err)
	assert.Equal(t, "env-token", cfg.Tracker.Token)
}

func TestLoader_Load_UnknownKeysWarn(t *testing.T) {
	projectDir := t.TempDir()
	writeFile(t, domain.ProjectConfigPath(projectDir), `
stray = 1

[tracker]
uri = "typo"

[colors]
accent = "red"
`)

	cfg, err := NewLoaderWithGlobalDir(projectDir, t.TempDir()).WithEnv(noEnv).Load()

	require.NoError(t, err)
	assert.Equal(t, []string{
		"unknown key in [tracker]: uri",
		"unknown key: stray",
		"unknown section: colors",
	}, cfg.Warnings)
}

func TestLoader_Load_InvalidTOML(t *testing.T) {
	projectDir := t.TempDir()
	writeFile(t, domain.ProjectConfigPath(projectDir), "[tracker\nurl=")

	_, err := NewLoaderWithGlobalDir(projectDir, t.TempDir()).WithEnv(noEnv).Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ProjectConfigName)
}

func TestLoader_LoadWithOptions_IgnoreSources(t *testing.T) {
	projectDir := t.TempDir()
	globalDir := t.TempDir()
	writeFile(t, filepath.Join(globalDir, domain.ConfigFileName), "[reporter]\nusername = \"g\"\n")
	writeFile(t, domain.ProjectConfigPath(projectDir), "[reporter]\nusername = \"p\"\n")
	loader := NewLoaderWithGlobalDir(projectDir, globalDir).WithEnv(noEnv)

	cfg, err := loader.LoadWithOptions(domain.LoadConfigOptions{IgnoreProject: true})
	require.NoError(t, err)
	assert.Equal(t, "g", cfg.Reporter.Username)

	cfg, err = loader.LoadWithOptions(domain.LoadConfigOptions{IgnoreGlobal: true, IgnoreProject: true})
	require.NoError(t, err)
	assert.Equal(t, "", cfg.Reporter.Username)
}

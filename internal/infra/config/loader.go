// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/issue-reporter/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from TOML files.
type Loader struct {
	getenv        func(string) string
	projectDir    string // Directory holding .issue-reporter.toml
	globalConfDir string // Path to global config directory (e.g., ~/.config/issue-reporter)
}

// NewLoader creates a new Loader.
func NewLoader(projectDir string) *Loader {
	return &Loader{
		getenv:        os.Getenv,
		projectDir:    projectDir,
		globalConfDir: DefaultGlobalConfigDir(),
	}
}

// NewLoaderWithGlobalDir creates a new Loader with a custom global config directory.
// This is useful for testing.
func NewLoaderWithGlobalDir(projectDir, globalConfDir string) *Loader {
	return &Loader{
		getenv:        os.Getenv,
		projectDir:    projectDir,
		globalConfDir: globalConfDir,
	}
}

// WithEnv replaces the environment lookup used for overrides.
func (l *Loader) WithEnv(getenv func(string) string) *Loader {
	l.getenv = getenv
	return l
}

// DefaultGlobalConfigDir returns $XDG_CONFIG_HOME/issue-reporter, or
// ~/.config/issue-reporter when XDG_CONFIG_HOME is unset.
func DefaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return domain.GlobalAppDir(configHome)
}

// Load returns the merged configuration (project + global).
// Project config takes precedence over global config.
func (l *Loader) Load() (*domain.Config, error) {
	return l.LoadWithOptions(domain.LoadConfigOptions{})
}

// LoadWithOptions returns the merged configuration with options to ignore sources.
func (l *Loader) LoadWithOptions(opts domain.LoadConfigOptions) (*domain.Config, error) {
	var global, project *domain.Config
	var err error

	if !opts.IgnoreGlobal {
		global, err = l.LoadGlobal()
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	if !opts.IgnoreProject {
		project, err = l.LoadProject()
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	// Merge: default <- global <- project (later takes precedence)
	base := domain.NewDefaultConfig()
	if global != nil {
		base = mergeConfigs(base, global)
	}
	if project != nil {
		base = mergeConfigs(base, project)
	}

	if token := l.getenv(domain.TokenEnvVar); token != "" {
		base.Tracker.Token = token
	}

	return base, nil
}

// LoadGlobal returns only the global configuration.
func (l *Loader) LoadGlobal() (*domain.Config, error) {
	if l.globalConfDir == "" {
		return nil, os.ErrNotExist
	}
	return l.loadFile(filepath.Join(l.globalConfDir, domain.ConfigFileName))
}

// LoadProject returns only the project configuration.
func (l *Loader) LoadProject() (*domain.Config, error) {
	if l.projectDir == "" {
		return nil, os.ErrNotExist
	}
	return l.loadFile(domain.ProjectConfigPath(l.projectDir))
}

// loadFile loads a configuration from a file.
func (l *Loader) loadFile(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return convertRawToDomainConfig(raw), nil
}

// convertRawToDomainConfig converts the raw map to domain config and collects warnings.
func convertRawToDomainConfig(raw map[string]any) *domain.Config {
	res := &domain.Config{}
	var warnings []string

	for section, value := range raw {
		m, ok := value.(map[string]any)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("unknown key: %s", section))
			continue
		}
		switch section {
		case "tracker":
			for k, v := range m {
				switch k {
				case "url":
					if s, ok := v.(string); ok {
						res.Tracker.URL = s
					}
				case "token":
					if s, ok := v.(string); ok {
						res.Tracker.Token = s
					}
				case "timeout_seconds":
					if n, ok := v.(int64); ok {
						res.Tracker.TimeoutSeconds = int(n)
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [tracker]: %s", k))
				}
			}
		case "reporter":
			for k, v := range m {
				switch k {
				case "username":
					if s, ok := v.(string); ok {
						res.Reporter.Username = s
					}
				case "client_version":
					if s, ok := v.(string); ok {
						res.Reporter.ClientVersion = s
					}
				case "default_type":
					if s, ok := v.(string); ok {
						res.Reporter.DefaultType = s
					}
				case "jpeg_quality":
					if n, ok := v.(int64); ok {
						res.Reporter.JPEGQuality = int(n)
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [reporter]: %s", k))
				}
			}
		case "log":
			for k, v := range m {
				switch k {
				case "level":
					if s, ok := v.(string); ok {
						res.Log.Level = s
					}
				case "file":
					if s, ok := v.(string); ok {
						res.Log.File = s
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [log]: %s", k))
				}
			}
		default:
			warnings = append(warnings, fmt.Sprintf("unknown section: %s", section))
		}
	}

	sort.Strings(warnings)
	res.Warnings = warnings
	return res
}

// mergeConfigs merges two configs, with override taking precedence.
func mergeConfigs(base, override *domain.Config) *domain.Config {
	result := &domain.Config{
		Tracker:  base.Tracker,
		Reporter: base.Reporter,
		Log:      base.Log,
		Warnings: append([]string{}, base.Warnings...),
	}
	result.Warnings = append(result.Warnings, override.Warnings...)

	if override.Tracker.URL != "" {
		result.Tracker.URL = override.Tracker.URL
	}
	if override.Tracker.Token != "" {
		result.Tracker.Token = override.Tracker.Token
	}
	if override.Tracker.TimeoutSeconds > 0 {
		result.Tracker.TimeoutSeconds = override.Tracker.TimeoutSeconds
	}
	if override.Reporter.Username != "" {
		result.Reporter.Username = override.Reporter.Username
	}
	if override.Reporter.ClientVersion != "" {
		result.Reporter.ClientVersion = override.Reporter.ClientVersion
	}
	if override.Reporter.DefaultType != "" {
		result.Reporter.DefaultType = override.Reporter.DefaultType
	}
	if override.Reporter.JPEGQuality > 0 {
		result.Reporter.JPEGQuality = override.Reporter.JPEGQuality
	}
	if override.Log.Level != "" {
		result.Log.Level = override.Log.Level
	}
	if override.Log.File != "" {
		result.Log.File = override.Log.File
	}

	return result
}

package domain

import (
	"bytes"
	_ "embed"
	"fmt"
	"path/filepath"
	"text/template"
)

//go:embed config_template.toml
var configTemplateContent string

// Config represents the application configuration.
// Fields are ordered to minimize memory padding.
type Config struct {
	Warnings []string       `toml:"-"`
	Tracker  TrackerConfig  `toml:"tracker"`
	Reporter ReporterConfig `toml:"reporter"`
	Log      LogConfig      `toml:"log"`
}

// TrackerConfig holds the remote issue tracker settings from [tracker].
type TrackerConfig struct {
	URL            string `toml:"url,omitempty"`             // Issues endpoint, e.g. https://api.github.com/repos/owner/repo/issues
	Token          string `toml:"token,omitempty"`           // API token (optional for public repositories)
	TimeoutSeconds int    `toml:"timeout_seconds,omitempty"` // Per-request timeout
}

// ReporterConfig holds the reporter settings from [reporter].
type ReporterConfig struct {
	Username      string `toml:"username,omitempty"`       // Defaults to git user.name
	ClientVersion string `toml:"client_version,omitempty"` // Version stamped on reports
	DefaultType   string `toml:"default_type,omitempty"`   // bug, feature or performance
	JPEGQuality   int    `toml:"jpeg_quality,omitempty"`   // Re-encoding quality for attached images
}

// LogConfig holds logging settings from [log].
type LogConfig struct {
	Level string `toml:"level,omitempty"` // debug, info, warn, error
	File  string `toml:"file,omitempty"`  // Log file path (empty disables file logging)
}

// Default configuration values.
const (
	DefaultTimeoutSeconds = 3
	DefaultJPEGQuality    = 85
	DefaultLogLevel       = "info"
)

// File and directory names.
const (
	AppDirName         = "issue-reporter"       // Global config directory name
	ConfigFileName     = "config.toml"          // Global config file name
	ProjectConfigName  = ".issue-reporter.toml" // Project config file name
	TokenEnvVar        = "ISSUE_REPORTER_TOKEN" // Overrides tracker.token
	DefaultLogFileName = "issue-reporter.log"   // Log file name inside the global directory
)

// GlobalAppDir returns the global config directory.
// configHome is typically XDG_CONFIG_HOME or ~/.config (resolved by caller).
func GlobalAppDir(configHome string) string {
	return filepath.Join(configHome, AppDirName)
}

// GlobalConfigPath returns the global config path.
func GlobalConfigPath(configHome string) string {
	return filepath.Join(GlobalAppDir(configHome), ConfigFileName)
}

// ProjectConfigPath returns the project config path inside dir.
func ProjectConfigPath(dir string) string {
	return filepath.Join(dir, ProjectConfigName)
}

// NewDefaultConfig returns a Config with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Tracker: TrackerConfig{
			TimeoutSeconds: DefaultTimeoutSeconds,
		},
		Reporter: ReporterConfig{
			DefaultType: ReportBug.Short(),
			JPEGQuality: DefaultJPEGQuality,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
	}
}

// MaskedToken returns the token with all but its last four characters hidden.
func (t TrackerConfig) MaskedToken() string {
	if t.Token == "" {
		return ""
	}
	if len(t.Token) <= 4 {
		return "****"
	}
	return "****" + t.Token[len(t.Token)-4:]
}

// templateData holds the values rendered into the config template.
type templateData struct {
	LogLevel       string
	TimeoutSeconds int
	JPEGQuality    int
}

// RenderConfigTemplate renders the commented config template.
func RenderConfigTemplate(cfg *Config) string {
	data := templateData{
		LogLevel:       cfg.Log.Level,
		TimeoutSeconds: cfg.Tracker.TimeoutSeconds,
		JPEGQuality:    cfg.Reporter.JPEGQuality,
	}

	tmpl, err := template.New("config").Delims("<<", ">>").Parse(configTemplateContent)
	if err != nil {
		// Should never happen with embedded template
		panic(fmt.Sprintf("failed to parse config template: %v", err))
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		panic(fmt.Sprintf("failed to execute config template: %v", err))
	}
	return buf.String()
}

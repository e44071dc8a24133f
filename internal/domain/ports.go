// Package domain contains core business entities and interfaces.
package domain

import (
	"context"
	"time"
)

// IssueTracker is the remote issue-tracking service.
type IssueTracker interface {
	// CreateIssue files a new issue.
	CreateIssue(ctx context.Context, req IssueRequest) error

	// ListIssues returns all issues, open and closed.
	ListIssues(ctx context.Context) ([]RemoteIssue, error)
}

// ConfigLoader loads configuration.
type ConfigLoader interface {
	// Load returns the merged configuration (default <- global <- project).
	Load() (*Config, error)

	// LoadWithOptions returns the merged configuration, skipping ignored sources.
	LoadWithOptions(opts LoadConfigOptions) (*Config, error)
}

// LoadConfigOptions selects which configuration sources are read.
type LoadConfigOptions struct {
	IgnoreGlobal  bool
	IgnoreProject bool
}

// ConfigManager locates and creates configuration files.
type ConfigManager interface {
	// GetProjectConfigInfo returns information about the project config file.
	GetProjectConfigInfo() ConfigInfo

	// GetGlobalConfigInfo returns information about the global config file.
	GetGlobalConfigInfo() ConfigInfo

	// InitProjectConfig writes the template to the project config file.
	InitProjectConfig(cfg *Config) error

	// InitGlobalConfig writes the template to the global config file.
	InitGlobalConfig(cfg *Config) error
}

// ConfigInfo describes a config file location.
type ConfigInfo struct {
	Path    string
	Content string
	Exists  bool
}

// IdentityResolver finds the name of the person filing reports.
type IdentityResolver interface {
	// Username returns the configured user name, or "" if none is known.
	Username() string
}

// ImageStore moves screenshots between files and embedded payloads.
type ImageStore interface {
	// LoadJPEGBase64 returns the image at path as a base64-encoded JPEG.
	LoadJPEGBase64(path string, quality int) (string, error)

	// WriteBase64 decodes payload and writes the image bytes to path.
	WriteBase64(path, payload string) error
}

// Logger writes categorized log entries.
type Logger interface {
	Info(category, msg string)
	Debug(category, msg string)
	Warn(category, msg string)
	Error(category, msg string)
}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}

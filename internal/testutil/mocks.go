// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/runoshun/issue-reporter/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// MockTracker is a test double for domain.IssueTracker.
// Fields are ordered to minimize memory padding.
type MockTracker struct {
	CreateErr error
	ListErr   error
	Issues    []domain.RemoteIssue
	Created   []domain.IssueRequest
	ListCalls int
	mu        sync.Mutex
}

// NewMockTracker creates a new MockTracker returning issues.
func NewMockTracker(issues ...domain.RemoteIssue) *MockTracker {
	return &MockTracker{Issues: issues}
}

// Ensure MockTracker implements domain.IssueTracker interface.
var _ domain.IssueTracker = (*MockTracker)(nil)

// CreateIssue records the request and returns the configured error.
func (m *MockTracker) CreateIssue(_ context.Context, req domain.IssueRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CreateErr != nil {
		return m.CreateErr
	}
	m.Created = append(m.Created, req)
	return nil
}

// ListIssues returns the configured issues or error.
func (m *MockTracker) ListIssues(ctx context.Context) ([]domain.RemoteIssue, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ListCalls++
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return append([]domain.RemoteIssue(nil), m.Issues...), nil
}

// MockImageStore is a test double for domain.ImageStore.
// Payloads are derived from the path so tests can assert on them.
type MockImageStore struct {
	LoadErr  error
	WriteErr error
	Written  map[string]string
	Loaded   []string
}

// NewMockImageStore creates a new MockImageStore.
func NewMockImageStore() *MockImageStore {
	return &MockImageStore{Written: make(map[string]string)}
}

// Ensure MockImageStore implements domain.ImageStore interface.
var _ domain.ImageStore = (*MockImageStore)(nil)

// LoadJPEGBase64 returns "jpeg(<path>@<quality>)" or the configured error.
func (m *MockImageStore) LoadJPEGBase64(path string, quality int) (string, error) {
	if m.LoadErr != nil {
		return "", m.LoadErr
	}
	m.Loaded = append(m.Loaded, path)
	return fmt.Sprintf("jpeg(%s@%d)", path, quality), nil
}

// WriteBase64 records the payload written to path.
func (m *MockImageStore) WriteBase64(path, payload string) error {
	if m.WriteErr != nil {
		return m.WriteErr
	}
	m.Written[path] = payload
	return nil
}

// MockIdentity is a test double for domain.IdentityResolver.
type MockIdentity struct {
	Name string
}

// Username returns the configured name.
func (m MockIdentity) Username() string {
	return m.Name
}

// LogEntry is one message captured by MockLogger.
type LogEntry struct {
	Level    string
	Category string
	Msg      string
}

// MockLogger captures log entries.
type MockLogger struct {
	Entries []LogEntry
	mu      sync.Mutex
}

// Ensure MockLogger implements domain.Logger interface.
var _ domain.Logger = (*MockLogger)(nil)

func (m *MockLogger) add(level, category, msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Entries = append(m.Entries, LogEntry{Level: level, Category: category, Msg: msg})
}

// Info records an info entry.
func (m *MockLogger) Info(category, msg string) { m.add("INFO", category, msg) }

// Debug records a debug entry.
func (m *MockLogger) Debug(category, msg string) { m.add("DEBUG", category, msg) }

// Warn records a warning entry.
func (m *MockLogger) Warn(category, msg string) { m.add("WARN", category, msg) }

// Error records an error entry.
func (m *MockLogger) Error(category, msg string) { m.add("ERROR", category, msg) }

// Count returns the number of entries at level.
func (m *MockLogger) Count(level string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, e := range m.Entries {
		if e.Level == level {
			n++
		}
	}
	return n
}

// MockConfigLoader is a test double for domain.ConfigLoader.
type MockConfigLoader struct {
	Config  *domain.Config
	LoadErr error
	Opts    []domain.LoadConfigOptions
}

// NewMockConfigLoader creates a new MockConfigLoader with default config.
func NewMockConfigLoader() *MockConfigLoader {
	return &MockConfigLoader{
		Config: domain.NewDefaultConfig(),
	}
}

// Ensure MockConfigLoader implements domain.ConfigLoader interface.
var _ domain.ConfigLoader = (*MockConfigLoader)(nil)

// Load returns the configured config or error.
func (m *MockConfigLoader) Load() (*domain.Config, error) {
	return m.LoadWithOptions(domain.LoadConfigOptions{})
}

// LoadWithOptions records opts and returns the configured config or error.
func (m *MockConfigLoader) LoadWithOptions(opts domain.LoadConfigOptions) (*domain.Config, error) {
	m.Opts = append(m.Opts, opts)
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return m.Config, nil
}

// MockConfigManager is a test double for domain.ConfigManager.
// Fields are ordered to minimize memory padding.
type MockConfigManager struct {
	InitProjectErr    error
	InitGlobalErr     error
	InitConfig        *domain.Config
	ProjectConfigInfo domain.ConfigInfo
	GlobalConfigInfo  domain.ConfigInfo
	InitProjectCalled bool
	InitGlobalCalled  bool
}

// NewMockConfigManager creates a new MockConfigManager.
func NewMockConfigManager() *MockConfigManager {
	return &MockConfigManager{
		ProjectConfigInfo: domain.ConfigInfo{
			Path:   "/test/project/.issue-reporter.toml",
			Exists: false,
		},
		GlobalConfigInfo: domain.ConfigInfo{
			Path:   "/home/test/.config/issue-reporter/config.toml",
			Exists: false,
		},
	}
}

// Ensure MockConfigManager implements domain.ConfigManager interface.
var _ domain.ConfigManager = (*MockConfigManager)(nil)

// GetProjectConfigInfo returns the configured project config info.
func (m *MockConfigManager) GetProjectConfigInfo() domain.ConfigInfo {
	return m.ProjectConfigInfo
}

// GetGlobalConfigInfo returns the configured global config info.
func (m *MockConfigManager) GetGlobalConfigInfo() domain.ConfigInfo {
	return m.GlobalConfigInfo
}

// InitProjectConfig records the call and returns configured error.
func (m *MockConfigManager) InitProjectConfig(cfg *domain.Config) error {
	m.InitProjectCalled = true
	m.InitConfig = cfg
	return m.InitProjectErr
}

// InitGlobalConfig records the call and returns configured error.
func (m *MockConfigManager) InitGlobalConfig(cfg *domain.Config) error {
	m.InitGlobalCalled = true
	m.InitConfig = cfg
	return m.InitGlobalErr
}

// StrPtr returns a pointer to s.
func StrPtr(s string) *string {
	return &s
}

// RemoteIssue builds an open issue with the given number, title and body.
func RemoteIssue(number int, title, body string) domain.RemoteIssue {
	return domain.RemoteIssue{
		Number:    number,
		Title:     title,
		HTMLURL:   fmt.Sprintf("https://github.com/acme/app/issues/%d", number),
		State:     domain.StateOpen,
		Body:      StrPtr(body),
		CreatedAt: "2025-06-01T12:00:00Z",
	}
}

// ClosedRemoteIssue builds a closed issue with the given number and title.
func ClosedRemoteIssue(number int, title, body string) domain.RemoteIssue {
	r := RemoteIssue(number, title, body)
	r.State = domain.StateClosed
	r.ClosedAt = StrPtr("2025-06-02T12:00:00Z")
	r.StateReason = StrPtr("completed")
	return r
}

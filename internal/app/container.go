// Package app provides the dependency injection container for the application.
package app

import (
	"errors"
	"io"

	"github.com/runoshun/issue-reporter/internal/domain"
	"github.com/runoshun/issue-reporter/internal/infra/config"
	"github.com/runoshun/issue-reporter/internal/infra/filestore"
	"github.com/runoshun/issue-reporter/internal/infra/git"
	"github.com/runoshun/issue-reporter/internal/infra/logging"
	"github.com/runoshun/issue-reporter/internal/infra/tracker"
	"github.com/runoshun/issue-reporter/internal/usecase"
)

// Config holds the application paths.
type Config struct {
	ProjectDir    string // Directory holding .issue-reporter.toml
	GlobalConfDir string // Path to the global config directory (may be empty)
	LogPath       string // Log file (empty disables logging)
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Tracker       domain.IssueTracker // nil when no tracker URL is configured
	Images        domain.ImageStore
	Identity      domain.IdentityResolver
	Clock         domain.Clock
	ConfigLoader  domain.ConfigLoader
	ConfigManager domain.ConfigManager
	Logger        domain.Logger

	// Pointer fields
	Settings *domain.Config // Effective configuration at startup

	// Configuration
	Config Config
}

// New creates a new Container for the project in dir.
// A broken config file is not fatal here; defaults are used and the error
// surfaces again when commands load the configuration.
func New(dir string) (*Container, error) {
	cfg := Config{
		ProjectDir:    dir,
		GlobalConfDir: config.DefaultGlobalConfigDir(),
	}

	configLoader := config.NewLoaderWithGlobalDir(cfg.ProjectDir, cfg.GlobalConfDir)
	settings, err := configLoader.Load()
	if err != nil {
		settings = domain.NewDefaultConfig()
	}

	cfg.LogPath = settings.Log.File
	if cfg.LogPath == "" {
		cfg.LogPath = logging.DefaultPath(cfg.GlobalConfDir)
	}
	logger := logging.New(cfg.LogPath, logging.ParseLevel(settings.Log.Level))

	issueTracker, err := newTracker(settings.Tracker)
	if err != nil {
		return nil, err
	}

	return &Container{
		Tracker:       issueTracker,
		Images:        filestore.New(),
		Identity:      git.NewClient(cfg.ProjectDir),
		Clock:         domain.RealClock{},
		ConfigLoader:  configLoader,
		ConfigManager: config.NewManagerWithGlobalDir(cfg.ProjectDir, cfg.GlobalConfDir),
		Logger:        logger,
		Settings:      settings,
		Config:        cfg,
	}, nil
}

// newTracker returns a nil tracker when none is configured.
func newTracker(cfg domain.TrackerConfig) (domain.IssueTracker, error) {
	client, err := tracker.NewClient(cfg)
	if errors.Is(err, domain.ErrNoTrackerURL) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return client, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(
	cfg Config,
	issueTracker domain.IssueTracker,
	images domain.ImageStore,
	configLoader domain.ConfigLoader,
	clock domain.Clock,
	logger domain.Logger,
) *Container {
	settings := domain.NewDefaultConfig()
	if configLoader != nil {
		if loaded, err := configLoader.Load(); err == nil {
			settings = loaded
		}
	}
	return &Container{
		Tracker:      issueTracker,
		Images:       images,
		Clock:        clock,
		ConfigLoader: configLoader,
		Logger:       logger,
		Settings:     settings,
		Config:       cfg,
	}
}

// Close releases resources held by the container.
func (c *Container) Close() error {
	if closer, ok := c.Logger.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// UseCase factory methods

// CreateReportUseCase returns a new CreateReport use case.
func (c *Container) CreateReportUseCase() *usecase.CreateReport {
	return usecase.NewCreateReport(c.Tracker, c.Images, c.Identity, c.ConfigLoader, c.Clock, c.Logger)
}

// ListIssuesUseCase returns a new ListIssues use case.
func (c *Container) ListIssuesUseCase() *usecase.ListIssues {
	return usecase.NewListIssues(c.Tracker, c.Clock, c.Logger)
}

// ShowIssueUseCase returns a new ShowIssue use case.
func (c *Container) ShowIssueUseCase() *usecase.ShowIssue {
	return usecase.NewShowIssue(c.Tracker, c.Clock, c.Logger)
}

// ExportImagesUseCase returns a new ExportImages use case.
func (c *Container) ExportImagesUseCase() *usecase.ExportImages {
	return usecase.NewExportImages(c.Tracker, c.Images, c.Clock, c.Logger)
}

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.ConfigManager, c.ConfigLoader)
}

// InitConfigUseCase returns a new InitConfig use case.
func (c *Container) InitConfigUseCase() *usecase.InitConfig {
	return usecase.NewInitConfig(c.ConfigManager)
}

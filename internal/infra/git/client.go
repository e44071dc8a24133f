// Package git resolves the reporter identity from git configuration.
package git

import (
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"

	"github.com/runoshun/issue-reporter/internal/domain"
)

// Ensure Client implements domain.IdentityResolver.
var _ domain.IdentityResolver = (*Client)(nil)

// Client reads user settings from the repository around a directory,
// falling back to the global git configuration.
type Client struct {
	repo       *git.Repository
	loadGlobal func() (*config.Config, error)
}

// NewClient creates a client for dir. A directory outside any repository
// is not an error; only the global configuration is consulted then.
func NewClient(dir string) *Client {
	c := &Client{loadGlobal: loadGlobalConfig}
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err == nil {
		c.repo = repo
	}
	return c
}

func loadGlobalConfig() (*config.Config, error) {
	return config.LoadConfig(config.GlobalScope)
}

// InRepository reports whether the client found a git repository.
func (c *Client) InRepository() bool {
	return c.repo != nil
}

// Username returns user.name, or "" if it is not configured anywhere.
func (c *Client) Username() string {
	if c.repo != nil {
		// ConfigScoped merges local over global.
		if cfg, err := c.repo.ConfigScoped(config.GlobalScope); err == nil {
			if name := strings.TrimSpace(cfg.User.Name); name != "" {
				return name
			}
		}
	}
	if c.loadGlobal == nil {
		return ""
	}
	cfg, err := c.loadGlobal()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(cfg.User.Name)
}

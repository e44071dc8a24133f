// Package tracker implements domain.IssueTracker over the GitHub REST issues API.
package tracker

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gregjones/httpcache"
	"golang.org/x/oauth2"

	"github.com/runoshun/issue-reporter/internal/domain"
)

// Ensure Client implements domain.IssueTracker.
var _ domain.IssueTracker = (*Client)(nil)

// API headers sent with every request.
const (
	acceptHeader = "application/vnd.github+json"
	apiVersion   = "2022-11-28"
	userAgent    = "issue-reporter"
)

// maxErrorBody bounds how much of an error response is kept in the error.
const maxErrorBody = 512

// Client talks to a tracker issues endpoint.
type Client struct {
	http *http.Client
	url  string
}

// NewClient creates a client for cfg. An empty URL is rejected.
func NewClient(cfg domain.TrackerConfig) (*Client, error) {
	return NewClientWithTransport(cfg, http.DefaultTransport)
}

// NewClientWithTransport creates a client sending requests through base.
func NewClientWithTransport(cfg domain.TrackerConfig, base http.RoundTripper) (*Client, error) {
	if strings.TrimSpace(cfg.URL) == "" {
		return nil, domain.ErrNoTrackerURL
	}

	var transport http.RoundTripper = base
	if cfg.Token != "" {
		transport = &oauth2.Transport{
			// "token" is sent verbatim as the Authorization scheme.
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.Token, TokenType: "token"}),
			Base:   base,
		}
	}
	cacheTransport := httpcache.NewMemoryCacheTransport()
	cacheTransport.Transport = transport

	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = domain.DefaultTimeoutSeconds
	}

	return &Client{
		http: &http.Client{
			Transport: cacheTransport,
			Timeout:   time.Duration(timeout) * time.Second,
		},
		url: cfg.URL,
	}, nil
}

// CreateIssue files a new issue. Only 201 Created counts as success.
func (c *Client) CreateIssue(ctx context.Context, req domain.IssueRequest) error {
	payload, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("encode issue: %w", err)
	}

	httpReq, err := c.newRequest(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return fmt.Errorf("create issue: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusCreated {
		return unexpectedStatus(resp)
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

// ListIssues returns every issue, open and closed.
func (c *Client) ListIssues(ctx context.Context) ([]domain.RemoteIssue, error) {
	listURL, err := withStateAll(c.url)
	if err != nil {
		return nil, err
	}

	httpReq, err := c.newRequest(ctx, http.MethodGet, listURL, nil)
	if err != nil {
		return nil, err
	}
	// A cached list is always revalidated; an unchanged list comes back as 304.
	httpReq.Header.Set("Cache-Control", "max-age=0")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("list issues: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, unexpectedStatus(resp)
	}

	var issues []domain.RemoteIssue
	if err := json.NewDecoder(resp.Body).Decode(&issues); err != nil {
		return nil, fmt.Errorf("decode issues: %w", err)
	}
	return issues, nil
}

func (c *Client) newRequest(ctx context.Context, method, target string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", acceptHeader)
	req.Header.Set("X-GitHub-Api-Version", apiVersion)
	req.Header.Set("User-Agent", userAgent)
	return req, nil
}

// withStateAll adds state=all to rawURL unless a state is already requested.
func withStateAll(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("parse tracker url: %w", err)
	}
	q := u.Query()
	if q.Has("state") {
		return rawURL, nil
	}
	q.Set("state", domain.StateAll)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func unexpectedStatus(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	msg := strings.TrimSpace(string(body))
	if msg == "" {
		return fmt.Errorf("%w: %s", domain.ErrUnexpectedStatus, resp.Status)
	}
	return fmt.Errorf("%w: %s: %s", domain.ErrUnexpectedStatus, resp.Status, msg)
}

package usecase

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/runoshun/issue-reporter/internal/domain"
)

// CreateReportInput contains the parameters for filing a report.
// Explicit fields take precedence over the draft.
type CreateReportInput struct {
	Draft         string   // Draft file content with front matter (optional)
	DraftDir      string   // Directory draft image paths are relative to
	Title         string   // Issue title
	Type          string   // Report type name (empty = configured default)
	Details       string   // Markdown details
	Username      string   // Reporter name (empty = config, then git user.name)
	ClientVersion string   // Client version (empty = config)
	ImagePaths    []string // Image files to embed
	Images        []string // Already encoded base64 JPEG payloads
	Quality       int      // JPEG quality (0 = configured default)
	DryRun        bool     // Build the request without sending it
}

// CreateReportOutput contains the result of filing a report.
// Fields are ordered to minimize memory padding.
type CreateReportOutput struct {
	Report    *domain.BugReport
	Request   domain.IssueRequest
	BodySize  int
	Oversize  bool
	Submitted bool
}

// CreateReport is the use case for filing a bug report.
type CreateReport struct {
	tracker      domain.IssueTracker
	images       domain.ImageStore
	identity     domain.IdentityResolver
	configLoader domain.ConfigLoader
	clock        domain.Clock
	logger       domain.Logger
}

// NewCreateReport creates a new CreateReport use case.
func NewCreateReport(
	tracker domain.IssueTracker,
	images domain.ImageStore,
	identity domain.IdentityResolver,
	configLoader domain.ConfigLoader,
	clock domain.Clock,
	logger domain.Logger,
) *CreateReport {
	return &CreateReport{
		tracker:      tracker,
		images:       images,
		identity:     identity,
		configLoader: configLoader,
		clock:        clock,
		logger:       logger,
	}
}

// Execute validates the report, embeds its images and files it.
func (uc *CreateReport) Execute(ctx context.Context, in CreateReportInput) (*CreateReportOutput, error) {
	cfg := domain.NewDefaultConfig()
	if uc.configLoader != nil {
		loaded, err := uc.configLoader.Load()
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	if in.Draft != "" {
		if err := applyDraft(&in); err != nil {
			return nil, err
		}
	}

	typeName := in.Type
	if typeName == "" {
		typeName = cfg.Reporter.DefaultType
	}
	reportType, err := domain.ParseReportType(typeName)
	if err != nil {
		return nil, err
	}

	if len(in.ImagePaths)+len(in.Images) > domain.MaxImages {
		return nil, domain.ErrTooManyImages
	}

	quality := in.Quality
	if quality == 0 {
		quality = cfg.Reporter.JPEGQuality
	}
	images := append([]string(nil), in.Images...)
	for _, path := range in.ImagePaths {
		payload, err := uc.images.LoadJPEGBase64(path, quality)
		if err != nil {
			return nil, err
		}
		images = append(images, payload)
	}

	report, err := domain.NewBugReport(domain.BugReportInput{
		Username:      uc.resolveUsername(in.Username, cfg),
		ClientVersion: firstNonEmpty(in.ClientVersion, cfg.Reporter.ClientVersion),
		Type:          reportType,
		Title:         in.Title,
		Details:       in.Details,
		Images:        images,
	}, uc.clock)
	if err != nil {
		return nil, err
	}

	req := report.Request()
	size := domain.EstimatedBodySize(report.Details, report.Images)
	out := &CreateReportOutput{
		Report:   report,
		Request:  req,
		BodySize: size,
		Oversize: domain.IsOversize(size),
	}
	if out.Oversize {
		uc.logger.Warn("usecase", fmt.Sprintf("report %q body is %d bytes (limit %d)", report.Title, size, domain.MaxBodySize))
	}

	if in.DryRun {
		return out, nil
	}

	if uc.tracker == nil {
		return nil, domain.ErrNoTrackerURL
	}
	if err := uc.tracker.CreateIssue(ctx, req); err != nil {
		uc.logger.Error("usecase", fmt.Sprintf("create issue %q failed: %v", report.Title, err))
		return nil, fmt.Errorf("create issue: %w", err)
	}
	out.Submitted = true

	uc.logger.Info("usecase", fmt.Sprintf("issue created: %q (%s, %d images)", report.Title, req.Type, len(report.Images)))
	return out, nil
}

func (uc *CreateReport) resolveUsername(explicit string, cfg *domain.Config) string {
	if explicit != "" {
		return explicit
	}
	if cfg.Reporter.Username != "" {
		return cfg.Reporter.Username
	}
	if uc.identity != nil {
		return uc.identity.Username()
	}
	return ""
}

// applyDraft fills the fields in left empty from the draft content.
func applyDraft(in *CreateReportInput) error {
	draft, err := domain.ParseReportDraft(in.Draft)
	if err != nil {
		return err
	}
	in.Title = firstNonEmpty(in.Title, draft.Title)
	in.Type = firstNonEmpty(in.Type, draft.Type)
	in.Details = firstNonEmpty(in.Details, draft.Details)
	if len(in.ImagePaths) == 0 {
		for _, p := range draft.Images {
			if !filepath.IsAbs(p) && in.DraftDir != "" {
				p = filepath.Join(in.DraftDir, p)
			}
			in.ImagePaths = append(in.ImagePaths, p)
		}
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

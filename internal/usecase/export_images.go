package usecase

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/runoshun/issue-reporter/internal/domain"
)

// ExportImagesInput contains the parameters for exporting issue images.
type ExportImagesInput struct {
	OutDir string // Directory the files are written to
	Number int    // Issue number
}

// ExportImagesOutput lists the written files.
type ExportImagesOutput struct {
	Paths []string
}

// ExportImages writes the screenshots embedded in an issue to disk.
type ExportImages struct {
	tracker domain.IssueTracker
	images  domain.ImageStore
	clock   domain.Clock
	logger  domain.Logger
}

// NewExportImages creates a new ExportImages use case.
func NewExportImages(
	tracker domain.IssueTracker,
	images domain.ImageStore,
	clock domain.Clock,
	logger domain.Logger,
) *ExportImages {
	return &ExportImages{
		tracker: tracker,
		images:  images,
		clock:   clock,
		logger:  logger,
	}
}

// Execute writes each image as issue-<n>-<i>.jpg, numbered from 1.
func (uc *ExportImages) Execute(ctx context.Context, in ExportImagesInput) (*ExportImagesOutput, error) {
	issue, err := findIssue(ctx, uc.tracker, uc.clock, uc.logger, in.Number)
	if err != nil {
		return nil, err
	}
	if len(issue.Images) == 0 {
		return nil, fmt.Errorf("#%d: %w", in.Number, domain.ErrNoImages)
	}

	outDir := in.OutDir
	if outDir == "" {
		outDir = "."
	}

	paths := make([]string, 0, len(issue.Images))
	for i, payload := range issue.Images {
		path := filepath.Join(outDir, fmt.Sprintf("issue-%d-%d.jpg", issue.Number, i+1))
		if err := uc.images.WriteBase64(path, payload); err != nil {
			return nil, fmt.Errorf("write image %d: %w", i+1, err)
		}
		paths = append(paths, path)
	}

	uc.logger.Info("usecase", fmt.Sprintf("exported %d images from #%d to %s", len(paths), issue.Number, outDir))
	return &ExportImagesOutput{Paths: paths}, nil
}

// Package filestore provides a file-based implementation of domain.ImageStore.
package filestore

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/gif" // register GIF decoder
	"image/jpeg"
	_ "image/png" // register PNG decoder
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"

	"github.com/runoshun/issue-reporter/internal/domain"
)

// Ensure Store implements domain.ImageStore.
var _ domain.ImageStore = (*Store)(nil)

// DefaultMaxFileSize is the largest image file accepted for embedding.
const DefaultMaxFileSize = 20 << 20

// Store reads and writes screenshot files.
type Store struct {
	maxFileSize int64
}

// New creates a new Store.
func New() *Store {
	return &Store{maxFileSize: DefaultMaxFileSize}
}

// LoadJPEGBase64 decodes a PNG, JPEG or GIF file and re-encodes it as a
// base64 JPEG at the given quality.
func (s *Store) LoadJPEGBase64(path string, quality int) (string, error) {
	if quality < 1 || quality > 100 {
		return "", fmt.Errorf("%w: %d", domain.ErrInvalidQuality, quality)
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("read image: %w", err)
	}
	if info.Size() > s.maxFileSize {
		return "", fmt.Errorf("%w: %s is %s (limit %s)", domain.ErrImageTooLarge,
			filepath.Base(path), humanize.Bytes(uint64(info.Size())), humanize.Bytes(uint64(s.maxFileSize)))
	}

	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("read image: %w", err)
	}
	defer func() { _ = f.Close() }()

	img, _, err := image.Decode(f)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", domain.ErrUnsupportedImage, filepath.Base(path), err)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return "", fmt.Errorf("encode jpeg: %w", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// WriteBase64 decodes payload and writes it to path, creating parent directories.
func (s *Store) WriteBase64(path, payload string) error {
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return fmt.Errorf("decode image payload: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("create image dir: %w", err)
	}
	return writeAtomic(path, data, 0o644)
}

func writeAtomic(path string, content []byte, perm os.FileMode) error {
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, content, perm); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

// Package storage is the object-storage boundary for room display images.
// The service only ever needs "take these bytes, give me a public URL", so
// that is the whole interface; swapping the disk implementation for S3 or
// Cloudinary is a constructor change in main.
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Uploader persists a file and returns its publicly reachable URL.
type Uploader interface {
	Upload(ctx context.Context, filename string, r io.Reader) (string, error)
}

// DiskUploader writes uploads to a local directory served as static files.
type DiskUploader struct {
	dir     string
	baseURL string
}

// NewDiskUploader ensures the upload directory exists. baseURL is the public
// origin the files are served from, e.g. "http://localhost:8081".
func NewDiskUploader(dir, baseURL string) (*DiskUploader, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &DiskUploader{dir: dir, baseURL: baseURL}, nil
}

// Upload stores the file under a fresh UUID name (original extension kept)
// and returns its URL. A partially written file is removed on failure so the
// directory never accumulates torsos.
func (u *DiskUploader) Upload(ctx context.Context, filename string, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	name := uuid.NewString() + filepath.Ext(filename)
	path := filepath.Join(u.dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(path)
		return "", fmt.Errorf("write upload file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("close upload file: %w", err)
	}

	return u.baseURL + "/uploads/" + name, nil
}

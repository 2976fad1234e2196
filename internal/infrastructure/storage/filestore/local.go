package filestore

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"adboard/internal/core/apperror"
)

// allowedImageTypes maps accepted content types to the stored file
// extension. Content type is sniffed from the file bytes, never taken
// from the upload headers.
var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// Local stores uploaded files on the local filesystem under a single
// media root and serves them by URL prefix.
type Local struct {
	dir     string
	baseURL string
}

// NewLocal creates a local file store rooted at dir. Stored paths are
// relative to dir; URL resolves them against baseURL.
func NewLocal(dir, baseURL string) (*Local, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create media dir %q: %w", dir, err)
	}
	return &Local{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

// Dir returns the media root directory.
func (l *Local) Dir() string {
	return l.dir
}

// Save validates the uploaded file as an image and writes it under the
// media root with a generated name. It returns the stored path relative
// to the media root.
func (l *Local) Save(ctx context.Context, file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open uploaded file: %w", err)
	}
	defer src.Close()

	// http.DetectContentType needs at most 512 bytes.
	head := make([]byte, 512)
	n, err := src.Read(head)
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("read uploaded file: %w", err)
	}

	ext, ok := allowedImageTypes[http.DetectContentType(head[:n])]
	if !ok {
		return "", apperror.NewValidation("image", "file must be a jpeg, png, gif or webp image")
	}

	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("rewind uploaded file: %w", err)
	}

	name := uuid.New().String() + ext
	dst, err := os.Create(filepath.Join(l.dir, name))
	if err != nil {
		return "", fmt.Errorf("create image file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("write image file: %w", err)
	}
	return name, nil
}

// Remove deletes a stored file. A missing file is not an error.
func (l *Local) Remove(ctx context.Context, path string) error {
	full := filepath.Join(l.dir, filepath.Clean("/"+path))
	if err := os.Remove(full); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove stored file %q: %w", path, err)
	}
	return nil
}

// URL resolves a stored path to its public URL.
func (l *Local) URL(path string) string {
	return l.baseURL + "/" + strings.TrimLeft(path, "/")
}

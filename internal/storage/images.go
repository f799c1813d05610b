package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

// ImageStore persists uploaded airplane images and returns a URL path the
// API can hand back to clients.
type ImageStore interface {
	Save(name string, ext string, src io.Reader) (string, error)
}

// LocalImageStore writes files to a directory on disk, served as static
// content under /uploads. Filenames combine a slug of the original name
// with a random suffix so concurrent uploads never collide.
type LocalImageStore struct {
	dir string
}

func NewLocalImageStore(dir string) (*LocalImageStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &LocalImageStore{dir: dir}, nil
}

func (s *LocalImageStore) Save(name string, ext string, src io.Reader) (string, error) {
	ext = strings.ToLower(ext)
	filename := fmt.Sprintf("%s-%s%s", slug.Make(name), uuid.NewString(), ext)

	dst, err := os.Create(filepath.Join(s.dir, filename))
	if err != nil {
		return "", fmt.Errorf("failed to create image file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to write image file: %w", err)
	}

	return "/uploads/" + filename, nil
}

var _ ImageStore = (*LocalImageStore)(nil)

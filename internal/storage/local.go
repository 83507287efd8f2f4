package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"gutcheck/internal/models"
)

// LocalStore saves uploads under <dir>/meals on the server's own disk. Files
// are served back through the /uploads static route, so the deletion key is
// simply the stored filename.
type LocalStore struct {
	dir     string
	baseURL string
}

// NewLocalStore creates the meals subdirectory if needed and returns a store
// rooted at dir. baseURL is the externally reachable server address used to
// build image URLs.
func NewLocalStore(dir, baseURL string) (*LocalStore, error) {
	if err := os.MkdirAll(filepath.Join(dir, "meals"), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &LocalStore{
		dir:     dir,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

// Save writes the uploaded file to disk under a collision-resistant name.
func (s *LocalStore) Save(_ context.Context, _ string, file *multipart.FileHeader) (models.Image, error) {
	name := storedName(file.Filename)

	src, err := file.Open()
	if err != nil {
		return models.Image{}, fmt.Errorf("failed to open upload %s: %w", file.Filename, err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.dir, "meals", name))
	if err != nil {
		return models.Image{}, fmt.Errorf("failed to create file for %s: %w", file.Filename, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dst.Name())
		return models.Image{}, fmt.Errorf("failed to write upload %s: %w", file.Filename, err)
	}

	return models.Image{
		URL: fmt.Sprintf("%s/uploads/meals/%s", s.baseURL, name),
		Key: name,
	}, nil
}

// Delete removes a stored file. A key that is already gone is not an error;
// keys containing path separators are rejected so a stale record can never
// reach outside the upload directory.
func (s *LocalStore) Delete(_ context.Context, key string) error {
	if key == "" || filepath.Base(key) != key {
		return fmt.Errorf("invalid deletion key %q", key)
	}
	if err := os.Remove(filepath.Join(s.dir, "meals", key)); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to delete file %s: %w", key, err)
	}
	return nil
}

// Package storage persists uploaded meal images and hands back stable
// references to them. Two interchangeable backends exist: local disk served
// through the /uploads static route, and an S3-compatible object store.
package storage

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"time"

	"gutcheck/internal/models"

	"github.com/google/uuid"
)

// Store is the attachment backend contract. Save returns the public URL of
// the stored bytes plus the opaque key a later Delete accepts. Callers treat
// Delete as best-effort: its errors are logged, never propagated.
type Store interface {
	Save(ctx context.Context, ownerID string, file *multipart.FileHeader) (models.Image, error)
	Delete(ctx context.Context, key string) error
}

// storedName builds a collision-resistant filename for an upload, keeping
// the original extension so content types stay guessable.
func storedName(original string) string {
	return fmt.Sprintf("%d-%s%s", time.Now().UnixNano(), uuid.New().String(), filepath.Ext(original))
}

// Package disk implements artifact storage on the local filesystem.
// References are bare filenames; the serving layer decides how they map to
// URLs.
package disk

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"kabalen/internal/pkg/errs"
)

// allowedExtensions lists the upload extensions accepted for artifacts.
// Uploads are restricted to images; anything else is rejected before a byte
// is written.
func allowedExtensions() map[string]struct{} {
	return map[string]struct{}{
		".jpg":  {},
		".jpeg": {},
		".png":  {},
		".webp": {},
	}
}

// Store writes artifacts into a single flat directory. File names are
// generated, never taken from the upload, so a crafted filename cannot
// escape the directory or collide with another artifact.
type Store struct {
	dir string
}

// NewStore creates the artifact directory if needed and returns a store
// rooted there.
func NewStore(dir string) (*Store, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, errs.NewValueIsRequiredError("dir")
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create artifact directory %q: %w", dir, err)
	}

	return &Store{dir: dir}, nil
}

// Save writes the blob under a generated name and returns that name as the
// reference. The original filename contributes only its extension, which
// must be one of the allowed image types.
func (s *Store) Save(ctx context.Context, field, originalFilename string, contents io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if strings.TrimSpace(field) == "" {
		return "", errs.NewValueIsRequiredError("field")
	}

	ext := strings.ToLower(filepath.Ext(originalFilename))
	if _, ok := allowedExtensions()[ext]; !ok {
		return "", errs.NewValueIsInvalidError(fmt.Sprintf("file extension %q is not allowed", ext))
	}

	name := fmt.Sprintf("%s_%s%s", field, uuid.NewString(), ext)

	file, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("create artifact %q: %w", name, err)
	}

	if _, err = io.Copy(file, contents); err != nil {
		_ = file.Close()
		_ = os.Remove(file.Name())
		return "", fmt.Errorf("write artifact %q: %w", name, err)
	}

	if err = file.Close(); err != nil {
		return "", fmt.Errorf("close artifact %q: %w", name, err)
	}

	return name, nil
}

// Path resolves a reference back to its location on disk. References
// containing path separators are rejected.
func (s *Store) Path(ref string) (string, error) {
	if ref == "" || ref != filepath.Base(ref) {
		return "", errs.NewValueIsInvalidError(fmt.Sprintf("artifact reference %q is invalid", ref))
	}
	return filepath.Join(s.dir, ref), nil
}

package ports

import (
	"context"
	"io"
)

// ArtifactStore durably stores uploaded binary blobs (proof photos,
// identity documents) and returns a stable opaque reference. The core only
// stores and compares references; it never reads blob contents back.
type ArtifactStore interface {
	// Save writes the blob and returns its reference. The field names the
	// upload slot (e.g. "dropoff", "validId") and the original filename is
	// used only to preserve the extension.
	Save(ctx context.Context, field, originalFilename string, contents io.Reader) (string, error)
}

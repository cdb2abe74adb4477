// Package uploads stores user-submitted files (blog images, resume
// documents) and hands back the public URL to persist alongside the record.
package uploads

import (
	"context"
	"io"
)

// Store saves an uploaded file under a caller-chosen key. Keys may contain
// slashes to namespace the file ("blog-images/…"). Save returns the public
// URL of the stored file.
type Store interface {
	Save(ctx context.Context, key, contentType string, r io.Reader) (string, error)
}

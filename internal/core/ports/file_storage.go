package ports

import (
	"context"
	"io"
)

// FileStorage persists uploaded files under relative paths.
type FileStorage interface {
	Save(ctx context.Context, path string, content io.Reader) error
	Delete(ctx context.Context, path string) error
}

package tables

import "context"

type FileStore interface {
	Load(ctx context.Context, path string) ([]byte, error)
}

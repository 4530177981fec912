package regression

import "context"

type FileStore interface {
	Save(ctx context.Context, path string, content []byte) error
}

package docstore

import (
	"context"
	"fmt"

	"interview-planner/core/config"
	"interview-planner/core/constants"
)

// Backend loads and saves a whole document against durable storage. Each
// backend is keyed by a single logical handle fixed at construction time.
// Load fails with an ErrDocumentUnavailable AppError when the document is
// missing or cannot be parsed; callers decide whether that means "no data
// yet" or a hard failure.
type Backend interface {
	Load(ctx context.Context) (Document, error)
	Save(ctx context.Context, doc Document) error
}

// NewBackend builds the backend selected by config.
func NewBackend(cfg *config.Config) (Backend, error) {
	switch cfg.Storage.Backend {
	case constants.StorageBackendFile:
		return NewFileBackend(cfg.Storage.Handle), nil
	case constants.StorageBackendPostgres:
		return NewPostgresBackend(cfg.Postgres, cfg.Storage.Handle)
	case constants.StorageBackendRedis:
		return NewRedisBackend(cfg.Redis, cfg.Storage.Handle), nil
	case constants.StorageBackendS3:
		return NewS3Backend(cfg.S3, cfg.Storage.Handle)
	default:
		return nil, fmt.Errorf("docstore: unknown backend %q", cfg.Storage.Backend)
	}
}

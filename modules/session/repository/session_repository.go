package repository

import (
	"context"
	"strings"

	"interview-planner/core/constants"
	"interview-planner/core/docstore"
	"interview-planner/core/errors"
	"interview-planner/core/logger"
)

// DocumentStore is the persistence boundary for the session document. Every
// mutating call performs a full load-modify-save cycle against the backend,
// so each call observes the latest persisted state and no in-memory document
// survives between calls.
type DocumentStore struct {
	backend docstore.Backend
}

func NewDocumentStore(backend docstore.Backend) *DocumentStore {
	return &DocumentStore{backend: backend}
}

// DocumentStoreInterface defines the store contract.
type DocumentStoreInterface interface {
	Read(ctx context.Context) (docstore.Document, error)
	ReadKey(ctx context.Context, key string) (any, error)
	Write(ctx context.Context, path []string, value any) (string, error)
	ReplaceSession(ctx context.Context, value any) error
	Initialize(ctx context.Context) (bool, error)
}

// Read returns the whole document.
func (s *DocumentStore) Read(ctx context.Context) (docstore.Document, error) {
	return s.backend.Load(ctx)
}

// ReadKey returns the subtree under a top-level key, or (nil, nil) when the
// key is absent. Absence is a distinct result so callers can tell an
// uninitialized key apart from an empty one.
func (s *DocumentStore) ReadKey(ctx context.Context, key string) (any, error) {
	doc, err := s.backend.Load(ctx)
	if err != nil {
		return nil, err
	}
	value, ok := doc[key]
	if !ok {
		return nil, nil
	}
	return value, nil
}

// Write sets the value at the end of path, creating missing intermediate
// mappings, and persists the whole document back. It returns the joined path
// as a confirmation descriptor.
func (s *DocumentStore) Write(ctx context.Context, path []string, value any) (string, error) {
	if len(path) == 0 {
		return "", errors.NewAppError(errors.ErrInvalidInput, "write path must not be empty", nil)
	}

	doc, err := s.backend.Load(ctx)
	if err != nil {
		return "", err
	}

	if err := docstore.SetPath(doc, path, value); err != nil {
		return "", errors.NewAppError(errors.ErrInvalidInput, err.Error(), err)
	}

	if err := s.backend.Save(ctx, doc); err != nil {
		return "", err
	}

	joined := strings.Join(path, "/")
	logger.Debug("DocumentStore:Write", "path", joined)
	return joined, nil
}

// ReplaceSession overwrites the whole session subtree in one persisted write.
func (s *DocumentStore) ReplaceSession(ctx context.Context, value any) error {
	doc, err := s.backend.Load(ctx)
	if err != nil {
		return err
	}

	doc[constants.SessionRootKey] = value
	return s.backend.Save(ctx, doc)
}

// Initialize ensures the session root key exists as an empty mapping,
// starting from a fresh document when the backend has nothing loadable.
// It returns true when the structure was just created, false when it was
// already present. Idempotent: an existing, non-empty session is never
// overwritten.
func (s *DocumentStore) Initialize(ctx context.Context) (bool, error) {
	doc, err := s.backend.Load(ctx)
	if err != nil {
		if !errors.Is(err, errors.ErrDocumentUnavailable) {
			return false, err
		}
		logger.Warn("DocumentStore:Initialize:FreshDocument", "error", err)
		doc = docstore.Document{}
	}

	if _, ok := doc[constants.SessionRootKey]; ok {
		return false, nil
	}

	doc[constants.SessionRootKey] = map[string]any{}
	if err := s.backend.Save(ctx, doc); err != nil {
		return false, err
	}
	return true, nil
}

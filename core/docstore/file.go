package docstore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"interview-planner/core/errors"
	"interview-planner/core/logger"
)

// FileBackend persists the document as a pretty-printed JSON file.
type FileBackend struct {
	path string
}

func NewFileBackend(path string) *FileBackend {
	return &FileBackend{path: path}
}

func (b *FileBackend) Load(ctx context.Context) (Document, error) {
	raw, err := os.ReadFile(b.path)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrDocumentUnavailable,
			fmt.Sprintf("cannot read document file %s", b.path), err)
	}

	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		logger.Error("FileBackend:Load:Malformed", "path", b.path, "error", err)
		return nil, errors.NewAppError(errors.ErrDocumentUnavailable,
			fmt.Sprintf("malformed document file %s", b.path), err)
	}
	return doc, nil
}

func (b *FileBackend) Save(ctx context.Context, doc Document) error {
	normalized := Normalize(doc)

	raw, err := json.MarshalIndent(normalized, "", "    ")
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "cannot encode document", err)
	}

	if dir := filepath.Dir(b.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.NewAppError(errors.ErrDocumentUnavailable,
				fmt.Sprintf("cannot create document directory %s", dir), err)
		}
	}

	if err := os.WriteFile(b.path, raw, 0o644); err != nil {
		return errors.NewAppError(errors.ErrDocumentUnavailable,
			fmt.Sprintf("cannot write document file %s", b.path), err)
	}
	return nil
}

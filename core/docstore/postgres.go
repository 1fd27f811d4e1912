package docstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"interview-planner/core/config"
	"interview-planner/core/constants"
	"interview-planner/core/errors"
	"interview-planner/core/logger"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

const createDocumentsTable = `
	CREATE TABLE IF NOT EXISTS documents (
		handle     TEXT PRIMARY KEY,
		body       JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)
`

// PostgresBackend persists the document as a single jsonb row keyed by handle.
type PostgresBackend struct {
	db     *sqlx.DB
	handle string
}

func NewPostgresBackend(cfg config.PostgresConfig, handle string) (*PostgresBackend, error) {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode)

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		logger.Error("PostgresBackend:Connect", "error", err)
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(constants.DatabaseMaxOpenConns)
	db.SetMaxIdleConns(constants.DatabaseMaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(constants.DatabaseConnMaxLifetime) * time.Minute)

	if _, err := db.Exec(createDocumentsTable); err != nil {
		return nil, fmt.Errorf("failed to ensure documents table: %w", err)
	}

	logger.Info("PostgresBackend:Ready", "host", cfg.Host, "database", cfg.DBName, "handle", handle)
	return &PostgresBackend{db: db, handle: handle}, nil
}

func (b *PostgresBackend) Load(ctx context.Context) (Document, error) {
	var raw []byte
	query := `SELECT body FROM documents WHERE handle = $1`

	err := b.db.GetContext(ctx, &raw, query, b.handle)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NewAppError(errors.ErrDocumentUnavailable,
				fmt.Sprintf("no document row for handle %s", b.handle), err)
		}
		logger.Error("PostgresBackend:Load", "handle", b.handle, "error", err)
		return nil, errors.NewAppError(errors.ErrDocumentUnavailable, "cannot load document row", err)
	}

	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, errors.NewAppError(errors.ErrDocumentUnavailable, "malformed document row", err)
	}
	return doc, nil
}

func (b *PostgresBackend) Save(ctx context.Context, doc Document) error {
	raw, err := json.Marshal(Normalize(doc))
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "cannot encode document", err)
	}

	query := `
		INSERT INTO documents (handle, body, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (handle) DO UPDATE SET body = EXCLUDED.body, updated_at = NOW()
	`
	if _, err := b.db.ExecContext(ctx, query, b.handle, raw); err != nil {
		logger.Error("PostgresBackend:Save", "handle", b.handle, "error", err)
		return errors.NewAppError(errors.ErrDocumentUnavailable, "cannot save document row", err)
	}
	return nil
}

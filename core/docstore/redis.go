package docstore

import (
	"context"
	"encoding/json"
	"fmt"

	"interview-planner/core/config"
	"interview-planner/core/errors"
	"interview-planner/core/logger"

	"github.com/redis/go-redis/v9"
)

// RedisBackend persists the serialized document under a single key.
type RedisBackend struct {
	client *redis.Client
	key    string
}

func NewRedisBackend(cfg config.RedisConfig, key string) *RedisBackend {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	return &RedisBackend{client: client, key: key}
}

func (b *RedisBackend) Load(ctx context.Context) (Document, error) {
	raw, err := b.client.Get(ctx, b.key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NewAppError(errors.ErrDocumentUnavailable,
				fmt.Sprintf("no document under key %s", b.key), err)
		}
		logger.Error("RedisBackend:Load", "key", b.key, "error", err)
		return nil, errors.NewAppError(errors.ErrDocumentUnavailable, "cannot load document key", err)
	}

	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, errors.NewAppError(errors.ErrDocumentUnavailable, "malformed document key", err)
	}
	return doc, nil
}

func (b *RedisBackend) Save(ctx context.Context, doc Document) error {
	raw, err := json.Marshal(Normalize(doc))
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "cannot encode document", err)
	}

	if err := b.client.Set(ctx, b.key, raw, 0).Err(); err != nil {
		logger.Error("RedisBackend:Save", "key", b.key, "error", err)
		return errors.NewAppError(errors.ErrDocumentUnavailable, "cannot save document key", err)
	}
	return nil
}

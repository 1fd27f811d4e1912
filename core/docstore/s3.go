package docstore

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"

	"interview-planner/core/config"
	"interview-planner/core/errors"
	"interview-planner/core/logger"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// S3Backend persists the document as a single JSON object.
type S3Backend struct {
	client *s3.Client
	bucket string
	key    string
}

func NewS3Backend(cfg config.S3Config, key string) (*S3Backend, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("docstore: s3 backend requires a bucket")
	}
	return &S3Backend{client: NewS3Client(cfg), bucket: cfg.Bucket, key: key}, nil
}

// NewS3Client builds an S3 client from static credentials. Shared with the
// report exporter.
func NewS3Client(cfg config.S3Config) *s3.Client {
	awsCfg := aws.Config{
		Region: cfg.Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID, cfg.SecretAccessKey, ""),
	}

	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			// Custom endpoint (minio and friends) needs path-style addressing.
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})
}

func (b *S3Backend) Load(ctx context.Context) (Document, error) {
	out, err := b.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(b.bucket),
		Key:    aws.String(b.key),
	})
	if err != nil {
		var noKey *types.NoSuchKey
		if stderrors.As(err, &noKey) {
			return nil, errors.NewAppError(errors.ErrDocumentUnavailable,
				fmt.Sprintf("no document object %s/%s", b.bucket, b.key), err)
		}
		logger.Error("S3Backend:Load", "bucket", b.bucket, "key", b.key, "error", err)
		return nil, errors.NewAppError(errors.ErrDocumentUnavailable, "cannot load document object", err)
	}
	defer out.Body.Close()

	raw, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrDocumentUnavailable, "cannot read document object", err)
	}

	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, errors.NewAppError(errors.ErrDocumentUnavailable, "malformed document object", err)
	}
	return doc, nil
}

func (b *S3Backend) Save(ctx context.Context, doc Document) error {
	raw, err := json.Marshal(Normalize(doc))
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "cannot encode document", err)
	}

	_, err = b.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(b.bucket),
		Key:         aws.String(b.key),
		Body:        bytes.NewReader(raw),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		logger.Error("S3Backend:Save", "bucket", b.bucket, "key", b.key, "error", err)
		return errors.NewAppError(errors.ErrDocumentUnavailable, "cannot save document object", err)
	}
	return nil
}

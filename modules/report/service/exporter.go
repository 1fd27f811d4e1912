package service

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"interview-planner/core/config"
	"interview-planner/core/docstore"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gosimple/slug"
)

// Exporter writes a rendered report somewhere durable and returns its
// location for the log.
type Exporter interface {
	Export(ctx context.Context, name string, data []byte) (string, error)
}

// ExportName builds the export object name from the project title.
func ExportName(title, lang string) string {
	return fmt.Sprintf("%s-%s-%s.json", slug.Make(title), time.Now().Format("2006-01-02"), lang)
}

func NewExporter(cfg *config.Config) (Exporter, error) {
	switch cfg.Export.Target {
	case "s3":
		if cfg.S3.Bucket == "" {
			return nil, fmt.Errorf("report: s3 export target requires a bucket")
		}
		return &S3Exporter{
			client: docstore.NewS3Client(cfg.S3),
			bucket: cfg.S3.Bucket,
		}, nil
	case "file":
		return &FileExporter{dir: cfg.Export.Dir}, nil
	default:
		return nil, fmt.Errorf("report: unknown export target %q", cfg.Export.Target)
	}
}

// FileExporter drops exports into a local directory.
type FileExporter struct {
	dir string
}

func (e *FileExporter) Export(ctx context.Context, name string, data []byte) (string, error) {
	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(e.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

// S3Exporter uploads exports to a bucket.
type S3Exporter struct {
	client *s3.Client
	bucket string
}

func (e *S3Exporter) Export(ctx context.Context, name string, data []byte) (string, error) {
	_, err := e.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(e.bucket),
		Key:         aws.String(name),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("s3://%s/%s", e.bucket, name), nil
}

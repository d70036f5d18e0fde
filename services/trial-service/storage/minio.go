package storage

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"regexp"
	"time"

	"github.com/RigelNana/arkclinic/pkg/metrics"
	"github.com/RigelNana/arkclinic/services/trial-service/config"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

var unsafeName = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// ObjectName builds "<namespace>/<unix-nano>-<filename>" with the filename
// reduced to a safe character set.
func ObjectName(namespace, filename string, at time.Time) string {
	name := unsafeName.ReplaceAllString(path.Base(filename), "_")
	if name == "" || name == "." || name == "/" {
		name = "upload"
	}
	return fmt.Sprintf("%s/%d-%s", namespace, at.UnixNano(), name)
}

type MinIOStore struct {
	client *minio.Client
	bucket string
	region string
	now    func() time.Time
}

func NewMinIOStore(cfg config.MinIOConfig) (*MinIOStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}
	return &MinIOStore{client: client, bucket: cfg.BucketName, region: cfg.Region, now: time.Now}, nil
}

func (s *MinIOStore) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if exists {
		return nil
	}
	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{Region: s.region}); err != nil {
		return fmt.Errorf("failed to create bucket: %w", err)
	}
	return nil
}

// Put stores data in a single PutObject with a known length, so the
// object is either fully written or absent.
func (s *MinIOStore) Put(ctx context.Context, namespace, filename, contentType string, data []byte) (string, error) {
	objectName := ObjectName(namespace, filename, s.now())
	_, err := s.client.PutObject(ctx, s.bucket, objectName, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload file to MinIO: %w", err)
	}
	metrics.BlobBytesStored.Add(float64(len(data)))
	return objectName, nil
}

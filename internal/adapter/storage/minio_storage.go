// Package storage keeps uploaded files in an S3-compatible bucket through minio-go.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"

	"gestorpro/internal/config"
	"gestorpro/internal/domain/entities"
	"gestorpro/internal/logging"
	"gestorpro/internal/usecase/interfaces"
)

var ErrStorageNotConfigured = errors.New("object storage not configured")

type objectAPI interface {
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	StatObject(ctx context.Context, bucketName, objectName string, opts minio.StatObjectOptions) (minio.ObjectInfo, error)
	RemoveObject(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error
}

var _ objectAPI = (*minio.Client)(nil)

type MinioStorage struct {
	api       objectAPI
	bucket    string
	publicURL string
	logger    *zap.Logger
}

var _ interfaces.IObjectStorage = (*MinioStorage)(nil)

// NewMinioStorage connects lazily; EnsureBucket is the first network call.
func NewMinioStorage(cfg config.MinioConfig, logger *zap.Logger) (*MinioStorage, error) {
	if cfg.Endpoint == "" {
		return nil, ErrStorageNotConfigured
	}
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey.Value(), ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}
	public := cfg.PublicURL
	if public == "" {
		scheme := "http"
		if cfg.UseSSL {
			scheme = "https"
		}
		public = scheme + "://" + cfg.Endpoint
	}
	return newMinioStorage(client, cfg.Bucket, public, logger), nil
}

func newMinioStorage(api objectAPI, bucket, publicURL string, logger *zap.Logger) *MinioStorage {
	return &MinioStorage{
		api:       api,
		bucket:    bucket,
		publicURL: strings.TrimRight(publicURL, "/"),
		logger:    logging.OrNop(logger).Named("storage"),
	}
}

func (s *MinioStorage) EnsureBucket(ctx context.Context) error {
	exists, err := s.api.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("check bucket %s: %w", s.bucket, err)
	}
	if exists {
		return nil
	}
	if err := s.api.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("create bucket %s: %w", s.bucket, err)
	}
	s.logger.Info("bucket created", zap.String("bucket", s.bucket))
	return nil
}

func (s *MinioStorage) Put(ctx context.Context, path string, upload entities.Upload) (string, error) {
	size := upload.Size
	if size <= 0 {
		size = -1
	}
	contentType := upload.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	_, err := s.api.PutObject(ctx, s.bucket, path, upload.Body, size, minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		s.logger.Error("put failed", zap.String("path", path), zap.Error(err))
		return "", fmt.Errorf("put %s: %w", path, err)
	}
	return s.URL(path), nil
}

func (s *MinioStorage) Delete(ctx context.Context, path string) error {
	if _, err := s.api.StatObject(ctx, s.bucket, path, minio.StatObjectOptions{}); err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return interfaces.ErrObjectNotFound
		}
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if err := s.api.RemoveObject(ctx, s.bucket, path, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("remove %s: %w", path, err)
	}
	return nil
}

// URL is the public download address of path; each segment is escaped.
func (s *MinioStorage) URL(path string) string {
	segments := strings.Split(path, "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}
	return s.publicURL + "/" + s.bucket + "/" + strings.Join(segments, "/")
}

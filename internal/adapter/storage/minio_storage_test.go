package storage

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gestorpro/internal/config"
	"gestorpro/internal/domain/entities"
	"gestorpro/internal/usecase/interfaces"
)

type fakeObjects struct {
	objects map[string]string
	types   map[string]string
	buckets map[string]bool
	putErr  error
}

func newFakeObjects() *fakeObjects {
	return &fakeObjects{objects: map[string]string{}, types: map[string]string{}, buckets: map[string]bool{}}
}

func (f *fakeObjects) PutObject(_ context.Context, bucket, name string, r io.Reader, _ int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	if f.putErr != nil {
		return minio.UploadInfo{}, f.putErr
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return minio.UploadInfo{}, err
	}
	f.objects[bucket+"/"+name] = string(b)
	f.types[bucket+"/"+name] = opts.ContentType
	return minio.UploadInfo{Bucket: bucket, Key: name}, nil
}

func (f *fakeObjects) StatObject(_ context.Context, bucket, name string, _ minio.StatObjectOptions) (minio.ObjectInfo, error) {
	if _, ok := f.objects[bucket+"/"+name]; !ok {
		return minio.ObjectInfo{}, minio.ErrorResponse{Code: "NoSuchKey", StatusCode: 404}
	}
	return minio.ObjectInfo{Key: name}, nil
}

func (f *fakeObjects) RemoveObject(_ context.Context, bucket, name string, _ minio.RemoveObjectOptions) error {
	delete(f.objects, bucket+"/"+name)
	return nil
}

func (f *fakeObjects) BucketExists(_ context.Context, bucket string) (bool, error) {
	return f.buckets[bucket], nil
}

func (f *fakeObjects) MakeBucket(_ context.Context, bucket string, _ minio.MakeBucketOptions) error {
	f.buckets[bucket] = true
	return nil
}

func TestMinioStorage_PutAndDelete(t *testing.T) {
	api := newFakeObjects()
	s := newMinioStorage(api, "gestorpro", "http://localhost:9000/", nil)
	ctx := context.Background()

	url, err := s.Put(ctx, "documents/tenants/t1/1717596202000_contrato firmado.pdf", entities.Upload{
		Name:        "contrato firmado.pdf",
		ContentType: "application/pdf",
		Size:        3,
		Body:        strings.NewReader("pdf"),
	})
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9000/gestorpro/documents/tenants/t1/1717596202000_contrato%20firmado.pdf", url)
	assert.Equal(t, "pdf", api.objects["gestorpro/documents/tenants/t1/1717596202000_contrato firmado.pdf"])
	assert.Equal(t, "application/pdf", api.types["gestorpro/documents/tenants/t1/1717596202000_contrato firmado.pdf"])

	require.NoError(t, s.Delete(ctx, "documents/tenants/t1/1717596202000_contrato firmado.pdf"))
	assert.Empty(t, api.objects)
	assert.ErrorIs(t, s.Delete(ctx, "documents/tenants/t1/1717596202000_contrato firmado.pdf"), interfaces.ErrObjectNotFound)
}

func TestMinioStorage_DefaultContentType(t *testing.T) {
	api := newFakeObjects()
	s := newMinioStorage(api, "b", "http://x", nil)
	_, err := s.Put(context.Background(), "a.bin", entities.Upload{Body: strings.NewReader("1")})
	require.NoError(t, err)
	assert.Equal(t, "application/octet-stream", api.types["b/a.bin"])
}

func TestMinioStorage_PutError(t *testing.T) {
	api := newFakeObjects()
	api.putErr = errors.New("bucket unavailable")
	s := newMinioStorage(api, "b", "http://x", nil)
	_, err := s.Put(context.Background(), "a.bin", entities.Upload{Body: strings.NewReader("1")})
	assert.ErrorContains(t, err, "bucket unavailable")
}

func TestMinioStorage_EnsureBucket(t *testing.T) {
	api := newFakeObjects()
	s := newMinioStorage(api, "gestorpro", "http://x", nil)
	require.NoError(t, s.EnsureBucket(context.Background()))
	assert.True(t, api.buckets["gestorpro"])
	require.NoError(t, s.EnsureBucket(context.Background()))
}

func TestNewMinioStorage(t *testing.T) {
	_, err := NewMinioStorage(config.MinioConfig{}, nil)
	assert.ErrorIs(t, err, ErrStorageNotConfigured)

	s, err := NewMinioStorage(config.MinioConfig{Endpoint: "minio:9000", Bucket: "gestorpro", AccessKey: "a", SecretKey: "b"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "http://minio:9000/gestorpro/x.png", s.URL("x.png"))
}

package storage

import (
	"bytes"
	"context"
	"fmt"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/bryanwahyu/authentiscan/internal/domain/verification"
)

// Store offloads history previews to MinIO so the persisted history carries
// object URLs instead of multi-megabyte data URIs.
type Store struct {
	client     *minio.Client
	bucketName string
	region     string
}

// New buat koneksi MinIO
func New(ctx context.Context, endpoint, region, bucket, accessKey, secretKey string, useSSL bool) (*Store, error) {
	cli, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
		Region: region,
	})
	if err != nil {
		return nil, err
	}

	// pastikan bucket ada
	exists, err := cli.BucketExists(ctx, bucket)
	if err != nil {
		return nil, err
	}
	if !exists {
		if err := cli.MakeBucket(ctx, bucket, minio.MakeBucketOptions{Region: region}); err != nil {
			return nil, err
		}
	}

	return &Store{client: cli, bucketName: bucket, region: region}, nil
}

// PutPreview uploads the decoded preview under previews/<key> and returns
// the object URL recorded in history.
func (s *Store) PutPreview(ctx context.Context, key string, image verification.DataURI) (string, error) {
	data, err := image.Data()
	if err != nil {
		return "", err
	}
	contentType := image.MIMEType()
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	objectKey := "previews/" + key
	_, err = s.client.PutObject(ctx, s.bucketName, objectKey,
		bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType},
	)
	if err != nil {
		return "", err
	}

	// URL publik (jika bucket public), kalau private harus generate presigned URL
	url := fmt.Sprintf("http://%s/%s/%s", s.client.EndpointURL().Host, s.bucketName, objectKey)
	return url, nil
}

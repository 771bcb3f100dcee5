package storage

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/rs/zerolog/log"
)

type MinIOConfig struct {
	Endpoint      string
	AccessKey     string
	SecretKey     string
	Bucket        string
	UseSSL        bool
	PublicBaseURL string // CDN or reverse-proxy base; defaults to the endpoint
}

// MinIOStorage keeps attachment blobs in one public-read bucket.
type MinIOStorage struct {
	client  *minio.Client
	bucket  string
	baseURL string
}

func NewMinIOStorage(ctx context.Context, cfg MinIOConfig) (*MinIOStorage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
		if err := client.SetBucketPolicy(ctx, cfg.Bucket, publicReadPolicy(cfg.Bucket)); err != nil {
			return nil, fmt.Errorf("failed to set bucket policy: %w", err)
		}
		log.Info().Str("bucket", cfg.Bucket).Msg("created attachment bucket")
	}

	return &MinIOStorage{
		client:  client,
		bucket:  cfg.Bucket,
		baseURL: publicBase(cfg, client.EndpointURL()),
	}, nil
}

// Put stores data at path and returns its public URL. Existing objects are overwritten.
func (s *MinIOStorage) Put(ctx context.Context, path string, data []byte, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, s.bucket, path, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", fmt.Errorf("failed to upload to minio: %w", err)
	}
	return s.PublicURL(path), nil
}

func (s *MinIOStorage) PublicURL(path string) string {
	return s.baseURL + "/" + strings.TrimLeft(path, "/")
}

func (s *MinIOStorage) Ping(ctx context.Context) error {
	_, err := s.client.BucketExists(ctx, s.bucket)
	return err
}

func publicBase(cfg MinIOConfig, endpoint *url.URL) string {
	if base := strings.TrimRight(cfg.PublicBaseURL, "/"); base != "" {
		return base
	}
	return fmt.Sprintf("%s://%s/%s", endpoint.Scheme, endpoint.Host, cfg.Bucket)
}

func publicReadPolicy(bucket string) string {
	return fmt.Sprintf(`{"Version":"2012-10-17","Statement":[{"Effect":"Allow","Principal":{"AWS":["*"]},"Action":["s3:GetObject"],"Resource":["arn:aws:s3:::%s/*"]}]}`, bucket)
}

// Package storage puts uploaded media into an S3-compatible bucket and
// hands back the public URL it will be served from.
package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/iliyamo/musician-site/internal/config"
)

// ObjectStore writes one object and returns nothing but an error.
type ObjectStore interface {
	Put(ctx context.Context, bucket, key, contentType string, size int64, body io.Reader) error
}

// S3Store implements ObjectStore on the AWS SDK.  Path-style addressing is
// forced so self-hosted endpoints (MinIO, Supabase storage) work unchanged.
type S3Store struct {
	client *s3.Client
}

// NewS3Store builds a client from cfg.  Credentials are static.
func NewS3Store(cfg config.StorageConfig) *S3Store {
	opts := s3.Options{
		Region:       cfg.Region,
		Credentials:  credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		UsePathStyle: true,
	}
	if cfg.Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.Endpoint)
	}
	return &S3Store{client: s3.New(opts)}
}

func (s *S3Store) Put(ctx context.Context, bucket, key, contentType string, size int64, body io.Reader) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(size),
	})
	if err != nil {
		return fmt.Errorf("put %s/%s: %w", bucket, key, err)
	}
	return nil
}

// PublicURL joins base, bucket and key the way the storage gateway serves
// public objects.
func PublicURL(base, bucket, key string) string {
	return strings.TrimRight(base, "/") + "/" + bucket + "/" + key
}

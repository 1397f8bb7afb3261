package repository

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ObjectStore is the blob store holding product imagery.
type ObjectStore interface {
	// Put writes the object. Existing keys are never overwritten.
	Put(ctx context.Context, key, contentType string, body io.Reader) error
	Remove(ctx context.Context, key string) error
	// PublicURL derives the shopper-facing URL for a stored key.
	PublicURL(key string) string
	// Key recovers the stored key from a URL minted by PublicURL. Reports
	// false for URLs that do not point into this store.
	Key(url string) (string, bool)
}

// imageCacheControl lets browsers keep product images for an hour.
const imageCacheControl = "max-age=3600"

// S3ObjectStore stores image objects in a single bucket.
type S3ObjectStore struct {
	client   *s3.Client
	bucket   string
	endpoint string
}

func NewS3ObjectStore(client *s3.Client, bucket, endpoint string) *S3ObjectStore {
	return &S3ObjectStore{client: client, bucket: bucket, endpoint: endpoint}
}

func (s *S3ObjectStore) Put(ctx context.Context, key, contentType string, body io.Reader) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(s.bucket),
		Key:          aws.String(key),
		Body:         body,
		ContentType:  aws.String(contentType),
		CacheControl: aws.String(imageCacheControl),
		IfNoneMatch:  aws.String("*"),
	})
	if err != nil {
		return fmt.Errorf("s3 PutObject failed: %w", err)
	}
	return nil
}

func (s *S3ObjectStore) Remove(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("s3 DeleteObject failed: %w", err)
	}
	return nil
}

// PublicURL always emits the path-style form, matching the UsePathStyle
// client, so the bucket segment is present for Key to cut on.
func (s *S3ObjectStore) PublicURL(key string) string {
	if s.endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", strings.TrimRight(s.endpoint, "/"), s.bucket, key)
	}
	return fmt.Sprintf("https://s3.amazonaws.com/%s/%s", s.bucket, key)
}

// Key cuts the URL at the configured bucket segment, so every URL PublicURL
// mints round-trips regardless of endpoint.
func (s *S3ObjectStore) Key(url string) (string, bool) {
	delimiter := "/" + s.bucket + "/"
	idx := strings.Index(url, delimiter)
	if idx < 0 {
		return "", false
	}
	return url[idx+len(delimiter):], true
}

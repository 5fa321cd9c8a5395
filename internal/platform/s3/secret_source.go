package s3

import (
	"context"
	"errors"
	"fmt"
	"path"

	"sigs.k8s.io/controller-runtime/pkg/log"
)

// ErrSecretNotFound is returned by SecretSource.Read when the object does not exist.
var ErrSecretNotFound = errors.New("secret object not found")

// SecretSource reads and writes single secret values stored as objects
// named <prefix>/<key> in a bucket.
type SecretSource struct {
	client *Client
	bucket string
	prefix string
}

// NewSecretSource returns a SecretSource on bucket. prefix may be empty.
func NewSecretSource(client *Client, bucket, prefix string) *SecretSource {
	return &SecretSource{client: client, bucket: bucket, prefix: prefix}
}

// OpenSecretSource returns a SecretSource on bucket after checking that the
// bucket exists, so a misconfigured bucket fails before the first read.
func OpenSecretSource(ctx context.Context, client *Client, bucket, prefix string) (*SecretSource, error) {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("bucket %s does not exist", bucket)
	}

	log.FromContext(ctx).V(1).Info("Using bucket for secrets", "bucket", bucket, "prefix", prefix)
	return NewSecretSource(client, bucket, prefix), nil
}

// ObjectKey returns the object key a secret key is stored under.
func (s *SecretSource) ObjectKey(key string) string {
	if s.prefix == "" {
		return key
	}
	return path.Join(s.prefix, key)
}

// Read returns the contents of the object for key.
func (s *SecretSource) Read(ctx context.Context, key string) (string, error) {
	objectKey := s.ObjectKey(key)
	log.FromContext(ctx).V(1).Info("Reading secret object", "bucket", s.bucket, "key", objectKey)

	data, err := s.client.GetObject(ctx, s.bucket, objectKey)
	if err != nil {
		if isNotFoundError(err) {
			return "", fmt.Errorf("%w: s3://%s/%s", ErrSecretNotFound, s.bucket, objectKey)
		}
		return "", err
	}
	return string(data), nil
}

// Write stores value as the object for key.
func (s *SecretSource) Write(ctx context.Context, key, value string) error {
	return s.client.PutObject(ctx, s.bucket, s.ObjectKey(key), []byte(value))
}

package objectstore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/renato0307/mergebench/internal/logging"
	"github.com/renato0307/mergebench/internal/ports"
)

// ErrObjectNotFound is returned when a key does not exist
var ErrObjectNotFound = errors.New("object not found")

// InMemoryObjectStore keeps objects in process memory. It is safe for concurrent use.
type InMemoryObjectStore struct {
	mu    sync.RWMutex
	store map[string][]byte
}

// Verify interface compliance at compile time
var (
	_ ports.ObjectStore = (*InMemoryObjectStore)(nil)
	_ ports.ObjectStore = (*S3ObjectStore)(nil)
)

// NewInMemoryObjectStore constructs an in-memory object store
func NewInMemoryObjectStore() *InMemoryObjectStore {
	return &InMemoryObjectStore{store: make(map[string][]byte)}
}

// PutObject saves a copy of body
func (s *InMemoryObjectStore) PutObject(ctx context.Context, key string, body []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.store[key] = bytes.Clone(body)
	return nil
}

// GetObject returns a copy of the stored object
func (s *InMemoryObjectStore) GetObject(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.store[key]
	if !ok {
		return nil, ErrObjectNotFound
	}
	return bytes.Clone(data), nil
}

// S3Client captures the subset of the AWS SDK client used by S3ObjectStore
type S3Client interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3ObjectStore stores objects in an S3-compatible bucket under a key prefix
type S3ObjectStore struct {
	bucket string
	client S3Client
	prefix string
}

// NewS3ObjectStore creates an object store backed by S3
func NewS3ObjectStore(client S3Client, bucket, prefix string) *S3ObjectStore {
	return &S3ObjectStore{bucket: bucket, client: client, prefix: prefix}
}

// S3Options configures NewS3Client
type S3Options struct {
	Endpoint string // empty means AWS; set for S3-compatible stores such as MinIO
	Region   string
}

// NewS3Client creates an S3 client using credentials from the standard
// AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY and AWS_SESSION_TOKEN variables
func NewS3Client(opts S3Options) *s3.Client {
	return s3.New(s3.Options{
		Credentials: aws.NewCredentialsCache(aws.CredentialsProviderFunc(envCredentials)),
		Region:      opts.Region,
		BaseEndpoint: func() *string {
			if opts.Endpoint == "" {
				return nil
			}
			return aws.String(opts.Endpoint)
		}(),
		UsePathStyle: opts.Endpoint != "",
	})
}

func envCredentials(ctx context.Context) (aws.Credentials, error) {
	id := os.Getenv("AWS_ACCESS_KEY_ID")
	secret := os.Getenv("AWS_SECRET_ACCESS_KEY")
	if id == "" || secret == "" {
		return aws.Credentials{}, fmt.Errorf("AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY must be set")
	}
	return aws.Credentials{
		AccessKeyID:     id,
		SecretAccessKey: secret,
		SessionToken:    os.Getenv("AWS_SESSION_TOKEN"),
		Source:          "environment",
	}, nil
}

func (s *S3ObjectStore) key(key string) string {
	if s.prefix == "" {
		return key
	}
	return path.Join(s.prefix, key)
}

// PutObject uploads body under the prefixed key
func (s *S3ObjectStore) PutObject(ctx context.Context, key string, body []byte) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Body:   bytes.NewReader(body),
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(key)),
	})
	if err != nil {
		return fmt.Errorf("failed to upload s3://%s/%s: %w", s.bucket, s.key(key), err)
	}
	return nil
}

// GetObject downloads the object under the prefixed key
func (s *S3ObjectStore) GetObject(ctx context.Context, key string) ([]byte, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(key)),
	})
	if err != nil {
		var notFound *types.NoSuchKey
		if errors.As(err, &notFound) {
			return nil, ErrObjectNotFound
		}
		return nil, fmt.Errorf("failed to download s3://%s/%s: %w", s.bucket, s.key(key), err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read s3://%s/%s: %w", s.bucket, s.key(key), err)
	}
	return data, nil
}

// PublishFiles uploads each file under its base name
func PublishFiles(ctx context.Context, store ports.ObjectStore, files []string) error {
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", file, err)
		}

		key := filepath.Base(file)
		if err := store.PutObject(ctx, key, data); err != nil {
			return err
		}
		logging.Logger.Info("Published output file", "file", file, "key", key)
	}
	return nil
}

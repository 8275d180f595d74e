// Package s3 implements the storage.ObjectStore interface on top of
// Amazon S3.
package s3

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"

	"github.com/davenall/pageforge/internal/config"
	"github.com/davenall/pageforge/internal/storage"
)

// putObjectAPI is the slice of the S3 client this store uses.
// Narrowing the dependency lets tests substitute a fake client.
type putObjectAPI interface {
	PutObject(ctx context.Context, params *awss3.PutObjectInput, optFns ...func(*awss3.Options)) (*awss3.PutObjectOutput, error)
}

// ObjectStore writes generated documents to an S3 bucket.
type ObjectStore struct {
	client putObjectAPI
	bucket string
	logger *slog.Logger
}

// Ensure ObjectStore implements the storage.ObjectStore interface.
var _ storage.ObjectStore = (*ObjectStore)(nil)

// NewObjectStore creates an S3-backed ObjectStore using the default AWS
// credential chain and the configured region.
func NewObjectStore(ctx context.Context, logger *slog.Logger, cfg config.StorageConfig) (*ObjectStore, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Bucket == "" {
		return nil, errors.New("storage bucket cannot be empty")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	return &ObjectStore{
		client: awss3.NewFromConfig(awsCfg),
		bucket: cfg.Bucket,
		logger: logger.With(slog.String("component", "object_store")),
	}, nil
}

// newWithClient wires an explicit client; used by tests.
func newWithClient(client putObjectAPI, bucket string, logger *slog.Logger) *ObjectStore {
	return &ObjectStore{
		client: client,
		bucket: bucket,
		logger: logger.With(slog.String("component", "object_store")),
	}
}

// Put implements storage.ObjectStore.Put.
func (s *ObjectStore) Put(ctx context.Context, obj storage.Object) error {
	if obj.Key == "" {
		return storage.ErrEmptyKey
	}

	input := &awss3.PutObjectInput{
		Bucket:       aws.String(s.bucket),
		Key:          aws.String(obj.Key),
		Body:         bytes.NewReader(obj.Body),
		ContentType:  aws.String(obj.ContentType),
		CacheControl: aws.String(obj.CacheControl),
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		s.logger.ErrorContext(ctx, "failed to put object",
			slog.String("key", obj.Key),
			slog.String("bucket", s.bucket),
			slog.String("error", err.Error()))
		return mapPutError(err, obj.Key)
	}

	s.logger.DebugContext(ctx, "object stored",
		slog.String("key", obj.Key),
		slog.Int("size_bytes", len(obj.Body)))
	return nil
}

// mapPutError converts S3 API errors into the storage error taxonomy.
func mapPutError(err error, key string) error {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "AccessDenied", "InvalidAccessKeyId", "SignatureDoesNotMatch":
			return fmt.Errorf("%w: writing %s: %v", storage.ErrPermissionDenied, key, err)
		case "NoSuchBucket":
			return fmt.Errorf("%w: writing %s: %v", storage.ErrStoreUnavailable, key, err)
		}
	}
	return fmt.Errorf("%w: writing %s: %v", storage.ErrStoreUnavailable, key, err)
}

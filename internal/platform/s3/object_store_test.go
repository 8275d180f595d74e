package s3

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davenall/pageforge/internal/storage"
)

// fakeS3Client implements putObjectAPI with a function field.
type fakeS3Client struct {
	putObjectFn func(ctx context.Context, params *awss3.PutObjectInput, optFns ...func(*awss3.Options)) (*awss3.PutObjectOutput, error)
}

func (f *fakeS3Client) PutObject(ctx context.Context, params *awss3.PutObjectInput, optFns ...func(*awss3.Options)) (*awss3.PutObjectOutput, error) {
	return f.putObjectFn(ctx, params, optFns...)
}

func TestPutRejectsEmptyKey(t *testing.T) {
	t.Parallel()

	store := newWithClient(&fakeS3Client{}, "bucket", slog.Default())
	err := store.Put(context.Background(), storage.Object{Key: ""})
	assert.ErrorIs(t, err, storage.ErrEmptyKey)
}

func TestPutForwardsObjectMetadata(t *testing.T) {
	t.Parallel()

	var captured *awss3.PutObjectInput
	client := &fakeS3Client{
		putObjectFn: func(ctx context.Context, params *awss3.PutObjectInput, optFns ...func(*awss3.Options)) (*awss3.PutObjectOutput, error) {
			captured = params
			return &awss3.PutObjectOutput{}, nil
		},
	}

	store := newWithClient(client, "pageforge-output", slog.Default())
	err := store.Put(context.Background(), storage.Object{
		Key:          "output/quantum-computing-facts.html",
		Body:         []byte("<html></html>"),
		ContentType:  "text/html",
		CacheControl: "public, max-age=86400",
	})
	require.NoError(t, err)

	require.NotNil(t, captured)
	assert.Equal(t, "pageforge-output", *captured.Bucket)
	assert.Equal(t, "output/quantum-computing-facts.html", *captured.Key)
	assert.Equal(t, "text/html", *captured.ContentType)
	assert.Equal(t, "public, max-age=86400", *captured.CacheControl)

	body, err := io.ReadAll(captured.Body)
	require.NoError(t, err)
	assert.Equal(t, "<html></html>", string(body))
}

func TestPutErrorMapping(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		err         error
		expectedErr error
	}{
		{
			name:        "access denied",
			err:         &smithy.GenericAPIError{Code: "AccessDenied", Message: "no"},
			expectedErr: storage.ErrPermissionDenied,
		},
		{
			name:        "missing bucket",
			err:         &smithy.GenericAPIError{Code: "NoSuchBucket", Message: "gone"},
			expectedErr: storage.ErrStoreUnavailable,
		},
		{
			name:        "arbitrary failure",
			err:         errors.New("connection reset"),
			expectedErr: storage.ErrStoreUnavailable,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			client := &fakeS3Client{
				putObjectFn: func(ctx context.Context, params *awss3.PutObjectInput, optFns ...func(*awss3.Options)) (*awss3.PutObjectOutput, error) {
					return nil, tc.err
				},
			}

			store := newWithClient(client, "bucket", slog.Default())
			err := store.Put(context.Background(), storage.Object{
				Key:  "output/x-facts.html",
				Body: []byte("x"),
			})
			assert.ErrorIs(t, err, tc.expectedErr)
		})
	}
}

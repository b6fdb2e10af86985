package storage_test

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"csv-comparison/core/storage"
	"csv-comparison/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestParseURI(t *testing.T) {
	tests := []struct {
		source     string
		bucket     string
		object     string
		wantParsed bool
	}{
		{"s3://data/in/file.csv", "data", "in/file.csv", true},
		{"s3://data/file.csv", "data", "file.csv", true},
		{"s3://data", "", "", false},
		{"s3:///file.csv", "", "", false},
		{"s3://data/", "", "", false},
		{"/tmp/file.csv", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			bucket, object, ok := storage.ParseURI(tt.source)
			assert.Equal(t, tt.wantParsed, ok)
			assert.Equal(t, tt.bucket, bucket)
			assert.Equal(t, tt.object, object)
		})
	}
}

func TestOpener_Open(t *testing.T) {
	ctx := context.Background()

	t.Run("LocalFile", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "file.csv")
		require.NoError(t, os.WriteFile(path, []byte("A,B\n"), 0o644))

		rc, err := storage.NewOpener(nil).Open(ctx, path)
		require.NoError(t, err)
		defer rc.Close()

		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		assert.Equal(t, "A,B\n", string(data))
	})

	t.Run("Object", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("StatObject", ctx, "data", "in/file.csv", mock.Anything).Return(minio.ObjectInfo{Size: 4}, nil)
		mockClient.On("GetObject", ctx, "data", "in/file.csv", mock.Anything).Return(io.NopCloser(strings.NewReader("A,B\n")), nil)

		rc, err := storage.NewOpener(mockClient).Open(ctx, "s3://data/in/file.csv")
		require.NoError(t, err)
		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		assert.Equal(t, "A,B\n", string(data))
		mockClient.AssertExpectations(t)
	})

	t.Run("MissingObject", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("StatObject", ctx, "data", "gone.csv", mock.Anything).Return(minio.ObjectInfo{}, errors.New("The specified key does not exist."))

		rc, err := storage.NewOpener(mockClient).Open(ctx, "s3://data/gone.csv")
		assert.Nil(t, rc)
		assert.ErrorContains(t, err, "failed to stat s3://data/gone.csv")
		mockClient.AssertNotCalled(t, "GetObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("NotConfigured", func(t *testing.T) {
		_, err := storage.NewOpener(nil).Open(ctx, "s3://data/file.csv")
		assert.ErrorContains(t, err, "not configured")
	})

	t.Run("Malformed", func(t *testing.T) {
		_, err := storage.NewOpener(new(mocks.Client)).Open(ctx, "s3://data")
		assert.ErrorContains(t, err, "invalid object source")
	})
}

func TestUpload(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "report.csv")
	require.NoError(t, os.WriteFile(path, []byte("report"), 0o644))

	t.Run("CreatesBucket", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", ctx, "reports").Return(false, nil)
		mockClient.On("MakeBucket", ctx, "reports", mock.Anything).Return(nil)
		mockClient.On("PutObject", ctx, "reports", "run/report.csv", mock.Anything, int64(6), mock.MatchedBy(func(o minio.PutObjectOptions) bool {
			return o.ContentType == "text/csv"
		})).Return(minio.UploadInfo{}, nil)

		err := storage.Upload(ctx, mockClient, "reports", "run/report.csv", path, "text/csv")
		assert.NoError(t, err)
		mockClient.AssertExpectations(t)
	})

	t.Run("PutFails", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", ctx, "reports").Return(true, nil)
		mockClient.On("PutObject", ctx, "reports", "report.csv", mock.Anything, int64(6), mock.Anything).Return(minio.UploadInfo{}, errors.New("denied"))

		err := storage.Upload(ctx, mockClient, "reports", "report.csv", path, "text/csv")
		assert.ErrorContains(t, err, "denied")
		mockClient.AssertNotCalled(t, "MakeBucket", mock.Anything, mock.Anything, mock.Anything)
	})
}

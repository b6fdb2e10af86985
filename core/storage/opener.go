package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/minio/minio-go/v7"
)

// Scheme prefixes sources stored in a bucket, as in s3://bucket/path/to/file.csv.
const Scheme = "s3://"

// ParseURI splits an s3:// source into bucket and object name.
// ok is false for anything that is not a well formed object URI.
func ParseURI(source string) (bucket, object string, ok bool) {
	rest, found := strings.CutPrefix(source, Scheme)
	if !found {
		return "", "", false
	}
	bucket, object, found = strings.Cut(rest, "/")
	if !found || bucket == "" || object == "" {
		return "", "", false
	}
	return bucket, object, true
}

// Opener opens comparison sources from object storage or the local filesystem.
type Opener struct {
	client Client
}

// NewOpener returns an Opener that reads s3:// sources through client.
// A nil client restricts the opener to local files.
func NewOpener(client Client) *Opener {
	return &Opener{client: client}
}

// Open streams the source. Object sources are verified with a stat call first so
// that a missing object fails here instead of on the first read.
func (o *Opener) Open(ctx context.Context, source string) (io.ReadCloser, error) {
	if !strings.HasPrefix(source, Scheme) {
		return os.Open(source)
	}

	bucket, object, ok := ParseURI(source)
	if !ok {
		return nil, fmt.Errorf("invalid object source %q", source)
	}
	if o.client == nil {
		return nil, fmt.Errorf("object storage is not configured for %s", source)
	}

	if _, err := o.client.StatObject(ctx, bucket, object, minio.StatObjectOptions{}); err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", source, err)
	}
	rc, err := o.client.GetObject(ctx, bucket, object, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", source, err)
	}
	return rc, nil
}

// Upload stores the local file at path as object in bucket, creating the bucket if needed.
func Upload(ctx context.Context, client Client, bucket, object, path, contentType string) error {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket %s: %w", bucket, err)
		}
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return err
	}

	if _, err := client.PutObject(ctx, bucket, object, f, info.Size(), minio.PutObjectOptions{ContentType: contentType}); err != nil {
		return fmt.Errorf("failed to upload %s: %w", object, err)
	}
	return nil
}

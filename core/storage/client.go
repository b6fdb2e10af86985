package storage

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Client is the subset of the MinIO API used to read comparison sources and
// publish reports.
type Client interface {
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	// GetObject returns a reader over the object body. Errors such as a missing
	// key surface on the first read, so callers stat first.
	GetObject(ctx context.Context, bucketName, objectName string, opts minio.GetObjectOptions) (io.ReadCloser, error)
	StatObject(ctx context.Context, bucketName, objectName string, opts minio.StatObjectOptions) (minio.ObjectInfo, error)
}

const defaultTimeout = 30 * time.Second

// NewClient connects to the endpoint in cfg. An https:// endpoint enables TLS
// even when UseSSL is false.
func NewClient(cfg Config) (Client, error) {
	host, secure := splitEndpoint(cfg.Endpoint)
	if host == "" {
		return nil, fmt.Errorf("storage endpoint is empty")
	}

	timeout := defaultTimeout
	if cfg.TimeoutSeconds > 0 {
		timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}

	mc, err := minio.New(host, &minio.Options{
		Creds:     credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure:    cfg.UseSSL || secure,
		Region:    cfg.Region,
		Transport: newTransport(timeout),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}
	// No round trip happens here; the first request dials.
	return &minioClient{Client: mc}, nil
}

// splitEndpoint strips the scheme MinIO does not accept and reports whether it was https.
func splitEndpoint(endpoint string) (host string, secure bool) {
	endpoint = strings.TrimSpace(endpoint)
	if rest, ok := strings.CutPrefix(endpoint, "https://"); ok {
		return strings.TrimSuffix(rest, "/"), true
	}
	return strings.TrimSuffix(strings.TrimPrefix(endpoint, "http://"), "/"), false
}

// newTransport bounds dialing, the TLS handshake and the wait for response
// headers. Body streaming is bounded by the request context only, so large
// sources are not cut off mid-read.
func newTransport(timeout time.Duration) *http.Transport {
	return &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeout,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeout,
		ExpectContinueTimeout: time.Second,
		ResponseHeaderTimeout: timeout,
	}
}

type minioClient struct {
	*minio.Client
}

// GetObject narrows *minio.Object to io.ReadCloser so the interface can be mocked.
func (c *minioClient) GetObject(ctx context.Context, bucketName, objectName string, opts minio.GetObjectOptions) (io.ReadCloser, error) {
	return c.Client.GetObject(ctx, bucketName, objectName, opts)
}

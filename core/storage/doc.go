// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client so that comparison sources can be streamed from a
// bucket and written reports can be uploaded to one. Both AWS S3 and self-hosted
// MinIO instances are supported.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (as seen in core/storage/mocks).
//
// # Sources
//
// Opener implements the comparison engine's source opener. Sources written as
// s3://bucket/path/file.csv are streamed with GetObject; anything else is opened
// as a local file.
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	cmp, err := compare.NewComparer(def, compare.WithOpener(storage.NewOpener(client)))
//	err = storage.Upload(ctx, client, "reports", "run/ComparisonResults.csv", path, "text/csv")
package storage

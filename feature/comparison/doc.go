// Package comparison exposes file comparisons over HTTP.
//
// A POST to /comparisons runs one comparison between two sources, local paths
// or s3:// objects, under the definition carried in the request body. When a
// history store is configured the run is recorded and can be read back through
// GET /comparisons and GET /comparisons/:id.
package comparison

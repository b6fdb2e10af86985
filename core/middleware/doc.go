// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - auth: rejects requests whose X-API-Key header does not match the
//     configured key. An empty key leaves the API open.
//   - rayid: tags every request with a ray id (the incoming X-Ray-ID header or
//     a new UUID), stores it in the Fiber locals and echoes it on the response
//     so that log lines from one comparison request can be correlated.
//
// Both are registered globally in cmd/start.go; rayid first, then the request
// logger, then auth in front of the feature routes.
package middleware

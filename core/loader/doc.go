// Package loader wires HTTP features into the Fiber app.
//
// A feature bundles a service with the routes that expose it and implements
// Feature. cmd/start.go registers every feature with a Manager, and
// Manager.LoadAll mounts the enabled ones in registration order, stopping at
// the first error. A disabled feature (for example comparison history
// without a database) is skipped silently.
package loader

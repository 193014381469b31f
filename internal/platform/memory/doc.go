// Package memory provides the process-local implementation of the
// store.Repository contract: a mutex-guarded ordered slice per resource type,
// seeded at start-up and never persisted.
package memory

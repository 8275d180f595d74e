// Package storage defines the boundary between the application core and
// the external object store that published pages are written to.
package storage

import "context"

// Object is one document to persist, together with the HTTP metadata the
// store should serve it with.
type Object struct {
	Key          string
	Body         []byte
	ContentType  string
	CacheControl string
}

// ObjectStore defines the interface for persisting generated documents.
type ObjectStore interface {
	// Put writes the object at its key, overwriting any previous
	// version. Implementations map provider failures onto the sentinel
	// errors in errors.go.
	Put(ctx context.Context, obj Object) error
}

// Package store abstracts the document database behind two generic
// operations used by every handler: create one document, read documents by
// equality filter.
package store

import (
	"context"
	"errors"
	"fmt"
)

// ErrUnavailable is returned by every operation when no live database
// connection exists. The adapter fails fast; there is no retry or
// reconnection logic.
var ErrUnavailable = errors.New("document store unavailable")

// WriteError wraps an insertion failure reported by the underlying store.
type WriteError struct {
	Collection string
	Err        error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write to %q failed: %v", e.Collection, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// Store is the document store adapter shared by all handlers. Implementations
// validate documents against the schema registry before insert. Reads return
// documents in store-native order; an empty result is not an error.
type Store interface {
	// CreateDocument validates doc against the registered shape of the
	// collection's entity kind, inserts it, and returns the store-generated
	// identifier.
	CreateDocument(ctx context.Context, collection string, doc map[string]interface{}) (string, error)
	// GetDocuments returns at most limit documents matching the equality
	// filter (empty filter matches all). limit <= 0 means no limit.
	GetDocuments(ctx context.Context, collection string, filter map[string]interface{}, limit int64) ([]map[string]interface{}, error)

	// Probe helpers used by the status endpoint.
	Ping(ctx context.Context) error
	Collections(ctx context.Context) ([]string, error)
	Name() string
}

// Unavailable returns a Store whose operations all fail fast with
// ErrUnavailable. Used when DATABASE_URL is unset or the connection failed.
func Unavailable() Store { return unavailable{} }

type unavailable struct{}

func (unavailable) CreateDocument(ctx context.Context, collection string, doc map[string]interface{}) (string, error) {
	return "", ErrUnavailable
}

func (unavailable) GetDocuments(ctx context.Context, collection string, filter map[string]interface{}, limit int64) ([]map[string]interface{}, error) {
	return nil, ErrUnavailable
}

func (unavailable) Ping(ctx context.Context) error { return ErrUnavailable }

func (unavailable) Collections(ctx context.Context) ([]string, error) {
	return nil, ErrUnavailable
}

func (unavailable) Name() string { return "" }

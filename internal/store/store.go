// Package store wraps the hosted document database and object storage
// behind narrow interfaces so repositories stay independent of the
// Firebase SDKs and can be exercised with fakes in tests.
package store

import (
	"context"
	"io"
	"time"
)

// Document is one decoded row of a collection: the store-assigned ID plus
// the raw field map. Typed decoding happens in the owning domain package.
type Document struct {
	ID     string
	Fields map[string]interface{}
}

// serverTimestamp is the sentinel type behind ServerTimestamp.
type serverTimestamp struct{}

// ServerTimestamp marks a field whose value is assigned by the store at
// write time. Implementations translate it to their native sentinel.
var ServerTimestamp = serverTimestamp{}

// DocumentStore is the document database surface the app uses. Two
// collections exist: "projects" and "contacts".
type DocumentStore interface {
	// ListAll reads every document of a collection.
	ListAll(ctx context.Context, collection string) ([]Document, error)
	// Create appends a new document and returns its store-assigned ID.
	Create(ctx context.Context, collection string, fields map[string]interface{}) (string, error)
	// Overwrite replaces the full document (not a patch).
	Overwrite(ctx context.Context, collection, id string, fields map[string]interface{}) error
	// PatchFields updates only the given fields of an existing document.
	PatchFields(ctx context.Context, collection, id string, fields map[string]interface{}) error
	// Delete removes one document.
	Delete(ctx context.Context, collection, id string) error
}

// ObjectStore is the binary blob surface: upload bytes under a key and get
// back a durable download URL.
type ObjectStore interface {
	Upload(ctx context.Context, key, contentType string, r io.Reader) (string, error)
}

// AsString reads a string field, returning "" when absent or mistyped.
func AsString(fields map[string]interface{}, key string) string {
	if v, ok := fields[key].(string); ok {
		return v
	}
	return ""
}

// AsStringSlice reads a list-of-strings field. Non-string elements are
// skipped rather than failing the whole document.
func AsStringSlice(fields map[string]interface{}, key string) []string {
	raw, ok := fields[key].([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// AsTime reads a timestamp field, returning the zero time when absent.
func AsTime(fields map[string]interface{}, key string) time.Time {
	if v, ok := fields[key].(time.Time); ok {
		return v
	}
	return time.Time{}
}

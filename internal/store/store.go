/*
Package store exposes the document store the service persists into.

Collections are flat namespaces of JSON documents keyed by opaque string
ids. Sub-collections are addressed by path (see Sub). The store offers no
multi-document atomicity: every workflow in this service is a sequence of
independent Get/Put/Delete calls, and the consistency rules in the service
layer are written against exactly that model.
*/
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNotFound is returned by Get when no document exists under the id.
var ErrNotFound = errors.New("document_not_found")

// Document pairs a document id with its raw JSON payload.
type Document struct {
	ID   string
	Data []byte
}

// Filter is an equality predicate on a top-level JSON string field.
type Filter struct {
	Field  string
	Equals string
}

type Store interface {
	Get(ctx context.Context, collection, id string) ([]byte, error)
	Put(ctx context.Context, collection, id string, data []byte) error
	Delete(ctx context.Context, collection, id string) error
	Query(ctx context.Context, collection string, filter *Filter) ([]Document, error)
}

// Transactor is an optional capability. A backend that can run a function
// atomically may implement it; workflow code does not require it, so a
// future backend can tighten consistency without changing callers.
type Transactor interface {
	Transact(ctx context.Context, fn func(Store) error) error
}

// Sub returns the path of a sub-collection nested under one document,
// e.g. Sub("properties", id, "joinRequests").
func Sub(collection, id, sub string) string {
	return fmt.Sprintf("%s/%s/%s", collection, id, sub)
}

// matches applies an equality filter to a raw JSON document. A nil filter
// matches everything. Only string fields are comparable; anything else is a
// non-match.
func matches(data []byte, filter *Filter) bool {
	if filter == nil {
		return true
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return false
	}
	v, ok := doc[filter.Field].(string)
	return ok && v == filter.Equals
}

package db

import "errors"

// Sentinel errors for backend operations.
var (
	ErrKeyNotFound        = errors.New("db: document not found")
	ErrKeyExists          = errors.New("db: document already exists")
	ErrCollectionNotFound = errors.New("db: collection not found")
	ErrDatabaseNotFound   = errors.New("db: database not found")
)

// Op constants map to ArangoDB HTTP API endpoints for error context.
const (
	OpInsert = "POST /_api/document"
	OpRead   = "GET /_api/document"
	OpUpdate = "PATCH /_api/document"
	OpRemove = "DELETE /_api/document"
	OpExists = "HEAD /_api/document"
	OpQuery  = "POST /_api/cursor"
	OpCount  = "GET /_api/collection/count"
	OpPing   = "GET /_api/version"
)

// Error wraps an underlying error with the operation name for diagnostics.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string { return e.Op + ": " + e.Err.Error() }
func (e *Error) Unwrap() error { return e.Err }

// Package domain holds the document store domain model shared across layers.
package domain

import "errors"

var (
	// ErrDocumentNotFound signals a missing document.
	ErrDocumentNotFound = errors.New("document not found")
	// ErrDocumentExists signals a duplicate document identifier.
	ErrDocumentExists = errors.New("document already exists")
	// ErrInvalidDocument signals a document that failed validation.
	ErrInvalidDocument = errors.New("invalid document")
	// ErrInvalidFilter signals a filter that failed validation.
	ErrInvalidFilter = errors.New("invalid filter")
	// ErrCollectionNotFound signals a missing collection.
	ErrCollectionNotFound = errors.New("collection not found")
)

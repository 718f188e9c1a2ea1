// Package document defines the document aggregate.
package document

import (
	"fmt"
	"regexp"
)

// ArangoDB document key rules: see https://docs.arangodb.com/stable/concepts/data-structure/documents/
var keyRegex = regexp.MustCompile(`^[a-zA-Z0-9_\-:.@()+,=;$!*'%]+$`)

const (
	// MaxIDLength is the maximum document identifier length (ArangoDB _key limit).
	MaxIDLength = 254
	// MaxContentSize is the maximum document content size in bytes.
	MaxContentSize = 1 << 20 // 1MB
)

// Document is a content-bearing record with open key/value metadata
// (immutable value object).
type Document struct {
	id      string
	content string
	meta    map[string]any
}

// New validates and creates a Document.
// ID must satisfy the ArangoDB document key rules; content must be non-empty.
// Metadata keys must be non-empty; values are whatever the backend can store.
func New(id, content string, meta map[string]any) (Document, error) {
	if id == "" {
		return Document{}, fmt.Errorf("document ID is required")
	}
	if len(id) > MaxIDLength {
		return Document{}, fmt.Errorf("document ID too long (max %d)", MaxIDLength)
	}
	if !keyRegex.MatchString(id) {
		return Document{}, fmt.Errorf("document ID %q contains characters not allowed in a document key", id)
	}
	if content == "" {
		return Document{}, fmt.Errorf("content is required")
	}
	if len(content) > MaxContentSize {
		return Document{}, fmt.Errorf("content too large (max %d bytes)", MaxContentSize)
	}
	for k := range meta {
		if k == "" {
			return Document{}, fmt.Errorf("metadata key must be non-empty")
		}
	}

	return Document{
		id:      id,
		content: content,
		meta:    cloneMeta(meta),
	}, nil
}

// Reconstruct creates a Document without validation (storage hydration).
func Reconstruct(id, content string, meta map[string]any) Document {
	return Document{id: id, content: content, meta: meta}
}

// ID returns the document identifier.
func (d *Document) ID() string { return d.id }

// Content returns the document text content.
func (d *Document) Content() string { return d.content }

// Meta returns the metadata mapping.
func (d *Document) Meta() map[string]any { return d.meta }

func cloneMeta(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	c := make(map[string]any, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}

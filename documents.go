package haystack

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/skitsanos/arangodb-haystack/internal/db"
	domdoc "github.com/skitsanos/arangodb-haystack/internal/domain/document"
	"github.com/skitsanos/arangodb-haystack/internal/domain/filter"
)

// DeleteOption customizes a Delete call.
type DeleteOption func(*deleteOptions)

type deleteOptions struct {
	ignoreMissing bool
}

// IgnoreMissing controls whether deleting an absent document is an error.
// Deletes ignore missing documents by default; pass IgnoreMissing(false) to
// get ErrDocumentNotFound instead.
func IgnoreMissing(ignore bool) DeleteOption {
	return func(o *deleteOptions) {
		o.ignoreMissing = ignore
	}
}

// Write stores documents and returns the number written. A document with an
// empty ID gets a generated UUID. Writing an ID that already exists returns
// ErrDocumentExists; documents written before the duplicate stay written and
// are counted.
func (c *Client) Write(ctx context.Context, docs []Document) (int, error) {
	internal, err := toInternalDocuments(docs, true)
	if err != nil {
		return 0, err
	}
	return c.service.Write(ctx, internal)
}

// Get retrieves a document by ID. Returns ErrDocumentNotFound when absent.
func (c *Client) Get(ctx context.Context, id string) (Document, error) {
	doc, err := c.service.Get(ctx, id)
	if err != nil {
		return Document{}, err
	}
	return fromInternalDocument(doc), nil
}

// Update overwrites documents by ID and returns the number actually written.
// Documents whose ID is not in the collection are skipped, not errors.
func (c *Client) Update(ctx context.Context, docs []Document) (int, error) {
	for i := range docs {
		if docs[i].ID == "" {
			return 0, fmt.Errorf("document %d: ID is required for update: %w", i, ErrInvalidDocument)
		}
	}
	internal, err := toInternalDocuments(docs, false)
	if err != nil {
		return 0, err
	}
	return c.service.Update(ctx, internal)
}

// Delete removes documents by ID. Missing documents are ignored unless
// IgnoreMissing(false) is given.
func (c *Client) Delete(ctx context.Context, ids []string, opts ...DeleteOption) error {
	o := deleteOptions{ignoreMissing: true}
	for _, opt := range opts {
		opt(&o)
	}
	return c.service.Delete(ctx, ids, o.ignoreMissing)
}

// Filter returns the documents whose metadata equals every given key/value
// pair. A nil or empty map returns all documents.
func (c *Client) Filter(ctx context.Context, filters map[string]any) ([]Document, error) {
	f, err := filter.New(filters)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFilter, err)
	}

	docs, err := c.service.Filter(ctx, f)
	if err != nil {
		return nil, err
	}
	return fromInternalDocuments(docs), nil
}

// List returns a page of documents ordered by ID. Pass the previous page's
// NextCursor to continue; limit <= 0 uses the default page size.
func (c *Client) List(ctx context.Context, cursor string, limit int) (ListResult, error) {
	docs, nextCursor, err := c.service.List(ctx, cursor, limit)
	if err != nil {
		return ListResult{}, err
	}
	return ListResult{
		Documents:  fromInternalDocuments(docs),
		NextCursor: nextCursor,
	}, nil
}

// Count returns the number of documents in the collection.
func (c *Client) Count(ctx context.Context) (int, error) {
	return c.service.Count(ctx)
}

func toInternalDocuments(docs []Document, generateIDs bool) ([]domdoc.Document, error) {
	out := make([]domdoc.Document, len(docs))
	for i, d := range docs {
		id := d.ID
		if id == "" && generateIDs {
			id = uuid.NewString()
		}
		doc, err := domdoc.New(id, d.Content, d.Meta)
		if err != nil {
			return nil, fmt.Errorf("document %d: %w: %w", i, ErrInvalidDocument, err)
		}
		out[i] = doc
	}
	return out, nil
}

func fromInternalDocument(doc domdoc.Document) Document {
	return Document{ID: doc.ID(), Content: doc.Content(), Meta: doc.Meta()}
}

func fromInternalDocuments(docs []domdoc.Document) []Document {
	out := make([]Document, len(docs))
	for i := range docs {
		out[i] = fromInternalDocument(docs[i])
	}
	return out
}

// mapInitError translates store bootstrap failures to public sentinels.
func mapInitError(err error) error {
	switch {
	case errors.Is(err, db.ErrCollectionNotFound):
		return fmt.Errorf("%w: %w", ErrCollectionNotFound, err)
	case errors.Is(err, db.ErrDatabaseNotFound):
		return fmt.Errorf("database not found: %w", err)
	default:
		return fmt.Errorf("initialize store: %w", err)
	}
}

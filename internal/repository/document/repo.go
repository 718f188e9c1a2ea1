// Package document persists domain documents in the backing collection.
package document

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/skitsanos/arangodb-haystack/internal/db"
	"github.com/skitsanos/arangodb-haystack/internal/domain"
	domdoc "github.com/skitsanos/arangodb-haystack/internal/domain/document"
	"github.com/skitsanos/arangodb-haystack/internal/domain/filter"
)

// store is the consumer interface for documents (ISP).
type store interface {
	Insert(ctx context.Context, records []db.Record) ([]string, error)
	Read(ctx context.Context, key string) (db.Record, error)
	Update(ctx context.Context, records []db.Record) (int, error)
	Remove(ctx context.Context, keys []string, ignoreMissing bool) error
	Count(ctx context.Context) (int64, error)
	Query(ctx context.Context, query string, bindVars map[string]any) ([]db.Record, error)
}

// Repo implements usecase/document.Repository over one collection.
type Repo struct {
	store      store
	collection string
}

// New creates a document repository bound to a collection.
func New(s store, collection string) *Repo {
	return &Repo{store: s, collection: collection}
}

// InsertMany writes documents, returning the number written.
// A duplicate identifier surfaces domain.ErrDocumentExists; documents written
// before the duplicate stay written and are counted.
func (r *Repo) InsertMany(ctx context.Context, docs []domdoc.Document) (int, error) {
	records := make([]db.Record, len(docs))
	for i := range docs {
		records[i] = buildRecord(&docs[i])
	}

	keys, err := r.store.Insert(ctx, records)
	if err != nil {
		if errors.Is(err, db.ErrKeyExists) {
			return len(keys), fmt.Errorf("%w: %w", domain.ErrDocumentExists, err)
		}
		return len(keys), fmt.Errorf("insert documents: %w", err)
	}
	return len(keys), nil
}

// Get returns a document by ID.
func (r *Repo) Get(ctx context.Context, id string) (domdoc.Document, error) {
	rec, err := r.store.Read(ctx, id)
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return domdoc.Document{}, domain.ErrDocumentNotFound
		}
		return domdoc.Document{}, fmt.Errorf("read %s: %w", id, err)
	}
	return parseRecord(rec), nil
}

// UpdateMany patches documents by ID, returning the number actually written.
// Documents absent from the collection are skipped, matching the store
// contract of reporting only what was written.
func (r *Repo) UpdateMany(ctx context.Context, docs []domdoc.Document) (int, error) {
	records := make([]db.Record, len(docs))
	for i := range docs {
		records[i] = buildRecord(&docs[i])
	}

	updated, err := r.store.Update(ctx, records)
	if err != nil {
		return updated, fmt.Errorf("update documents: %w", err)
	}
	return updated, nil
}

// RemoveMany deletes documents by ID. With ignoreMissing false, a missing ID
// surfaces domain.ErrDocumentNotFound.
func (r *Repo) RemoveMany(ctx context.Context, ids []string, ignoreMissing bool) error {
	if err := r.store.Remove(ctx, ids, ignoreMissing); err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return domain.ErrDocumentNotFound
		}
		return fmt.Errorf("remove documents: %w", err)
	}
	return nil
}

// Find returns the documents whose metadata matches every filter condition.
// An empty filter returns the whole collection.
func (r *Repo) Find(ctx context.Context, f filter.Filter) ([]domdoc.Document, error) {
	query, bindVars := db.FilterQuery(r.collection, f.Equalities())

	recs, err := r.store.Query(ctx, query, bindVars)
	if err != nil {
		return nil, fmt.Errorf("filter documents: %w", err)
	}
	return parseRecords(recs), nil
}

// List returns documents with offset-cursor pagination, ordered by ID.
func (r *Repo) List(ctx context.Context, cursor string, limit int) ([]domdoc.Document, string, error) {
	offset := 0
	if cursor != "" {
		parsed, err := strconv.Atoi(cursor)
		if err != nil || parsed < 0 {
			return nil, "", fmt.Errorf("invalid cursor %q: %w", cursor, domain.ErrInvalidFilter)
		}
		offset = parsed
	}

	// Fetch one extra record to learn whether a next page exists.
	query, bindVars := db.ListQuery(r.collection, offset, limit+1)
	recs, err := r.store.Query(ctx, query, bindVars)
	if err != nil {
		return nil, "", fmt.Errorf("list documents: %w", err)
	}

	var nextCursor string
	if len(recs) > limit {
		recs = recs[:limit]
		nextCursor = strconv.Itoa(offset + limit)
	}
	return parseRecords(recs), nextCursor, nil
}

// Count returns the number of documents in the collection.
func (r *Repo) Count(ctx context.Context) (int, error) {
	n, err := r.store.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count documents: %w", err)
	}
	return int(n), nil
}

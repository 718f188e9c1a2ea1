package arango

import (
	"context"

	driver "github.com/arangodb/go-driver"

	"github.com/skitsanos/arangodb-haystack/internal/db"
)

// Insert creates documents in one bulk call, returning the keys of those
// created. The first per-document failure stops the scan; keys created before
// it are still reported so callers can count partial writes.
func (s *Store) Insert(ctx context.Context, records []db.Record) ([]string, error) {
	if len(records) == 0 {
		return nil, nil
	}

	metas, errs, err := s.collection.CreateDocuments(ctx, records)
	if err != nil {
		return nil, &db.Error{Op: db.OpInsert, Err: err}
	}

	keys := make([]string, 0, len(records))
	for i := range records {
		if e := errs[i]; e != nil {
			return keys, &db.Error{Op: db.OpInsert, Err: mapDriverError(e)}
		}
		keys = append(keys, metas[i].Key)
	}
	return keys, nil
}

// Read returns one document by key.
func (s *Store) Read(ctx context.Context, key string) (db.Record, error) {
	var rec db.Record
	if _, err := s.collection.ReadDocument(ctx, key, &rec); err != nil {
		return db.Record{}, &db.Error{Op: db.OpRead, Err: mapDriverError(err)}
	}
	return rec, nil
}

// Update patches documents by key in one bulk call (ArangoDB PATCH merges
// objects, so metadata entries are merged rather than replaced). Returns the
// number of documents actually written; keys missing from the collection are
// skipped. Any other per-document failure fails the call, still reporting the
// count written before it.
func (s *Store) Update(ctx context.Context, records []db.Record) (int, error) {
	if len(records) == 0 {
		return 0, nil
	}

	keys := make([]string, len(records))
	for i := range records {
		keys[i] = records[i].Key
	}

	_, errs, err := s.collection.UpdateDocuments(ctx, keys, records)
	if err != nil {
		return 0, &db.Error{Op: db.OpUpdate, Err: err}
	}

	updated := 0
	for _, e := range errs {
		switch {
		case e == nil:
			updated++
		case driver.IsNotFound(e):
			// skipped; the contract counts only documents written
		default:
			return updated, &db.Error{Op: db.OpUpdate, Err: e}
		}
	}
	return updated, nil
}

// Remove deletes documents by key in one bulk call.
func (s *Store) Remove(ctx context.Context, keys []string, ignoreMissing bool) error {
	if len(keys) == 0 {
		return nil
	}

	_, errs, err := s.collection.RemoveDocuments(ctx, keys)
	if err != nil {
		return &db.Error{Op: db.OpRemove, Err: err}
	}

	for _, e := range errs {
		if e == nil {
			continue
		}
		if driver.IsNotFound(e) && ignoreMissing {
			continue
		}
		return &db.Error{Op: db.OpRemove, Err: mapDriverError(e)}
	}
	return nil
}

// Exists reports whether a document with the given key exists.
func (s *Store) Exists(ctx context.Context, key string) (bool, error) {
	exists, err := s.collection.DocumentExists(ctx, key)
	if err != nil {
		return false, &db.Error{Op: db.OpExists, Err: err}
	}
	return exists, nil
}

// Count returns the number of documents in the collection.
func (s *Store) Count(ctx context.Context) (int64, error) {
	n, err := s.collection.Count(ctx)
	if err != nil {
		return 0, &db.Error{Op: db.OpCount, Err: err}
	}
	return n, nil
}

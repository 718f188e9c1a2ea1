package document

import (
	"context"
	"testing"

	"github.com/skitsanos/arangodb-haystack/internal/db"
	domdoc "github.com/skitsanos/arangodb-haystack/internal/domain/document"
)

// mockStore implements the consumer interface for tests.
type mockStore struct {
	insertFn func(ctx context.Context, records []db.Record) ([]string, error)
	readFn   func(ctx context.Context, key string) (db.Record, error)
	updateFn func(ctx context.Context, records []db.Record) (int, error)
	removeFn func(ctx context.Context, keys []string, ignoreMissing bool) error
	countFn  func(ctx context.Context) (int64, error)
	queryFn  func(ctx context.Context, query string, bindVars map[string]any) ([]db.Record, error)
}

func (m *mockStore) Insert(ctx context.Context, records []db.Record) ([]string, error) {
	if m.insertFn != nil {
		return m.insertFn(ctx, records)
	}
	keys := make([]string, len(records))
	for i, r := range records {
		keys[i] = r.Key
	}
	return keys, nil
}

func (m *mockStore) Read(ctx context.Context, key string) (db.Record, error) {
	if m.readFn != nil {
		return m.readFn(ctx, key)
	}
	return db.Record{}, nil
}

func (m *mockStore) Update(ctx context.Context, records []db.Record) (int, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, records)
	}
	return len(records), nil
}

func (m *mockStore) Remove(ctx context.Context, keys []string, ignoreMissing bool) error {
	if m.removeFn != nil {
		return m.removeFn(ctx, keys, ignoreMissing)
	}
	return nil
}

func (m *mockStore) Count(ctx context.Context) (int64, error) {
	if m.countFn != nil {
		return m.countFn(ctx)
	}
	return 0, nil
}

func (m *mockStore) Query(ctx context.Context, query string, bindVars map[string]any) ([]db.Record, error) {
	if m.queryFn != nil {
		return m.queryFn(ctx, query, bindVars)
	}
	return nil, nil
}

func newTestRepo(t *testing.T) (*Repo, *mockStore) {
	t.Helper()
	ms := &mockStore{}
	repo := New(ms, "documents")
	return repo, ms
}

func testDocument(t *testing.T, id string) domdoc.Document {
	t.Helper()
	doc, err := domdoc.New(id, "hello world", map[string]any{"language": "go"})
	if err != nil {
		t.Fatalf("unexpected error building test document: %v", err)
	}
	return doc
}

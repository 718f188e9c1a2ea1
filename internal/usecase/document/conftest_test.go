package document

import (
	"context"
	"testing"

	domdoc "github.com/skitsanos/arangodb-haystack/internal/domain/document"
	"github.com/skitsanos/arangodb-haystack/internal/domain/filter"
)

// mockRepo implements Repository for tests.
type mockRepo struct {
	insertManyFn func(ctx context.Context, docs []domdoc.Document) (int, error)
	getFn        func(ctx context.Context, id string) (domdoc.Document, error)
	updateManyFn func(ctx context.Context, docs []domdoc.Document) (int, error)
	removeManyFn func(ctx context.Context, ids []string, ignoreMissing bool) error
	findFn       func(ctx context.Context, f filter.Filter) ([]domdoc.Document, error)
	listFn       func(ctx context.Context, cursor string, limit int) ([]domdoc.Document, string, error)
	countFn      func(ctx context.Context) (int, error)
}

func (m *mockRepo) InsertMany(ctx context.Context, docs []domdoc.Document) (int, error) {
	if m.insertManyFn != nil {
		return m.insertManyFn(ctx, docs)
	}
	return len(docs), nil
}

func (m *mockRepo) Get(ctx context.Context, id string) (domdoc.Document, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return domdoc.Document{}, nil
}

func (m *mockRepo) UpdateMany(ctx context.Context, docs []domdoc.Document) (int, error) {
	if m.updateManyFn != nil {
		return m.updateManyFn(ctx, docs)
	}
	return len(docs), nil
}

func (m *mockRepo) RemoveMany(ctx context.Context, ids []string, ignoreMissing bool) error {
	if m.removeManyFn != nil {
		return m.removeManyFn(ctx, ids, ignoreMissing)
	}
	return nil
}

func (m *mockRepo) Find(ctx context.Context, f filter.Filter) ([]domdoc.Document, error) {
	if m.findFn != nil {
		return m.findFn(ctx, f)
	}
	return nil, nil
}

func (m *mockRepo) List(ctx context.Context, cursor string, limit int) ([]domdoc.Document, string, error) {
	if m.listFn != nil {
		return m.listFn(ctx, cursor, limit)
	}
	return nil, "", nil
}

func (m *mockRepo) Count(ctx context.Context) (int, error) {
	if m.countFn != nil {
		return m.countFn(ctx)
	}
	return 0, nil
}

func newTestService(t *testing.T) (*Service, *mockRepo) {
	t.Helper()
	mr := &mockRepo{}
	return New(mr), mr
}

func testDocs(t *testing.T, n int) []domdoc.Document {
	t.Helper()
	docs := make([]domdoc.Document, n)
	for i := range docs {
		docs[i] = domdoc.Reconstruct("doc", "content", nil)
	}
	return docs
}

package chi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"

	gochi "github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	domdoc "github.com/skitsanos/arangodb-haystack/internal/domain/document"
	"github.com/skitsanos/arangodb-haystack/internal/domain/filter"
)

type mockDocumentService struct {
	writeFn  func(ctx context.Context, docs []domdoc.Document) (int, error)
	getFn    func(ctx context.Context, id string) (domdoc.Document, error)
	updateFn func(ctx context.Context, docs []domdoc.Document) (int, error)
	deleteFn func(ctx context.Context, ids []string, ignoreMissing bool) error
	filterFn func(ctx context.Context, f filter.Filter) ([]domdoc.Document, error)
	listFn   func(ctx context.Context, cursor string, limit int) ([]domdoc.Document, string, error)
	countFn  func(ctx context.Context) (int, error)
}

func (m *mockDocumentService) Write(ctx context.Context, docs []domdoc.Document) (int, error) {
	return m.writeFn(ctx, docs)
}

func (m *mockDocumentService) Get(ctx context.Context, id string) (domdoc.Document, error) {
	return m.getFn(ctx, id)
}

func (m *mockDocumentService) Update(ctx context.Context, docs []domdoc.Document) (int, error) {
	return m.updateFn(ctx, docs)
}

func (m *mockDocumentService) Delete(ctx context.Context, ids []string, ignoreMissing bool) error {
	return m.deleteFn(ctx, ids, ignoreMissing)
}

func (m *mockDocumentService) Filter(ctx context.Context, f filter.Filter) ([]domdoc.Document, error) {
	return m.filterFn(ctx, f)
}

func (m *mockDocumentService) List(ctx context.Context, cursor string, limit int) ([]domdoc.Document, string, error) {
	return m.listFn(ctx, cursor, limit)
}

func (m *mockDocumentService) Count(ctx context.Context) (int, error) {
	return m.countFn(ctx)
}

type mockPinger struct {
	pingFn func(ctx context.Context) error
}

func (m *mockPinger) Ping(ctx context.Context) error {
	if m.pingFn == nil {
		return nil
	}
	return m.pingFn(ctx)
}

func newTestRouter(svc *mockDocumentService, pinger *mockPinger) *gochi.Mux {
	if pinger == nil {
		pinger = &mockPinger{}
	}
	srv := NewServer(svc, pinger, zap.NewNop())
	r := gochi.NewRouter()
	srv.Mount(r)
	return r
}

func doRequest(r http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func mustDocument(id, content string, meta map[string]any) domdoc.Document {
	return domdoc.Reconstruct(id, content, meta)
}

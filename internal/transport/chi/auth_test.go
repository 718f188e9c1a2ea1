package chi

import (
	"net/http"
	"net/http/httptest"
	"testing"

	gochi "github.com/go-chi/chi/v5"
)

func newAuthRouter(apiKeys []string) *gochi.Mux {
	r := gochi.NewRouter()
	r.Use(BearerAuthMiddleware(apiKeys))
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Get("/documents/count", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return r
}

func TestBearerAuth_ValidKey(t *testing.T) {
	r := newAuthRouter([]string{"secret-key"})

	req := httptest.NewRequest(http.MethodGet, "/documents/count", nil)
	req.Header.Set("Authorization", "Bearer secret-key")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestBearerAuth_InvalidKey(t *testing.T) {
	r := newAuthRouter([]string{"secret-key"})

	req := httptest.NewRequest(http.MethodGet, "/documents/count", nil)
	req.Header.Set("Authorization", "Bearer wrong-key")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestBearerAuth_MissingHeader(t *testing.T) {
	r := newAuthRouter([]string{"secret-key"})

	req := httptest.NewRequest(http.MethodGet, "/documents/count", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestBearerAuth_ExemptPaths(t *testing.T) {
	r := newAuthRouter([]string{"secret-key"})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 without auth on /health, got %d", rec.Code)
	}
}

func TestBearerAuth_DisabledWhenNoKeys(t *testing.T) {
	r := newAuthRouter(nil)

	req := httptest.NewRequest(http.MethodGet, "/documents/count", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 with auth disabled, got %d", rec.Code)
	}
}

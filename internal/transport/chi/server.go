// Package chi exposes the document store over a chi-routed REST API.
package chi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	gochi "github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/skitsanos/arangodb-haystack/internal/domain"
	domdoc "github.com/skitsanos/arangodb-haystack/internal/domain/document"
	"github.com/skitsanos/arangodb-haystack/internal/domain/filter"
	"github.com/skitsanos/arangodb-haystack/internal/version"
)

// DocumentService is the consumer contract over the document use case.
type DocumentService interface {
	Write(ctx context.Context, docs []domdoc.Document) (int, error)
	Get(ctx context.Context, id string) (domdoc.Document, error)
	Update(ctx context.Context, docs []domdoc.Document) (int, error)
	Delete(ctx context.Context, ids []string, ignoreMissing bool) error
	Filter(ctx context.Context, f filter.Filter) ([]domdoc.Document, error)
	List(ctx context.Context, cursor string, limit int) ([]domdoc.Document, string, error)
	Count(ctx context.Context) (int, error)
}

// Pinger checks backing store connectivity for the health endpoint.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server holds the HTTP handlers for the document store API.
type Server struct {
	documents DocumentService
	pinger    Pinger
	logger    *zap.Logger
}

// NewServer creates an HTTP API server.
func NewServer(documents DocumentService, pinger Pinger, logger *zap.Logger) *Server {
	return &Server{documents: documents, pinger: pinger, logger: logger}
}

// Mount registers all routes on the given router.
func (s *Server) Mount(r gochi.Router) {
	r.Get("/health", s.Health)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/documents", func(r gochi.Router) {
		r.Post("/", s.WriteDocuments)
		r.Get("/", s.ListDocuments)
		r.Patch("/", s.UpdateDocuments)
		r.Get("/count", s.CountDocuments)
		r.Post("/filter", s.FilterDocuments)
		r.Post("/delete", s.DeleteDocuments)
		r.Get("/{id}", s.GetDocument)
		r.Delete("/{id}", s.DeleteDocument)
	})
}

// Health handles GET /health.
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	if err := s.pinger.Ping(r.Context()); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status":  "unavailable",
			"version": version.Version,
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": version.Version,
	})
}

// WriteDocuments handles POST /documents.
func (s *Server) WriteDocuments(w http.ResponseWriter, r *http.Request) {
	var req writeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "invalid request body: "+err.Error())
		return
	}
	if len(req.Documents) == 0 {
		writeError(w, http.StatusBadRequest, codeValidationFailed, "documents is required")
		return
	}

	docs, err := documentsFromPayload(req.Documents)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeValidationFailed, err.Error())
		return
	}

	n, err := s.documents.Write(r.Context(), docs)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, writeResponse{Written: n})
}

// GetDocument handles GET /documents/{id}.
func (s *Server) GetDocument(w http.ResponseWriter, r *http.Request) {
	id := gochi.URLParam(r, "id")

	doc, err := s.documents.Get(r.Context(), id)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, documentToPayload(doc))
}

// UpdateDocuments handles PATCH /documents.
func (s *Server) UpdateDocuments(w http.ResponseWriter, r *http.Request) {
	var req writeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "invalid request body: "+err.Error())
		return
	}
	if len(req.Documents) == 0 {
		writeError(w, http.StatusBadRequest, codeValidationFailed, "documents is required")
		return
	}
	for i := range req.Documents {
		if req.Documents[i].ID == "" {
			writeError(w, http.StatusBadRequest, codeValidationFailed,
				"document "+strconv.Itoa(i)+": id is required for update")
			return
		}
	}

	docs, err := documentsFromPayload(req.Documents)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeValidationFailed, err.Error())
		return
	}

	n, err := s.documents.Update(r.Context(), docs)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updateResponse{Updated: n})
}

// DeleteDocument handles DELETE /documents/{id}.
func (s *Server) DeleteDocument(w http.ResponseWriter, r *http.Request) {
	id := gochi.URLParam(r, "id")

	if err := s.documents.Delete(r.Context(), []string{id}, false); err != nil {
		s.handleDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteDocuments handles POST /documents/delete (bulk).
func (s *Server) DeleteDocuments(w http.ResponseWriter, r *http.Request) {
	var req deleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "invalid request body: "+err.Error())
		return
	}
	if len(req.IDs) == 0 {
		writeError(w, http.StatusBadRequest, codeValidationFailed, "ids is required")
		return
	}

	ignoreMissing := true
	if req.IgnoreMissing != nil {
		ignoreMissing = *req.IgnoreMissing
	}

	if err := s.documents.Delete(r.Context(), req.IDs, ignoreMissing); err != nil {
		s.handleDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// FilterDocuments handles POST /documents/filter.
func (s *Server) FilterDocuments(w http.ResponseWriter, r *http.Request) {
	var req filterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "invalid request body: "+err.Error())
		return
	}

	f, err := filter.New(req.Filters)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeValidationFailed, err.Error())
		return
	}

	docs, err := s.documents.Filter(r.Context(), f)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, documentsResponse{Documents: documentsToPayload(docs)})
}

// ListDocuments handles GET /documents.
func (s *Server) ListDocuments(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, codeBadRequest, "invalid limit: "+v)
			return
		}
		limit = parsed
	}

	docs, nextCursor, err := s.documents.List(r.Context(), r.URL.Query().Get("cursor"), limit)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, documentsResponse{
		Documents:  documentsToPayload(docs),
		NextCursor: nextCursor,
	})
}

// CountDocuments handles GET /documents/count.
func (s *Server) CountDocuments(w http.ResponseWriter, r *http.Request) {
	n, err := s.documents.Count(r.Context())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, countResponse{Count: n})
}

// handleDomainError maps domain sentinels to HTTP statuses; anything else is
// an internal error, logged with its chain intact.
func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrDocumentNotFound):
		writeError(w, http.StatusNotFound, codeDocumentNotFound, "document not found")
	case errors.Is(err, domain.ErrDocumentExists):
		writeError(w, http.StatusConflict, codeDocumentExists, "document already exists")
	case errors.Is(err, domain.ErrInvalidDocument), errors.Is(err, domain.ErrInvalidFilter):
		writeError(w, http.StatusBadRequest, codeValidationFailed, err.Error())
	case errors.Is(err, domain.ErrCollectionNotFound):
		writeError(w, http.StatusNotFound, codeCollectionNotFound, "collection not found")
	default:
		s.logger.Error("request failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
	}
}

// documentsFromPayload converts API payloads to domain documents, generating
// an identifier for payloads that arrive without one.
func documentsFromPayload(payloads []documentPayload) ([]domdoc.Document, error) {
	docs := make([]domdoc.Document, len(payloads))
	for i, p := range payloads {
		id := p.ID
		if id == "" {
			id = uuid.NewString()
		}
		doc, err := domdoc.New(id, p.Content, p.Meta)
		if err != nil {
			return nil, err
		}
		docs[i] = doc
	}
	return docs, nil
}

func documentToPayload(doc domdoc.Document) documentPayload {
	return documentPayload{ID: doc.ID(), Content: doc.Content(), Meta: doc.Meta()}
}

func documentsToPayload(docs []domdoc.Document) []documentPayload {
	out := make([]documentPayload, len(docs))
	for i, d := range docs {
		out[i] = documentToPayload(d)
	}
	return out
}

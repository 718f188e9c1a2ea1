// Package document orchestrates document store operations over the repository.
package document

import (
	"context"
	"fmt"

	"github.com/skitsanos/arangodb-haystack/internal/domain"
	domdoc "github.com/skitsanos/arangodb-haystack/internal/domain/document"
	"github.com/skitsanos/arangodb-haystack/internal/domain/filter"
)

// Service handles document store operations. Every call is a single
// synchronous round trip to the repository; no state is kept between calls.
type Service struct {
	repo            Repository
	maxBatchSize    int
	defaultPageSize int
	maxPageSize     int
}

// New creates a document service.
func New(repo Repository) *Service {
	return &Service{
		repo:            repo,
		maxBatchSize:    1000,
		defaultPageSize: 20,
		maxPageSize:     100,
	}
}

// WithMaxBatchSize configures the bulk operation cap.
func (s *Service) WithMaxBatchSize(n int) *Service {
	if n > 0 {
		s.maxBatchSize = n
	}
	return s
}

// WithPagination configures page size limits.
func (s *Service) WithPagination(defaultPageSize, maxPageSize int) *Service {
	if defaultPageSize > 0 {
		s.defaultPageSize = defaultPageSize
	}
	if maxPageSize > 0 {
		s.maxPageSize = maxPageSize
	}
	return s
}

// Write stores documents, returning the number written.
func (s *Service) Write(ctx context.Context, docs []domdoc.Document) (int, error) {
	if len(docs) == 0 {
		return 0, nil
	}
	if err := s.checkBatch(len(docs)); err != nil {
		return 0, err
	}

	n, err := s.repo.InsertMany(ctx, docs)
	if err != nil {
		return n, fmt.Errorf("write documents: %w", err)
	}
	return n, nil
}

// Get retrieves a document by ID.
func (s *Service) Get(ctx context.Context, id string) (domdoc.Document, error) {
	if id == "" {
		return domdoc.Document{}, fmt.Errorf("document ID is required: %w", domain.ErrInvalidDocument)
	}

	doc, err := s.repo.Get(ctx, id)
	if err != nil {
		return domdoc.Document{}, fmt.Errorf("get document: %w", err)
	}
	return doc, nil
}

// Update overwrites documents by ID, returning the number actually written.
// Documents missing from the collection are skipped, not errors.
func (s *Service) Update(ctx context.Context, docs []domdoc.Document) (int, error) {
	if len(docs) == 0 {
		return 0, nil
	}
	if err := s.checkBatch(len(docs)); err != nil {
		return 0, err
	}

	n, err := s.repo.UpdateMany(ctx, docs)
	if err != nil {
		return n, fmt.Errorf("update documents: %w", err)
	}
	return n, nil
}

// Delete removes documents by ID. With ignoreMissing false, a missing ID
// fails the call with domain.ErrDocumentNotFound.
func (s *Service) Delete(ctx context.Context, ids []string, ignoreMissing bool) error {
	if len(ids) == 0 {
		return nil
	}
	if err := s.checkBatch(len(ids)); err != nil {
		return err
	}
	for _, id := range ids {
		if id == "" {
			return fmt.Errorf("document ID is required: %w", domain.ErrInvalidDocument)
		}
	}

	if err := s.repo.RemoveMany(ctx, ids, ignoreMissing); err != nil {
		return fmt.Errorf("delete documents: %w", err)
	}
	return nil
}

// Filter returns the documents whose metadata matches every condition.
// An empty filter returns all documents.
func (s *Service) Filter(ctx context.Context, f filter.Filter) ([]domdoc.Document, error) {
	docs, err := s.repo.Find(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("filter documents: %w", err)
	}
	return docs, nil
}

// List returns a paginated list of documents.
func (s *Service) List(ctx context.Context, cursor string, limit int) ([]domdoc.Document, string, error) {
	if limit <= 0 {
		limit = s.defaultPageSize
	}
	if limit > s.maxPageSize {
		limit = s.maxPageSize
	}

	docs, nextCursor, err := s.repo.List(ctx, cursor, limit)
	if err != nil {
		return nil, "", fmt.Errorf("list documents: %w", err)
	}
	return docs, nextCursor, nil
}

// Count returns the number of documents in the collection.
func (s *Service) Count(ctx context.Context) (int, error) {
	n, err := s.repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count documents: %w", err)
	}
	return n, nil
}

func (s *Service) checkBatch(n int) error {
	if n > s.maxBatchSize {
		return fmt.Errorf("batch too large (%d, max %d): %w", n, s.maxBatchSize, domain.ErrInvalidDocument)
	}
	return nil
}

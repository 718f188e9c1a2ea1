package document

import (
	"context"

	domdoc "github.com/skitsanos/arangodb-haystack/internal/domain/document"
	"github.com/skitsanos/arangodb-haystack/internal/domain/filter"
)

// Repository is the document persistence contract.
type Repository interface {
	InsertMany(ctx context.Context, docs []domdoc.Document) (int, error)
	Get(ctx context.Context, id string) (domdoc.Document, error)
	UpdateMany(ctx context.Context, docs []domdoc.Document) (int, error)
	RemoveMany(ctx context.Context, ids []string, ignoreMissing bool) error
	Find(ctx context.Context, f filter.Filter) ([]domdoc.Document, error)
	List(ctx context.Context, cursor string, limit int) ([]domdoc.Document, string, error)
	Count(ctx context.Context) (int, error)
}

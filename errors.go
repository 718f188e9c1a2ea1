package haystack

import "github.com/skitsanos/arangodb-haystack/internal/domain"

// Sentinel errors returned by DocumentStore operations. Match with errors.Is;
// the underlying driver error stays reachable through the chain.
var (
	// ErrDocumentNotFound is returned when a requested document does not exist.
	ErrDocumentNotFound = domain.ErrDocumentNotFound

	// ErrDocumentExists is returned when writing a document whose ID is taken.
	ErrDocumentExists = domain.ErrDocumentExists

	// ErrInvalidDocument is returned when a document fails validation.
	ErrInvalidDocument = domain.ErrInvalidDocument

	// ErrInvalidFilter is returned when a filter fails validation.
	ErrInvalidFilter = domain.ErrInvalidFilter

	// ErrCollectionNotFound is returned when the configured collection is
	// absent and creation was not requested.
	ErrCollectionNotFound = domain.ErrCollectionNotFound
)

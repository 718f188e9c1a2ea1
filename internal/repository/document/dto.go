package document

import (
	domdoc "github.com/skitsanos/arangodb-haystack/internal/domain/document"

	"github.com/skitsanos/arangodb-haystack/internal/db"
)

// buildRecord converts a domain Document into the raw collection shape.
func buildRecord(doc *domdoc.Document) db.Record {
	return db.Record{
		Key:     doc.ID(),
		Content: doc.Content(),
		Meta:    doc.Meta(),
	}
}

// parseRecord hydrates a domain Document from the raw collection shape.
// Metadata values come back as the driver decoded them (JSON numbers are
// float64); the mapping is open-ended by contract, so no coercion happens.
func parseRecord(rec db.Record) domdoc.Document {
	return domdoc.Reconstruct(rec.Key, rec.Content, rec.Meta)
}

func parseRecords(recs []db.Record) []domdoc.Document {
	docs := make([]domdoc.Document, len(recs))
	for i, rec := range recs {
		docs[i] = parseRecord(rec)
	}
	return docs
}

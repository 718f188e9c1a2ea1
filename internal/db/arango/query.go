package arango

import (
	"context"

	driver "github.com/arangodb/go-driver"

	"github.com/skitsanos/arangodb-haystack/internal/db"
)

// Query executes an AQL query with bind variables and drains the cursor.
func (s *Store) Query(ctx context.Context, query string, bindVars map[string]any) ([]db.Record, error) {
	cursor, err := s.database.Query(ctx, query, bindVars)
	if err != nil {
		return nil, &db.Error{Op: db.OpQuery, Err: err}
	}
	defer cursor.Close()

	var records []db.Record
	for {
		var rec db.Record
		_, err := cursor.ReadDocument(ctx, &rec)
		if driver.IsNoMoreDocuments(err) {
			break
		}
		if err != nil {
			return nil, &db.Error{Op: db.OpQuery, Err: err}
		}
		records = append(records, rec)
	}
	return records, nil
}

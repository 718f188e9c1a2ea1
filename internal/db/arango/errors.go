package arango

import (
	"fmt"

	driver "github.com/arangodb/go-driver"

	"github.com/skitsanos/arangodb-haystack/internal/db"
)

// mapDriverError translates the driver errors the store contract cares about
// into db sentinels, keeping the original error in the chain. Everything else
// is surfaced as-is.
func mapDriverError(err error) error {
	switch {
	case driver.IsNotFound(err):
		return fmt.Errorf("%w: %w", db.ErrKeyNotFound, err)
	case driver.IsConflict(err):
		return fmt.Errorf("%w: %w", db.ErrKeyExists, err)
	default:
		return err
	}
}

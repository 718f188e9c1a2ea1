package db

import (
	"fmt"
	"sort"
	"strings"
)

// collectionBindName is the bind parameter carrying the target collection;
// referenced as @@collection inside query text.
const collectionBindName = "@collection"

// FilterQuery builds an AQL query matching records whose metadata equals
// every entry in equalities. Conditions are AND-combined in sorted key order
// so the query text and bind names are deterministic. Field names and values
// both travel as bind variables; no user input is spliced into the query.
// An empty map matches the whole collection.
func FilterQuery(collection string, equalities map[string]any) (string, map[string]any) {
	bindVars := map[string]any{collectionBindName: collection}

	keys := make([]string, 0, len(equalities))
	for k := range equalities {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString("FOR d IN @@collection")
	for i, k := range keys {
		fieldBind := fmt.Sprintf("f%d", i)
		valueBind := fmt.Sprintf("v%d", i)
		fmt.Fprintf(&b, " FILTER d.meta[@%s] == @%s", fieldBind, valueBind)
		bindVars[fieldBind] = k
		bindVars[valueBind] = equalities[k]
	}
	b.WriteString(" RETURN d")

	return b.String(), bindVars
}

// ListQuery builds a paginated listing query ordered by document key.
func ListQuery(collection string, offset, limit int) (string, map[string]any) {
	query := "FOR d IN @@collection SORT d._key LIMIT @offset, @count RETURN d"
	return query, map[string]any{
		collectionBindName: collection,
		"offset":           offset,
		"count":            limit,
	}
}

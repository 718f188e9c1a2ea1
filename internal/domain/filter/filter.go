// Package filter defines the metadata equality filter value object.
package filter

import (
	"fmt"
	"sort"
)

// MaxConditions is the maximum number of equality conditions per filter.
const MaxConditions = 32

// Filter is a set of equality constraints against document metadata,
// AND-combined. Conditions are held in sorted key order so downstream query
// text is deterministic.
type Filter struct {
	conds []Condition
}

// New validates and creates a Filter from an equality map.
// A nil or empty map yields an empty filter (matches everything).
func New(equalities map[string]any) (Filter, error) {
	if len(equalities) > MaxConditions {
		return Filter{}, fmt.Errorf("too many filter conditions (max %d)", MaxConditions)
	}

	keys := make([]string, 0, len(equalities))
	for k := range equalities {
		if k == "" {
			return Filter{}, fmt.Errorf("filter key is required")
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	conds := make([]Condition, len(keys))
	for i, k := range keys {
		conds[i] = Condition{key: k, value: equalities[k]}
	}
	return Filter{conds: conds}, nil
}

// Conditions returns the equality conditions in sorted key order.
func (f Filter) Conditions() []Condition { return f.conds }

// IsEmpty reports whether the filter has no conditions.
func (f Filter) IsEmpty() bool { return len(f.conds) == 0 }

// Equalities returns the filter as a key/value map.
func (f Filter) Equalities() map[string]any {
	if len(f.conds) == 0 {
		return nil
	}
	m := make(map[string]any, len(f.conds))
	for _, c := range f.conds {
		m[c.key] = c.value
	}
	return m
}

// Condition is a single metadata equality clause.
type Condition struct {
	key   string
	value any
}

// Key returns the metadata field name.
func (c Condition) Key() string { return c.key }

// Value returns the value the field must equal.
func (c Condition) Value() any { return c.value }

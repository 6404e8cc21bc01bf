// Package matrix derives tabular views from heterogeneous client
// records: schema inference across record field sets, priority-column
// ordering with Hebrew-correct collation, and header/body rendering.
package matrix

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/BasharMawase/Nextis-Admin/pkg/types"
)

// BuildSchema derives an ordered, de-duplicated column list from the
// union of field names across all records, skipping excluded
// identifiers. Columns from priority appear first, in that order, when
// present; the remainder follow sorted under Hebrew collation so Hebrew
// column names order correctly rather than by code point.
//
// The result is deterministic for a given multiset of field names
// regardless of record order. An empty record collection yields a
// zero-length schema; callers render an explicit no-data state instead
// of an empty table shell.
func BuildSchema(records []types.Record, priority []string, excluded map[string]bool) []string {
	if len(records) == 0 {
		return nil
	}

	union := make(map[string]bool)
	for _, r := range records {
		for k := range r {
			if !excluded[k] {
				union[k] = true
			}
		}
	}

	schema := make([]string, 0, len(union))
	for _, col := range priority {
		if union[col] {
			schema = append(schema, col)
			delete(union, col)
		}
	}

	rest := make([]string, 0, len(union))
	for col := range union {
		rest = append(rest, col)
	}
	c := collate.New(language.Hebrew)
	sort.Slice(rest, func(i, j int) bool {
		return c.CompareString(rest[i], rest[j]) < 0
	})

	return append(schema, rest...)
}

// DefaultSchema builds the schema with the standard priority columns and
// system-column exclusions.
func DefaultSchema(records []types.Record) []string {
	return BuildSchema(records, types.PriorityColumns, types.SystemColumns)
}

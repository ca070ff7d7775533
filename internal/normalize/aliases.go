// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package normalize maps loosely structured tracker export rows onto the
// canonical Application record: header cleanup, alias resolution, and date
// normalization.
package normalize

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pdiddy/funnel-normalize/pkg/types"
)

// AliasTable maps a canonical field name to the export headers that may
// carry it. Headers are lower-case and trimmed; earlier entries win.
type AliasTable map[string][]string

// aliasedFields lists the fields resolved through the alias table, in output
// order. Source is stamped, never resolved.
var aliasedFields = []string{
	types.FieldCompany,
	types.FieldRole,
	types.FieldLocation,
	types.FieldAppliedDate,
	types.FieldStatus,
	types.FieldJobURL,
}

// DefaultAliases returns a fresh copy of the built-in alias table.
func DefaultAliases() AliasTable {
	return AliasTable{
		types.FieldCompany:     {"company", "company name"},
		types.FieldRole:        {"role", "job title", "title", "position"},
		types.FieldLocation:    {"location", "job location"},
		types.FieldAppliedDate: {"date applied", "applied date", "application date"},
		types.FieldStatus:      {"status", "application status"},
		types.FieldJobURL:      {"job url", "posting url", "url", "link"},
	}
}

// Fields returns the canonical fields the table resolves, in output order.
func Fields() []string {
	out := make([]string, len(aliasedFields))
	copy(out, aliasedFields)
	return out
}

// Merge returns a new table with extra appended after the existing aliases
// of each field. Extra header names are trimmed and lower-cased; blanks and
// names already listed for the field are skipped. Unknown fields and the
// source field are rejected.
func (t AliasTable) Merge(extra map[string][]string) (AliasTable, error) {
	out := make(AliasTable, len(t))
	for field, aliases := range t {
		out[field] = append([]string(nil), aliases...)
	}

	fields := make([]string, 0, len(extra))
	for field := range extra {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	for _, field := range fields {
		key := strings.ToLower(strings.TrimSpace(field))
		if !isAliasedField(key) {
			return nil, fmt.Errorf("alias override for unknown field %q (valid: %s)",
				field, strings.Join(aliasedFields, ", "))
		}
		for _, alias := range extra[field] {
			alias = strings.ToLower(strings.TrimSpace(alias))
			if alias == "" || contains(out[key], alias) {
				continue
			}
			out[key] = append(out[key], alias)
		}
	}
	return out, nil
}

// Resolve returns the value for field from a header-normalized row.
func (t AliasTable) Resolve(row map[string]string, field string) string {
	return Pick(row, t[field])
}

func isAliasedField(field string) bool {
	return contains(aliasedFields, field)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package normalize

import "strings"

// Header returns a copy of row with trimmed, lower-cased keys and trimmed
// values. Entries whose key is empty after trimming are dropped. When two
// raw keys normalize to the same name, the one visited last wins; callers
// that care about column order should use HeaderPairs.
func Header(row map[string]string) map[string]string {
	out := make(map[string]string, len(row))
	for k, v := range row {
		key := strings.ToLower(strings.TrimSpace(k))
		if key == "" {
			continue
		}
		out[key] = strings.TrimSpace(v)
	}
	return out
}

// HeaderPairs builds a normalized row from parallel header and cell slices.
// Cells missing from a short row read as "", cells beyond the header are
// ignored, and a repeated header keeps the rightmost column's value.
func HeaderPairs(header, cells []string) map[string]string {
	out := make(map[string]string, len(header))
	for i, h := range header {
		key := strings.ToLower(strings.TrimSpace(h))
		if key == "" {
			continue
		}
		var v string
		if i < len(cells) {
			v = cells[i]
		}
		out[key] = strings.TrimSpace(v)
	}
	return out
}

// Pick returns the first value in row under one of aliases that is
// non-empty after trimming, trying aliases in order. It returns "" when
// nothing matches.
func Pick(row map[string]string, aliases []string) string {
	for _, alias := range aliases {
		if v, ok := row[alias]; ok && strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

package core

import "strings"

// NormalizeColumn lowercases and trims a header field and replaces
// spaces with underscores. "  Item ID " becomes "item_id".
func NormalizeColumn(field string) string {
	return strings.ReplaceAll(strings.TrimSpace(strings.ToLower(field)), " ", "_")
}

// NormalizeHeader normalizes every header field and applies the schema's
// header renames. The result has one entry per input field, in the same
// position.
func NormalizeHeader(header []string, renames []Rename) []string {
	cols := make([]string, len(header))
	for i, field := range header {
		cols[i] = renameColumn(NormalizeColumn(field), renames)
	}
	return cols
}

func renameColumn(name string, renames []Rename) string {
	for _, r := range renames {
		if r.Old == name {
			return r.New
		}
	}
	return name
}

// checkHeader rejects headers that cannot be mapped to a record:
// no columns at all, blank column names, or two columns with the same
// name after normalization.
func checkHeader(cols []string) error {
	if len(cols) == 0 {
		return &MalformedInputError{Line: 1, Reason: "header has no columns", Err: ErrEmptyInput}
	}

	seen := make(map[string]int, len(cols))
	blank := 0
	for i, c := range cols {
		if c == "" {
			blank++
			continue
		}
		if prev, dup := seen[c]; dup {
			return malformed(1, "columns %d and %d both map to %q", prev+1, i+1, c)
		}
		seen[c] = i
	}

	if blank == len(cols) {
		return &MalformedInputError{Line: 1, Reason: "header has no columns", Err: ErrEmptyInput}
	}
	for i, c := range cols {
		if c == "" {
			return malformed(1, "column %d has an empty name", i+1)
		}
	}
	return nil
}

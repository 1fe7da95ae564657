package core

import (
	"fmt"
	"sort"
	"strings"
)

// Hook transforms and/or validates a single raw cell value.
// Returning an error rejects the value; the error message is reported
// to the client as-is, so it should name the field.
type Hook func(raw string) (any, error)

// Rename replaces a normalized header name with another.
// For nested subfields, Old takes the form "<output>.<subfield>".
type Rename struct {
	Old string
	New string
}

// NestedGroup maps a column prefix to the output field that collects
// the reconstructed sub-records.
type NestedGroup struct {
	Prefix string // Column prefix: "modifier" matches "modifier_1_name"
	Output string // Output field name: "modifiers"
}

// Record is one transformed row. Nested groups are []map[string]any.
type Record map[string]any

// Schema describes how rows of one record type are transformed.
//
// A Schema is a plain value: adding a record type means constructing a new
// Schema and registering it, not defining a new type. Once registered a
// Schema must be treated as read-only.
type Schema struct {
	Name           string
	HeaderRenames  []Rename        // First match wins
	NestedGroups   []NestedGroup   // First matching prefix wins
	RequiredFields []string        // Must be present among flat fields
	Hooks          map[string]Hook // Keyed by field or "<output>__<subfield>"
}

// HookKey returns the hook registry key for a nested subfield.
func HookKey(output, subfield string) string {
	return output + "__" + subfield
}

// hook returns the hook registered for key, if any.
func (s *Schema) hook(key string) (Hook, bool) {
	h, ok := s.Hooks[key]
	return h, ok && h != nil
}

// Validate checks the declaration for mistakes that would make every
// transformation fail or behave ambiguously.
func (s Schema) Validate() error {
	var errs []string

	if s.Name == "" {
		errs = append(errs, "name is required")
	}

	for i, r := range s.HeaderRenames {
		if r.Old == "" || r.New == "" {
			errs = append(errs, fmt.Sprintf("header rename %d has an empty name", i))
		}
	}

	outputs := make(map[string]bool, len(s.NestedGroups))
	for i, g := range s.NestedGroups {
		if g.Prefix == "" || g.Output == "" {
			errs = append(errs, fmt.Sprintf("nested group %d has an empty prefix or output", i))
			continue
		}
		if outputs[g.Output] {
			errs = append(errs, fmt.Sprintf("nested output %q declared twice", g.Output))
		}
		outputs[g.Output] = true
	}

	for _, f := range s.RequiredFields {
		if outputs[f] {
			errs = append(errs, fmt.Sprintf("required field %q is a nested output", f))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("schema %q: %s", s.Name, strings.Join(errs, "; "))
	}
	return nil
}

// clone returns a copy that shares no slices or maps with s.
func (s Schema) clone() Schema {
	c := Schema{
		Name:           s.Name,
		HeaderRenames:  append([]Rename(nil), s.HeaderRenames...),
		NestedGroups:   append([]NestedGroup(nil), s.NestedGroups...),
		RequiredFields: append([]string(nil), s.RequiredFields...),
		Hooks:          make(map[string]Hook, len(s.Hooks)),
	}
	for k, h := range s.Hooks {
		c.Hooks[k] = h
	}
	return c
}

// Describe returns a serializable summary of the schema declaration.
func (s Schema) Describe() SchemaInfo {
	info := SchemaInfo{
		Name:           s.Name,
		HeaderRenames:  make(map[string]string, len(s.HeaderRenames)),
		NestedGroups:   make(map[string]string, len(s.NestedGroups)),
		RequiredFields: append([]string{}, s.RequiredFields...),
		Hooks:          make([]string, 0, len(s.Hooks)),
	}
	for _, r := range s.HeaderRenames {
		if _, seen := info.HeaderRenames[r.Old]; !seen {
			info.HeaderRenames[r.Old] = r.New
		}
	}
	for _, g := range s.NestedGroups {
		if _, seen := info.NestedGroups[g.Prefix]; !seen {
			info.NestedGroups[g.Prefix] = g.Output
		}
	}
	for k := range s.Hooks {
		info.Hooks = append(info.Hooks, k)
	}
	sort.Strings(info.Hooks)
	return info
}

// SchemaInfo is the JSON view of a Schema.
type SchemaInfo struct {
	Name           string            `json:"name"`
	HeaderRenames  map[string]string `json:"headerRenames"`
	NestedGroups   map[string]string `json:"nestedGroups"`
	RequiredFields []string          `json:"requiredFields"`
	Hooks          []string          `json:"hooks"`
}

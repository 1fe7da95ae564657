package core

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// AssignFieldValue runs the hook registered under key on raw.
// Without a hook the raw value is returned unchanged.
func (s Schema) AssignFieldValue(key, raw string) (any, error) {
	h, ok := s.hook(key)
	if !ok {
		return raw, nil
	}
	return h(raw)
}

// Hooks below are building blocks for schema declarations. Typed hooks
// (Decimal, Date, Bool, UUID) map blank input to nil.

// Trim strips leading and trailing whitespace.
func Trim() Hook {
	return func(raw string) (any, error) {
		return strings.TrimSpace(raw), nil
	}
}

// OneOf accepts only the listed values (after trimming) and returns the
// trimmed value.
func OneOf(field string, allowed ...string) Hook {
	set := make(map[string]bool, len(allowed))
	for _, a := range allowed {
		set[a] = true
	}
	msg := fmt.Sprintf("`%s` must be one of: %s", field, strings.Join(allowed, ", "))

	return func(raw string) (any, error) {
		v := strings.TrimSpace(raw)
		if !set[v] {
			return nil, fieldError(field, raw, msg)
		}
		return v, nil
	}
}

// Decimal parses a number and returns its canonical string form, so
// "$1,200.50" becomes "1200.5".
func Decimal(field string) Hook {
	return func(raw string) (any, error) {
		if strings.TrimSpace(raw) == "" {
			return nil, nil
		}
		d, ok := parseDecimal(raw)
		if !ok {
			return nil, fieldError(field, raw, fmt.Sprintf("`%s` must be a number", field))
		}
		return d.String(), nil
	}
}

// Date parses a date in any of the supported layouts. The value is a
// pgtype.Date, which encodes as "YYYY-MM-DD" in JSON; a blank cell gives
// an invalid Date that encodes as null.
func Date(field string) Hook {
	return func(raw string) (any, error) {
		d := parseDate(raw)
		if !d.Valid && strings.TrimSpace(raw) != "" {
			return nil, fieldError(field, raw,
				fmt.Sprintf("`%s` must be a date (use YYYY-MM-DD or similar)", field))
		}
		return d, nil
	}
}

// Bool parses yes/no, true/false, or 1/0 into a pgtype.Bool. Blank cells
// give an invalid Bool that encodes as null.
func Bool(field string) Hook {
	return func(raw string) (any, error) {
		b := parseBool(raw)
		if !b.Valid && strings.TrimSpace(raw) != "" {
			return nil, fieldError(field, raw,
				fmt.Sprintf("`%s` must be yes/no, true/false, or 1/0", field))
		}
		return b, nil
	}
}

// UUID validates a UUID and returns it in canonical lowercase form.
func UUID(field string) Hook {
	return func(raw string) (any, error) {
		s := strings.TrimSpace(raw)
		if s == "" {
			return nil, nil
		}
		u, err := uuid.Parse(s)
		if err != nil {
			return nil, fieldError(field, raw, fmt.Sprintf("`%s` must be a UUID", field))
		}
		return u.String(), nil
	}
}

// Chain runs hooks left to right, feeding each string result into the
// next one. It stops at the first error. A hook that returns a non-string
// value ends the chain with that value.
func Chain(hooks ...Hook) Hook {
	return func(raw string) (any, error) {
		var out any = raw
		for _, h := range hooks {
			s, ok := out.(string)
			if !ok {
				return out, nil
			}
			v, err := h(s)
			if err != nil {
				return nil, err
			}
			out = v
		}
		return out, nil
	}
}

func fieldError(field, value, msg string) FieldError {
	return FieldError{Kind: FieldValidationFailed, Field: field, Value: value, Message: msg}
}

package core

// transform.go turns CSV text into records.
//
// The header is normalized once and decomposed into a column plan: each
// column is either a flat field or a (group, index, subfield) slot of a
// nested group. Every data row is then transformed against that plan:
//
//  1. Run the hook for each column (pass-through when none is registered)
//  2. Store flat values under their column name
//  3. Collect nested values into per-group sub-records keyed by index,
//     ordered by first appearance of the index within the row
//  4. Check required fields against the flat fields
//
// A row with any hook or required-field failure is rejected with all of
// its errors. The run stops at the first rejected row.

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/JonMunkholm/csvtransform/internal/logging"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// column describes where the value of one CSV column ends up.
type column struct {
	name    string // Normalized column name
	group   int    // Index into Schema.NestedGroups, -1 for flat fields
	index   string // Row-local group index (nested only)
	sub     string // Subfield name after nested renames (nested only)
	hookKey string
}

// Transform reads CSV text from r and transforms every data row.
// Records are returned in input order.
func (s Schema) Transform(ctx context.Context, r io.Reader) ([]Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return s.TransformBytes(ctx, data)
}

// TransformString is Transform for in-memory text.
func (s Schema) TransformString(text string) ([]Record, error) {
	return s.TransformBytes(context.Background(), []byte(text))
}

// TransformBytes transforms in-memory CSV data.
func (s Schema) TransformBytes(ctx context.Context, data []byte) ([]Record, error) {
	start := time.Now()
	logger := logging.WithFields(ctx,
		"schema", s.Name,
		"run_id", RunIDFromContext(ctx),
	)

	records, err := s.transform(data)
	if err != nil {
		logger.Debug("transform failed",
			"error", err,
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return nil, err
	}

	logger.Debug("transform completed",
		"records", len(records),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return records, nil
}

func (s Schema) transform(data []byte) ([]Record, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, &MalformedInputError{Reason: "no header line", Err: ErrEmptyInput}
	}
	if !utf8.Valid(data) {
		return nil, malformed(0, "input is not valid UTF-8")
	}

	cr := csv.NewReader(bytes.NewReader(data))

	header, err := cr.Read()
	if err != nil {
		return nil, csvError(err, 0, 0)
	}

	cols := NormalizeHeader(header, s.HeaderRenames)
	if err := checkHeader(cols); err != nil {
		return nil, err
	}

	plan, err := s.planColumns(cols)
	if err != nil {
		return nil, err
	}

	records := make([]Record, 0)
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, csvError(err, len(row), len(header))
		}

		line, _ := cr.FieldPos(0)
		rec, rowErr := s.transformRow(plan, row, line)
		if rowErr != nil {
			return nil, &ValidationError{Schema: s.Name, Row: rowErr}
		}
		records = append(records, rec)
	}

	return records, nil
}

// csvError converts a csv reader error into a MalformedInputError.
func csvError(err error, got, want int) error {
	var pe *csv.ParseError
	if !errors.As(err, &pe) {
		return &MalformedInputError{Reason: err.Error(), Err: err}
	}
	if errors.Is(pe.Err, csv.ErrFieldCount) {
		return &MalformedInputError{
			Line:   pe.StartLine,
			Reason: fmt.Sprintf("row has %d fields, header has %d", got, want),
			Err:    err,
		}
	}
	return &MalformedInputError{Line: pe.StartLine, Reason: pe.Err.Error(), Err: err}
}

// TransformRow transforms a single row. cols are normalized column names
// (see NormalizeHeader) and values the raw cells in the same order.
// A rejected row is reported as *RowError; a column name that cannot be
// decomposed as *MalformedInputError.
func (s Schema) TransformRow(cols, values []string) (Record, error) {
	if len(cols) != len(values) {
		return nil, malformed(0, "row has %d fields, header has %d", len(values), len(cols))
	}
	plan, err := s.planColumns(cols)
	if err != nil {
		return nil, err
	}
	rec, rowErr := s.transformRow(plan, values, 0)
	if rowErr != nil {
		return nil, rowErr
	}
	return rec, nil
}

// planColumns decides for every column whether it is a flat field or a
// nested subfield, and computes its hook key.
func (s Schema) planColumns(cols []string) ([]column, error) {
	outputs := make(map[string]bool, len(s.NestedGroups))
	for _, g := range s.NestedGroups {
		outputs[g.Output] = true
	}

	type slot struct {
		group      int
		index, sub string
	}
	slots := make(map[slot]int)

	plan := make([]column, len(cols))
	for i, name := range cols {
		c := column{name: name, group: -1, hookKey: name}

		for gi, g := range s.NestedGroups {
			if !strings.HasPrefix(name, g.Prefix) {
				continue
			}
			index, sub, err := splitNested(name, g.Prefix)
			if err != nil {
				return nil, malformed(1, "column %q: %s", name, err)
			}
			nestedKey := g.Output + "." + sub
			if renamed := renameColumn(nestedKey, s.HeaderRenames); renamed != nestedKey {
				sub = renamed
			}
			c.group = gi
			c.index = index
			c.sub = sub
			c.hookKey = HookKey(g.Output, sub)
			break
		}

		if c.group < 0 && outputs[name] {
			return nil, malformed(1, "column %q collides with a nested group", name)
		}
		if c.group >= 0 {
			key := slot{c.group, c.index, c.sub}
			if prev, dup := slots[key]; dup {
				return nil, malformed(1, "columns %d and %d both map to %s[%s].%s",
					prev+1, i+1, s.NestedGroups[c.group].Output, c.index, c.sub)
			}
			slots[key] = i
		}
		plan[i] = c
	}
	return plan, nil
}

// splitNested parses "<prefix>_<index>_<subfield>" into index and subfield.
// The subfield may itself contain underscores.
func splitNested(name, prefix string) (index, sub string, err error) {
	rest, ok := strings.CutPrefix(name, prefix+"_")
	if !ok {
		return "", "", fmt.Errorf("expected %s_<index>_<field>", prefix)
	}
	index, sub, _ = strings.Cut(rest, "_")
	if !isDigits(index) {
		return "", "", fmt.Errorf("index %q is not a number", index)
	}
	if sub == "" {
		return "", "", errors.New("missing field name after index")
	}
	return index, sub, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// transformRow applies the column plan to one row. The returned RowError
// is nil when the row was accepted.
func (s Schema) transformRow(plan []column, values []string, line int) (Record, *RowError) {
	rec := make(Record, len(plan)+len(s.NestedGroups))
	groups := make([]*nestedGroup, len(s.NestedGroups))
	for i := range groups {
		groups[i] = newNestedGroup()
	}

	rowErr := &RowError{Line: line}
	present := make(map[string]bool, len(plan))

	for i, c := range plan {
		raw := values[i]
		if c.group < 0 {
			present[c.name] = true
		}

		v, err := s.AssignFieldValue(c.hookKey, raw)
		if err != nil {
			rowErr.add(asFieldError(c.hookKey, raw, err))
			continue
		}

		if c.group < 0 {
			rec[c.name] = v
			continue
		}
		groups[c.group].set(c.index, c.sub, v)
	}

	for _, f := range s.RequiredFields {
		if !present[f] {
			rowErr.add(FieldError{
				Kind:    RequiredFieldMissing,
				Field:   f,
				Message: fmt.Sprintf("`%s` is a required field", f),
			})
		}
	}

	if !rowErr.empty() {
		return nil, rowErr
	}

	for i, g := range s.NestedGroups {
		rec[g.Output] = groups[i].list()
	}
	return rec, nil
}

// asFieldError turns a hook error into a FieldError attributed to key.
func asFieldError(key, raw string, err error) FieldError {
	var fe FieldError
	if errors.As(err, &fe) {
		fe.Kind = FieldValidationFailed
		if fe.Field == "" {
			fe.Field = key
		}
		if fe.Value == "" {
			fe.Value = raw
		}
		return fe
	}
	return FieldError{Kind: FieldValidationFailed, Field: key, Value: raw, Message: err.Error()}
}

// nestedGroup collects the sub-records of one group within a row,
// remembering the order in which indexes first appeared.
type nestedGroup struct {
	order []string
	items map[string]map[string]any
}

func newNestedGroup() *nestedGroup {
	return &nestedGroup{items: make(map[string]map[string]any)}
}

func (g *nestedGroup) set(index, sub string, v any) {
	item, ok := g.items[index]
	if !ok {
		item = make(map[string]any)
		g.items[index] = item
		g.order = append(g.order, index)
	}
	item[sub] = v
}

// list returns the sub-records in first-appearance order. Never nil.
func (g *nestedGroup) list() []map[string]any {
	out := make([]map[string]any, 0, len(g.order))
	for _, idx := range g.order {
		out = append(out, g.items[idx])
	}
	return out
}

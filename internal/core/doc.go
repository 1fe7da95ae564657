// Package core turns CSV text into structured records according to a
// declarative, per-record-type Schema.
//
// This package has no transport dependencies. It can be used by the web
// handlers, CLI tools, or tests without modification.
//
// # Schemas
//
// A [Schema] declares header renames, nested groups, required fields, and
// per-field hooks. Schemas are registered at init time using [Register]:
//
//	core.Register(core.Schema{
//	    Name:           "product",
//	    HeaderRenames:  []core.Rename{{Old: "item_id", New: "id"}},
//	    NestedGroups:   []core.NestedGroup{{Prefix: "modifier", Output: "modifiers"}},
//	    RequiredFields: []string{"price_type"},
//	    Hooks: map[string]core.Hook{
//	        "price_type":      core.OneOf("price_type", "system", "open"),
//	        "modifiers__name": core.Trim(),
//	    },
//	})
//
// # Transformation
//
// [Schema.Transform] reads the header, normalizes it (lowercase, trimmed,
// spaces to underscores, then renamed) and transforms each data row:
//
//   - Columns matching a nested group prefix are parsed as
//     <prefix>_<index>_<field> and collected into a list of sub-records,
//     one per index, in order of first appearance
//   - Other columns become flat fields
//   - Each value passes through the hook registered for its field, if any
//
// # Errors
//
// A row is rejected when a required field is missing or a hook fails. All
// errors of that row are reported together in a [ValidationError] and the
// run stops. Structurally broken input yields a [MalformedInputError].
// Technical errors are mapped to user-facing messages using [MapError].
package core

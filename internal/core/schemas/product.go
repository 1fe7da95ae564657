package schemas

import "github.com/JonMunkholm/csvtransform/internal/core"

func init() {
	core.Register(Product())
}

// Product describes product rows. Modifiers are flattened as
// modifier_<n>_<field> columns.
func Product() core.Schema {
	return core.Schema{
		Name: "product",
		HeaderRenames: []core.Rename{
			{Old: "item_id", New: "id"},
		},
		NestedGroups: []core.NestedGroup{
			{Prefix: "modifier", Output: "modifiers"},
		},
		RequiredFields: []string{"price_type"},
		Hooks: map[string]core.Hook{
			"price_type":       core.OneOf("price_type", "system", "open"),
			"price":            core.Decimal("price"),
			"modifiers__name":  core.Trim(),
			"modifiers__price": core.Decimal("modifiers.price"),
		},
	}
}

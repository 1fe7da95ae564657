package schemas

import (
	"strings"

	"github.com/JonMunkholm/csvtransform/internal/core"
)

func init() {
	core.Register(NetSuiteInvoice())
}

// NetSuiteInvoice describes NetSuite invoice exports with the invoice
// lines flattened as line_<n>_<field> columns.
func NetSuiteInvoice() core.Schema {
	return core.Schema{
		Name: "netsuite_invoice",
		HeaderRenames: []core.Rename{
			{Old: "document_number", New: "invoice_number"},
			{Old: "lines.qty", New: "quantity"},
		},
		NestedGroups: []core.NestedGroup{
			{Prefix: "line", Output: "lines"},
		},
		RequiredFields: []string{"invoice_number", "customer_internal_id"},
		Hooks: map[string]core.Hook{
			"invoice_number":       core.Trim(),
			"customer_internal_id": core.Trim(),
			"date":                 core.Date("date"),
			"date_due":             core.Date("date_due"),
			"type":                 core.Chain(core.Trim(), lower, core.OneOf("type", "invoice", "credit_memo")),
			"amount":               core.Decimal("amount"),
			"lines__item":          core.Trim(),
			"lines__quantity":      core.Decimal("lines.quantity"),
			"lines__unit_price":    core.Decimal("lines.unit_price"),
			"lines__amount":        core.Decimal("lines.amount"),
			"lines__start_date":    core.Date("lines.start_date"),
			"lines__end_date":      core.Date("lines.end_date"),
		},
	}
}

func lower(raw string) (any, error) { return strings.ToLower(raw), nil }

func upper(raw string) (any, error) { return strings.ToUpper(raw), nil }

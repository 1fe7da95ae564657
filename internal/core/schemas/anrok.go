package schemas

import "github.com/JonMunkholm/csvtransform/internal/core"

func init() {
	core.Register(AnrokTransaction())
}

// AnrokTransaction describes rows of the Anrok tax transaction report.
func AnrokTransaction() core.Schema {
	return core.Schema{
		Name: "anrok_transaction",
		HeaderRenames: []core.Rename{
			{Old: "transaction_currency", New: "currency"},
			{Old: "void", New: "voided"},
		},
		RequiredFields: []string{"transaction_id", "invoice_date"},
		Hooks: map[string]core.Hook{
			"transaction_id": core.Trim(),
			"customer_id":    core.Trim(),
			"invoice_date":   core.Date("invoice_date"),
			"tax_date":       core.Date("tax_date"),
			"currency":       core.Chain(core.Trim(), upper),
			"sales_amount":   core.Decimal("sales_amount"),
			"tax_amount":     core.Decimal("tax_amount"),
			"invoice_amount": core.Decimal("invoice_amount"),
			"voided":         core.Bool("voided"),
		},
	}
}

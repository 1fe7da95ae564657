package schemas

import "github.com/JonMunkholm/csvtransform/internal/core"

func init() {
	core.Register(SalesforceCustomer())
}

// SalesforceCustomer describes Salesforce account exports.
func SalesforceCustomer() core.Schema {
	return core.Schema{
		Name: "salesforce_customer",
		HeaderRenames: []core.Rename{
			{Old: "account_id_casesafe", New: "account_id"},
			{Old: "account_id_18", New: "account_id"},
		},
		RequiredFields: []string{"account_id"},
		Hooks: map[string]core.Hook{
			"account_id":    core.Trim(),
			"account_name":  core.Trim(),
			"last_activity": core.Date("last_activity"),
			"active":        core.Bool("active"),
			"external_id":   core.UUID("external_id"),
		},
	}
}

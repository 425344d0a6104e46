package domain

import "github.com/shopspring/decimal"

// GroupCurrency represents a currency configured for a group.
// Accounts, records and transfers reference it by id.
type GroupCurrency struct {
	CurrencyID string          `json:"currencyID"` // Primary Key (UUID)
	Name       string          `json:"name"`       // e.g. "US Dollar"
	Symbol     string          `json:"symbol"`     // 3-letter uppercase code, e.g. "USD"
	Rate       decimal.Decimal `json:"rate"`       // Rate against the group's base currency
	GroupID    string          `json:"groupID"`    // FK -> groups.group_id (Not Null)
	AuditFields
}

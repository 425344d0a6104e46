package models

import "github.com/shopspring/decimal"

// GroupCurrency represents a row in the group_currencies table.
type GroupCurrency struct {
	CurrencyID string          `db:"currency_id"`
	Name       string          `db:"name"`
	Symbol     string          `db:"symbol"`
	Rate       decimal.Decimal `db:"rate"`
	GroupID    string          `db:"group_id"`
	AuditFields
}

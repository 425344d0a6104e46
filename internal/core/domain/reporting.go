package domain

import (
	"github.com/shopspring/decimal"
)

// BalanceReport summarises a user's records for one calendar month.
// Income and Expense are signed sums of the respective record types, so
// CashFlow = Income + Expense. Month is a "YYYY-MM" key.
type BalanceReport struct {
	Month        string          `json:"month"`
	CashFlow     decimal.Decimal `json:"cashFlow"`
	Income       decimal.Decimal `json:"income"`
	Expense      decimal.Decimal `json:"expense"`
	StartBalance decimal.Decimal `json:"startBalance"` // Balance across all accounts before the month
	EndBalance   decimal.Decimal `json:"endBalance"`   // Balance across all accounts at month end
}

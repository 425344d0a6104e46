package models

// Account represents a row in the accounts table.
// There is no balance column; balances are derived from records.
type Account struct {
	AccountID  string `db:"account_id"`
	Name       string `db:"name"`
	CurrencyID string `db:"currency_id"`
	UserID     string `db:"user_id"`
	AuditFields
}

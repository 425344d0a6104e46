package domain

// Account represents a financial account owned by a single user and
// denominated in a single currency. Its balance is derived from the sum of
// its records and is never stored.
type Account struct {
	AccountID  string `json:"accountID"`  // Primary Key (UUID)
	Name       string `json:"name"`       // User-defined name
	CurrencyID string `json:"currencyID"` // FK -> group_currencies.currency_id (Not Null)
	UserID     string `json:"userID"`     // FK -> users.user_id (Not Null)
	AuditFields
}

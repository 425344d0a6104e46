package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transfer represents a row in the transfers table. Its two child records
// live in the records table with transfer_id set.
type Transfer struct {
	TransferID      string          `db:"transfer_id"`
	Amount          decimal.Decimal `db:"amount"`
	CurrencyID      string          `db:"currency_id"`
	SourceAccountID string          `db:"source_account_id"`
	TargetAccountID string          `db:"target_account_id"`
	UserID          string          `db:"user_id"`
	Date            time.Time       `db:"date"`
	Description     string          `db:"description"`
	AuditFields
}

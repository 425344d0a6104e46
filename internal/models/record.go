package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordType indicates whether a record adds to or subtracts from an account.
type RecordType string

const (
	Income  RecordType = "INCOME"
	Expense RecordType = "EXPENSE"
)

// Record represents a row in the records table.
type Record struct {
	RecordID      string          `db:"record_id"`
	Amount        decimal.Decimal `db:"amount"`
	RecordType    RecordType      `db:"record_type"`
	PaymentMethod string          `db:"payment_method"`
	Description   string          `db:"description"`
	Date          time.Time       `db:"date"`
	AccountID     string          `db:"account_id"`
	CurrencyID    string          `db:"currency_id"`
	CategoryID    string          `db:"category_id"` // Nullable
	UserID        string          `db:"user_id"`
	TransferID    *string         `db:"transfer_id"` // Nullable
	AuditFields
}

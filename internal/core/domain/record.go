package domain

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

// PaymentMethod indicates how a record was paid.
type PaymentMethod string

const (
	PaymentCash         PaymentMethod = "CASH"
	PaymentDebitCard    PaymentMethod = "DEBIT_CARD"
	PaymentCreditCard   PaymentMethod = "CREDIT_CARD"
	PaymentBankTransfer PaymentMethod = "BANK_TRANSFER"
	PaymentMobile       PaymentMethod = "MOBILE"
	PaymentInternet     PaymentMethod = "INTERNET"
)

// Record represents a single-sided monetary movement against one account.
// EXPENSE records carry a non-positive amount, INCOME records a non-negative
// one. A record with a non-nil TransferID is owned by that transfer: its
// type, amount sign and account are fully determined by the transfer and it
// must never be edited independently of it.
type Record struct {
	RecordID      string          `json:"recordID"` // Primary Key (UUID)
	Amount        decimal.Decimal `json:"amount"`   // Signed; sign follows RecordType
	RecordType    RecordType      `json:"recordType"`
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
	Description   string          `json:"description"`
	Date          time.Time       `json:"date"`
	AccountID     string          `json:"accountID"`            // FK -> accounts.account_id (Not Null)
	CurrencyID    string          `json:"currencyID"`           // FK -> group_currencies.currency_id (Not Null)
	CategoryID    string          `json:"categoryID"`           // Nullable FK -> group_categories.category_id
	UserID        string          `json:"userID"`               // FK -> users.user_id (Not Null)
	TransferID    *string         `json:"transferID,omitempty"` // Nullable FK -> transfers.transfer_id
	AuditFields
}

// IsTransactional reports whether the record is owned by a transfer.
func (r Record) IsTransactional() bool {
	return r.TransferID != nil
}

// NormalizedAmount applies the sign convention for the record type to an
// entered magnitude: EXPENSE stores the negative of the magnitude, INCOME
// the magnitude itself.
func NormalizedAmount(recordType RecordType, amount decimal.Decimal) decimal.Decimal {
	if recordType == Expense {
		return amount.Abs().Neg()
	}
	return amount.Abs()
}

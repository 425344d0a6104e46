package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transfer represents a movement of money between two accounts. It owns
// exactly two mirrored records: an EXPENSE record on the source account and
// an INCOME record on the target account, created, updated and deleted
// atomically with it.
type Transfer struct {
	TransferID      string          `json:"transferID"` // Primary Key (UUID)
	Amount          decimal.Decimal `json:"amount"`     // Stored as supplied; a negative amount flips direction
	CurrencyID      string          `json:"currencyID"` // FK -> group_currencies.currency_id (Not Null)
	SourceAccountID string          `json:"sourceAccountID"`
	TargetAccountID string          `json:"targetAccountID"`
	UserID          string          `json:"userID"` // Owner; transfers are only visible to their owner
	Date            time.Time       `json:"date"`
	Description     string          `json:"description"`
	AuditFields

	// Records is the owned pair, populated on create and fetch.
	Records *RecordPair `json:"records,omitempty"`
}

// RecordPair is the owned pair of mirrored records backing one transfer.
// Modelling the pair as a single value keeps the mirrored invariant a
// property of the type rather than of scattered query logic.
type RecordPair struct {
	Source Record `json:"source"` // EXPENSE side, amount <= 0 for positive transfers
	Target Record `json:"target"` // INCOME side, amount >= 0 for positive transfers
}

// SourceAmount returns the signed amount for the expense side of a transfer.
func SourceAmount(amount decimal.Decimal) decimal.Decimal {
	if amount.IsPositive() {
		return amount.Neg()
	}
	return amount
}

// TargetAmount returns the signed amount for the income side of a transfer.
func TargetAmount(amount decimal.Decimal) decimal.Decimal {
	if amount.IsNegative() {
		return amount.Neg()
	}
	return amount
}

// DeriveRecords builds the record pair for the transfer. The record ids are
// assigned by the caller so the same derivation serves both posting (fresh
// ids) and reposting (ids of the existing pair).
func (t Transfer) DeriveRecords(sourceRecordID, targetRecordID string) RecordPair {
	source := Record{
		RecordID:    sourceRecordID,
		Amount:      SourceAmount(t.Amount),
		RecordType:  Expense,
		AccountID:   t.SourceAccountID,
		CurrencyID:  t.CurrencyID,
		UserID:      t.UserID,
		TransferID:  &t.TransferID,
		Date:        t.Date,
		Description: t.Description,
		AuditFields: t.AuditFields,
	}
	target := Record{
		RecordID:    targetRecordID,
		Amount:      TargetAmount(t.Amount),
		RecordType:  Income,
		AccountID:   t.TargetAccountID,
		CurrencyID:  t.CurrencyID,
		UserID:      t.UserID,
		TransferID:  &t.TransferID,
		Date:        t.Date,
		Description: t.Description,
		AuditFields: t.AuditFields,
	}
	return RecordPair{Source: source, Target: target}
}

// Balanced reports whether the two record amounts still mirror each other.
func (p RecordPair) Balanced() bool {
	return p.Source.Amount.Add(p.Target.Amount).IsZero()
}

package dto

import (
	"time"

	"github.com/monetario-app/monetario/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateRecordRequest defines the data needed to create a new record.
// Amount is an entered magnitude; the service applies the sign convention
// for the record type.
type CreateRecordRequest struct {
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	RecordType    string          `json:"recordType" binding:"required,oneof=INCOME EXPENSE"`
	PaymentMethod string          `json:"paymentMethod" binding:"omitempty,oneof=CASH DEBIT_CARD CREDIT_CARD BANK_TRANSFER MOBILE INTERNET"`
	AccountID     string          `json:"accountID" binding:"required"`
	CurrencyID    string          `json:"currencyID" binding:"required"`
	CategoryID    string          `json:"categoryID" binding:"required"`
	Date          time.Time       `json:"date"`
	Description   string          `json:"description"`
}

// UpdateRecordRequest defines the data allowed for updating a record.
// Pointers distinguish zero-value updates from fields not provided.
type UpdateRecordRequest struct {
	Amount        *decimal.Decimal `json:"amount"`
	RecordType    *string          `json:"recordType" binding:"omitempty,oneof=INCOME EXPENSE"`
	PaymentMethod *string          `json:"paymentMethod" binding:"omitempty,oneof=CASH DEBIT_CARD CREDIT_CARD BANK_TRANSFER MOBILE INTERNET"`
	AccountID     *string          `json:"accountID"`
	CurrencyID    *string          `json:"currencyID"`
	CategoryID    *string          `json:"categoryID"`
	Date          *time.Time       `json:"date"`
	Description   *string          `json:"description"`
}

// RecordResponse defines the data returned for a record.
type RecordResponse struct {
	RecordID      string          `json:"recordID"`
	Amount        decimal.Decimal `json:"amount"`
	RecordType    string          `json:"recordType"`
	PaymentMethod string          `json:"paymentMethod"`
	Description   string          `json:"description"`
	Date          time.Time       `json:"date"`
	AccountID     string          `json:"accountID"`
	CurrencyID    string          `json:"currencyID"`
	CategoryID    string          `json:"categoryID,omitempty"`
	UserID        string          `json:"userID"`
	TransferID    *string         `json:"transferID,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

// ListRecordsParams defines query parameters for listing records.
type ListRecordsParams struct {
	AccountID string  `form:"accountID"`
	Limit     int     `form:"limit,default=20"`
	NextToken *string `form:"nextToken"`
}

// ListRecordsResponse wraps a page of records with the cursor for the next page.
type ListRecordsResponse struct {
	Records   []RecordResponse `json:"records"`
	NextToken *string          `json:"nextToken,omitempty"`
}

// ToRecordResponse converts a domain.Record to RecordResponse DTO
func ToRecordResponse(r *domain.Record) RecordResponse {
	return RecordResponse{
		RecordID:      r.RecordID,
		Amount:        r.Amount,
		RecordType:    string(r.RecordType),
		PaymentMethod: string(r.PaymentMethod),
		Description:   r.Description,
		Date:          r.Date,
		AccountID:     r.AccountID,
		CurrencyID:    r.CurrencyID,
		CategoryID:    r.CategoryID,
		UserID:        r.UserID,
		TransferID:    r.TransferID,
		CreatedAt:     r.CreatedAt,
		LastUpdatedAt: r.LastUpdatedAt,
	}
}

// ToRecordResponses converts a slice of domain.Record to []RecordResponse
func ToRecordResponses(records []domain.Record) []RecordResponse {
	responses := make([]RecordResponse, len(records))
	for i := range records {
		responses[i] = ToRecordResponse(&records[i])
	}
	return responses
}

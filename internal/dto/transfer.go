package dto

import (
	"time"

	"github.com/monetario-app/monetario/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransferRequest defines the data needed to post a transfer between
// two accounts. Amount is positive by convention; a negative amount is
// accepted and flips the direction of the derived record pair.
type CreateTransferRequest struct {
	Amount          decimal.Decimal `json:"amount" binding:"required"`
	CurrencyID      string          `json:"currencyID" binding:"required"`
	SourceAccountID string          `json:"sourceAccountID" binding:"required"`
	TargetAccountID string          `json:"targetAccountID" binding:"required"`
	Date            time.Time       `json:"date"`
	Description     string          `json:"description"`
}

// UpdateTransferRequest carries the full replacement state for a transfer;
// reposting overwrites all mutable fields.
type UpdateTransferRequest struct {
	Amount          decimal.Decimal `json:"amount" binding:"required"`
	CurrencyID      string          `json:"currencyID" binding:"required"`
	SourceAccountID string          `json:"sourceAccountID" binding:"required"`
	TargetAccountID string          `json:"targetAccountID" binding:"required"`
	Date            time.Time       `json:"date"`
	Description     string          `json:"description"`
}

// RecordPairResponse exposes the two records owned by a transfer.
type RecordPairResponse struct {
	Source RecordResponse `json:"source"`
	Target RecordResponse `json:"target"`
}

// TransferResponse defines the data returned for a transfer.
type TransferResponse struct {
	TransferID      string              `json:"transferID"`
	Amount          decimal.Decimal     `json:"amount"`
	CurrencyID      string              `json:"currencyID"`
	SourceAccountID string              `json:"sourceAccountID"`
	TargetAccountID string              `json:"targetAccountID"`
	UserID          string              `json:"userID"`
	Date            time.Time           `json:"date"`
	Description     string              `json:"description"`
	Records         *RecordPairResponse `json:"records,omitempty"`
	CreatedAt       time.Time           `json:"createdAt"`
	LastUpdatedAt   time.Time           `json:"lastUpdatedAt"`
}

// ListTransfersParams defines query parameters for listing transfers.
type ListTransfersParams struct {
	Limit     int     `form:"limit,default=20"`
	NextToken *string `form:"nextToken"`
}

// ListTransfersResponse wraps a page of transfers with the next-page cursor.
type ListTransfersResponse struct {
	Transfers []TransferResponse `json:"transfers"`
	NextToken *string            `json:"nextToken,omitempty"`
}

// ToTransferResponse converts a domain.Transfer to TransferResponse DTO
func ToTransferResponse(t *domain.Transfer) TransferResponse {
	resp := TransferResponse{
		TransferID:      t.TransferID,
		Amount:          t.Amount,
		CurrencyID:      t.CurrencyID,
		SourceAccountID: t.SourceAccountID,
		TargetAccountID: t.TargetAccountID,
		UserID:          t.UserID,
		Date:            t.Date,
		Description:     t.Description,
		CreatedAt:       t.CreatedAt,
		LastUpdatedAt:   t.LastUpdatedAt,
	}
	if t.Records != nil {
		resp.Records = &RecordPairResponse{
			Source: ToRecordResponse(&t.Records.Source),
			Target: ToRecordResponse(&t.Records.Target),
		}
	}
	return resp
}

// ToTransferResponses converts a slice of domain.Transfer to []TransferResponse
func ToTransferResponses(transfers []domain.Transfer) []TransferResponse {
	responses := make([]TransferResponse, len(transfers))
	for i := range transfers {
		responses[i] = ToTransferResponse(&transfers[i])
	}
	return responses
}

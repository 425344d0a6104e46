package dto

import (
	"time"

	"github.com/monetario-app/monetario/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateCurrencyRequest defines the data needed to add a currency to a group.
// Symbol must be a three letter uppercase code, enforced by the
// currencysymbol custom validator registered at startup.
type CreateCurrencyRequest struct {
	Name   string          `json:"name" binding:"required"`
	Symbol string          `json:"symbol" binding:"required,currencysymbol"`
	Rate   decimal.Decimal `json:"rate"`
}

// UpdateCurrencyRequest defines the data allowed for updating a currency.
type UpdateCurrencyRequest struct {
	Name *string          `json:"name"`
	Rate *decimal.Decimal `json:"rate"`
}

// CurrencyResponse defines the data returned for a group currency.
type CurrencyResponse struct {
	CurrencyID    string          `json:"currencyID"`
	Name          string          `json:"name"`
	Symbol        string          `json:"symbol"`
	Rate          decimal.Decimal `json:"rate"`
	GroupID       string          `json:"groupID"`
	CreatedAt     time.Time       `json:"createdAt"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

// ListCurrenciesResponse wraps the list of currencies.
type ListCurrenciesResponse struct {
	Currencies []CurrencyResponse `json:"currencies"`
}

// ToCurrencyResponse converts a domain.GroupCurrency to CurrencyResponse DTO
func ToCurrencyResponse(c *domain.GroupCurrency) CurrencyResponse {
	return CurrencyResponse{
		CurrencyID:    c.CurrencyID,
		Name:          c.Name,
		Symbol:        c.Symbol,
		Rate:          c.Rate,
		GroupID:       c.GroupID,
		CreatedAt:     c.CreatedAt,
		LastUpdatedAt: c.LastUpdatedAt,
	}
}

// ToListCurrenciesResponse converts a slice of domain.GroupCurrency to the list DTO
func ToListCurrenciesResponse(currencies []domain.GroupCurrency) ListCurrenciesResponse {
	res := make([]CurrencyResponse, len(currencies))
	for i := range currencies {
		res[i] = ToCurrencyResponse(&currencies[i])
	}
	return ListCurrenciesResponse{Currencies: res}
}

package services

import (
	"context"

	"github.com/monetario-app/monetario/internal/core/domain"
	"github.com/monetario-app/monetario/internal/dto"
)

// CurrencySvcFacade defines operations for managing group currencies
type CurrencySvcFacade interface {
	// CreateCurrency adds a currency to the user's group.
	CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest, creatorUserID string) (*domain.GroupCurrency, error)

	// GetCurrencyByID retrieves a currency by ID.
	GetCurrencyByID(ctx context.Context, currencyID string) (*domain.GroupCurrency, error)

	// ListCurrencies retrieves all currencies in a group.
	ListCurrencies(ctx context.Context, groupID string) ([]domain.GroupCurrency, error)

	// UpdateCurrency updates an existing currency's details.
	UpdateCurrency(ctx context.Context, currencyID string, req dto.UpdateCurrencyRequest, requestingUserID string) (*domain.GroupCurrency, error)

	// DeleteCurrency removes a currency.
	DeleteCurrency(ctx context.Context, currencyID string, requestingUserID string) error
}

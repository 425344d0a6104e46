package repositories

import (
	"context"

	"github.com/monetario-app/monetario/internal/core/domain"
)

// CurrencyReader defines read operations for currency data
type CurrencyReader interface {
	// FindCurrencyByID retrieves a specific currency by its unique identifier.
	FindCurrencyByID(ctx context.Context, currencyID string) (*domain.GroupCurrency, error)

	// ListCurrenciesByGroup retrieves all currencies defined in a group.
	ListCurrenciesByGroup(ctx context.Context, groupID string) ([]domain.GroupCurrency, error)
}

// CurrencyWriter defines write operations for currency data
type CurrencyWriter interface {
	// SaveCurrency persists a new currency.
	SaveCurrency(ctx context.Context, currency domain.GroupCurrency) error

	// UpdateCurrency updates an existing currency's details.
	UpdateCurrency(ctx context.Context, currency domain.GroupCurrency) error

	// DeleteCurrency removes a currency.
	DeleteCurrency(ctx context.Context, currencyID string) error
}

// CurrencyRepositoryFacade combines all currency-related repository interfaces
type CurrencyRepositoryFacade interface {
	CurrencyReader
	CurrencyWriter
}

package repositories

import (
	"context"

	"github.com/monetario-app/monetario/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReportingRepository defines operations for retrieving financial report data
type ReportingRepository interface {
	// GetMonthlyBalanceData retrieves per-month income/expense aggregates for a
	// user's records in the given year. Accounts may optionally be narrowed to
	// a single account. Months without records are absent from the result.
	GetMonthlyBalanceData(ctx context.Context, userID string, year int, accountID *string) ([]domain.BalanceReport, error)

	// GetBalanceBefore returns the sum of record amounts for a user dated
	// strictly before the start of the given year.
	GetBalanceBefore(ctx context.Context, userID string, year int, accountID *string) (decimal.Decimal, error)
}

package services

import (
	"context"

	"github.com/monetario-app/monetario/internal/dto"
)

// ReportingService defines operations for generating financial reports
type ReportingService interface {
	// GetBalanceReport aggregates the user's records into per-month income,
	// expense, cash flow, and running balance figures for the given year.
	GetBalanceReport(ctx context.Context, userID string, params dto.BalanceReportParams) (*dto.BalanceReportResponse, error)
}

package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/monetario-app/monetario/internal/core/domain"
	portsrepo "github.com/monetario-app/monetario/internal/core/ports/repositories"
	portssvc "github.com/monetario-app/monetario/internal/core/ports/services"
	"github.com/monetario-app/monetario/internal/dto"
	"github.com/monetario-app/monetario/internal/middleware"
	"github.com/shopspring/decimal"
)

// reportingService aggregates records into monthly balance reports.
type reportingService struct {
	reportingRepo portsrepo.ReportingRepository
}

// NewReportingService creates a new ReportingService.
func NewReportingService(reportingRepo portsrepo.ReportingRepository) portssvc.ReportingService {
	return &reportingService{reportingRepo: reportingRepo}
}

var _ portssvc.ReportingService = (*reportingService)(nil)

// GetBalanceReport builds the twelve month entries for a year. Each month
// carries the income and expense sums, their cash flow, and a running balance
// seeded from all records before the year started.
func (s *reportingService) GetBalanceReport(ctx context.Context, userID string, params dto.BalanceReportParams) (*dto.BalanceReportResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	year := params.Year
	if year == 0 {
		year = time.Now().UTC().Year()
	}

	var accountID *string
	if params.AccountID != "" {
		accountID = &params.AccountID
	}

	opening, err := s.reportingRepo.GetBalanceBefore(ctx, userID, year, accountID)
	if err != nil {
		logger.Error("Failed to fetch opening balance", slog.String("error", err.Error()), slog.String("user_id", userID), slog.Int("year", year))
		return nil, fmt.Errorf("failed to fetch opening balance: %w", err)
	}

	rows, err := s.reportingRepo.GetMonthlyBalanceData(ctx, userID, year, accountID)
	if err != nil {
		logger.Error("Failed to fetch monthly balance data", slog.String("error", err.Error()), slog.String("user_id", userID), slog.Int("year", year))
		return nil, fmt.Errorf("failed to fetch monthly balance data: %w", err)
	}

	byMonth := make(map[string]domain.BalanceReport, len(rows))
	for _, row := range rows {
		byMonth[row.Month] = row
	}

	report := make([]domain.BalanceReport, 0, 12)
	balance := opening
	for m := 1; m <= 12; m++ {
		month := fmt.Sprintf("%04d-%02d", year, m)
		entry := domain.BalanceReport{
			Month:   month,
			Income:  decimal.Zero,
			Expense: decimal.Zero,
		}
		if row, ok := byMonth[month]; ok {
			entry.Income = row.Income
			entry.Expense = row.Expense
		}
		// Expense sums are stored negative; adding both yields the net flow.
		entry.CashFlow = entry.Income.Add(entry.Expense)
		entry.StartBalance = balance
		balance = balance.Add(entry.CashFlow)
		entry.EndBalance = balance
		report = append(report, entry)
	}

	resp := dto.ToBalanceReportResponse(year, report)
	return &resp, nil
}

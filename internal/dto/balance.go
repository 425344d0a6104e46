package dto

import (
	"github.com/monetario-app/monetario/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BalanceReportParams defines the query parameters for the monthly report.
// Year defaults to the current year when omitted.
type BalanceReportParams struct {
	Year      int    `form:"year"`
	AccountID string `form:"accountID"`
}

// BalanceReportEntry is one month of aggregated cash flow.
type BalanceReportEntry struct {
	Month        string          `json:"month"`
	Income       decimal.Decimal `json:"income"`
	Expense      decimal.Decimal `json:"expense"`
	CashFlow     decimal.Decimal `json:"cashFlow"`
	StartBalance decimal.Decimal `json:"startBalance"`
	EndBalance   decimal.Decimal `json:"endBalance"`
}

// BalanceReportResponse wraps the month entries for a year.
type BalanceReportResponse struct {
	Year    int                  `json:"year"`
	Entries []BalanceReportEntry `json:"entries"`
}

// ToBalanceReportResponse converts domain report rows to the response DTO
func ToBalanceReportResponse(year int, rows []domain.BalanceReport) BalanceReportResponse {
	entries := make([]BalanceReportEntry, len(rows))
	for i, r := range rows {
		entries[i] = BalanceReportEntry{
			Month:        r.Month,
			Income:       r.Income,
			Expense:      r.Expense,
			CashFlow:     r.CashFlow,
			StartBalance: r.StartBalance,
			EndBalance:   r.EndBalance,
		}
	}
	return BalanceReportResponse{Year: year, Entries: entries}
}

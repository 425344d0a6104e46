package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/monetario-app/monetario/internal/apperrors"
	"github.com/monetario-app/monetario/internal/core/domain"
	portsrepo "github.com/monetario-app/monetario/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

type reportingRepository struct {
	BaseRepository
}

// newReportingRepository creates a new repository for report aggregates.
func newReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure reportingRepository implements portsrepo.ReportingRepository
var _ portsrepo.ReportingRepository = (*reportingRepository)(nil)

// GetMonthlyBalanceData aggregates the user's records into per-month income
// and expense sums for the given year. Expense sums keep their negative sign.
func (r *reportingRepository) GetMonthlyBalanceData(ctx context.Context, userID string, year int, accountID *string) ([]domain.BalanceReport, error) {
	query := `
		SELECT to_char(date_trunc('month', date), 'YYYY-MM') AS month,
		       COALESCE(SUM(amount) FILTER (WHERE record_type = 'INCOME'), 0) AS income,
		       COALESCE(SUM(amount) FILTER (WHERE record_type = 'EXPENSE'), 0) AS expense
		FROM records
		WHERE user_id = $1
		  AND date >= make_date($2, 1, 1)
		  AND date < make_date($2 + 1, 1, 1)
		  AND ($3::text IS NULL OR account_id = $3)
		GROUP BY 1
		ORDER BY 1;
	`
	rows, err := r.Pool.Query(ctx, query, userID, year, accountID)
	if err != nil {
		return nil, apperrors.NewAppError(500, fmt.Sprintf("failed to query monthly balance data for user %s year %d", userID, year), err)
	}
	defer rows.Close()

	report := []domain.BalanceReport{}
	for rows.Next() {
		var entry domain.BalanceReport
		if err := rows.Scan(&entry.Month, &entry.Income, &entry.Expense); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan monthly balance row", err)
		}
		report = append(report, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating monthly balance rows", err)
	}

	return report, nil
}

// GetBalanceBefore returns the sum of record amounts for a user dated
// strictly before the start of the given year.
func (r *reportingRepository) GetBalanceBefore(ctx context.Context, userID string, year int, accountID *string) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM records
		WHERE user_id = $1
		  AND date < make_date($2, 1, 1)
		  AND ($3::text IS NULL OR account_id = $3);
	`
	var sum decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, userID, year, accountID).Scan(&sum); err != nil {
		return decimal.Zero, apperrors.NewAppError(500, fmt.Sprintf("failed to query opening balance for user %s year %d", userID, year), err)
	}
	return sum, nil
}

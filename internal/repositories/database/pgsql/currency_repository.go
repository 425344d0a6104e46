package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/monetario-app/monetario/internal/apperrors"
	"github.com/monetario-app/monetario/internal/core/domain"
	portsrepo "github.com/monetario-app/monetario/internal/core/ports/repositories"
	"github.com/monetario-app/monetario/internal/models"
	"github.com/monetario-app/monetario/internal/utils/mapping"
)

type PgxCurrencyRepository struct {
	BaseRepository
}

// newPgxCurrencyRepository creates a new repository for group currency data.
func newPgxCurrencyRepository(pool *pgxpool.Pool) portsrepo.CurrencyRepositoryFacade {
	return &PgxCurrencyRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxCurrencyRepository implements portsrepo.CurrencyRepositoryFacade
var _ portsrepo.CurrencyRepositoryFacade = (*PgxCurrencyRepository)(nil)

const currencySelectColumns = `
	SELECT currency_id, name, symbol, rate, group_id,
	       created_at, created_by, last_updated_at, last_updated_by
`

func scanCurrency(row pgx.Row) (models.GroupCurrency, error) {
	var m models.GroupCurrency
	err := row.Scan(
		&m.CurrencyID,
		&m.Name,
		&m.Symbol,
		&m.Rate,
		&m.GroupID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveCurrency persists a new currency.
func (r *PgxCurrencyRepository) SaveCurrency(ctx context.Context, currency domain.GroupCurrency) error {
	m := mapping.ToModelGroupCurrency(currency)
	query := `
		INSERT INTO group_currencies (
			currency_id, name, symbol, rate, group_id,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.CurrencyID,
		m.Name,
		m.Symbol,
		m.Rate,
		m.GroupID,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert currency "+m.CurrencyID, err)
	}
	return nil
}

// FindCurrencyByID retrieves a currency by its ID.
func (r *PgxCurrencyRepository) FindCurrencyByID(ctx context.Context, currencyID string) (*domain.GroupCurrency, error) {
	query := currencySelectColumns + `
		FROM group_currencies
		WHERE currency_id = $1;
	`
	m, err := scanCurrency(r.Pool.QueryRow(ctx, query, currencyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find currency by ID "+currencyID, err)
	}

	domainCurrency := mapping.ToDomainGroupCurrency(m)
	return &domainCurrency, nil
}

// ListCurrenciesByGroup retrieves all currencies defined in a group.
func (r *PgxCurrencyRepository) ListCurrenciesByGroup(ctx context.Context, groupID string) ([]domain.GroupCurrency, error) {
	query := currencySelectColumns + `
		FROM group_currencies
		WHERE group_id = $1
		ORDER BY symbol;
	`
	rows, err := r.Pool.Query(ctx, query, groupID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query currencies for group "+groupID, err)
	}
	defer rows.Close()

	currencies := []models.GroupCurrency{}
	for rows.Next() {
		m, err := scanCurrency(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan currency row for group "+groupID, err)
		}
		currencies = append(currencies, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating currency rows for group "+groupID, err)
	}

	return mapping.ToDomainGroupCurrencySlice(currencies), nil
}

// UpdateCurrency updates an existing currency's details. The symbol is
// immutable once created.
func (r *PgxCurrencyRepository) UpdateCurrency(ctx context.Context, currency domain.GroupCurrency) error {
	m := mapping.ToModelGroupCurrency(currency)
	query := `
		UPDATE group_currencies
		SET name = $2, rate = $3, last_updated_at = $4, last_updated_by = $5
		WHERE currency_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.CurrencyID,
		m.Name,
		m.Rate,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update currency "+m.CurrencyID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteCurrency removes a currency.
func (r *PgxCurrencyRepository) DeleteCurrency(ctx context.Context, currencyID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM group_currencies WHERE currency_id = $1;`, currencyID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete currency "+currencyID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/monetario-app/monetario/internal/apperrors"
	"github.com/monetario-app/monetario/internal/core/domain"
	portsrepo "github.com/monetario-app/monetario/internal/core/ports/repositories"
	"github.com/monetario-app/monetario/internal/models"
	"github.com/monetario-app/monetario/internal/utils/mapping"
	"github.com/monetario-app/monetario/internal/utils/pagination"
)

type PgxRecordRepository struct {
	BaseRepository
}

// newPgxRecordRepository creates a new repository for record data.
func newPgxRecordRepository(pool *pgxpool.Pool) portsrepo.RecordRepositoryFacade {
	return &PgxRecordRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxRecordRepository implements portsrepo.RecordRepositoryFacade
var _ portsrepo.RecordRepositoryFacade = (*PgxRecordRepository)(nil)

const recordSelectColumns = `
	SELECT record_id, amount, record_type, payment_method, description, date,
	       account_id, currency_id, category_id, user_id, transfer_id,
	       created_at, created_by, last_updated_at, last_updated_by
`

// scanRecord reads one records row, handling the nullable category and
// transfer references.
func scanRecord(row pgx.Row) (models.Record, error) {
	var m models.Record
	var categoryID sql.NullString
	var transferID sql.NullString

	err := row.Scan(
		&m.RecordID,
		&m.Amount,
		&m.RecordType,
		&m.PaymentMethod,
		&m.Description,
		&m.Date,
		&m.AccountID,
		&m.CurrencyID,
		&categoryID,
		&m.UserID,
		&transferID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return models.Record{}, err
	}

	if categoryID.Valid {
		m.CategoryID = categoryID.String
	}
	if transferID.Valid {
		m.TransferID = &transferID.String
	}
	return m, nil
}

// SaveRecord persists a new standalone record.
func (r *PgxRecordRepository) SaveRecord(ctx context.Context, record domain.Record) error {
	m := mapping.ToModelRecord(record)
	_, err := r.Pool.Exec(ctx, insertRecordQuery,
		m.RecordID,
		m.Amount,
		m.RecordType,
		m.PaymentMethod,
		m.Description,
		m.Date,
		m.AccountID,
		m.CurrencyID,
		m.CategoryID,
		m.UserID,
		m.TransferID,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert record "+m.RecordID, err)
	}
	return nil
}

// FindRecordByID retrieves a record by its ID.
func (r *PgxRecordRepository) FindRecordByID(ctx context.Context, recordID string) (*domain.Record, error) {
	query := recordSelectColumns + `
		FROM records
		WHERE record_id = $1;
	`
	m, err := scanRecord(r.Pool.QueryRow(ctx, query, recordID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find record by ID "+recordID, err)
	}

	domainRecord := mapping.ToDomainRecord(m)
	return &domainRecord, nil
}

// UpdateRecord updates an existing record's details.
func (r *PgxRecordRepository) UpdateRecord(ctx context.Context, record domain.Record) error {
	m := mapping.ToModelRecord(record)
	query := `
		UPDATE records
		SET amount = $2, record_type = $3, payment_method = $4, description = $5,
		    date = $6, account_id = $7, currency_id = $8, category_id = NULLIF($9, ''),
		    last_updated_at = $10, last_updated_by = $11
		WHERE record_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.RecordID,
		m.Amount,
		m.RecordType,
		m.PaymentMethod,
		m.Description,
		m.Date,
		m.AccountID,
		m.CurrencyID,
		m.CategoryID,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update record "+m.RecordID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteRecord removes a record.
func (r *PgxRecordRepository) DeleteRecord(ctx context.Context, recordID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM records WHERE record_id = $1;`, recordID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete record "+recordID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// ListRecordsByAccount retrieves a paginated list of records for an account
// using token-based pagination ordered by date, newest first.
func (r *PgxRecordRepository) ListRecordsByAccount(ctx context.Context, accountID string, limit int, nextToken *string) ([]domain.Record, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	// Fetch one extra row to know whether a next page exists.
	fetchLimit := limit + 1

	baseQuery := recordSelectColumns + `
		FROM records
		WHERE account_id = $1
	`
	orderByClause := `ORDER BY date DESC, created_at DESC`

	args := []interface{}{accountID}
	query := baseQuery
	if nextToken != nil && *nextToken != "" {
		lastDate, lastCreatedAt, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		query += ` AND (date, created_at) < ($2, $3) `
		args = append(args, lastDate, lastCreatedAt)
	}
	query += " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
	args = append(args, fetchLimit)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query records for account "+accountID, err)
	}
	defer rows.Close()

	records := make([]models.Record, 0, fetchLimit)
	for rows.Next() {
		m, err := scanRecord(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan record row for account "+accountID, err)
		}
		records = append(records, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating record rows for account "+accountID, err)
	}

	var nextTokenVal *string
	if len(records) > limit {
		last := records[limit-1]
		token := pagination.EncodeToken(last.Date, last.CreatedAt)
		nextTokenVal = &token
		records = records[:limit]
	}

	return mapping.ToDomainRecordSlice(records), nextTokenVal, nil
}

package pgsql

import (
	"context"
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

type PgxTransferRepository struct {
	BaseRepository
}

// newPgxTransferRepository creates a new repository for transfer and linked record data.
func newPgxTransferRepository(pool *pgxpool.Pool) portsrepo.TransferRepositoryFacade {
	return &PgxTransferRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxTransferRepository implements portsrepo.TransferRepositoryFacade
var _ portsrepo.TransferRepositoryFacade = (*PgxTransferRepository)(nil)

const insertTransferQuery = `
	INSERT INTO transfers (
		transfer_id, amount, currency_id, source_account_id, target_account_id,
		user_id, date, description,
		created_at, created_by, last_updated_at, last_updated_by
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
`

const insertRecordQuery = `
	INSERT INTO records (
		record_id, amount, record_type, payment_method, description, date,
		account_id, currency_id, category_id, user_id, transfer_id,
		created_at, created_by, last_updated_at, last_updated_by
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NULLIF($9, ''), $10, $11, $12, $13, $14, $15);
`

// SaveTransfer persists a transfer and both derived records in one database
// transaction. Either all three rows land or none do.
func (r *PgxTransferRepository) SaveTransfer(ctx context.Context, transfer domain.Transfer, records domain.RecordPair) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // Ignored once the transaction is committed

	modelTransfer := mapping.ToModelTransfer(transfer)
	_, err = tx.Exec(ctx, insertTransferQuery,
		modelTransfer.TransferID,
		modelTransfer.Amount,
		modelTransfer.CurrencyID,
		modelTransfer.SourceAccountID,
		modelTransfer.TargetAccountID,
		modelTransfer.UserID,
		modelTransfer.Date,
		modelTransfer.Description,
		modelTransfer.CreatedAt,
		modelTransfer.CreatedBy,
		modelTransfer.LastUpdatedAt,
		modelTransfer.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert transfer "+modelTransfer.TransferID, err)
	}

	batch := &pgx.Batch{}
	for _, record := range []domain.Record{records.Source, records.Target} {
		m := mapping.ToModelRecord(record)
		batch.Queue(insertRecordQuery,
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
	}
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to insert record pair for transfer "+modelTransfer.TransferID, err)
	}

	return r.Commit(ctx, tx)
}

// FindTransferByID retrieves a transfer by its ID.
func (r *PgxTransferRepository) FindTransferByID(ctx context.Context, transferID string) (*domain.Transfer, error) {
	query := `
		SELECT transfer_id, amount, currency_id, source_account_id, target_account_id,
		       user_id, date, description,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM transfers
		WHERE transfer_id = $1;
	`
	var m models.Transfer
	err := r.Pool.QueryRow(ctx, query, transferID).Scan(
		&m.TransferID,
		&m.Amount,
		&m.CurrencyID,
		&m.SourceAccountID,
		&m.TargetAccountID,
		&m.UserID,
		&m.Date,
		&m.Description,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find transfer by ID "+transferID, err)
	}

	domainTransfer := mapping.ToDomainTransfer(m)
	return &domainTransfer, nil
}

// FindTransferRecords retrieves the expense/income pair linked to a transfer.
// Anything other than exactly one EXPENSE and one INCOME row is reported as
// an internal fault.
func (r *PgxTransferRepository) FindTransferRecords(ctx context.Context, transferID string) (*domain.RecordPair, error) {
	query := recordSelectColumns + `
		FROM records
		WHERE transfer_id = $1
		ORDER BY record_type; -- EXPENSE before INCOME
	`
	rows, err := r.Pool.Query(ctx, query, transferID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query records for transfer "+transferID, err)
	}
	defer rows.Close()

	found := []models.Record{}
	for rows.Next() {
		m, err := scanRecord(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan record row for transfer "+transferID, err)
		}
		found = append(found, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating record rows for transfer "+transferID, err)
	}

	if len(found) != 2 || found[0].RecordType != models.Expense || found[1].RecordType != models.Income {
		return nil, apperrors.NewAppError(500, "transfer "+transferID+" does not own exactly one expense and one income record", apperrors.ErrInternal)
	}

	return &domain.RecordPair{
		Source: mapping.ToDomainRecord(found[0]),
		Target: mapping.ToDomainRecord(found[1]),
	}, nil
}

// UpdateTransfer rewrites the transfer row and both linked records in one
// database transaction.
func (r *PgxTransferRepository) UpdateTransfer(ctx context.Context, transfer domain.Transfer, records domain.RecordPair) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	modelTransfer := mapping.ToModelTransfer(transfer)
	transferQuery := `
		UPDATE transfers
		SET amount = $2, currency_id = $3, source_account_id = $4, target_account_id = $5,
		    date = $6, description = $7, last_updated_at = $8, last_updated_by = $9
		WHERE transfer_id = $1;
	`
	tag, err := tx.Exec(ctx, transferQuery,
		modelTransfer.TransferID,
		modelTransfer.Amount,
		modelTransfer.CurrencyID,
		modelTransfer.SourceAccountID,
		modelTransfer.TargetAccountID,
		modelTransfer.Date,
		modelTransfer.Description,
		modelTransfer.LastUpdatedAt,
		modelTransfer.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update transfer "+modelTransfer.TransferID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	recordQuery := `
		UPDATE records
		SET amount = $2, record_type = $3, description = $4, date = $5,
		    account_id = $6, currency_id = $7, last_updated_at = $8, last_updated_by = $9
		WHERE record_id = $1 AND transfer_id = $10;
	`
	for _, record := range []domain.Record{records.Source, records.Target} {
		m := mapping.ToModelRecord(record)
		tag, err := tx.Exec(ctx, recordQuery,
			m.RecordID,
			m.Amount,
			m.RecordType,
			m.Description,
			m.Date,
			m.AccountID,
			m.CurrencyID,
			m.LastUpdatedAt,
			m.LastUpdatedBy,
			modelTransfer.TransferID,
		)
		if err != nil {
			return apperrors.NewAppError(500, "failed to update record "+m.RecordID+" for transfer "+modelTransfer.TransferID, err)
		}
		if tag.RowsAffected() == 0 {
			return apperrors.NewAppError(500, "record "+m.RecordID+" missing for transfer "+modelTransfer.TransferID, apperrors.ErrInternal)
		}
	}

	return r.Commit(ctx, tx)
}

// DeleteTransfer removes the transfer and both linked records in one database
// transaction.
func (r *PgxTransferRepository) DeleteTransfer(ctx context.Context, transferID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	tag, err := tx.Exec(ctx, `DELETE FROM records WHERE transfer_id = $1;`, transferID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete records for transfer "+transferID, err)
	}
	if tag.RowsAffected() != 2 {
		return apperrors.NewAppError(500, "transfer "+transferID+" did not own exactly two records", apperrors.ErrInternal)
	}

	tag, err = tx.Exec(ctx, `DELETE FROM transfers WHERE transfer_id = $1;`, transferID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete transfer "+transferID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return r.Commit(ctx, tx)
}

// ListTransfersByUser retrieves a paginated list of transfers for a user
// using token-based pagination ordered by date, newest first.
func (r *PgxTransferRepository) ListTransfersByUser(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.Transfer, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	// Fetch one extra row to know whether a next page exists.
	fetchLimit := limit + 1

	baseQuery := `
		SELECT transfer_id, amount, currency_id, source_account_id, target_account_id,
		       user_id, date, description,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM transfers
		WHERE user_id = $1
	`
	orderByClause := `ORDER BY date DESC, created_at DESC`

	args := []interface{}{userID}
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
		return nil, nil, apperrors.NewAppError(500, "failed to query transfers for user "+userID, err)
	}
	defer rows.Close()

	transfers := make([]models.Transfer, 0, fetchLimit)
	for rows.Next() {
		var m models.Transfer
		err := rows.Scan(
			&m.TransferID,
			&m.Amount,
			&m.CurrencyID,
			&m.SourceAccountID,
			&m.TargetAccountID,
			&m.UserID,
			&m.Date,
			&m.Description,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan transfer row for user "+userID, err)
		}
		transfers = append(transfers, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating transfer rows for user "+userID, err)
	}

	var nextTokenVal *string
	if len(transfers) > limit {
		last := transfers[limit-1]
		token := pagination.EncodeToken(last.Date, last.CreatedAt)
		nextTokenVal = &token
		transfers = transfers[:limit]
	}

	return mapping.ToDomainTransferSlice(transfers), nextTokenVal, nil
}

package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/monetario-app/monetario/internal/apperrors"
	"github.com/monetario-app/monetario/internal/core/domain"
	portsrepo "github.com/monetario-app/monetario/internal/core/ports/repositories"
	portssvc "github.com/monetario-app/monetario/internal/core/ports/services"
	"github.com/monetario-app/monetario/internal/dto"
	"github.com/monetario-app/monetario/internal/middleware"
)

// recordService manages standalone expense and income records. Records owned
// by a transfer pass through here read-only.
type recordService struct {
	recordRepo   portsrepo.RecordRepositoryFacade
	accountRepo  portsrepo.AccountReader
	categoryRepo portsrepo.CategoryReader
	currencyRepo portsrepo.CurrencyReader
}

// NewRecordService creates a new RecordService.
func NewRecordService(recordRepo portsrepo.RecordRepositoryFacade, accountRepo portsrepo.AccountReader, categoryRepo portsrepo.CategoryReader, currencyRepo portsrepo.CurrencyReader) portssvc.RecordSvcFacade {
	return &recordService{
		recordRepo:   recordRepo,
		accountRepo:  accountRepo,
		categoryRepo: categoryRepo,
		currencyRepo: currencyRepo,
	}
}

// Ensure recordService implements the portssvc.RecordSvcFacade interface
var _ portssvc.RecordSvcFacade = (*recordService)(nil)

// checkAccountRef verifies the account exists and is owned by the user.
func (s *recordService) checkAccountRef(ctx context.Context, accountID, userID string) error {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewReferenceNotFound("account", "account")
		}
		return fmt.Errorf("failed to fetch record account: %w", err)
	}
	if account.UserID != userID {
		return apperrors.NewReferenceNotFound("account", "account")
	}
	return nil
}

// checkCategoryRef verifies the category exists. Empty means uncategorized.
func (s *recordService) checkCategoryRef(ctx context.Context, categoryID string) error {
	if categoryID == "" {
		return nil
	}
	if _, err := s.categoryRepo.FindCategoryByID(ctx, categoryID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewReferenceNotFound("category", "category")
		}
		return fmt.Errorf("failed to fetch record category: %w", err)
	}
	return nil
}

// checkCurrencyRef verifies the currency exists.
func (s *recordService) checkCurrencyRef(ctx context.Context, currencyID string) error {
	if _, err := s.currencyRepo.FindCurrencyByID(ctx, currencyID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewReferenceNotFound("currency", "currency")
		}
		return fmt.Errorf("failed to fetch record currency: %w", err)
	}
	return nil
}

// CreateRecord persists a new standalone record. The stored amount sign
// always follows the record type regardless of the entered sign.
// Implements portssvc.RecordSvcFacade
func (s *recordService) CreateRecord(ctx context.Context, req dto.CreateRecordRequest, creatorUserID string) (*domain.Record, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.checkAccountRef(ctx, req.AccountID, creatorUserID); err != nil {
		return nil, err
	}
	if err := s.checkCategoryRef(ctx, req.CategoryID); err != nil {
		return nil, err
	}
	if err := s.checkCurrencyRef(ctx, req.CurrencyID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	date := req.Date
	if date.IsZero() {
		date = now
	}

	recordType := domain.RecordType(req.RecordType)
	record := domain.Record{
		RecordID:      uuid.NewString(),
		Amount:        domain.NormalizedAmount(recordType, req.Amount),
		RecordType:    recordType,
		PaymentMethod: domain.PaymentMethod(req.PaymentMethod),
		Description:   req.Description,
		Date:          date,
		AccountID:     req.AccountID,
		CurrencyID:    req.CurrencyID,
		CategoryID:    req.CategoryID,
		UserID:        creatorUserID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.recordRepo.SaveRecord(ctx, record); err != nil {
		logger.Error("Failed to save record", slog.String("error", err.Error()), slog.String("record_id", record.RecordID))
		return nil, fmt.Errorf("failed to save record: %w", err)
	}

	logger.Info("Record created successfully", slog.String("record_id", record.RecordID), slog.String("user_id", creatorUserID))
	return &record, nil
}

// GetRecordByID retrieves a record, obscuring records owned by other users.
// Implements portssvc.RecordSvcFacade
func (s *recordService) GetRecordByID(ctx context.Context, recordID string, requestingUserID string) (*domain.Record, error) {
	return s.findOwnedRecord(ctx, recordID, requestingUserID)
}

// ListRecords retrieves a paginated list of records for an owned account.
// Implements portssvc.RecordSvcFacade
func (s *recordService) ListRecords(ctx context.Context, userID string, params dto.ListRecordsParams) (*dto.ListRecordsResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.checkAccountRef(ctx, params.AccountID, userID); err != nil {
		return nil, err
	}

	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}

	records, newToken, err := s.recordRepo.ListRecordsByAccount(ctx, params.AccountID, limit, params.NextToken)
	if err != nil {
		logger.Error("Failed to list records", slog.String("error", err.Error()), slog.String("account_id", params.AccountID))
		return nil, fmt.Errorf("failed to list records: %w", err)
	}

	return &dto.ListRecordsResponse{
		Records:   dto.ToRecordResponses(records),
		NextToken: newToken,
	}, nil
}

// UpdateRecord updates a standalone record. The amount sign is re-normalized
// whenever the amount or type changes. Transfer-owned records are immutable.
// Implements portssvc.RecordSvcFacade
func (s *recordService) UpdateRecord(ctx context.Context, recordID string, req dto.UpdateRecordRequest, requestingUserID string) (*domain.Record, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	record, err := s.findOwnedRecord(ctx, recordID, requestingUserID)
	if err != nil {
		return nil, err
	}
	if record.IsTransactional() {
		return nil, apperrors.ErrTransactionalRecord
	}

	if req.RecordType != nil {
		record.RecordType = domain.RecordType(*req.RecordType)
	}
	if req.Amount != nil {
		record.Amount = *req.Amount
	}
	// Re-apply the sign convention; a type flip alone must also restate the sign.
	record.Amount = domain.NormalizedAmount(record.RecordType, record.Amount)

	if req.PaymentMethod != nil {
		record.PaymentMethod = domain.PaymentMethod(*req.PaymentMethod)
	}
	if req.AccountID != nil {
		if err := s.checkAccountRef(ctx, *req.AccountID, requestingUserID); err != nil {
			return nil, err
		}
		record.AccountID = *req.AccountID
	}
	if req.CategoryID != nil {
		if err := s.checkCategoryRef(ctx, *req.CategoryID); err != nil {
			return nil, err
		}
		record.CategoryID = *req.CategoryID
	}
	if req.CurrencyID != nil {
		if err := s.checkCurrencyRef(ctx, *req.CurrencyID); err != nil {
			return nil, err
		}
		record.CurrencyID = *req.CurrencyID
	}
	if req.Date != nil {
		record.Date = *req.Date
	}
	if req.Description != nil {
		record.Description = *req.Description
	}
	record.LastUpdatedAt = time.Now().UTC()
	record.LastUpdatedBy = requestingUserID

	if err := s.recordRepo.UpdateRecord(ctx, *record); err != nil {
		logger.Error("Failed to update record", slog.String("error", err.Error()), slog.String("record_id", recordID))
		return nil, fmt.Errorf("failed to update record: %w", err)
	}

	logger.Info("Record updated successfully", slog.String("record_id", recordID), slog.String("user_id", requestingUserID))
	return record, nil
}

// DeleteRecord removes a standalone record. Transfer-owned records must be
// removed through their transfer so the pair never loses one side.
// Implements portssvc.RecordSvcFacade
func (s *recordService) DeleteRecord(ctx context.Context, recordID string, requestingUserID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	record, err := s.findOwnedRecord(ctx, recordID, requestingUserID)
	if err != nil {
		return err
	}
	if record.IsTransactional() {
		return apperrors.ErrTransactionalRecord
	}

	if err := s.recordRepo.DeleteRecord(ctx, recordID); err != nil {
		logger.Error("Failed to delete record", slog.String("error", err.Error()), slog.String("record_id", recordID))
		return fmt.Errorf("failed to delete record: %w", err)
	}

	logger.Info("Record deleted successfully", slog.String("record_id", recordID), slog.String("user_id", requestingUserID))
	return nil
}

// findOwnedRecord fetches a record and verifies ownership. Records owned by
// another user come back as not found to obscure their existence.
func (s *recordService) findOwnedRecord(ctx context.Context, recordID string, requestingUserID string) (*domain.Record, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	record, err := s.recordRepo.FindRecordByID(ctx, recordID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find record by ID", slog.String("error", err.Error()), slog.String("record_id", recordID))
		}
		return nil, fmt.Errorf("failed to find record by ID %s: %w", recordID, err)
	}
	if record.UserID != requestingUserID {
		logger.Warn("Record found but belongs to different user", slog.String("record_id", recordID), slog.String("requesting_user", requestingUserID))
		return nil, apperrors.ErrNotFound
	}
	return record, nil
}

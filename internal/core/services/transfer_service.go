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
	"github.com/shopspring/decimal"
)

var (
	// ErrSameAccount rejects transfers whose source and target are one account.
	ErrSameAccount = fmt.Errorf("%w: source account and target account can not be equal", apperrors.ErrValidation)

	// ErrZeroAmount rejects transfers that move no money.
	ErrZeroAmount = fmt.Errorf("%w: transfer amount must not be zero", apperrors.ErrValidation)
)

// transferService posts, reposts, and deletes transfers together with their
// mirrored expense/income record pair.
type transferService struct {
	transferRepo portsrepo.TransferRepositoryFacade
	accountRepo  portsrepo.AccountReader
	currencyRepo portsrepo.CurrencyReader
}

// NewTransferService creates a new TransferService.
func NewTransferService(transferRepo portsrepo.TransferRepositoryFacade, accountRepo portsrepo.AccountReader, currencyRepo portsrepo.CurrencyReader) portssvc.TransferSvcFacade {
	return &transferService{
		transferRepo: transferRepo,
		accountRepo:  accountRepo,
		currencyRepo: currencyRepo,
	}
}

// Ensure transferService implements the portssvc.TransferSvcFacade interface
var _ portssvc.TransferSvcFacade = (*transferService)(nil)

// validateTransferRefs checks the referenced accounts and currency before any
// row is written. Accounts owned by other users are reported the same way as
// missing ones.
func (s *transferService) validateTransferRefs(ctx context.Context, amount decimal.Decimal, currencyID, sourceAccountID, targetAccountID, userID string) error {
	if amount.IsZero() {
		return ErrZeroAmount
	}
	if sourceAccountID == targetAccountID {
		return ErrSameAccount
	}

	accounts, err := s.accountRepo.FindAccountsByIDs(ctx, []string{sourceAccountID, targetAccountID})
	if err != nil {
		return fmt.Errorf("failed to fetch transfer accounts: %w", err)
	}

	source, ok := accounts[sourceAccountID]
	if !ok || source.UserID != userID {
		return apperrors.NewReferenceNotFound("source_account", "account")
	}
	target, ok := accounts[targetAccountID]
	if !ok || target.UserID != userID {
		return apperrors.NewReferenceNotFound("target_account", "account")
	}

	if _, err := s.currencyRepo.FindCurrencyByID(ctx, currencyID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewReferenceNotFound("currency", "currency")
		}
		return fmt.Errorf("failed to fetch transfer currency: %w", err)
	}
	return nil
}

// CreateTransfer posts a new transfer. The transfer row and both derived
// records are persisted in one transaction.
// Implements portssvc.TransferSvcFacade
func (s *transferService) CreateTransfer(ctx context.Context, req dto.CreateTransferRequest, creatorUserID string) (*domain.Transfer, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.validateTransferRefs(ctx, req.Amount, req.CurrencyID, req.SourceAccountID, req.TargetAccountID, creatorUserID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	date := req.Date
	if date.IsZero() {
		date = now
	}

	transfer := domain.Transfer{
		TransferID:      uuid.NewString(),
		Amount:          req.Amount,
		CurrencyID:      req.CurrencyID,
		SourceAccountID: req.SourceAccountID,
		TargetAccountID: req.TargetAccountID,
		UserID:          creatorUserID,
		Date:            date,
		Description:     req.Description,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	records := transfer.DeriveRecords(uuid.NewString(), uuid.NewString())
	if !records.Balanced() {
		// DeriveRecords guarantees this; a failure here is a programming error.
		logger.Error("Derived record pair does not balance", slog.String("transfer_id", transfer.TransferID), slog.String("amount", req.Amount.String()))
		return nil, fmt.Errorf("derived records do not balance for transfer %s: %w", transfer.TransferID, apperrors.ErrInternal)
	}

	if err := s.transferRepo.SaveTransfer(ctx, transfer, records); err != nil {
		logger.Error("Failed to save transfer", slog.String("error", err.Error()), slog.String("transfer_id", transfer.TransferID))
		return nil, fmt.Errorf("failed to save transfer: %w", err)
	}

	logger.Info("Transfer posted successfully", slog.String("transfer_id", transfer.TransferID), slog.String("user_id", creatorUserID))
	transfer.Records = &records
	return &transfer, nil
}

// GetTransferByID retrieves a transfer with its record pair.
// Implements portssvc.TransferSvcFacade
func (s *transferService) GetTransferByID(ctx context.Context, transferID string, requestingUserID string) (*domain.Transfer, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	transfer, err := s.findOwnedTransfer(ctx, transferID, requestingUserID)
	if err != nil {
		return nil, err
	}

	records, err := s.transferRepo.FindTransferRecords(ctx, transferID)
	if err != nil {
		logger.Error("Failed to fetch records for transfer", slog.String("error", err.Error()), slog.String("transfer_id", transferID))
		return nil, fmt.Errorf("failed to retrieve records for transfer %s: %w", transferID, apperrors.ErrInternal)
	}

	transfer.Records = records
	return transfer, nil
}

// ListTransfers retrieves a paginated list of the user's transfers.
// Implements portssvc.TransferSvcFacade
func (s *transferService) ListTransfers(ctx context.Context, userID string, params dto.ListTransfersParams) (*dto.ListTransfersResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}

	transfers, newToken, err := s.transferRepo.ListTransfersByUser(ctx, userID, limit, params.NextToken)
	if err != nil {
		logger.Error("Failed to list transfers", slog.String("error", err.Error()), slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to list transfers: %w", err)
	}

	return &dto.ListTransfersResponse{
		Transfers: dto.ToTransferResponses(transfers),
		NextToken: newToken,
	}, nil
}

// UpdateTransfer reposts a transfer: the transfer row and both linked records
// are rewritten in one transaction so the pair always mirrors the new values.
// Implements portssvc.TransferSvcFacade
func (s *transferService) UpdateTransfer(ctx context.Context, transferID string, req dto.UpdateTransferRequest, requestingUserID string) (*domain.Transfer, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	transfer, err := s.findOwnedTransfer(ctx, transferID, requestingUserID)
	if err != nil {
		return nil, err
	}

	existing, err := s.transferRepo.FindTransferRecords(ctx, transferID)
	if err != nil {
		// A transfer without its two records is corrupt state, not user error.
		logger.Error("Transfer record pair missing or broken", slog.String("error", err.Error()), slog.String("transfer_id", transferID))
		return nil, fmt.Errorf("record pair for transfer %s is inconsistent: %w", transferID, apperrors.ErrInternal)
	}

	if err := s.validateTransferRefs(ctx, req.Amount, req.CurrencyID, req.SourceAccountID, req.TargetAccountID, requestingUserID); err != nil {
		return nil, err
	}

	// Repost is a full replacement of the mutable fields.
	now := time.Now().UTC()
	transfer.Amount = req.Amount
	transfer.CurrencyID = req.CurrencyID
	transfer.SourceAccountID = req.SourceAccountID
	transfer.TargetAccountID = req.TargetAccountID
	if !req.Date.IsZero() {
		transfer.Date = req.Date
	}
	transfer.Description = req.Description
	transfer.LastUpdatedAt = now
	transfer.LastUpdatedBy = requestingUserID

	// Rewrite the pair in place, keeping the original record IDs so the
	// transfer never gains or loses rows across reposts.
	records := transfer.DeriveRecords(existing.Source.RecordID, existing.Target.RecordID)
	records.Source.CreatedAt = existing.Source.CreatedAt
	records.Source.CreatedBy = existing.Source.CreatedBy
	records.Target.CreatedAt = existing.Target.CreatedAt
	records.Target.CreatedBy = existing.Target.CreatedBy
	records.Source.LastUpdatedAt = now
	records.Source.LastUpdatedBy = requestingUserID
	records.Target.LastUpdatedAt = now
	records.Target.LastUpdatedBy = requestingUserID

	if err := s.transferRepo.UpdateTransfer(ctx, *transfer, records); err != nil {
		logger.Error("Failed to repost transfer", slog.String("error", err.Error()), slog.String("transfer_id", transferID))
		return nil, fmt.Errorf("failed to update transfer: %w", err)
	}

	logger.Info("Transfer reposted successfully", slog.String("transfer_id", transferID), slog.String("user_id", requestingUserID))
	transfer.Records = &records
	return transfer, nil
}

// DeleteTransfer removes a transfer and both linked records in one transaction.
// Implements portssvc.TransferSvcFacade
func (s *transferService) DeleteTransfer(ctx context.Context, transferID string, requestingUserID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.findOwnedTransfer(ctx, transferID, requestingUserID); err != nil {
		return err
	}

	if err := s.transferRepo.DeleteTransfer(ctx, transferID); err != nil {
		logger.Error("Failed to delete transfer", slog.String("error", err.Error()), slog.String("transfer_id", transferID))
		return fmt.Errorf("failed to delete transfer: %w", err)
	}

	logger.Info("Transfer deleted successfully", slog.String("transfer_id", transferID), slog.String("user_id", requestingUserID))
	return nil
}

// findOwnedTransfer fetches a transfer and verifies ownership. Transfers owned
// by another user come back as not found to obscure their existence.
func (s *transferService) findOwnedTransfer(ctx context.Context, transferID string, requestingUserID string) (*domain.Transfer, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	transfer, err := s.transferRepo.FindTransferByID(ctx, transferID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find transfer by ID", slog.String("error", err.Error()), slog.String("transfer_id", transferID))
		}
		return nil, fmt.Errorf("failed to find transfer by ID %s: %w", transferID, err)
	}
	if transfer.UserID != requestingUserID {
		logger.Warn("Transfer found but belongs to different user", slog.String("transfer_id", transferID), slog.String("requesting_user", requestingUserID))
		return nil, apperrors.ErrNotFound
	}
	return transfer, nil
}

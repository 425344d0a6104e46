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

// accountService manages accounts and derives their balances from records.
type accountService struct {
	accountRepo  portsrepo.AccountRepositoryFacade
	currencyRepo portsrepo.CurrencyReader
}

// NewAccountService creates a new AccountService.
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade, currencyRepo portsrepo.CurrencyReader) portssvc.AccountSvcFacade {
	return &accountService{
		accountRepo:  accountRepo,
		currencyRepo: currencyRepo,
	}
}

// Ensure accountService implements the portssvc.AccountSvcFacade interface
var _ portssvc.AccountSvcFacade = (*accountService)(nil)

// CreateAccount persists a new account for the user.
// Implements portssvc.AccountSvcFacade
func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, creatorUserID string) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.currencyRepo.FindCurrencyByID(ctx, req.CurrencyID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewReferenceNotFound("currency", "currency")
		}
		return nil, fmt.Errorf("failed to fetch account currency: %w", err)
	}

	now := time.Now().UTC()
	account := domain.Account{
		AccountID:  uuid.NewString(),
		Name:       req.Name,
		CurrencyID: req.CurrencyID,
		UserID:     creatorUserID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		logger.Error("Failed to save account", slog.String("error", err.Error()), slog.String("account_id", account.AccountID))
		return nil, fmt.Errorf("failed to save account: %w", err)
	}

	logger.Info("Account created successfully", slog.String("account_id", account.AccountID), slog.String("user_id", creatorUserID))
	return &account, nil
}

// GetAccountByID retrieves an account, obscuring accounts of other users.
// Implements portssvc.AccountSvcFacade
func (s *accountService) GetAccountByID(ctx context.Context, accountID string, requestingUserID string) (*domain.Account, error) {
	return s.findOwnedAccount(ctx, accountID, requestingUserID)
}

// ListAccounts retrieves all accounts owned by the user.
// Implements portssvc.AccountSvcFacade
func (s *accountService) ListAccounts(ctx context.Context, userID string) ([]domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	accounts, err := s.accountRepo.ListAccountsByUser(ctx, userID)
	if err != nil {
		logger.Error("Failed to list accounts", slog.String("error", err.Error()), slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

// UpdateAccount updates an existing account's details.
// Implements portssvc.AccountSvcFacade
func (s *accountService) UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest, requestingUserID string) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	account, err := s.findOwnedAccount(ctx, accountID, requestingUserID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		account.Name = *req.Name
	}
	if req.CurrencyID != nil {
		if _, err := s.currencyRepo.FindCurrencyByID(ctx, *req.CurrencyID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, apperrors.NewReferenceNotFound("currency", "currency")
			}
			return nil, fmt.Errorf("failed to fetch account currency: %w", err)
		}
		account.CurrencyID = *req.CurrencyID
	}
	account.LastUpdatedAt = time.Now().UTC()
	account.LastUpdatedBy = requestingUserID

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		logger.Error("Failed to update account", slog.String("error", err.Error()), slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to update account: %w", err)
	}

	logger.Info("Account updated successfully", slog.String("account_id", accountID), slog.String("user_id", requestingUserID))
	return account, nil
}

// DeleteAccount removes an account.
// Implements portssvc.AccountSvcFacade
func (s *accountService) DeleteAccount(ctx context.Context, accountID string, requestingUserID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.findOwnedAccount(ctx, accountID, requestingUserID); err != nil {
		return err
	}

	if err := s.accountRepo.DeleteAccount(ctx, accountID); err != nil {
		logger.Error("Failed to delete account", slog.String("error", err.Error()), slog.String("account_id", accountID))
		return fmt.Errorf("failed to delete account: %w", err)
	}

	logger.Info("Account deleted successfully", slog.String("account_id", accountID), slog.String("user_id", requestingUserID))
	return nil
}

// CalculateAccountBalance computes the balance as the sum of record amounts.
// Implements portssvc.AccountSvcFacade
func (s *accountService) CalculateAccountBalance(ctx context.Context, accountID string, requestingUserID string) (decimal.Decimal, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.findOwnedAccount(ctx, accountID, requestingUserID); err != nil {
		return decimal.Zero, err
	}

	balance, err := s.accountRepo.SumRecordAmounts(ctx, accountID)
	if err != nil {
		logger.Error("Failed to sum record amounts", slog.String("error", err.Error()), slog.String("account_id", accountID))
		return decimal.Zero, fmt.Errorf("failed to calculate account balance: %w", err)
	}
	return balance, nil
}

// findOwnedAccount fetches an account and verifies ownership. Accounts owned
// by another user come back as not found to obscure their existence.
func (s *accountService) findOwnedAccount(ctx context.Context, accountID string, requestingUserID string) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find account by ID", slog.String("error", err.Error()), slog.String("account_id", accountID))
		}
		return nil, fmt.Errorf("failed to find account by ID %s: %w", accountID, err)
	}
	if account.UserID != requestingUserID {
		logger.Warn("Account found but belongs to different user", slog.String("account_id", accountID), slog.String("requesting_user", requestingUserID))
		return nil, apperrors.ErrNotFound
	}
	return account, nil
}

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

// currencyService manages the currencies defined within a group.
type currencyService struct {
	currencyRepo portsrepo.CurrencyRepositoryFacade
	userRepo     portsrepo.UserReader
}

// NewCurrencyService creates a new CurrencyService.
func NewCurrencyService(currencyRepo portsrepo.CurrencyRepositoryFacade, userRepo portsrepo.UserReader) portssvc.CurrencySvcFacade {
	return &currencyService{
		currencyRepo: currencyRepo,
		userRepo:     userRepo,
	}
}

var _ portssvc.CurrencySvcFacade = (*currencyService)(nil)

// CreateCurrency adds a currency to the creator's group.
func (s *currencyService) CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest, creatorUserID string) (*domain.GroupCurrency, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	groupID, err := s.groupOf(ctx, creatorUserID)
	if err != nil {
		return nil, err
	}

	rate := req.Rate
	if rate.IsZero() {
		rate = decimal.NewFromInt(1)
	}

	now := time.Now().UTC()
	currency := domain.GroupCurrency{
		CurrencyID: uuid.NewString(),
		Name:       req.Name,
		Symbol:     req.Symbol,
		Rate:       rate,
		GroupID:    groupID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.currencyRepo.SaveCurrency(ctx, currency); err != nil {
		logger.Error("Failed to save currency", slog.String("error", err.Error()), slog.String("currency_id", currency.CurrencyID))
		return nil, fmt.Errorf("failed to save currency: %w", err)
	}

	logger.Info("Currency created successfully", slog.String("currency_id", currency.CurrencyID), slog.String("group_id", groupID))
	return &currency, nil
}

// GetCurrencyByID retrieves a currency by ID.
func (s *currencyService) GetCurrencyByID(ctx context.Context, currencyID string) (*domain.GroupCurrency, error) {
	currency, err := s.currencyRepo.FindCurrencyByID(ctx, currencyID)
	if err != nil {
		return nil, fmt.Errorf("failed to find currency by ID %s: %w", currencyID, err)
	}
	return currency, nil
}

// ListCurrencies retrieves all currencies in a group.
func (s *currencyService) ListCurrencies(ctx context.Context, groupID string) ([]domain.GroupCurrency, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	currencies, err := s.currencyRepo.ListCurrenciesByGroup(ctx, groupID)
	if err != nil {
		logger.Error("Failed to list currencies", slog.String("error", err.Error()), slog.String("group_id", groupID))
		return nil, fmt.Errorf("failed to list currencies: %w", err)
	}
	return currencies, nil
}

// UpdateCurrency updates an existing currency's details.
func (s *currencyService) UpdateCurrency(ctx context.Context, currencyID string, req dto.UpdateCurrencyRequest, requestingUserID string) (*domain.GroupCurrency, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	currency, err := s.findGroupCurrency(ctx, currencyID, requestingUserID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		currency.Name = *req.Name
	}
	if req.Rate != nil {
		currency.Rate = *req.Rate
	}
	currency.LastUpdatedAt = time.Now().UTC()
	currency.LastUpdatedBy = requestingUserID

	if err := s.currencyRepo.UpdateCurrency(ctx, *currency); err != nil {
		logger.Error("Failed to update currency", slog.String("error", err.Error()), slog.String("currency_id", currencyID))
		return nil, fmt.Errorf("failed to update currency: %w", err)
	}
	return currency, nil
}

// DeleteCurrency removes a currency.
func (s *currencyService) DeleteCurrency(ctx context.Context, currencyID string, requestingUserID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.findGroupCurrency(ctx, currencyID, requestingUserID); err != nil {
		return err
	}

	if err := s.currencyRepo.DeleteCurrency(ctx, currencyID); err != nil {
		logger.Error("Failed to delete currency", slog.String("error", err.Error()), slog.String("currency_id", currencyID))
		return fmt.Errorf("failed to delete currency: %w", err)
	}
	return nil
}

// groupOf resolves the group a user belongs to.
func (s *currencyService) groupOf(ctx context.Context, userID string) (string, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("failed to find user %s: %w", userID, err)
	}
	if user.GroupID == "" {
		return "", fmt.Errorf("%w: user does not belong to a group", apperrors.ErrValidation)
	}
	return user.GroupID, nil
}

// findGroupCurrency fetches a currency and verifies it belongs to the
// requesting user's group. Currencies of other groups come back as not found.
func (s *currencyService) findGroupCurrency(ctx context.Context, currencyID string, requestingUserID string) (*domain.GroupCurrency, error) {
	currency, err := s.currencyRepo.FindCurrencyByID(ctx, currencyID)
	if err != nil {
		return nil, fmt.Errorf("failed to find currency by ID %s: %w", currencyID, err)
	}
	groupID, err := s.groupOf(ctx, requestingUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	if currency.GroupID != groupID {
		return nil, apperrors.ErrNotFound
	}
	return currency, nil
}

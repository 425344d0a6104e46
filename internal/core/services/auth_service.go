package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/monetario-app/monetario/internal/apperrors"
	portsrepo "github.com/monetario-app/monetario/internal/core/ports/repositories"
	portssvc "github.com/monetario-app/monetario/internal/core/ports/services"
	"github.com/monetario-app/monetario/internal/dto"
	"github.com/monetario-app/monetario/internal/middleware"
	"github.com/monetario-app/monetario/internal/utils"
	"github.com/monetario-app/monetario/pkg/config"
)

// authService verifies credentials and issues access tokens.
type authService struct {
	cfg      *config.Config
	userRepo portsrepo.UserReader
}

// NewAuthService creates a new AuthService.
func NewAuthService(cfg *config.Config, userRepo portsrepo.UserReader) portssvc.AuthSvcFacade {
	return &authService{cfg: cfg, userRepo: userRepo}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

// Login verifies the email/password pair and returns a signed JWT. A wrong
// password and an unknown email produce the same error.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, passwordHash, err := s.userRepo.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		logger.Error("Failed to look up user for login", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if !user.Active {
		logger.Warn("Login attempt for inactive user", slog.String("user_id", user.UserID))
		return nil, apperrors.ErrUnauthorized
	}
	if !utils.CheckPasswordHash(req.Password, passwordHash) {
		logger.Warn("Login attempt with wrong password", slog.String("user_id", user.UserID))
		return nil, apperrors.ErrUnauthorized
	}

	token, err := utils.GenerateJWT(user.UserID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		logger.Error("Failed to sign access token", slog.String("error", err.Error()), slog.String("user_id", user.UserID))
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}

	logger.Info("User logged in successfully", slog.String("user_id", user.UserID))
	return &dto.LoginResponse{
		AccessToken: token,
		ExpiresAt:   time.Now().Add(s.cfg.JWTExpiryDuration).Unix(),
	}, nil
}

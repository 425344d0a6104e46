package services

import (
	"context"

	"github.com/monetario-app/monetario/internal/dto"
)

// AuthSvcFacade defines authentication operations
type AuthSvcFacade interface {
	// Login verifies credentials and issues a signed access token.
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
}

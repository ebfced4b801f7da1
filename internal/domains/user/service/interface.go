package service

import (
	"context"

	"portfolio-backend/internal/domains/user/model"
)

type ServiceInterface interface {
	// Register creates an account and issues a token pair. The configured
	// admin email receives the admin role; everyone else registers as user.
	Register(ctx context.Context, req model.RegisterRequest) (*model.AuthResponse, error)

	// Login verifies credentials and issues a token pair. Repeated failures
	// for the same email lock the account for a cooldown period.
	Login(ctx context.Context, req model.LoginRequest) (*model.AuthResponse, error)

	// Refresh exchanges a valid refresh token for a fresh token pair, so a
	// session outlives the short access expiry without re-entering the
	// password. The role is re-read from the store, not from the old token.
	Refresh(ctx context.Context, req model.RefreshRequest) (*model.AuthResponse, error)

	// Me returns the account behind an authenticated request.
	Me(ctx context.Context, userID string) (*model.UserResponse, error)
}

package repository

import (
	"context"

	"github.com/google/uuid"

	"portfolio-backend/internal/domains/user/model"
)

type UserRepository interface {
	// Create inserts a new account.
	Create(ctx context.Context, user *model.User) error

	// GetByEmail gets an account by email.
	GetByEmail(ctx context.Context, email string) (*model.User, error)

	// GetByID gets an account by id.
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
}

package database

import (
	"context"

	"github.com/benvon/google-auth/internal/models"
	"github.com/google/uuid"
)

// UserRepositoryInterface defines the user directory operations consumed by
// the auth flow. It enables mock implementations in handler and middleware
// tests.
type UserRepositoryInterface interface {
	Upsert(ctx context.Context, claims *models.IdentityClaims) (*models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

var _ UserRepositoryInterface = (*UserRepository)(nil)

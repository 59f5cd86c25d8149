package ports

import (
	"context"

	"github.com/pricewise/catalog-api/internal/core/domain"
)

// AuthRepository defines the interface for user and role persistence.
type AuthRepository interface {
	// FindByEmail returns the user with the given email, or domain.ErrUserNotFound.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// Create inserts a new user and returns it with its assigned id.
	// Returns domain.ErrEmailTaken when the email is already registered.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// RoleExists reports whether a role with the given id exists.
	RoleExists(ctx context.Context, roleID int) (bool, error)
}

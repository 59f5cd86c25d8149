package ports

import (
	"context"

	"github.com/pricewise/catalog-api/internal/core/domain"
)

// AuthService implements the signup and login use cases.
type AuthService interface {
	// Signup validates the role, hashes the password, creates the user, and
	// issues a signed token for it.
	Signup(ctx context.Context, email, password string, roleID int) (string, *domain.User, error)
	// Login verifies the credentials and issues a signed token.
	Login(ctx context.Context, email, password string) (string, error)
}

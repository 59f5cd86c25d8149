package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/pricewise/catalog-api/internal/core/domain"
)

// pgUniqueViolation is the Postgres error code for unique constraint failures.
const pgUniqueViolation = "23505"

// AuthRepository implements ports.AuthRepository over Postgres.
type AuthRepository struct {
	db *sqlx.DB
}

func NewAuthRepository(db *sqlx.DB) *AuthRepository {
	return &AuthRepository{db: db}
}

func (r *AuthRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	err := r.db.GetContext(ctx, &u,
		`SELECT id, email, password_hash, role_id FROM users WHERE email = $1`, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return &u, nil
}

// Create inserts the user and returns it with its assigned id. A concurrent
// signup racing past the service's duplicate check still surfaces as
// domain.ErrEmailTaken via the unique index on email.
func (r *AuthRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	err := r.db.QueryRowxContext(ctx,
		`INSERT INTO users (email, password_hash, role_id) VALUES ($1, $2, $3) RETURNING id`,
		user.Email, user.PasswordHash, user.RoleID,
	).Scan(&user.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation {
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return user, nil
}

func (r *AuthRepository) RoleExists(ctx context.Context, roleID int) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists,
		`SELECT EXISTS (SELECT 1 FROM roles WHERE id = $1)`, roleID)
	if err != nil {
		return false, fmt.Errorf("check role: %w", err)
	}
	return exists, nil
}

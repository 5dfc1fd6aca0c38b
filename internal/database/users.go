package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/benvon/google-auth/internal/models"
	"github.com/google/uuid"
)

// ErrUserNotFound is returned when no user row matches the lookup key.
var ErrUserNotFound = errors.New("user not found")

// UserRepository handles user database operations
type UserRepository struct {
	db *DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *DB) *UserRepository {
	return &UserRepository{db: db}
}

// Upsert creates or updates the user keyed by the Google subject id, in a
// single statement. On conflict the profile fields are overwritten with the
// incoming claims while the original local id is kept, so concurrent logins
// for the same subject id can never produce duplicate rows.
func (r *UserRepository) Upsert(ctx context.Context, claims *models.IdentityClaims) (*models.User, error) {
	query := `
		INSERT INTO users (id, google_id, name, email, picture, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, now(), now())
		ON CONFLICT (google_id) DO UPDATE
		SET name = EXCLUDED.name, email = EXCLUDED.email, picture = EXCLUDED.picture, updated_at = now()
		RETURNING id, google_id, name, email, picture, created_at, updated_at
	`

	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query,
		uuid.New(),
		claims.Sub,
		claims.Name,
		claims.Email,
		claims.Picture,
	).Scan(
		&user.ID,
		&user.GoogleID,
		&user.Name,
		&user.Email,
		&user.Picture,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert user: %w", err)
	}

	return user, nil
}

// GetByID retrieves a user by local id.
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user := &models.User{}
	query := `
		SELECT id, google_id, name, email, picture, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&user.ID,
		&user.GoogleID,
		&user.Name,
		&user.Email,
		&user.Picture,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}

// List returns all users ordered by creation time. Used by the admin CLI.
func (r *UserRepository) List(ctx context.Context) ([]*models.User, error) {
	query := `
		SELECT id, google_id, name, email, picture, created_at, updated_at
		FROM users
		ORDER BY created_at
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		user := &models.User{}
		if err := rows.Scan(
			&user.ID,
			&user.GoogleID,
			&user.Name,
			&user.Email,
			&user.Picture,
			&user.CreatedAt,
			&user.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate users: %w", err)
	}

	return users, nil
}

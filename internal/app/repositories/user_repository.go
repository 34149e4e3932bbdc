package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lenslearn/backend/internal/app/models"
	"github.com/lenslearn/backend/internal/pkg/apperrors"
	"github.com/lenslearn/backend/internal/pkg/dberrors"
)

// userEmailConstraint is the unique index enforcing email uniqueness.
// Relying on the store, not a check-then-insert, keeps concurrent
// registrations for the same address from both succeeding.
const userEmailConstraint = "users_email_key"

// UserRepository handles database operations for users
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

// GetAll retrieves all users
func (r *UserRepository) GetAll(ctx context.Context) ([]*models.User, error) {
	query := `
		SELECT id, email, name, role, created_at
		FROM users
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]*models.User, 0)
	for rows.Next() {
		var user models.User
		if err := rows.Scan(
			&user.ID,
			&user.Email,
			&user.Name,
			&user.Role,
			&user.CreatedAt,
		); err != nil {
			return nil, err
		}
		users = append(users, &user)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `
		SELECT id, email, name, role, created_at
		FROM users
		WHERE email = $1
	`

	var user models.User
	err := r.db.QueryRow(ctx, query, email).Scan(
		&user.ID,
		&user.Email,
		&user.Name,
		&user.Role,
		&user.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	return &user, nil
}

// Create inserts a new user. Email uniqueness is enforced by the store;
// a duplicate returns apperrors.ErrUserAlreadyExists.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (email, name, role)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query, user.Email, user.Name, user.Role).
		Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, userEmailConstraint) {
			return apperrors.ErrUserAlreadyExists
		}
		return err
	}

	return nil
}

// Update applies a partial-field patch to a user; nil patch fields keep
// their stored values.
func (r *UserRepository) Update(ctx context.Context, id int64, patch *models.UserPatch) error {
	var set setClause
	if patch.Email != nil {
		set.add("email", *patch.Email)
	}
	if patch.Name != nil {
		set.add("name", *patch.Name)
	}
	if patch.Role != nil {
		set.add("role", *patch.Role)
	}

	if set.empty() {
		return apperrors.NewBadRequestError("no fields to update")
	}

	query, args := set.build("users", id)
	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, userEmailConstraint) {
			return apperrors.ErrUserAlreadyExists
		}
		return fmt.Errorf("error updating user: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

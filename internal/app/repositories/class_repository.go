package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lenslearn/backend/internal/app/models"
	"github.com/lenslearn/backend/internal/pkg/apperrors"
)

// ClassRepository handles database operations for classes
type ClassRepository struct {
	db *pgxpool.Pool
}

// NewClassRepository creates a new class repository
func NewClassRepository(db *pgxpool.Pool) *ClassRepository {
	return &ClassRepository{
		db: db,
	}
}

// Create creates a new class
func (r *ClassRepository) Create(ctx context.Context, class *models.Class) error {
	query := `
		INSERT INTO classes (title, instructor, image, price, status, available_seats, enrolled)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		class.Title,
		class.Instructor,
		class.Image,
		class.Price,
		class.Status,
		class.AvailableSeats,
		class.Enrolled,
	).Scan(&class.ID, &class.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating class: %w", err)
	}

	return nil
}

// GetByID retrieves a class by ID
func (r *ClassRepository) GetByID(ctx context.Context, id int64) (*models.Class, error) {
	query := `
		SELECT id, title, instructor, image, price, status, available_seats, enrolled, created_at
		FROM classes
		WHERE id = $1
	`

	var class models.Class
	err := r.db.QueryRow(ctx, query, id).Scan(
		&class.ID,
		&class.Title,
		&class.Instructor,
		&class.Image,
		&class.Price,
		&class.Status,
		&class.AvailableSeats,
		&class.Enrolled,
		&class.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrClassNotFound
		}
		return nil, fmt.Errorf("error retrieving class: %w", err)
	}

	return &class, nil
}

// GetAll retrieves all classes
func (r *ClassRepository) GetAll(ctx context.Context) ([]*models.Class, error) {
	query := `
		SELECT id, title, instructor, image, price, status, available_seats, enrolled, created_at
		FROM classes
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	classes := make([]*models.Class, 0)
	for rows.Next() {
		var class models.Class
		if err := rows.Scan(
			&class.ID,
			&class.Title,
			&class.Instructor,
			&class.Image,
			&class.Price,
			&class.Status,
			&class.AvailableSeats,
			&class.Enrolled,
			&class.CreatedAt,
		); err != nil {
			return nil, err
		}
		classes = append(classes, &class)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return classes, nil
}

// Update applies a partial-field patch to a class; nil patch fields keep
// their stored values.
func (r *ClassRepository) Update(ctx context.Context, id int64, patch *models.ClassPatch) error {
	var set setClause
	if patch.Title != nil {
		set.add("title", *patch.Title)
	}
	if patch.Instructor != nil {
		set.add("instructor", *patch.Instructor)
	}
	if patch.Image != nil {
		set.add("image", *patch.Image)
	}
	if patch.Price != nil {
		set.add("price", *patch.Price)
	}
	if patch.Status != nil {
		set.add("status", *patch.Status)
	}
	if patch.AvailableSeats != nil {
		set.add("available_seats", *patch.AvailableSeats)
	}
	if patch.Enrolled != nil {
		set.add("enrolled", *patch.Enrolled)
	}

	if set.empty() {
		return apperrors.NewBadRequestError("no fields to update")
	}

	query, args := set.build("classes", id)
	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("error updating class: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return apperrors.ErrClassNotFound
	}

	return nil
}

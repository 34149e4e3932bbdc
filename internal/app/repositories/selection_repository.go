package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lenslearn/backend/internal/app/models"
	"github.com/lenslearn/backend/internal/pkg/apperrors"
)

// SelectionRepository handles database operations for class selections.
// Selections reference classes by id only; there is no cascade, so a
// selection outlives the class it points at.
type SelectionRepository struct {
	db *pgxpool.Pool
}

// NewSelectionRepository creates a new selection repository
func NewSelectionRepository(db *pgxpool.Pool) *SelectionRepository {
	return &SelectionRepository{
		db: db,
	}
}

// Create creates a new selection
func (r *SelectionRepository) Create(ctx context.Context, selection *models.Selection) error {
	query := `
		INSERT INTO selections (email, class_id, title, price)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		selection.Email,
		selection.ClassID,
		selection.Title,
		selection.Price,
	).Scan(&selection.ID, &selection.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating selection: %w", err)
	}

	return nil
}

// GetByEmail retrieves all selections for a student's email
func (r *SelectionRepository) GetByEmail(ctx context.Context, email string) ([]*models.Selection, error) {
	query := `
		SELECT id, email, class_id, title, price, created_at
		FROM selections
		WHERE email = $1
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	selections := make([]*models.Selection, 0)
	for rows.Next() {
		var selection models.Selection
		if err := rows.Scan(
			&selection.ID,
			&selection.Email,
			&selection.ClassID,
			&selection.Title,
			&selection.Price,
			&selection.CreatedAt,
		); err != nil {
			return nil, err
		}
		selections = append(selections, &selection)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return selections, nil
}

// Delete removes a selection by id
func (r *SelectionRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM selections WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting selection: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return apperrors.ErrSelectionNotFound
	}

	return nil
}

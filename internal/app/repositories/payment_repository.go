package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lenslearn/backend/internal/app/models"
)

// PaymentRepository handles database operations for payment records
type PaymentRepository struct {
	db *pgxpool.Pool
}

// NewPaymentRepository creates a new payment repository
func NewPaymentRepository(db *pgxpool.Pool) *PaymentRepository {
	return &PaymentRepository{
		db: db,
	}
}

// Record persists a payment record. The gateway transaction id is the
// idempotency key: recording the same transaction twice leaves a single
// row and reports created=false, so the call is safe to retry.
func (r *PaymentRepository) Record(ctx context.Context, payment *models.Payment) (created bool, err error) {
	query := `
		INSERT INTO payments (email, amount, transaction_id, class_ids)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (transaction_id) DO NOTHING
		RETURNING id, created_at
	`

	err = r.db.QueryRow(ctx, query,
		payment.Email,
		payment.Amount,
		payment.TransactionID,
		payment.ClassIDs,
	).Scan(&payment.ID, &payment.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Conflict: this transaction was already recorded.
			return false, nil
		}
		return false, fmt.Errorf("error recording payment: %w", err)
	}

	return true, nil
}

// GetByEmail retrieves payment records for an email, newest first
func (r *PaymentRepository) GetByEmail(ctx context.Context, email string) ([]*models.Payment, error) {
	query := `
		SELECT id, email, amount, transaction_id, class_ids, created_at
		FROM payments
		WHERE email = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payments := make([]*models.Payment, 0)
	for rows.Next() {
		var payment models.Payment
		if err := rows.Scan(
			&payment.ID,
			&payment.Email,
			&payment.Amount,
			&payment.TransactionID,
			&payment.ClassIDs,
			&payment.CreatedAt,
		); err != nil {
			return nil, err
		}
		payments = append(payments, &payment)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return payments, nil
}

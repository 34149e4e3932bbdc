package services

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/rs/zerolog"

	"github.com/lenslearn/backend/internal/app/models"
	"github.com/lenslearn/backend/internal/pkg/apperrors"
	"github.com/lenslearn/backend/internal/pkg/metrics"
	"github.com/lenslearn/backend/internal/pkg/payment"
)

// intentCurrency is the fixed charge currency
const intentCurrency = "usd"

// AmountInMinorUnits converts a price in major units (dollars) to integer
// minor units (cents), rounded to the nearest cent.
func AmountInMinorUnits(price float64) int64 {
	return int64(math.Round(price * 100))
}

// paymentService implements the two-phase payment flow: an intent is created
// with the gateway, the client completes the charge out of band, and the
// caller then records the payment. The two steps share no server-side state
// beyond the transaction id the caller supplies when recording.
type paymentService struct {
	gateway  payment.Gateway
	payments PaymentStore
	logger   zerolog.Logger
}

// NewPaymentService creates a new payment service instance
func NewPaymentService(gateway payment.Gateway, payments PaymentStore, logger zerolog.Logger) PaymentService {
	return &paymentService{
		gateway:  gateway,
		payments: payments,
		logger:   logger,
	}
}

// CreateIntent asks the gateway for a payment intent. Gateway failure is
// terminal for the request; no retry is attempted.
func (s *paymentService) CreateIntent(ctx context.Context, price float64) (string, error) {
	if price <= 0 {
		return "", fmt.Errorf("%w: price must be positive", apperrors.ErrValidationFailed)
	}

	amount := AmountInMinorUnits(price)
	intent, err := s.gateway.CreateIntent(ctx, amount, intentCurrency)
	if err != nil {
		s.logger.Error().Err(err).Int64("amount", amount).Msg("payment intent creation failed")
		return "", fmt.Errorf("%w: %v", apperrors.ErrPaymentGateway, err)
	}

	metrics.PaymentIntents.Inc()
	s.logger.Info().Str("intentId", intent.ID).Int64("amount", amount).Msg("payment intent created")

	return intent.ClientSecret, nil
}

// RecordPayment persists a payment record keyed by the gateway transaction
// id. Recording the same transaction twice is a no-op with created=false.
func (s *paymentService) RecordPayment(ctx context.Context, p *models.Payment) (bool, error) {
	if strings.TrimSpace(p.Email) == "" {
		return false, fmt.Errorf("%w: email cannot be empty", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(p.TransactionID) == "" {
		return false, fmt.Errorf("%w: transaction id cannot be empty", apperrors.ErrValidationFailed)
	}
	if p.Amount <= 0 {
		return false, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidationFailed)
	}

	created, err := s.payments.Record(ctx, p)
	if err != nil {
		return false, err
	}

	if created {
		metrics.PaymentsRecorded.Inc()
		s.logger.Info().Str("transactionId", p.TransactionID).Int64("amount", p.Amount).Msg("payment recorded")
	} else {
		s.logger.Info().Str("transactionId", p.TransactionID).Msg("payment already recorded, skipping")
	}

	return created, nil
}

// ListPayments retrieves payment records for an email
func (s *paymentService) ListPayments(ctx context.Context, email string) ([]*models.Payment, error) {
	return s.payments.GetByEmail(ctx, email)
}

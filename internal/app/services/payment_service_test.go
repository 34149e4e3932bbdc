package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/lenslearn/backend/internal/app/models"
	"github.com/lenslearn/backend/internal/pkg/apperrors"
)

func TestAmountInMinorUnits(t *testing.T) {
	tests := []struct {
		price float64
		want  int64
	}{
		{19.99, 1999},
		{5, 500},
		{0.01, 1},
		{129.99, 12999},
		{100, 10000},
	}

	for _, tt := range tests {
		if got := AmountInMinorUnits(tt.price); got != tt.want {
			t.Errorf("AmountInMinorUnits(%v) = %d, want %d", tt.price, got, tt.want)
		}
	}
}

func TestCreateIntent(t *testing.T) {
	gw := &fakeGateway{}
	svc := NewPaymentService(gw, newFakePaymentStore(), zerolog.Nop())

	secret, err := svc.CreateIntent(context.Background(), 19.99)
	if err != nil {
		t.Fatalf("CreateIntent: %v", err)
	}
	if secret != "pi_test_secret" {
		t.Errorf("clientSecret = %q, want %q", secret, "pi_test_secret")
	}
	if gw.lastAmount != 1999 {
		t.Errorf("gateway amount = %d, want 1999", gw.lastAmount)
	}
	if gw.lastCurrency != "usd" {
		t.Errorf("gateway currency = %q, want %q", gw.lastCurrency, "usd")
	}
}

func TestCreateIntentRejectsNonPositivePrice(t *testing.T) {
	svc := NewPaymentService(&fakeGateway{}, newFakePaymentStore(), zerolog.Nop())

	for _, price := range []float64{0, -5} {
		if _, err := svc.CreateIntent(context.Background(), price); !errors.Is(err, apperrors.ErrValidationFailed) {
			t.Errorf("CreateIntent(%v) err = %v, want ErrValidationFailed", price, err)
		}
	}
}

func TestCreateIntentGatewayFailure(t *testing.T) {
	gw := &fakeGateway{err: errors.New("gateway down")}
	svc := NewPaymentService(gw, newFakePaymentStore(), zerolog.Nop())

	_, err := svc.CreateIntent(context.Background(), 10)
	if !errors.Is(err, apperrors.ErrPaymentGateway) {
		t.Errorf("err = %v, want ErrPaymentGateway", err)
	}
}

func TestRecordPaymentIdempotent(t *testing.T) {
	store := newFakePaymentStore()
	svc := NewPaymentService(&fakeGateway{}, store, zerolog.Nop())

	p1 := &models.Payment{Email: "a@x.com", Amount: 1999, TransactionID: "tx_1"}
	created, err := svc.RecordPayment(context.Background(), p1)
	if err != nil {
		t.Fatalf("RecordPayment: %v", err)
	}
	if !created {
		t.Fatal("first record: created = false, want true")
	}

	// Retrying the same transaction never produces a second record.
	p2 := &models.Payment{Email: "a@x.com", Amount: 1999, TransactionID: "tx_1"}
	created, err = svc.RecordPayment(context.Background(), p2)
	if err != nil {
		t.Fatalf("RecordPayment retry: %v", err)
	}
	if created {
		t.Error("retry: created = true, want false")
	}
	if len(store.records) != 1 {
		t.Errorf("records = %d, want 1", len(store.records))
	}
}

func TestRecordPaymentValidation(t *testing.T) {
	svc := NewPaymentService(&fakeGateway{}, newFakePaymentStore(), zerolog.Nop())

	tests := []*models.Payment{
		{Email: "", Amount: 100, TransactionID: "tx"},
		{Email: "a@x.com", Amount: 100, TransactionID: ""},
		{Email: "a@x.com", Amount: 0, TransactionID: "tx"},
	}

	for _, p := range tests {
		if _, err := svc.RecordPayment(context.Background(), p); !errors.Is(err, apperrors.ErrValidationFailed) {
			t.Errorf("RecordPayment(%+v) err = %v, want ErrValidationFailed", p, err)
		}
	}
}

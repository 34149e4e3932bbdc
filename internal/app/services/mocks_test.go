package services

import (
	"context"
	"sync"

	"github.com/lenslearn/backend/internal/app/models"
	"github.com/lenslearn/backend/internal/pkg/apperrors"
	"github.com/lenslearn/backend/internal/pkg/payment"
)

// fakeUserStore is an in-memory UserStore with store-level email uniqueness
type fakeUserStore struct {
	mu     sync.Mutex
	users  map[string]*models.User
	nextID int64
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]*models.User), nextID: 1}
}

func (f *fakeUserStore) GetAll(_ context.Context) ([]*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*models.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[email]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserStore) Create(_ context.Context, user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[user.Email]; ok {
		return apperrors.ErrUserAlreadyExists
	}
	user.ID = f.nextID
	f.nextID++
	f.users[user.Email] = user
	return nil
}

func (f *fakeUserStore) Update(_ context.Context, id int64, patch *models.UserPatch) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.ID == id {
			if patch.Name != nil {
				u.Name = *patch.Name
			}
			if patch.Role != nil {
				u.Role = *patch.Role
			}
			if patch.Email != nil {
				delete(f.users, u.Email)
				u.Email = *patch.Email
				f.users[u.Email] = u
			}
			return nil
		}
	}
	return apperrors.ErrUserNotFound
}

// fakeSelectionStore records calls and serves canned selections
type fakeSelectionStore struct {
	selections []*models.Selection
	getCalls   int
	deleted    []int64
}

func (f *fakeSelectionStore) Create(_ context.Context, s *models.Selection) error {
	f.selections = append(f.selections, s)
	return nil
}

func (f *fakeSelectionStore) GetByEmail(_ context.Context, email string) ([]*models.Selection, error) {
	f.getCalls++
	out := make([]*models.Selection, 0)
	for _, s := range f.selections {
		if s.Email == email {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSelectionStore) Delete(_ context.Context, id int64) error {
	f.deleted = append(f.deleted, id)
	return nil
}

// fakeGateway captures intent requests and returns a canned secret
type fakeGateway struct {
	lastAmount   int64
	lastCurrency string
	err          error
}

func (f *fakeGateway) CreateIntent(_ context.Context, amount int64, currency string) (*payment.Intent, error) {
	f.lastAmount = amount
	f.lastCurrency = currency
	if f.err != nil {
		return nil, f.err
	}
	return &payment.Intent{ID: "pi_test", ClientSecret: "pi_test_secret"}, nil
}

// fakePaymentStore is an in-memory PaymentStore keyed by transaction id
type fakePaymentStore struct {
	records map[string]*models.Payment
}

func newFakePaymentStore() *fakePaymentStore {
	return &fakePaymentStore{records: make(map[string]*models.Payment)}
}

func (f *fakePaymentStore) Record(_ context.Context, p *models.Payment) (bool, error) {
	if _, ok := f.records[p.TransactionID]; ok {
		return false, nil
	}
	p.ID = int64(len(f.records) + 1)
	f.records[p.TransactionID] = p
	return true, nil
}

func (f *fakePaymentStore) GetByEmail(_ context.Context, email string) ([]*models.Payment, error) {
	out := make([]*models.Payment, 0)
	for _, p := range f.records {
		if p.Email == email {
			out = append(out, p)
		}
	}
	return out, nil
}

package services

import (
	"context"

	"github.com/lenslearn/backend/internal/app/models"
)

// Service interfaces consumed by the controllers. Implementations live in
// this package; controllers never reach past these into the store directly.

// UserService manages user records and role lookups
type UserService interface {
	ListUsers(ctx context.Context) ([]*models.User, error)
	// RegisterUser creates a user if the email is not already taken.
	// created is false when a record for the email already existed.
	RegisterUser(ctx context.Context, user *models.User) (created bool, err error)
	GetRole(ctx context.Context, email string) (models.RoleType, error)
	UpdateUser(ctx context.Context, id int64, patch *models.UserPatch) error
}

// ClassService manages class listings
type ClassService interface {
	ListClasses(ctx context.Context) ([]*models.Class, error)
	GetClass(ctx context.Context, id int64) (*models.Class, error)
	CreateClass(ctx context.Context, class *models.Class) error
	UpdateClass(ctx context.Context, id int64, patch *models.ClassPatch) error
}

// InstructorService lists instructors
type InstructorService interface {
	ListInstructors(ctx context.Context) ([]*models.Instructor, error)
}

// SelectionService manages a student's class selections
type SelectionService interface {
	// ListSelections lists selections for queryEmail. An empty queryEmail
	// yields an empty result; a queryEmail different from the caller's
	// verified tokenEmail is a forbidden access.
	ListSelections(ctx context.Context, tokenEmail, queryEmail string) ([]*models.Selection, error)
	AddSelection(ctx context.Context, selection *models.Selection) error
	RemoveSelection(ctx context.Context, id int64) error
}

// PaymentService orchestrates the two-phase payment flow
type PaymentService interface {
	// CreateIntent converts price (major units) to integer cents and asks
	// the gateway for a payment intent. Returns the intent client secret.
	CreateIntent(ctx context.Context, price float64) (clientSecret string, err error)
	// RecordPayment persists a payment record, idempotently on the gateway
	// transaction id.
	RecordPayment(ctx context.Context, payment *models.Payment) (created bool, err error)
	ListPayments(ctx context.Context, email string) ([]*models.Payment, error)
}

// Store interfaces the services depend on; satisfied by the repositories
// package and by in-memory fakes in tests.

// UserStore is the persistence surface for users
type UserStore interface {
	GetAll(ctx context.Context) ([]*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, id int64, patch *models.UserPatch) error
}

// ClassStore is the persistence surface for classes
type ClassStore interface {
	GetAll(ctx context.Context) ([]*models.Class, error)
	GetByID(ctx context.Context, id int64) (*models.Class, error)
	Create(ctx context.Context, class *models.Class) error
	Update(ctx context.Context, id int64, patch *models.ClassPatch) error
}

// InstructorStore is the persistence surface for instructors
type InstructorStore interface {
	GetAll(ctx context.Context) ([]*models.Instructor, error)
}

// SelectionStore is the persistence surface for selections
type SelectionStore interface {
	Create(ctx context.Context, selection *models.Selection) error
	GetByEmail(ctx context.Context, email string) ([]*models.Selection, error)
	Delete(ctx context.Context, id int64) error
}

// PaymentStore is the persistence surface for payment records
type PaymentStore interface {
	Record(ctx context.Context, payment *models.Payment) (created bool, err error)
	GetByEmail(ctx context.Context, email string) ([]*models.Payment, error)
}

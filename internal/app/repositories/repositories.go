package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories bundles all store repositories behind one constructor so the
// bootstrap layer can hand a single injected handle to every component.
type Repositories struct {
	Users       *UserRepository
	Classes     *ClassRepository
	Instructors *InstructorRepository
	Selections  *SelectionRepository
	Payments    *PaymentRepository
}

// NewRepositories creates all repositories sharing one connection pool
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		Users:       NewUserRepository(db),
		Classes:     NewClassRepository(db),
		Instructors: NewInstructorRepository(db),
		Selections:  NewSelectionRepository(db),
		Payments:    NewPaymentRepository(db),
	}
}

package models

import "time"

// Selection is a student's chosen class pending or following payment.
// Title and Price are snapshots taken at selection time; a selection's
// lifetime is independent of the class it references.
type Selection struct {
	ID        int64     `json:"id" db:"id"`
	Email     string    `json:"email" db:"email"`
	ClassID   int64     `json:"classId" db:"class_id"`
	Title     string    `json:"title" db:"title"`
	Price     float64   `json:"price" db:"price"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

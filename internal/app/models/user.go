package models

import "time"

// RoleType is a user's privilege level
type RoleType string

const (
	RoleStudent RoleType = "student"
	RoleAdmin   RoleType = "admin"
)

// User defines the user model based on the 'users' table. Email is unique
// at the storage layer.
type User struct {
	ID        int64     `json:"id" db:"id" example:"1"`
	Email     string    `json:"email" db:"email" example:"student@lenslearn.app"`
	Name      string    `json:"name" db:"name" example:"Jane Doe"`
	Role      RoleType  `json:"role" db:"role" example:"student"`
	CreatedAt time.Time `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"`
}

// UserPatch carries a partial update for a user. Nil fields are left
// untouched by the update.
type UserPatch struct {
	Email *string   `json:"email,omitempty"`
	Name  *string   `json:"name,omitempty"`
	Role  *RoleType `json:"role,omitempty"`
}

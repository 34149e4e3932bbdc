package models

// Instructor defines the instructor model based on the 'instructors' table
type Instructor struct {
	ID         int64  `json:"id" db:"id"`
	Name       string `json:"name" db:"name"`
	Email      string `json:"email" db:"email"`
	Image      string `json:"image" db:"image"`
	ClassCount int    `json:"classCount" db:"class_count"`
}

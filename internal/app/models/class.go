package models

import "time"

// Class defines the class model based on the 'classes' table. Price is in
// major units (dollars); Status is a free-form string set by admin patches.
type Class struct {
	ID             int64     `json:"id" db:"id" example:"1"`
	Title          string    `json:"title" db:"title" example:"Studio Lighting Basics"`
	Instructor     string    `json:"instructor" db:"instructor" example:"Ansel Adams"`
	Image          string    `json:"image" db:"image"`
	Price          float64   `json:"price" db:"price" example:"19.99"`
	Status         string    `json:"status" db:"status" example:"pending"`
	AvailableSeats int       `json:"availableSeats" db:"available_seats" example:"20"`
	Enrolled       int       `json:"enrolled" db:"enrolled" example:"5"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
}

// ClassPatch carries a partial update for a class. Nil fields are left
// untouched by the update.
type ClassPatch struct {
	Title          *string  `json:"title,omitempty"`
	Instructor     *string  `json:"instructor,omitempty"`
	Image          *string  `json:"image,omitempty"`
	Price          *float64 `json:"price,omitempty"`
	Status         *string  `json:"status,omitempty"`
	AvailableSeats *int     `json:"availableSeats,omitempty"`
	Enrolled       *int     `json:"enrolled,omitempty"`
}

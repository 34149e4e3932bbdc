package dto

// TokenRequest is the payload for POST /jwt. Whatever email the client
// supplies becomes the token's identity claim.
type TokenRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// CreateUserRequest is the payload for POST /users
type CreateUserRequest struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// CreateClassRequest is the payload for POST /classes
type CreateClassRequest struct {
	Title          string  `json:"title" binding:"required"`
	Instructor     string  `json:"instructor"`
	Image          string  `json:"image"`
	Price          float64 `json:"price" binding:"gte=0"`
	AvailableSeats int     `json:"availableSeats" binding:"gte=0"`
}

// CreateSelectionRequest is the payload for POST /selectedClass
type CreateSelectionRequest struct {
	Email   string  `json:"email" binding:"required,email"`
	ClassID int64   `json:"classId" binding:"required"`
	Title   string  `json:"title"`
	Price   float64 `json:"price" binding:"gte=0"`
}

// CreateIntentRequest is the payload for POST /create-payment-intent and
// POST /payments. Price is in major units (dollars).
type CreateIntentRequest struct {
	Price float64 `json:"price" binding:"required,gt=0"`
}

// SavePaymentRequest is the payload for POST /save-payment
type SavePaymentRequest struct {
	Email         string  `json:"email" binding:"required,email"`
	Amount        int64   `json:"amount" binding:"required,gt=0"`
	TransactionID string  `json:"transactionId" binding:"required"`
	ClassIDs      []int64 `json:"classIds"`
}

package models

import "time"

// Payment is a persisted record of a completed charge. Amount is in minor
// units (cents). TransactionID is the gateway's identifier for the charge
// and is unique at the storage layer, which makes saving a payment record
// safe to retry.
type Payment struct {
	ID            int64     `json:"id" db:"id"`
	Email         string    `json:"email" db:"email"`
	Amount        int64     `json:"amount" db:"amount" example:"1999"`
	TransactionID string    `json:"transactionId" db:"transaction_id"`
	ClassIDs      []int64   `json:"classIds" db:"class_ids"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
}

package models

import "github.com/google/uuid"

// User represents the active identity of the session
type User struct {
	ID          uuid.UUID `json:"id"`           // Identity identifier
	PhoneNumber string    `json:"phone_number"` // Registered phone number
	UPIID       string    `json:"upi_id"`       // UPI-style payment address
	Name        string    `json:"name"`         // Display name
}

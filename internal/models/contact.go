package models

// Contact represents immutable payee reference data
type Contact struct {
	ID          string `json:"id"`           // Contact identifier
	Name        string `json:"name"`         // Display name
	UPIID       string `json:"upi_id"`       // External payment address
	PhoneNumber string `json:"phone_number"` // Phone number
}

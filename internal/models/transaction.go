package models

import "time"

// Direction classifies a transaction relative to the local user.
type Direction string

// Transaction directions
const (
	DirectionSent     Direction = "sent"     // Outgoing payment to an external address
	DirectionReceived Direction = "received" // Incoming payment credited to a local account
	DirectionSelf     Direction = "self"     // Transfer between two local accounts
)

// Status is the terminal state of a transaction. Every payment completes
// synchronously, so a logged transaction is never left pending.
type Status string

// Transaction statuses
const (
	StatusPending Status = "pending"
	StatusSuccess Status = "success"
	StatusFailed  Status = "failed"
)

// Transaction represents a committed payment, immutable once logged.
type Transaction struct {
	ID           int64     `json:"id"`             // Local sequence key, assigned by the log
	Reference    string    `json:"reference"`      // Human-facing transaction reference (TXN...)
	SenderUPI    string    `json:"sender_upi"`     // Sender payment address
	SenderName   string    `json:"sender_name"`    // Sender display name
	ReceiverUPI  string    `json:"receiver_upi"`   // Receiver payment address
	ReceiverName string    `json:"receiver_name"`  // Receiver display name
	Amount       int64     `json:"amount"`         // Amount in paise, always > 0
	Status       Status    `json:"status"`         // Terminal status
	Timestamp    time.Time `json:"timestamp"`      // Commit time
	Direction    Direction `json:"direction"`      // Direction relative to the local user
	Note         string    `json:"note,omitempty"` // Optional free-text note
}
